package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/bntng-project/esensi-backend/internal/config"
	appHTTP "github.com/bntng-project/esensi-backend/internal/handler/http"
	"github.com/bntng-project/esensi-backend/internal/pkg/database"
	"github.com/bntng-project/esensi-backend/internal/pkg/jwt"
	"github.com/bntng-project/esensi-backend/internal/pkg/storage"
	"github.com/bntng-project/esensi-backend/internal/repository/postgresql"
	attendanceService "github.com/bntng-project/esensi-backend/internal/service/attendance"
	employeeService "github.com/bntng-project/esensi-backend/internal/service/employee"
	"github.com/bntng-project/esensi-backend/internal/service/file"
	notificationService "github.com/bntng-project/esensi-backend/internal/service/notification"
	reportService "github.com/bntng-project/esensi-backend/internal/service/report"
	settingService "github.com/bntng-project/esensi-backend/internal/service/setting"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}
	fileService := file.NewFileService(fileStorage)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "esensi-backend"),
	)
	dispatcher := notificationService.NewDispatcher(
		settingRepo,
		employeeRepo,
		fileStorage,
		notificationService.GatewayFactory(cfg.WhatsApp.GatewayURL),
		logger,
	)
	defer dispatcher.Close()

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, settingRepo, dispatcher)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	settingSvc := settingService.NewSettingService(db, settingRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, fileService)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	settingHandler := appHTTP.NewSettingHandler(settingSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		reportHandler,
		employeeHandler,
		settingHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
