package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/bntng-project/esensi-backend/internal/handler/http/middleware"
	"github.com/bntng-project/esensi-backend/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	employeeHandler EmployeeHandler,
	settingHandler SettingHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "esensi-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/history", attendanceHandler.History)
			})

			// Admin and HR
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff)

				r.Route("/reports", func(r chi.Router) {
					r.Get("/period", reportHandler.Period)
					r.Get("/period/export/csv", reportHandler.ExportCSV)
					r.Get("/period/export/xlsx", reportHandler.ExportXLSX)
				})

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", employeeHandler.List)
					r.Get("/{id}", employeeHandler.Get)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Put("/{id}/rates", employeeHandler.UpdateRates)
					})
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Route("/settings", func(r chi.Router) {
					r.Get("/", settingHandler.Get)
					r.Put("/", settingHandler.Update)
				})
			})
		})
	})

	return r
}
