package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bntng-project/esensi-backend/internal/domain/attendance"
	"github.com/bntng-project/esensi-backend/internal/domain/employee"
	"github.com/bntng-project/esensi-backend/internal/domain/report"
)

type stubAttendanceRepo struct {
	records map[string][]attendance.Record
}

func (s *stubAttendanceRepo) GetOrCreate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	return attendance.Record{}, nil
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) MarkCheckedIn(ctx context.Context, id string, at time.Time, lat, lon float64, proof string) (attendance.Record, error) {
	return attendance.Record{}, nil
}

func (s *stubAttendanceRepo) MarkCompleted(ctx context.Context, id string, at time.Time, lat, lon float64, proof string, totalHours, overtimeHours float64) (attendance.Record, error) {
	return attendance.Record{}, nil
}

func (s *stubAttendanceRepo) ListRange(ctx context.Context, employeeID *string, from, to time.Time) ([]attendance.Record, error) {
	if employeeID == nil {
		return nil, nil
	}
	return s.records[*employeeID], nil
}

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range s.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return s.employees, nil
}

func (s *stubEmployeeRepo) FindAdmin(ctx context.Context) (*employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) UpdateRates(ctx context.Context, id string, dailyRate, overtimeRate decimal.Decimal, isActive bool) (employee.Employee, error) {
	return employee.Employee{}, nil
}

func completed(day time.Time, totalHours, overtimeHours float64) attendance.Record {
	return attendance.Record{
		Date:          day,
		TotalHours:    &totalHours,
		OvertimeHours: &overtimeHours,
		Status:        attendance.StatusCompleted,
	}
}

func testService() *ReportServiceImpl {
	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	attendanceRepo := &stubAttendanceRepo{records: map[string][]attendance.Record{
		"emp-1": {
			completed(day, 8.0, 0),
			completed(day.AddDate(0, 0, 1), 9.5, 1.5),
			completed(day.AddDate(0, 0, 2), 10.0, 2.0),
		},
		"emp-2": {
			completed(day, 8.0, 0),
		},
	}}

	employeeRepo := &stubEmployeeRepo{employees: []employee.Employee{
		{
			ID:                 "emp-1",
			FullName:           "Budi Santoso",
			DailyRate:          decimal.RequireFromString("100000"),
			OvertimeHourlyRate: decimal.RequireFromString("15000"),
			IsActive:           true,
		},
		{
			ID:                 "emp-2",
			FullName:           "Ani Wijaya",
			DailyRate:          decimal.RequireFromString("120000"),
			OvertimeHourlyRate: decimal.RequireFromString("18000"),
			IsActive:           true,
		},
	}}

	return NewReportService(attendanceRepo, employeeRepo)
}

func TestSummarizePeriod_SingleEmployee(t *testing.T) {
	svc := testService()

	empID := "emp-1"
	rep, err := svc.SummarizePeriod(context.Background(), report.PeriodRequest{
		EmployeeID: &empID,
		StartDate:  "2024-01-01",
		EndDate:    "2024-01-31",
	})
	require.NoError(t, err)

	require.Len(t, rep.Employees, 1)
	s := rep.Employees[0]
	assert.Equal(t, 3, s.WorkedDays)
	assert.InDelta(t, 3.5, s.TotalOvertimeHours, 0.001)
	assert.True(t, s.TotalBasePay.Equal(decimal.RequireFromString("300000")))
	assert.True(t, s.TotalOvertimePay.Equal(decimal.RequireFromString("52500")))
	assert.True(t, s.TotalPay.Equal(decimal.RequireFromString("352500")), "TotalPay = %s", s.TotalPay)
}

func TestSummarizePeriod_AllEmployees(t *testing.T) {
	svc := testService()

	rep, err := svc.SummarizePeriod(context.Background(), report.PeriodRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)

	require.Len(t, rep.Employees, 2)
	// Sorted by name.
	assert.Equal(t, "Ani Wijaya", rep.Employees[0].EmployeeName)
	assert.Equal(t, "Budi Santoso", rep.Employees[1].EmployeeName)

	assert.Equal(t, 4, rep.TotalWorkedDays)
	assert.True(t, rep.TotalPay.Equal(decimal.RequireFromString("472500")), "TotalPay = %s", rep.TotalPay)
}

func TestSummarizePeriod_InvalidRange(t *testing.T) {
	svc := testService()

	_, err := svc.SummarizePeriod(context.Background(), report.PeriodRequest{
		StartDate: "2024-01-31",
		EndDate:   "2024-01-01",
	})
	assert.Error(t, err)
}

func TestExportCSV(t *testing.T) {
	svc := testService()

	rep, err := svc.SummarizePeriod(context.Background(), report.PeriodRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)

	out, err := ExportCSV(rep)
	require.NoError(t, err)

	body := string(out)
	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 4) // header, two employees, totals

	assert.Contains(t, lines[0], "Employee Name")
	assert.Contains(t, body, "Budi Santoso")
	assert.Contains(t, lines[3], "TOTAL")
	assert.Contains(t, lines[3], "472500.00")
}

func TestExportXLSX(t *testing.T) {
	svc := testService()

	rep, err := svc.SummarizePeriod(context.Background(), report.PeriodRequest{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	})
	require.NoError(t, err)

	out, err := ExportXLSX(rep)
	require.NoError(t, err)

	f, err := excelize.OpenReader(strings.NewReader(string(out)))
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Payroll Report", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Ani Wijaya", name)

	total, err := f.GetCellValue("Payroll Report", "B5")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", total)
}
