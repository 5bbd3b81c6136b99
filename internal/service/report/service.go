package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bntng-project/esensi-backend/internal/domain/attendance"
	"github.com/bntng-project/esensi-backend/internal/domain/employee"
	"github.com/bntng-project/esensi-backend/internal/domain/report"
	"github.com/bntng-project/esensi-backend/internal/pkg/worktime"
	"github.com/bntng-project/esensi-backend/internal/service/payroll"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
}

func NewReportService(attendanceRepo attendance.Repository, employeeRepo employee.Repository) *ReportServiceImpl {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// SummarizePeriod builds the admin/HR payroll report: one summary row per
// employee plus grand totals. Per-employee record fetches run concurrently.
func (r *ReportServiceImpl) SummarizePeriod(ctx context.Context, req report.PeriodRequest) (report.PeriodReport, error) {
	if err := req.Validate(); err != nil {
		return report.PeriodReport{}, err
	}

	from, _ := time.Parse("2006-01-02", req.StartDate)
	to, _ := time.Parse("2006-01-02", req.EndDate)

	employees, err := r.resolveEmployees(ctx, req.EmployeeID)
	if err != nil {
		return report.PeriodReport{}, err
	}

	summaries := make([]report.PeriodSummary, len(employees))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, emp := range employees {
		i, emp := i, emp
		g.Go(func() error {
			records, err := r.attendanceRepo.ListRange(gctx, &emp.ID, from, to)
			if err != nil {
				return fmt.Errorf("failed to list records for %s: %w", emp.ID, err)
			}
			summaries[i] = payroll.Summarize(emp, records)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return report.PeriodReport{}, err
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].EmployeeName < summaries[j].EmployeeName
	})

	out := report.PeriodReport{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Employees: summaries,
	}
	for _, s := range summaries {
		out.TotalWorkedDays += s.WorkedDays
		out.TotalHours += s.TotalHours
		out.TotalOvertimeHours += s.TotalOvertimeHours
		out.TotalBasePay = out.TotalBasePay.Add(s.TotalBasePay)
		out.TotalOvertimePay = out.TotalOvertimePay.Add(s.TotalOvertimePay)
		out.TotalPay = out.TotalPay.Add(s.TotalPay)
	}
	out.TotalHours = worktime.Round2(out.TotalHours)
	out.TotalOvertimeHours = worktime.Round2(out.TotalOvertimeHours)

	return out, nil
}

func (r *ReportServiceImpl) resolveEmployees(ctx context.Context, employeeID *string) ([]employee.Employee, error) {
	if employeeID != nil && *employeeID != "" {
		emp, err := r.employeeRepo.GetByID(ctx, *employeeID)
		if err != nil {
			return nil, err
		}
		return []employee.Employee{emp}, nil
	}
	return r.employeeRepo.ListActive(ctx)
}
