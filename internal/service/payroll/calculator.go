package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/bntng-project/esensi-backend/internal/domain/attendance"
	"github.com/bntng-project/esensi-backend/internal/domain/employee"
	"github.com/bntng-project/esensi-backend/internal/domain/report"
	"github.com/bntng-project/esensi-backend/internal/pkg/worktime"
)

// OvertimePay prices overtime hours at the employee's hourly rate, rounded
// to 2 decimal places.
func OvertimePay(overtimeHours float64, overtimeRate decimal.Decimal) decimal.Decimal {
	return overtimeRate.Mul(decimal.NewFromFloat(overtimeHours)).Round(2)
}

// DailyPay is the pay for one completed day: the flat daily rate plus priced
// overtime.
func DailyPay(dailyRate decimal.Decimal, overtimeHours float64, overtimeRate decimal.Decimal) decimal.Decimal {
	return dailyRate.Add(OvertimePay(overtimeHours, overtimeRate)).Round(2)
}

// Summarize aggregates one employee's records over a period. Only COMPLETED
// records count: a worked day is one full check-in/check-out cycle, so open
// or absent days contribute nothing to hours or pay.
func Summarize(emp employee.Employee, records []attendance.Record) report.PeriodSummary {
	summary := report.PeriodSummary{
		EmployeeID:       emp.ID,
		EmployeeName:     emp.FullName,
		DailyRate:        emp.DailyRate,
		OvertimeRate:     emp.OvertimeHourlyRate,
		TotalBasePay:     decimal.Zero,
		TotalOvertimePay: decimal.Zero,
		TotalPay:         decimal.Zero,
	}

	for _, rec := range records {
		if rec.Status != attendance.StatusCompleted {
			continue
		}
		summary.WorkedDays++
		if rec.TotalHours != nil {
			summary.TotalHours += *rec.TotalHours
		}
		if rec.OvertimeHours != nil {
			summary.TotalOvertimeHours += *rec.OvertimeHours
			summary.TotalOvertimePay = summary.TotalOvertimePay.Add(OvertimePay(*rec.OvertimeHours, emp.OvertimeHourlyRate))
		}
	}

	summary.TotalHours = worktime.Round2(summary.TotalHours)
	summary.TotalOvertimeHours = worktime.Round2(summary.TotalOvertimeHours)
	summary.TotalBasePay = emp.DailyRate.Mul(decimal.NewFromInt(int64(summary.WorkedDays))).Round(2)
	summary.TotalPay = summary.TotalBasePay.Add(summary.TotalOvertimePay).Round(2)

	return summary
}
