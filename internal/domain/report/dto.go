package report

import (
	"github.com/bntng-project/esensi-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PeriodRequest bounds a payroll/attendance report. EmployeeID nil means all
// active employees.
type PeriodRequest struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  string  `json:"start_date"` // YYYY-MM-DD
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PeriodSummary aggregates one employee's completed records over the period.
// Only COMPLETED records contribute; base pay is workedDays x dailyRate and
// overtime pay sums each record's overtime at the employee's hourly rate.
type PeriodSummary struct {
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       string          `json:"employee_name"`
	WorkedDays         int             `json:"worked_days"`
	TotalHours         float64         `json:"total_hours"`
	TotalOvertimeHours float64         `json:"total_overtime_hours"`
	DailyRate          decimal.Decimal `json:"daily_rate"`
	OvertimeRate       decimal.Decimal `json:"overtime_rate"`
	TotalBasePay       decimal.Decimal `json:"total_base_pay"`
	TotalOvertimePay   decimal.Decimal `json:"total_overtime_pay"`
	TotalPay           decimal.Decimal `json:"total_pay"`
}

// PeriodReport is the full admin/HR report: per-employee rows plus grand
// totals.
type PeriodReport struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Employees []PeriodSummary `json:"employees"`

	TotalWorkedDays    int             `json:"total_worked_days"`
	TotalHours         float64         `json:"total_hours"`
	TotalOvertimeHours float64         `json:"total_overtime_hours"`
	TotalBasePay       decimal.Decimal `json:"total_base_pay"`
	TotalOvertimePay   decimal.Decimal `json:"total_overtime_pay"`
	TotalPay           decimal.Decimal `json:"total_pay"`
}
