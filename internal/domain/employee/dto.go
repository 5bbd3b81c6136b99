package employee

import (
	"github.com/shopspring/decimal"

	"github.com/bntng-project/esensi-backend/internal/pkg/validator"
)

// UpdateRatesRequest is the admin pay-rate form.
type UpdateRatesRequest struct {
	DailyRate          decimal.Decimal `json:"daily_rate"`
	OvertimeHourlyRate decimal.Decimal `json:"overtime_hourly_rate"`
	IsActive           bool            `json:"is_active"`
}

func (r *UpdateRatesRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_rate",
			Message: "daily_rate must not be negative",
		})
	}
	if r.OvertimeHourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_hourly_rate",
			Message: "overtime_hourly_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Response is the admin-facing employee view.
type Response struct {
	ID                 string          `json:"id"`
	FullName           string          `json:"full_name"`
	Role               Role            `json:"role"`
	DailyRate          decimal.Decimal `json:"daily_rate"`
	OvertimeHourlyRate decimal.Decimal `json:"overtime_hourly_rate"`
	WhatsAppNumber     *string         `json:"whatsapp_number,omitempty"`
	IsActive           bool            `json:"is_active"`
}

// NewResponse maps an employee to its transport view.
func NewResponse(emp Employee) Response {
	return Response{
		ID:                 emp.ID,
		FullName:           emp.FullName,
		Role:               emp.Role,
		DailyRate:          emp.DailyRate,
		OvertimeHourlyRate: emp.OvertimeHourlyRate,
		WhatsAppNumber:     emp.WhatsAppNumber,
		IsActive:           emp.IsActive,
	}
}
