package attendance

import (
	"time"

	"github.com/bntng-project/esensi-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CheckInRequest carries everything the state machine needs for a check-in.
// EvidenceRef is the stored selfie path, produced by the file service before
// the core is invoked.
type CheckInRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	EvidenceRef string  `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CheckOutRequest mirrors CheckInRequest; the active record is resolved by
// the state machine, not the caller.
type CheckOutRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	EvidenceRef string  `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Snapshot is the employee-facing view of a record after a transition.
type Snapshot struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	Date          string   `json:"date"`
	CheckInTime   *string  `json:"check_in_time,omitempty"`
	CheckOutDate  *string  `json:"check_out_date,omitempty"`
	CheckOutTime  *string  `json:"check_out_time,omitempty"`
	TotalHours    *float64 `json:"total_hours,omitempty"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
	Status        Status   `json:"status"`
}

// PayrollSnapshot extends Snapshot with the pay computed for the completed
// day, returned to the caller right after checkout for immediate display.
type PayrollSnapshot struct {
	Snapshot
	DailyRate    decimal.Decimal `json:"daily_rate"`
	OvertimeRate decimal.Decimal `json:"overtime_rate"`
	OvertimePay  decimal.Decimal `json:"overtime_pay"`
	TotalPay     decimal.Decimal `json:"total_pay"`
}

// HistoryFilter bounds a read-only listing of an employee's own records.
type HistoryFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewSnapshot maps a record to its transport view.
func NewSnapshot(rec Record) Snapshot {
	snap := Snapshot{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		Date:          rec.Date.Format("2006-01-02"),
		TotalHours:    rec.TotalHours,
		OvertimeHours: rec.OvertimeHours,
		Status:        rec.Status,
	}
	if rec.CheckInAt != nil {
		v := rec.CheckInAt.Format("15:04:05")
		snap.CheckInTime = &v
	}
	if rec.CheckOutAt != nil {
		d := rec.CheckOutAt.Format("2006-01-02")
		v := rec.CheckOutAt.Format("15:04:05")
		snap.CheckOutDate = &d
		snap.CheckOutTime = &v
	}
	return snap
}

// Day truncates t to its calendar date, preserving the location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
