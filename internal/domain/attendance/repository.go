package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records.
type Repository interface {
	// GetOrCreate returns the record for (employeeID, date), inserting a
	// fresh NOT_CHECKED_IN row first if none exists. Creation is an explicit
	// side effect of this call; plain lookups never insert. Safe under
	// concurrent callers: the (employee_id, date) pair is unique and a lost
	// insert race falls back to reading the winner's row.
	GetOrCreate(ctx context.Context, employeeID string, date time.Time) (Record, error)

	// GetByEmployeeAndDate returns the record for the exact day, or nil when
	// none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// MarkCheckedIn applies the NOT_CHECKED_IN -> CHECKED_IN transition.
	// The update is conditional on the stored status still being
	// NOT_CHECKED_IN; a concurrent winner surfaces as ErrAlreadyCheckedIn.
	MarkCheckedIn(ctx context.Context, id string, at time.Time, lat, lon float64, proof string) (Record, error)

	// MarkCompleted applies the CHECKED_IN -> COMPLETED transition with the
	// computed totals. Conditional on the stored status still being
	// CHECKED_IN; a concurrent winner surfaces as ErrAlreadyCheckedOut.
	MarkCompleted(ctx context.Context, id string, at time.Time, lat, lon float64, proof string, totalHours, overtimeHours float64) (Record, error)

	// ListRange returns records for the date range, all employees when
	// employeeID is nil, ordered by date then employee.
	ListRange(ctx context.Context, employeeID *string, from, to time.Time) ([]Record, error)
}
