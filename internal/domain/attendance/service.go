package attendance

import "context"

// Service is the attendance state machine.
type Service interface {
	// CheckIn validates geofence and prior state, then advances today's
	// record to CHECKED_IN.
	CheckIn(ctx context.Context, req CheckInRequest) (Snapshot, error)

	// CheckOut resolves the active record (today's, or yesterday's open
	// overnight shift), computes worked hours and overtime, and completes
	// it. The returned snapshot carries the day's pay.
	CheckOut(ctx context.Context, req CheckOutRequest) (PayrollSnapshot, error)

	// History lists the employee's own records for a date range.
	History(ctx context.Context, employeeID string, filter HistoryFilter) ([]Snapshot, error)
}
