package attendance

import (
	"fmt"
	"time"
)

// Status is the attendance record lifecycle state. The set is closed:
// every consumer switches exhaustively over these three values.
type Status string

const (
	StatusNotCheckedIn Status = "not_checked_in"
	StatusCheckedIn    Status = "checked_in"
	StatusCompleted    Status = "completed"
)

// ParseStatus converts a stored string back into a Status, rejecting
// anything outside the closed set.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNotCheckedIn, StatusCheckedIn, StatusCompleted:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown attendance status %q", s)
	}
}

// Record is one employee's attendance for one work day. Identity is
// (EmployeeID, Date); Date is the work day the shift started on, which for
// overnight shifts differs from the day the checkout lands on.
type Record struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckInAt     *time.Time
	CheckOutAt    *time.Time
	CheckInLat    *float64
	CheckInLon    *float64
	CheckOutLat   *float64
	CheckOutLon   *float64
	CheckInProof  *string
	CheckOutProof *string
	TotalHours    *float64
	OvertimeHours *float64
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for reporting
	EmployeeName *string
}
