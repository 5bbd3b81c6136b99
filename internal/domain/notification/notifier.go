package notification

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Notifier delivers a message to one recipient. Implementations are
// best-effort: the caller only logs failures, it never branches on them.
type Notifier interface {
	SendMessage(ctx context.Context, number, message string) error
	SendMedia(ctx context.Context, number, mediaURL, caption string) error
}

// CheckInEvent is emitted after a check-in transition commits.
type CheckInEvent struct {
	EmployeeID   string
	EmployeeName string
	Date         time.Time
	CheckInAt    time.Time
	EvidenceURL  string
}

// CheckOutEvent is emitted after a checkout transition commits. CheckOutDate
// differs from Date for overnight shifts.
type CheckOutEvent struct {
	EmployeeID    string
	EmployeeName  string
	Date          time.Time
	CheckInAt     time.Time
	CheckOutDate  time.Time
	CheckOutAt    time.Time
	TotalHours    float64
	OvertimeHours float64
	TotalPay      decimal.Decimal
	EvidenceURL   string
}

// Service fans attendance events out to the employee, the admin contact,
// and HR (with the selfie as media). Dispatch is asynchronous and must never
// block or fail the transition that produced the event.
type Service interface {
	CheckedIn(ev CheckInEvent)
	CheckedOut(ev CheckOutEvent)

	// Close drains in-flight deliveries.
	Close()
}
