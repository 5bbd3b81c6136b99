package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// Employee is owned by user management; the attendance core reads it for
// identity, contact, and pay rates only.
type Employee struct {
	ID                 string
	FullName           string
	Role               Role
	DailyRate          decimal.Decimal
	OvertimeHourlyRate decimal.Decimal
	WhatsAppNumber     *string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
