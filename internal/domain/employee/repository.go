package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository defines read access to employee records plus the small slice of
// admin rate management this service owns.
type Repository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive returns active employees ordered by name.
	ListActive(ctx context.Context) ([]Employee, error)

	// FindAdmin returns any admin-role employee, used as the notification
	// contact for attendance events. Nil when no admin exists.
	FindAdmin(ctx context.Context) (*Employee, error)

	// UpdateRates sets the pay rates and active flag for an employee.
	UpdateRates(ctx context.Context, id string, dailyRate, overtimeRate decimal.Decimal, isActive bool) (Employee, error)
}
