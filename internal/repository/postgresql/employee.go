package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/bntng-project/esensi-backend/internal/domain/employee"
	"github.com/bntng-project/esensi-backend/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, full_name, role, daily_rate, overtime_hourly_rate,
	whatsapp_number, is_active, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.Role, &emp.DailyRate, &emp.OvertimeHourlyRate,
		&emp.WhatsAppNumber, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// GetByID implements employee.Repository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`
	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// ListActive implements employee.Repository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE is_active = TRUE
		ORDER BY full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// FindAdmin implements employee.Repository. Returns nil when no active admin
// exists; notification fan-out treats that as "nobody to notify".
func (e *employeeRepositoryImpl) FindAdmin(ctx context.Context) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE role = $1 AND is_active = TRUE
		ORDER BY created_at ASC
		LIMIT 1
	`
	emp, err := scanEmployee(q.QueryRow(ctx, query, employee.RoleAdmin))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	return &emp, nil
}

// UpdateRates implements employee.Repository.
func (e *employeeRepositoryImpl) UpdateRates(ctx context.Context, id string, dailyRate, overtimeRate decimal.Decimal, isActive bool) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET daily_rate = $1, overtime_hourly_rate = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + employeeColumns + `
	`
	emp, err := scanEmployee(q.QueryRow(ctx, query, dailyRate, overtimeRate, isActive, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee rates: %w", err)
	}

	return emp, nil
}
