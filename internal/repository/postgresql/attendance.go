package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/bntng-project/esensi-backend/internal/domain/attendance"
	"github.com/bntng-project/esensi-backend/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	id, employee_id, date, check_in_at, check_out_at,
	check_in_lat, check_in_lon, check_out_lat, check_out_lon,
	check_in_proof, check_out_proof, total_hours, overtime_hours,
	status, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckInAt, &rec.CheckOutAt,
		&rec.CheckInLat, &rec.CheckInLon, &rec.CheckOutLat, &rec.CheckOutLon,
		&rec.CheckInProof, &rec.CheckOutProof, &rec.TotalHours, &rec.OvertimeHours,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// GetOrCreate implements attendance.Repository. The insert relies on the
// UNIQUE(employee_id, date) constraint: a concurrent insert loses the race
// harmlessly and the follow-up select returns the winner's row.
func (a *attendanceRepositoryImpl) GetOrCreate(ctx context.Context, employeeID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	insertQuery := `
		INSERT INTO attendance_records (employee_id, date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date) DO NOTHING
	`
	if _, err := q.Exec(ctx, insertQuery, employeeID, date, attendance.StatusNotCheckedIn); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	selectQuery := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
	`
	rec, err := scanAttendance(q.QueryRow(ctx, selectQuery, employeeID, date))
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.Repository. Returns nil when no
// record exists for the given day.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
	`
	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// MarkCheckedIn implements attendance.Repository. The status guard in the
// WHERE clause makes the transition atomic: if another request already moved
// the row past NOT_CHECKED_IN, no row matches and ErrAlreadyCheckedIn is
// returned.
func (a *attendanceRepositoryImpl) MarkCheckedIn(ctx context.Context, id string, at time.Time, lat, lon float64, proof string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_in_at = $1, check_in_lat = $2, check_in_lon = $3,
			check_in_proof = $4, status = $5, updated_at = NOW()
		WHERE id = $6 AND status = $7
		RETURNING ` + attendanceColumns + `
	`
	rec, err := scanAttendance(q.QueryRow(ctx, query,
		at, lat, lon, proof, attendance.StatusCheckedIn, id, attendance.StatusNotCheckedIn,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to mark check-in: %w", err)
	}

	return rec, nil
}

// MarkCompleted implements attendance.Repository. Same conditional-update
// pattern as MarkCheckedIn, guarding on CHECKED_IN.
func (a *attendanceRepositoryImpl) MarkCompleted(ctx context.Context, id string, at time.Time, lat, lon float64, proof string, totalHours, overtimeHours float64) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_out_at = $1, check_out_lat = $2, check_out_lon = $3,
			check_out_proof = $4, total_hours = $5, overtime_hours = $6,
			status = $7, updated_at = NOW()
		WHERE id = $8 AND status = $9
		RETURNING ` + attendanceColumns + `
	`
	rec, err := scanAttendance(q.QueryRow(ctx, query,
		at, lat, lon, proof, totalHours, overtimeHours,
		attendance.StatusCompleted, id, attendance.StatusCheckedIn,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Record{}, fmt.Errorf("failed to mark check-out: %w", err)
	}

	return rec, nil
}

// ListRange implements attendance.Repository. employeeID nil lists all
// employees; results join employee names for reporting.
func (a *attendanceRepositoryImpl) ListRange(ctx context.Context, employeeID *string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			ar.id, ar.employee_id, ar.date, ar.check_in_at, ar.check_out_at,
			ar.check_in_lat, ar.check_in_lon, ar.check_out_lat, ar.check_out_lon,
			ar.check_in_proof, ar.check_out_proof, ar.total_hours, ar.overtime_hours,
			ar.status, ar.created_at, ar.updated_at,
			e.full_name
		FROM attendance_records ar
		LEFT JOIN employees e ON e.id = ar.employee_id
		WHERE ar.date >= $1 AND ar.date <= $2
			AND ($3::uuid IS NULL OR ar.employee_id = $3)
		ORDER BY ar.date ASC, e.full_name ASC
	`

	rows, err := q.Query(ctx, query, from, to, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckInAt, &rec.CheckOutAt,
			&rec.CheckInLat, &rec.CheckInLon, &rec.CheckOutLat, &rec.CheckOutLon,
			&rec.CheckInProof, &rec.CheckOutProof, &rec.TotalHours, &rec.OvertimeHours,
			&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
