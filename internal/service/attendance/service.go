package attendance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bntng-project/esensi-backend/internal/domain/attendance"
	"github.com/bntng-project/esensi-backend/internal/domain/employee"
	"github.com/bntng-project/esensi-backend/internal/domain/notification"
	"github.com/bntng-project/esensi-backend/internal/domain/setting"
	"github.com/bntng-project/esensi-backend/internal/pkg/geo"
	"github.com/bntng-project/esensi-backend/internal/pkg/worktime"
	"github.com/bntng-project/esensi-backend/internal/service/payroll"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	settingRepo    setting.Repository
	notifier       notification.Service

	// now is swappable so the state machine can be tested at fixed clock
	// positions, including just past midnight.
	now func() time.Time

	locks employeeLocks
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	settingRepo setting.Repository,
	notifier notification.Service,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		settingRepo:    settingRepo,
		notifier:       notifier,
		now:            time.Now,
		locks:          employeeLocks{locks: make(map[string]*sync.Mutex)},
	}
}

// employeeLocks serializes transitions per employee. The database status
// guards are the source of truth; the lock only prevents two requests from
// the same employee racing through validation with the same stale snapshot.
type employeeLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *employeeLocks) acquire(employeeID string) *sync.Mutex {
	l.mu.Lock()
	lock, ok := l.locks[employeeID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[employeeID] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock
}

// CheckIn implements attendance.Service.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.Snapshot, error) {
	if err := req.Validate(); err != nil {
		return attendance.Snapshot{}, err
	}
	if req.EvidenceRef == "" {
		return attendance.Snapshot{}, attendance.ErrEvidenceMissing
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Snapshot{}, err
	}
	if !emp.IsActive {
		return attendance.Snapshot{}, employee.ErrEmployeeInactive
	}

	fence, err := s.settingRepo.GetGeoFence(ctx)
	if err != nil {
		return attendance.Snapshot{}, fmt.Errorf("failed to load office geofence: %w", err)
	}
	if err := s.checkFence(req.Latitude, req.Longitude, fence); err != nil {
		return attendance.Snapshot{}, err
	}

	lock := s.locks.acquire(req.EmployeeID)
	defer lock.Unlock()

	now := s.now()
	today := attendance.Day(now)

	rec, err := s.attendanceRepo.GetOrCreate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.Snapshot{}, err
	}
	if rec.Status != attendance.StatusNotCheckedIn {
		return attendance.Snapshot{}, attendance.ErrAlreadyCheckedIn
	}

	rec, err = s.attendanceRepo.MarkCheckedIn(ctx, rec.ID, now, req.Latitude, req.Longitude, req.EvidenceRef)
	if err != nil {
		return attendance.Snapshot{}, err
	}

	s.notifier.CheckedIn(notification.CheckInEvent{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		Date:         rec.Date,
		CheckInAt:    now,
		EvidenceURL:  req.EvidenceRef,
	})

	return attendance.NewSnapshot(rec), nil
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.PayrollSnapshot, error) {
	if err := req.Validate(); err != nil {
		return attendance.PayrollSnapshot{}, err
	}
	if req.EvidenceRef == "" {
		return attendance.PayrollSnapshot{}, attendance.ErrEvidenceMissing
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.PayrollSnapshot{}, err
	}
	if !emp.IsActive {
		return attendance.PayrollSnapshot{}, employee.ErrEmployeeInactive
	}

	fence, err := s.settingRepo.GetGeoFence(ctx)
	if err != nil {
		return attendance.PayrollSnapshot{}, fmt.Errorf("failed to load office geofence: %w", err)
	}
	if err := s.checkFence(req.Latitude, req.Longitude, fence); err != nil {
		return attendance.PayrollSnapshot{}, err
	}

	lock := s.locks.acquire(req.EmployeeID)
	defer lock.Unlock()

	now := s.now()
	today := attendance.Day(now)

	rec, err := s.resolveActiveRecord(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.PayrollSnapshot{}, err
	}
	if rec.CheckInAt == nil {
		return attendance.PayrollSnapshot{}, attendance.ErrNotCheckedIn
	}

	checkIn := *rec.CheckInAt
	checkOut := resolveCheckOutMoment(rec.Date, today, checkIn, now)

	totalHours := worktime.Hours(checkIn, checkOut)
	overtimeHours := worktime.Overtime(totalHours, fence.StandardHours)

	rec, err = s.attendanceRepo.MarkCompleted(ctx, rec.ID, checkOut,
		req.Latitude, req.Longitude, req.EvidenceRef, totalHours, overtimeHours)
	if err != nil {
		return attendance.PayrollSnapshot{}, err
	}

	totalPay := payroll.DailyPay(emp.DailyRate, overtimeHours, emp.OvertimeHourlyRate)

	s.notifier.CheckedOut(notification.CheckOutEvent{
		EmployeeID:    emp.ID,
		EmployeeName:  emp.FullName,
		Date:          rec.Date,
		CheckInAt:     checkIn,
		CheckOutDate:  attendance.Day(checkOut),
		CheckOutAt:    checkOut,
		TotalHours:    totalHours,
		OvertimeHours: overtimeHours,
		TotalPay:      totalPay,
		EvidenceURL:   req.EvidenceRef,
	})

	return attendance.PayrollSnapshot{
		Snapshot:     attendance.NewSnapshot(rec),
		DailyRate:    emp.DailyRate,
		OvertimeRate: emp.OvertimeHourlyRate,
		OvertimePay:  payroll.OvertimePay(overtimeHours, emp.OvertimeHourlyRate),
		TotalPay:     totalPay,
	}, nil
}

// resolveActiveRecord finds the open shift to close. Today's record always
// wins when one exists, whatever its status; only an employee with no record
// at all for today is routed to yesterday's still-open record. This is what
// lets an overnight worker check out after midnight against the shift they
// started the previous day, without a stale open day ever shadowing today's
// already-finished one.
func (s *AttendanceServiceImpl) resolveActiveRecord(ctx context.Context, employeeID string, today time.Time) (attendance.Record, error) {
	rec, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.Record{}, err
	}
	if rec != nil {
		switch rec.Status {
		case attendance.StatusCheckedIn:
			return *rec, nil
		case attendance.StatusCompleted:
			return attendance.Record{}, attendance.ErrAlreadyCheckedOut
		default:
			return attendance.Record{}, attendance.ErrNotCheckedIn
		}
	}

	yesterday := today.AddDate(0, 0, -1)
	prev, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, yesterday)
	if err != nil {
		return attendance.Record{}, err
	}
	if prev != nil && prev.Status == attendance.StatusCheckedIn {
		return *prev, nil
	}

	return attendance.Record{}, attendance.ErrNoActiveCheckIn
}

// resolveCheckOutMoment anchors the checkout wall-clock time to a calendar
// date. A record carried over from an earlier day always checks out on
// today's date. A same-day record checks out on its own day unless the
// checkout time-of-day is earlier than the check-in time-of-day: an earlier
// clock reading means the clock wrapped past midnight.
func resolveCheckOutMoment(recordDate, today time.Time, checkIn, now time.Time) time.Time {
	if recordDate.Before(today) {
		return worktime.OnDay(today, now)
	}
	day := recordDate
	if worktime.SecondsOfDay(now) < worktime.SecondsOfDay(checkIn) {
		day = day.AddDate(0, 0, 1)
	}
	return worktime.OnDay(day, now)
}

// History implements attendance.Service.
func (s *AttendanceServiceImpl) History(ctx context.Context, employeeID string, filter attendance.HistoryFilter) ([]attendance.Snapshot, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	to := attendance.Day(s.now())
	if filter.EndDate != nil && *filter.EndDate != "" {
		to, _ = time.Parse("2006-01-02", *filter.EndDate)
	}

	// Default window is the trailing 30 days.
	from := to.AddDate(0, 0, -30)
	if filter.StartDate != nil && *filter.StartDate != "" {
		from, _ = time.Parse("2006-01-02", *filter.StartDate)
	}

	records, err := s.attendanceRepo.ListRange(ctx, &employeeID, from, to)
	if err != nil {
		return nil, err
	}

	snapshots := make([]attendance.Snapshot, 0, len(records))
	for _, rec := range records {
		snapshots = append(snapshots, attendance.NewSnapshot(rec))
	}

	return snapshots, nil
}

func (s *AttendanceServiceImpl) checkFence(lat, lon float64, cfg setting.OfficeGeoFence) error {
	// (0, 0) is the mobile client's "no GPS fix yet" sentinel, not a real
	// position.
	if lat == 0 && lon == 0 {
		return attendance.ErrInvalidGeofence
	}

	fence := cfg.Fence()
	if !geo.WithinFence(lat, lon, fence) {
		return &attendance.OutOfFenceError{
			DistanceMeters: geo.DistanceMeters(fence.Latitude, fence.Longitude, lat, lon),
			RadiusMeters:   fence.RadiusMeters,
		}
	}

	return nil
}
