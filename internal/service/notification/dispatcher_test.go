package notification

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bntng-project/esensi-backend/internal/domain/employee"
	"github.com/bntng-project/esensi-backend/internal/domain/notification"
	"github.com/bntng-project/esensi-backend/internal/domain/setting"
)

type sentMessage struct {
	number  string
	message string
}

type sentMedia struct {
	number   string
	mediaURL string
	caption  string
}

type capturingNotifier struct {
	mu       sync.Mutex
	messages []sentMessage
	media    []sentMedia
}

func (c *capturingNotifier) SendMessage(ctx context.Context, number, message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, sentMessage{number, message})
	return nil
}

func (c *capturingNotifier) SendMedia(ctx context.Context, number, mediaURL, caption string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.media = append(c.media, sentMedia{number, mediaURL, caption})
	return nil
}

type stubSettingRepo struct {
	cfg setting.NotificationConfig
}

func (s *stubSettingRepo) GetGeoFence(ctx context.Context) (setting.OfficeGeoFence, error) {
	return setting.OfficeGeoFence{}, nil
}
func (s *stubSettingRepo) GetStandardHours(ctx context.Context) (int, error) { return 8, nil }
func (s *stubSettingRepo) GetNotificationConfig(ctx context.Context) (setting.NotificationConfig, error) {
	return s.cfg, nil
}
func (s *stubSettingRepo) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (s *stubSettingRepo) Set(ctx context.Context, key, value string) error    { return nil }

type stubEmployeeRepo struct {
	employees map[string]employee.Employee
	admin     *employee.Employee
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}
func (s *stubEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (s *stubEmployeeRepo) FindAdmin(ctx context.Context) (*employee.Employee, error) {
	return s.admin, nil
}
func (s *stubEmployeeRepo) UpdateRates(ctx context.Context, id string, dailyRate, overtimeRate decimal.Decimal, isActive bool) (employee.Employee, error) {
	return employee.Employee{}, nil
}

type stubStorage struct{}

func (stubStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	return path, nil
}
func (stubStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, nil
}
func (stubStorage) Delete(ctx context.Context, path string) error { return nil }
func (stubStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://files.local/" + path, nil
}
func (stubStorage) Exists(ctx context.Context, path string) (bool, error) { return true, nil }

func ptr(s string) *string { return &s }

func newTestDispatcher(cfg setting.NotificationConfig) (*Dispatcher, *capturingNotifier) {
	captured := &capturingNotifier{}

	employees := &stubEmployeeRepo{
		employees: map[string]employee.Employee{
			"emp-1": {
				ID:             "emp-1",
				FullName:       "Budi Santoso",
				WhatsAppNumber: ptr("6281111111111"),
				IsActive:       true,
			},
		},
		admin: &employee.Employee{
			ID:             "admin-1",
			Role:           employee.RoleAdmin,
			WhatsAppNumber: ptr("6282222222222"),
			IsActive:       true,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := NewDispatcher(&stubSettingRepo{cfg: cfg}, employees, stubStorage{},
		func(setting.NotificationConfig) notification.Notifier { return captured }, logger)

	return d, captured
}

func TestDispatcher_CheckedIn(t *testing.T) {
	cfg := setting.NotificationConfig{APIKey: "key", Sender: "628000", HRNumber: "6283333333333"}
	d, captured := newTestDispatcher(cfg)

	d.CheckedIn(notification.CheckInEvent{
		EmployeeID:   "emp-1",
		EmployeeName: "Budi Santoso",
		Date:         time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		CheckInAt:    time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC),
		EvidenceURL:  "attendance/emp-1/in.jpg",
	})
	d.Close()

	require.Len(t, captured.messages, 2)
	assert.Equal(t, "6281111111111", captured.messages[0].number)
	assert.Contains(t, captured.messages[0].message, "Budi Santoso")
	assert.Contains(t, captured.messages[0].message, "absen masuk")
	assert.Equal(t, "6282222222222", captured.messages[1].number)

	require.Len(t, captured.media, 1)
	assert.Equal(t, "6283333333333", captured.media[0].number)
	assert.Equal(t, "http://files.local/attendance/emp-1/in.jpg", captured.media[0].mediaURL)
}

func TestDispatcher_CheckedOut_Overnight(t *testing.T) {
	cfg := setting.NotificationConfig{APIKey: "key", Sender: "628000"}
	d, captured := newTestDispatcher(cfg)

	d.CheckedOut(notification.CheckOutEvent{
		EmployeeID:    "emp-1",
		EmployeeName:  "Budi Santoso",
		Date:          time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		CheckInAt:     time.Date(2024, 1, 5, 22, 0, 0, 0, time.UTC),
		CheckOutDate:  time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		CheckOutAt:    time.Date(2024, 1, 6, 6, 15, 0, 0, time.UTC),
		TotalHours:    8.25,
		OvertimeHours: 0.25,
		TotalPay:      decimal.RequireFromString("103750"),
		EvidenceURL:   "attendance/emp-1/out.jpg",
	})
	d.Close()

	require.Len(t, captured.messages, 2)
	msg := captured.messages[0].message
	assert.Contains(t, msg, "8.25 jam")
	assert.Contains(t, msg, "Rp103750.00")
	assert.Contains(t, msg, "Shift dimulai 2024-01-05 dan berakhir 2024-01-06")

	// No HR number configured, so no media delivery.
	assert.Empty(t, captured.media)
}

func TestDispatcher_DisabledWithoutCredentials(t *testing.T) {
	d, captured := newTestDispatcher(setting.NotificationConfig{})

	d.CheckedIn(notification.CheckInEvent{EmployeeID: "emp-1", EmployeeName: "Budi Santoso"})
	d.Close()

	assert.Empty(t, captured.messages)
	assert.Empty(t, captured.media)
}
