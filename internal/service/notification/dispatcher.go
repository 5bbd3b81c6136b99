package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bntng-project/esensi-backend/internal/domain/employee"
	"github.com/bntng-project/esensi-backend/internal/domain/notification"
	"github.com/bntng-project/esensi-backend/internal/domain/setting"
	"github.com/bntng-project/esensi-backend/internal/pkg/storage"
	"github.com/bntng-project/esensi-backend/internal/pkg/whatsapp"
)

const (
	queueSize       = 64
	deliveryTimeout = 5 * time.Second
)

// NotifierFactory builds a gateway client from the current settings. Settings
// are re-read per event so credential changes apply without a restart.
type NotifierFactory func(cfg setting.NotificationConfig) notification.Notifier

// GatewayFactory adapts the WhatsApp client to NotifierFactory.
func GatewayFactory(baseURL string) NotifierFactory {
	return func(cfg setting.NotificationConfig) notification.Notifier {
		return whatsapp.NewClient(baseURL, cfg.APIKey, cfg.Sender)
	}
}

// Dispatcher fans attendance events out over WhatsApp in the background.
// Delivery is strictly best-effort: failures are logged and never retried,
// and a full queue drops the event rather than block a check-in.
type Dispatcher struct {
	settingRepo  setting.Repository
	employeeRepo employee.Repository
	files        storage.FileStorage
	newNotifier  NotifierFactory
	logger       *slog.Logger

	queue     chan func(ctx context.Context)
	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewDispatcher(
	settingRepo setting.Repository,
	employeeRepo employee.Repository,
	files storage.FileStorage,
	newNotifier NotifierFactory,
	logger *slog.Logger,
) *Dispatcher {
	d := &Dispatcher{
		settingRepo:  settingRepo,
		employeeRepo: employeeRepo,
		files:        files,
		newNotifier:  newNotifier,
		logger:       logger,
		queue:        make(chan func(ctx context.Context), queueSize),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for job := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		job(ctx)
		cancel()
	}
}

// Close implements notification.Service. Queued deliveries are drained
// before it returns.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

func (d *Dispatcher) enqueue(job func(ctx context.Context)) {
	select {
	case d.queue <- job:
	default:
		d.logger.Warn("notification queue full, dropping event")
	}
}

// CheckedIn implements notification.Service.
func (d *Dispatcher) CheckedIn(ev notification.CheckInEvent) {
	d.enqueue(func(ctx context.Context) {
		d.deliverCheckIn(ctx, ev)
	})
}

// CheckedOut implements notification.Service.
func (d *Dispatcher) CheckedOut(ev notification.CheckOutEvent) {
	d.enqueue(func(ctx context.Context) {
		d.deliverCheckOut(ctx, ev)
	})
}

func (d *Dispatcher) deliverCheckIn(ctx context.Context, ev notification.CheckInEvent) {
	cfg, notifier, ok := d.gateway(ctx)
	if !ok {
		return
	}

	date := ev.Date.Format("2006-01-02")
	clock := ev.CheckInAt.Format("15:04")

	if number := d.employeeNumber(ctx, ev.EmployeeID); number != "" {
		msg := fmt.Sprintf(
			"Halo %s, absen masuk kamu pada %s pukul %s sudah tercatat. Selamat bekerja!",
			ev.EmployeeName, date, clock,
		)
		d.send(ctx, notifier, number, msg, "employee check-in")
	}

	if number := d.adminNumber(ctx); number != "" {
		msg := fmt.Sprintf("%s telah absen masuk pada %s pukul %s.", ev.EmployeeName, date, clock)
		d.send(ctx, notifier, number, msg, "admin check-in")
	}

	if cfg.HRNumber != "" {
		caption := fmt.Sprintf("Bukti absen masuk %s, %s pukul %s.", ev.EmployeeName, date, clock)
		d.sendMedia(ctx, notifier, cfg.HRNumber, ev.EvidenceURL, caption, "hr check-in media")
	}
}

func (d *Dispatcher) deliverCheckOut(ctx context.Context, ev notification.CheckOutEvent) {
	cfg, notifier, ok := d.gateway(ctx)
	if !ok {
		return
	}

	date := ev.Date.Format("2006-01-02")
	outDate := ev.CheckOutDate.Format("2006-01-02")
	clock := ev.CheckOutAt.Format("15:04")

	summary := fmt.Sprintf(
		"Total jam kerja: %.2f jam\nLembur: %.2f jam\nUpah hari ini: Rp%s",
		ev.TotalHours, ev.OvertimeHours, ev.TotalPay.StringFixed(2),
	)
	if outDate != date {
		summary = fmt.Sprintf("Shift dimulai %s dan berakhir %s.\n%s", date, outDate, summary)
	}

	if number := d.employeeNumber(ctx, ev.EmployeeID); number != "" {
		msg := fmt.Sprintf(
			"Halo %s, absen pulang kamu pukul %s sudah tercatat.\n%s",
			ev.EmployeeName, clock, summary,
		)
		d.send(ctx, notifier, number, msg, "employee check-out")
	}

	if number := d.adminNumber(ctx); number != "" {
		msg := fmt.Sprintf("%s telah absen pulang pada %s pukul %s.\n%s", ev.EmployeeName, outDate, clock, summary)
		d.send(ctx, notifier, number, msg, "admin check-out")
	}

	if cfg.HRNumber != "" {
		caption := fmt.Sprintf("Bukti absen pulang %s, %s pukul %s.", ev.EmployeeName, outDate, clock)
		d.sendMedia(ctx, notifier, cfg.HRNumber, ev.EvidenceURL, caption, "hr check-out media")
	}
}

// gateway loads the current credentials and builds a client. Missing
// credentials disable notifications silently; that is a valid configuration,
// not an error.
func (d *Dispatcher) gateway(ctx context.Context) (setting.NotificationConfig, notification.Notifier, bool) {
	cfg, err := d.settingRepo.GetNotificationConfig(ctx)
	if err != nil {
		d.logger.Error("failed to load notification config", slog.String("error", err.Error()))
		return setting.NotificationConfig{}, nil, false
	}
	if cfg.APIKey == "" || cfg.Sender == "" {
		return setting.NotificationConfig{}, nil, false
	}
	return cfg, d.newNotifier(cfg), true
}

func (d *Dispatcher) employeeNumber(ctx context.Context, employeeID string) string {
	emp, err := d.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		d.logger.Error("failed to load employee for notification",
			slog.String("employee_id", employeeID),
			slog.String("error", err.Error()),
		)
		return ""
	}
	if emp.WhatsAppNumber == nil {
		return ""
	}
	return *emp.WhatsAppNumber
}

func (d *Dispatcher) adminNumber(ctx context.Context) string {
	admin, err := d.employeeRepo.FindAdmin(ctx)
	if err != nil {
		d.logger.Error("failed to find admin for notification", slog.String("error", err.Error()))
		return ""
	}
	if admin == nil || admin.WhatsAppNumber == nil {
		return ""
	}
	return *admin.WhatsAppNumber
}

func (d *Dispatcher) send(ctx context.Context, notifier notification.Notifier, number, message, kind string) {
	if err := notifier.SendMessage(ctx, number, message); err != nil {
		d.logger.Error("failed to send notification",
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
	}
}

func (d *Dispatcher) sendMedia(ctx context.Context, notifier notification.Notifier, number, evidenceRef, caption, kind string) {
	mediaURL, err := d.files.GetURL(ctx, evidenceRef, deliveryTimeout)
	if err != nil {
		d.logger.Error("failed to resolve evidence url",
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := notifier.SendMedia(ctx, number, mediaURL, caption); err != nil {
		d.logger.Error("failed to send media notification",
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
	}
}
