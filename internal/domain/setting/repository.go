package setting

import "context"

// Repository reads and writes the key/value settings store. The core only
// reads; writes come from the admin settings endpoints.
type Repository interface {
	// GetGeoFence returns the configured office fence and standard hours,
	// falling back to defaults for unset keys.
	GetGeoFence(ctx context.Context) (OfficeGeoFence, error)

	// GetStandardHours returns the configured overtime threshold (default 8).
	GetStandardHours(ctx context.Context) (int, error)

	// GetNotificationConfig returns the WhatsApp gateway settings; empty
	// fields mean notifications are disabled.
	GetNotificationConfig(ctx context.Context) (NotificationConfig, error)

	Get(ctx context.Context, key string) (string, error)

	// Set upserts a key.
	Set(ctx context.Context, key, value string) error
}
