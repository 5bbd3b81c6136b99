package setting

import "github.com/bntng-project/esensi-backend/internal/pkg/geo"

// Settings are stored as key/value rows; these are the keys the core reads.
const (
	KeyOfficeLatitude   = "office_latitude"
	KeyOfficeLongitude  = "office_longitude"
	KeyOfficeRadius     = "office_radius_meters"
	KeyStandardHours    = "standard_work_hours"
	KeyWhatsAppAPIKey   = "whatsapp_api_key"
	KeyWhatsAppSender   = "whatsapp_sender"
	KeyHRWhatsAppNumber = "hrd_whatsapp_number"
)

// Defaults applied when a key has never been configured.
const (
	DefaultOfficeLatitude  = -6.2088
	DefaultOfficeLongitude = 106.8456
	DefaultOfficeRadius    = 100
	DefaultStandardHours   = 8
)

// OfficeGeoFence is the configured office boundary plus the overtime
// threshold. Read as a point-in-time snapshot per transition.
type OfficeGeoFence struct {
	Latitude      float64
	Longitude     float64
	RadiusMeters  float64
	StandardHours int
}

// Fence converts the configuration into a geo.Fence for distance checks.
func (f OfficeGeoFence) Fence() geo.Fence {
	return geo.Fence{
		Latitude:     f.Latitude,
		Longitude:    f.Longitude,
		RadiusMeters: f.RadiusMeters,
	}
}

// NotificationConfig is the WhatsApp gateway credential set plus the HR
// contact for evidence media.
type NotificationConfig struct {
	APIKey   string
	Sender   string
	HRNumber string
}
