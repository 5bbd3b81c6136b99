package setting

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/bntng-project/esensi-backend/internal/domain/setting"
	"github.com/bntng-project/esensi-backend/internal/pkg/database"
	"github.com/bntng-project/esensi-backend/internal/repository/postgresql"
)

type SettingServiceImpl struct {
	db          *database.DB
	settingRepo setting.Repository
}

func NewSettingService(db *database.DB, settingRepo setting.Repository) *SettingServiceImpl {
	return &SettingServiceImpl{db: db, settingRepo: settingRepo}
}

// Get returns the current settings view. The gateway API key is write-only
// and never echoed back.
func (s *SettingServiceImpl) Get(ctx context.Context) (setting.SettingsResponse, error) {
	fence, err := s.settingRepo.GetGeoFence(ctx)
	if err != nil {
		return setting.SettingsResponse{}, err
	}
	cfg, err := s.settingRepo.GetNotificationConfig(ctx)
	if err != nil {
		return setting.SettingsResponse{}, err
	}

	return setting.SettingsResponse{
		OfficeLatitude:  fence.Latitude,
		OfficeLongitude: fence.Longitude,
		OfficeRadius:    fence.RadiusMeters,
		StandardHours:   fence.StandardHours,
		WhatsAppSender:  cfg.Sender,
		HRNumber:        cfg.HRNumber,
	}, nil
}

// Update writes only the fields present in the request. New values apply to
// the next transition; in-flight requests keep the snapshot they read.
func (s *SettingServiceImpl) Update(ctx context.Context, req setting.UpdateSettingsRequest) (setting.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return setting.SettingsResponse{}, err
	}

	writes := map[string]*string{}
	if req.OfficeLatitude != nil {
		v := strconv.FormatFloat(*req.OfficeLatitude, 'f', -1, 64)
		writes[setting.KeyOfficeLatitude] = &v
	}
	if req.OfficeLongitude != nil {
		v := strconv.FormatFloat(*req.OfficeLongitude, 'f', -1, 64)
		writes[setting.KeyOfficeLongitude] = &v
	}
	if req.OfficeRadius != nil {
		v := strconv.Itoa(*req.OfficeRadius)
		writes[setting.KeyOfficeRadius] = &v
	}
	if req.StandardHours != nil {
		v := strconv.Itoa(*req.StandardHours)
		writes[setting.KeyStandardHours] = &v
	}
	if req.WhatsAppAPIKey != nil {
		writes[setting.KeyWhatsAppAPIKey] = req.WhatsAppAPIKey
	}
	if req.WhatsAppSender != nil {
		writes[setting.KeyWhatsAppSender] = req.WhatsAppSender
	}
	if req.HRNumber != nil {
		writes[setting.KeyHRWhatsAppNumber] = req.HRNumber
	}

	// All keys commit together so a partially applied fence cannot be read.
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for key, value := range writes {
			if err := s.settingRepo.Set(txCtx, key, *value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return setting.SettingsResponse{}, err
	}

	return s.Get(ctx)
}
