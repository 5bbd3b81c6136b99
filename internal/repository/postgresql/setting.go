package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/bntng-project/esensi-backend/internal/domain/setting"
	"github.com/bntng-project/esensi-backend/internal/pkg/database"
)

type settingRepositoryImpl struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.Repository {
	return &settingRepositoryImpl{db: db}
}

// Get implements setting.Repository. Returns an empty string for unset keys.
func (s *settingRepositoryImpl) Get(ctx context.Context, key string) (string, error) {
	q := GetQuerier(ctx, s.db)

	var value string
	err := q.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}

	return value, nil
}

// Set implements setting.Repository.
func (s *settingRepositoryImpl) Set(ctx context.Context, key, value string) error {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}

	return nil
}

// GetGeoFence implements setting.Repository. Unset or malformed values fall
// back to the package defaults so a fresh install can still take attendance.
func (s *settingRepositoryImpl) GetGeoFence(ctx context.Context) (setting.OfficeGeoFence, error) {
	fence := setting.OfficeGeoFence{
		Latitude:      setting.DefaultOfficeLatitude,
		Longitude:     setting.DefaultOfficeLongitude,
		RadiusMeters:  setting.DefaultOfficeRadius,
		StandardHours: setting.DefaultStandardHours,
	}

	if v, err := s.getFloat(ctx, setting.KeyOfficeLatitude); err != nil {
		return setting.OfficeGeoFence{}, err
	} else if v != nil {
		fence.Latitude = *v
	}
	if v, err := s.getFloat(ctx, setting.KeyOfficeLongitude); err != nil {
		return setting.OfficeGeoFence{}, err
	} else if v != nil {
		fence.Longitude = *v
	}
	if v, err := s.getFloat(ctx, setting.KeyOfficeRadius); err != nil {
		return setting.OfficeGeoFence{}, err
	} else if v != nil {
		fence.RadiusMeters = *v
	}

	hours, err := s.GetStandardHours(ctx)
	if err != nil {
		return setting.OfficeGeoFence{}, err
	}
	fence.StandardHours = hours

	return fence, nil
}

// GetStandardHours implements setting.Repository.
func (s *settingRepositoryImpl) GetStandardHours(ctx context.Context) (int, error) {
	raw, err := s.Get(ctx, setting.KeyStandardHours)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return setting.DefaultStandardHours, nil
	}

	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return setting.DefaultStandardHours, nil
	}

	return hours, nil
}

// GetNotificationConfig implements setting.Repository.
func (s *settingRepositoryImpl) GetNotificationConfig(ctx context.Context) (setting.NotificationConfig, error) {
	var cfg setting.NotificationConfig
	var err error

	if cfg.APIKey, err = s.Get(ctx, setting.KeyWhatsAppAPIKey); err != nil {
		return setting.NotificationConfig{}, err
	}
	if cfg.Sender, err = s.Get(ctx, setting.KeyWhatsAppSender); err != nil {
		return setting.NotificationConfig{}, err
	}
	if cfg.HRNumber, err = s.Get(ctx, setting.KeyHRWhatsAppNumber); err != nil {
		return setting.NotificationConfig{}, err
	}

	return cfg, nil
}

func (s *settingRepositoryImpl) getFloat(ctx context.Context, key string) (*float64, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, nil
	}

	return &v, nil
}
