package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "kamehameha/internal/models/db_models"
)

type SettingsRepository interface {
	GetByAccount(ctx context.Context, accountID uuid.UUID) (*dbm.TimerSettings, error)
	Upsert(ctx context.Context, settings *dbm.TimerSettings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByAccount(ctx context.Context, accountID uuid.UUID) (*dbm.TimerSettings, error) {
	var settings dbm.TimerSettings
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *dbm.TimerSettings) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"focus_minutes", "short_break_minutes", "long_break_minutes",
				"long_break_every", "sound_enabled", "updated_at",
			}),
		}).
		Create(settings).Error
}
