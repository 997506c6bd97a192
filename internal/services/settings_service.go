package services

import (
	"context"

	"github.com/google/uuid"

	dbm "kamehameha/internal/models/db_models"
	"kamehameha/internal/models/request_models"
	"kamehameha/internal/models/response_models"
	"kamehameha/internal/repositories"
	"kamehameha/pkg/utils"
)

type SettingsServiceInterface interface {
	GetTimerSettings(ctx context.Context, accountID string) (*response_models.TimerSettingsResponse, error)
	UpdateTimerSettings(ctx context.Context, accountID string, req request_models.UpdateTimerSettingsRequest) (*response_models.TimerSettingsResponse, error)
}

type SettingsService struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsServiceInterface {
	return &SettingsService{settingsRepo: settingsRepo}
}

func (s *SettingsService) GetTimerSettings(ctx context.Context, accountID string) (*response_models.TimerSettingsResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	settings, err := s.settingsRepo.GetByAccount(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if settings == nil {
		// First read gets the defaults without persisting anything.
		return &response_models.TimerSettingsResponse{
			FocusMinutes:      25,
			ShortBreakMinutes: 5,
			LongBreakMinutes:  15,
			LongBreakEvery:    4,
			SoundEnabled:      true,
		}, nil
	}
	return toSettingsResponse(settings), nil
}

func (s *SettingsService) UpdateTimerSettings(ctx context.Context, accountID string, req request_models.UpdateTimerSettingsRequest) (*response_models.TimerSettingsResponse, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	settings := dbm.TimerSettings{
		AccountID:         id,
		FocusMinutes:      req.FocusMinutes,
		ShortBreakMinutes: req.ShortBreakMinutes,
		LongBreakMinutes:  req.LongBreakMinutes,
		LongBreakEvery:    req.LongBreakEvery,
		SoundEnabled:      req.SoundEnabled,
	}
	if err := s.settingsRepo.Upsert(ctx, &settings); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toSettingsResponse(&settings), nil
}

func toSettingsResponse(s *dbm.TimerSettings) *response_models.TimerSettingsResponse {
	return &response_models.TimerSettingsResponse{
		FocusMinutes:      s.FocusMinutes,
		ShortBreakMinutes: s.ShortBreakMinutes,
		LongBreakMinutes:  s.LongBreakMinutes,
		LongBreakEvery:    s.LongBreakEvery,
		SoundEnabled:      s.SoundEnabled,
	}
}
