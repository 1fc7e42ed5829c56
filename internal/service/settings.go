package service

import (
	"context"
	"errors"

	"flagquiz/internal/domain/entities"
	"flagquiz/internal/repository"
)

type SettingsRepository interface {
	Create(ctx context.Context, userID int64, roundLength int) error
	GetByUserID(ctx context.Context, userID int64) (*entities.UserSettings, error)
	UpdateContinent(ctx context.Context, userID int64, continent string) error
	UpdateRoundLength(ctx context.Context, userID int64, roundLength int) error
	ToggleSound(ctx context.Context, userID int64) error
	ToggleReminder(ctx context.Context, userID int64) error
	UpdateReminderHour(ctx context.Context, userID int64, hour int) error
}

type SettingsService struct {
	repository         SettingsRepository
	defaultRoundLength int
}

// NewSettingsService creates the settings service. defaultRoundLength is
// the round length written into newly created settings rows; a
// non-positive value falls back to the built-in default.
func NewSettingsService(repository SettingsRepository, defaultRoundLength int) *SettingsService {
	if defaultRoundLength <= 0 {
		defaultRoundLength = entities.DefaultRoundLength
	}

	return &SettingsService{
		repository:         repository,
		defaultRoundLength: defaultRoundLength,
	}
}

func (s *SettingsService) GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error) {
	settings, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			// Create default settings.
			if err := s.repository.Create(ctx, userID, s.defaultRoundLength); err != nil {
				return nil, err
			}
			// Retrieve newly created settings.
			return s.repository.GetByUserID(ctx, userID)
		}
		return nil, err
	}

	return settings, nil
}

func (s *SettingsService) UpdateContinent(ctx context.Context, userID int64, continent string) error {
	return s.repository.UpdateContinent(ctx, userID, continent)
}

func (s *SettingsService) UpdateRoundLength(ctx context.Context, userID int64, roundLength int) error {
	return s.repository.UpdateRoundLength(ctx, userID, roundLength)
}

func (s *SettingsService) ToggleSound(ctx context.Context, userID int64) error {
	return s.repository.ToggleSound(ctx, userID)
}

func (s *SettingsService) ToggleReminder(ctx context.Context, userID int64) error {
	return s.repository.ToggleReminder(ctx, userID)
}

func (s *SettingsService) UpdateReminderHour(ctx context.Context, userID int64, hour int) error {
	return s.repository.UpdateReminderHour(ctx, userID, hour)
}
