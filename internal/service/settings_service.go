package service

import (
	"context"
	"fmt"

	"deli-admin/internal/model"
	"deli-admin/internal/repository"

	"github.com/rs/zerolog"
)

// settingsService implements SettingsService.
type settingsService struct {
	settingsRepo repository.SettingsRepository
	logger       zerolog.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo repository.SettingsRepository, logger zerolog.Logger) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		logger:       logger.With().Str("service", "settings").Logger(),
	}
}

func (s *settingsService) Announcement(ctx context.Context) (string, error) {
	setting, err := s.settingsRepo.Get(ctx, model.SettingAnnouncementText)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get announcement")
		return "", fmt.Errorf("failed to get announcement: %w", err)
	}
	if setting == nil {
		return "", nil
	}
	return setting.Value, nil
}

func (s *settingsService) SetAnnouncement(ctx context.Context, text string) error {
	if err := s.settingsRepo.Upsert(ctx, model.SettingAnnouncementText, text); err != nil {
		s.logger.Error().Err(err).Msg("failed to save announcement")
		return fmt.Errorf("%w: %w", model.ErrPersistFailed, err)
	}

	s.logger.Info().Int("length", len(text)).Msg("announcement updated")
	return nil
}
