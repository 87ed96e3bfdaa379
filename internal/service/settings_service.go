package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/smart-helpdesk/helpdesk/internal/domain"
	"github.com/smart-helpdesk/helpdesk/internal/repository"
)

// SettingsCache is a read-through cache for the config singleton. A nil
// cache is valid and simply disables caching.
type SettingsCache interface {
	Get(ctx context.Context) (*domain.Settings, bool)
	Set(ctx context.Context, settings *domain.Settings)
	Invalidate(ctx context.Context)
}

// SettingsService is the accessor for the singleton triage config.
// First access creates and persists the defaults; the repository's
// fixed-key upsert keeps concurrent first accesses from racing two
// distinct instances into existence.
type SettingsService struct {
	settings repository.SettingsRepository
	cache    SettingsCache
	logger   *zap.Logger
}

// NewSettingsService builds the service.
func NewSettingsService(settings repository.SettingsRepository, cache SettingsCache, logger *zap.Logger) *SettingsService {
	return &SettingsService{settings: settings, cache: cache, logger: logger}
}

// Get returns the current config, creating the default on first access.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	settings, err := s.settings.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, settings)
	}
	return settings, nil
}

// Update merges the provided fields into the singleton and persists it.
// Last writer wins. The threshold is stored as given; range validation
// is the caller's contract.
func (s *SettingsService) Update(ctx context.Context, patch domain.SettingsPatch) (*domain.Settings, error) {
	settings, err := s.settings.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	if patch.AutoCloseEnabled != nil {
		settings.AutoCloseEnabled = *patch.AutoCloseEnabled
	}
	if patch.ConfidenceThreshold != nil {
		settings.ConfidenceThreshold = *patch.ConfidenceThreshold
	}

	if err := s.settings.Update(ctx, settings); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.logger.Info("settings updated",
		zap.Bool("auto_close_enabled", settings.AutoCloseEnabled),
		zap.Float64("confidence_threshold", settings.ConfidenceThreshold))
	return settings, nil
}
