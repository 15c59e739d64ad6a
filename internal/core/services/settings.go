package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
	"github.com/custodia-labs/notedex/internal/logger"
)

// Config keys for settings storage.
const (
	KeySite        = "site.location"
	KeyDebounceMS  = "ui.debounce_ms"
	KeyHTTPTimeout = "http.timeout_seconds"
)

// SettingKeys lists the keys SettingsService understands, in display order.
var SettingKeys = []string{KeySite, KeyDebounceMS, KeyHTTPTimeout}

// SettingsService resolves application settings from a ConfigStore,
// falling back to domain defaults.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Site:               s.getString(KeySite, defaults.Site),
		DebounceMS:         s.getInt(KeyDebounceMS, defaults.DebounceMS),
		HTTPTimeoutSeconds: s.getInt(KeyHTTPTimeout, defaults.HTTPTimeoutSeconds),
	}

	// Out-of-range values fall back to the defaults.
	if settings.DebounceMS < 0 {
		logger.Warn("%s=%d is negative, using %d", KeyDebounceMS, settings.DebounceMS, defaults.DebounceMS)
		settings.DebounceMS = defaults.DebounceMS
	}
	if settings.HTTPTimeoutSeconds <= 0 {
		logger.Warn("%s=%d is not positive, using %d", KeyHTTPTimeout, settings.HTTPTimeoutSeconds, defaults.HTTPTimeoutSeconds)
		settings.HTTPTimeoutSeconds = defaults.HTTPTimeoutSeconds
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := s.configStore.Set(KeySite, settings.Site); err != nil {
		return fmt.Errorf("save site: %w", err)
	}
	if err := s.configStore.Set(KeyDebounceMS, settings.DebounceMS); err != nil {
		return fmt.Errorf("save debounce: %w", err)
	}
	if err := s.configStore.Set(KeyHTTPTimeout, settings.HTTPTimeoutSeconds); err != nil {
		return fmt.Errorf("save http timeout: %w", err)
	}
	return nil
}

// Set updates a single setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeySite:
		settings.Site = value
	case KeyDebounceMS, KeyHTTPTimeout:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		if key == KeyDebounceMS {
			settings.DebounceMS = n
		} else {
			settings.HTTPTimeoutSeconds = n
		}
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// ConfigPath returns where settings are persisted.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

// getString gets a string value with a default.
func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

// getInt gets an int value with a default.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}
