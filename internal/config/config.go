// Package config resolves notedex settings from flags, the environment,
// the config file and built-in defaults, in that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/notedex/internal/adapters/driven/config/env"
	"github.com/custodia-labs/notedex/internal/adapters/driven/config/file"
	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
	"github.com/custodia-labs/notedex/internal/core/services"
)

// Environment variables that override the config file.
const (
	EnvSite        = "NOTEDEX_SITE"
	EnvDebounceMS  = "NOTEDEX_DEBOUNCE_MS"
	EnvHTTPTimeout = "NOTEDEX_HTTP_TIMEOUT_SECONDS"
)

// EnvVars maps config keys to their environment variables.
var EnvVars = map[string]string{
	services.KeySite:        EnvSite,
	services.KeyDebounceMS:  EnvDebounceMS,
	services.KeyHTTPTimeout: EnvHTTPTimeout,
}

// Source names where a resolved value came from.
type Source string

// Value sources, highest precedence first.
const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceFile    Source = "file"
	SourceDefault Source = "default"
)

// Options are the command-line inputs to resolution.
type Options struct {
	// ConfigDir overrides ~/.notedex.
	ConfigDir string

	// Site overrides the site location for this run only.
	Site string

	// DotEnv lists .env files to load. Defaults to ./.env.
	DotEnv []string

	// Lookup replaces os.LookupEnv. Used by tests.
	Lookup env.LookupFunc
}

// Config is the resolved configuration.
type Config struct {
	// Settings are the effective values for this run.
	Settings *domain.Settings

	// Service reads settings through the layered store.
	Service *services.SettingsService

	store   driven.ConfigStore
	overlay *env.Overlay
	site    string
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	if opts.Lookup == nil {
		env.LoadDotEnv(opts.DotEnv...)
	}

	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return fromStore(store, opts)
}

// fromStore layers the environment over store and applies flags.
func fromStore(store driven.ConfigStore, opts Options) (*Config, error) {
	overlayOpts := []env.Option{
		env.WithIntKeys(services.KeyDebounceMS, services.KeyHTTPTimeout),
	}
	if opts.Lookup != nil {
		overlayOpts = append(overlayOpts, env.WithLookup(opts.Lookup))
	}
	overlay := env.NewOverlay(store, EnvVars, overlayOpts...)
	svc := services.NewSettingsService(overlay)

	settings, err := svc.Get()
	if err != nil {
		return nil, err
	}

	site := strings.TrimSpace(opts.Site)
	if site != "" {
		settings.Site = site
	}

	return &Config{
		Settings: settings,
		Service:  svc,
		store:    store,
		overlay:  overlay,
		site:     site,
	}, nil
}

// Source reports where the effective value of key came from.
func (c *Config) Source(key string) Source {
	if key == services.KeySite && c.site != "" {
		return SourceFlag
	}
	if c.overlay.Source(key) != "" {
		return SourceEnv
	}
	if _, ok := c.store.Get(key); ok {
		return SourceFile
	}
	return SourceDefault
}

// Value returns the effective value of key in display form.
func (c *Config) Value(key string) (string, error) {
	switch key {
	case services.KeySite:
		return c.Settings.Site, nil
	case services.KeyDebounceMS:
		return fmt.Sprint(c.Settings.DebounceMS), nil
	case services.KeyHTTPTimeout:
		return fmt.Sprint(c.Settings.HTTPTimeoutSeconds), nil
	default:
		return "", fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Set persists a single setting to the config file.
// Environment and flag values are not written back.
func (c *Config) Set(key, value string) error {
	return services.NewSettingsService(c.store).Set(key, value)
}

// Path returns the config file path.
func (c *Config) Path() string {
	return c.store.Path()
}
