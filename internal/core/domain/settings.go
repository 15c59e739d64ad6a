package domain

import (
	"fmt"
	"time"
)

// Defaults for Settings.
const (
	// DefaultSite is where the index is served when nothing is configured.
	DefaultSite = "http://localhost:8000/"

	// DefaultDebounceMS is the pause after a keystroke before filtering.
	DefaultDebounceMS = 80

	// DefaultHTTPTimeoutSeconds bounds a single index fetch.
	DefaultHTTPTimeoutSeconds = 10
)

// Settings holds the application configuration.
type Settings struct {
	// Site is the base URL or local directory the index is read from.
	// The index document itself is always "index.json" under it.
	Site string

	// DebounceMS is the debounce delay for query input, in milliseconds.
	DebounceMS int

	// HTTPTimeoutSeconds bounds the index fetch.
	HTTPTimeoutSeconds int
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Site:               DefaultSite,
		DebounceMS:         DefaultDebounceMS,
		HTTPTimeoutSeconds: DefaultHTTPTimeoutSeconds,
	}
}

// Debounce returns the debounce delay as a duration.
func (s *Settings) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// HTTPTimeout returns the fetch timeout as a duration.
func (s *Settings) HTTPTimeout() time.Duration {
	return time.Duration(s.HTTPTimeoutSeconds) * time.Second
}

// Validate checks the settings are usable.
func (s *Settings) Validate() error {
	if s.Site == "" {
		return fmt.Errorf("%w: site is required", ErrInvalidInput)
	}
	if s.DebounceMS < 0 {
		return fmt.Errorf("%w: debounce must not be negative", ErrInvalidInput)
	}
	if s.HTTPTimeoutSeconds <= 0 {
		return fmt.Errorf("%w: http timeout must be positive", ErrInvalidInput)
	}
	return nil
}
