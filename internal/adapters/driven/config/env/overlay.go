// Package env overlays environment variables on a ConfigStore.
package env

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/notedex/internal/core/ports/driven"
	"github.com/custodia-labs/notedex/internal/logger"
)

// Ensure Overlay implements the interface.
var _ driven.ConfigStore = (*Overlay)(nil)

// LookupFunc looks up an environment variable.
type LookupFunc func(key string) (string, bool)

// Overlay reads mapped keys from the environment before falling back
// to the wrapped store. Writes always go to the wrapped store.
type Overlay struct {
	base    driven.ConfigStore
	vars    map[string]string
	intKeys map[string]bool
	lookup  LookupFunc
}

// Option configures an Overlay.
type Option func(*Overlay)

// WithLookup replaces os.LookupEnv. Used by tests.
func WithLookup(fn LookupFunc) Option {
	return func(o *Overlay) {
		o.lookup = fn
	}
}

// WithIntKeys marks keys whose environment values must parse as
// integers. A value that does not is ignored with a warning.
func WithIntKeys(keys ...string) Option {
	return func(o *Overlay) {
		for _, k := range keys {
			o.intKeys[k] = true
		}
	}
}

// NewOverlay wraps base. vars maps config keys to variable names,
// e.g. "site.location" to "NOTEDEX_SITE".
func NewOverlay(base driven.ConfigStore, vars map[string]string, opts ...Option) *Overlay {
	o := &Overlay{
		base:    base,
		vars:    vars,
		intKeys: make(map[string]bool),
		lookup:  os.LookupEnv,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// LoadDotEnv loads variables from the given .env files, or ./.env when
// none are named. Missing files are ignored and variables already set
// in the environment win.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			logger.Debug("dotenv %s: %v", p, err)
			continue
		}
		logger.Debug("loaded %s", p)
	}
}

// Get returns the environment value for a mapped key if it is set and
// non-blank, otherwise the wrapped store's value.
func (o *Overlay) Get(key string) (any, bool) {
	if v, ok := o.fromEnv(key); ok {
		return v, true
	}
	return o.base.Get(key)
}

// GetString retrieves a string configuration value.
func (o *Overlay) GetString(key string) string {
	if v, ok := o.fromEnv(key); ok {
		return v
	}
	return o.base.GetString(key)
}

// GetInt retrieves an integer configuration value.
func (o *Overlay) GetInt(key string) int {
	if v, ok := o.fromEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return o.base.GetInt(key)
}

// Set stores a value in the wrapped store.
func (o *Overlay) Set(key string, value any) error {
	return o.base.Set(key, value)
}

// Load reloads the wrapped store.
func (o *Overlay) Load() error {
	return o.base.Load()
}

// Path returns the wrapped store's path.
func (o *Overlay) Path() string {
	return o.base.Path()
}

// Source reports which environment variable currently overrides key,
// or "" when the value comes from the wrapped store.
func (o *Overlay) Source(key string) string {
	if _, ok := o.fromEnv(key); ok {
		return o.vars[key]
	}
	return ""
}

func (o *Overlay) fromEnv(key string) (string, bool) {
	name, ok := o.vars[key]
	if !ok {
		return "", false
	}
	v, ok := o.lookup(name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	if o.intKeys[key] {
		if _, err := strconv.Atoi(v); err != nil {
			logger.Warn("ignoring %s=%q: not an integer", name, v)
			return "", false
		}
	}
	return v, true
}
