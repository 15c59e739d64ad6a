package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrLoad indicates the index document could not be loaded.
	// Every *LoadError matches it via errors.Is.
	ErrLoad = errors.New("index load failed")

	// ErrNotReady indicates an operation that needs a loaded index
	// was called before a successful load.
	ErrNotReady = errors.New("index not loaded")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// LoadError describes why the index document could not be loaded.
// A non-success HTTP status sets StatusCode; transport, read and
// parse failures set Err.
type LoadError struct {
	// Location is the URL or file path that was read.
	Location string

	// StatusCode is the HTTP status, zero when no response was received.
	StatusCode int

	// Err is the underlying cause, if any.
	Err error
}

// Error implements error.
func (e *LoadError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("index %s: status %d: %v", e.Location, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("index %s: status %d", e.Location, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("index %s: %v", e.Location, e.Err)
	default:
		return fmt.Sprintf("index %s: load failed", e.Location)
	}
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrLoad.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}
