package driving

import (
	"context"

	"github.com/custodia-labs/notedex/internal/core/domain"
)

// BrowseController drives an interactive browsing session.
type BrowseController interface {
	// Start loads the index and renders the full set.
	// On failure the session moves to domain.StateFailed for good.
	Start(ctx context.Context) error

	// QueryChanged schedules a debounced filter and render.
	QueryChanged(query string)

	// Clear resets the query and renders the full set immediately.
	Clear()

	// State returns the current lifecycle state.
	State() domain.State

	// Query returns the current query.
	Query() string

	// Close cancels any pending render.
	Close()
}
