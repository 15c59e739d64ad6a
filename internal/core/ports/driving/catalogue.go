package driving

import (
	"context"

	"github.com/custodia-labs/notedex/internal/core/domain"
)

// CatalogueService holds the normalised item collection for a session.
type CatalogueService interface {
	// Load fetches and normalises the index. It replaces nothing once
	// a load has succeeded; later calls are no-ops.
	Load(ctx context.Context) error

	// Loaded reports whether a load has succeeded.
	Loaded() bool

	// Items returns the full collection in index order.
	Items() []domain.Item

	// Filter returns the items matching query, in index order.
	Filter(query string) []domain.Item

	// Location describes where the index is read from.
	Location() string
}
