package driven

import (
	"context"

	"github.com/custodia-labs/notedex/internal/core/domain"
)

// IndexLoader fetches the index document and decodes it into raw records.
type IndexLoader interface {
	// Load fetches the index once, bypassing any cache.
	// It returns a *domain.LoadError when the document cannot be
	// fetched or parsed. A document that is valid but not an array
	// yields an empty slice and no error.
	Load(ctx context.Context) ([]domain.RawRecord, error)

	// Location describes where the index is read from.
	Location() string
}
