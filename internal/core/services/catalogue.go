package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
	"github.com/custodia-labs/notedex/internal/core/ports/driving"
	"github.com/custodia-labs/notedex/internal/logger"
)

// Ensure Catalogue implements the interface.
var _ driving.CatalogueService = (*Catalogue)(nil)

// Catalogue loads the index once and holds the normalised items.
type Catalogue struct {
	loader driven.IndexLoader

	mu     sync.RWMutex
	items  []domain.Item
	loaded bool
}

// NewCatalogue creates a catalogue reading from loader.
func NewCatalogue(loader driven.IndexLoader) *Catalogue {
	return &Catalogue{loader: loader}
}

// Load fetches and normalises the index.
// Once a load has succeeded, later calls return nil without fetching.
func (c *Catalogue) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return nil
	}

	logger.Section("Index Load")
	logger.Debug("Location: %s", c.loader.Location())

	raws, err := c.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load index: %w", err)
	}

	items := domain.NormalizeAll(raws)
	logger.Info("Loaded %d records, kept %d, dropped %d", len(raws), len(items), len(raws)-len(items))

	c.items = items
	c.loaded = true
	return nil
}

// Loaded reports whether a load has succeeded.
func (c *Catalogue) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Items returns the full collection in index order.
// Callers must treat the result as read-only.
func (c *Catalogue) Items() []domain.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}

// Filter returns the items matching query, in index order.
func (c *Catalogue) Filter(query string) []domain.Item {
	items := c.Items()
	matched := domain.Filter(items, query)
	logger.Debug("Filter %q: %d of %d", query, len(matched), len(items))
	return matched
}

// Location describes where the index is read from.
func (c *Catalogue) Location() string {
	return c.loader.Location()
}
