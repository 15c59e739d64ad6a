package mcp

import (
	"context"

	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driving"
)

var _ driving.CatalogueService = (*mockCatalogue)(nil)

// mockCatalogue is a mock implementation of driving.CatalogueService.
type mockCatalogue struct {
	items     []domain.Item
	loaded    bool
	err       error
	loadCalls int
}

func (m *mockCatalogue) Load(_ context.Context) error {
	m.loadCalls++
	if m.err != nil {
		return m.err
	}
	m.loaded = true
	return nil
}

func (m *mockCatalogue) Loaded() bool {
	return m.loaded
}

func (m *mockCatalogue) Items() []domain.Item {
	return m.items
}

func (m *mockCatalogue) Filter(query string) []domain.Item {
	return domain.Filter(m.items, query)
}

func (m *mockCatalogue) Location() string {
	return "mock://index.json"
}

func sampleItems() []domain.Item {
	raws := []domain.RawRecord{
		{"id": "go-notes", "title": "Go Notes", "path": "notes/go", "updated": "2024-05-01", "tags": []any{"lang"}},
		{"id": "rust", "title": "Rust", "path": "notes/rust.html", "tbd": []any{"borrowck"}, "confidence": 0.5},
	}
	return domain.NormalizeAll(raws)
}
