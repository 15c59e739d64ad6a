package services

import (
	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
)

// Render replaces everything sink displays with items: the list, the
// count and the empty indicator. Rendering the same items twice leaves
// the sink in the same state.
func Render(sink driven.Sink, items []domain.Item) {
	sink.DisplayItems(domain.ProjectAll(items))
	sink.SetCount(len(items))
	sink.SetEmpty(len(items) == 0)
}
