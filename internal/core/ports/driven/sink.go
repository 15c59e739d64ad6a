package driven

import "github.com/custodia-labs/notedex/internal/core/domain"

// Sink is the display surface a render writes to.
// Implementations replace their visible state on every call and must
// not block: the controller calls them from timer goroutines.
type Sink interface {
	// DisplayItems replaces the displayed list with entries, in order.
	DisplayItems(entries []domain.Entry)

	// SetCount updates the result-count display.
	SetCount(n int)

	// SetEmpty toggles the "no results" indicator.
	SetEmpty(empty bool)

	// SetStatus updates the status indicator.
	SetStatus(state domain.State)

	// FocusInput returns keyboard focus to the query input.
	FocusInput()
}
