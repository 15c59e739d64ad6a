// Package sink provides the Sink the TUI renders from.
//
// The controller writes from timer goroutines while bubbletea reads
// from its event loop, so the sink keeps a locked snapshot and posts
// a messages.Rendered to the program instead of touching the model.
package sink

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.Sink = (*Sink)(nil)

// Snapshot is the display state at one instant.
type Snapshot struct {
	// Entries is the displayed list.
	Entries []domain.Entry

	// Count is the result count.
	Count int

	// Empty reports whether the empty-state text is shown.
	Empty bool

	// Status is the session state.
	Status domain.State

	// ListVersion increases on every DisplayItems call.
	ListVersion int

	// FocusRequests counts FocusInput calls.
	FocusRequests int
}

// Sink records display state and wakes the program on change.
type Sink struct {
	mu      sync.Mutex
	snap    Snapshot
	notify  func(tea.Msg)
	pending bool
}

// New creates a sink in the loading state.
func New() *Sink {
	return &Sink{snap: Snapshot{Status: domain.StateLoading}}
}

// SetNotify sets the function used to wake the program, normally
// (*tea.Program).Send. It is called on its own goroutine.
func (s *Sink) SetNotify(fn func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}

// Snapshot returns the current state. Changes after this call are
// announced with a new message.
func (s *Sink) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
	return s.snap
}

// DisplayItems replaces the list.
func (s *Sink) DisplayItems(entries []domain.Entry) {
	s.update(func(snap *Snapshot) {
		snap.Entries = entries
		snap.ListVersion++
	})
}

// SetCount sets the result count.
func (s *Sink) SetCount(n int) {
	s.update(func(snap *Snapshot) { snap.Count = n })
}

// SetEmpty toggles the empty-state text.
func (s *Sink) SetEmpty(empty bool) {
	s.update(func(snap *Snapshot) { snap.Empty = empty })
}

// SetStatus sets the session state.
func (s *Sink) SetStatus(state domain.State) {
	s.update(func(snap *Snapshot) { snap.Status = state })
}

// FocusInput asks the view to focus the query input.
func (s *Sink) FocusInput() {
	s.update(func(snap *Snapshot) { snap.FocusRequests++ })
}

// update applies fn and posts at most one Rendered per unread change.
func (s *Sink) update(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.snap)
	if s.pending || s.notify == nil {
		return
	}
	s.pending = true
	go s.notify(messages.Rendered{})
}
