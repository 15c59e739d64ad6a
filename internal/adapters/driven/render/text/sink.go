// Package text provides a plain-text Sink for non-interactive output.
package text

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.Sink = (*Sink)(nil)

// Sink keeps the last rendered list and writes it as plain text.
type Sink struct {
	mu      sync.Mutex
	entries []domain.Entry
	count   int
	empty   bool
	status  domain.State
}

// NewSink creates an empty text sink.
func NewSink() *Sink {
	return &Sink{status: domain.StateLoading}
}

// DisplayItems replaces the list.
func (s *Sink) DisplayItems(entries []domain.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
}

// SetCount sets the result count.
func (s *Sink) SetCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count = n
}

// SetEmpty toggles the empty-state message.
func (s *Sink) SetEmpty(empty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.empty = empty
}

// SetStatus records the session state.
func (s *Sink) SetStatus(state domain.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = state
}

// FocusInput is a no-op; there is no input to focus.
func (s *Sink) FocusInput() {}

// Status returns the last state set.
func (s *Sink) Status() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// WriteTo writes the list followed by a count line.
//
//	Alpha
//	  2024-01-01  n/a/
//	  [x] [y]
//	  TBD: first / second
func (s *Sink) WriteTo(w io.Writer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	for i, e := range s.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s\n", e.Heading)
		fmt.Fprintf(&b, "  %s  %s\n", e.Subheading, e.Href)
		if len(e.Tags) > 0 {
			b.WriteString(" ")
			for _, tag := range e.Tags {
				fmt.Fprintf(&b, " [%s]", tag)
			}
			b.WriteByte('\n')
		}
		if e.TBD != "" {
			fmt.Fprintf(&b, "  %s\n", e.TBD)
		}
	}

	if len(s.entries) > 0 {
		b.WriteByte('\n')
	}
	if s.empty {
		fmt.Fprintf(&b, "%s\n", domain.EmptyText)
	} else {
		fmt.Fprintf(&b, "%d %s\n", s.count, plural(s.count, "note", "notes"))
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
