// Package list provides list display components for the TUI.
package list

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/notedex/internal/core/domain"
)

// linesPerEntry is the most lines one entry can take.
const linesPerEntry = 4

// NoteList displays rendered entries in a navigable list.
type NoteList struct {
	entries  []domain.Entry
	empty    bool
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewNoteList creates a new note list component.
func NewNoteList(s *styles.Styles) *NoteList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &NoteList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (l *NoteList) Init() tea.Cmd {
	return nil
}

// View renders the visible window of entries.
// The empty-state text shows only once SetEmpty(true) has been called.
func (l *NoteList) View() string {
	if len(l.entries) == 0 {
		if l.empty {
			return l.styles.Muted.Render(domain.EmptyText)
		}
		return ""
	}

	visibleCount := l.height / linesPerEntry
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.entries) {
		end = len(l.entries)
	}

	blocks := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		blocks = append(blocks, l.renderEntry(i, &l.entries[i]))
	}
	return strings.Join(blocks, "\n")
}

// renderEntry formats one entry: heading, subheading and href, tag
// badges and the TBD line.
func (l *NoteList) renderEntry(index int, e *domain.Entry) string {
	indicator := "  "
	heading := l.styles.Heading
	if index == l.selected {
		indicator = "> "
		heading = l.styles.Selected
	}

	lines := make([]string, 0, linesPerEntry)
	lines = append(lines,
		heading.Render(indicator+truncate(e.Heading, l.width-4)),
		l.styles.Muted.Render("    "+truncate(e.Subheading+"  "+e.Href, l.width-6)),
	)

	if len(e.Tags) > 0 {
		badges := make([]string, 0, len(e.Tags))
		for _, tag := range e.Tags {
			badges = append(badges, l.styles.Tag.Render(tag))
		}
		lines = append(lines, "   "+lipgloss.JoinHorizontal(lipgloss.Top, badges...))
	}

	if e.TBD != "" {
		lines = append(lines, l.styles.Muted.Render("    "+truncate(e.TBD, l.width-6)))
	}

	return strings.Join(lines, "\n")
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max < 10 {
		max = 10
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// SetEntries replaces the list and moves the selection to the top.
func (l *NoteList) SetEntries(entries []domain.Entry) {
	l.entries = entries
	l.selected = 0
}

// SetEmpty switches the empty-state text.
func (l *NoteList) SetEmpty(empty bool) {
	l.empty = empty
}

// Entries returns the current entries.
func (l *NoteList) Entries() []domain.Entry {
	return l.entries
}

// Selected returns the index of the selected entry.
func (l *NoteList) Selected() int {
	return l.selected
}

// SelectedEntry returns the selected entry, or nil if the list is empty.
func (l *NoteList) SelectedEntry() *domain.Entry {
	if len(l.entries) == 0 || l.selected < 0 || l.selected >= len(l.entries) {
		return nil
	}
	return &l.entries[l.selected]
}

// MoveUp moves selection up.
func (l *NoteList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves selection down.
func (l *NoteList) MoveDown() {
	if l.selected < len(l.entries)-1 {
		l.selected++
	}
}

// SetDimensions sets the component dimensions.
func (l *NoteList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Count returns the number of entries.
func (l *NoteList) Count() int {
	return len(l.entries)
}

// IsEmpty returns whether the list is empty.
func (l *NoteList) IsEmpty() bool {
	return len(l.entries) == 0
}

// ShowsEmpty returns whether the empty-state text is switched on.
func (l *NoteList) ShowsEmpty() bool {
	return l.empty
}
