// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/notedex/internal/core/domain"
)

// Bar displays the session state, the result count, a transient
// message and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   domain.State
	count   int
	message string
	isError bool
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  domain.StateLoading,
		width:  80,
	}
}

// View renders the status bar.
func (b *Bar) View() string {
	left := b.renderLeft()
	right := b.renderRight()

	inner := b.width - b.styles.StatusBar.GetHorizontalFrameSize()
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return b.styles.StatusBar.Width(b.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders state, count and message.
func (b *Bar) renderLeft() string {
	var state string
	switch b.state {
	case domain.StateReady:
		state = b.styles.Success.Render(b.state.StatusText())
	case domain.StateFailed:
		state = b.styles.Error.Render(b.state.StatusText())
	default:
		state = b.styles.Warning.Render(b.state.StatusText())
	}

	parts := []string{state}
	if b.state == domain.StateReady {
		parts = append(parts, b.styles.Muted.Render(countLabel(b.count)))
	}
	if b.message != "" {
		style := b.styles.Muted
		if b.isError {
			style = b.styles.Error
		}
		parts = append(parts, style.Render(b.message))
	}
	return strings.Join(parts, "  ")
}

// renderRight renders keybinding hints.
func (b *Bar) renderRight() string {
	var bindings []key.Binding
	if b.state == domain.StateReady {
		bindings = b.keymap.ShortHelp()
	} else {
		bindings = []key.Binding{b.keymap.Quit}
	}

	hints := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return b.styles.Muted.Render(strings.Join(hints, " | "))
}

func countLabel(n int) string {
	if n == 1 {
		return "1 note"
	}
	return fmt.Sprintf("%d notes", n)
}

// SetState sets the session state.
func (b *Bar) SetState(state domain.State) {
	b.state = state
}

// State returns the session state.
func (b *Bar) State() domain.State {
	return b.state
}

// SetCount sets the result count.
func (b *Bar) SetCount(count int) {
	b.count = count
}

// Count returns the result count.
func (b *Bar) Count() int {
	return b.count
}

// SetMessage sets an informational message.
func (b *Bar) SetMessage(message string) {
	b.message = message
	b.isError = false
}

// SetError sets an error message.
func (b *Bar) SetError(message string) {
	b.message = message
	b.isError = true
}

// Message returns the current message.
func (b *Bar) Message() string {
	return b.message
}

// SetWidth sets the status bar width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Width returns the current width.
func (b *Bar) Width() int {
	return b.width
}
