package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeRunes(q *QueryInput, s string) bool {
	changed := false
	for _, r := range s {
		var c bool
		q, _, c = q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		changed = changed || c
	}
	return changed
}

func TestNewQueryInput(t *testing.T) {
	q := NewQueryInput(nil)

	require.NotNil(t, q)
	assert.True(t, q.Focused())
	assert.Equal(t, "", q.Value())
	assert.NotNil(t, q.styles)
}

func TestQueryInput_Init(t *testing.T) {
	assert.NotNil(t, NewQueryInput(nil).Init())
}

func TestQueryInput_Update_ReportsChange(t *testing.T) {
	q := NewQueryInput(nil)

	assert.True(t, typeRunes(q, "al"))
	assert.Equal(t, "al", q.Value())

	_, _, changed := q.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.True(t, changed)
	assert.Equal(t, "a", q.Value())

	_, _, changed = q.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.False(t, changed)
}

func TestQueryInput_Blurred_IgnoresKeys(t *testing.T) {
	q := NewQueryInput(nil)
	q.Blur()

	assert.False(t, typeRunes(q, "x"))
	assert.Equal(t, "", q.Value())

	q.Focus()
	assert.True(t, q.Focused())
}

func TestQueryInput_SetValue(t *testing.T) {
	q := NewQueryInput(nil)

	q.SetValue("beta")

	assert.Equal(t, "beta", q.Value())
}

func TestQueryInput_SetWidth(t *testing.T) {
	q := NewQueryInput(nil)

	q.SetWidth(100)
	assert.Equal(t, 100, q.Width())
	assert.Equal(t, 88, q.textinput.Width)

	q.SetWidth(10)
	assert.Equal(t, 20, q.textinput.Width)
}

func TestQueryInput_View(t *testing.T) {
	q := NewQueryInput(nil)
	q.SetValue("alpha")

	view := q.View()

	assert.Contains(t, view, "Filter:")
	assert.Contains(t, view, "alpha")
}
