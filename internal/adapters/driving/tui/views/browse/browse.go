// Package browse provides the note browsing view for the TUI.
package browse

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/sink"
	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
	"github.com/custodia-labs/notedex/internal/core/ports/driving"
)

// SnapshotSource supplies the display state to draw.
type SnapshotSource interface {
	Snapshot() sink.Snapshot
}

// View is the query input, the note list and the status bar.
// Typing is forwarded to the controller; the list is redrawn from the
// sink whenever a messages.Rendered arrives.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.NoteList
	statusbar *status.Bar

	controller driving.BrowseController
	source     SnapshotSource
	opener     driven.LinkOpener
	site       string

	width       int
	height      int
	ready       bool
	err         error
	listVersion int
	focusSeen   int
}

// NewView creates a browse view. opener may be nil, in which case
// enter only shows the note's address.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	controller driving.BrowseController,
	source SnapshotSource,
	site string,
	opener driven.LinkOpener,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewQueryInput(s),
		list:       list.NewNoteList(s),
		statusbar:  status.NewBar(s, km),
		controller: controller,
		source:     source,
		opener:     opener,
		site:       site,
		width:      80,
		height:     24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the browse view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.Started:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetError(msg.Err.Error())
		}
		return v, v.sync()

	case messages.Rendered:
		return v, v.sync()

	case messages.Opened:
		v.statusbar.SetMessage(msg.URL)
		return v, nil
	}

	// Cursor blink and other input housekeeping
	var cmd tea.Cmd
	v.input, cmd, _ = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keymap.Clear):
		v.input.SetValue("")
		if v.controller != nil {
			v.controller.Clear()
		}
		return v, nil

	case key.Matches(msg, v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case key.Matches(msg, v.keymap.Down):
		v.list.MoveDown()
		return v, nil

	case key.Matches(msg, v.keymap.Open):
		return v, v.open()
	}

	var cmd tea.Cmd
	var changed bool
	v.input, cmd, changed = v.input.Update(msg)
	if changed && v.controller != nil {
		v.controller.QueryChanged(v.input.Value())
	}
	return v, cmd
}

// open resolves the selected note's address, hands it to the opener
// if there is one, and reports it in the status bar.
func (v *View) open() tea.Cmd {
	entry := v.list.SelectedEntry()
	if entry == nil {
		return nil
	}
	link := domain.ResolveLink(v.site, entry.Href)

	if v.opener == nil {
		v.statusbar.SetMessage(link)
		return nil
	}

	opener := v.opener
	return func() tea.Msg {
		if err := opener.Open(link); err != nil {
			return messages.Opened{URL: link + " (open failed: " + err.Error() + ")"}
		}
		return messages.Opened{URL: link}
	}
}

// sync pulls the sink snapshot into the components.
func (v *View) sync() tea.Cmd {
	if v.source == nil {
		return nil
	}
	snap := v.source.Snapshot()

	if snap.ListVersion != v.listVersion {
		v.listVersion = snap.ListVersion
		v.list.SetEntries(snap.Entries)
	}
	v.list.SetEmpty(snap.Empty)
	v.statusbar.SetState(snap.Status)
	v.statusbar.SetCount(snap.Count)

	if snap.FocusRequests != v.focusSeen {
		v.focusSeen = snap.FocusRequests
		return v.input.Focus()
	}
	return nil
}

// View renders the browse view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("notedex") + "  " + v.styles.Muted.Render(v.site)
	sections = append(sections, header, "", v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	} else {
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-9) // header, input, status
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current query text.
func (v *View) Query() string {
	return v.input.Value()
}

// Entries returns the displayed entries.
func (v *View) Entries() []domain.Entry {
	return v.list.Entries()
}

// SelectedIndex returns the index of the selected entry.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.statusbar
}

// Err returns the load error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.input.Focused()
}
