package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/sink"
	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/notedex/internal/adapters/driving/tui/views/browse"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// sink receives the controller's renders.
	sink *sink.Sink

	// styles holds the TUI styles.
	styles *styles.Styles

	// browseView is the only view.
	browseView *browse.View

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its first window size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application. out must be the sink the
// controller in ports renders to.
func NewApp(ports *Ports, out *sink.Sink) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if out == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingSink)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		sink:       out,
		styles:     s,
		browseView: browse.NewView(s, nil, ports.Browse, out, ports.Site, ports.Opener),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It starts loading the index alongside the input's cursor blink.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("notedex"),
		a.browseView.Init(),
		a.start(),
	)
}

// start loads the index off the event loop.
func (a *App) start() tea.Cmd {
	browse := a.ports.Browse
	ctx := a.ctx
	return func() tea.Msg {
		return messages.Started{Err: browse.Start(ctx)}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case messages.Quit:
		return a, tea.Quit
	}

	a.browseView, cmd = a.browseView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.browseView.View()
}

// Run starts the TUI and blocks until the user quits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	a.sink.SetNotify(p.Send)
	defer a.ports.Browse.Close()

	_, err := p.Run()
	return err
}

// BrowseView returns the browse view.
func (a *App) BrowseView() *browse.View {
	return a.browseView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.browseView.SetDimensions(width, height)
}
