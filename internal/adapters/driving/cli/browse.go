package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/notedex/internal/adapters/driven/browser"
	"github.com/custodia-labs/notedex/internal/adapters/driving/tui"
	tuisink "github.com/custodia-labs/notedex/internal/adapters/driving/tui/sink"
	"github.com/custodia-labs/notedex/internal/core/services"
	"github.com/custodia-labs/notedex/internal/logger"
)

// logFileName is written in the config directory while the TUI runs.
const logFileName = "tui.log"

var flagBrowseOpen bool

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"tui"},
	Short:   "Launch the interactive browser",
	Long: `Launch the interactive terminal browser.

Type to filter; the list updates after a short pause.

Controls:
  ↑/ctrl+p, ↓/ctrl+n - Move selection
  Enter              - Show (or with --open, open) the selected note
  ctrl+l             - Clear the query
  Esc, ctrl+c        - Quit`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().BoolVar(&flagBrowseOpen, "open", false, "open the selected note in the browser on enter")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	restore, err := logToFile()
	if err != nil {
		return err
	}
	defer restore()

	catalogue, err := newCatalogue()
	if err != nil {
		return err
	}

	sink := tuisink.New()
	controller := services.NewController(catalogue, sink,
		services.WithDebounceDelay(cfg.Settings.Debounce()))

	ports := &tui.Ports{
		Browse: controller,
		Site:   cfg.Settings.Site,
	}
	if flagBrowseOpen {
		ports.Opener = browser.NewOpener()
	}

	app, err := tui.NewApp(ports, sink)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// logToFile sends log output to the config directory so it does not
// draw over the alternate screen. The returned func restores it.
func logToFile() (func(), error) {
	dir := filepath.Dir(cfg.Path())
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := tea.LogToFile(filepath.Join(dir, logFileName), "notedex")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	prev := logger.Output()
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(prev)
		f.Close()
	}, nil
}
