// Package cli provides the cobra command tree for notedex.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/notedex/internal/adapters/driven/config/env"
	"github.com/custodia-labs/notedex/internal/adapters/driven/index"
	"github.com/custodia-labs/notedex/internal/config"
	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
	"github.com/custodia-labs/notedex/internal/core/services"
	"github.com/custodia-labs/notedex/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Persistent flags.
var (
	flagSite      string
	flagConfigDir string
	flagVerbose   bool
)

// cfg is the configuration resolved before every command runs.
var cfg *config.Config

// Seams replaced by tests.
var (
	// loaderFactory builds the index loader for a site location.
	loaderFactory func(location string, timeout time.Duration) (driven.IndexLoader, error) = index.New

	// isTerminal reports whether stdout is interactive.
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

	// envLookup replaces os.LookupEnv when set.
	envLookup env.LookupFunc
)

var rootCmd = &cobra.Command{
	Use:   "notedex",
	Short: "Browse and filter a notes index",
	Long: `notedex loads the index.json published alongside a notes site and lets
you filter it by substring.

The site is a base URL (http://localhost:8000/) or a local directory
containing index.json. With no subcommand notedex opens the interactive
browser when run in a terminal and prints the list otherwise.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runDefault,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSite, "site", "", "site base URL or directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.notedex)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setup resolves logging and configuration for every command.
func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	loaded, err := config.Load(config.Options{
		ConfigDir: flagConfigDir,
		Site:      flagSite,
		Lookup:    envLookup,
	})
	if err != nil {
		return err
	}
	cfg = loaded

	logger.Debug("Site: %s (%s)", cfg.Settings.Site, cfg.Source(services.KeySite))
	return nil
}

func runDefault(cmd *cobra.Command, args []string) error {
	if isTerminal() {
		return runBrowse(cmd, args)
	}
	return runList(cmd, args)
}

// newCatalogue builds a catalogue for the configured site.
func newCatalogue() (*services.Catalogue, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: configuration not loaded", domain.ErrInvalidInput)
	}
	loader, err := loaderFactory(cfg.Settings.Site, cfg.Settings.HTTPTimeout())
	if err != nil {
		return nil, err
	}
	return services.NewCatalogue(loader), nil
}

// renderQuery loads the index once and renders the items matching query
// to sink.
func renderQuery(ctx context.Context, sink driven.Sink, query string) ([]domain.Item, error) {
	catalogue, err := newCatalogue()
	if err != nil {
		return nil, err
	}

	sink.SetStatus(domain.StateLoading)
	if err := catalogue.Load(ctx); err != nil {
		sink.SetStatus(domain.StateFailed)
		return nil, err
	}
	sink.SetStatus(domain.StateReady)

	items := catalogue.Filter(query)
	services.Render(sink, items)
	return items, nil
}
