package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/notedex/internal/adapters/driven/render/html"
	"github.com/custodia-labs/notedex/internal/logger"
)

var flagExportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [query...]",
	Short: "Write the matching notes as an HTML fragment",
	Long: `Load the index once and write the status, count, list and empty-state
markup for the notes matching the query. The fragment can be embedded in
a static page.

Examples:
  notedex export > notes.html
  notedex export golang -o golang.html`,
	Args: cobra.ArbitraryArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	sink := html.NewSink()
	items, err := renderQuery(cmd.Context(), sink, strings.Join(args, " "))
	if err != nil {
		return err
	}

	if flagExportOutput == "" {
		if _, err := sink.WriteTo(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		return nil
	}

	if err := writeExportFile(flagExportOutput, sink); err != nil {
		return err
	}
	logger.Info("Wrote %d notes to %s", len(items), flagExportOutput)
	return nil
}

// writeExportFile writes the fragment to path, reporting write and
// close failures alike.
func writeExportFile(path string, w io.WriterTo) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	if _, err := w.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
