package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/notedex/internal/adapters/driven/render/text"
	"github.com/custodia-labs/notedex/internal/core/domain"
)

var flagListJSON bool

var listCmd = &cobra.Command{
	Use:   "list [query...]",
	Short: "Print the notes matching a query",
	Long: `Load the index once and print the notes whose id, title, updated date,
tags or open questions contain the query, ignoring case. With no query
every note is printed.

Examples:
  notedex list
  notedex list golang
  notedex list --json "release notes"`,
	Args: cobra.ArbitraryArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListJSON, "json", false, "print normalised items as JSON")
	rootCmd.AddCommand(listCmd)
}

// listItem is the JSON form of a note.
type listItem struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Path       string   `json:"path"`
	URL        string   `json:"url"`
	Updated    string   `json:"updated"`
	Tags       []string `json:"tags"`
	TBD        []string `json:"tbd"`
	Confidence *float64 `json:"confidence,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	sink := text.NewSink()
	items, err := renderQuery(cmd.Context(), sink, query)
	if err != nil {
		return err
	}

	if flagListJSON {
		return outputListJSON(cmd, items)
	}

	_, err = sink.WriteTo(cmd.OutOrStdout())
	return err
}

func outputListJSON(cmd *cobra.Command, items []domain.Item) error {
	out := make([]listItem, len(items))
	for i := range items {
		out[i] = listItem{
			ID:         items[i].ID,
			Title:      items[i].Title,
			Path:       items[i].Path,
			URL:        domain.ResolveLink(cfg.Settings.Site, items[i].Path),
			Updated:    items[i].Updated,
			Tags:       orEmpty(items[i].Tags),
			TBD:        orEmpty(items[i].TBD),
			Confidence: items[i].Confidence,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal items: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
