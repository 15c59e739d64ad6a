package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/notedex/internal/core/domain"
)

// FilterInput is the input schema for the filter_notes tool.
type FilterInput struct {
	Query string `json:"query" jsonschema:"case-insensitive substring matched against id, title, updated, tags and tbd; empty returns every note"`
}

// FilterOutput is the output schema for the filter_notes tool.
type FilterOutput struct {
	Items []NoteOutput `json:"items"`
	Count int          `json:"count"`
}

// NoteOutput represents a single note.
type NoteOutput struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Path       string   `json:"path"`
	URL        string   `json:"url,omitempty"`
	Updated    string   `json:"updated,omitempty"`
	Tags       []string `json:"tags"`
	TBD        []string `json:"tbd"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "filter_notes",
		Description: "Filter the notes index by substring",
	}, s.handleFilter)
}

// handleFilter handles the filter_notes tool invocation.
func (s *Server) handleFilter(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FilterInput,
) (*mcp.CallToolResult, FilterOutput, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, FilterOutput{}, err
	}

	items := s.ports.Catalogue.Filter(input.Query)
	return nil, FilterOutput{
		Items: s.notes(items),
		Count: len(items),
	}, nil
}

// notes converts items to their output form.
func (s *Server) notes(items []domain.Item) []NoteOutput {
	out := make([]NoteOutput, len(items))
	for i := range items {
		out[i] = NoteOutput{
			ID:         items[i].ID,
			Title:      items[i].Title,
			Path:       items[i].Path,
			Updated:    items[i].Updated,
			Tags:       nonNil(items[i].Tags),
			TBD:        nonNil(items[i].TBD),
			Confidence: items[i].Confidence,
		}
		if s.ports.Site != "" {
			out[i].URL = domain.ResolveLink(s.ports.Site, items[i].Path)
		}
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
