package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for notedex resources.
	uriScheme = "notedex://"

	// ItemsURI addresses the full normalised collection.
	ItemsURI = uriScheme + "items"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         ItemsURI,
		Name:        "items",
		Description: "Every normalised note in the index",
		MIMEType:    "application/json",
	}, s.handleItemsResource)
}

// handleItemsResource returns all items as JSON.
func (s *Server) handleItemsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(s.notes(s.ports.Catalogue.Items()), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling items: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
