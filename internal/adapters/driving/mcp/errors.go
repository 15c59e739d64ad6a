// Package mcp provides an MCP (Model Context Protocol) server adapter for notedex.
// It lets AI assistants filter the notes index and read its items.
package mcp

import "errors"

// ErrMissingCatalogue is returned when the catalogue service is not provided.
var ErrMissingCatalogue = errors.New("mcp: catalogue service is required")
