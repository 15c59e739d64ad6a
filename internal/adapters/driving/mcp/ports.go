package mcp

import (
	"github.com/custodia-labs/notedex/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Catalogue holds the notes index.
	Catalogue driving.CatalogueService

	// Site is the base the item paths resolve against. Optional.
	Site string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Catalogue == nil {
		return ErrMissingCatalogue
	}
	return nil
}
