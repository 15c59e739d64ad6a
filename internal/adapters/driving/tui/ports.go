// Package tui provides an interactive terminal user interface for notedex.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
	"github.com/custodia-labs/notedex/internal/core/ports/driving"
)

// Ports aggregates the services the TUI drives.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Browse runs the browsing session.
	Browse driving.BrowseController

	// Opener opens the selected note. Optional.
	Opener driven.LinkOpener

	// Site is the configured site location, used to resolve note links.
	Site string
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Browse == nil {
		return ErrMissingBrowseController
	}
	return nil
}
