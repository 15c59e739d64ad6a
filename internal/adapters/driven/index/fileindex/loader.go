// Package fileindex provides an IndexLoader that reads the index
// document from a local site directory.
package fileindex

import (
	"context"
	"os"
	"path/filepath"

	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
	"github.com/custodia-labs/notedex/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.IndexLoader = (*Loader)(nil)

// Loader reads index.json from a directory.
type Loader struct {
	path string
}

// NewLoader creates a loader for the index in dir.
// A path that already names index.json is used as is.
func NewLoader(dir string) *Loader {
	path := dir
	if filepath.Base(dir) != domain.IndexFile {
		path = filepath.Join(dir, domain.IndexFile)
	}
	return &Loader{path: path}
}

// Location returns the index file path.
func (l *Loader) Location() string {
	return l.path
}

// Load reads and decodes the index file. The file is read afresh on
// every call.
func (l *Loader) Load(ctx context.Context) ([]domain.RawRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.LoadError{Location: l.path, Err: err}
	}

	logger.Debug("reading %s", l.path)

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, &domain.LoadError{Location: l.path, Err: err}
	}

	records, err := domain.ParseIndex(data)
	if err != nil {
		return nil, &domain.LoadError{Location: l.path, Err: err}
	}
	return records, nil
}
