// Package index chooses the IndexLoader for a configured site location.
package index

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/notedex/internal/adapters/driven/index/fileindex"
	"github.com/custodia-labs/notedex/internal/adapters/driven/index/httpindex"
	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
)

// New returns a loader for location. http and https URLs are fetched,
// file URLs and bare paths are read from disk.
func New(location string, timeout time.Duration) (driven.IndexLoader, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: site location is empty", domain.ErrInvalidInput)
	}

	u, err := url.Parse(location)
	if err != nil || !isURL(u) {
		return fileindex.NewLoader(location), nil
	}

	switch u.Scheme {
	case "http", "https":
		return httpindex.NewLoader(location, httpindex.WithTimeout(timeout))
	case "file":
		return fileindex.NewLoader(u.Path), nil
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", domain.ErrInvalidInput, u.Scheme)
	}
}

// isURL reports whether u carries a real scheme. Windows drive letters
// parse as one-letter schemes and are treated as paths.
func isURL(u *url.URL) bool {
	return len(u.Scheme) > 1
}
