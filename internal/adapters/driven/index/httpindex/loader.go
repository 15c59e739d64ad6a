// Package httpindex provides an IndexLoader that fetches the index
// document over HTTP.
package httpindex

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
	"github.com/custodia-labs/notedex/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.IndexLoader = (*Loader)(nil)

// DefaultTimeout bounds a single fetch.
const DefaultTimeout = domain.DefaultHTTPTimeoutSeconds * time.Second

// maxIndexBytes caps the response body.
const maxIndexBytes = 64 << 20

// Loader fetches index.json relative to a base URL.
// Every Load bypasses caches so the result reflects the latest build.
type Loader struct {
	client  *http.Client
	timeout time.Duration
	url     string
}

// Option configures a Loader.
type Option func(*Loader)

// WithTimeout sets the request timeout.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// WithHTTPClient uses client instead of a default one.
// The client's own timeout is left untouched.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.client = client
	}
}

// NewLoader creates a loader for the index under base.
// base is resolved like a page URL: "https://host/notes/" reads
// "https://host/notes/index.json" while "https://host/notes/page.html"
// reads the sibling "https://host/notes/index.json".
func NewLoader(base string, opts ...Option) (*Loader, error) {
	indexURL, err := ResolveIndexURL(base)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		timeout: DefaultTimeout,
		url:     indexURL,
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.client == nil {
		l.client = &http.Client{
			Timeout: l.timeout,
		}
	}

	return l, nil
}

// ResolveIndexURL resolves the index document against base.
func ResolveIndexURL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: site %q: %v", domain.ErrInvalidInput, base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: site %q is not an http(s) URL", domain.ErrInvalidInput, base)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: site %q has no host", domain.ErrInvalidInput, base)
	}
	return u.ResolveReference(&url.URL{Path: domain.IndexFile}).String(), nil
}

// Location returns the index URL.
func (l *Loader) Location() string {
	return l.url
}

// Load fetches and decodes the index document.
func (l *Loader) Load(ctx context.Context) ([]domain.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, &domain.LoadError{Location: l.url, Err: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("X-Request-Id", requestID)

	logger.Debug("GET %s (request %s)", l.url, requestID)

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &domain.LoadError{Location: l.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &domain.LoadError{Location: l.url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxIndexBytes))
	if err != nil {
		return nil, &domain.LoadError{Location: l.url, StatusCode: resp.StatusCode, Err: err}
	}

	records, err := domain.ParseIndex(body)
	if err != nil {
		return nil, &domain.LoadError{Location: l.url, StatusCode: resp.StatusCode, Err: err}
	}

	logger.Debug("request %s: %d records", requestID, len(records))
	return records, nil
}
