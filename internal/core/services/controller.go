package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
	"github.com/custodia-labs/notedex/internal/core/ports/driving"
	"github.com/custodia-labs/notedex/internal/logger"
)

// Ensure Controller implements the interface.
var _ driving.BrowseController = (*Controller)(nil)

// Controller runs one browsing session: it loads the catalogue, renders
// the full set, and re-renders on debounced query changes and clears.
//
// State moves loading -> ready or loading -> failed; failed is final.
// Query events are ignored unless the session is ready.
type Controller struct {
	catalogue driving.CatalogueService
	sink      driven.Sink
	debouncer *Debouncer

	mu    sync.Mutex
	state domain.State
	query string
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithDebouncer replaces the default debouncer.
func WithDebouncer(d *Debouncer) ControllerOption {
	return func(c *Controller) {
		c.debouncer = d
	}
}

// WithDebounceDelay sets the debounce delay of the default debouncer.
func WithDebounceDelay(delay time.Duration) ControllerOption {
	return func(c *Controller) {
		c.debouncer = NewDebouncer(delay)
	}
}

// NewController creates a controller rendering catalogue into sink.
func NewController(catalogue driving.CatalogueService, sink driven.Sink, opts ...ControllerOption) *Controller {
	c := &Controller{
		catalogue: catalogue,
		sink:      sink,
		debouncer: NewDebouncer(domain.DefaultDebounceMS * time.Millisecond),
		state:     domain.StateLoading,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start loads the index and renders the full set.
// A failed load is logged, shown on the sink and returned; the session
// stays failed.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.state != domain.StateLoading {
		c.mu.Unlock()
		return nil
	}
	c.sink.SetStatus(domain.StateLoading)
	c.mu.Unlock()

	err := c.catalogue.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		logger.Error("%v", err)
		c.state = domain.StateFailed
		c.sink.SetStatus(domain.StateFailed)
		return err
	}

	c.state = domain.StateReady
	c.sink.SetStatus(domain.StateReady)
	Render(c.sink, c.catalogue.Items())
	return nil
}

// QueryChanged records query and schedules a filter and render after the
// debounce delay. A newer call supersedes a pending one.
func (c *Controller) QueryChanged(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != domain.StateReady {
		return
	}
	c.query = query

	c.debouncer.Trigger(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// Clear may have run between the timer firing and here.
		if c.query != query {
			return
		}
		Render(c.sink, c.catalogue.Filter(query))
	})
}

// Clear resets the query, renders the full set at once and returns
// focus to the input. A pending debounced render is dropped.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != domain.StateReady {
		return
	}
	c.debouncer.Cancel()
	c.query = ""
	Render(c.sink, c.catalogue.Items())
	c.sink.FocusInput()
}

// State returns the current lifecycle state.
func (c *Controller) State() domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Query returns the current query.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Close cancels any pending render.
func (c *Controller) Close() {
	c.debouncer.Cancel()
}
