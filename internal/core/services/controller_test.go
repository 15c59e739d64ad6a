package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/logger"
)

// twoNotes is the index used by the end-to-end scenarios.
func twoNotes() *MockIndexLoader {
	return loaderReturning(
		domain.RawRecord{"id": "a", "title": "Alpha", "path": "n/a/", "tags": []any{"x", "y"}, "updated": "2024-01-01"},
		domain.RawRecord{"id": "b", "title": "Beta", "path": "n/b/", "tags": []any{"y"}, "updated": "2024-02-02"},
	)
}

func newTestController(t *testing.T, loader *MockIndexLoader) (*Controller, *RecordingSink, *fakeScheduler) {
	t.Helper()
	sink := &RecordingSink{}
	sched := &fakeScheduler{}
	debouncer := NewDebouncer(80 * time.Millisecond).WithAfterFunc(sched.AfterFunc)
	c := NewController(NewCatalogue(loader), sink, WithDebouncer(debouncer))
	return c, sink, sched
}

func TestController_StartsLoading(t *testing.T) {
	c, _, _ := newTestController(t, twoNotes())

	assert.Equal(t, domain.StateLoading, c.State())
}

func TestController_Start_RendersFullSet(t *testing.T) {
	c, sink, _ := newTestController(t, twoNotes())

	require.NoError(t, c.Start(context.Background()))

	assert.Equal(t, domain.StateReady, c.State())
	assert.Equal(t, []domain.State{domain.StateLoading, domain.StateReady}, sink.statuses)
	assert.Equal(t, []string{"Alpha", "Beta"}, sink.Headings())
	assert.Equal(t, 2, sink.count)
	assert.False(t, sink.empty)
}

func TestController_Start_Failure(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	loader := &MockIndexLoader{
		LoadFunc: func(context.Context) ([]domain.RawRecord, error) {
			return nil, &domain.LoadError{Location: "mock", StatusCode: 404}
		},
	}
	c, sink, sched := newTestController(t, loader)

	err := c.Start(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLoad))
	assert.Equal(t, domain.StateFailed, c.State())
	assert.Equal(t, domain.StateFailed, sink.status)
	assert.Equal(t, 0, sink.Renders())
	assert.Contains(t, buf.String(), "status 404")

	// Failed is terminal: no retry, input ignored.
	require.NoError(t, c.Start(context.Background()))
	assert.Equal(t, 1, loader.calls)
	c.QueryChanged("a")
	c.Clear()
	assert.Equal(t, 0, sched.Count())
	assert.Equal(t, 0, sink.Renders())
	assert.Equal(t, 0, sink.focused)
}

func TestController_QueryIgnoredWhileLoading(t *testing.T) {
	c, sink, sched := newTestController(t, twoNotes())

	c.QueryChanged("alpha")
	c.Clear()

	assert.Equal(t, 0, sched.Count())
	assert.Equal(t, 0, sink.Renders())
	assert.Equal(t, "", c.Query())
}

func TestController_EndToEnd(t *testing.T) {
	c, sink, sched := newTestController(t, twoNotes())
	require.NoError(t, c.Start(context.Background()))
	require.Len(t, sink.Headings(), 2)

	c.QueryChanged("alpha")
	sched.FireAll()
	assert.Equal(t, []string{"Alpha"}, sink.Headings())
	assert.Equal(t, 1, sink.count)

	c.QueryChanged("y")
	sched.FireAll()
	assert.Equal(t, []string{"Alpha", "Beta"}, sink.Headings())

	c.QueryChanged("zzz")
	sched.FireAll()
	assert.Empty(t, sink.Headings())
	assert.True(t, sink.empty)

	c.Clear()
	assert.Equal(t, []string{"Alpha", "Beta"}, sink.Headings())
	assert.False(t, sink.empty)
	assert.Equal(t, 1, sink.focused)
	assert.Equal(t, "", c.Query())
}

func TestController_DebounceRendersOnceWithFinalQuery(t *testing.T) {
	c, sink, sched := newTestController(t, twoNotes())
	require.NoError(t, c.Start(context.Background()))
	before := sink.Renders()

	for _, q := range []string{"a", "al", "alp", "beta"} {
		c.QueryChanged(q)
	}
	assert.Equal(t, before, sink.Renders(), "nothing renders before the delay")

	sched.FireStale()

	assert.Equal(t, before+1, sink.Renders())
	assert.Equal(t, []string{"Beta"}, sink.Headings())
	assert.Equal(t, "beta", c.Query())
}

func TestController_ClearIsImmediateAndDropsPending(t *testing.T) {
	c, sink, sched := newTestController(t, twoNotes())
	require.NoError(t, c.Start(context.Background()))

	c.QueryChanged("alpha")
	c.Clear()
	renders := sink.Renders()

	sched.FireStale()

	assert.Equal(t, renders, sink.Renders())
	assert.Equal(t, []string{"Alpha", "Beta"}, sink.Headings())
}

func TestController_Close(t *testing.T) {
	c, sink, sched := newTestController(t, twoNotes())
	require.NoError(t, c.Start(context.Background()))
	renders := sink.Renders()

	c.QueryChanged("alpha")
	c.Close()
	sched.FireStale()

	assert.Equal(t, renders, sink.Renders())
}

func TestController_RealDebounce(t *testing.T) {
	sink := &RecordingSink{}
	c := NewController(NewCatalogue(twoNotes()), sink, WithDebounceDelay(5*time.Millisecond))
	require.NoError(t, c.Start(context.Background()))
	defer c.Close()

	c.QueryChanged("al")
	c.QueryChanged("alpha")

	assert.Eventually(t, func() bool {
		h := sink.Headings()
		return len(h) == 1 && h[0] == "Alpha"
	}, time.Second, 2*time.Millisecond)
}
