package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/notedex/internal/core/domain"
)

// MockIndexLoader implements driven.IndexLoader for testing.
type MockIndexLoader struct {
	LoadFunc func(ctx context.Context) ([]domain.RawRecord, error)
	calls    int
}

func (m *MockIndexLoader) Load(ctx context.Context) ([]domain.RawRecord, error) {
	m.calls++
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return []domain.RawRecord{}, nil
}

func (m *MockIndexLoader) Location() string {
	return "mock://index.json"
}

// loaderReturning returns a loader serving records.
func loaderReturning(records ...domain.RawRecord) *MockIndexLoader {
	return &MockIndexLoader{
		LoadFunc: func(context.Context) ([]domain.RawRecord, error) {
			return records, nil
		},
	}
}

// RecordingSink implements driven.Sink and records every call.
type RecordingSink struct {
	mu       sync.Mutex
	entries  []domain.Entry
	count    int
	empty    bool
	status   domain.State
	statuses []domain.State
	renders  int
	focused  int
}

func (s *RecordingSink) DisplayItems(entries []domain.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	s.renders++
}

func (s *RecordingSink) SetCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count = n
}

func (s *RecordingSink) SetEmpty(empty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.empty = empty
}

func (s *RecordingSink) SetStatus(state domain.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = state
	s.statuses = append(s.statuses, state)
}

func (s *RecordingSink) FocusInput() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused++
}

func (s *RecordingSink) Headings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Heading
	}
	return out
}

func (s *RecordingSink) Renders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renders
}

// fakeTimer is a manually fired Timer.
type fakeTimer struct {
	fn      func()
	delay   time.Duration
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler records timers instead of starting them.
type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (f *fakeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTimer{fn: fn, delay: d}
	f.timers = append(f.timers, t)
	return t
}

// FireAll runs every timer that has not been stopped, oldest first.
func (f *fakeScheduler) FireAll() {
	f.mu.Lock()
	timers := append([]*fakeTimer(nil), f.timers...)
	f.mu.Unlock()
	for _, t := range timers {
		if t.stopped || t.fired {
			continue
		}
		t.fired = true
		t.fn()
	}
}

// FireStale runs every timer, including stopped ones, to model a
// timer that fired while Stop was racing it.
func (f *fakeScheduler) FireStale() {
	f.mu.Lock()
	timers := append([]*fakeTimer(nil), f.timers...)
	f.mu.Unlock()
	for _, t := range timers {
		t.fn()
	}
}

func (f *fakeScheduler) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}
