package services

import (
	"sync"
	"time"
)

// Timer is a scheduled task that can be stopped.
type Timer interface {
	// Stop prevents the task from running. It reports false if the
	// task already ran or was stopped.
	Stop() bool
}

// AfterFunc schedules fn to run after d.
type AfterFunc func(d time.Duration, fn func()) Timer

// realAfterFunc adapts time.AfterFunc.
func realAfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Debouncer runs only the most recent of a burst of triggers, once the
// burst has been quiet for the delay.
type Debouncer struct {
	delay     time.Duration
	afterFunc AfterFunc

	mu      sync.Mutex
	timer   Timer
	gen     uint64
	pending bool
}

// NewDebouncer creates a debouncer with the given delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:     delay,
		afterFunc: realAfterFunc,
	}
}

// WithAfterFunc replaces the timer factory. Used by tests.
func (d *Debouncer) WithAfterFunc(fn AfterFunc) *Debouncer {
	d.afterFunc = fn
	return d
}

// Delay returns the debounce delay.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger cancels any pending task and schedules fn after the delay.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	gen := d.gen
	d.pending = true

	d.timer = d.afterFunc(d.delay, func() {
		d.mu.Lock()
		// A superseded timer can fire after Stop lost the race; only
		// the latest generation may run.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.pending = false
		d.timer = nil
		d.mu.Unlock()

		fn()
	})
}

// Cancel drops any pending task.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	d.pending = false
}

// Pending reports whether a task is scheduled and has not yet run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
