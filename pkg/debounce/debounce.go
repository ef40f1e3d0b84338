// Package debounce delays a call until its input has been quiet for a
// fixed window.
package debounce

import (
	"sync"
	"time"

	"github.com/juju/clock"
)

// DefaultDelay is the quiescence window used when none is configured.
const DefaultDelay = 500 * time.Millisecond

// Debouncer owns at most one pending timer. Each Trigger cancels the
// previous timer before arming a new one, so a burst of triggers runs only
// the last function, once.
type Debouncer struct {
	clock clock.Clock
	delay time.Duration

	mu      sync.Mutex
	timer   clock.Timer
	pending func()
	gen     uint64
}

// New creates a debouncer. A nil clock uses the wall clock and a
// non-positive delay uses DefaultDelay.
func New(clk clock.Clock, delay time.Duration) *Debouncer {
	if clk == nil {
		clk = clock.WallClock
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{clock: clk, delay: delay}
}

// Delay returns the quiescence window.
func (d *Debouncer) Delay() time.Duration { return d.delay }

// Trigger schedules f to run after the delay, replacing any call that has
// not run yet.
func (d *Debouncer) Trigger(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	d.pending = f
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Flush runs the pending call now, if there is one, and reports whether it
// did.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	f := d.pending
	d.cancelLocked()
	d.mu.Unlock()

	if f == nil {
		return false
	}
	f()
	return true
}

// Stop drops the pending call and reports whether one was dropped.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	had := d.pending != nil
	d.cancelLocked()
	return had
}

// Pending reports whether a call is waiting for its timer.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// cancelLocked stops the current timer and invalidates its generation so
// a timer that already fired but has not taken the lock yet becomes a
// no-op.
func (d *Debouncer) cancelLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
	d.gen++
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	f := d.pending
	d.pending = nil
	d.timer = nil
	d.gen++
	d.mu.Unlock()

	f()
}
