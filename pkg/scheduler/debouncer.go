package scheduler

import (
	"sync"
	"time"
)

// Debouncer runs the most recently scheduled function once, delay after the
// last Schedule call. Each Schedule supersedes the previous one.
type Debouncer struct {
	clock Clock
	delay time.Duration

	mu      sync.Mutex
	gen     uint64
	timer   Timer
	pending func()
	closed  bool
}

func NewDebouncer(clock Clock, delay time.Duration) *Debouncer {
	if clock == nil {
		clock = RealClock
	}
	return &Debouncer{clock: clock, delay: delay}
}

func (d *Debouncer) Schedule(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.stopLocked()
	d.gen++
	gen := d.gen
	d.pending = f
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
}

// fire runs the pending function unless a newer Schedule, Cancel or Flush
// happened after the timer was armed.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.pending == nil {
		d.mu.Unlock()
		return
	}
	f := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	f()
}

// Flush runs the pending function immediately, if any.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	f := d.pending
	d.stopLocked()
	d.gen++
	d.mu.Unlock()

	if f == nil {
		return false
	}
	f()
	return true
}

func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.gen++
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Close cancels the pending call; later Schedule calls are ignored.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.gen++
	d.closed = true
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}
