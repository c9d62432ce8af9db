package scheduler

import (
	"sync"
	"time"
)

// Repeater calls f every interval until Stop.
type Repeater struct {
	clock    Clock
	interval time.Duration
	f        func()

	mu      sync.Mutex
	timer   Timer
	stopped bool
}

func Every(clock Clock, interval time.Duration, f func()) *Repeater {
	if clock == nil {
		clock = RealClock
	}
	r := &Repeater{clock: clock, interval: interval, f: f}
	r.mu.Lock()
	r.arm()
	r.mu.Unlock()
	return r
}

func (r *Repeater) arm() {
	r.timer = r.clock.AfterFunc(r.interval, r.tick)
}

func (r *Repeater) tick() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.arm()
	r.mu.Unlock()

	r.f()
}

// Stop is idempotent; once it returns no further tick is armed.
func (r *Repeater) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.stopped = true
	if r.timer != nil {
		r.timer.Stop()
	}
}

func (r *Repeater) Stopped() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopped
}
