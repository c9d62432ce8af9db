package carousel

import (
	"sync"
	"time"

	"elaundry/pkg/scheduler"
)

const DefaultInterval = 5 * time.Second

// Rotator cycles through the hero images. The timer belongs to the rotator
// and is released by Stop.
type Rotator struct {
	images   []string
	interval time.Duration
	clock    scheduler.Clock

	mu        sync.Mutex
	current   int
	repeater  *scheduler.Repeater
	stopped   bool
	listeners []func(int)
}

func New(images []string, interval time.Duration, clock scheduler.Clock) *Rotator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if clock == nil {
		clock = scheduler.RealClock
	}
	return &Rotator{
		images:   append([]string(nil), images...),
		interval: interval,
		clock:    clock,
	}
}

// Start arms the timer. With fewer than two images there is nothing to rotate.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || r.repeater != nil || len(r.images) < 2 {
		return
	}
	r.repeater = scheduler.Every(r.clock, r.interval, r.tick)
}

// Stop releases the timer. A stopped rotator never advances again.
func (r *Rotator) Stop() {
	r.mu.Lock()
	rep := r.repeater
	r.repeater = nil
	r.stopped = true
	r.listeners = nil
	r.mu.Unlock()

	if rep != nil {
		rep.Stop()
	}
}

func (r *Rotator) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.repeater != nil
}

func (r *Rotator) Current() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Image is the path of the image on show, "" when there are none.
func (r *Rotator) Image() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.images) == 0 {
		return ""
	}
	return r.images[r.current]
}

func (r *Rotator) Images() []string {
	return append([]string(nil), r.images...)
}

func (r *Rotator) Interval() time.Duration { return r.interval }

// Advance moves to the next image, wrapping after the last one.
func (r *Rotator) Advance() int {
	r.mu.Lock()
	if r.stopped || len(r.images) == 0 {
		idx := r.current
		r.mu.Unlock()
		return idx
	}
	r.current = (r.current + 1) % len(r.images)
	idx := r.current
	listeners := append([]func(int){}, r.listeners...)
	r.mu.Unlock()

	for _, f := range listeners {
		f(idx)
	}
	return idx
}

func (r *Rotator) OnAdvance(f func(int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.listeners = append(r.listeners, f)
}

func (r *Rotator) tick() { r.Advance() }
