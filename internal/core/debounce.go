package core

import "time"

// Debouncer collapses bursts of size notifications into a single settled
// size once no new notification has arrived for the configured delay.
type Debouncer struct {
	delay   time.Duration
	pending Size
	since   time.Duration
	has     bool
	current Size
}

// NewDebouncer returns a Debouncer that starts settled on initial.
func NewDebouncer(delay time.Duration, initial Size) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{delay: delay, current: initial}
}

// Observe records a size notification at time now. Sizes equal to the
// settled size with nothing pending are ignored.
func (d *Debouncer) Observe(s Size, now time.Duration) {
	if !d.has && s == d.current {
		return
	}
	if d.has && s == d.pending {
		return
	}
	d.pending = s
	d.since = now
	d.has = true
}

// Poll returns the settled size and true once the quiet period has passed.
func (d *Debouncer) Poll(now time.Duration) (Size, bool) {
	if !d.has || now-d.since < d.delay {
		return d.current, false
	}
	d.has = false
	if d.pending == d.current {
		return d.current, false
	}
	d.current = d.pending
	return d.current, true
}

// Current reports the last settled size.
func (d *Debouncer) Current() Size { return d.current }
