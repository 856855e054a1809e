package core

import "time"

// Throttle gates work to at most once per interval of clock time. It is the
// fixed-rate counterpart of the render loop: callers observe every frame and
// only act when Ready reports true.
type Throttle struct {
	interval time.Duration
	last     time.Duration
	primed   bool
}

// NewThrottle constructs a Throttle with the given minimum interval.
func NewThrottle(interval time.Duration) *Throttle {
	t := &Throttle{}
	t.SetInterval(interval)
	return t
}

// SetInterval changes the minimum interval. Negative values become zero.
func (t *Throttle) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	t.interval = interval
}

// Interval reports the configured minimum interval.
func (t *Throttle) Interval() time.Duration { return t.interval }

// Ready reports whether more than one interval has elapsed since the last
// time it returned true. The first observation only primes the throttle.
func (t *Throttle) Ready(now time.Duration) bool {
	if !t.primed {
		t.primed = true
		t.last = now
	}
	if now-t.last > t.interval {
		t.last = now
		return true
	}
	return false
}

// Reset forgets the last firing time.
func (t *Throttle) Reset() {
	t.primed = false
	t.last = 0
}
