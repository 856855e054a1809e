package core

import "time"

// Clock reports monotonic time elapsed since an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock measures wall time since its construction.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *MonotonicClock) Now() time.Duration { return time.Since(c.start) }

// ManualClock only moves when advanced explicitly.
type ManualClock struct {
	now time.Duration
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now += d }
