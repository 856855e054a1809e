package core

import (
	"context"
	"time"
)

// Scheduler accepts a callback to run on the next frame.
type Scheduler interface {
	RequestFrame(fn func())
}

// FrameQueue is a Scheduler holding at most one pending callback, mirroring a
// host that redraws once per display refresh. A later request replaces an
// earlier one that has not run yet.
type FrameQueue struct {
	pending func()
}

// RequestFrame schedules fn for the next call to RunPending.
func (q *FrameQueue) RequestFrame(fn func()) { q.pending = fn }

// Pending reports whether a callback is waiting.
func (q *FrameQueue) Pending() bool { return q.pending != nil }

// RunPending runs the waiting callback, if any, and reports whether one ran.
// The slot is cleared before the callback runs so it may reschedule itself.
func (q *FrameQueue) RunPending() bool {
	fn := q.pending
	if fn == nil {
		return false
	}
	q.pending = nil
	fn()
	return true
}

// RunFrames drains q once per interval until ctx is done. The after hook, when
// non-nil, runs after every frame that executed a callback.
func RunFrames(ctx context.Context, q *FrameQueue, interval time.Duration, after func()) error {
	if interval <= 0 {
		interval = time.Second / 60
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if q.RunPending() && after != nil {
				after()
			}
		}
	}
}
