package anim

import "time"

// Clock measures the wall time between successive frames.
type Clock struct {
	last    time.Time
	started bool
}

// Advance records now as the latest frame and returns the time since the previous one.
// The first frame, and any frame that steps backwards, yields zero.
func (c *Clock) Advance(now time.Time) time.Duration {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}

	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	return delta
}

// Reset forgets the previous frame.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}
