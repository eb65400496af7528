package game

import "time"

// Clock measures the time between ticks
type Clock interface {
	Elapsed() time.Duration
	Restart()
}

// SystemClock is a Clock backed by the monotonic wall clock
type SystemClock struct {
	start time.Time
	now   func() time.Time
}

// NewSystemClock creates a clock started now
func NewSystemClock() *SystemClock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *SystemClock {
	return &SystemClock{start: now(), now: now}
}

// Elapsed returns the time since the clock was started or restarted
func (c *SystemClock) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}

// Restart resets the clock to zero
func (c *SystemClock) Restart() {
	c.start = c.now()
}
