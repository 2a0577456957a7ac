package stopwatch

import "time"

// fakeClock is a manually advanced clock, making duration assertions exact.
type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Unix(1600000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// brokenClock yields no usable timestamp.
type brokenClock struct{}

func (brokenClock) Now() time.Time {
	return time.Time{}
}
