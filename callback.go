package stopwatch

import "time"

// Callback is a timer that hands each completed measurement to a caller-supplied
// procedure. Accumulation, logging or any other side effect is whatever the
// procedure does; the timer itself stores nothing beyond the last measurement
// and is reusable across loop iterations.
type Callback struct {
	timer  Timer
	fn     func(elapsed time.Duration)
	fnData func(elapsed time.Duration, data any)
	data   any
}

// NewCallback returns a timer that invokes fn with the elapsed duration on each
// Stop. A nil fn makes Stop record the measurement and do nothing else.
func NewCallback(fn func(elapsed time.Duration), withOpt ...Option) *Callback {
	cfg := newConfig(withOpt...)

	return &Callback{
		timer: Timer{clock: cfg.clock},
		fn:    fn,
	}
}

// NewDataCallback returns a timer whose callback also receives the value set
// through SetData, nil until then.
func NewDataCallback(fn func(elapsed time.Duration, data any), withOpt ...Option) *Callback {
	cfg := newConfig(withOpt...)

	return &Callback{
		timer:  Timer{clock: cfg.clock},
		fnData: fn,
	}
}

// SetData sets the value passed alongside the elapsed duration by a timer built
// with NewDataCallback.
func (c *Callback) SetData(data any) {
	c.data = data
}

// Start begins a new measurement.
func (c *Callback) Start() {
	c.timer.Start()
}

// Stop ends the measurement and invokes the callback with the elapsed duration.
// The measurement is recorded before the callback runs, so a panicking callback
// propagates to the caller without losing the timing.
func (c *Callback) Stop() {
	c.timer.Stop()

	switch {
	case c.fnData != nil:
		c.fnData(c.timer.Elapsed(), c.data)
	case c.fn != nil:
		c.fn(c.timer.Elapsed())
	}
}

// Time runs fn as a single measurement and returns its duration. The callback
// fires even if fn panics; the panic then propagates unchanged.
func (c *Callback) Time(fn func()) time.Duration {
	func() {
		c.Start()
		defer c.Stop()

		fn()
	}()

	return c.timer.Elapsed()
}

// Started returns the start timestamp of the most recent measurement.
func (c *Callback) Started() time.Time {
	return c.timer.Started()
}

// Ended returns the end timestamp of the most recent completed measurement.
func (c *Callback) Ended() time.Time {
	return c.timer.Ended()
}

// Elapsed returns the duration of the most recent completed measurement.
func (c *Callback) Elapsed() time.Duration {
	return c.timer.Elapsed()
}
