// Package stopwatch implements scoped wall-clock timing of a single sequential
// flow of control: one-shot measurements, accumulation of repeated measurements
// with side-channel data, and feedback or callbacks triggered on completion.
package stopwatch

import "time"

// Timer measures the wall-clock duration between invocations of Start and Stop.
//
// The zero value is ready to use and reads timestamps from the system monotonic
// clock. A Timer holds exactly one measurement; calling Start again begins a
// fresh one. It must be driven by a single flow of control.
type Timer struct {
	clock   Clock
	started time.Time
	ended   time.Time
	elapsed time.Duration
	running bool
}

// NewTimer returns a timer configured with the given options.
func NewTimer(withOpt ...Option) *Timer {
	return newTimer(newConfig(withOpt...))
}

func newTimer(cfg *config) *Timer {
	return &Timer{clock: cfg.clock}
}

// Start captures the start timestamp, discarding any previous measurement.
func (t *Timer) Start() {
	t.started = now(t.clock)
	t.ended = time.Time{}
	t.elapsed = 0
	t.running = true
}

// Stop captures the end timestamp, making Elapsed well defined. Calling Stop
// without a matching prior Start panics with ErrScopeMisuse.
func (t *Timer) Stop() {
	if !t.running {
		panic(ErrScopeMisuse)
	}

	t.ended = now(t.clock)
	t.elapsed = t.ended.Sub(t.started)
	t.running = false
}

// Time runs fn as a single measurement and returns its duration. The end
// timestamp is captured even if fn panics; the panic then propagates unchanged.
func (t *Timer) Time(fn func()) time.Duration {
	t.run(fn)
	return t.elapsed
}

func (t *Timer) run(fn func()) {
	t.Start()
	defer t.Stop()

	fn()
}

// Started returns the timestamp captured by the most recent Start.
func (t *Timer) Started() time.Time {
	return t.started
}

// Ended returns the timestamp captured by the most recent Stop.
func (t *Timer) Ended() time.Time {
	return t.ended
}

// Elapsed returns the duration of the most recent completed measurement. It is
// zero before the first Stop.
func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}
