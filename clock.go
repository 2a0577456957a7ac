package stopwatch

import "time"

// Clock produces the timestamps between which elapsed time is measured. The
// default clock reads time.Now, which carries the Go runtime's monotonic
// reading and is therefore immune to wall-clock adjustments.
type Clock interface {
	Now() time.Time
}

type monotonicClock struct{}

func (monotonicClock) Now() time.Time {
	return time.Now()
}

// now reads a timestamp off the given clock, falling back to the monotonic
// clock when none was configured. A clock that yields no usable timestamp makes
// the measurement impossible, so this panics with ErrTimingUnavailable.
func now(clock Clock) time.Time {
	if clock == nil {
		clock = monotonicClock{}
	}

	timestamp := clock.Now()
	if timestamp.IsZero() {
		panic(ErrTimingUnavailable)
	}

	return timestamp
}
