package stopwatch

import "errors"

var (
	// ErrScopeMisuse indicates that Stop was invoked without a matching prior
	// Start. This is a programmer error, so it surfaces as a panic.
	ErrScopeMisuse = errors.New("stopwatch: stop without a matching start")

	// ErrTimingUnavailable indicates that the clock failed to produce a usable
	// timestamp, leaving the current measurement unrecoverable.
	ErrTimingUnavailable = errors.New("stopwatch: clock produced no timestamp")
)

// IsScopeMisuse returns true if the error is ErrScopeMisuse.
func IsScopeMisuse(err error) bool {
	return errors.Is(err, ErrScopeMisuse)
}

// IsTimingUnavailable returns true if the error is ErrTimingUnavailable.
func IsTimingUnavailable(err error) bool {
	return errors.Is(err, ErrTimingUnavailable)
}
