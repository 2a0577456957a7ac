package stopwatch

import "time"

// RoundToTwoDecimals rounds a duration to the nearest hundredth of a second.
// Real clocks never measure exactly what was asked of them; demonstrations and
// tests use this to stabilize comparisons. The core never needs it.
func RoundToTwoDecimals(d time.Duration) time.Duration {
	return d.Round(10 * time.Millisecond)
}
