package stopwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	lines []string
}

func (n *recordingNotifier) Notify(line string) error {
	n.lines = append(n.lines, line)
	return nil
}

func TestFeedback(t *testing.T) {
	clock := newFakeClock()
	notifier := &recordingNotifier{}
	feedback := NewFeedback(WithClock(clock), WithNotifier(notifier))

	feedback.Time(func() {
		clock.advance(500 * time.Millisecond)
	})

	// The default behavior is a single timing report on stop.
	require.Equal(t, []string{"Took 0.5 seconds"}, notifier.lines)
	require.Equal(t, 500*time.Millisecond, feedback.Elapsed())
}

func TestFeedbackMessages(t *testing.T) {
	clock := newFakeClock()
	notifier := &recordingNotifier{}
	feedback := NewFeedback(
		WithClock(clock),
		WithNotifier(notifier),
		WithStartMessage("doing something..."),
		WithStopMessage("... finished doing that thing"),
	)

	feedback.Time(func() {
		clock.advance(500 * time.Millisecond)
	})

	require.Equal(t, []string{
		"doing something...",
		"... finished doing that thing",
		"Took 0.5 seconds",
	}, notifier.lines)
}

func TestFeedbackQuiet(t *testing.T) {
	clock := newFakeClock()
	notifier := &recordingNotifier{}
	feedback := NewFeedback(
		WithClock(clock),
		WithNotifier(notifier),
		WithStartMessage("doing something..."),
		WithVerbose(false),
	)

	feedback.Time(func() {
		clock.advance(time.Second)
	})

	// Nothing is emitted, but the measurement is still recorded.
	require.Empty(t, notifier.lines)
	require.Equal(t, time.Second, feedback.Elapsed())
}

func TestFeedbackReuse(t *testing.T) {
	clock := newFakeClock()
	notifier := &recordingNotifier{}
	feedback := NewFeedback(WithClock(clock), WithNotifier(notifier))

	feedback.Time(func() {
		clock.advance(time.Second)
	})

	feedback.Time(func() {
		clock.advance(2 * time.Second)
	})

	require.Equal(t, []string{"Took 1.0 seconds", "Took 2.0 seconds"}, notifier.lines)
	require.Equal(t, 2*time.Second, feedback.Elapsed())
}

func TestFeedbackString(t *testing.T) {
	clock := newFakeClock()
	feedback := NewFeedback(WithClock(clock), WithVerbose(false))

	feedback.Time(func() {
		clock.advance(time.Second)
	})

	require.Contains(t, feedback.String(), "elapsed=1s")
}
