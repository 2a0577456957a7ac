package stopwatch

import (
	"fmt"
	"os"
	"time"

	"github.com/ProtonMail/stopwatch/notify"
	"github.com/sirupsen/logrus"
)

// Feedback is a timer that reports to a human when a measurement completes. By
// default it writes "Took X seconds" to standard output; the destination,
// surrounding messages and verbosity are configurable.
type Feedback struct {
	timer        Timer
	notifier     notify.Notifier
	startMessage string
	stopMessage  string
	verbose      bool
}

// NewFeedback returns a feedback timer configured with the given options.
func NewFeedback(withOpt ...Option) *Feedback {
	cfg := newConfig(withOpt...)

	notifier := cfg.notifier
	if notifier == nil {
		notifier = notify.NewWriterNotifier(os.Stdout)
	}

	return &Feedback{
		timer:        Timer{clock: cfg.clock},
		notifier:     notifier,
		startMessage: cfg.startMessage,
		stopMessage:  cfg.stopMessage,
		verbose:      cfg.verbose,
	}
}

// Start begins a measurement, emitting the start message if one is configured.
func (f *Feedback) Start() {
	f.notify(f.startMessage)

	f.timer.Start()
}

// Stop ends the measurement and emits the stop message, if any, followed by the
// timing report. With verbose false nothing is emitted but the measurement is
// still recorded.
func (f *Feedback) Stop() {
	f.timer.Stop()

	f.notify(f.stopMessage)
	f.notify(fmt.Sprintf("Took %0.1f seconds", f.timer.Elapsed().Seconds()))
}

// Time runs fn as a single measurement and returns its duration. The report is
// emitted even if fn panics; the panic then propagates unchanged.
func (f *Feedback) Time(fn func()) time.Duration {
	func() {
		f.Start()
		defer f.Stop()

		fn()
	}()

	return f.timer.Elapsed()
}

// Started returns the start timestamp of the most recent measurement.
func (f *Feedback) Started() time.Time {
	return f.timer.Started()
}

// Ended returns the end timestamp of the most recent completed measurement.
func (f *Feedback) Ended() time.Time {
	return f.timer.Ended()
}

// Elapsed returns the duration of the most recent completed measurement.
func (f *Feedback) Elapsed() time.Duration {
	return f.timer.Elapsed()
}

func (f *Feedback) String() string {
	return fmt.Sprintf("elapsed=%v (start=%v, end=%v)", f.timer.Elapsed(), f.timer.Started(), f.timer.Ended())
}

// notify emits one line through the notifier, skipping empty messages and
// respecting the verbosity setting. Sink failures are logged, not propagated;
// feedback is a side channel and must not fail the measurement.
func (f *Feedback) notify(message string) {
	if !f.verbose || len(message) == 0 {
		return
	}

	if err := f.notifier.Notify(message); err != nil {
		logrus.WithError(err).Error("Failed to emit timer feedback")
	}
}
