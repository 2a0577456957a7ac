package main

import (
	"os"
	"time"

	"github.com/ProtonMail/stopwatch"
	"github.com/ProtonMail/stopwatch/notify"
	"github.com/ProtonMail/stopwatch/report"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
)

func main() {
	if level, err := logrus.ParseLevel(os.Getenv("STOPWATCH_LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}

	if os.Getenv("STOPWATCH_PROFILE") != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// A single scoped measurement.
	timer := stopwatch.NewTimer()

	elapsed := timer.Time(func() {
		time.Sleep(100 * time.Millisecond)
	})

	logrus.WithField("elapsed", stopwatch.RoundToTwoDecimals(elapsed)).Info("Single measurement done")

	// Accumulating measurements over a loop, with side-channel data.
	collector := stopwatch.NewCollector()
	defer collector.Close()

	for i := 0; i < 4; i++ {
		delay := time.Duration(i) * 50 * time.Millisecond

		collector.Time(func() {
			time.Sleep(delay)
		})

		collector.AppendData(delay)
	}

	logrus.WithField("total", collector.Total()).Info("Loop measurements done")

	// Feedback routed into logrus instead of stdout.
	feedback := stopwatch.NewFeedback(
		stopwatch.WithStartMessage("doing something..."),
		stopwatch.WithStopMessage("... finished doing that thing"),
		stopwatch.WithNotifier(notify.NewLogrusNotifier(logrus.StandardLogger())),
	)

	feedback.Time(func() {
		time.Sleep(100 * time.Millisecond)
	})

	// A callback accumulating into an externally owned slice.
	var observed []time.Duration

	callback := stopwatch.NewCallback(func(elapsed time.Duration) {
		observed = append(observed, elapsed)
	})

	for i := 0; i < 3; i++ {
		callback.Time(func() {
			time.Sleep(20 * time.Millisecond)
		})
	}

	logrus.WithField("count", len(observed)).Info("Callback measurements done")

	// Time a function over all combinations of its arguments and report.
	sleepFor := func(args ...any) (any, error) {
		duration := time.Duration(args[0].(int)) * args[1].(time.Duration)

		time.Sleep(duration)

		return duration, nil
	}

	combinations, err := stopwatch.TimeArgCombinations(sleepFor, [][]any{
		{1, 2},
		{10 * time.Millisecond, 25 * time.Millisecond},
	})
	if err != nil {
		logrus.WithError(err).Fatal("Failed to time argument combinations")
	}
	defer combinations.Close()

	run := report.NewRun("sleep-combinations", combinations)

	if err := (&report.StdOutReporter{}).ProduceReport([]*report.Run{run}); err != nil {
		logrus.WithError(err).Fatal("Failed to produce report")
	}
}
