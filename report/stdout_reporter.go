package report

import (
	"fmt"
	"io"
	"os"
)

// StdOutReporter prints each run's statistics to os.Stdout.
type StdOutReporter struct {
	out io.Writer
}

func (r *StdOutReporter) ProduceReport(runs []*Run) error {
	out := r.out
	if out == nil {
		out = os.Stdout
	}

	for i, run := range runs {
		if _, err := fmt.Fprintf(out, "[%02d] Run %v (%v)\n", i, run.Name, run.ID); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(out, "[%02d] %v\n", i, run.Stats.String()); err != nil {
			return err
		}
	}

	return nil
}
