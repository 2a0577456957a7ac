package report

import (
	"time"

	"github.com/ProtonMail/stopwatch"
	"github.com/google/uuid"
)

// Run is an immutable snapshot of a collector: the recorded durations, the
// side-channel data, and the statistics over the durations.
type Run struct {
	ID        uuid.UUID
	Name      string
	Durations []time.Duration
	Data      []any
	Stats     *Stats
}

// NewRun snapshots the given collector under a human-readable name.
func NewRun(name string, collector *stopwatch.Collector) *Run {
	durations := collector.Durations()

	return &Run{
		ID:        uuid.New(),
		Name:      name,
		Durations: durations,
		Data:      collector.Data(),
		Stats:     NewStats(durations),
	}
}
