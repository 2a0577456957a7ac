// Package report turns collected measurements into summary statistics and
// renders them through pluggable reporters.
package report

import (
	"fmt"
	"math"
	"time"

	"github.com/bradenaw/juniper/xslices"
	"golang.org/x/exp/slices"
)

// Stats summarizes a sequence of durations.
type Stats struct {
	Total        time.Duration
	Average      time.Duration
	Fastest      time.Duration
	Slowest      time.Duration
	Median       time.Duration
	Percentile90 time.Duration
	Percentile10 time.Duration
	RMS          time.Duration
	SampleCount  int
}

// NewStats computes summary statistics over the given durations. With no
// samples all fields are zero.
func NewStats(durations []time.Duration) *Stats {
	stats := &Stats{SampleCount: len(durations)}

	if len(durations) == 0 {
		return stats
	}

	sorted := xslices.Clone(durations)
	slices.Sort(sorted)

	stats.Fastest = sorted[0]
	stats.Slowest = sorted[len(sorted)-1]

	stats.Total = xslices.Reduce(sorted, 0, func(total, d time.Duration) time.Duration {
		return total + d
	})
	stats.Average = stats.Total / time.Duration(len(sorted))

	if len(sorted)%2 == 0 {
		half := len(sorted) / 2
		stats.Median = (sorted[half-1] + sorted[half]) / 2
	} else {
		stats.Median = sorted[len(sorted)/2]
	}

	stats.Percentile90 = sorted[percentileIndex(len(sorted), 90)]
	stats.Percentile10 = sorted[percentileIndex(len(sorted), 10)]

	// Divide inside the loop or the squared sum overflows for long runs.
	var meanSquare float64
	for _, d := range sorted {
		meanSquare += float64(d) * float64(d) / float64(len(sorted))
	}

	stats.RMS = time.Duration(math.Round(math.Sqrt(meanSquare)))

	return stats
}

func percentileIndex(sampleCount, percentile int) int {
	index := int(math.Floor(float64(sampleCount) * float64(percentile) / 100.0))

	if index >= sampleCount {
		index = sampleCount - 1
	}

	return index
}

func (s *Stats) String() string {
	return fmt.Sprintf("SampleCount:%04d Total:%v Fastest:%v Slowest:%v Average:%v Median:%v 90thPercentile:%v 10thPercentile:%v RMS:%v",
		s.SampleCount, s.Total, s.Fastest, s.Slowest, s.Average,
		s.Median, s.Percentile90, s.Percentile10, s.RMS,
	)
}
