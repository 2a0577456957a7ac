package stopwatch

import "github.com/bradenaw/juniper/xslices"

// Func is a positional-argument function timed by the repeated-call drivers.
type Func func(args ...any) (any, error)

// TimeMultipleCalls times one call of fn per argument set, in order. The
// returned collector holds one duration per call and, unless disabled through
// WithoutArgs/WithoutResults, one record per call combining the arguments with
// the call's result.
//
// There is no partial-failure recovery: an error from fn aborts the remaining
// sets and is returned as the error of the whole run, discarding the collector.
func TimeMultipleCalls(fn Func, argSets [][]any, withOpt ...Option) (*Collector, error) {
	cfg := newConfig(withOpt...)

	collector := newCollector(cfg)

	for _, args := range argSets {
		var result any

		err := func() (err error) {
			collector.Start()
			defer collector.Stop()

			result, err = fn(args...)

			return err
		}()
		if err != nil {
			return nil, err
		}

		if record, ok := cfg.record(args, result); ok {
			collector.AppendData(record)
		}
	}

	return collector, nil
}

// TimeArgCombinations expands per-position candidate values into the cartesian
// product of argument sets and delegates to TimeMultipleCalls. The first
// position varies slowest: for candidates [a1 a2] and [b1 b2] the call order is
// (a1,b1), (a1,b2), (a2,b1), (a2,b2).
func TimeArgCombinations(fn Func, argsBase [][]any, withOpt ...Option) (*Collector, error) {
	return TimeMultipleCalls(fn, combinations(argsBase), withOpt...)
}

func combinations(argsBase [][]any) [][]any {
	sets := [][]any{{}}

	for _, candidates := range argsBase {
		next := make([][]any, 0, len(sets)*len(candidates))

		for _, set := range sets {
			for _, value := range candidates {
				grown := make([]any, 0, len(set)+1)
				grown = append(grown, set...)
				next = append(next, append(grown, value))
			}
		}

		sets = next
	}

	return sets
}

// record builds the per-call record for the given arguments and result,
// reporting false when the configuration asks for timings only.
func (cfg *config) record(args []any, result any) (any, bool) {
	switch {
	case cfg.includeArgs && cfg.includeResults:
		record := make([]any, 0, len(args)+1)
		record = append(record, args...)

		return append(record, result), true

	case cfg.includeArgs:
		return xslices.Clone(args), true

	case cfg.includeResults:
		return result, true

	default:
		return nil, false
	}
}
