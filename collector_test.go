package stopwatch

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	clock := newFakeClock()
	collector := NewCollector(WithClock(clock))

	for i := 0; i < 4; i++ {
		collector.Start()
		clock.advance(time.Duration(i) * 200 * time.Millisecond)
		collector.Stop()
	}

	// One duration per completed measurement, in completion order.
	require.Equal(t, 4, collector.Len())
	require.Equal(t, []time.Duration{
		0,
		200 * time.Millisecond,
		400 * time.Millisecond,
		600 * time.Millisecond,
	}, collector.Durations())

	// Elapsed reports the most recent measurement, Total the recomputed sum.
	require.Equal(t, 600*time.Millisecond, collector.Elapsed())
	require.Equal(t, 1200*time.Millisecond, collector.Total())
	require.Equal(t, 400*time.Millisecond, collector.At(2))
}

func TestCollectorViewsAreIdempotent(t *testing.T) {
	clock := newFakeClock()
	collector := NewCollector(WithClock(clock))

	for i := 0; i < 3; i++ {
		collector.Time(func() {
			clock.advance(100 * time.Millisecond)
		})
	}

	first := collector.Durations()
	second := collector.Durations()

	require.Equal(t, first, second)

	// The returned slice is a copy; mutating it does not corrupt the sequence.
	first[0] = time.Hour
	require.Equal(t, second, collector.Durations())
}

func TestCollectorAppendData(t *testing.T) {
	clock := newFakeClock()
	collector := NewCollector(WithClock(clock))

	for i := 0; i < 4; i++ {
		collector.Time(func() {
			clock.advance(time.Duration(i) * 200 * time.Millisecond)
		})

		collector.AppendData(fmt.Sprintf("index: %v", i))
	}

	require.Equal(t, []any{"index: 0", "index: 1", "index: 2", "index: 3"}, collector.Data())
	require.Equal(t, collector.Len(), len(collector.Data()))
}

func TestCollectorAppendDataIsIndependent(t *testing.T) {
	clock := newFakeClock()
	collector := NewCollector(WithClock(clock))

	collector.Time(func() {
		clock.advance(time.Second)
	})

	// Appending data any number of times changes only the data store.
	collector.AppendData("one")
	collector.AppendData("two")

	require.Equal(t, 1, collector.Len())
	require.Equal(t, []any{"one", "two"}, collector.Data())
}

type countingStore struct {
	items []any
}

func (s *countingStore) Append(v any) {
	s.items = append(s.items, v)
}

func (s *countingStore) Len() int {
	return len(s.items)
}

func (s *countingStore) At(i int) any {
	return s.items[i]
}

func TestCollectorCustomDataStore(t *testing.T) {
	clock := newFakeClock()
	store := &countingStore{}
	collector := NewCollector(WithClock(clock), WithDataStore(store))

	collector.Time(func() {
		clock.advance(time.Second)
	})
	collector.AppendData("entry")

	require.Equal(t, []any{"entry"}, store.items)
	require.Equal(t, []any{"entry"}, collector.Data())
}

func TestCollectorZeroValue(t *testing.T) {
	var collector Collector

	collector.Time(func() {})
	collector.AppendData(42)

	require.Equal(t, 1, collector.Len())
	require.Equal(t, []any{42}, collector.Data())
}

func TestCollectorPanicKeepsRecordedEntries(t *testing.T) {
	clock := newFakeClock()
	collector := NewCollector(WithClock(clock))

	collector.Time(func() {
		clock.advance(time.Second)
	})

	// The panicking scope still runs its exit bookkeeping, then the panic
	// propagates. The previously recorded entry is untouched.
	require.PanicsWithValue(t, "boom", func() {
		collector.Time(func() {
			clock.advance(100 * time.Millisecond)
			panic("boom")
		})
	})

	require.Equal(t, 2, collector.Len())
	require.Equal(t, time.Second, collector.At(0))
	require.Equal(t, 100*time.Millisecond, collector.At(1))
}
