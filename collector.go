package stopwatch

import (
	"time"

	"github.com/ProtonMail/stopwatch/events"
	"github.com/bradenaw/juniper/xslices"
)

// Collector is a timer meant to be reused across the iterations of a loop. Each
// completed measurement appends its duration to an ordered sequence, and the
// caller may append arbitrary side-channel data alongside it.
//
// Durations and data are appended independently; keeping them 1:1 is the
// caller's responsibility. The zero value is ready to use.
type Collector struct {
	timer     Timer
	durations []time.Duration
	dataStore DataStore
	watchers  []*watcher
}

// DataStore is the side-channel storage attached to a collector.
// Implementations must preserve append order.
type DataStore interface {
	Append(v any)
	Len() int
	At(i int) any
}

type sliceStore struct {
	items []any
}

func (s *sliceStore) Append(v any) {
	s.items = append(s.items, v)
}

func (s *sliceStore) Len() int {
	return len(s.items)
}

func (s *sliceStore) At(i int) any {
	return s.items[i]
}

// NewCollector returns a collector configured with the given options.
func NewCollector(withOpt ...Option) *Collector {
	return newCollector(newConfig(withOpt...))
}

func newCollector(cfg *config) *Collector {
	return &Collector{
		timer:     Timer{clock: cfg.clock},
		dataStore: cfg.dataStore,
	}
}

// Start begins a new measurement.
func (c *Collector) Start() {
	c.timer.Start()
}

// Stop ends the current measurement and appends its duration to the sequence.
func (c *Collector) Stop() {
	c.timer.Stop()

	c.durations = append(c.durations, c.timer.Elapsed())

	c.publish(events.Recorded{
		Index:   len(c.durations) - 1,
		Elapsed: c.timer.Elapsed(),
	})
}

// Time runs fn as a single measurement and returns its duration. The duration
// is appended to the sequence even if fn panics; the panic then propagates
// unchanged.
func (c *Collector) Time(fn func()) time.Duration {
	func() {
		c.Start()
		defer c.Stop()

		fn()
	}()

	return c.timer.Elapsed()
}

// AppendData appends a value to the side-channel data store. It is independent
// of Stop: calling it more or fewer times than there are measurements changes
// only the data store. Anything executed before Stop is included in the
// measurement, so call it outside the timed scope.
func (c *Collector) AppendData(v any) {
	if c.dataStore == nil {
		c.dataStore = &sliceStore{}
	}

	c.dataStore.Append(v)

	c.publish(events.DataAppended{
		Index: c.dataStore.Len() - 1,
		Data:  v,
	})
}

// Len returns the number of completed measurements.
func (c *Collector) Len() int {
	return len(c.durations)
}

// At returns the duration of the i-th completed measurement.
func (c *Collector) At(i int) time.Duration {
	return c.durations[i]
}

// Durations returns a copy of the recorded durations in completion order.
func (c *Collector) Durations() []time.Duration {
	return xslices.Clone(c.durations)
}

// Data returns a copy of the side-channel data in append order.
func (c *Collector) Data() []any {
	if c.dataStore == nil {
		return nil
	}

	data := make([]any, c.dataStore.Len())

	for i := range data {
		data[i] = c.dataStore.At(i)
	}

	return data
}

// Elapsed returns the duration of the most recent completed measurement.
func (c *Collector) Elapsed() time.Duration {
	return c.timer.Elapsed()
}

// Started returns the start timestamp of the most recent measurement.
func (c *Collector) Started() time.Time {
	return c.timer.Started()
}

// Ended returns the end timestamp of the most recent completed measurement.
func (c *Collector) Ended() time.Time {
	return c.timer.Ended()
}

// Total returns the sum of all recorded durations. It is recomputed from the
// sequence on every call rather than tracked separately.
func (c *Collector) Total() time.Duration {
	return xslices.Reduce(c.durations, 0, func(total, d time.Duration) time.Duration {
		return total + d
	})
}

// Watch returns a channel on which events of the given types are delivered as
// they are published. If no types are given, all events are delivered. The
// channel is closed by Close.
func (c *Collector) Watch(ofType ...events.Event) <-chan events.Event {
	watcher := newWatcher(ofType...)

	c.watchers = append(c.watchers, watcher)

	return watcher.channel()
}

// Close closes all watcher channels. Events not yet read may be dropped.
func (c *Collector) Close() {
	for _, watcher := range c.watchers {
		watcher.close()
	}

	c.watchers = nil
}

func (c *Collector) publish(event events.Event) {
	for _, watcher := range c.watchers {
		watcher.publish(event)
	}
}
