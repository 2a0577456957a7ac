package stopwatch

import (
	"reflect"

	"github.com/ProtonMail/stopwatch/events"
	"github.com/ProtonMail/stopwatch/internal/queue"
)

// watcher delivers published events of the wanted types to a single consumer.
// Publishing never blocks the measuring control flow: events pass through an
// unbounded queued channel.
type watcher struct {
	wanted  map[reflect.Type]struct{}
	eventCh *queue.QueuedChannel[events.Event]
}

func newWatcher(ofType ...events.Event) *watcher {
	var wanted map[reflect.Type]struct{}

	if len(ofType) > 0 {
		wanted = make(map[reflect.Type]struct{}, len(ofType))

		for _, event := range ofType {
			wanted[reflect.TypeOf(event)] = struct{}{}
		}
	}

	return &watcher{
		wanted:  wanted,
		eventCh: queue.New[events.Event](1, 4),
	}
}

func (w *watcher) publish(event events.Event) bool {
	if w.wanted != nil {
		if _, ok := w.wanted[reflect.TypeOf(event)]; !ok {
			return false
		}
	}

	return w.eventCh.Push(event)
}

func (w *watcher) channel() <-chan events.Event {
	return w.eventCh.Chan()
}

func (w *watcher) close() {
	w.eventCh.CloseAndDiscard()
}
