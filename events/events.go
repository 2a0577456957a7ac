// Package events defines the event types a collector publishes to its watchers.
package events

import "time"

type Event interface {
	_isEvent()
}

type eventBase struct{}

func (eventBase) _isEvent() {}

// Recorded is published after each completed measurement.
type Recorded struct {
	eventBase

	Index   int
	Elapsed time.Duration
}

// DataAppended is published after each side-channel data append.
type DataAppended struct {
	eventBase

	Index int
	Data  any
}
