// Package queue provides the unbounded channel that feeds measurement events to
// watchers without ever blocking the measuring control flow.
package queue

import (
	"sync"
	"sync/atomic"
)

// QueuedChannel is a channel with an unbounded backlog. Pushes never block:
// items land in the backlog and a pump goroutine moves them onto the outgoing
// channel as the reader drains it.
type QueuedChannel[T any] struct {
	out     chan T
	backlog []T
	cond    *sync.Cond
	closed  atomic.Bool
}

func New[T any](bufferSize, backlogCapacity int) *QueuedChannel[T] {
	queue := &QueuedChannel[T]{
		out:     make(chan T, bufferSize),
		backlog: make([]T, 0, backlogCapacity),
		cond:    sync.NewCond(&sync.Mutex{}),
	}

	go queue.pump()

	return queue
}

// Push appends items to the backlog, reporting false if the queue is closed.
func (q *QueuedChannel[T]) Push(items ...T) bool {
	if q.closed.Load() {
		return false
	}

	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	q.backlog = append(q.backlog, items...)
	q.cond.Broadcast()

	return true
}

// Chan returns the channel on which pushed items arrive in push order. It is
// closed once the queue is closed and the backlog has drained.
func (q *QueuedChannel[T]) Chan() <-chan T {
	return q.out
}

// Close rejects further pushes. Items already pushed can still be read off the
// channel.
func (q *QueuedChannel[T]) Close() {
	q.closed.Store(true)

	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	q.cond.Broadcast()
}

// CloseAndDiscard closes the queue and throws away anything not yet read, so
// the pump goroutine exits even when nobody is draining the channel.
func (q *QueuedChannel[T]) CloseAndDiscard() {
	q.Close()

	go func() {
		for range q.out {
		}
	}()
}

func (q *QueuedChannel[T]) pump() {
	defer close(q.out)

	for {
		item, ok := q.next()
		if !ok {
			return
		}

		q.out <- item
	}
}

// next pops the oldest backlog item, blocking while the backlog is empty. It
// reports false once the queue is closed and the backlog has drained, which
// lets readers consume everything pushed before the close.
func (q *QueuedChannel[T]) next() (T, bool) {
	q.cond.L.Lock()
	defer q.cond.L.Unlock()

	for len(q.backlog) == 0 {
		if q.closed.Load() {
			var zero T

			return zero, false
		}

		q.cond.Wait()
	}

	item := q.backlog[0]
	q.backlog = q.backlog[1:]

	return item, true
}
