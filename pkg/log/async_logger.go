package log

import (
	"sync"
	"sync/atomic"
)

// AsyncLogger decouples the control loop from slow sinks. Log enqueues into
// a bounded buffer and returns immediately; when the buffer is full the
// event is dropped and counted.
type AsyncLogger struct {
	next    Logger
	queue   chan Event
	done    chan struct{}
	dropped atomic.Uint64

	mu     sync.RWMutex
	closed bool
}

// NewAsyncLogger starts a goroutine that forwards queued events to next.
// size is the queue capacity; values below 1 are raised to 1.
func NewAsyncLogger(next Logger, size int) *AsyncLogger {
	if size < 1 {
		size = 1
	}
	a := &AsyncLogger{
		next:  next,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *AsyncLogger) run() {
	defer close(a.done)
	for event := range a.queue {
		a.next.Log(event)
	}
}

// Log enqueues the event without blocking.
func (a *AsyncLogger) Log(event Event) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.closed {
		a.dropped.Add(1)
		return
	}
	select {
	case a.queue <- event:
	default:
		a.dropped.Add(1)
	}
}

// Dropped returns the number of events discarded because the queue was
// full or the logger was closed.
func (a *AsyncLogger) Dropped() uint64 {
	return a.dropped.Load()
}

// Close stops accepting events and waits until the queue is drained.
// It is safe to call Close multiple times.
func (a *AsyncLogger) Close() {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()
	<-a.done
}

var _ Logger = (*AsyncLogger)(nil)
