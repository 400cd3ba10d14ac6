package gcs

import (
	"sync"
	"sync/atomic"

	"github.com/oubliss/BLISS-ardupilot/pkg/log"
)

// AsyncSender forwards messages to another sender on its own goroutine.
// SendText never blocks; when the queue is full the message is dropped and
// counted.
type AsyncSender struct {
	next    TextSender
	queue   chan Message
	done    chan struct{}
	dropped atomic.Uint64

	mu     sync.RWMutex
	closed bool
}

// NewAsyncSender starts the forwarding goroutine. size is the queue
// capacity; values below 1 are raised to 1.
func NewAsyncSender(next TextSender, size int) *AsyncSender {
	if size < 1 {
		size = 1
	}
	a := &AsyncSender{
		next:  next,
		queue: make(chan Message, size),
		done:  make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *AsyncSender) run() {
	defer close(a.done)
	for msg := range a.queue {
		a.next.SendText(msg.Severity, msg.Text)
	}
}

// SendText enqueues the message.
func (a *AsyncSender) SendText(severity log.Severity, text string) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.closed {
		a.dropped.Add(1)
		return
	}
	select {
	case a.queue <- Message{Severity: severity, Text: text}:
	default:
		a.dropped.Add(1)
	}
}

// Dropped returns the number of discarded messages.
func (a *AsyncSender) Dropped() uint64 {
	return a.dropped.Load()
}

// Close drains the queue and stops the goroutine. Safe to call repeatedly.
func (a *AsyncSender) Close() {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()
	<-a.done
}

var _ TextSender = (*AsyncSender)(nil)
