package log

import (
	"testing"
	"time"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{Timestamp: time.Now(), Category: CategoryError}
	logger.Log(event)

	event.Error = &FaultDeclared
	logger.Log(event)

	event.Error = nil
	event.Snapshot = &SnapshotEvent{FailCount: 3}
	logger.Log(event)
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
}
