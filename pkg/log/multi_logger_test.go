package log

import (
	"testing"
)

// recordingLogger records events for testing
type recordingLogger struct {
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.events = append(r.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	l1, l2, l3 := &recordingLogger{}, &recordingLogger{}, &recordingLogger{}
	multi := NewMultiLogger(l1, l2, l3)

	multi.Log(Event{BootID: "boot-123", Category: CategoryError, Error: &FaultCleared})

	for i, l := range []*recordingLogger{l1, l2, l3} {
		if len(l.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(l.events))
			continue
		}
		if l.events[0].BootID != "boot-123" {
			t.Errorf("logger %d: BootID = %q, want %q", i, l.events[0].BootID, "boot-123")
		}
	}
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	l := &recordingLogger{}
	multi := NewMultiLogger(nil, l, nil)

	multi.Log(Event{Tick: 1})

	if len(l.events) != 1 {
		t.Fatalf("got %d events, want 1", len(l.events))
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	NewMultiLogger().Log(Event{})
}
