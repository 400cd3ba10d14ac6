package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.nlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var read []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			return read
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}
}

func TestReaderIteratesEvents(t *testing.T) {
	now := time.Now()
	events := []Event{
		{Timestamp: now, Tick: 1, Category: CategoryError, Error: &FaultDeclared},
		{Timestamp: now, Tick: 1, Category: CategoryError, Error: &FailsafeOccurred},
		{Timestamp: now, Tick: 2, Category: CategoryMode, ModeChange: &ModeChangeEvent{Mode: "QLAND"}},
	}

	reader, err := NewReader(createTestLogFile(t, events))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}
	if read[0].Error == nil || *read[0].Error != FaultDeclared {
		t.Errorf("first event Error = %+v, want %+v", read[0].Error, FaultDeclared)
	}
	if read[2].ModeChange == nil || read[2].ModeChange.Mode != "QLAND" {
		t.Errorf("last event ModeChange = %+v, want QLAND", read[2].ModeChange)
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	reader, err := NewReader(createTestLogFile(t, nil))
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("Next() error = %v, want io.EOF", err)
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "nope.nlog")); err == nil {
		t.Error("NewReader(missing) error = nil, want error")
	}
}

func TestFilteredReader(t *testing.T) {
	base := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base, BootID: "a", Category: CategoryError, Error: &FaultDeclared},
		{Timestamp: base.Add(time.Second), BootID: "a", Category: CategoryError, Error: &FailsafeOccurred},
		{Timestamp: base.Add(2 * time.Second), BootID: "b", Category: CategoryText, Text: &TextEvent{Text: "EKF variance"}},
		{Timestamp: base.Add(3 * time.Second), BootID: "b", Category: CategoryError, Error: &FailsafeResolved},
	}
	path := createTestLogFile(t, events)

	cat := CategoryError
	sub := SubsystemFailsafeEKF
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"All", Filter{}, 4},
		{"BootID", Filter{BootID: "b"}, 2},
		{"Category", Filter{Category: &cat}, 3},
		{"Subsystem", Filter{Subsystem: &sub}, 2},
		{"TimeWindow", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"Combined", Filter{BootID: "a", Subsystem: &sub}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer reader.Close()

			if got := len(readAll(t, reader)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}
