package log

import (
	"testing"

	"github.com/google/uuid"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryError, "ERROR"},
		{CategoryState, "STATE"},
		{CategoryText, "TEXT"},
		{CategoryMode, "MODE"},
		{CategorySnapshot, "SNAPSHOT"},
		{Category(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestErrorEventString(t *testing.T) {
	tests := []struct {
		ev   ErrorEvent
		want string
	}{
		{FaultDeclared, "EKFCHECK/BAD_VARIANCE"},
		{FaultCleared, "EKFCHECK/VARIANCE_CLEARED"},
		{FailsafeOccurred, "FAILSAFE_EKFINAV/FAILSAFE_OCCURRED"},
		{FailsafeResolved, "FAILSAFE_EKFINAV/FAILSAFE_RESOLVED"},
		{ErrorEvent{Subsystem: SubsystemEKFCheck, Code: 9}, "EKFCHECK/UNKNOWN"},
		{ErrorEvent{Subsystem: 1, Code: 0}, "UNKNOWN/UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.ev, got, tt.want)
		}
	}
}

func TestErrorEventsAreDistinct(t *testing.T) {
	seen := map[ErrorEvent]bool{}
	for _, ev := range []ErrorEvent{FaultDeclared, FaultCleared, FailsafeOccurred, FailsafeResolved} {
		if seen[ev] {
			t.Errorf("duplicate error event %v", ev)
		}
		seen[ev] = true
	}
}

func TestSeverityString(t *testing.T) {
	if got := SeverityCritical.String(); got != "CRITICAL" {
		t.Errorf("SeverityCritical.String() = %q, want %q", got, "CRITICAL")
	}
	if got := Severity(42).String(); got != "UNKNOWN" {
		t.Errorf("Severity(42).String() = %q, want %q", got, "UNKNOWN")
	}
}

func TestStateEntityString(t *testing.T) {
	if got := StateEntityFailsafe.String(); got != "FAILSAFE" {
		t.Errorf("StateEntityFailsafe.String() = %q, want %q", got, "FAILSAFE")
	}
	if got := StateEntity(7).String(); got != "UNKNOWN" {
		t.Errorf("StateEntity(7).String() = %q, want %q", got, "UNKNOWN")
	}
}

func TestNewBootID(t *testing.T) {
	a, b := NewBootID(), NewBootID()
	if a == b {
		t.Errorf("NewBootID() returned the same id twice: %s", a)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("NewBootID() = %q is not a UUID: %v", a, err)
	}
}
