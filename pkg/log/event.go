package log

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a monitor log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// BootID identifies the monitor process that produced the event (UUID).
	BootID string `cbor:"2,keyasint"`

	// Tick is the scheduler tick number the event was produced in.
	Tick uint64 `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Error       *ErrorEvent       `cbor:"10,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"11,keyasint,omitempty"`
	Text        *TextEvent        `cbor:"12,keyasint,omitempty"`
	ModeChange  *ModeChangeEvent  `cbor:"13,keyasint,omitempty"`
	Snapshot    *SnapshotEvent    `cbor:"14,keyasint,omitempty"`
}

// NewBootID returns a fresh boot identifier.
func NewBootID() string {
	return uuid.NewString()
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryError indicates a subsystem/code error record.
	CategoryError Category = 0
	// CategoryState indicates a state change.
	CategoryState Category = 1
	// CategoryText indicates operator-facing text.
	CategoryText Category = 2
	// CategoryMode indicates a mode change request.
	CategoryMode Category = 3
	// CategorySnapshot indicates a per-tick snapshot.
	CategorySnapshot Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryError:
		return "ERROR"
	case CategoryState:
		return "STATE"
	case CategoryText:
		return "TEXT"
	case CategoryMode:
		return "MODE"
	case CategorySnapshot:
		return "SNAPSHOT"
	default:
		return "UNKNOWN"
	}
}

// Subsystem identifies the part of the monitor that raised an ErrorEvent.
type Subsystem uint8

const (
	// SubsystemEKFCheck is the variance debouncer.
	SubsystemEKFCheck Subsystem = 16
	// SubsystemFailsafeEKF is the navigation failsafe gate.
	SubsystemFailsafeEKF Subsystem = 17
)

// String returns the subsystem name.
func (s Subsystem) String() string {
	switch s {
	case SubsystemEKFCheck:
		return "EKFCHECK"
	case SubsystemFailsafeEKF:
		return "FAILSAFE_EKFINAV"
	default:
		return "UNKNOWN"
	}
}

// Code is the subsystem-specific error code of an ErrorEvent.
type Code uint8

const (
	// CodeVarianceCleared: the variance fault has cleared (EKFCHECK).
	CodeVarianceCleared Code = 0
	// CodeFailsafeResolved: the navigation failsafe has resolved (FAILSAFE_EKFINAV).
	CodeFailsafeResolved Code = 0
	// CodeFailsafeOccurred: the navigation failsafe has occurred (FAILSAFE_EKFINAV).
	CodeFailsafeOccurred Code = 1
	// CodeBadVariance: a variance fault has been declared (EKFCHECK).
	CodeBadVariance Code = 2
)

// ErrorEvent records a subsystem/code pair.
type ErrorEvent struct {
	Subsystem Subsystem `cbor:"1,keyasint"`
	Code      Code      `cbor:"2,keyasint"`
}

// String returns the subsystem/code name, e.g. "EKFCHECK/BAD_VARIANCE".
func (e ErrorEvent) String() string {
	return e.Subsystem.String() + "/" + e.CodeName()
}

// CodeName returns the code name within the event's subsystem.
func (e ErrorEvent) CodeName() string {
	switch e.Subsystem {
	case SubsystemEKFCheck:
		switch e.Code {
		case CodeBadVariance:
			return "BAD_VARIANCE"
		case CodeVarianceCleared:
			return "VARIANCE_CLEARED"
		}
	case SubsystemFailsafeEKF:
		switch e.Code {
		case CodeFailsafeOccurred:
			return "FAILSAFE_OCCURRED"
		case CodeFailsafeResolved:
			return "FAILSAFE_RESOLVED"
		}
	}
	return "UNKNOWN"
}

// The four monitor error records.
var (
	FaultDeclared    = ErrorEvent{Subsystem: SubsystemEKFCheck, Code: CodeBadVariance}
	FaultCleared     = ErrorEvent{Subsystem: SubsystemEKFCheck, Code: CodeVarianceCleared}
	FailsafeOccurred = ErrorEvent{Subsystem: SubsystemFailsafeEKF, Code: CodeFailsafeOccurred}
	FailsafeResolved = ErrorEvent{Subsystem: SubsystemFailsafeEKF, Code: CodeFailsafeResolved}
)

// StateChangeEvent captures failsafe gate transitions.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityFailsafe indicates a navigation failsafe state change.
	StateEntityFailsafe StateEntity = 0
	// StateEntityHealth indicates a change of the estimate-unhealthy flag.
	StateEntityHealth StateEntity = 1
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityFailsafe:
		return "FAILSAFE"
	case StateEntityHealth:
		return "HEALTH"
	default:
		return "UNKNOWN"
	}
}

// Severity is the operator text severity. Values follow the MAVLink
// MAV_SEVERITY numbering, lower is more severe.
type Severity uint8

const (
	SeverityEmergency Severity = 0
	SeverityAlert     Severity = 1
	SeverityCritical  Severity = 2
	SeverityError     Severity = 3
	SeverityWarning   Severity = 4
	SeverityNotice    Severity = 5
	SeverityInfo      Severity = 6
	SeverityDebug     Severity = 7
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityEmergency:
		return "EMERGENCY"
	case SeverityAlert:
		return "ALERT"
	case SeverityCritical:
		return "CRITICAL"
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityNotice:
		return "NOTICE"
	case SeverityInfo:
		return "INFO"
	case SeverityDebug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// TextEvent captures operator-facing text.
type TextEvent struct {
	Severity Severity `cbor:"1,keyasint"`
	Text     string   `cbor:"2,keyasint"`
}

// ModeChangeEvent captures a mode change requested by the monitor.
type ModeChangeEvent struct {
	// Mode is the requested mode name.
	Mode string `cbor:"1,keyasint"`

	// Reason is the mode change reason.
	Reason string `cbor:"2,keyasint"`

	// Err is set when the mode switcher refused the request.
	Err string `cbor:"3,keyasint,omitempty"`
}

// SnapshotEvent captures one tick of monitor input and state.
type SnapshotEvent struct {
	Velocity float64    `cbor:"1,keyasint"`
	Position float64    `cbor:"2,keyasint"`
	Height   float64    `cbor:"3,keyasint"`
	Mag      [3]float64 `cbor:"4,keyasint"`
	Airspeed float64    `cbor:"5,keyasint"`

	OptflowHealthy bool  `cbor:"6,keyasint,omitempty"`
	Score          uint8 `cbor:"7,keyasint"`
	Unhealthy      bool  `cbor:"8,keyasint,omitempty"`

	FailCount   uint8 `cbor:"9,keyasint"`
	BadVariance bool  `cbor:"10,keyasint,omitempty"`
	FailsafeOn  bool  `cbor:"11,keyasint,omitempty"`
}
