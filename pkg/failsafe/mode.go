package failsafe

import "errors"

// ErrModeRejected is returned by mode switchers that refuse a request.
var ErrModeRejected = errors.New("mode change rejected")

// Mode is a flight mode the failsafe can request.
type Mode uint8

const (
	// ModeSafeLand lands in place under position control.
	ModeSafeLand Mode = iota + 1

	// ModeSafeHover holds position with pilot stick input.
	ModeSafeHover
)

// String returns the flight mode name.
func (m Mode) String() string {
	switch m {
	case ModeSafeLand:
		return "QLAND"
	case ModeSafeHover:
		return "QHOVER"
	default:
		return "UNKNOWN"
	}
}

// ModeReason tags why a mode change was requested.
type ModeReason uint8

const (
	// ReasonEKFFailsafe is the navigation failsafe reason.
	ReasonEKFFailsafe ModeReason = iota + 1
)

// String returns the reason name.
func (r ModeReason) String() string {
	switch r {
	case ReasonEKFFailsafe:
		return "EKF_FAILSAFE"
	default:
		return "UNKNOWN"
	}
}

// Regime reports the vehicle's current flight regime.
type Regime interface {
	// InPositionControlledRegime reports whether the current mode requires
	// position and velocity control.
	InPositionControlledRegime() bool

	// InAutonomousRegime reports whether the current mode flies without
	// pilot stick input.
	InAutonomousRegime() bool
}

// ModeSwitcher executes mode changes. SetMode must not block the control
// loop; an error means the request was refused.
type ModeSwitcher interface {
	SetMode(mode Mode, reason ModeReason) error
}
