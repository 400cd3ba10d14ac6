package failsafe

import (
	"github.com/oubliss/BLISS-ardupilot/pkg/log"
)

// State is the gate state.
type State uint8

const (
	// StateInactive indicates normal operation.
	StateInactive State = iota

	// StateActive indicates the navigation failsafe is in effect.
	StateActive
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "INACTIVE"
	case StateActive:
		return "ACTIVE"
	default:
		return "UNKNOWN"
	}
}

// Gate is the navigation failsafe state machine. It is owned by a single
// control loop and is not safe for concurrent use.
type Gate struct {
	state State

	regime Regime
	modes  ModeSwitcher
	rec    *log.Recorder

	// Number of INACTIVE -> ACTIVE transitions.
	entries uint32

	// Last mode requested on entry, zero if none.
	lastMode Mode

	// Callbacks
	onStateChange func(oldState, newState State)
	onModeRequest func(mode Mode, err error)
}

// NewGate creates an inactive gate. regime and modes may be nil: without a
// regime the gate never asks for a mode change. rec may be nil.
func NewGate(regime Regime, modes ModeSwitcher, rec *log.Recorder) *Gate {
	if rec == nil {
		rec = log.NewRecorder(nil, "")
	}
	return &Gate{
		state:  StateInactive,
		regime: regime,
		modes:  modes,
		rec:    rec,
	}
}

// State returns the current gate state.
func (g *Gate) State() State {
	return g.state
}

// IsActive returns true while the navigation failsafe is in effect.
func (g *Gate) IsActive() bool {
	return g.state == StateActive
}

// Entries returns how many times the failsafe has been entered.
func (g *Gate) Entries() uint32 {
	return g.entries
}

// LastMode returns the mode requested by the most recent entry, or zero
// when that entry did not request one.
func (g *Gate) LastMode() Mode {
	return g.lastMode
}

// Enter activates the navigation failsafe.
func (g *Gate) Enter() {
	if g.state == StateActive {
		return
	}

	g.setState(StateActive)
	g.entries++
	g.lastMode = 0
	g.rec.Error(log.FailsafeOccurred)

	if g.regime == nil || !g.regime.InPositionControlledRegime() {
		return
	}

	// Without stick input the pilot cannot hold position, so land.
	mode := ModeSafeHover
	if g.regime.InAutonomousRegime() {
		mode = ModeSafeLand
	}
	g.requestMode(mode)
}

// Exit clears the navigation failsafe. No mode change is requested.
func (g *Gate) Exit() {
	if g.state == StateInactive {
		return
	}

	g.setState(StateInactive)
	g.rec.Error(log.FailsafeResolved)
}

func (g *Gate) setState(newState State) {
	oldState := g.state
	g.state = newState
	g.rec.StateChange(log.StateEntityFailsafe, oldState.String(), newState.String(), ReasonEKFFailsafe.String())

	if g.onStateChange != nil {
		g.onStateChange(oldState, newState)
	}
}

func (g *Gate) requestMode(mode Mode) {
	g.lastMode = mode

	var err error
	if g.modes != nil {
		err = g.modes.SetMode(mode, ReasonEKFFailsafe)
	}
	g.rec.ModeChange(mode.String(), ReasonEKFFailsafe.String(), err)

	if g.onModeRequest != nil {
		g.onModeRequest(mode, err)
	}
}

// OnStateChange sets a callback for state changes.
func (g *Gate) OnStateChange(fn func(oldState, newState State)) {
	g.onStateChange = fn
}

// OnModeRequest sets a callback invoked after every mode change request
// with the switcher's result.
func (g *Gate) OnModeRequest(fn func(mode Mode, err error)) {
	g.onModeRequest = fn
}
