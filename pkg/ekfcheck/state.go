package ekfcheck

import (
	"fmt"
	"time"
)

// State is the monitor's persistent state. It is created zeroed and
// mutated only by Monitor.Tick.
type State struct {
	// FailCount is the number of net unhealthy ticks, in [0, IterationsMax].
	FailCount uint8

	// BadVariance is true from the tick FailCount saturated until it
	// decremented back to zero.
	BadVariance bool

	// LastWarnTime is when the operator was last warned. The zero time
	// means never.
	LastWarnTime time.Time

	// FailsafeOn mirrors the failsafe gate. It is filled in on copies
	// handed out by the Monitor and never written by the debouncer.
	FailsafeOn bool

	// Corrective requests already issued in the current rising run.
	yawResetSent   bool
	laneSwitchSent bool
}

// String renders a one-line summary.
func (s State) String() string {
	return fmt.Sprintf("fail_count=%d bad_variance=%t failsafe=%t", s.FailCount, s.BadVariance, s.FailsafeOn)
}

// reset clears the counter, the fault and the corrective request latches.
// LastWarnTime is kept so the warning throttle survives disarming.
func (s *State) reset() {
	s.FailCount = 0
	s.BadVariance = false
	s.yawResetSent = false
	s.laneSwitchSent = false
}
