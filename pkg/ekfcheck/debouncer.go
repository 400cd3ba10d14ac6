package ekfcheck

import (
	"time"

	"github.com/oubliss/BLISS-ardupilot/pkg/failsafe"
	"github.com/oubliss/BLISS-ardupilot/pkg/log"
)

// WarningText is the operator warning sent when a variance fault is declared.
const WarningText = "EKF variance"

// Debouncer turns per-tick verdicts into a stable bad-variance condition.
type Debouncer struct {
	max          uint8
	warnInterval time.Duration

	est  Estimator
	text TextSender
	gate *failsafe.Gate
	rec  *log.Recorder
}

// NewDebouncer creates a debouncer saturating at max. est receives the
// corrective requests, text the operator warning, gate the failsafe
// transitions. text and rec may be nil.
func NewDebouncer(max uint8, warnInterval time.Duration, est Estimator, text TextSender, gate *failsafe.Gate, rec *log.Recorder) *Debouncer {
	if rec == nil {
		rec = log.NewRecorder(nil, "")
	}
	return &Debouncer{
		max:          max,
		warnInterval: warnInterval,
		est:          est,
		text:         text,
		gate:         gate,
		rec:          rec,
	}
}

// Update applies one verdict to s. now is the tick time used by the
// warning throttle.
func (d *Debouncer) Update(s *State, unhealthy bool, now time.Time) {
	if unhealthy {
		d.rise(s, now)
		return
	}
	d.fall(s)
}

func (d *Debouncer) rise(s *State, now time.Time) {
	if s.BadVariance {
		return
	}

	if s.FailCount < d.max {
		s.FailCount++
	}

	// Two ticks from declaring the fault: the estimator may be able to fix
	// it by resetting yaw.
	if s.FailCount == d.max-2 && !s.yawResetSent {
		s.yawResetSent = true
		d.est.RequestYawReset()
	}

	// One tick from declaring the fault: try another estimator lane.
	if s.FailCount == d.max-1 && !s.laneSwitchSent {
		s.laneSwitchSent = true
		d.est.RequestAlternateInstance()
	}

	if s.FailCount >= d.max {
		s.FailCount = d.max
		s.BadVariance = true
		d.rec.Error(log.FaultDeclared)

		if s.LastWarnTime.IsZero() || now.Sub(s.LastWarnTime) > d.warnInterval {
			s.LastWarnTime = now
			d.warn()
		}

		d.gate.Enter()
	}
}

func (d *Debouncer) fall(s *State) {
	if s.FailCount == 0 {
		return
	}

	s.FailCount--
	if s.FailCount > 0 {
		return
	}

	s.yawResetSent = false
	s.laneSwitchSent = false

	if s.BadVariance {
		s.BadVariance = false
		d.rec.Error(log.FaultCleared)
		d.gate.Exit()
	}
}

func (d *Debouncer) warn() {
	if d.text != nil {
		d.text.SendText(log.SeverityCritical, WarningText)
	}
	d.rec.Text(log.SeverityCritical, WarningText)
}

// Reset forces s back to healthy without recording a fault cleared event.
func (d *Debouncer) Reset(s *State) {
	s.reset()
}
