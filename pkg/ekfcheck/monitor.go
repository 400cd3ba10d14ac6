package ekfcheck

import (
	"errors"
	"time"

	"github.com/oubliss/BLISS-ardupilot/pkg/failsafe"
	"github.com/oubliss/BLISS-ardupilot/pkg/log"
	"github.com/oubliss/BLISS-ardupilot/pkg/variance"
)

// Monitor construction errors.
var (
	ErrNoEstimator = errors.New("estimator is required")
	ErrNoVehicle   = errors.New("vehicle is required")
)

// Deps are the collaborators a Monitor talks to.
type Deps struct {
	// Estimator and Vehicle are required.
	Estimator Estimator
	Vehicle   Vehicle

	// OpticalFlow may be nil (no sensor).
	OpticalFlow OpticalFlow

	// Modes executes failsafe mode changes. May be nil.
	Modes failsafe.ModeSwitcher

	// Health receives the estimate-unhealthy flag. May be nil.
	Health HealthIndicator

	// Text delivers operator warnings. May be nil.
	Text TextSender

	// Logger receives typed events. May be nil.
	Logger log.Logger

	// BootID is stamped on every event.
	BootID string
}

// Status is the outcome of one tick.
type Status struct {
	// Tick is the tick number, starting at 1.
	Tick uint64

	// Dormant is true when the estimator has no origin yet.
	Dormant bool

	// Inhibited is true when the vehicle is disarmed, in an exempt regime
	// or the monitor is disabled.
	Inhibited bool

	// Score is the variance evaluation; zero when dormant or inhibited.
	Score variance.Score

	// State is a copy of the monitor state after the tick.
	State State
}

// Monitor is the per-tick navigation health check. It is not safe for
// concurrent use; the scheduler must not overlap ticks.
type Monitor struct {
	cfg Config

	est     Estimator
	vehicle Vehicle
	flow    OpticalFlow
	health  HealthIndicator

	rec  *log.Recorder
	gate *failsafe.Gate
	deb  *Debouncer

	state      State
	tick       uint64
	healthSent bool
	healthBad  bool
}

// New creates a Monitor.
func New(cfg Config, deps Deps) (*Monitor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Estimator == nil {
		return nil, ErrNoEstimator
	}
	if deps.Vehicle == nil {
		return nil, ErrNoVehicle
	}

	rec := log.NewRecorder(deps.Logger, deps.BootID)
	gate := failsafe.NewGate(deps.Vehicle, deps.Modes, rec)

	return &Monitor{
		cfg:     cfg,
		est:     deps.Estimator,
		vehicle: deps.Vehicle,
		flow:    deps.OpticalFlow,
		health:  deps.Health,
		rec:     rec,
		gate:    gate,
		deb:     NewDebouncer(cfg.IterationsMax, cfg.WarningInterval, deps.Estimator, deps.Text, gate, rec),
	}, nil
}

// Gate returns the failsafe gate driven by the monitor.
func (m *Monitor) Gate() *failsafe.Gate {
	return m.gate
}

// Config returns the current configuration.
func (m *Monitor) Config() Config {
	return m.cfg
}

// SetThreshold changes the variance threshold, e.g. after a parameter
// update. NaN disables the monitor like a threshold at or below zero.
func (m *Monitor) SetThreshold(t float64) {
	m.cfg.Threshold = t
}

// State returns a copy of the monitor state.
func (m *Monitor) State() State {
	s := m.state
	s.FailsafeOn = m.gate.IsActive()
	return s
}

// Tick runs one monitor iteration at time now.
func (m *Monitor) Tick(now time.Time) Status {
	m.tick++
	m.rec.Begin(m.tick, now)

	if !m.est.HasOrigin() {
		return Status{Tick: m.tick, Dormant: true, State: m.State()}
	}

	if !m.vehicle.IsArmed() || m.vehicle.InExemptRegime() || !variance.Enabled(m.cfg.Threshold) {
		m.deb.Reset(&m.state)
		m.setHealth(false)
		m.gate.Exit()
		return Status{Tick: m.tick, Inhibited: true, State: m.State()}
	}

	readings := m.est.Variances()
	flowOK := m.flow != nil && m.flow.Healthy()
	score := variance.Evaluate(readings, m.cfg.Threshold, flowOK)

	m.deb.Update(&m.state, score.Unhealthy, now)
	m.setHealth(m.state.BadVariance)

	st := Status{Tick: m.tick, Score: score, State: m.State()}
	if m.cfg.Snapshots {
		m.rec.Snapshot(snapshot(readings, flowOK, st))
	}
	return st
}

// setHealth mirrors the flag to the indicator every tick and records
// changes.
func (m *Monitor) setHealth(bad bool) {
	if m.health != nil {
		m.health.SetEstimateBad(bad)
	}
	if m.healthSent && m.healthBad == bad {
		return
	}
	if m.healthSent {
		m.rec.StateChange(log.StateEntityHealth, healthName(m.healthBad), healthName(bad), "")
	}
	m.healthSent = true
	m.healthBad = bad
}

func healthName(bad bool) string {
	if bad {
		return "BAD"
	}
	return "OK"
}

func snapshot(r variance.Readings, flowOK bool, st Status) log.SnapshotEvent {
	return log.SnapshotEvent{
		Velocity:       r.Velocity,
		Position:       r.Position,
		Height:         r.Height,
		Mag:            r.Mag,
		Airspeed:       r.Airspeed,
		OptflowHealthy: flowOK,
		Score:          st.Score.Total,
		Unhealthy:      st.Score.Unhealthy,
		FailCount:      st.State.FailCount,
		BadVariance:    st.State.BadVariance,
		FailsafeOn:     st.State.FailsafeOn,
	}
}
