package scenario

import (
	"fmt"
	"time"

	"github.com/oubliss/BLISS-ardupilot/pkg/ekfcheck"
	"github.com/oubliss/BLISS-ardupilot/pkg/failsafe"
	"github.com/oubliss/BLISS-ardupilot/pkg/log"
	"github.com/oubliss/BLISS-ardupilot/pkg/sim"
)

// DefaultTickInterval is the spacing of ticks without an explicit time.
const DefaultTickInterval = 100 * time.Millisecond

// Epoch is the wall-clock time of t=0 in every replay, so event logs from
// repeated runs are identical apart from the boot id.
var Epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// Failure is an expectation that did not hold.
type Failure struct {
	Step  int
	Tick  uint64
	Field string
	Want  string
	Got   string
}

func (f Failure) String() string {
	return fmt.Sprintf("step %d (tick %d): %s = %s, want %s", f.Step, f.Tick, f.Field, f.Got, f.Want)
}

// Result is the outcome of a replay.
type Result struct {
	Name     string
	Ticks    uint64
	Duration time.Duration
	Final    ekfcheck.State
	Vehicle  sim.Snapshot
	Failures []Failure
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Options configure a replay.
type Options struct {
	// Base is the monitor configuration before scenario overrides. The
	// zero value uses ekfcheck.DefaultConfig().
	Base *ekfcheck.Config

	// Logger receives the monitor's events. May be nil.
	Logger log.Logger

	// BootID is stamped on events.
	BootID string
}

// Run replays sc against a fresh monitor and simulated vehicle.
func Run(sc *Scenario, opts Options) (*Result, error) {
	times, err := sc.schedule(DefaultTickInterval)
	if err != nil {
		return nil, err
	}

	base := ekfcheck.DefaultConfig()
	if opts.Base != nil {
		base = *opts.Base
	}

	v := sc.NewVehicle()
	deps := v.Deps()
	deps.Logger = opts.Logger
	deps.BootID = opts.BootID
	m, err := ekfcheck.New(sc.MonitorConfig(base), deps)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	p := NewPlayer(sc, v, m)
	for _, at := range times {
		if _, err := p.Tick(at); err != nil {
			return nil, err
		}
	}

	return &Result{
		Name:     sc.Name,
		Ticks:    uint64(len(times)),
		Duration: times[len(times)-1].Sub(Epoch),
		Final:    m.State(),
		Vehicle:  v.Snapshot(),
		Failures: p.Failures(),
	}, nil
}

// MonitorConfig returns base with the scenario overrides applied.
func (sc *Scenario) MonitorConfig(base ekfcheck.Config) ekfcheck.Config {
	sc.Config.apply(&base)
	return base
}

// NewVehicle returns a simulated vehicle in the scenario's initial state.
func (sc *Scenario) NewVehicle() *sim.Vehicle {
	v := sim.NewVehicle()
	sc.Vehicle.apply(v)
	return v
}

// Player steps a scenario one tick at a time, so it can be driven by a
// real-time scheduler as well as by Run.
type Player struct {
	sc *Scenario
	v  *sim.Vehicle
	m  *ekfcheck.Monitor

	step     int
	k        int
	failures []Failure
}

// NewPlayer creates a Player applying sc to v and ticking m.
func NewPlayer(sc *Scenario, v *sim.Vehicle, m *ekfcheck.Monitor) *Player {
	return &Player{sc: sc, v: v, m: m}
}

// Done reports whether every step has run.
func (p *Player) Done() bool {
	return p.step >= len(p.sc.Steps)
}

// Failures returns the expectations that did not hold so far.
func (p *Player) Failures() []Failure {
	return p.failures
}

// Tick runs one monitor tick at now. The step's changes are applied before
// its first tick and its expectations checked after its last. Once the
// scenario is done Tick keeps ticking the monitor without changes.
func (p *Player) Tick(now time.Time) (ekfcheck.Status, error) {
	if p.Done() {
		return p.m.Tick(now), nil
	}

	step := p.sc.Steps[p.step]
	if p.k == 0 {
		if err := step.Set.apply(p.v, p.m); err != nil {
			return ekfcheck.Status{}, fmt.Errorf("scenario %q step %d: %w", p.sc.Name, p.step+1, err)
		}
	}

	st := p.m.Tick(now)
	p.k++

	if p.k == step.ticks() {
		if step.Expect != nil {
			p.failures = append(p.failures, step.Expect.check(p.step+1, st, p.v.Snapshot())...)
		}
		p.step++
		p.k = 0
	}
	return st, nil
}

// schedule computes the time of every tick.
func (sc *Scenario) schedule(interval time.Duration) ([]time.Time, error) {
	if len(sc.Steps) == 0 {
		return nil, ErrNoTicks
	}

	times := make([]time.Time, 0, sc.TotalTicks())
	next := Epoch
	for n, step := range sc.Steps {
		if step.At != nil {
			at := Epoch.Add(time.Duration(*step.At) * time.Millisecond)
			if len(times) > 0 && !at.After(times[len(times)-1]) {
				return nil, fmt.Errorf("step %d: %w: at=%dms", n+1, ErrTimeBackwards, *step.At)
			}
			next = at
		}
		for k := 0; k < step.ticks(); k++ {
			times = append(times, next)
			next = next.Add(interval)
		}
	}
	return times, nil
}

func (c ConfigOverride) apply(cfg *ekfcheck.Config) {
	if c.Threshold != nil {
		cfg.Threshold = *c.Threshold
	}
	if c.IterationsMax != nil {
		cfg.IterationsMax = uint8(*c.IterationsMax)
	}
	if c.WarningInterval != nil {
		cfg.WarningInterval = *c.WarningInterval
	}
}

func (s VehicleSetup) apply(v *sim.Vehicle) {
	v.SetOrigin(s.Origin)
	v.SetArmed(s.Armed)
	v.SetPositionControlled(s.PositionControlled)
	v.SetAutonomous(s.Autonomous)
	v.SetExempt(s.Exempt)
	v.SetReadings(s.Readings)
	if s.OpticalFlow != nil {
		v.SetOpticalFlow(true, *s.OpticalFlow)
	}
	if s.RejectModes {
		v.RejectModes(failsafe.ErrModeRejected)
	}
}

func (s Set) apply(v *sim.Vehicle, m *ekfcheck.Monitor) error {
	readings := []struct {
		field string
		value *float64
	}{
		{"velocity", s.Velocity},
		{"position", s.Position},
		{"height", s.Height},
		{"airspeed", s.Airspeed},
	}
	for _, r := range readings {
		if r.value == nil {
			continue
		}
		if err := v.SetReading(r.field, *r.value); err != nil {
			return err
		}
	}
	if s.Mag != nil {
		for i, field := range []string{"mag_x", "mag_y", "mag_z"} {
			if err := v.SetReading(field, s.Mag[i]); err != nil {
				return err
			}
		}
	}

	if s.Origin != nil {
		v.SetOrigin(*s.Origin)
	}
	if s.Armed != nil {
		v.SetArmed(*s.Armed)
	}
	if s.PositionControlled != nil {
		v.SetPositionControlled(*s.PositionControlled)
	}
	if s.Autonomous != nil {
		v.SetAutonomous(*s.Autonomous)
	}
	if s.Exempt != nil {
		v.SetExempt(*s.Exempt)
	}
	if s.OpticalFlow != nil {
		v.SetOpticalFlow(true, *s.OpticalFlow)
	}
	if s.Threshold != nil {
		m.SetThreshold(*s.Threshold)
	}
	return nil
}

func (e *Expect) check(step int, st ekfcheck.Status, v sim.Snapshot) []Failure {
	var out []Failure
	add := func(field string, want, got any) {
		if fmt.Sprint(want) != fmt.Sprint(got) {
			out = append(out, Failure{
				Step:  step,
				Tick:  st.Tick,
				Field: field,
				Want:  fmt.Sprint(want),
				Got:   fmt.Sprint(got),
			})
		}
	}

	if e.FailCount != nil {
		add("fail_count", *e.FailCount, st.State.FailCount)
	}
	if e.BadVariance != nil {
		add("bad_variance", *e.BadVariance, st.State.BadVariance)
	}
	if e.FailsafeOn != nil {
		add("failsafe_on", *e.FailsafeOn, st.State.FailsafeOn)
	}
	if e.Unhealthy != nil {
		add("unhealthy", *e.Unhealthy, st.Score.Unhealthy)
	}
	if e.Dormant != nil {
		add("dormant", *e.Dormant, st.Dormant)
	}
	if e.Inhibited != nil {
		add("inhibited", *e.Inhibited, st.Inhibited)
	}
	if e.Mode != nil {
		add("mode", *e.Mode, v.Mode)
	}
	if e.Warnings != nil {
		add("warnings", *e.Warnings, v.Warnings)
	}
	if e.YawResets != nil {
		add("yaw_resets", *e.YawResets, v.YawResets)
	}
	if e.LaneSwitches != nil {
		add("lane_switches", *e.LaneSwitches, v.AlternateInstances)
	}
	if e.EstimateBad != nil {
		add("estimate_bad", *e.EstimateBad, v.EstimateBad)
	}
	return out
}
