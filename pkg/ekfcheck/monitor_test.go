package ekfcheck

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oubliss/BLISS-ardupilot/pkg/failsafe"
	"github.com/oubliss/BLISS-ardupilot/pkg/log"
	"github.com/oubliss/BLISS-ardupilot/pkg/variance"
)

// fakeVehicle implements every collaborator with plain fields.
type fakeVehicle struct {
	origin, armed, exempt, posvel, auto, flow bool

	readings variance.Readings

	yawResets, laneSwitches int
	modes                   []failsafe.Mode
	modeErr                 error
	health                  []bool
	texts                   []string
}

func (f *fakeVehicle) HasOrigin() bool                    { return f.origin }
func (f *fakeVehicle) Variances() variance.Readings       { return f.readings }
func (f *fakeVehicle) RequestYawReset()                   { f.yawResets++ }
func (f *fakeVehicle) RequestAlternateInstance()          { f.laneSwitches++ }
func (f *fakeVehicle) Healthy() bool                      { return f.flow }
func (f *fakeVehicle) IsArmed() bool                      { return f.armed }
func (f *fakeVehicle) InExemptRegime() bool               { return f.exempt }
func (f *fakeVehicle) InPositionControlledRegime() bool   { return f.posvel }
func (f *fakeVehicle) InAutonomousRegime() bool           { return f.auto }
func (f *fakeVehicle) SetEstimateBad(bad bool)            { f.health = append(f.health, bad) }
func (f *fakeVehicle) SendText(_ log.Severity, s string)  { f.texts = append(f.texts, s) }
func (f *fakeVehicle) SetMode(m failsafe.Mode, _ failsafe.ModeReason) error {
	f.modes = append(f.modes, m)
	return f.modeErr
}

// setBad makes the next evaluation unhealthy (velocity at 2.5T, no flow).
func (f *fakeVehicle) setBad(bad bool) {
	if bad {
		f.readings = variance.Readings{Velocity: 2.5}
	} else {
		f.readings = variance.Readings{}
	}
}

type eventSink struct {
	events []log.Event
}

func (s *eventSink) Log(e log.Event) { s.events = append(s.events, e) }

func (s *eventSink) count(ev log.ErrorEvent) int {
	n := 0
	for _, e := range s.events {
		if e.Error != nil && *e.Error == ev {
			n++
		}
	}
	return n
}

func (s *eventSink) category(c log.Category) []log.Event {
	var out []log.Event
	for _, e := range s.events {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

var t0 = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

type harness struct {
	m    *Monitor
	v    *fakeVehicle
	sink *eventSink
	now  time.Time
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()
	v := &fakeVehicle{origin: true, armed: true}
	sink := &eventSink{}
	m, err := New(cfg, Deps{
		Estimator:   v,
		Vehicle:     v,
		OpticalFlow: v,
		Modes:       v,
		Health:      v,
		Text:        v,
		Logger:      sink,
		BootID:      "boot-test",
	})
	require.NoError(t, err)
	return &harness{m: m, v: v, sink: sink, now: t0}
}

func testConfig() Config {
	return Config{Threshold: 1.0, IterationsMax: 10, WarningInterval: 30 * time.Second}
}

// step runs n ticks with the given verdict, 100 ms apart.
func (h *harness) step(bad bool, n int) Status {
	h.v.setBad(bad)
	var st Status
	for i := 0; i < n; i++ {
		h.now = h.now.Add(100 * time.Millisecond)
		st = h.m.Tick(h.now)
	}
	return st
}

func TestBadVarianceAfterExactlyMaxTicks(t *testing.T) {
	for _, max := range []uint8{7, 10, 15} {
		cfg := testConfig()
		cfg.IterationsMax = max
		h := newHarness(t, cfg)

		for i := uint8(1); i < max; i++ {
			st := h.step(true, 1)
			if st.State.BadVariance {
				t.Fatalf("max=%d: BadVariance after %d ticks, want only after %d", max, i, max)
			}
			if st.State.FailCount != i {
				t.Fatalf("max=%d: FailCount = %d after %d ticks", max, st.State.FailCount, i)
			}
		}

		st := h.step(true, 1)
		assert.True(t, st.State.BadVariance, "max=%d", max)
		assert.True(t, st.State.FailsafeOn, "max=%d", max)
		assert.Equal(t, max, st.State.FailCount)
		assert.Equal(t, 1, h.sink.count(log.FaultDeclared))
		assert.Equal(t, 1, h.sink.count(log.FailsafeOccurred))
	}
}

func TestFailCountBounded(t *testing.T) {
	h := newHarness(t, testConfig())

	st := h.step(true, 50)
	assert.Equal(t, uint8(10), st.State.FailCount)
	assert.Equal(t, 1, h.sink.count(log.FaultDeclared), "a saturated counter declares the fault once")

	st = h.step(false, 50)
	assert.Equal(t, uint8(0), st.State.FailCount)
	assert.False(t, st.State.BadVariance)
}

func TestRecoveryTakesFailCountTicks(t *testing.T) {
	h := newHarness(t, testConfig())
	h.step(true, 10)

	for i := 1; i < 10; i++ {
		st := h.step(false, 1)
		require.True(t, st.State.BadVariance, "cleared after only %d healthy ticks", i)
		require.True(t, st.State.FailsafeOn)
	}

	st := h.step(false, 1)
	assert.Equal(t, uint8(0), st.State.FailCount)
	assert.False(t, st.State.BadVariance)
	assert.False(t, st.State.FailsafeOn)
	assert.Equal(t, 1, h.sink.count(log.FaultCleared))
	assert.Equal(t, 1, h.sink.count(log.FailsafeResolved))
}

func TestUnhealthyWhileBadKeepsCount(t *testing.T) {
	h := newHarness(t, testConfig())
	h.step(true, 10)
	h.step(false, 3)

	st := h.step(true, 5)
	assert.Equal(t, uint8(7), st.State.FailCount, "unhealthy ticks while bad must not raise the counter")
	assert.True(t, st.State.BadVariance)
}

func TestCorrectiveRequestsFireOncePerRun(t *testing.T) {
	h := newHarness(t, testConfig())

	h.step(true, 7)
	assert.Zero(t, h.v.yawResets)
	h.step(true, 1) // fail_count == 8
	assert.Equal(t, 1, h.v.yawResets)
	assert.Zero(t, h.v.laneSwitches)
	h.step(true, 1) // fail_count == 9
	assert.Equal(t, 1, h.v.laneSwitches)
	h.step(true, 5)
	assert.Equal(t, 1, h.v.yawResets)
	assert.Equal(t, 1, h.v.laneSwitches)

	// Full recovery then a new rising run fires both again.
	h.step(false, 10)
	h.step(true, 10)
	assert.Equal(t, 2, h.v.yawResets)
	assert.Equal(t, 2, h.v.laneSwitches)
}

func TestCorrectiveRequestsNotRepeatedWithoutFullRecovery(t *testing.T) {
	h := newHarness(t, testConfig())

	h.step(true, 8) // yaw reset at 8
	h.step(false, 1)
	h.step(true, 1) // back to 8
	h.step(false, 2)
	h.step(true, 2) // back to 8

	assert.Equal(t, 1, h.v.yawResets)
	assert.Zero(t, h.v.laneSwitches)
	assert.Equal(t, uint8(8), h.m.State().FailCount)

	h.step(false, 8) // down to 0
	h.step(true, 8)
	assert.Equal(t, 2, h.v.yawResets)
}

func TestWarningThrottle(t *testing.T) {
	h := newHarness(t, testConfig())
	h.now = t0.Add(-1000 * time.Millisecond)

	// Fault declared at t=0: warned.
	h.step(true, 10)
	require.Equal(t, t0, h.now)
	assert.Equal(t, []string{WarningText}, h.v.texts)
	assert.Equal(t, t0, h.m.State().LastWarnTime)

	// Fault declared again at t=10s: throttled.
	h.step(false, 10)
	h.now = t0.Add(9 * time.Second)
	h.step(true, 10)
	require.Equal(t, t0.Add(10*time.Second), h.now)
	assert.Len(t, h.v.texts, 1)
	assert.Equal(t, 2, h.sink.count(log.FaultDeclared))

	// Fault declared again at t=31s: warned.
	h.step(false, 10)
	h.now = t0.Add(30 * time.Second)
	h.step(true, 10)
	require.Equal(t, t0.Add(31*time.Second), h.now)
	assert.Len(t, h.v.texts, 2)
	assert.Equal(t, t0.Add(31*time.Second), h.m.State().LastWarnTime)

	texts := h.sink.category(log.CategoryText)
	require.Len(t, texts, 2)
	assert.Equal(t, log.SeverityCritical, texts[0].Text.Severity)
}

func TestWarningThrottleBoundaryIsExclusive(t *testing.T) {
	h := newHarness(t, testConfig())
	h.now = t0.Add(-1000 * time.Millisecond)
	h.step(true, 10)
	h.step(false, 10)

	// Declared exactly 30 s after the last warning: still throttled.
	h.now = t0.Add(29 * time.Second)
	h.step(true, 10)
	require.Equal(t, t0.Add(30*time.Second), h.now)
	assert.Len(t, h.v.texts, 1)
}

func TestDisarmMidFaultResets(t *testing.T) {
	h := newHarness(t, testConfig())
	h.step(true, 10)
	require.True(t, h.m.State().FailsafeOn)

	h.v.armed = false
	st := h.step(true, 1)

	assert.True(t, st.Inhibited)
	assert.Equal(t, uint8(0), st.State.FailCount)
	assert.False(t, st.State.BadVariance)
	assert.False(t, st.State.FailsafeOn)
	assert.Equal(t, 1, h.sink.count(log.FailsafeResolved))
	assert.Zero(t, h.sink.count(log.FaultCleared), "a forced reset is not a cleared fault")
	assert.False(t, h.v.health[len(h.v.health)-1])

	// Rearmed: counting restarts from zero.
	h.v.armed = true
	st = h.step(true, 1)
	assert.Equal(t, uint8(1), st.State.FailCount)
}

func TestInhibitedMidRunResets(t *testing.T) {
	tests := []struct {
		name    string
		inhibit func(h *harness)
	}{
		{"Disarmed", func(h *harness) { h.v.armed = false }},
		{"ExemptRegime", func(h *harness) { h.v.exempt = true }},
		{"ZeroThreshold", func(h *harness) { h.m.SetThreshold(0) }},
		{"NegativeThreshold", func(h *harness) { h.m.SetThreshold(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, testConfig())
			h.step(true, 6)

			tt.inhibit(h)
			st := h.step(true, 3)

			assert.True(t, st.Inhibited)
			assert.Equal(t, uint8(0), st.State.FailCount)
			assert.Equal(t, variance.Score{}, st.Score)
		})
	}
}

func TestDormantWithoutOrigin(t *testing.T) {
	h := newHarness(t, testConfig())
	h.v.origin = false
	h.v.armed = false

	st := h.step(true, 20)

	assert.True(t, st.Dormant)
	assert.Equal(t, uint64(20), st.Tick)
	assert.Zero(t, st.State.FailCount)
	assert.Empty(t, h.v.health, "dormant monitor must not touch the indicator")
	assert.Empty(t, h.sink.events)
}

func TestHealthIndicatorMirrored(t *testing.T) {
	h := newHarness(t, testConfig())

	h.step(true, 9)
	assert.False(t, h.v.health[len(h.v.health)-1])
	h.step(true, 1)
	assert.True(t, h.v.health[len(h.v.health)-1])
	assert.Len(t, h.v.health, 10)

	h.step(false, 10)
	assert.False(t, h.v.health[len(h.v.health)-1])

	var changes []string
	for _, e := range h.sink.category(log.CategoryState) {
		if e.StateChange.Entity == log.StateEntityHealth {
			changes = append(changes, e.StateChange.OldState+">"+e.StateChange.NewState)
		}
	}
	assert.Equal(t, []string{"OK>BAD", "BAD>OK"}, changes)
}

func TestFailsafeModeChange(t *testing.T) {
	tests := []struct {
		name   string
		posvel bool
		auto   bool
		want   []failsafe.Mode
	}{
		{"FixedWing", false, false, nil},
		{"AutonomousVTOL", true, true, []failsafe.Mode{failsafe.ModeSafeLand}},
		{"PilotedVTOL", true, false, []failsafe.Mode{failsafe.ModeSafeHover}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, testConfig())
			h.v.posvel = tt.posvel
			h.v.auto = tt.auto

			h.step(true, 20)
			h.step(false, 10)

			assert.Equal(t, tt.want, h.v.modes, "exit must not request a mode")
		})
	}
}

func TestFailsafeModeRejectedStillActive(t *testing.T) {
	h := newHarness(t, testConfig())
	h.v.posvel = true
	h.v.modeErr = errors.New("no position estimate")

	st := h.step(true, 10)

	assert.True(t, st.State.FailsafeOn)
	modes := h.sink.category(log.CategoryMode)
	require.Len(t, modes, 1)
	assert.Equal(t, "no position estimate", modes[0].ModeChange.Err)
}

func TestOpticalFlowChangesVelocityWeight(t *testing.T) {
	h := newHarness(t, testConfig())
	h.v.flow = true

	st := h.step(true, 20)
	assert.False(t, st.Score.Unhealthy)
	assert.Zero(t, st.State.FailCount)
}

func TestNoOpticalFlowSensor(t *testing.T) {
	v := &fakeVehicle{origin: true, armed: true, readings: variance.Readings{Velocity: 2.5}}
	m, err := New(testConfig(), Deps{Estimator: v, Vehicle: v})
	require.NoError(t, err)

	st := m.Tick(t0)
	assert.True(t, st.Score.Unhealthy, "absent optical flow counts as unhealthy")
}

func TestSnapshots(t *testing.T) {
	cfg := testConfig()
	cfg.Snapshots = true
	h := newHarness(t, cfg)

	h.step(true, 3)

	snaps := h.sink.category(log.CategorySnapshot)
	require.Len(t, snaps, 3)
	last := snaps[2]
	assert.Equal(t, uint64(3), last.Tick)
	assert.Equal(t, "boot-test", last.BootID)
	assert.Equal(t, uint8(3), last.Snapshot.FailCount)
	assert.Equal(t, uint8(2), last.Snapshot.Score)
	assert.Equal(t, 2.5, last.Snapshot.Velocity)
}

func TestEventsStampedWithTick(t *testing.T) {
	h := newHarness(t, testConfig())
	h.step(true, 10)

	for _, e := range h.sink.events {
		if e.Error != nil && *e.Error == log.FaultDeclared {
			assert.Equal(t, uint64(10), e.Tick)
			assert.Equal(t, h.now, e.Timestamp)
			return
		}
	}
	t.Fatal("no fault declared event")
}

func TestNewValidation(t *testing.T) {
	v := &fakeVehicle{}

	_, err := New(testConfig(), Deps{Vehicle: v})
	assert.ErrorIs(t, err, ErrNoEstimator)

	_, err = New(testConfig(), Deps{Estimator: v})
	assert.ErrorIs(t, err, ErrNoVehicle)

	cfg := testConfig()
	cfg.IterationsMax = 6
	_, err = New(cfg, Deps{Estimator: v, Vehicle: v})
	assert.ErrorIs(t, err, ErrIterationsTooLow)
}

func TestStateString(t *testing.T) {
	s := State{FailCount: 4, BadVariance: true}
	assert.Equal(t, "fail_count=4 bad_variance=true failsafe=false", s.String())
}
