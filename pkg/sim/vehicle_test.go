package sim

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oubliss/BLISS-ardupilot/pkg/ekfcheck"
	"github.com/oubliss/BLISS-ardupilot/pkg/failsafe"
	"github.com/oubliss/BLISS-ardupilot/pkg/variance"
)

func TestSetReading(t *testing.T) {
	v := NewVehicle()

	tests := []struct {
		field string
		value float64
		check func(r variance.Readings) float64
	}{
		{"velocity", 1.5, func(r variance.Readings) float64 { return r.Velocity }},
		{"pos", 0.9, func(r variance.Readings) float64 { return r.Position }},
		{"height", 0.3, func(r variance.Readings) float64 { return r.Height }},
		{"airspeed", 0.2, func(r variance.Readings) float64 { return r.Airspeed }},
		{"mag_y", 1.1, func(r variance.Readings) float64 { return r.Mag[1] }},
		{"MAG_Z", 1.2, func(r variance.Readings) float64 { return r.Mag[2] }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			require.NoError(t, v.SetReading(tt.field, tt.value))
			if got := tt.check(v.Variances()); got != tt.value {
				t.Errorf("SetReading(%q, %v) stored %v", tt.field, tt.value, got)
			}
		})
	}

	require.NoError(t, v.SetReading("mag", 0.4))
	assert.Equal(t, [3]float64{0.4, 0.4, 0.4}, v.Variances().Mag)

	err := v.SetReading("compass", 1)
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestOpticalFlowHealth(t *testing.T) {
	v := NewVehicle()
	assert.False(t, v.Healthy(), "no sensor fitted")

	v.SetOpticalFlow(true, false)
	assert.False(t, v.Healthy())

	v.SetOpticalFlow(true, true)
	assert.True(t, v.Healthy())
}

func TestRegimeModeNames(t *testing.T) {
	v := NewVehicle()
	assert.Equal(t, ModeNameFixedWingManual, v.Snapshot().Mode)

	v.SetPositionControlled(true)
	assert.Equal(t, ModeNameManualVTOL, v.Snapshot().Mode)

	v.SetAutonomous(true)
	assert.Equal(t, ModeNameAuto, v.Snapshot().Mode)
}

func TestSetMode(t *testing.T) {
	v := NewVehicle()

	require.NoError(t, v.SetMode(failsafe.ModeSafeHover, failsafe.ReasonEKFFailsafe))
	s := v.Snapshot()
	assert.Equal(t, "QHOVER", s.Mode)
	assert.True(t, s.PositionControlled)
	assert.False(t, s.Autonomous)

	require.NoError(t, v.SetMode(failsafe.ModeSafeLand, failsafe.ReasonEKFFailsafe))
	assert.True(t, v.InAutonomousRegime())

	v.RejectModes(errors.New("not ready"))
	err := v.SetMode(failsafe.ModeSafeHover, failsafe.ReasonEKFFailsafe)
	assert.ErrorIs(t, err, failsafe.ErrModeRejected)
	assert.Equal(t, "QLAND", v.Snapshot().Mode)
	assert.Len(t, v.Snapshot().ModeRequests, 3)
}

func TestVehicleDrivesMonitor(t *testing.T) {
	v := NewVehicle()
	v.SetOrigin(true)
	v.SetArmed(true)
	v.SetPositionControlled(true)
	v.SetAutonomous(true)
	v.SetReadings(variance.Readings{Velocity: 2.0, Position: 0.9})

	m, err := ekfcheck.New(ekfcheck.DefaultConfig(), v.Deps())
	require.NoError(t, err)

	now := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		m.Tick(now)
		now = now.Add(100 * time.Millisecond)
	}

	s := v.Snapshot()
	assert.True(t, s.EstimateBad)
	assert.Equal(t, 1, s.YawResets)
	assert.Equal(t, 1, s.AlternateInstances)
	assert.Equal(t, uint64(1), s.Warnings)
	assert.Equal(t, "QLAND", s.Mode)
	require.Len(t, v.Messages(), 1)
	assert.Equal(t, ekfcheck.WarningText, v.Messages()[0].Text)
}

func TestVehicleConcurrentAccess(t *testing.T) {
	v := NewVehicle()
	v.SetOrigin(true)
	v.SetArmed(true)
	m, err := ekfcheck.New(ekfcheck.DefaultConfig(), v.Deps())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = v.SetReading("velocity", float64(i%3))
			v.SetOpticalFlow(true, i%2 == 0)
		}
	}()
	go func() {
		defer wg.Done()
		now := time.Now()
		for i := 0; i < 200; i++ {
			m.Tick(now)
			now = now.Add(100 * time.Millisecond)
		}
	}()
	wg.Wait()

	st := m.State()
	assert.LessOrEqual(t, st.FailCount, uint8(10))
}
