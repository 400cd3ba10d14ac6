package scenario

import (
	"time"

	"github.com/oubliss/BLISS-ardupilot/pkg/variance"
)

// Scenario is a scripted replay.
type Scenario struct {
	// Name identifies the scenario. Load defaults it to the file name.
	Name string `yaml:"name"`

	// Description is free text.
	Description string `yaml:"description,omitempty"`

	// Config overrides the default monitor configuration.
	Config ConfigOverride `yaml:"config,omitempty"`

	// Vehicle is the initial simulated vehicle.
	Vehicle VehicleSetup `yaml:"vehicle"`

	// Steps run in order.
	Steps []Step `yaml:"steps"`
}

// ConfigOverride holds optional monitor settings.
type ConfigOverride struct {
	Threshold       *float64       `yaml:"threshold,omitempty"`
	IterationsMax   *int           `yaml:"iterations_max,omitempty"`
	WarningInterval *time.Duration `yaml:"warning_interval,omitempty"`
}

// VehicleSetup is the initial vehicle state.
type VehicleSetup struct {
	Origin             bool              `yaml:"origin"`
	Armed              bool              `yaml:"armed"`
	PositionControlled bool              `yaml:"position_controlled"`
	Autonomous         bool              `yaml:"autonomous"`
	Exempt             bool              `yaml:"exempt"`
	RejectModes        bool              `yaml:"reject_modes"`
	Readings           variance.Readings `yaml:"readings"`

	// OpticalFlow is the sensor health. Absent means no sensor is fitted.
	OpticalFlow *bool `yaml:"optflow"`
}

// Step changes the vehicle, ticks and checks expectations.
type Step struct {
	// At is the time of the first tick of the step in milliseconds since
	// the start. Omitted, the tick follows the previous one by 100 ms.
	At *int64 `yaml:"at,omitempty"`

	// Repeat is the number of ticks to run. Zero means one.
	Repeat int `yaml:"repeat,omitempty"`

	// Set is applied before the first tick.
	Set Set `yaml:"set,omitempty"`

	// Expect is checked after the last tick.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Set holds optional vehicle changes.
type Set struct {
	Velocity *float64    `yaml:"velocity,omitempty"`
	Position *float64    `yaml:"position,omitempty"`
	Height   *float64    `yaml:"height,omitempty"`
	Airspeed *float64    `yaml:"airspeed,omitempty"`
	Mag      *[3]float64 `yaml:"mag,omitempty,flow"`

	Origin             *bool `yaml:"origin,omitempty"`
	Armed              *bool `yaml:"armed,omitempty"`
	PositionControlled *bool `yaml:"position_controlled,omitempty"`
	Autonomous         *bool `yaml:"autonomous,omitempty"`
	Exempt             *bool `yaml:"exempt,omitempty"`
	OpticalFlow        *bool `yaml:"optflow,omitempty"`

	// Threshold changes the monitor threshold, as a parameter update would.
	Threshold *float64 `yaml:"threshold,omitempty"`
}

// Expect holds optional checks. Only the fields present are checked.
type Expect struct {
	FailCount    *int    `yaml:"fail_count,omitempty"`
	BadVariance  *bool   `yaml:"bad_variance,omitempty"`
	FailsafeOn   *bool   `yaml:"failsafe_on,omitempty"`
	Unhealthy    *bool   `yaml:"unhealthy,omitempty"`
	Dormant      *bool   `yaml:"dormant,omitempty"`
	Inhibited    *bool   `yaml:"inhibited,omitempty"`
	Mode         *string `yaml:"mode,omitempty"`
	Warnings     *int    `yaml:"warnings,omitempty"`
	YawResets    *int    `yaml:"yaw_resets,omitempty"`
	LaneSwitches *int    `yaml:"lane_switches,omitempty"`
	EstimateBad  *bool   `yaml:"estimate_bad,omitempty"`
}

// ticks returns the number of ticks the step runs.
func (s Step) ticks() int {
	if s.Repeat < 1 {
		return 1
	}
	return s.Repeat
}

// TotalTicks returns the number of ticks the scenario runs.
func (sc *Scenario) TotalTicks() int {
	n := 0
	for _, s := range sc.Steps {
		n += s.ticks()
	}
	return n
}
