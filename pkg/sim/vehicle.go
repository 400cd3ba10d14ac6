package sim

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/oubliss/BLISS-ardupilot/pkg/ekfcheck"
	"github.com/oubliss/BLISS-ardupilot/pkg/failsafe"
	"github.com/oubliss/BLISS-ardupilot/pkg/gcs"
	"github.com/oubliss/BLISS-ardupilot/pkg/log"
	"github.com/oubliss/BLISS-ardupilot/pkg/variance"
)

// ErrUnknownField is returned by SetReading for an unknown field name.
var ErrUnknownField = errors.New("unknown reading field")

// Display mode names for the regimes that are not failsafe modes.
const (
	ModeNameFixedWingManual = "FBWA"
	ModeNameManualVTOL      = "QLOITER"
	ModeNameAuto            = "AUTO"
)

// historySize is the number of operator messages kept for display.
const historySize = 32

// Vehicle is a simulated vehicle.
type Vehicle struct {
	mu sync.Mutex

	readings    variance.Readings
	origin      bool
	armed       bool
	posvel      bool
	auto        bool
	exempt      bool
	flowPresent bool
	flowHealthy bool

	mode      string
	modeErr   error
	modeCalls []failsafe.Mode

	estimateBad  bool
	yawResets    int
	laneSwitches int

	texts *gcs.History
}

// NewVehicle returns a disarmed fixed-wing vehicle without an origin or
// optical flow sensor.
func NewVehicle() *Vehicle {
	return &Vehicle{
		mode:  ModeNameFixedWingManual,
		texts: gcs.NewHistory(historySize),
	}
}

// Deps returns monitor dependencies backed by v. Logger and BootID are
// left for the caller.
func (v *Vehicle) Deps() ekfcheck.Deps {
	return ekfcheck.Deps{
		Estimator:   v,
		Vehicle:     v,
		OpticalFlow: v,
		Modes:       v,
		Health:      v,
		Text:        v,
	}
}

// Estimator

// HasOrigin reports whether the estimator has an origin.
func (v *Vehicle) HasOrigin() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.origin
}

// Variances returns the current readings.
func (v *Vehicle) Variances() variance.Readings {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.readings
}

// RequestYawReset counts a yaw reset request.
func (v *Vehicle) RequestYawReset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.yawResets++
}

// RequestAlternateInstance counts an alternate instance request.
func (v *Vehicle) RequestAlternateInstance() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.laneSwitches++
}

// OpticalFlow

// Healthy reports whether an optical flow sensor is fitted and healthy.
func (v *Vehicle) Healthy() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.flowPresent && v.flowHealthy
}

// Vehicle and regime

// IsArmed reports whether the vehicle is armed.
func (v *Vehicle) IsArmed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.armed
}

// InExemptRegime reports whether the current mode is exempt from the check.
func (v *Vehicle) InExemptRegime() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.exempt
}

// InPositionControlledRegime reports whether the vehicle is flying a
// position-controlled VTOL mode.
func (v *Vehicle) InPositionControlledRegime() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.posvel
}

// InAutonomousRegime reports whether the current mode is autonomous.
func (v *Vehicle) InAutonomousRegime() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.auto
}

// SetMode switches to a failsafe mode. It fails with
// failsafe.ErrModeRejected after RejectModes.
func (v *Vehicle) SetMode(mode failsafe.Mode, reason failsafe.ModeReason) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.modeCalls = append(v.modeCalls, mode)
	if v.modeErr != nil {
		return fmt.Errorf("%w: %s (%s): %v", failsafe.ErrModeRejected, mode, reason, v.modeErr)
	}

	v.mode = mode.String()
	v.posvel = true
	v.auto = mode == failsafe.ModeSafeLand
	return nil
}

// Health indicator and operator text

// SetEstimateBad records the estimate health flag.
func (v *Vehicle) SetEstimateBad(bad bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.estimateBad = bad
}

// SendText records an operator message.
func (v *Vehicle) SendText(severity log.Severity, text string) {
	v.texts.SendText(severity, text)
}

// Messages returns the recent operator messages.
func (v *Vehicle) Messages() []gcs.Message {
	return v.texts.Messages()
}

// Setters

// SetOrigin sets whether the estimator has an origin.
func (v *Vehicle) SetOrigin(origin bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.origin = origin
}

// SetArmed arms or disarms the vehicle.
func (v *Vehicle) SetArmed(armed bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.armed = armed
}

// SetPositionControlled sets the position-controlled regime flag.
func (v *Vehicle) SetPositionControlled(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.posvel = on
	v.mode = v.regimeMode()
}

// SetAutonomous sets the autonomous regime flag.
func (v *Vehicle) SetAutonomous(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.auto = on
	v.mode = v.regimeMode()
}

// SetExempt sets the exempt regime flag.
func (v *Vehicle) SetExempt(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.exempt = on
}

// SetOpticalFlow fits or removes the optical flow sensor and sets its
// health.
func (v *Vehicle) SetOpticalFlow(present, healthy bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.flowPresent = present
	v.flowHealthy = healthy
}

// RejectModes makes subsequent SetMode calls fail with err. A nil err
// accepts modes again.
func (v *Vehicle) RejectModes(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.modeErr = err
}

// SetReadings replaces all readings.
func (v *Vehicle) SetReadings(r variance.Readings) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.readings = r
}

// SetReading sets one reading by name: velocity, position, height,
// airspeed, mag_x, mag_y, mag_z, or mag for all three axes.
func (v *Vehicle) SetReading(field string, value float64) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	r := &v.readings
	switch strings.ToLower(field) {
	case "velocity", "vel":
		r.Velocity = value
	case "position", "pos":
		r.Position = value
	case "height", "hgt":
		r.Height = value
	case "airspeed", "tas":
		r.Airspeed = value
	case "mag_x":
		r.Mag[0] = value
	case "mag_y":
		r.Mag[1] = value
	case "mag_z":
		r.Mag[2] = value
	case "mag":
		r.Mag = [3]float64{value, value, value}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

func (v *Vehicle) regimeMode() string {
	switch {
	case v.auto:
		return ModeNameAuto
	case v.posvel:
		return ModeNameManualVTOL
	default:
		return ModeNameFixedWingManual
	}
}

// Snapshot is a point-in-time copy of the vehicle.
type Snapshot struct {
	Readings           variance.Readings
	Origin             bool
	Armed              bool
	PositionControlled bool
	Autonomous         bool
	Exempt             bool
	FlowPresent        bool
	FlowHealthy        bool
	Mode               string
	ModeRequests       []failsafe.Mode
	EstimateBad        bool
	YawResets          int
	AlternateInstances int
	Warnings           uint64
}

// Snapshot returns a copy of the vehicle state.
func (v *Vehicle) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{
		Readings:           v.readings,
		Origin:             v.origin,
		Armed:              v.armed,
		PositionControlled: v.posvel,
		Autonomous:         v.auto,
		Exempt:             v.exempt,
		FlowPresent:        v.flowPresent,
		FlowHealthy:        v.flowHealthy,
		Mode:               v.mode,
		ModeRequests:       append([]failsafe.Mode(nil), v.modeCalls...),
		EstimateBad:        v.estimateBad,
		YawResets:          v.yawResets,
		AlternateInstances: v.laneSwitches,
		Warnings:           v.texts.Total(),
	}
}

var (
	_ ekfcheck.Estimator       = (*Vehicle)(nil)
	_ ekfcheck.OpticalFlow     = (*Vehicle)(nil)
	_ ekfcheck.Vehicle         = (*Vehicle)(nil)
	_ ekfcheck.HealthIndicator = (*Vehicle)(nil)
	_ ekfcheck.TextSender      = (*Vehicle)(nil)
	_ failsafe.ModeSwitcher    = (*Vehicle)(nil)
	_ gcs.TextSender           = (*Vehicle)(nil)
)
