package ekfcheck

import (
	"github.com/oubliss/BLISS-ardupilot/pkg/failsafe"
	"github.com/oubliss/BLISS-ardupilot/pkg/log"
	"github.com/oubliss/BLISS-ardupilot/pkg/variance"
)

// Estimator is the state estimator being monitored.
type Estimator interface {
	// HasOrigin reports whether the estimator has an origin. Once set the
	// origin is assumed never to become unset.
	HasOrigin() bool

	// Variances returns the current variance readings.
	Variances() variance.Readings

	// RequestYawReset asks the estimator to reset its yaw if it can.
	RequestYawReset()

	// RequestAlternateInstance asks the estimator to switch to another
	// instance (lane) if a healthier one exists.
	RequestAlternateInstance()
}

// OpticalFlow reports optical-flow sensor health. A nil OpticalFlow is an
// absent sensor and counts as unhealthy.
type OpticalFlow interface {
	Healthy() bool
}

// Vehicle reports arming state and flight regime.
type Vehicle interface {
	failsafe.Regime

	// IsArmed reports whether the motors are armed.
	IsArmed() bool

	// InExemptRegime reports whether the current regime is excluded from
	// monitoring.
	InExemptRegime() bool
}

// HealthIndicator receives the estimate-unhealthy flag for UI and telemetry.
type HealthIndicator interface {
	SetEstimateBad(bad bool)
}

// TextSender delivers operator-facing text. SendText must not block.
type TextSender interface {
	SendText(severity log.Severity, text string)
}
