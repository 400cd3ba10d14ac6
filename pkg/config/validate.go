package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/oubliss/BLISS-ardupilot/pkg/ekfcheck"
)

// Validation errors.
var (
	ErrInvalidThreshold       = ekfcheck.ErrInvalidThreshold
	ErrIterationsTooLow       = ekfcheck.ErrIterationsTooLow
	ErrIterationsTooHigh      = errors.New("iterations max too high")
	ErrInvalidWarningInterval = ekfcheck.ErrInvalidWarningInterval
	ErrInvalidTickRate        = errors.New("tick rate out of range")
	ErrInvalidLevel           = errors.New("unknown log level")
	ErrInvalidQueueSize       = errors.New("queue size must be positive")
)

// Limits.
const (
	MaxIterationsMax = math.MaxUint8
	MinTickRateHz    = 1
	MaxTickRateHz    = 1000
)

// Validate checks configuration correctness. It reports every problem
// found and does not mutate cfg.
func Validate(cfg *Config) error {
	var errs []error

	ekf := cfg.EKFCheck
	if math.IsNaN(ekf.Threshold) || math.IsInf(ekf.Threshold, 0) {
		errs = append(errs, fmt.Errorf("ekf_check.threshold: %w: %v", ErrInvalidThreshold, ekf.Threshold))
	}
	if ekf.IterationsMax < ekfcheck.MinIterationsMax {
		errs = append(errs, fmt.Errorf("ekf_check.iterations_max: %w: %d, must be at least %d",
			ErrIterationsTooLow, ekf.IterationsMax, ekfcheck.MinIterationsMax))
	}
	if ekf.IterationsMax > MaxIterationsMax {
		errs = append(errs, fmt.Errorf("ekf_check.iterations_max: %w: %d, must be at most %d",
			ErrIterationsTooHigh, ekf.IterationsMax, MaxIterationsMax))
	}
	if ekf.WarningInterval <= 0 {
		errs = append(errs, fmt.Errorf("ekf_check.warning_interval: %w: %v", ErrInvalidWarningInterval, ekf.WarningInterval))
	}
	if ekf.TickRateHz < MinTickRateHz || ekf.TickRateHz > MaxTickRateHz {
		errs = append(errs, fmt.Errorf("ekf_check.tick_rate_hz: %w: %d, must be in [%d, %d]",
			ErrInvalidTickRate, ekf.TickRateHz, MinTickRateHz, MaxTickRateHz))
	}

	if _, ok := levels[cfg.Log.Level]; !ok {
		errs = append(errs, fmt.Errorf("log.level: %w: %q", ErrInvalidLevel, cfg.Log.Level))
	}
	if cfg.Log.QueueSize <= 0 {
		errs = append(errs, fmt.Errorf("log.queue_size: %w: %d", ErrInvalidQueueSize, cfg.Log.QueueSize))
	}

	return errors.Join(errs...)
}
