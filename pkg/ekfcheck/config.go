package ekfcheck

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Monitor defaults.
const (
	// DefaultThreshold is the default variance threshold.
	DefaultThreshold = 0.8

	// DefaultIterationsMax is 1 second of unhealthy ticks at 10 Hz.
	DefaultIterationsMax = 10

	// MinIterationsMax keeps the yaw reset and lane switch ticks distinct
	// and above zero.
	MinIterationsMax = 7

	// DefaultWarningInterval is the minimum spacing of operator warnings.
	DefaultWarningInterval = 30 * time.Second
)

// Configuration errors.
var (
	ErrInvalidThreshold       = errors.New("threshold must be a finite number")
	ErrIterationsTooLow       = errors.New("iterations max too low")
	ErrInvalidWarningInterval = errors.New("warning interval must be positive")
)

// Config holds monitor settings.
type Config struct {
	// Threshold is the variance threshold. At or below zero the monitor is
	// disabled.
	Threshold float64

	// IterationsMax is the fail count at which the fault is declared.
	IterationsMax uint8

	// WarningInterval is the minimum time between operator warnings.
	WarningInterval time.Duration

	// Snapshots enables a SnapshotEvent for every evaluated tick.
	Snapshots bool
}

// DefaultConfig returns the default monitor configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:       DefaultThreshold,
		IterationsMax:   DefaultIterationsMax,
		WarningInterval: DefaultWarningInterval,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, c.Threshold)
	}
	if c.IterationsMax < MinIterationsMax {
		return fmt.Errorf("%w: %d, must be at least %d", ErrIterationsTooLow, c.IterationsMax, MinIterationsMax)
	}
	if c.WarningInterval <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWarningInterval, c.WarningInterval)
	}
	return nil
}
