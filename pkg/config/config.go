package config

import (
	"log/slog"
	"time"

	"github.com/oubliss/BLISS-ardupilot/pkg/ekfcheck"
)

// Config is the top-level configuration file.
type Config struct {
	EKFCheck EKFCheckConfig `yaml:"ekf_check"`
	Log      LogConfig      `yaml:"log"`
}

// EKFCheckConfig holds monitor parameters.
type EKFCheckConfig struct {
	// Threshold is the variance threshold. At or below zero the monitor is
	// disabled.
	Threshold float64 `yaml:"threshold"`

	// IterationsMax is the fail count at which the fault is declared.
	IterationsMax int `yaml:"iterations_max"`

	// WarningInterval is the minimum spacing of operator warnings.
	WarningInterval time.Duration `yaml:"warning_interval"`

	// TickRateHz is the scheduler cadence.
	TickRateHz int `yaml:"tick_rate_hz"`
}

// LogConfig holds event and diagnostic logging settings.
type LogConfig struct {
	// File is the event log path. Empty disables the file sink.
	File string `yaml:"file"`

	// Level is the slog level: debug, info, warn or error.
	Level string `yaml:"level"`

	// Snapshots enables a per-tick snapshot event.
	Snapshots bool `yaml:"snapshots"`

	// QueueSize is the capacity of the asynchronous event queue.
	QueueSize int `yaml:"queue_size"`
}

// Defaults.
const (
	DefaultTickRateHz = 10
	DefaultLevel      = "info"
	DefaultQueueSize  = 256
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		EKFCheck: EKFCheckConfig{
			Threshold:       ekfcheck.DefaultThreshold,
			IterationsMax:   ekfcheck.DefaultIterationsMax,
			WarningInterval: ekfcheck.DefaultWarningInterval,
			TickRateHz:      DefaultTickRateHz,
		},
		Log: LogConfig{
			Level:     DefaultLevel,
			QueueSize: DefaultQueueSize,
		},
	}
}

// Monitor returns the monitor configuration. It must only be called on a
// validated Config.
func (c *Config) Monitor() ekfcheck.Config {
	return ekfcheck.Config{
		Threshold:       c.EKFCheck.Threshold,
		IterationsMax:   uint8(c.EKFCheck.IterationsMax),
		WarningInterval: c.EKFCheck.WarningInterval,
		Snapshots:       c.Log.Snapshots,
	}
}

// TickInterval returns the scheduler period.
func (c *Config) TickInterval() time.Duration {
	if c.EKFCheck.TickRateHz <= 0 {
		return time.Second / DefaultTickRateHz
	}
	return time.Second / time.Duration(c.EKFCheck.TickRateHz)
}

// SlogLevel returns the configured slog level. Unknown names map to Info.
func (c *Config) SlogLevel() slog.Level {
	level, ok := levels[c.Log.Level]
	if !ok {
		return slog.LevelInfo
	}
	return level
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}
