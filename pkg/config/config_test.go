package config

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))

	mon := cfg.Monitor()
	assert.Equal(t, 0.8, mon.Threshold)
	assert.Equal(t, uint8(10), mon.IterationsMax)
	assert.Equal(t, 30*time.Second, mon.WarningInterval)
	assert.NoError(t, mon.Validate())
	assert.Equal(t, 100*time.Millisecond, cfg.TickInterval())
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
ekf_check:
  threshold: 0.5
  warning_interval: 10s
log:
  file: /tmp/nav.nlog
  snapshots: true
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.EKFCheck.Threshold)
	assert.Equal(t, 10, cfg.EKFCheck.IterationsMax)
	assert.Equal(t, 10*time.Second, cfg.EKFCheck.WarningInterval)
	assert.Equal(t, 10, cfg.EKFCheck.TickRateHz)
	assert.Equal(t, "/tmp/nav.nlog", cfg.Log.File)
	assert.True(t, cfg.Monitor().Snapshots)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, DefaultQueueSize, cfg.Log.QueueSize)
}

func TestParseDisabledThreshold(t *testing.T) {
	cfg, err := Parse([]byte("ekf_check:\n  threshold: -1\n"))
	require.NoError(t, err)
	assert.Equal(t, -1.0, cfg.EKFCheck.Threshold)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"NaNThreshold", "ekf_check:\n  threshold: .nan\n", ErrInvalidThreshold},
		{"InfThreshold", "ekf_check:\n  threshold: .inf\n", ErrInvalidThreshold},
		{"IterationsTooLow", "ekf_check:\n  iterations_max: 6\n", ErrIterationsTooLow},
		{"IterationsTooHigh", "ekf_check:\n  iterations_max: 300\n", ErrIterationsTooHigh},
		{"ZeroInterval", "ekf_check:\n  warning_interval: 0s\n", ErrInvalidWarningInterval},
		{"TickRateZero", "ekf_check:\n  tick_rate_hz: 0\n", ErrInvalidTickRate},
		{"TickRateHigh", "ekf_check:\n  tick_rate_hz: 5000\n", ErrInvalidTickRate},
		{"BadLevel", "log:\n  level: verbose\n", ErrInvalidLevel},
		{"BadQueue", "log:\n  queue_size: 0\n", ErrInvalidQueueSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.EKFCheck.Threshold = math.NaN()
	cfg.Log.QueueSize = -1

	err := Validate(cfg)
	assert.ErrorIs(t, err, ErrInvalidThreshold)
	assert.ErrorIs(t, err, ErrInvalidQueueSize)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("ekf_check: [unclosed"))

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "failed to parse YAML", le.Message)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "navhealth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ekf_check:\n  tick_rate_hz: 50\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20*time.Millisecond, cfg.TickInterval())
}

func TestLoadErrorsCarryFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.File, "missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("ekf_check:\n  iterations_max: 3\n"), 0o644))
	_, err = Load(bad)
	require.ErrorAs(t, err, &le)
	assert.Equal(t, bad, le.File)
	assert.ErrorIs(t, err, ErrIterationsTooLow)
}

func TestSlogLevelUnknown(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
