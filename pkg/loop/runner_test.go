package loop

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunnerValidation(t *testing.T) {
	tests := []struct {
		name    string
		r       *Runner
		wantErr error
	}{
		{"ZeroInterval", &Runner{Tick: func(time.Time) {}}, ErrInvalidInterval},
		{"NoTick", &Runner{Interval: time.Millisecond}, ErrNoTick},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Run(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunnerTicksUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	var last time.Time
	r := &Runner{
		Interval: time.Millisecond,
		Tick: func(now time.Time) {
			if !now.After(last) {
				t.Errorf("tick time %v not after %v", now, last)
			}
			last = now
			if calls.Add(1) == 5 {
				cancel()
			}
		},
	}

	err := r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
	if r.Ticks() < 5 {
		t.Errorf("Ticks() = %d, want at least 5", r.Ticks())
	}
}

func TestRunnerNoOverlap(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var running, overlaps atomic.Int32
	r := &Runner{
		Interval: time.Millisecond,
		Tick: func(time.Time) {
			if running.Add(1) > 1 {
				overlaps.Add(1)
			}
			time.Sleep(2 * time.Millisecond)
			running.Add(-1)
		},
	}

	_ = r.Run(ctx)

	if overlaps.Load() != 0 {
		t.Errorf("overlapping ticks = %d, want 0", overlaps.Load())
	}
}

func TestRunnerCountsOverruns(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reported atomic.Int32
	r := &Runner{
		Interval: time.Millisecond,
		Tick: func(time.Time) {
			time.Sleep(3 * time.Millisecond)
		},
		OnOverrun: func(took time.Duration) {
			if took <= time.Millisecond {
				t.Errorf("OnOverrun(%v), want more than the interval", took)
			}
			if reported.Add(1) == 3 {
				cancel()
			}
		},
	}

	_ = r.Run(ctx)

	if r.Overruns() < 3 {
		t.Errorf("Overruns() = %d, want at least 3", r.Overruns())
	}
	if r.Overruns() != uint64(reported.Load()) {
		t.Errorf("Overruns() = %d, callbacks = %d", r.Overruns(), reported.Load())
	}
}
