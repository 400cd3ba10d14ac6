package loop

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// Runner errors.
var (
	ErrInvalidInterval = errors.New("interval must be positive")
	ErrNoTick          = errors.New("tick function is required")
)

// Runner calls Tick every Interval until its context is cancelled.
type Runner struct {
	// Interval is the tick period.
	Interval time.Duration

	// Tick is called with the tick time.
	Tick func(now time.Time)

	// OnOverrun, if set, is called after a tick that took longer than
	// Interval.
	OnOverrun func(took time.Duration)

	ticks    atomic.Uint64
	overruns atomic.Uint64
}

// Run ticks until ctx is done and returns ctx.Err().
func (r *Runner) Run(ctx context.Context) error {
	if r.Interval <= 0 {
		return ErrInvalidInterval
	}
	if r.Tick == nil {
		return ErrNoTick
	}

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			r.runTick(now)
		}
	}
}

func (r *Runner) runTick(now time.Time) {
	start := time.Now()
	r.Tick(now)
	r.ticks.Add(1)

	if took := time.Since(start); took > r.Interval {
		r.overruns.Add(1)
		if r.OnOverrun != nil {
			r.OnOverrun(took)
		}
	}
}

// Ticks returns the number of completed ticks.
func (r *Runner) Ticks() uint64 {
	return r.ticks.Load()
}

// Overruns returns the number of ticks that exceeded the interval.
func (r *Runner) Overruns() uint64 {
	return r.overruns.Load()
}
