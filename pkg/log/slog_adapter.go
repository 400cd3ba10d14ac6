package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes monitor events to an slog.Logger.
// Faults and failsafe transitions are logged at Warn, snapshots at Debug,
// everything else at Info.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	level := slog.LevelInfo
	attrs := []slog.Attr{
		slog.Uint64("tick", event.Tick),
		slog.String("category", event.Category.String()),
	}

	switch {
	case event.Error != nil:
		level = slog.LevelWarn
		attrs = append(attrs,
			slog.String("subsystem", event.Error.Subsystem.String()),
			slog.String("code", event.Error.CodeName()),
		)
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("entity", event.StateChange.Entity.String()),
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Text != nil:
		if event.Text.Severity <= SeverityCritical {
			level = slog.LevelError
		}
		attrs = append(attrs,
			slog.String("severity", event.Text.Severity.String()),
			slog.String("text", event.Text.Text),
		)
	case event.ModeChange != nil:
		attrs = append(attrs,
			slog.String("mode", event.ModeChange.Mode),
			slog.String("reason", event.ModeChange.Reason),
		)
		if event.ModeChange.Err != "" {
			level = slog.LevelWarn
			attrs = append(attrs, slog.String("error", event.ModeChange.Err))
		}
	case event.Snapshot != nil:
		level = slog.LevelDebug
		s := event.Snapshot
		attrs = append(attrs,
			slog.Float64("vel", s.Velocity),
			slog.Float64("pos", s.Position),
			slog.Float64("mag_max", max(s.Mag[0], s.Mag[1], s.Mag[2])),
			slog.Bool("optflow", s.OptflowHealthy),
			slog.Int("score", int(s.Score)),
			slog.Int("fail_count", int(s.FailCount)),
			slog.Bool("bad_variance", s.BadVariance),
			slog.Bool("failsafe", s.FailsafeOn),
		)
	}

	a.logger.LogAttrs(context.Background(), level, "navhealth", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
