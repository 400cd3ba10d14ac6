// Package commands implements the navhealth-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/oubliss/BLISS-ardupilot/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Category  *log.Category
	Subsystem *log.Subsystem
}

func (f ViewFilter) logFilter() log.Filter {
	return log.Filter{Category: f.Category, Subsystem: f.Subsystem}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [boot:%s] #%-6d %-8s %s\n",
		ts, shortenBootID(event.BootID), event.Tick, event.Category.String(), typeLabel(event))

	switch {
	case event.Error != nil:
		fmt.Fprintf(w, "  Subsystem: %s (%d)\n", event.Error.Subsystem.String(), event.Error.Subsystem)
		fmt.Fprintf(w, "  Code: %s (%d)\n", event.Error.CodeName(), event.Error.Code)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Text != nil:
		fmt.Fprintf(w, "  %s: %s\n", event.Text.Severity.String(), event.Text.Text)
	case event.ModeChange != nil:
		fmt.Fprintf(w, "  Mode: %s\n", event.ModeChange.Mode)
		fmt.Fprintf(w, "  Reason: %s\n", event.ModeChange.Reason)
		if event.ModeChange.Err != "" {
			fmt.Fprintf(w, "  Rejected: %s\n", event.ModeChange.Err)
		}
	case event.Snapshot != nil:
		formatSnapshotDetails(w, event.Snapshot)
	}

	fmt.Fprintln(w)
}

// typeLabel returns the short label shown in the event header.
func typeLabel(event log.Event) string {
	switch {
	case event.Error != nil:
		return event.Error.String()
	case event.StateChange != nil:
		return event.StateChange.Entity.String()
	case event.Text != nil:
		return "Text"
	case event.ModeChange != nil:
		return "ModeChange"
	case event.Snapshot != nil:
		return "Snapshot"
	default:
		return "Unknown"
	}
}

// shortenBootID returns the first 8 characters of the boot ID.
func shortenBootID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatSnapshotDetails(w io.Writer, s *log.SnapshotEvent) {
	fmt.Fprintf(w, "  Variances: vel=%.3f pos=%.3f hgt=%.3f mag=[%.3f %.3f %.3f] tas=%.3f\n",
		s.Velocity, s.Position, s.Height, s.Mag[0], s.Mag[1], s.Mag[2], s.Airspeed)
	fmt.Fprintf(w, "  Score: %d unhealthy=%t optflow=%t\n", s.Score, s.Unhealthy, s.OptflowHealthy)
	fmt.Fprintf(w, "  State: fail_count=%d bad_variance=%t failsafe=%t\n", s.FailCount, s.BadVariance, s.FailsafeOn)
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "error":
		return log.CategoryError, nil
	case "state":
		return log.CategoryState, nil
	case "text":
		return log.CategoryText, nil
	case "mode":
		return log.CategoryMode, nil
	case "snapshot":
		return log.CategorySnapshot, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be error, state, text, mode, or snapshot)", s)
	}
}

// ParseSubsystemFlag parses a subsystem string from command-line flag (case-insensitive).
func ParseSubsystemFlag(s string) (log.Subsystem, error) {
	return parseSubsystem(s)
}

func parseSubsystem(s string) (log.Subsystem, error) {
	switch strings.ToLower(s) {
	case "ekfcheck", "ekf":
		return log.SubsystemEKFCheck, nil
	case "failsafe", "failsafe_ekfinav":
		return log.SubsystemFailsafeEKF, nil
	default:
		return 0, fmt.Errorf("invalid subsystem: %s (must be ekfcheck or failsafe)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.logFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(output, event)
	}

	return nil
}
