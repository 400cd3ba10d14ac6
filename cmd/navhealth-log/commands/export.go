package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/oubliss/BLISS-ardupilot/pkg/log"
)

const timeFormat = "2006-01-02T15:04:05.000000Z"

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

// record is the flattened JSON form of an event. Enum values are written
// by name and non-finite variances as null.
type record struct {
	Timestamp string          `json:"timestamp"`
	BootID    string          `json:"boot_id"`
	Tick      uint64          `json:"tick"`
	Category  string          `json:"category"`
	Subsystem string          `json:"subsystem,omitempty"`
	Code      string          `json:"code,omitempty"`
	Entity    string          `json:"entity,omitempty"`
	OldState  string          `json:"old_state,omitempty"`
	NewState  string          `json:"new_state,omitempty"`
	Reason    string          `json:"reason,omitempty"`
	Severity  string          `json:"severity,omitempty"`
	Text      string          `json:"text,omitempty"`
	Mode      string          `json:"mode,omitempty"`
	Error     string          `json:"error,omitempty"`
	Snapshot  *snapshotRecord `json:"snapshot,omitempty"`
}

type snapshotRecord struct {
	Velocity       *float64    `json:"velocity"`
	Position       *float64    `json:"position"`
	Height         *float64    `json:"height"`
	Mag            [3]*float64 `json:"mag"`
	Airspeed       *float64    `json:"airspeed"`
	OptflowHealthy bool        `json:"optflow_healthy"`
	Score          uint8       `json:"score"`
	Unhealthy      bool        `json:"unhealthy"`
	FailCount      uint8       `json:"fail_count"`
	BadVariance    bool        `json:"bad_variance"`
	FailsafeOn     bool        `json:"failsafe_on"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func toRecord(event log.Event) record {
	r := record{
		Timestamp: event.Timestamp.UTC().Format(timeFormat),
		BootID:    event.BootID,
		Tick:      event.Tick,
		Category:  event.Category.String(),
	}

	switch {
	case event.Error != nil:
		r.Subsystem = event.Error.Subsystem.String()
		r.Code = event.Error.CodeName()
	case event.StateChange != nil:
		r.Entity = event.StateChange.Entity.String()
		r.OldState = event.StateChange.OldState
		r.NewState = event.StateChange.NewState
		r.Reason = event.StateChange.Reason
	case event.Text != nil:
		r.Severity = event.Text.Severity.String()
		r.Text = event.Text.Text
	case event.ModeChange != nil:
		r.Mode = event.ModeChange.Mode
		r.Reason = event.ModeChange.Reason
		r.Error = event.ModeChange.Err
	case event.Snapshot != nil:
		s := event.Snapshot
		r.Snapshot = &snapshotRecord{
			Velocity:       finite(s.Velocity),
			Position:       finite(s.Position),
			Height:         finite(s.Height),
			Mag:            [3]*float64{finite(s.Mag[0]), finite(s.Mag[1]), finite(s.Mag[2])},
			Airspeed:       finite(s.Airspeed),
			OptflowHealthy: s.OptflowHealthy,
			Score:          s.Score,
			Unhealthy:      s.Unhealthy,
			FailCount:      s.FailCount,
			BadVariance:    s.BadVariance,
			FailsafeOn:     s.FailsafeOn,
		}
	}
	return r
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(toRecord(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "boot_id", "tick", "category", "type", "detail", "fail_count", "bad_variance", "failsafe_on"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		detail := ""
		failCount, bad, failsafe := "", "", ""
		switch {
		case event.StateChange != nil:
			detail = event.StateChange.OldState + "->" + event.StateChange.NewState
		case event.Text != nil:
			detail = event.Text.Severity.String() + ": " + event.Text.Text
		case event.ModeChange != nil:
			detail = event.ModeChange.Mode
			if event.ModeChange.Err != "" {
				detail += " rejected: " + event.ModeChange.Err
			}
		case event.Snapshot != nil:
			s := event.Snapshot
			detail = fmt.Sprintf("score=%d", s.Score)
			failCount = strconv.Itoa(int(s.FailCount))
			bad = strconv.FormatBool(s.BadVariance)
			failsafe = strconv.FormatBool(s.FailsafeOn)
		}

		row := []string{
			event.Timestamp.UTC().Format(timeFormat),
			event.BootID,
			strconv.FormatUint(event.Tick, 10),
			event.Category.String(),
			typeLabel(event),
			detail,
			failCount,
			bad,
			failsafe,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
