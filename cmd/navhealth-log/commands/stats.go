package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/oubliss/BLISS-ardupilot/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	EventsByCode     map[log.ErrorEvent]int
	Boots            map[string]*BootStats
	Warnings         int
	ModeRequests     map[string]int
	ModeRejections   int
	Snapshots        int
	MaxFailCount     uint8
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}

	Faults    EpisodeStats
	Failsafes EpisodeStats
}

// BootStats holds statistics for a single monitor process.
type BootStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	LastTick  uint64
}

// EpisodeStats describes intervals between a start and an end record.
type EpisodeStats struct {
	Count   int
	Open    int
	Total   time.Duration
	Longest time.Duration

	started map[string]time.Time
}

func (e *EpisodeStats) start(boot string, at time.Time) {
	if e.started == nil {
		e.started = make(map[string]time.Time)
	}
	if _, ok := e.started[boot]; ok {
		return
	}
	e.started[boot] = at
	e.Count++
}

func (e *EpisodeStats) end(boot string, at time.Time) {
	began, ok := e.started[boot]
	if !ok {
		return
	}
	delete(e.started, boot)

	d := at.Sub(began)
	e.Total += d
	if d > e.Longest {
		e.Longest = d
	}
}

func (e *EpisodeStats) finish() {
	e.Open = len(e.started)
}

// Mean returns the mean duration of closed episodes.
func (e *EpisodeStats) Mean() time.Duration {
	closed := e.Count - e.Open
	if closed <= 0 {
		return 0
	}
	return e.Total / time.Duration(closed)
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := collectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func collectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		EventsByCode:     make(map[log.ErrorEvent]int),
		Boots:            make(map[string]*BootStats),
		ModeRequests:     make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.add(event)
	}

	stats.Faults.finish()
	stats.Failsafes.finish()
	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByCategory[event.Category]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	boot, ok := s.Boots[event.BootID]
	if !ok {
		boot = &BootStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Boots[event.BootID] = boot
	}
	boot.Events++
	if event.Timestamp.After(boot.LastSeen) {
		boot.LastSeen = event.Timestamp
	}
	if event.Tick > boot.LastTick {
		boot.LastTick = event.Tick
	}

	switch {
	case event.Error != nil:
		s.EventsByCode[*event.Error]++
		switch *event.Error {
		case log.FaultDeclared:
			s.Faults.start(event.BootID, event.Timestamp)
		case log.FaultCleared:
			s.Faults.end(event.BootID, event.Timestamp)
		case log.FailsafeOccurred:
			s.Failsafes.start(event.BootID, event.Timestamp)
		case log.FailsafeResolved:
			s.Failsafes.end(event.BootID, event.Timestamp)
		}
	case event.Text != nil:
		s.Warnings++
	case event.ModeChange != nil:
		s.ModeRequests[event.ModeChange.Mode]++
		if event.ModeChange.Err != "" {
			s.ModeRejections++
		}
	case event.Snapshot != nil:
		s.Snapshots++
		if event.Snapshot.FailCount > s.MaxFailCount {
			s.MaxFailCount = event.Snapshot.FailCount
		}
	}
}

var allCodes = []log.ErrorEvent{
	log.FaultDeclared,
	log.FaultCleared,
	log.FailsafeOccurred,
	log.FailsafeResolved,
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Navigation Health Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryError, log.CategoryState, log.CategoryText, log.CategoryMode, log.CategorySnapshot} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Code:")
	for _, code := range allCodes {
		if count := stats.EventsByCode[code]; count > 0 {
			fmt.Fprintf(w, "  %-36s %d\n", code.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	printEpisodes(w, "Variance Faults", &stats.Faults)
	printEpisodes(w, "Failsafes", &stats.Failsafes)

	fmt.Fprintf(w, "Warnings: %d\n", stats.Warnings)
	if len(stats.ModeRequests) > 0 {
		modes := make([]string, 0, len(stats.ModeRequests))
		for m := range stats.ModeRequests {
			modes = append(modes, m)
		}
		sort.Strings(modes)
		fmt.Fprint(w, "Mode Requests:")
		for _, m := range modes {
			fmt.Fprintf(w, " %s=%d", m, stats.ModeRequests[m])
		}
		fmt.Fprintln(w)
		if stats.ModeRejections > 0 {
			fmt.Fprintf(w, "Mode Rejections: %d\n", stats.ModeRejections)
		}
	}
	if stats.Snapshots > 0 {
		fmt.Fprintf(w, "Snapshots: %d (max fail_count %d)\n", stats.Snapshots, stats.MaxFailCount)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Boots: %d\n", len(stats.Boots))
	if len(stats.Boots) > 0 {
		type bootInfo struct {
			id    string
			stats *BootStats
		}
		boots := make([]bootInfo, 0, len(stats.Boots))
		for id, bs := range stats.Boots {
			boots = append(boots, bootInfo{id, bs})
		}
		sort.Slice(boots, func(i, j int) bool {
			return boots[i].stats.FirstSeen.Before(boots[j].stats.FirstSeen)
		})

		for _, b := range boots {
			duration := b.stats.LastSeen.Sub(b.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, %d ticks, duration %s\n",
				shortenBootID(b.id), b.stats.Events, b.stats.LastTick, duration)
		}
	}
}

func printEpisodes(w io.Writer, title string, e *EpisodeStats) {
	fmt.Fprintf(w, "%s: %d", title, e.Count)
	if e.Open > 0 {
		fmt.Fprintf(w, " (%d unresolved)", e.Open)
	}
	fmt.Fprintln(w)
	if e.Count-e.Open > 0 {
		fmt.Fprintf(w, "  mean %s, longest %s\n", e.Mean().Round(time.Millisecond), e.Longest.Round(time.Millisecond))
	}
	fmt.Fprintln(w)
}
