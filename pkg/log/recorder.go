package log

import "time"

// Recorder stamps events with the boot id, the current tick and the tick
// time before passing them to a Logger. The control loop calls Begin once
// per tick; every component of the monitor shares one Recorder.
//
// Recorder is not safe for concurrent use.
type Recorder struct {
	logger Logger
	bootID string
	tick   uint64
	now    time.Time
}

// NewRecorder returns a Recorder writing to logger. A nil logger discards.
func NewRecorder(logger Logger, bootID string) *Recorder {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &Recorder{logger: logger, bootID: bootID}
}

// Begin sets the tick number and time stamped on subsequent events.
func (r *Recorder) Begin(tick uint64, now time.Time) {
	r.tick = tick
	r.now = now
}

// BootID returns the boot id stamped on events.
func (r *Recorder) BootID() string {
	return r.bootID
}

func (r *Recorder) emit(ev Event) {
	ev.Timestamp = r.now
	ev.BootID = r.bootID
	ev.Tick = r.tick
	r.logger.Log(ev)
}

// Error records a subsystem/code event.
func (r *Recorder) Error(e ErrorEvent) {
	r.emit(Event{Category: CategoryError, Error: &e})
}

// StateChange records a state transition.
func (r *Recorder) StateChange(entity StateEntity, oldState, newState, reason string) {
	r.emit(Event{Category: CategoryState, StateChange: &StateChangeEvent{
		Entity:   entity,
		OldState: oldState,
		NewState: newState,
		Reason:   reason,
	}})
}

// Text records operator text that was sent.
func (r *Recorder) Text(severity Severity, text string) {
	r.emit(Event{Category: CategoryText, Text: &TextEvent{Severity: severity, Text: text}})
}

// ModeChange records a mode change request and its outcome.
func (r *Recorder) ModeChange(mode, reason string, err error) {
	mc := &ModeChangeEvent{Mode: mode, Reason: reason}
	if err != nil {
		mc.Err = err.Error()
	}
	r.emit(Event{Category: CategoryMode, ModeChange: mc})
}

// Snapshot records a per-tick snapshot.
func (r *Recorder) Snapshot(s SnapshotEvent) {
	r.emit(Event{Category: CategorySnapshot, Snapshot: &s})
}
