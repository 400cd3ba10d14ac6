package gcs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/oubliss/BLISS-ardupilot/pkg/log"
)

// TextSender delivers a status message to the operator.
type TextSender interface {
	SendText(severity log.Severity, text string)
}

// Message is one delivered status text.
type Message struct {
	Time     time.Time
	Severity log.Severity
	Text     string
}

// NoopSender discards all messages.
type NoopSender struct{}

// SendText does nothing.
func (NoopSender) SendText(log.Severity, string) {}

// SlogSender writes status text to an slog.Logger. EMERGENCY to ERROR map
// to slog Error, WARNING to Warn, NOTICE and INFO to Info, DEBUG to Debug.
type SlogSender struct {
	logger *slog.Logger
}

// NewSlogSender creates a SlogSender. A nil logger uses slog.Default().
func NewSlogSender(logger *slog.Logger) *SlogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSender{logger: logger}
}

// SendText logs the message.
func (s *SlogSender) SendText(severity log.Severity, text string) {
	s.logger.LogAttrs(context.Background(), slogLevel(severity), text,
		slog.String("severity", severity.String()),
	)
}

func slogLevel(severity log.Severity) slog.Level {
	switch {
	case severity <= log.SeverityError:
		return slog.LevelError
	case severity == log.SeverityWarning:
		return slog.LevelWarn
	case severity == log.SeverityDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// MultiSender fans out to several senders in order. Nil senders are skipped.
type MultiSender struct {
	senders []TextSender
}

// NewMultiSender creates a MultiSender.
func NewMultiSender(senders ...TextSender) *MultiSender {
	out := make([]TextSender, 0, len(senders))
	for _, s := range senders {
		if s != nil {
			out = append(out, s)
		}
	}
	return &MultiSender{senders: out}
}

// SendText delivers the message to every sender.
func (m *MultiSender) SendText(severity log.Severity, text string) {
	for _, s := range m.senders {
		s.SendText(severity, text)
	}
}

// History keeps the most recent messages. It is safe for concurrent use.
type History struct {
	mu    sync.Mutex
	limit int
	msgs  []Message
	total uint64
	now   func() time.Time
}

// NewHistory creates a History holding at most limit messages.
// A limit below 1 is raised to 1.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit, now: time.Now}
}

// SetClock replaces the clock used to stamp messages.
func (h *History) SetClock(now func() time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.now = now
}

// SendText records the message, evicting the oldest one when full.
func (h *History) SendText(severity log.Severity, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.total++
	if len(h.msgs) == h.limit {
		copy(h.msgs, h.msgs[1:])
		h.msgs = h.msgs[:len(h.msgs)-1]
	}
	h.msgs = append(h.msgs, Message{Time: h.now(), Severity: severity, Text: text})
}

// Messages returns the retained messages, oldest first.
func (h *History) Messages() []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Message(nil), h.msgs...)
}

// Total returns how many messages were ever sent, including evicted ones.
func (h *History) Total() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.total
}

var (
	_ TextSender = NoopSender{}
	_ TextSender = (*SlogSender)(nil)
	_ TextSender = (*MultiSender)(nil)
	_ TextSender = (*History)(nil)
)
