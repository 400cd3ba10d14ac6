package gcs

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oubliss/BLISS-ardupilot/pkg/log"
)

func TestSlogSenderLevels(t *testing.T) {
	tests := []struct {
		severity log.Severity
		want     string
	}{
		{log.SeverityEmergency, "level=ERROR"},
		{log.SeverityCritical, "level=ERROR"},
		{log.SeverityError, "level=ERROR"},
		{log.SeverityWarning, "level=WARN"},
		{log.SeverityNotice, "level=INFO"},
		{log.SeverityInfo, "level=INFO"},
		{log.SeverityDebug, "level=DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			NewSlogSender(logger).SendText(tt.severity, "EKF variance")

			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("SendText(%v) output = %q, want %q", tt.severity, out, tt.want)
			}
			if !strings.Contains(out, `msg="EKF variance"`) {
				t.Errorf("SendText() output = %q, missing message", out)
			}
		})
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(2)
	at := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	h.SetClock(func() time.Time { return at })

	h.SendText(log.SeverityCritical, "one")
	h.SendText(log.SeverityCritical, "two")
	h.SendText(log.SeverityInfo, "three")

	msgs := h.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "two", msgs[0].Text)
	assert.Equal(t, "three", msgs[1].Text)
	assert.Equal(t, log.SeverityInfo, msgs[1].Severity)
	assert.Equal(t, at, msgs[1].Time)
	assert.Equal(t, uint64(3), h.Total())
}

func TestHistoryMessagesIsCopy(t *testing.T) {
	h := NewHistory(4)
	h.SendText(log.SeverityInfo, "a")

	msgs := h.Messages()
	msgs[0].Text = "changed"

	assert.Equal(t, "a", h.Messages()[0].Text)
}

func TestMultiSenderSkipsNil(t *testing.T) {
	a, b := NewHistory(4), NewHistory(4)
	m := NewMultiSender(a, nil, b)

	m.SendText(log.SeverityCritical, "EKF variance")

	assert.Equal(t, uint64(1), a.Total())
	assert.Equal(t, uint64(1), b.Total())
}

func TestNoopSender(t *testing.T) {
	var s TextSender = NoopSender{}
	s.SendText(log.SeverityCritical, "ignored")
}

type blockingSender struct {
	release chan struct{}
	mu      sync.Mutex
	texts   []string
}

func (b *blockingSender) SendText(_ log.Severity, text string) {
	<-b.release
	b.mu.Lock()
	b.texts = append(b.texts, text)
	b.mu.Unlock()
}

func TestAsyncSenderDeliversInOrder(t *testing.T) {
	h := NewHistory(16)
	a := NewAsyncSender(h, 8)

	for _, s := range []string{"a", "b", "c"} {
		a.SendText(log.SeverityInfo, s)
	}
	a.Close()

	msgs := h.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "a", msgs[0].Text)
	assert.Equal(t, "c", msgs[2].Text)
	assert.Zero(t, a.Dropped())
}

func TestAsyncSenderDropsWhenFull(t *testing.T) {
	b := &blockingSender{release: make(chan struct{})}
	a := NewAsyncSender(b, 1)

	for i := 0; i < 10; i++ {
		a.SendText(log.SeverityInfo, "x")
	}
	if a.Dropped() < 8 {
		t.Errorf("Dropped() = %d, want at least 8", a.Dropped())
	}

	close(b.release)
	a.Close()
	a.Close()

	a.SendText(log.SeverityInfo, "late")
	b.mu.Lock()
	defer b.mu.Unlock()
	assert.Equal(t, uint64(10-len(b.texts)+1), a.Dropped())
}
