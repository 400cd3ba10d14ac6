package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/oubliss/BLISS-ardupilot/pkg/config"
	"github.com/oubliss/BLISS-ardupilot/pkg/ekfcheck"
	"github.com/oubliss/BLISS-ardupilot/pkg/gcs"
	"github.com/oubliss/BLISS-ardupilot/pkg/log"
	"github.com/oubliss/BLISS-ardupilot/pkg/sim"
)

// stack is a monitor wired to a simulated vehicle with event and text
// sinks.
type stack struct {
	monitor *ekfcheck.Monitor
	bootID  string
	logger  *slog.Logger

	events *log.AsyncLogger
	file   *log.FileLogger
	texts  *gcs.AsyncSender
}

// newStack builds the monitor for v. Diagnostics and events go to out; the
// event file is opened when configured.
func newStack(cfg *config.Config, v *sim.Vehicle, out io.Writer) (*stack, error) {
	s := &stack{
		bootID: log.NewBootID(),
		logger: slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.SlogLevel()})),
	}

	sinks := []log.Logger{log.NewSlogAdapter(s.logger)}
	if cfg.Log.File != "" {
		f, err := log.NewFileLogger(cfg.Log.File)
		if err != nil {
			return nil, fmt.Errorf("failed to open event log: %w", err)
		}
		s.file = f
		sinks = append(sinks, f)
	}
	s.events = log.NewAsyncLogger(log.NewMultiLogger(sinks...), cfg.Log.QueueSize)
	s.texts = gcs.NewAsyncSender(gcs.NewSlogSender(s.logger.With("source", "gcs")), cfg.Log.QueueSize)

	deps := v.Deps()
	deps.Logger = s.events
	deps.BootID = s.bootID
	deps.Text = gcs.NewMultiSender(v, s.texts)

	m, err := ekfcheck.New(cfg.Monitor(), deps)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.monitor = m
	return s, nil
}

// Close drains the queues and closes the event file.
func (s *stack) Close() {
	s.events.Close()
	s.texts.Close()
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			s.logger.Error("closing event log", "error", err)
		}
		if n := s.file.Errors(); n > 0 {
			s.logger.Warn("event log write errors", "count", n)
		}
	}
	if n := s.events.Dropped(); n > 0 {
		s.logger.Warn("events dropped", "count", n)
	}
	if n := s.texts.Dropped(); n > 0 {
		s.logger.Warn("status texts dropped", "count", n)
	}
}
