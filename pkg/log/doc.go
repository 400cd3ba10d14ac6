// Package log provides structured event logging for the navigation-health
// monitor.
//
// This package defines the Logger interface and Event types for capturing
// monitor events: variance faults, failsafe transitions, operator text,
// mode-change requests and optional per-tick snapshots. It is separate from
// operational logging (slog) - the event log is a complete machine-readable
// trace for post-flight analysis.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For flight: write to binary file
//	logger, _ := log.NewFileLogger("/var/log/navhealth/boot.nlog")
//
//	// Both, without ever blocking the control loop
//	logger := log.NewAsyncLogger(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	), 256)
//
// # Event Types
//
// Each event carries exactly one payload:
//   - ErrorEvent: subsystem + code pair (fault declared/cleared, failsafe
//     occurred/resolved)
//   - StateChangeEvent: failsafe gate transitions
//   - TextEvent: operator-facing text that was sent
//   - ModeChangeEvent: mode change requested by the failsafe
//   - SnapshotEvent: per-tick readings and monitor state
//
// # File Format
//
// Log files use CBOR encoding with .nlog extension. The navhealth-log CLI
// tool provides viewing, filtering, statistics and export.
package log
