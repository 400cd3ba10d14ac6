// Package gcs delivers operator-facing status text.
//
// The monitor hands a severity and a short message to a TextSender. This
// package provides senders that write through log/slog, keep a bounded
// history for status displays, fan out to several senders, and decouple a
// slow link from the control loop.
package gcs
