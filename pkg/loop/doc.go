// Package loop runs a function at a fixed rate.
//
// Ticks are executed sequentially on the goroutine calling Run, so a tick
// never overlaps the previous one. A tick that takes longer than the
// interval is counted as an overrun; the ticks it missed are skipped, not
// queued.
package loop
