// Package ekfcheck detects loss of navigation from estimator variances.
//
// A Monitor runs once per control-loop tick (10 Hz). Each tick it scores
// the estimator's variances (package variance), debounces the verdict into
// a stable bad-variance condition and drives the navigation failsafe gate
// (package failsafe).
//
// # Debouncing
//
// Every unhealthy tick increments a fail counter; every healthy tick
// decrements it. Two ticks before the counter saturates the estimator is
// asked to reset its yaw, one tick before it is asked to switch to an
// alternate instance (lane). When the counter saturates at IterationsMax
// the variance fault is declared, the operator is warned (at most once per
// WarningInterval) and the failsafe is entered. The fault clears, and the
// failsafe exits, only when the counter has decremented back to zero.
//
// # Inhibition
//
// Until the estimator has an origin the monitor does nothing. While the
// vehicle is disarmed, flying an exempt regime, or the threshold is at or
// below zero, the counter and fault are reset and the failsafe is exited
// every tick.
package ekfcheck
