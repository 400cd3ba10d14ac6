// Package sim provides a simulated vehicle for exercising the navigation
// health monitor without flight hardware.
//
// A Vehicle holds estimator variances, arming and regime flags, optical
// flow health and the current flight mode. It implements every
// collaborator interface the monitor needs and counts the corrective
// requests and mode changes it receives. All methods are safe for
// concurrent use, so a REPL can mutate the vehicle while the scheduler
// ticks the monitor.
package sim
