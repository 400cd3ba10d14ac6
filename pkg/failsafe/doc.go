// Package failsafe implements the navigation failsafe gate.
//
// When the estimator's variances have been out of tolerance long enough for
// the fault to be declared, the vehicle must stop relying on position
// estimates. The gate tracks whether the navigation failsafe is active and,
// on entry, asks for a safer flight mode.
//
// # States
//
//   - INACTIVE: normal operation
//   - ACTIVE: navigation failsafe in effect
//
// Enter and Exit are idempotent: calling them in the matching state does
// nothing and records nothing.
//
// # Mode Change on Entry
//
// Entering the failsafe only changes mode when the vehicle is flying a
// regime that needs position and velocity control:
//   - autonomous (no stick input): switch to the safe landing mode (QLAND)
//   - manually piloted: switch to the safe hover mode (QHOVER)
//
// Both requests carry the reason EKF_FAILSAFE. Exiting the failsafe never
// changes mode; recovering the previous mode is left to mode management.
package failsafe
