// Package variance scores estimator variance readings against a threshold.
//
// The estimator reports a scalar variance per estimated quantity. Higher
// values mean the estimate is less trustworthy. This package turns one set
// of readings into a single "estimate unhealthy" verdict.
//
// # Scoring
//
// With threshold T:
//   - the largest magnetic axis variance at or above T scores 1
//   - velocity variance at or above 2T scores 2 when optical flow is not
//     healthy, otherwise velocity at or above T scores 1
//
// The verdict is unhealthy when the score reaches 2, or when position
// variance is at or above T and the score is at least 1. Position alone
// never trips the verdict.
//
// A threshold at or below zero disables scoring and the verdict is always
// healthy.
//
// # NaN
//
// A NaN in a scored reading (position, velocity, any magnetic axis) counts
// as at or above the threshold. Height and airspeed are reported by the
// estimator but not scored, so NaN there has no effect.
package variance
