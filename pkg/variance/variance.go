package variance

import "math"

// Readings holds one set of estimator variances.
type Readings struct {
	// Velocity is the velocity variance.
	Velocity float64 `yaml:"velocity"`

	// Position is the horizontal position variance.
	Position float64 `yaml:"position"`

	// Height is the height variance. Not scored.
	Height float64 `yaml:"height"`

	// Mag holds the per-axis magnetic variances (x, y, z).
	Mag [3]float64 `yaml:"mag,flow"`

	// Airspeed is the true airspeed variance. Not scored.
	Airspeed float64 `yaml:"airspeed"`

	// Offset is the position reset offset reported alongside the variances.
	Offset [2]float64 `yaml:"offset,flow"`
}

// MagMax returns the largest magnetic axis variance. A NaN axis wins.
func (r Readings) MagMax() float64 {
	m := r.Mag[0]
	for _, v := range r.Mag[1:] {
		if math.IsNaN(m) {
			break
		}
		if math.IsNaN(v) || v > m {
			m = v
		}
	}
	return m
}

// Score is the breakdown behind a verdict.
type Score struct {
	// Mag is true when the magnetic variance reached the threshold.
	Mag bool

	// Velocity is the velocity contribution (0, 1 or 2).
	Velocity uint8

	// Position is true when the position variance reached the threshold.
	Position bool

	// Total is the mag plus velocity contribution. Position is not part of
	// the total; it only qualifies a total of one.
	Total uint8

	// Unhealthy is the verdict.
	Unhealthy bool
}

// Enabled reports whether threshold t enables the monitor.
func Enabled(t float64) bool {
	return t > 0
}

// Evaluate scores readings r against threshold t. optflowHealthy reports
// whether an optical-flow sensor is present and healthy.
func Evaluate(r Readings, t float64, optflowHealthy bool) Score {
	var s Score
	if !Enabled(t) {
		return s
	}

	if atOrAbove(r.MagMax(), t) {
		s.Mag = true
		s.Total++
	}

	// Without optical flow to back it up, a large velocity variance counts double.
	if !optflowHealthy && atOrAbove(r.Velocity, 2*t) {
		s.Velocity = 2
	} else if atOrAbove(r.Velocity, t) {
		s.Velocity = 1
	}
	s.Total += s.Velocity

	s.Position = atOrAbove(r.Position, t)
	s.Unhealthy = s.Total >= 2 || (s.Position && s.Total >= 1)
	return s
}

// OverThreshold returns the verdict for readings r against threshold t.
func OverThreshold(r Readings, t float64, optflowHealthy bool) bool {
	return Evaluate(r, t, optflowHealthy).Unhealthy
}

func atOrAbove(v, t float64) bool {
	return math.IsNaN(v) || v >= t
}
