// unwrap.go
package qphase

import "math"

/*
Unwrap merges a freshly measured local angle with the running cumulative
estimate. The prior estimate, scaled back up to the current power, is
subtracted before reduction so that only the new fine correction survives;
the result never exceeds π in magnitude, bounding a single-step update of
the cumulative estimate to π/power.
*/
func Unwrap(localAngle, priorEstimate float64, power int) float64 {
	return wrapToPrincipalBranch(localAngle - priorEstimate*float64(power))
}

// wrapToPrincipalBranch reduces an angle modulo 2π into (−π, π], ties to +π
func wrapToPrincipalBranch(theta float64) float64 {
	wrapped := math.Mod(theta, 2*math.Pi)
	if wrapped <= -math.Pi {
		wrapped += 2 * math.Pi
	} else if wrapped > math.Pi {
		wrapped -= 2 * math.Pi
	}
	return wrapped
}
