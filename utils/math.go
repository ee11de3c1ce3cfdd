// Package utils contains shared math helpers.
package utils

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// WrapAngleRad wraps an angle into [-pi, pi). math.Mod keeps the sign of the
// dividend, so the intermediate result is re-modded after shifting to stay in
// range for negative inputs.
func WrapAngleRad(ang float64) float64 {
	twoPi := 2 * math.Pi
	return math.Mod(math.Mod(ang+math.Pi, twoPi)+twoPi, twoPi) - math.Pi
}
