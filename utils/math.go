// Package utils contains scalar math helpers shared by the rotation types.
package utils

import (
	"math"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// AngleDiffDeg returns the closest difference from the two given
// angles. The arguments are commutative.
func AngleDiffDeg(a1, a2 float64) float64 {
	return float64(180) - math.Abs(math.Abs(a1-a2)-float64(180))
}

// AntiCWDeg flips the given degrees as if you were to start rotating in
// the other direction.
func AntiCWDeg(deg float64) float64 {
	return math.Mod(float64(360)-deg, 360)
}

// ModAngDeg returns the given angle modulus 360 and resolves any negativity.
func ModAngDeg(ang float64) float64 {
	return math.Mod(math.Mod((ang), 360)+360, 360)
}

// FloatingPointModulo returns x modulo y with the result taking the sign
// of y, so for positive y it always lies in [0, y). math.Mod takes the
// sign of x instead, which is the wrong behavior for wrapping angles.
func FloatingPointModulo(x, y float64) float64 {
	return x - math.Floor(x/y)*y
}

// CycleIntervalRadians wraps the given angle into [-π, π).
func CycleIntervalRadians(ang float64) float64 {
	return FloatingPointModulo(ang+math.Pi, 2*math.Pi) - math.Pi
}
