package core

import (
	"math"
)

// DegreesToRadians converts degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// RadiansToDegrees converts radians to degrees
func RadiansToDegrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// AzElToVec converts an azimuth/elevation pair (radians) to a unit
// direction vector. Azimuth is measured from +X toward +Y, elevation from
// the XY plane toward +Z:
//
//	x = cos(el)·cos(az)
//	y = cos(el)·sin(az)
//	z = sin(el)
//
// The formula already yields a unit vector for finite inputs; the result is
// renormalized anyway so the function stays total if the formula ever
// changes. Elevation outside [-π/2, π/2] is accepted and simply wraps over
// the pole; callers wanting physically meaningful angles clamp first.
func AzElToVec(az, el float64) Vector3 {
	ce := math.Cos(el)
	v := Vector3{
		X: ce * math.Cos(az),
		Y: ce * math.Sin(az),
		Z: math.Sin(el),
	}
	return v.Normalize()
}

// VecToAzEl converts a direction vector back to its azimuth/elevation pair
// in radians, azimuth in (-π, π] and elevation in [-π/2, π/2]. The zero
// vector maps to (0, 0).
func VecToAzEl(v Vector3) (az, el float64) {
	length := v.Length()
	if length == 0 {
		return 0, 0
	}
	az = math.Atan2(v.Y, v.X)
	el = math.Asin(clamp(v.Z/length, -1, 1))
	return az, el
}
