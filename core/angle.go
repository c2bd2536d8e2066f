package core

import "math"

// clamp limits x to [min, max].
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

// AngleBetween returns the central angle between two unit vectors, in
// radians within [0, π]. The dot product is clamped to [-1, 1] before the
// arccosine: rounding on near-parallel or near-antipodal unit vectors
// routinely drifts the product outside the arccosine domain by epsilon
// amounts, which would otherwise produce NaN.
func AngleBetween(a, b Vector3) float64 {
	return math.Acos(clamp(a.Dot(b), -1, 1))
}

// CentralAngle returns the same central angle directly from two
// azimuth/elevation pairs (radians) via the spherical law of cosines:
//
//	cos J = sin(elA)·sin(elB) + cos(elA)·cos(elB)·cos(azA − azB)
//
// For any pair of directions this agrees with AngleBetween applied to the
// AzElToVec images, up to floating-point rounding. The clamp plays the same
// role as in AngleBetween.
func CentralAngle(azA, elA, azB, elB float64) float64 {
	cosJ := math.Sin(elA)*math.Sin(elB) + math.Cos(elA)*math.Cos(elB)*math.Cos(azA-azB)
	return math.Acos(clamp(cosJ, -1, 1))
}
