package core

import "math"

// Angles closer than this (radians) to 0 or π are treated as degenerate
// in Slerp, where sin(θ) is too small to divide by.
const slerpDegenerateAngle = 1e-5

// Slerp interpolates between two unit vectors along the great circle
// through them, with constant angular velocity in t. t=0 yields a, t=1
// yields b; intermediate results are unit vectors on the connecting
// geodesic.
//
// Near-coincident inputs return a unchanged. Antipodal inputs have no
// unique great circle; rather than divide by sin(π) ≈ 0, Slerp rotates a
// about a fixed perpendicular axis by t·π, so the result is deterministic
// and well-formed (and still lands on b at t=1).
func Slerp(a, b Vector3, t float64) Vector3 {
	theta := math.Acos(clamp(a.Dot(b), -1, 1))
	if theta < slerpDegenerateAngle {
		return a
	}
	if theta > math.Pi-slerpDegenerateAngle {
		return rotateAbout(a, perpendicularTo(a), t*math.Pi)
	}
	s := math.Sin(theta)
	w0 := math.Sin((1-t)*theta) / s
	w1 := math.Sin(t*theta) / s
	return a.Scale(w0).Add(b.Scale(w1))
}

// perpendicularTo returns a unit vector orthogonal to v, built from
// whichever of +Z or +X is less aligned with v.
func perpendicularTo(v Vector3) Vector3 {
	axis := Vector3{Z: 1}
	if math.Abs(v.Z) > 0.9*v.Length() {
		axis = Vector3{X: 1}
	}
	return v.Cross(axis).Normalize()
}

// rotateAbout rotates v around the unit axis k by the given angle
// (Rodrigues' formula).
func rotateAbout(v, k Vector3, angle float64) Vector3 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return v.Scale(c).
		Add(k.Cross(v).Scale(s)).
		Add(k.Scale(k.Dot(v) * (1 - c)))
}
