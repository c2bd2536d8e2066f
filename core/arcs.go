package core

import "math"

// Arc tessellators. Each returns an ordered polyline of segments+1 points
// approximating the named curve, deterministic for a given (start, end,
// segments, radius). The radius is typically a hair above the reference
// sphere's so rendered arcs do not z-fight its surface; the caller picks
// the offset. A degenerate arc (start == end) still yields a well-formed
// polyline of identical points.

// AzimuthArc samples the horizon-plane arc at zero elevation from az0 to
// az1 (radians). The azimuth parameter is interpolated linearly and
// evaluated directly in the XY plane: with elevation fixed this is a
// circular arc, so no spherical interpolation is needed. When az1 < az0
// the arc runs in the negative direction.
func AzimuthArc(az0, az1 float64, segments int, radius float64) []Vector3 {
	if segments < 1 {
		segments = 1
	}
	points := make([]Vector3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		a := az0 + (az1-az0)*t
		points = append(points, Vector3{
			X: radius * math.Cos(a),
			Y: radius * math.Sin(a),
		})
	}
	return points
}

// ElevationArc samples the meridian arc at fixed azimuth from zero
// elevation to el (radians), interpolating the elevation parameter
// linearly and mapping each sample through AzElToVec.
func ElevationArc(az, el float64, segments int, radius float64) []Vector3 {
	if segments < 1 {
		segments = 1
	}
	points := make([]Vector3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		points = append(points, AzElToVec(az, el*t).Scale(radius))
	}
	return points
}

// GreatCircleArc samples the geodesic between two unit direction vectors
// with Slerp at t = i/segments. The polyline's chordal error shrinks as
// the segment count grows.
func GreatCircleArc(a, b Vector3, segments int, radius float64) []Vector3 {
	if segments < 1 {
		segments = 1
	}
	points := make([]Vector3, 0, segments+1)
	points = append(points, a.Scale(radius))
	for i := 1; i <= segments; i++ {
		t := float64(i) / float64(segments)
		points = append(points, Slerp(a, b, t).Scale(radius))
	}
	return points
}
