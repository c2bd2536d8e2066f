package core

import (
	"math"
	"testing"
)

func vecClose(a, b Vector3, epsilon float64) bool {
	return math.Abs(a.X-b.X) <= epsilon &&
		math.Abs(a.Y-b.Y) <= epsilon &&
		math.Abs(a.Z-b.Z) <= epsilon
}

func TestSlerpEndpoints(t *testing.T) {
	a := AzElToVec(DegreesToRadians(40), DegreesToRadians(25))
	b := AzElToVec(DegreesToRadians(10), DegreesToRadians(5))

	if got := Slerp(a, b, 0); !vecClose(got, a, 1e-9) {
		t.Errorf("Slerp(a, b, 0) = %+v, want a = %+v", got, a)
	}
	if got := Slerp(a, b, 1); !vecClose(got, b, 1e-9) {
		t.Errorf("Slerp(a, b, 1) = %+v, want b = %+v", got, b)
	}
}

func TestSlerpCoincident(t *testing.T) {
	a := AzElToVec(1.2, 0.4)
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if got := Slerp(a, a, tt); got != a {
			t.Errorf("Slerp(a, a, %v) = %+v, want a unchanged", tt, got)
		}
	}
}

// TestSlerpGreatCircle checks that intermediate points are unit vectors
// whose angles to the endpoints split the total angle in proportion to t.
func TestSlerpGreatCircle(t *testing.T) {
	a := AzElToVec(DegreesToRadians(-30), DegreesToRadians(10))
	b := AzElToVec(DegreesToRadians(70), DegreesToRadians(50))
	total := AngleBetween(a, b)

	for _, tt := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		m := Slerp(a, b, tt)
		if diff := math.Abs(m.Length() - 1); diff > 1e-9 {
			t.Fatalf("‖Slerp(a, b, %v)‖ = %v, want 1", tt, m.Length())
		}
		if got := AngleBetween(a, m); math.Abs(got-tt*total) > 1e-9 {
			t.Errorf("angle(a, slerp %v) = %v, want %v", tt, got, tt*total)
		}
		if got := AngleBetween(m, b); math.Abs(got-(1-tt)*total) > 1e-9 {
			t.Errorf("angle(slerp %v, b) = %v, want %v", tt, got, (1-tt)*total)
		}
	}
}

// TestSlerpAntipodal covers the degenerate pair with no unique great
// circle: the result must stay unit-norm, never NaN, and still reach -a
// at t=1.
func TestSlerpAntipodal(t *testing.T) {
	pairs := []Vector3{
		{X: 1},
		{Z: 1},
		AzElToVec(DegreesToRadians(40), DegreesToRadians(25)),
	}
	for _, a := range pairs {
		b := a.Scale(-1)
		for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
			m := Slerp(a, b, tt)
			if math.IsNaN(m.X) || math.IsNaN(m.Y) || math.IsNaN(m.Z) {
				t.Fatalf("Slerp(%+v, antipode, %v) produced NaN", a, tt)
			}
			if diff := math.Abs(m.Length() - 1); diff > 1e-9 {
				t.Fatalf("‖Slerp(%+v, antipode, %v)‖ = %v, want 1", a, tt, m.Length())
			}
		}
		if got := Slerp(a, b, 0); !vecClose(got, a, 1e-9) {
			t.Errorf("antipodal Slerp at t=0 = %+v, want a = %+v", got, a)
		}
		if got := Slerp(a, b, 1); !vecClose(got, b, 1e-9) {
			t.Errorf("antipodal Slerp at t=1 = %+v, want -a = %+v", got, b)
		}
	}
}
