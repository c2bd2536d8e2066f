package core

import (
	"math"
	"reflect"
	"testing"
)

func TestAzimuthArc(t *testing.T) {
	az0 := DegreesToRadians(0)
	az1 := DegreesToRadians(40)
	const segments = 64
	const radius = 1.001

	points := AzimuthArc(az0, az1, segments, radius)
	if len(points) != segments+1 {
		t.Fatalf("got %d points, want %d", len(points), segments+1)
	}

	wantFirst := Vector3{X: radius}
	wantLast := Vector3{X: radius * math.Cos(az1), Y: radius * math.Sin(az1)}
	if !vecClose(points[0], wantFirst, 1e-12) {
		t.Errorf("first point %+v, want %+v", points[0], wantFirst)
	}
	if !vecClose(points[len(points)-1], wantLast, 1e-12) {
		t.Errorf("last point %+v, want %+v", points[len(points)-1], wantLast)
	}

	prev := math.Atan2(points[0].Y, points[0].X)
	for i, p := range points {
		if p.Z != 0 {
			t.Fatalf("point %d off the horizon plane: %+v", i, p)
		}
		if diff := math.Abs(p.Length() - radius); diff > 1e-12 {
			t.Fatalf("point %d off the circle: ‖p‖ = %v", i, p.Length())
		}
		if a := math.Atan2(p.Y, p.X); i > 0 && a < prev {
			t.Fatalf("azimuth not monotonic at point %d", i)
		} else {
			prev = a
		}
	}
}

func TestAzimuthArcNegativeDirection(t *testing.T) {
	points := AzimuthArc(DegreesToRadians(40), DegreesToRadians(10), 8, 1)
	prev := math.Atan2(points[0].Y, points[0].X)
	for i := 1; i < len(points); i++ {
		a := math.Atan2(points[i].Y, points[i].X)
		if a > prev {
			t.Fatalf("azimuth increased at point %d for a reversed arc", i)
		}
		prev = a
	}
}

func TestElevationArc(t *testing.T) {
	az := DegreesToRadians(40)
	el := DegreesToRadians(25)
	const segments = 32
	const radius = 1.001

	points := ElevationArc(az, el, segments, radius)
	if len(points) != segments+1 {
		t.Fatalf("got %d points, want %d", len(points), segments+1)
	}
	if want := AzElToVec(az, 0).Scale(radius); !vecClose(points[0], want, 1e-12) {
		t.Errorf("first point %+v, want horizon point %+v", points[0], want)
	}
	if want := AzElToVec(az, el).Scale(radius); !vecClose(points[len(points)-1], want, 1e-12) {
		t.Errorf("last point %+v, want %+v", points[len(points)-1], want)
	}
	for i, p := range points {
		if diff := math.Abs(p.Length() - radius); diff > 1e-9 {
			t.Fatalf("point %d off the sphere: ‖p‖ = %v", i, p.Length())
		}
	}
}

func TestGreatCircleArc(t *testing.T) {
	a := AzElToVec(DegreesToRadians(40), DegreesToRadians(25))
	b := AzElToVec(DegreesToRadians(10), DegreesToRadians(5))
	const segments = 64
	const radius = 1.002

	points := GreatCircleArc(a, b, segments, radius)
	if len(points) != segments+1 {
		t.Fatalf("got %d points, want %d", len(points), segments+1)
	}
	if want := a.Scale(radius); !vecClose(points[0], want, 1e-9) {
		t.Errorf("first point %+v, want %+v", points[0], want)
	}
	if want := b.Scale(radius); !vecClose(points[len(points)-1], want, 1e-9) {
		t.Errorf("last point %+v, want %+v", points[len(points)-1], want)
	}

	// Every sample sits on the inflated sphere and on the great circle
	// through a and b (perpendicular to a×b).
	normal := a.Cross(b).Normalize()
	total := AngleBetween(a, b)
	prev := 0.0
	for i, p := range points {
		if diff := math.Abs(p.Length() - radius); diff > 1e-9 {
			t.Fatalf("point %d off the sphere: ‖p‖ = %v", i, p.Length())
		}
		if dot := math.Abs(normal.Dot(p)); dot > 1e-9 {
			t.Fatalf("point %d off the great-circle plane: %v", i, dot)
		}
		swept := AngleBetween(a, p.Normalize())
		if swept+1e-9 < prev {
			t.Fatalf("arc parameter not monotonic at point %d", i)
		}
		prev = swept
	}
	if math.Abs(prev-total) > 1e-9 {
		t.Errorf("final swept angle %v, want %v", prev, total)
	}
}

func TestArcsDegenerate(t *testing.T) {
	// start == end: well-formed output, no NaN, no panic.
	az := DegreesToRadians(30)
	for _, p := range AzimuthArc(az, az, 8, 1.001) {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatal("degenerate azimuth arc produced NaN")
		}
	}
	for _, p := range ElevationArc(az, 0, 8, 1.001) {
		if math.IsNaN(p.X) || math.IsNaN(p.Z) {
			t.Fatal("degenerate elevation arc produced NaN")
		}
	}
	a := AzElToVec(az, 0.5)
	pts := GreatCircleArc(a, a, 8, 1.002)
	for _, p := range pts {
		if !vecClose(p, a.Scale(1.002), 1e-9) {
			t.Fatalf("degenerate great-circle arc left its start: %+v", p)
		}
	}

	// Zero or negative segment counts are bumped to one segment.
	if got := len(AzimuthArc(0, 1, 0, 1)); got != 2 {
		t.Errorf("zero-segment azimuth arc has %d points, want 2", got)
	}
	if got := len(GreatCircleArc(Vector3{X: 1}, Vector3{Y: 1}, -3, 1)); got != 2 {
		t.Errorf("negative-segment great-circle arc has %d points, want 2", got)
	}
}

func TestArcsDeterministic(t *testing.T) {
	a := AzElToVec(0.3, 0.2)
	b := AzElToVec(1.1, 0.7)
	first := GreatCircleArc(a, b, 16, 1.002)
	second := GreatCircleArc(a, b, 16, 1.002)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different tessellations")
	}
}
