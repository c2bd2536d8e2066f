package core

import (
	"math"
	"testing"
)

// TestSphereWireframe generates the reference grid used by the viewer
// (radius 1, 32 azimuth segments, 20 elevation segments) and checks every
// point sits on the sphere.
func TestSphereWireframe(t *testing.T) {
	const (
		radius     = 1.0
		azSegments = 32
		elSegments = 20
	)

	grid := SphereWireframe(radius, azSegments, elSegments)

	if len(grid.Parallels) != elSegments-1 {
		t.Errorf("got %d parallels, want %d (poles excluded)", len(grid.Parallels), elSegments-1)
	}
	if len(grid.Meridians) != azSegments {
		t.Errorf("got %d meridians, want %d", len(grid.Meridians), azSegments)
	}

	for i, ring := range grid.Parallels {
		if len(ring) != azSegments+1 {
			t.Fatalf("parallel %d has %d points, want %d", i, len(ring), azSegments+1)
		}
		if !vecClose(ring[0], ring[len(ring)-1], 1e-9) {
			t.Errorf("parallel %d is not closed", i)
		}
		for j, p := range ring {
			if diff := math.Abs(p.Length() - radius); diff > 1e-9 {
				t.Fatalf("parallel %d point %d off the sphere: ‖p‖ = %v", i, j, p.Length())
			}
		}
	}

	up := Vector3{Z: radius}
	for k, meridian := range grid.Meridians {
		if len(meridian) != elSegments+1 {
			t.Fatalf("meridian %d has %d points, want %d", k, len(meridian), elSegments+1)
		}
		if !vecClose(meridian[0], up, 1e-9) {
			t.Errorf("meridian %d does not start at the +Z pole: %+v", k, meridian[0])
		}
		if !vecClose(meridian[len(meridian)-1], up.Scale(-1), 1e-9) {
			t.Errorf("meridian %d does not end at the -Z pole: %+v", k, meridian[len(meridian)-1])
		}
		for i, p := range meridian {
			if diff := math.Abs(p.Length() - radius); diff > 1e-9 {
				t.Fatalf("meridian %d point %d off the sphere: ‖p‖ = %v", k, i, p.Length())
			}
		}
	}
}

// TestSphereWireframeScaled checks the radius scaling and the minimum
// segment floors.
func TestSphereWireframeScaled(t *testing.T) {
	const radius = 6371.0
	grid := SphereWireframe(radius, 8, 5)
	for _, ring := range grid.Parallels {
		for _, p := range ring {
			if diff := math.Abs(p.Length() - radius); diff > radius*1e-12 {
				t.Fatalf("scaled point off the sphere: ‖p‖ = %v", p.Length())
			}
		}
	}

	small := SphereWireframe(1, 0, 0)
	if len(small.Meridians) < 3 {
		t.Errorf("segment floor not applied: %d meridians", len(small.Meridians))
	}
	if len(small.Parallels) < 1 {
		t.Errorf("segment floor not applied: %d parallels", len(small.Parallels))
	}
}
