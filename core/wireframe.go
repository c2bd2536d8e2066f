package core

import "math"

// SphereGrid is the wireframe of a reference sphere: closed parallels at
// constant latitude plus pole-to-pole meridians. Every point lies on the
// sphere of the requested radius. The grid is recomputed on every call and
// owned entirely by the caller.
type SphereGrid struct {
	Parallels [][]Vector3
	Meridians [][]Vector3
}

// SphereWireframe samples the parallel/meridian grid of a sphere.
// Parallels are taken at polar angles t = i/elSegments·π for
// i = 1..elSegments-1; the polar rows i = 0 and i = elSegments degenerate
// to single points and are skipped. Each parallel is a closed ring of
// azSegments+1 points (first repeated last); each of the azSegments
// meridians runs pole to pole with elSegments+1 points.
func SphereWireframe(radius float64, azSegments, elSegments int) SphereGrid {
	if azSegments < 3 {
		azSegments = 3
	}
	if elSegments < 2 {
		elSegments = 2
	}

	grid := SphereGrid{
		Parallels: make([][]Vector3, 0, elSegments-1),
		Meridians: make([][]Vector3, 0, azSegments),
	}

	for i := 1; i < elSegments; i++ {
		t := float64(i) / float64(elSegments) * math.Pi // polar angle from +Z
		z := radius * math.Cos(t)
		r := radius * math.Sin(t)
		ring := make([]Vector3, 0, azSegments+1)
		for k := 0; k <= azSegments; k++ {
			a := float64(k) / float64(azSegments) * 2 * math.Pi
			ring = append(ring, Vector3{X: r * math.Cos(a), Y: r * math.Sin(a), Z: z})
		}
		grid.Parallels = append(grid.Parallels, ring)
	}

	for k := 0; k < azSegments; k++ {
		a := float64(k) / float64(azSegments) * 2 * math.Pi
		meridian := make([]Vector3, 0, elSegments+1)
		for i := 0; i <= elSegments; i++ {
			t := float64(i) / float64(elSegments) * math.Pi
			st := math.Sin(t)
			meridian = append(meridian, Vector3{
				X: radius * st * math.Cos(a),
				Y: radius * st * math.Sin(a),
				Z: radius * math.Cos(t),
			})
		}
		grid.Meridians = append(grid.Meridians, meridian)
	}

	return grid
}
