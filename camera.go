package main

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera is the viewer's explicit orbit state around the origin:
// yaw/pitch in radians, a fixed orbit distance, and a scroll-adjustable
// vertical FOV in degrees. It lives entirely in this UI layer; the
// geometry core never sees it.
type OrbitCamera struct {
	Yaw      float64
	Pitch    float64
	Distance float64
	FOV      float64
}

const (
	orbitSensitivity = 0.003
	orbitPitchMin    = -0.1
	orbitPitchMax    = 1.3
	fovMin           = 20.0
	fovMax           = 90.0
)

func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Yaw:      0.8,
		Pitch:    0.6,
		Distance: 3.5,
		FOV:      60,
	}
}

// ApplyInput orbits on left-mouse drag and zooms the FOV on scroll.
func (c *OrbitCamera) ApplyInput() {
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		c.Yaw += float64(delta.X) * orbitSensitivity
		c.Pitch += float64(delta.Y) * orbitSensitivity
		if c.Pitch > orbitPitchMax {
			c.Pitch = orbitPitchMax
		}
		if c.Pitch < orbitPitchMin {
			c.Pitch = orbitPitchMin
		}
	}

	if wheel := rl.GetMouseWheelMove(); math.Abs(float64(wheel)) > 0.01 {
		c.FOV -= float64(wheel) * 2
		if c.FOV < fovMin {
			c.FOV = fovMin
		}
		if c.FOV > fovMax {
			c.FOV = fovMax
		}
	}
}

// Camera3D builds the raylib camera for this frame, +Z up.
func (c *OrbitCamera) Camera3D() rl.Camera3D {
	cp := math.Cos(c.Pitch)
	return rl.Camera3D{
		Position: rl.Vector3{
			X: float32(c.Distance * cp * math.Cos(c.Yaw)),
			Y: float32(c.Distance * cp * math.Sin(c.Yaw)),
			Z: float32(c.Distance * math.Sin(c.Pitch)),
		},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Z: 1},
		Fovy:       float32(c.FOV),
		Projection: rl.CameraPerspective,
	}
}
