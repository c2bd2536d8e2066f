package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"azelviz/core"
)

// drawLabels projects the 3D anchor points to screen space and draws the
// text labels next to them. The "j" label sits at the great-circle arc's
// midpoint, found by slerp at t=0.5.
func drawLabels(geometry FrameGeometry, cam rl.Camera3D) {
	label := func(anchor core.Vector3, text string, size int32, color rl.Color) {
		screen := rl.GetWorldToScreen(toRaylib(anchor), cam)
		rl.DrawText(text, int32(screen.X)+6, int32(screen.Y)-10, size, color)
	}

	label(geometry.Target.Scale(1.05), "T", 18, rl.RayWhite)
	label(geometry.Axis.Scale(1.05), "R", 18, rl.RayWhite)
	label(core.Vector3{X: 1.05}, "N (AZ=0°)", 16, rl.RayWhite)
	label(core.Vector3{Y: 1.05}, "E (AZ=90°)", 16, rl.RayWhite)
	label(core.Vector3{Z: 1.15}, "Up", 16, upColor)
	label(geometry.ArcMidpoint.Scale(1.03), "j", 20, angleColor)
}

func drawHUD(geometry FrameGeometry) {
	const pad = 12
	const line = 22
	y := int32(pad)

	rl.DrawRectangle(pad-6, pad-6, 520, 120, rl.Fade(rl.Black, 0.45))
	rl.DrawText("Spherical Trigonometry — Angle J", pad, y, 22, rl.RayWhite)
	y += line + 4
	rl.DrawText(fmt.Sprintf("Target T: Az=%.1f°, El=%.1f°", geometry.TargetAzDeg, geometry.TargetElDeg),
		pad, y, 18, rl.RayWhite)
	y += line
	rl.DrawText(fmt.Sprintf("Axis   R: Az=%.1f°, El=%.1f°", geometry.AxisAzDeg, geometry.AxisElDeg),
		pad, y, 18, rl.RayWhite)
	y += line
	rl.DrawText(fmt.Sprintf("J(T,R) ≈ %.3f°  (check: %.3f°)", geometry.AngleVecDeg, geometry.AngleTrigDeg),
		pad, y, 18, angleColor)

	rl.DrawText("Controls: T(A/D,W/S), R(J/L,I/K), Reset(R), Mouse orbits",
		pad, int32(rl.GetScreenHeight())-28, 18, rl.LightGray)
}
