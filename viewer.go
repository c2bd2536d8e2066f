package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"azelviz/config"
	"azelviz/core"
)

var (
	targetColor = rl.SkyBlue
	axisColor   = rl.Orange
	angleColor  = rl.Yellow
	gridColor   = rl.Fade(rl.Orange, 0.35)
	axesColor   = rl.White
	upColor     = rl.Green
)

// runViewer opens the native window and renders the geometry until the
// window is closed. Must run on the main OS thread.
func runViewer(settings config.Settings) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(settings.Window.Width), int32(settings.Window.Height),
		"Spherical Trigonometry — Az/El & Angle J")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(settings.Window.TargetFPS))

	state := NewSensorState(settings.Angles)
	camera := NewOrbitCamera()

	for !rl.WindowShouldClose() {
		state.ApplyInput(rl.GetFrameTime())
		camera.ApplyInput()

		geometry := BuildFrame(state, settings)
		cam := camera.Camera3D()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(20, 24, 28, 255))

		rl.BeginMode3D(cam)
		drawReferenceAxes(settings.Sphere.Radius * 1.2)
		drawWireframe(geometry.Wireframe)
		drawPolyline(geometry.Equator, rl.Fade(rl.Orange, 0.55))

		drawArrow(geometry.Target, 0.05, targetColor)
		drawArrow(geometry.Axis, 0.05, axisColor)
		drawArrow(core.Vector3{Z: 1.2}, 0.05, upColor)

		drawPolyline(geometry.TargetAzArc, rl.Fade(targetColor, 0.8))
		drawPolyline(geometry.AxisAzArc, rl.Fade(axisColor, 0.8))
		drawPolyline(geometry.TargetElArc, rl.Fade(targetColor, 0.8))
		drawPolyline(geometry.AxisElArc, rl.Fade(axisColor, 0.8))
		drawPolyline(geometry.GreatCircleArc, angleColor)

		rl.DrawSphere(toRaylib(geometry.Target.Scale(1.05)), 0.02, targetColor)
		rl.DrawSphere(toRaylib(geometry.Axis.Scale(1.05)), 0.02, axisColor)
		rl.EndMode3D()

		drawLabels(geometry, cam)
		drawHUD(geometry)

		rl.EndDrawing()
	}
}

func toRaylib(v core.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// drawPolyline connects consecutive points with line segments.
func drawPolyline(points []core.Vector3, color rl.Color) {
	for i := 1; i < len(points); i++ {
		rl.DrawLine3D(toRaylib(points[i-1]), toRaylib(points[i]), color)
	}
}

func drawWireframe(grid core.SphereGrid) {
	for _, ring := range grid.Parallels {
		drawPolyline(ring, gridColor)
	}
	for _, meridian := range grid.Meridians {
		drawPolyline(meridian, gridColor)
	}
}

// drawReferenceAxes draws the N/E/Up frame out to the given length.
func drawReferenceAxes(length float64) {
	origin := rl.Vector3{}
	l := float32(length)
	rl.DrawLine3D(origin, rl.Vector3{X: l}, axesColor)
	rl.DrawLine3D(origin, rl.Vector3{Y: l}, axesColor)
	rl.DrawLine3D(origin, rl.Vector3{Z: l}, axesColor)
}

// drawArrow draws a line from the origin with a small cone head.
func drawArrow(dir core.Vector3, thickness float32, color rl.Color) {
	length := dir.Length()
	if length < 1e-4 {
		return
	}
	end := toRaylib(dir)
	rl.DrawLine3D(rl.Vector3{}, end, color)

	headLength := 0.25 * length
	if headLength > 0.5 {
		headLength = 0.5
	}
	base := toRaylib(dir.Scale((length - headLength) / length))
	rl.DrawCylinderEx(base, end, thickness, 0, 12, color)
}
