package main

import (
	"math"

	"azelviz/config"
	"azelviz/core"
)

// FrameGeometry is one frame's worth of output from the geometry core:
// everything the native viewer draws and the streaming server sends.
// Angles are reported in degrees for display; all geometry is in the
// sensor frame at the configured sphere radius.
type FrameGeometry struct {
	TargetAzDeg float64 `json:"targetAzDeg"`
	TargetElDeg float64 `json:"targetElDeg"`
	AxisAzDeg   float64 `json:"axisAzDeg"`
	AxisElDeg   float64 `json:"axisElDeg"`

	Target core.Vector3 `json:"target"`
	Axis   core.Vector3 `json:"axis"`

	// J computed two ways; they agree up to rounding and the HUD shows
	// both as a consistency check.
	AngleVecDeg  float64 `json:"angleVecDeg"`
	AngleTrigDeg float64 `json:"angleTrigDeg"`

	// Midpoint of the great-circle arc, where the viewer anchors the
	// "j" label.
	ArcMidpoint core.Vector3 `json:"arcMidpoint"`

	Equator        []core.Vector3 `json:"equator"`
	TargetAzArc    []core.Vector3 `json:"targetAzArc"`
	AxisAzArc      []core.Vector3 `json:"axisAzArc"`
	TargetElArc    []core.Vector3 `json:"targetElArc"`
	AxisElArc      []core.Vector3 `json:"axisElArc"`
	GreatCircleArc []core.Vector3 `json:"greatCircleArc"`

	Wireframe core.SphereGrid `json:"wireframe"`
}

// BuildFrame runs the geometry core for one frame. Degrees cross into
// radians here and nowhere deeper; the core works in radians only.
func BuildFrame(state *SensorState, settings config.Settings) FrameGeometry {
	azT := core.DegreesToRadians(state.TargetAz)
	elT := core.DegreesToRadians(state.TargetEl)
	azR := core.DegreesToRadians(state.AxisAz)
	elR := core.DegreesToRadians(state.AxisEl)

	target := core.AzElToVec(azT, elT)
	axis := core.AzElToVec(azR, elR)

	radius := settings.Sphere.Radius
	arcs := settings.Arcs
	planarRadius := radius * arcs.PlanarOffset
	gcRadius := radius * arcs.GreatCircleOffset

	return FrameGeometry{
		TargetAzDeg: state.TargetAz,
		TargetElDeg: state.TargetEl,
		AxisAzDeg:   state.AxisAz,
		AxisElDeg:   state.AxisEl,

		Target: target,
		Axis:   axis,

		AngleVecDeg:  core.RadiansToDegrees(core.AngleBetween(target, axis)),
		AngleTrigDeg: core.RadiansToDegrees(core.CentralAngle(azT, elT, azR, elR)),

		ArcMidpoint: core.Slerp(target, axis, 0.5),

		Equator:        core.AzimuthArc(0, 2*math.Pi, arcs.AzimuthSegments, planarRadius),
		TargetAzArc:    core.AzimuthArc(0, azT, arcs.AzimuthSegments, planarRadius),
		AxisAzArc:      core.AzimuthArc(0, azR, arcs.AzimuthSegments, planarRadius),
		TargetElArc:    core.ElevationArc(azT, elT, arcs.ElevationSegments, planarRadius),
		AxisElArc:      core.ElevationArc(azR, elR, arcs.ElevationSegments, planarRadius),
		GreatCircleArc: core.GreatCircleArc(target, axis, arcs.GreatCircleSegments, gcRadius),

		Wireframe: core.SphereWireframe(radius, settings.Sphere.AzimuthSegments, settings.Sphere.ElevationSegments),
	}
}
