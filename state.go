package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"azelviz/config"
)

// Angle rate for held keys, degrees per second.
const angleRate = 60.0

// Elevations stay inside ±89° so the azimuth arcs and the meridian
// through each direction remain well defined away from the poles.
const elevationLimit = 89.0

// SensorState holds the two angle pairs driving the visualization, in
// degrees: the sensor target direction T and the aircraft roll-axis
// direction R. The geometry core is stateless; this state is owned here
// and passed into it explicitly every frame.
type SensorState struct {
	TargetAz float64
	TargetEl float64
	AxisAz   float64
	AxisEl   float64

	initial config.Angles
}

func NewSensorState(angles config.Angles) *SensorState {
	s := &SensorState{initial: angles}
	s.Reset()
	return s
}

func (s *SensorState) Reset() {
	s.TargetAz = s.initial.TargetAz
	s.TargetEl = s.initial.TargetEl
	s.AxisAz = s.initial.AxisAz
	s.AxisEl = s.initial.AxisEl
	s.clampElevations()
}

// ApplyInput advances the angles from this frame's keyboard state.
// Target: A/D azimuth, W/S elevation. Axis: J/L azimuth, I/K elevation.
// R resets.
func (s *SensorState) ApplyInput(dt float32) {
	step := angleRate * float64(dt)

	if rl.IsKeyDown(rl.KeyA) {
		s.TargetAz -= step
	}
	if rl.IsKeyDown(rl.KeyD) {
		s.TargetAz += step
	}
	if rl.IsKeyDown(rl.KeyW) {
		s.TargetEl += step
	}
	if rl.IsKeyDown(rl.KeyS) {
		s.TargetEl -= step
	}

	if rl.IsKeyDown(rl.KeyJ) {
		s.AxisAz -= step
	}
	if rl.IsKeyDown(rl.KeyL) {
		s.AxisAz += step
	}
	if rl.IsKeyDown(rl.KeyI) {
		s.AxisEl += step
	}
	if rl.IsKeyDown(rl.KeyK) {
		s.AxisEl -= step
	}

	if rl.IsKeyPressed(rl.KeyR) {
		s.Reset()
		return
	}

	s.clampElevations()
}

// Set replaces the angles wholesale (used by the streaming server when a
// client pushes new values).
func (s *SensorState) Set(targetAz, targetEl, axisAz, axisEl float64) {
	s.TargetAz = targetAz
	s.TargetEl = targetEl
	s.AxisAz = axisAz
	s.AxisEl = axisEl
	s.clampElevations()
}

func (s *SensorState) clampElevations() {
	s.TargetEl = clampDegrees(s.TargetEl, -elevationLimit, elevationLimit)
	s.AxisEl = clampDegrees(s.AxisEl, -elevationLimit, elevationLimit)
}

func clampDegrees(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
