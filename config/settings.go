package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type Settings struct {
	Window Window `json:"window"`
	Sphere Sphere `json:"sphere"`
	Arcs   Arcs   `json:"arcs"`
	Angles Angles `json:"angles"`
	Server Server `json:"server"`
}

type Window struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	TargetFPS int `json:"targetFps"`
}

type Sphere struct {
	Radius            float64 `json:"radius"`
	AzimuthSegments   int     `json:"azimuthSegments"`
	ElevationSegments int     `json:"elevationSegments"`
}

// Arcs controls tessellation density and how far arcs float above the
// reference sphere. The offsets keep rendered arcs from z-fighting the
// sphere surface.
type Arcs struct {
	AzimuthSegments     int     `json:"azimuthSegments"`
	ElevationSegments   int     `json:"elevationSegments"`
	GreatCircleSegments int     `json:"greatCircleSegments"`
	PlanarOffset        float64 `json:"planarOffset"`
	GreatCircleOffset   float64 `json:"greatCircleOffset"`
}

// Angles are the startup directions, in degrees.
type Angles struct {
	TargetAz float64 `json:"targetAz"`
	TargetEl float64 `json:"targetEl"`
	AxisAz   float64 `json:"axisAz"`
	AxisEl   float64 `json:"axisEl"`
}

type Server struct {
	Port             int `json:"port"`
	UpdateIntervalMs int `json:"updateIntervalMs"`
}

func Default() Settings {
	return Settings{
		Window: Window{
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		Sphere: Sphere{
			Radius:            1.0,
			AzimuthSegments:   32,
			ElevationSegments: 20,
		},
		Arcs: Arcs{
			AzimuthSegments:     64,
			ElevationSegments:   32,
			GreatCircleSegments: 64,
			PlanarOffset:        1.001,
			GreatCircleOffset:   1.002,
		},
		Angles: Angles{
			TargetAz: 40,
			TargetEl: 25,
			AxisAz:   10,
			AxisEl:   5,
		},
		Server: Server{
			Port:             8080,
			UpdateIntervalMs: 100,
		},
	}
}

// Load reads settings from the given JSON file, falling back to defaults
// when the file does not exist. Out-of-range values are normalized rather
// than rejected.
func Load(path string) (Settings, error) {
	settings := Default()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Printf("No %s found, using defaults\n", path)
			return settings, nil
		}
		return settings, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&settings); err != nil {
		return settings, fmt.Errorf("error parsing %s: %v", path, err)
	}

	settings.normalize()
	return settings, nil
}

// normalize clamps nonsensical values back into usable ranges.
func (s *Settings) normalize() {
	if s.Window.Width < 320 {
		s.Window.Width = 320
	}
	if s.Window.Height < 240 {
		s.Window.Height = 240
	}
	if s.Window.TargetFPS < 1 {
		s.Window.TargetFPS = 60
	}
	if s.Sphere.Radius <= 0 {
		s.Sphere.Radius = 1.0
	}
	if s.Sphere.AzimuthSegments < 3 {
		s.Sphere.AzimuthSegments = 3
	}
	if s.Sphere.ElevationSegments < 2 {
		s.Sphere.ElevationSegments = 2
	}
	if s.Arcs.AzimuthSegments < 1 {
		s.Arcs.AzimuthSegments = 1
	}
	if s.Arcs.ElevationSegments < 1 {
		s.Arcs.ElevationSegments = 1
	}
	if s.Arcs.GreatCircleSegments < 1 {
		s.Arcs.GreatCircleSegments = 1
	}
	if s.Arcs.PlanarOffset < 1 {
		s.Arcs.PlanarOffset = 1.001
	}
	if s.Arcs.GreatCircleOffset < 1 {
		s.Arcs.GreatCircleOffset = 1.002
	}
	if s.Server.Port <= 0 || s.Server.Port > 65535 {
		s.Server.Port = 8080
	}
	if s.Server.UpdateIntervalMs < 10 {
		s.Server.UpdateIntervalMs = 100
	}
}
