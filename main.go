package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"azelviz/config"
)

func main() {
	runtime.LockOSThread()

	var (
		settingsPath = flag.String("settings", "settings.json", "Path to settings file")
		serve        = flag.Bool("serve", false, "Stream geometry over websocket instead of opening a window")
		port         = flag.Int("port", 0, "Override server port")
		width        = flag.Int("width", 0, "Override window width")
		height       = flag.Int("height", 0, "Override window height")
	)
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *port > 0 {
		settings.Server.Port = *port
	}
	if *width > 0 {
		settings.Window.Width = *width
	}
	if *height > 0 {
		settings.Window.Height = *height
	}

	fmt.Println("=== Az/El Spherical Trigonometry Visualizer ===")
	fmt.Printf("Sphere: radius %.3f, %dx%d wireframe segments\n",
		settings.Sphere.Radius, settings.Sphere.AzimuthSegments, settings.Sphere.ElevationSegments)
	fmt.Printf("Initial angles: T(%.1f°, %.1f°)  R(%.1f°, %.1f°)\n",
		settings.Angles.TargetAz, settings.Angles.TargetEl,
		settings.Angles.AxisAz, settings.Angles.AxisEl)

	if *serve {
		runServer(settings)
		return
	}
	runViewer(settings)
}
