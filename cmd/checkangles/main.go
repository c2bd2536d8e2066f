package main

import (
	"fmt"
	"math"
	"os"

	"azelviz/core"
)

// Cross-checks the two central-angle computations (dot product vs the
// spherical law of cosines) over a table of direction pairs and reports
// any disagreement.
func main() {
	fmt.Println("=== Central Angle Cross-Check ===")
	fmt.Println()

	pairs := []struct {
		name               string
		azA, elA, azB, elB float64 // degrees
	}{
		{"Worked example (T vs R)", 40, 25, 10, 5},
		{"Same direction", 120, 30, 120, 30},
		{"Orthogonal on horizon", 0, 0, 90, 0},
		{"Zenith vs horizon", 0, 90, 45, 0},
		{"Antipodal", 0, 45, 180, -45},
		{"Unwrapped azimuth", 370, 10, 10, 10},
		{"Polar approach", 15, 89, -165, 89},
	}

	const tolerance = 1e-9 // radians
	failed := false

	for _, pair := range pairs {
		azA := core.DegreesToRadians(pair.azA)
		elA := core.DegreesToRadians(pair.elA)
		azB := core.DegreesToRadians(pair.azB)
		elB := core.DegreesToRadians(pair.elB)

		fromVectors := core.AngleBetween(core.AzElToVec(azA, elA), core.AzElToVec(azB, elB))
		fromAngles := core.CentralAngle(azA, elA, azB, elB)
		diff := math.Abs(fromVectors - fromAngles)

		status := "ok"
		if diff > tolerance {
			status = "MISMATCH"
			failed = true
		}

		fmt.Printf("%s:\n", pair.name)
		fmt.Printf("  A(%.1f°, %.1f°)  B(%.1f°, %.1f°)\n", pair.azA, pair.elA, pair.azB, pair.elB)
		fmt.Printf("  dot product:     J = %.6f°\n", core.RadiansToDegrees(fromVectors))
		fmt.Printf("  law of cosines:  J = %.6f°\n", core.RadiansToDegrees(fromAngles))
		fmt.Printf("  diff = %.3e rad  [%s]\n", diff, status)
		fmt.Println()
	}

	if failed {
		fmt.Println("FAILED: the two computations disagree")
		os.Exit(1)
	}
	fmt.Println("All pairs agree")
}
