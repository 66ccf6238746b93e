package mission

import "drone-deconflict/internal/airspace"

// BuiltIn returns a predefined three-drone demo mission. Alpha and Beta
// converge on the same zone mid-flight; Gamma stays clear of both.
func BuiltIn() []*airspace.Trajectory {
	alpha, _ := airspace.NewTrajectory("DEMO_Alpha", []airspace.Waypoint{
		{X: 0, Y: 0, Z: 100, Timestamp: 0},
		{X: 50, Y: 25, Z: 120, Timestamp: 5},
		{X: 100, Y: 50, Z: 100, Timestamp: 10},
	})
	beta, _ := airspace.NewTrajectory("DEMO_Beta", []airspace.Waypoint{
		{X: 0, Y: 50, Z: 80, Timestamp: 1},
		{X: 50, Y: 25, Z: 110, Timestamp: 6},
		{X: 100, Y: 0, Z: 90, Timestamp: 11},
	})
	gamma, _ := airspace.NewTrajectory("DEMO_Gamma", []airspace.Waypoint{
		{X: 25, Y: 0, Z: 150, Timestamp: 0},
		{X: 75, Y: 50, Z: 130, Timestamp: 8},
		{X: 100, Y: 100, Z: 110, Timestamp: 12},
	})
	return []*airspace.Trajectory{alpha, beta, gamma}
}
