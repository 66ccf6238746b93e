// Core airspace types for trajectory deconfliction.
package airspace

import "math"

// Waypoint is a single 3D position with an associated time.
// Coordinates share one unit (meters); Timestamp is seconds from
// mission start. Values are never mutated after construction.
type Waypoint struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	Timestamp float64 `json:"timestamp"`
}

// DistanceTo returns the 3D Euclidean distance to another waypoint.
func (w Waypoint) DistanceTo(other Waypoint) float64 {
	dx := w.X - other.X
	dy := w.Y - other.Y
	dz := w.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
