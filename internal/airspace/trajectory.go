package airspace

import (
	"fmt"
	"sort"
)

// Trajectory is a validated, time-ordered flight path for one drone.
// It is immutable after construction; both detectors and reporting
// consume it read-only.
type Trajectory struct {
	droneID   string
	waypoints []Waypoint
}

// NewTrajectory builds a trajectory from raw waypoints. The input may be
// unordered; it is copied and sorted by timestamp. Construction fails if
// fewer than 2 waypoints are given or two waypoints share a timestamp.
func NewTrajectory(droneID string, waypoints []Waypoint) (*Trajectory, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("drone %s: trajectory needs at least 2 waypoints, got %d", droneID, len(waypoints))
	}

	wps := make([]Waypoint, len(waypoints))
	copy(wps, waypoints)
	sort.Slice(wps, func(i, j int) bool { return wps[i].Timestamp < wps[j].Timestamp })

	for i := 1; i < len(wps); i++ {
		if wps[i].Timestamp == wps[i-1].Timestamp {
			return nil, fmt.Errorf("drone %s: duplicate timestamp %v", droneID, wps[i].Timestamp)
		}
	}

	return &Trajectory{droneID: droneID, waypoints: wps}, nil
}

// DroneID returns the drone identifier.
func (t *Trajectory) DroneID() string { return t.droneID }

// Waypoints returns a copy of the ordered waypoint sequence.
func (t *Trajectory) Waypoints() []Waypoint {
	wps := make([]Waypoint, len(t.waypoints))
	copy(wps, t.waypoints)
	return wps
}

// Bounds returns the first and last waypoint timestamps.
func (t *Trajectory) Bounds() (start, end float64) {
	return t.waypoints[0].Timestamp, t.waypoints[len(t.waypoints)-1].Timestamp
}

// InterpolatePosition returns the drone's position at time ts by linear
// interpolation between the bracketing waypoints. The second return value
// is false when ts lies strictly outside the trajectory bounds; that is a
// normal outcome, not an error.
func (t *Trajectory) InterpolatePosition(ts float64) (Waypoint, bool) {
	start, end := t.Bounds()
	if ts < start || ts > end {
		return Waypoint{}, false
	}

	// Waypoints are sorted, so binary-search the bracketing pair.
	idx := sort.Search(len(t.waypoints), func(i int) bool {
		return t.waypoints[i].Timestamp >= ts
	})
	if t.waypoints[idx].Timestamp == ts {
		return t.waypoints[idx], true
	}

	w1, w2 := t.waypoints[idx-1], t.waypoints[idx]
	if w2.Timestamp == w1.Timestamp {
		// Cannot happen given the no-duplicate invariant, but guard
		// against dividing by zero anyway.
		return w1, true
	}

	f := (ts - w1.Timestamp) / (w2.Timestamp - w1.Timestamp)
	return Waypoint{
		X:         w1.X + f*(w2.X-w1.X),
		Y:         w1.Y + f*(w2.Y-w1.Y),
		Z:         w1.Z + f*(w2.Z-w1.Z),
		Timestamp: ts,
	}, true
}

// Sample returns n waypoints at evenly spaced timestamps across the
// trajectory bounds, inclusive of both ends. Samples where interpolation
// yields no position are dropped rather than failing.
func (t *Trajectory) Sample(n int) []Waypoint {
	start, end := t.Bounds()
	var out []Waypoint
	for _, ts := range linspace(start, end, n) {
		if wp, ok := t.InterpolatePosition(ts); ok {
			out = append(out, wp)
		}
	}
	return out
}

// linspace returns n evenly spaced values spanning [start, end] inclusive.
func linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = end
	return out
}
