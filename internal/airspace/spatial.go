package airspace

// DetectSpatialConflicts samples all trajectories at synchronized
// timestamps across their common time window and reports every pair whose
// separation drops below minSeparation. timeResolution is the sampling
// step in seconds; coarser steps may miss brief close passes between
// samples, which is an accepted tradeoff.
//
// One conflict is emitted per violating pair per sampled timestamp;
// deduplication is MergeConflicts' job, not the detector's. An empty or
// negative common window yields no conflicts.
func DetectSpatialConflicts(trajectories []*Trajectory, minSeparation, timeResolution float64) []Conflict {
	var conflicts []Conflict

	if len(trajectories) < 2 {
		return conflicts
	}

	// Common window: latest start to earliest end across all drones.
	globalStart, globalEnd := trajectories[0].Bounds()
	for _, traj := range trajectories[1:] {
		start, end := traj.Bounds()
		if start > globalStart {
			globalStart = start
		}
		if end < globalEnd {
			globalEnd = end
		}
	}
	if globalStart >= globalEnd {
		return conflicts // no temporal overlap
	}

	numSamples := int((globalEnd-globalStart)/timeResolution) + 1
	for _, ts := range linspace(globalStart, globalEnd, numSamples) {
		// Positions of every drone with a defined position at ts.
		ids := make([]string, 0, len(trajectories))
		positions := make([]Waypoint, 0, len(trajectories))
		for _, traj := range trajectories {
			if pos, ok := traj.InterpolatePosition(ts); ok {
				ids = append(ids, traj.DroneID())
				positions = append(positions, pos)
			}
		}

		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				distance := positions[i].DistanceTo(positions[j])
				if distance >= minSeparation {
					continue
				}
				conflicts = append(conflicts, Conflict{
					Drone1ID:  ids[i],
					Drone2ID:  ids[j],
					Timestamp: ts,
					Distance:  distance,
					Position1: positions[i],
					Position2: positions[j],
					Severity:  spatialSeverity(distance, minSeparation),
					Type:      ConflictSpatial,
				})
			}
		}
	}

	return conflicts
}

// spatialSeverity grades a below-minimum separation distance.
func spatialSeverity(distance, minSeparation float64) Severity {
	switch {
	case distance < minSeparation*0.3:
		return SeverityHigh
	case distance < minSeparation*0.6:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
