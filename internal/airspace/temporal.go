package airspace

// temporalSamples is the per-trajectory sample count used by the temporal
// detector. Each trajectory is sampled across its own bounds, so samples
// from different drones are not time-aligned.
const temporalSamples = 50

// DetectTemporalConflicts reports pairs of drones that pass through nearly
// the same space at different times, within timeWindow seconds of each
// other. A zero time difference is excluded: simultaneous proximity is the
// spatial detector's responsibility, and reporting it here again would
// double-count.
//
// Severity is high when the time gap is under 30% of the window and medium
// otherwise; unlike the spatial detector there is no low tier.
func DetectTemporalConflicts(trajectories []*Trajectory, timeWindow, minSeparation float64) []Conflict {
	var conflicts []Conflict

	for i := 0; i < len(trajectories); i++ {
		for j := i + 1; j < len(trajectories); j++ {
			traj1, traj2 := trajectories[i], trajectories[j]
			samples1 := traj1.Sample(temporalSamples)
			samples2 := traj2.Sample(temporalSamples)

			for _, wp1 := range samples1 {
				for _, wp2 := range samples2 {
					distance := wp1.DistanceTo(wp2)
					if distance >= minSeparation {
						continue
					}
					timeDiff := wp1.Timestamp - wp2.Timestamp
					if timeDiff < 0 {
						timeDiff = -timeDiff
					}
					if timeDiff <= 0 || timeDiff > timeWindow {
						continue
					}
					ts := wp1.Timestamp
					if wp2.Timestamp < ts {
						ts = wp2.Timestamp
					}
					conflicts = append(conflicts, Conflict{
						Drone1ID:  traj1.DroneID(),
						Drone2ID:  traj2.DroneID(),
						Timestamp: ts,
						Distance:  distance,
						Position1: wp1,
						Position2: wp2,
						Severity:  temporalSeverity(timeDiff, timeWindow),
						Type:      ConflictTemporal,
					})
				}
			}
		}
	}

	return conflicts
}

// temporalSeverity grades a conflict by how small the time gap is relative
// to the window.
func temporalSeverity(timeDiff, timeWindow float64) Severity {
	if timeDiff < timeWindow*0.3 {
		return SeverityHigh
	}
	return SeverityMedium
}
