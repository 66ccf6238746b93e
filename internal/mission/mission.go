// Mission file loading for trajectory deconfliction.
package mission

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"drone-deconflict/internal/airspace"
)

// File is the on-disk mission format: a map from drone ID to its raw
// waypoint list.
//
//	{
//	  "drones": {
//	    "drone-1": [
//	      {"x": 0, "y": 0, "z": 100, "timestamp": 0},
//	      {"x": 100, "y": 50, "z": 120, "timestamp": 10}
//	    ]
//	  }
//	}
type File struct {
	Drones map[string][]airspace.Waypoint `json:"drones"`
}

// Load reads a mission JSON file and builds validated trajectories,
// ordered by drone ID.
func Load(path string) ([]*airspace.Trajectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mission %s: %w", path, err)
	}
	trajs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("mission %s: %w", path, err)
	}
	return trajs, nil
}

// Parse decodes mission JSON and builds validated trajectories.
// Trajectory validation failures (too few waypoints, duplicate
// timestamps) surface immediately with the offending drone ID.
func Parse(data []byte) ([]*airspace.Trajectory, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse mission: %w", err)
	}

	ids := make([]string, 0, len(f.Drones))
	for id := range f.Drones {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var trajs []*airspace.Trajectory
	for _, id := range ids {
		traj, err := airspace.NewTrajectory(id, f.Drones[id])
		if err != nil {
			return nil, err
		}
		trajs = append(trajs, traj)
	}
	return trajs, nil
}

// LoadAll loads and combines several mission files into one trajectory
// set, e.g. a primary mission plus simulated background traffic.
func LoadAll(paths ...string) ([]*airspace.Trajectory, error) {
	var all []*airspace.Trajectory
	seen := make(map[string]struct{})
	for _, path := range paths {
		trajs, err := Load(path)
		if err != nil {
			return nil, err
		}
		for _, traj := range trajs {
			if _, dup := seen[traj.DroneID()]; dup {
				return nil, fmt.Errorf("mission %s: drone %s already defined in an earlier file", path, traj.DroneID())
			}
			seen[traj.DroneID()] = struct{}{}
		}
		all = append(all, trajs...)
	}
	return all, nil
}
