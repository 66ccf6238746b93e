package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"drone-deconflict/internal/airspace"
)

// Stats summarizes the separation distances of a conflict set.
type Stats struct {
	Count          int     `json:"count"`
	MinDistance    float64 `json:"min_distance"`
	MaxDistance    float64 `json:"max_distance"`
	MeanDistance   float64 `json:"mean_distance"`
	MedianDistance float64 `json:"median_distance"`
	StdDevDistance float64 `json:"stddev_distance"`
}

// ComputeStats returns distance statistics for the given conflicts, or
// nil when there are none.
func ComputeStats(conflicts []airspace.Conflict) *Stats {
	if len(conflicts) == 0 {
		return nil
	}

	distances := make([]float64, len(conflicts))
	for i, c := range conflicts {
		distances[i] = c.Distance
	}
	sort.Float64s(distances)

	s := &Stats{
		Count:          len(distances),
		MinDistance:    distances[0],
		MaxDistance:    distances[len(distances)-1],
		MeanDistance:   stat.Mean(distances, nil),
		MedianDistance: stat.Quantile(0.5, stat.Empirical, distances, nil),
	}
	if len(distances) > 1 {
		s.StdDevDistance = stat.StdDev(distances, nil)
	}
	return s
}
