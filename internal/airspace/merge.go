package airspace

import (
	"fmt"
	"math"
)

// mergeKey identifies conflicts considered duplicates: same unordered
// drone pair at the same moment, with timestamps rounded to one decimal
// so near-simultaneous reports from different detectors collapse.
type mergeKey struct {
	droneA, droneB string
	tsTenths       int64
}

func keyFor(c Conflict) mergeKey {
	a, b := c.Drone1ID, c.Drone2ID
	if b < a {
		a, b = b, a
	}
	return mergeKey{droneA: a, droneB: b, tsTenths: int64(math.Round(c.Timestamp * 10))}
}

// MergeConflicts concatenates the given conflict lists and drops
// duplicates. The first conflict seen under a key wins regardless of which
// detector produced it or how severities differ; the key alone determines
// survivors, so the result set is the same for any input ordering.
func MergeConflicts(lists ...[]Conflict) []Conflict {
	var merged []Conflict
	seen := make(map[mergeKey]struct{})

	for _, list := range lists {
		for _, c := range list {
			key := keyFor(c)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, c)
		}
	}

	return merged
}

// FilterBySeverity keeps conflicts at or above the given minimum severity.
// An unrecognized severity value is an invalid argument.
func FilterBySeverity(conflicts []Conflict, min Severity) ([]Conflict, error) {
	if _, ok := severityNames[min]; !ok {
		return nil, fmt.Errorf("invalid minimum severity %d", int(min))
	}

	var kept []Conflict
	for _, c := range conflicts {
		if c.Severity >= min {
			kept = append(kept, c)
		}
	}
	return kept, nil
}
