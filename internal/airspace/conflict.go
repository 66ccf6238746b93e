package airspace

import (
	"encoding/json"
	"fmt"
)

// Severity classifies how serious a conflict is. Values are ordered:
// SeverityLow < SeverityMedium < SeverityHigh.
type Severity int

// Severity levels, lowest first.
const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

var severityNames = map[Severity]string{
	SeverityLow:    "low",
	SeverityMedium: "medium",
	SeverityHigh:   "high",
}

// ParseSeverity converts a severity name to its Severity value.
func ParseSeverity(s string) (Severity, error) {
	for sev, name := range severityNames {
		if name == s {
			return sev, nil
		}
	}
	return 0, fmt.Errorf("unknown severity %q", s)
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// MarshalJSON encodes the severity as its lowercase name.
func (s Severity) MarshalJSON() ([]byte, error) {
	name, ok := severityNames[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal unknown severity %d", int(s))
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a severity from its lowercase name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	sev, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}

// ConflictType tags which detector produced a conflict.
type ConflictType string

// Conflict types. ConflictAltitude is declared for completeness of the
// record format; no altitude detector exists.
const (
	ConflictSpatial  ConflictType = "spatial"
	ConflictTemporal ConflictType = "temporal"
	ConflictAltitude ConflictType = "altitude"
)

// Conflict records a detected proximity or timing violation between two
// drones. The ID pair is logically unordered. Conflicts are never mutated
// after creation; those from different detectors are interchangeable in
// the set operations.
type Conflict struct {
	Drone1ID  string       `json:"drone1_id"`
	Drone2ID  string       `json:"drone2_id"`
	Timestamp float64      `json:"timestamp"`
	Distance  float64      `json:"distance"`
	Position1 Waypoint     `json:"position1"`
	Position2 Waypoint     `json:"position2"`
	Severity  Severity     `json:"severity"`
	Type      ConflictType `json:"conflict_type"`
}
