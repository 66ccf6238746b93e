package airspace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func conflictAt(d1, d2 string, ts float64, sev Severity, typ ConflictType) Conflict {
	return Conflict{Drone1ID: d1, Drone2ID: d2, Timestamp: ts, Severity: sev, Type: typ}
}

func TestMergeConflicts_Dedupes(t *testing.T) {
	spatial := []Conflict{
		conflictAt("a", "b", 1.01, SeverityHigh, ConflictSpatial),
		conflictAt("a", "b", 2.0, SeverityLow, ConflictSpatial),
	}
	temporal := []Conflict{
		// Same pair, same rounded timestamp, reversed IDs: duplicate.
		conflictAt("b", "a", 1.04, SeverityMedium, ConflictTemporal),
		conflictAt("a", "c", 1.0, SeverityMedium, ConflictTemporal),
	}

	merged := MergeConflicts(spatial, temporal)
	if len(merged) != 3 {
		t.Fatalf("merged %d conflicts, want 3: %+v", len(merged), merged)
	}
	// First occurrence wins.
	if merged[0].Severity != SeverityHigh || merged[0].Type != ConflictSpatial {
		t.Errorf("first occurrence did not win: %+v", merged[0])
	}
}

func TestMergeConflicts_Idempotent(t *testing.T) {
	input := []Conflict{
		conflictAt("a", "b", 1, SeverityHigh, ConflictSpatial),
		conflictAt("a", "b", 1.02, SeverityLow, ConflictTemporal),
		conflictAt("b", "c", 3, SeverityMedium, ConflictSpatial),
	}

	once := MergeConflicts(input)
	twice := MergeConflicts(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("merge is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestMergeConflicts_OrderIndependentSurvivorKeys(t *testing.T) {
	a := []Conflict{conflictAt("a", "b", 1, SeverityHigh, ConflictSpatial)}
	b := []Conflict{
		conflictAt("b", "a", 1, SeverityLow, ConflictTemporal),
		conflictAt("c", "d", 2, SeverityMedium, ConflictSpatial),
	}

	ab := MergeConflicts(a, b)
	ba := MergeConflicts(b, a)
	if len(ab) != len(ba) {
		t.Fatalf("survivor counts differ by input order: %d vs %d", len(ab), len(ba))
	}
	keys := func(cs []Conflict) map[mergeKey]struct{} {
		out := make(map[mergeKey]struct{})
		for _, c := range cs {
			out[keyFor(c)] = struct{}{}
		}
		return out
	}
	if diff := cmp.Diff(keys(ab), keys(ba), cmp.AllowUnexported(mergeKey{})); diff != "" {
		t.Errorf("survivor key sets differ by input order:\n%s", diff)
	}
}

func TestMergeConflicts_Empty(t *testing.T) {
	if got := MergeConflicts(); len(got) != 0 {
		t.Errorf("merging nothing produced %d conflicts", len(got))
	}
	if got := MergeConflicts(nil, nil); len(got) != 0 {
		t.Errorf("merging nil lists produced %d conflicts", len(got))
	}
}

func TestFilterBySeverity(t *testing.T) {
	conflicts := []Conflict{
		conflictAt("a", "b", 1, SeverityLow, ConflictSpatial),
		conflictAt("a", "b", 2, SeverityMedium, ConflictSpatial),
		conflictAt("a", "b", 3, SeverityHigh, ConflictTemporal),
	}

	tests := []struct {
		min  Severity
		want int
	}{
		{SeverityLow, 3},
		{SeverityMedium, 2},
		{SeverityHigh, 1},
	}
	for _, tc := range tests {
		got, err := FilterBySeverity(conflicts, tc.min)
		if err != nil {
			t.Fatalf("FilterBySeverity(%v) error: %v", tc.min, err)
		}
		if len(got) != tc.want {
			t.Errorf("FilterBySeverity(%v) kept %d, want %d", tc.min, len(got), tc.want)
		}
	}
}

func TestFilterBySeverity_HighSubsetOfLow(t *testing.T) {
	conflicts := []Conflict{
		conflictAt("a", "b", 1, SeverityLow, ConflictSpatial),
		conflictAt("c", "d", 2, SeverityHigh, ConflictTemporal),
	}
	high, err := FilterBySeverity(conflicts, SeverityHigh)
	if err != nil {
		t.Fatal(err)
	}
	low, err := FilterBySeverity(conflicts, SeverityLow)
	if err != nil {
		t.Fatal(err)
	}

	lowKeys := make(map[mergeKey]struct{})
	for _, c := range low {
		lowKeys[keyFor(c)] = struct{}{}
	}
	for _, c := range high {
		if _, ok := lowKeys[keyFor(c)]; !ok {
			t.Errorf("high-severity result %+v is not in the low-severity result", c)
		}
	}
}

func TestFilterBySeverity_InvalidArgument(t *testing.T) {
	if _, err := FilterBySeverity(nil, Severity(99)); err == nil {
		t.Error("unrecognized severity did not fail")
	}
}
