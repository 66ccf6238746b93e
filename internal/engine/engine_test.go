package engine

import (
	"context"
	"testing"

	"drone-deconflict/internal/airspace"
	"drone-deconflict/internal/config"
	"drone-deconflict/internal/mission"
)

// MockWriter collects conflicts for validation.
type MockWriter struct {
	Conflicts []airspace.Conflict
	Batches   int
}

func (w *MockWriter) Write(c airspace.Conflict) error {
	w.Conflicts = append(w.Conflicts, c)
	return nil
}

func (w *MockWriter) WriteBatch(conflicts []airspace.Conflict) error {
	w.Batches++
	w.Conflicts = append(w.Conflicts, conflicts...)
	return nil
}

func TestEngine_RunDemoMission(t *testing.T) {
	writer := &MockWriter{}
	eng := New("", config.Default(), mission.BuiltIn(), writer)

	result, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// Alpha and Beta converge on (50, 25) one second apart, so both
	// detectors must fire.
	if result.SpatialCount == 0 {
		t.Error("no spatial conflicts found in the demo mission")
	}
	if result.TemporalCount == 0 {
		t.Error("no temporal conflicts found in the demo mission")
	}
	if len(result.Conflicts) == 0 {
		t.Fatal("no conflicts reported after merge/filter")
	}
	if result.RunID == "" {
		t.Error("run ID is empty")
	}
	if writer.Batches != 1 || len(writer.Conflicts) != len(result.Conflicts) {
		t.Errorf("writer got %d conflicts in %d batches, want %d in 1",
			len(writer.Conflicts), writer.Batches, len(result.Conflicts))
	}
}

func TestEngine_MergedOutputIsDeduped(t *testing.T) {
	eng := New("", config.Default(), mission.BuiltIn(), nil)
	result, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if got := airspace.MergeConflicts(result.Conflicts); len(got) != len(result.Conflicts) {
		t.Errorf("reported conflicts still contain duplicates: %d vs %d", len(got), len(result.Conflicts))
	}
}

func TestEngine_SeverityFilterApplied(t *testing.T) {
	cfg := config.Default()
	cfg.MinSeverity = airspace.SeverityHigh.String()

	eng := New("", cfg, mission.BuiltIn(), nil)
	result, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	for _, c := range result.Conflicts {
		if c.Severity != airspace.SeverityHigh {
			t.Errorf("conflict below min severity leaked through: %+v", c)
		}
	}
}

func TestEngine_NoConflictsForSeparatedTraffic(t *testing.T) {
	far1, err := airspace.NewTrajectory("far-1", []airspace.Waypoint{
		{X: 0, Y: 0, Z: 100, Timestamp: 0},
		{X: 10, Y: 0, Z: 100, Timestamp: 10},
	})
	if err != nil {
		t.Fatal(err)
	}
	far2, err := airspace.NewTrajectory("far-2", []airspace.Waypoint{
		{X: 0, Y: 10000, Z: 100, Timestamp: 0},
		{X: 10, Y: 10000, Z: 100, Timestamp: 10},
	})
	if err != nil {
		t.Fatal(err)
	}

	writer := &MockWriter{}
	eng := New("", config.Default(), []*airspace.Trajectory{far1, far2}, writer)
	result, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(result.Conflicts) != 0 {
		t.Errorf("separated traffic produced %d conflicts", len(result.Conflicts))
	}
}
