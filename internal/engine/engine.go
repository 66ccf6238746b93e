// Engine orchestrating detection passes over a trajectory set.
package engine

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"drone-deconflict/internal/airspace"
	"drone-deconflict/internal/config"
	"drone-deconflict/internal/logging"
)

// ConflictWriter receives the final conflict set of a run.
type ConflictWriter interface {
	Write(airspace.Conflict) error
}

// Optional: writers may support batch mode.
type batchWriter interface {
	WriteBatch([]airspace.Conflict) error
}

// Result summarizes a completed detection run.
type Result struct {
	RunID         string
	SpatialCount  int // raw detector output before merging
	TemporalCount int
	Conflicts     []airspace.Conflict // merged and severity-filtered
}

// Engine runs the spatial and temporal detectors over one trajectory set
// and writes the merged, filtered conflicts.
type Engine struct {
	runID        string
	cfg          *config.DetectionConfig
	trajectories []*airspace.Trajectory
	writer       ConflictWriter
}

// New creates an engine for one detection run. An empty runID gets a
// generated UUID; writer may be nil when the caller only wants the Result.
func New(runID string, cfg *config.DetectionConfig, trajectories []*airspace.Trajectory, writer ConflictWriter) *Engine {
	if runID == "" {
		runID = uuid.New().String()
	}
	return &Engine{
		runID:        runID,
		cfg:          cfg,
		trajectories: trajectories,
		writer:       writer,
	}
}

// RunID returns the identifier assigned to this run.
func (e *Engine) RunID() string { return e.runID }

// Run executes both detector passes, merges and filters their output, and
// writes the result. The passes are independent and read-only over the
// trajectory set, so they run concurrently.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	log := logging.FromContext(ctx).With(slog.String("run_id", e.runID))
	log.Info("starting detection run",
		slog.Int("trajectories", len(e.trajectories)),
		slog.Float64("spatial_min_separation_m", e.cfg.Spatial.MinSeparationM),
		slog.Float64("temporal_window_s", e.cfg.Temporal.TimeWindowS))

	var spatial, temporal []airspace.Conflict
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		spatial = airspace.DetectSpatialConflicts(e.trajectories,
			e.cfg.Spatial.MinSeparationM, e.cfg.Spatial.TimeResolutionS)
		return nil
	})
	g.Go(func() error {
		temporal = airspace.DetectTemporalConflicts(e.trajectories,
			e.cfg.Temporal.TimeWindowS, e.cfg.Temporal.MinSeparationM)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := airspace.MergeConflicts(spatial, temporal)
	filtered, err := airspace.FilterBySeverity(merged, e.cfg.Severity())
	if err != nil {
		return nil, err
	}

	log.Info("detection finished",
		slog.Int("spatial", len(spatial)),
		slog.Int("temporal", len(temporal)),
		slog.Int("merged", len(merged)),
		slog.Int("reported", len(filtered)))

	if e.writer != nil {
		if err := e.writeConflicts(filtered); err != nil {
			return nil, err
		}
	}

	return &Result{
		RunID:         e.runID,
		SpatialCount:  len(spatial),
		TemporalCount: len(temporal),
		Conflicts:     filtered,
	}, nil
}

func (e *Engine) writeConflicts(conflicts []airspace.Conflict) error {
	if bw, ok := e.writer.(batchWriter); ok {
		return bw.WriteBatch(conflicts)
	}
	for _, c := range conflicts {
		if err := e.writer.Write(c); err != nil {
			return err
		}
	}
	return nil
}
