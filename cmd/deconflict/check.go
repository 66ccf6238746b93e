package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"drone-deconflict/internal/airspace"
	"drone-deconflict/internal/config"
	"drone-deconflict/internal/engine"
	"drone-deconflict/internal/logging"
	"drone-deconflict/internal/mission"
	"drone-deconflict/internal/report"
)

var (
	checkConfigPath  string
	checkSchemaPath  string
	checkMissions    []string
	checkOutputPath  string
	checkChartPath   string
	checkMinSeverity string
	checkPlain       bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check mission files for flight-plan conflicts",
	Long:  "check loads one or more mission files, runs the spatial and temporal detectors, and reports the merged conflicts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(checkMissions) == 0 {
			return fmt.Errorf("at least one --mission file is required")
		}
		cfg, err := loadDetectionConfig()
		if err != nil {
			return err
		}
		trajectories, err := mission.LoadAll(checkMissions...)
		if err != nil {
			return err
		}
		_, err = runDetection(cmd, cfg, trajectories)
		return err
	},
}

func init() {
	addRunFlags(checkCmd)
	checkCmd.Flags().StringArrayVar(&checkMissions, "mission", nil, "Mission file with drone flight plans (repeatable)")
}

// addRunFlags registers the flags shared by every command that executes a
// detection run.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&checkConfigPath, "config", "", "Path to detection configuration YAML (defaults apply when omitted)")
	cmd.Flags().StringVar(&checkSchemaPath, "schema", "schemas/detection.cue", "Path to CUE schema file")
	cmd.Flags().StringVar(&checkOutputPath, "output", "", "Write the full report document as JSON to this path")
	cmd.Flags().StringVar(&checkChartPath, "chart", "", "Write an interactive 3D chart as HTML to this path")
	cmd.Flags().StringVar(&checkMinSeverity, "min-severity", "", "Override the configured minimum severity (low, medium, high)")
	cmd.Flags().BoolVar(&checkPlain, "plain", false, "Print conflicts as plain JSON lines instead of colored text")
}

// loadDetectionConfig resolves the effective configuration: file when given,
// built-in defaults otherwise, with an optional severity override.
func loadDetectionConfig() (*config.DetectionConfig, error) {
	cfg := config.Default()
	if checkConfigPath != "" {
		loaded, err := config.Load(checkConfigPath, checkSchemaPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if checkMinSeverity != "" {
		if _, err := airspace.ParseSeverity(checkMinSeverity); err != nil {
			return nil, err
		}
		cfg.MinSeverity = checkMinSeverity
	}
	return cfg, nil
}

// runDetection executes one detection run over the given trajectories and
// handles the optional report and chart exports.
func runDetection(cmd *cobra.Command, cfg *config.DetectionConfig, trajectories []*airspace.Trajectory) (*engine.Result, error) {
	runID := uuid.NewString()
	writer, err := newConflictWriter(checkPlain, runID)
	if err != nil {
		return nil, err
	}

	eng := engine.New(runID, cfg, trajectories, writer)
	ctx := logging.NewContext(cmd.Context(), logging.New())
	result, err := eng.Run(ctx)
	if err != nil {
		return nil, err
	}

	if checkOutputPath != "" {
		doc := report.NewDocument(result.RunID, result.Conflicts)
		if err := doc.WriteFile(checkOutputPath); err != nil {
			return nil, err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", checkOutputPath)
	}
	if checkChartPath != "" {
		if err := report.WriteChartFile(checkChartPath, trajectories, result.Conflicts); err != nil {
			return nil, err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "chart written to %s\n", checkChartPath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d conflicts (%d spatial, %d temporal before merge)\n",
		result.RunID, len(result.Conflicts), result.SpatialCount, result.TemporalCount)
	return result, nil
}
