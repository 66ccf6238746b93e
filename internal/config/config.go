// YAML config loader with CUE validation integration
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"drone-deconflict/internal/airspace"
)

// Spatial holds parameters for the synchronized spatial detector.
type Spatial struct {
	MinSeparationM  float64 `yaml:"min_separation_m"`
	TimeResolutionS float64 `yaml:"time_resolution_s"`
}

// Temporal holds parameters for the schedule-offset temporal detector.
type Temporal struct {
	MinSeparationM float64 `yaml:"min_separation_m"`
	TimeWindowS    float64 `yaml:"time_window_s"`
}

// DetectionConfig is the root configuration for a deconfliction run.
type DetectionConfig struct {
	Spatial     Spatial  `yaml:"spatial"`
	Temporal    Temporal `yaml:"temporal"`
	MinSeverity string   `yaml:"min_severity"`
}

// Default returns the detection parameters used when no config is given.
func Default() *DetectionConfig {
	return &DetectionConfig{
		Spatial:     Spatial{MinSeparationM: 30, TimeResolutionS: 0.5},
		Temporal:    Temporal{MinSeparationM: 50, TimeWindowS: 15},
		MinSeverity: airspace.SeverityLow.String(),
	}
}

// Load loads YAML config and validates it against a CUE schema. Fields
// left unset fall back to Default values.
func Load(configPath, cueSchemaPath string) (*DetectionConfig, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks parameter ranges the schema cannot fully express.
func (c *DetectionConfig) Validate() error {
	if c.Spatial.MinSeparationM <= 0 {
		return fmt.Errorf("spatial.min_separation_m must be positive, got %v", c.Spatial.MinSeparationM)
	}
	if c.Spatial.TimeResolutionS <= 0 {
		return fmt.Errorf("spatial.time_resolution_s must be positive, got %v", c.Spatial.TimeResolutionS)
	}
	if c.Temporal.MinSeparationM <= 0 {
		return fmt.Errorf("temporal.min_separation_m must be positive, got %v", c.Temporal.MinSeparationM)
	}
	if c.Temporal.TimeWindowS < 0 {
		return fmt.Errorf("temporal.time_window_s must not be negative, got %v", c.Temporal.TimeWindowS)
	}
	if _, err := airspace.ParseSeverity(c.MinSeverity); err != nil {
		return fmt.Errorf("min_severity: %w", err)
	}
	return nil
}

// Severity returns the parsed minimum severity. Validate must have
// succeeded first.
func (c *DetectionConfig) Severity() airspace.Severity {
	sev, _ := airspace.ParseSeverity(c.MinSeverity)
	return sev
}
