package config

import (
	"os"
	"path/filepath"
	"testing"

	"drone-deconflict/internal/airspace"
)

const testSchema = `
spatial?: {
	min_separation_m?:  number & >0
	time_resolution_s?: number & >0
}
temporal?: {
	min_separation_m?: number & >0
	time_window_s?:    number & >=0
}
min_severity?: "low" | "medium" | "high"
`

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	cfgPath := writeTemp(t, "detection.yaml", `
spatial:
  min_separation_m: 40
  time_resolution_s: 1.0
temporal:
  min_separation_m: 60
  time_window_s: 20
min_severity: medium
`)
	schemaPath := writeTemp(t, "detection.cue", testSchema)

	cfg, err := Load(cfgPath, schemaPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Spatial.MinSeparationM != 40 || cfg.Spatial.TimeResolutionS != 1.0 {
		t.Errorf("unexpected spatial config: %+v", cfg.Spatial)
	}
	if cfg.Temporal.MinSeparationM != 60 || cfg.Temporal.TimeWindowS != 20 {
		t.Errorf("unexpected temporal config: %+v", cfg.Temporal)
	}
	if cfg.Severity() != airspace.SeverityMedium {
		t.Errorf("Severity() = %v, want medium", cfg.Severity())
	}
}

func TestLoadConfig_DefaultsApplied(t *testing.T) {
	cfgPath := writeTemp(t, "detection.yaml", `
spatial:
  min_separation_m: 100
`)
	schemaPath := writeTemp(t, "detection.cue", testSchema)

	cfg, err := Load(cfgPath, schemaPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Spatial.MinSeparationM != 100 {
		t.Errorf("explicit value lost: %+v", cfg.Spatial)
	}
	if cfg.Spatial.TimeResolutionS != 0.5 {
		t.Errorf("time_resolution_s default not applied: %v", cfg.Spatial.TimeResolutionS)
	}
	if cfg.Temporal.TimeWindowS != 15 {
		t.Errorf("time_window_s default not applied: %v", cfg.Temporal.TimeWindowS)
	}
	if cfg.MinSeverity != "low" {
		t.Errorf("min_severity default not applied: %q", cfg.MinSeverity)
	}
}

func TestLoadConfig_SchemaRejectsBadSeverity(t *testing.T) {
	cfgPath := writeTemp(t, "detection.yaml", `min_severity: catastrophic`)
	schemaPath := writeTemp(t, "detection.cue", testSchema)

	if _, err := Load(cfgPath, schemaPath); err == nil {
		t.Error("Load accepted a severity outside the schema enum")
	}
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DetectionConfig)
	}{
		{"zero spatial separation", func(c *DetectionConfig) { c.Spatial.MinSeparationM = 0 }},
		{"negative resolution", func(c *DetectionConfig) { c.Spatial.TimeResolutionS = -1 }},
		{"zero temporal separation", func(c *DetectionConfig) { c.Temporal.MinSeparationM = 0 }},
		{"negative window", func(c *DetectionConfig) { c.Temporal.TimeWindowS = -5 }},
		{"bad severity", func(c *DetectionConfig) { c.MinSeverity = "severe" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate accepted invalid config")
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}
