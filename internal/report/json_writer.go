package report

import (
	"encoding/json"
	"os"
	"time"

	"drone-deconflict/internal/airspace"
)

// Summary counts conflicts per severity and detector type.
type Summary struct {
	TotalConflicts int `json:"total_conflicts"`
	HighSeverity   int `json:"high_severity"`
	MediumSeverity int `json:"medium_severity"`
	LowSeverity    int `json:"low_severity"`
	Spatial        int `json:"spatial"`
	Temporal       int `json:"temporal"`
}

// Document is the JSON report written after a run: the full conflict
// list plus a severity summary and distance statistics.
type Document struct {
	RunID       string              `json:"run_id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Summary     Summary             `json:"summary"`
	Stats       *Stats              `json:"stats,omitempty"`
	Conflicts   []airspace.Conflict `json:"conflicts"`
}

// NewDocument assembles a report document for a completed run.
func NewDocument(runID string, conflicts []airspace.Conflict) Document {
	doc := Document{
		RunID:       runID,
		GeneratedAt: time.Now().UTC(),
		Conflicts:   conflicts,
	}
	doc.Summary.TotalConflicts = len(conflicts)
	for _, c := range conflicts {
		switch c.Severity {
		case airspace.SeverityHigh:
			doc.Summary.HighSeverity++
		case airspace.SeverityMedium:
			doc.Summary.MediumSeverity++
		case airspace.SeverityLow:
			doc.Summary.LowSeverity++
		}
		switch c.Type {
		case airspace.ConflictSpatial:
			doc.Summary.Spatial++
		case airspace.ConflictTemporal:
			doc.Summary.Temporal++
		}
	}
	doc.Stats = ComputeStats(conflicts)
	return doc
}

// WriteFile writes the document as indented JSON.
func (d Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadDocument reads a previously written report document.
func LoadDocument(path string) (Document, error) {
	var doc Document
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, err
	}
	return doc, nil
}
