package main

import (
	"os"

	"drone-deconflict/internal/report"
)

// newConflictWriter chooses where detected conflicts go. Colored terminal
// output by default, plain JSON lines with --plain, and a GreptimeDB writer
// fanned in when GREPTIMEDB_ENDPOINT is set.
func newConflictWriter(plain bool, runID string) (report.ConflictWriter, error) {
	var base report.ConflictWriter
	if plain {
		base = report.NewStdoutWriter()
	} else {
		base = report.NewColorWriter()
	}

	endpoint := os.Getenv("GREPTIMEDB_ENDPOINT")
	if endpoint == "" {
		return base, nil
	}

	database := os.Getenv("GREPTIMEDB_DATABASE")
	if database == "" {
		database = "public"
	}
	gw, err := report.NewGreptimeWriter(endpoint, database, runID)
	if err != nil {
		return nil, err
	}
	return report.NewMultiWriter(base, gw), nil
}
