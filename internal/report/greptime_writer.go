package report

import (
	"context"
	"log"
	"net"
	"strconv"
	"time"

	gpb "github.com/GreptimeTeam/greptime-proto/go/greptime/v1"
	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"

	"drone-deconflict/internal/airspace"
)

// greptimeClient abstracts the ingester client for testing.
type greptimeClient interface {
	Write(ctx context.Context, tables ...*table.Table) (*gpb.GreptimeResponse, error)
}

// GreptimeWriter writes detected conflicts to GreptimeDB via the ingester
// client, tagged with the run ID so multiple analysis runs can coexist in
// one table.
type GreptimeWriter struct {
	client greptimeClient
	table  string
	runID  string
}

// NewGreptimeWriter creates a GreptimeDB writer. endpoint is "host" or
// "host:port"; the port defaults to the ingester's gRPC port 4001.
func NewGreptimeWriter(endpoint, database, runID string) (*GreptimeWriter, error) {
	host, port := endpoint, 4001
	if h, p, err := net.SplitHostPort(endpoint); err == nil {
		if n, err := strconv.Atoi(p); err == nil {
			host, port = h, n
		}
	}

	cfg := greptime.NewConfig(host).WithPort(port).WithDatabase(database)
	client, err := greptime.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	return &GreptimeWriter{
		client: client,
		table:  "drone_conflicts",
		runID:  runID,
	}, nil
}

// Write inserts a single conflict row.
func (w *GreptimeWriter) Write(c airspace.Conflict) error {
	return w.WriteBatch([]airspace.Conflict{c})
}

// WriteBatch inserts multiple conflict rows.
func (w *GreptimeWriter) WriteBatch(conflicts []airspace.Conflict) error {
	if len(conflicts) == 0 {
		return nil
	}

	tbl, err := table.New(w.table)
	if err != nil {
		return err
	}
	if err := tbl.AddTagColumn("run_id", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddTagColumn("drone1_id", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddTagColumn("drone2_id", types.STRING); err != nil {
		return err
	}
	for _, col := range []string{"mission_ts", "distance", "x1", "y1", "z1", "x2", "y2", "z2"} {
		if err := tbl.AddFieldColumn(col, types.FLOAT); err != nil {
			return err
		}
	}
	if err := tbl.AddFieldColumn("severity", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddFieldColumn("conflict_type", types.STRING); err != nil {
		return err
	}
	if err := tbl.AddTimestampColumn("ts", types.TIMESTAMP_MILLISECOND); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, c := range conflicts {
		err := tbl.AddRow(
			w.runID, c.Drone1ID, c.Drone2ID,
			c.Timestamp, c.Distance,
			c.Position1.X, c.Position1.Y, c.Position1.Z,
			c.Position2.X, c.Position2.Y, c.Position2.Z,
			c.Severity.String(), string(c.Type),
			now,
		)
		if err != nil {
			return err
		}
	}

	if _, err := w.client.Write(context.Background(), tbl); err != nil {
		log.Printf("[GreptimeWriter] Write failed: %v", err)
		return err
	}

	log.Printf("[GreptimeWriter] wrote %d conflict rows", len(conflicts))
	return nil
}
