// HTTP server exposing the results of a detection run.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"drone-deconflict/internal/airspace"
	"drone-deconflict/internal/report"
)

//go:embed templates/index.html
var content embed.FS

// Server serves a completed analysis: summary page, conflict JSON with
// severity filtering, sampled trajectories, and the 3D chart.
type Server struct {
	doc          report.Document
	trajectories []*airspace.Trajectory
	tpl          *template.Template
}

// NewServer creates a result server for one finished run.
func NewServer(doc report.Document, trajectories []*airspace.Trajectory) *Server {
	tpl := template.Must(template.New("index.html").ParseFS(content, "templates/index.html"))
	return &Server{doc: doc, trajectories: trajectories, tpl: tpl}
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/conflicts", s.handleConflicts)
	mux.HandleFunc("/trajectories", s.handleTrajectories)
	mux.HandleFunc("/chart", s.handleChart)
	return mux
}

// Start runs the server until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.routes()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()
	return srv.ListenAndServe()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		RunID     string
		Summary   report.Summary
		Stats     *report.Stats
		Drones    int
		Conflicts []airspace.Conflict
	}{
		RunID:     s.doc.RunID,
		Summary:   s.doc.Summary,
		Stats:     s.doc.Stats,
		Drones:    len(s.trajectories),
		Conflicts: s.doc.Conflicts,
	}
	s.tpl.Execute(w, data)
}

// handleConflicts returns the conflict list, optionally filtered by a
// min_severity query parameter.
func (s *Server) handleConflicts(w http.ResponseWriter, r *http.Request) {
	conflicts := s.doc.Conflicts
	if minStr := r.URL.Query().Get("min_severity"); minStr != "" {
		min, err := airspace.ParseSeverity(minStr)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		conflicts, err = airspace.FilterBySeverity(conflicts, min)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(conflicts)
}

// trajectoryPath is the sampled path of one drone for the JSON endpoint.
type trajectoryPath struct {
	DroneID string              `json:"drone_id"`
	Points  []airspace.Waypoint `json:"points"`
}

func (s *Server) handleTrajectories(w http.ResponseWriter, r *http.Request) {
	paths := make([]trajectoryPath, 0, len(s.trajectories))
	for _, traj := range s.trajectories {
		paths = append(paths, trajectoryPath{DroneID: traj.DroneID(), Points: traj.Sample(100)})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(paths)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.RenderChart(w, s.trajectories, s.doc.Conflicts); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
