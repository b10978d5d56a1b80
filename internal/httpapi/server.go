package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/serviceprobe/internal/domain"
	"github.com/hamed0406/serviceprobe/internal/repo"
)

// Driver executes one run for a spec; satisfied by runner.Runner.
type Driver interface {
	Execute(ctx context.Context, spec domain.RunSpec) (*domain.RunRecord, error)
}

// ReadyChecker is the probe's pre-flight; satisfied by probe.Probe.
type ReadyChecker interface {
	ReadinessCheck(ctx context.Context) error
}

type Server struct {
	Logger *zap.Logger
	Specs  repo.SpecStore
	Runs   repo.RunStore
	Driver Driver
	Ready  ReadyChecker
}

func NewServer(l *zap.Logger, specs repo.SpecStore, runs repo.RunStore, d Driver, ready ReadyChecker) *Server {
	return &Server{Logger: l, Specs: specs, Runs: runs, Driver: d, Ready: ready}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/readiness", s.handleReadiness)
	r.Get("/api/specs", s.handleListSpecs)
	r.Post("/api/specs", s.handleAddSpec)
	r.Get("/api/runs", s.handleListRuns)
	r.Get("/api/runs/last", s.handleLastRun)
	r.Post("/api/runs", s.handleExecuteRun)

	return r
}

type specPayload struct {
	TestID string `json:"test_id"`
	Path   string `json:"path"`
	Query  string `json:"query"`
	Match  string `json:"match"`
}

func (p specPayload) valid() bool {
	return strings.TrimSpace(p.TestID) != "" && strings.TrimSpace(p.Path) != ""
}

func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")
	if err := s.Ready.ReadinessCheck(ctx); err != nil {
		s.Logger.Warn("readiness_failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]any{"ready": false, "error": err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"ready": true})
}

func (s *Server) handleAddSpec(w http.ResponseWriter, r *http.Request) {
	var p specPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || !p.valid() {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}

	spec := &domain.RunSpec{
		TestID:    p.TestID,
		Path:      p.Path,
		Query:     p.Query,
		Match:     p.Match,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Specs.Add(r.Context(), spec); err != nil {
		http.Error(w, "could not add", http.StatusInternalServerError)
		return
	}

	s.Logger.Info("spec_added",
		zap.String("test_id", spec.TestID),
		zap.String("path", spec.Path),
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(spec)
}

func (s *Server) handleListSpecs(w http.ResponseWriter, r *http.Request) {
	specs, err := s.Specs.List(r.Context())
	if err != nil {
		http.Error(w, "list error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(specs)
}

func (s *Server) handleExecuteRun(w http.ResponseWriter, r *http.Request) {
	var p specPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || !p.valid() {
		http.Error(w, "bad payload", http.StatusBadRequest)
		return
	}

	rec, err := s.Driver.Execute(r.Context(), domain.RunSpec{
		TestID: p.TestID,
		Path:   p.Path,
		Query:  p.Query,
		Match:  p.Match,
	})
	if err != nil {
		s.Logger.Warn("run_execute_error",
			zap.String("test_id", p.TestID),
			zap.Error(err),
		)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}

func (s *Server) handleLastRun(w http.ResponseWriter, r *http.Request) {
	testID := strings.TrimSpace(r.URL.Query().Get("test_id"))
	if testID == "" {
		http.Error(w, "test_id required", http.StatusBadRequest)
		return
	}
	rec, err := s.Runs.LastByTest(r.Context(), testID)
	if err != nil {
		http.Error(w, "lookup error", http.StatusInternalServerError)
		return
	}
	if rec == nil {
		http.Error(w, "no runs for test", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.Runs.Runs(r.Context())
	if err != nil {
		http.Error(w, "list error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(runs)
}
