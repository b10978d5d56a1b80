package domain

import "time"

type SpecID string

// RunSpec describes one test a probe can execute: which path to fetch on
// the target and which string the response body must contain to pass.
type RunSpec struct {
	ID        SpecID    `json:"id"`
	TestID    string    `json:"test_id"`
	Path      string    `json:"path"`
	Query     string    `json:"query,omitempty"`
	Match     string    `json:"match"`
	CreatedAt time.Time `json:"created_at"`
}

// RunRecord is the stored outcome of one completed run.
type RunRecord struct {
	ID         int64     `json:"id"`
	TestID     string    `json:"test_id"`
	Path       string    `json:"path"`
	Query      string    `json:"query,omitempty"`
	StartedMS  int64     `json:"started_ms"`
	Passed     bool      `json:"passed"`
	ResultKey  string    `json:"result_key"`
	BodyBytes  int       `json:"body_bytes"`
	LatencyMS  float64   `json:"latency_ms"`
	Reason     string    `json:"reason,omitempty"`
	FinishedAt time.Time `json:"finished_at"`
}
