package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/hamed0406/serviceprobe/internal/domain"
	"github.com/hamed0406/serviceprobe/internal/repo"
)

var _ repo.SpecStore = (*Store)(nil)
var _ repo.RunStore = (*Store)(nil)

type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func New(ctx context.Context, dsn string, log *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Store{pool: pool, log: log}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// ---- SpecStore ----

func (s *Store) Add(ctx context.Context, sp *domain.RunSpec) error {
	if sp.ID == "" {
		sp.ID = domain.SpecID(time.Now().UTC().Format("20060102T150405.000000000"))
	}
	if sp.CreatedAt.IsZero() {
		sp.CreatedAt = time.Now().UTC()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO specs (id, test_id, path, query, match, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (id) DO NOTHING`,
		sp.ID, sp.TestID, sp.Path, sp.Query, sp.Match, sp.CreatedAt)
	return err
}

func (s *Store) List(ctx context.Context) ([]domain.RunSpec, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, test_id, path, query, match, created_at FROM specs ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.RunSpec
	for rows.Next() {
		var sp domain.RunSpec
		if err := rows.Scan(&sp.ID, &sp.TestID, &sp.Path, &sp.Query, &sp.Match, &sp.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

// ---- RunStore ----

func (s *Store) Append(ctx context.Context, r *domain.RunRecord) error {
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now().UTC()
	}
	row := s.pool.QueryRow(ctx,
		`INSERT INTO runs (test_id, path, query, started_ms, passed, result_key, body_bytes, latency_ms, reason, finished_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 RETURNING id`,
		r.TestID, r.Path, r.Query, r.StartedMS, r.Passed, r.ResultKey,
		r.BodyBytes, r.LatencyMS, r.Reason, r.FinishedAt)
	return row.Scan(&r.ID)
}

func (s *Store) Runs(ctx context.Context) ([]domain.RunRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, test_id, path, query, started_ms, passed, result_key, body_bytes, latency_ms, reason, finished_at
		   FROM runs ORDER BY finished_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.RunRecord
	for rows.Next() {
		var r domain.RunRecord
		if err := rows.Scan(&r.ID, &r.TestID, &r.Path, &r.Query, &r.StartedMS, &r.Passed,
			&r.ResultKey, &r.BodyBytes, &r.LatencyMS, &r.Reason, &r.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) LastByTest(ctx context.Context, testID string) (*domain.RunRecord, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, test_id, path, query, started_ms, passed, result_key, body_bytes, latency_ms, reason, finished_at
		   FROM runs
		  WHERE test_id = $1
		  ORDER BY finished_at DESC
		  LIMIT 1`, testID)
	var r domain.RunRecord
	err := row.Scan(&r.ID, &r.TestID, &r.Path, &r.Query, &r.StartedMS, &r.Passed,
		&r.ResultKey, &r.BodyBytes, &r.LatencyMS, &r.Reason, &r.FinishedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil // no runs yet
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}
