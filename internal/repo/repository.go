package repo

import (
	"context"

	"github.com/hamed0406/serviceprobe/internal/domain"
)

// Ports (interfaces) — swap in any DB adapter later.
type SpecStore interface {
	Add(ctx context.Context, s *domain.RunSpec) error
	List(ctx context.Context) ([]domain.RunSpec, error)
}

type RunStore interface {
	Append(ctx context.Context, r *domain.RunRecord) error
	Runs(ctx context.Context) ([]domain.RunRecord, error)
	LastByTest(ctx context.Context, testID string) (*domain.RunRecord, error)
}
