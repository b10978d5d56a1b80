package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hamed0406/serviceprobe/internal/domain"
)

type Store struct {
	mu     sync.RWMutex
	specs  map[domain.SpecID]*domain.RunSpec
	order  []domain.SpecID
	runs   []domain.RunRecord
	nextID int64
}

func New() *Store {
	return &Store{
		specs: make(map[domain.SpecID]*domain.RunSpec),
		runs:  make([]domain.RunRecord, 0, 128),
	}
}

func (m *Store) Add(ctx context.Context, s *domain.RunSpec) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = domain.SpecID(time.Now().UTC().Format("20060102T150405.000000000"))
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	if _, ok := m.specs[s.ID]; !ok {
		m.order = append(m.order, s.ID)
	}
	m.specs[s.ID] = s
	return nil
}

func (m *Store) List(ctx context.Context) ([]domain.RunSpec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.RunSpec, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.specs[id])
	}
	return out, nil
}

func (m *Store) Append(ctx context.Context, r *domain.RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r.ID = m.nextID
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now().UTC()
	}
	m.runs = append(m.runs, *r)
	return nil
}

func (m *Store) Runs(ctx context.Context) ([]domain.RunRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.RunRecord, len(m.runs))
	copy(out, m.runs)
	return out, nil
}

func (m *Store) LastByTest(ctx context.Context, testID string) (*domain.RunRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := len(m.runs) - 1; i >= 0; i-- {
		if m.runs[i].TestID == testID {
			r := m.runs[i]
			return &r, nil
		}
	}
	return nil, nil
}
