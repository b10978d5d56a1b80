package notify

import (
	"context"

	"github.com/hamed0406/serviceprobe/internal/domain"
)

// Notifier reports a failed run. Each implementation shapes the record
// into its own message format.
type Notifier interface {
	RunFailed(ctx context.Context, rec *domain.RunRecord) error
}

type Multi []Notifier

func (m Multi) RunFailed(ctx context.Context, rec *domain.RunRecord) error {
	var firstErr error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.RunFailed(ctx, rec); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
