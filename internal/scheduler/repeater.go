package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/serviceprobe/internal/domain"
	"github.com/hamed0406/serviceprobe/internal/repo"
)

// Executor is what the repeater drives each tick; satisfied by
// runner.Runner.
type Executor interface {
	ExecuteAll(ctx context.Context, specs []domain.RunSpec) error
}

// Repeater re-executes every registered spec at a fixed interval. Specs
// run sequentially: the probe carries one in-flight operation at a time.
type Repeater struct {
	Logger   *zap.Logger
	Specs    repo.SpecStore
	Executor Executor
	Interval time.Duration
}

func NewRepeater(logger *zap.Logger, specs repo.SpecStore, ex Executor, interval time.Duration) *Repeater {
	if interval < 0 {
		interval = 0
	}
	return &Repeater{Logger: logger, Specs: specs, Executor: ex, Interval: interval}
}

// Run starts the loop. It does an immediate pass, then runs each tick.
// Stops when ctx is cancelled.
func (r *Repeater) Run(ctx context.Context) {
	if r.Interval == 0 {
		// disabled
		r.Logger.Info("repeater_disabled")
		return
	}
	t := time.NewTicker(r.Interval)
	defer t.Stop()

	// immediate pass
	r.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			r.Logger.Info("repeater_stopped")
			return
		case <-t.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Repeater) runOnce(ctx context.Context) {
	specs, err := r.Specs.List(ctx)
	if err != nil {
		r.Logger.Warn("repeater_list_error", zap.Error(err))
		return
	}
	if len(specs) == 0 {
		return
	}
	if err := r.Executor.ExecuteAll(ctx, specs); err != nil {
		r.Logger.Warn("repeater_pass_errors", zap.Error(err))
	}
}
