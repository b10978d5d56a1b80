package runner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/serviceprobe/internal/domain"
	"github.com/hamed0406/serviceprobe/internal/notify"
	"github.com/hamed0406/serviceprobe/internal/probe"
	"github.com/hamed0406/serviceprobe/internal/repo"
)

// Runner is the driver: it sequences one probe through
// Setup → Fetch → CheckResult → PersistResult for a spec, records the
// outcome and notifies on failures. Operations run one at a time; the
// probe is never used concurrently.
type Runner struct {
	Logger   *zap.Logger
	Probe    *probe.Probe
	History  repo.RunStore   // nil: outcomes are only logged
	Notifier notify.Notifier // nil: no failure notifications
}

func New(logger *zap.Logger, p *probe.Probe, history repo.RunStore, notifier notify.Notifier) *Runner {
	return &Runner{Logger: logger, Probe: p, History: history, Notifier: notifier}
}

// Execute runs one spec to completion. A transport or persistence failure
// terminates the run and propagates; a failed match is a completed run
// with Passed=false, not an error.
func (r *Runner) Execute(ctx context.Context, spec domain.RunSpec) (*domain.RunRecord, error) {
	run := r.Probe.Setup(spec.TestID, spec.Path, spec.Query)
	start := time.Now()

	if err := r.Probe.Fetch(ctx, run); err != nil {
		return nil, fmt.Errorf("run %s: %w", spec.TestID, err)
	}
	r.Probe.CheckResult(run, spec.Match)
	key, err := r.Probe.PersistResult(ctx, run)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", spec.TestID, err)
	}

	rec := &domain.RunRecord{
		TestID:     spec.TestID,
		Path:       spec.Path,
		Query:      spec.Query,
		StartedMS:  run.StartedMS,
		Passed:     run.Passed,
		ResultKey:  key,
		BodyBytes:  run.Body.Len(),
		LatencyMS:  time.Since(start).Seconds() * 1000,
		FinishedAt: time.Now().UTC(),
	}
	if !run.Passed {
		rec.Reason = fmt.Sprintf("body does not contain %q", spec.Match)
	}

	if r.History != nil {
		if err := r.History.Append(ctx, rec); err != nil {
			r.Logger.Warn("run_history_append_error",
				zap.String("test_id", spec.TestID),
				zap.Error(err),
			)
		}
	}

	r.Logger.Info("run_finished",
		zap.String("test_id", spec.TestID),
		zap.Bool("passed", rec.Passed),
		zap.String("result_key", rec.ResultKey),
		zap.Int("body_bytes", rec.BodyBytes),
		zap.Float64("latency_ms", rec.LatencyMS),
	)

	if !rec.Passed && r.Notifier != nil {
		_ = r.Notifier.RunFailed(ctx, rec)
	}

	return rec, nil
}

// ExecuteAll runs the specs sequentially, continuing past failed runs, and
// returns the accumulated errors.
func (r *Runner) ExecuteAll(ctx context.Context, specs []domain.RunSpec) error {
	var errs error
	for _, spec := range specs {
		if _, err := r.Execute(ctx, spec); err != nil {
			r.Logger.Warn("run_error",
				zap.String("test_id", spec.TestID),
				zap.Error(err),
			)
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
