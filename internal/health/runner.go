package health

import (
	"context"
	"fmt"
	"time"

	"dockvitals/internal/logging"
	"dockvitals/internal/runtime"
)

// DefaultQueryTimeout bounds each individual runtime query so one hung
// call cannot stall the whole run indefinitely.
const DefaultQueryTimeout = 10 * time.Second

// Runner checks a set of targets against a runtime and reports results.
// Targets are processed strictly one after another; the summary is the
// only accumulating state and is owned by Run.
type Runner struct {
	rt      runtime.Runtime
	rep     Reporter
	timeout time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithQueryTimeout overrides the per-query timeout.
func WithQueryTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// NewRunner creates a Runner over the given runtime and reporter.
func NewRunner(rt runtime.Runtime, rep Reporter, opts ...Option) *Runner {
	r := &Runner{
		rt:      rt,
		rep:     rep,
		timeout: DefaultQueryTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run checks the given targets in order. With no explicit targets it
// discovers the currently running set first; an empty discovery is the
// only early-exit path and yields an empty, all-healthy summary.
//
// Per-target failures never abort the run; they fold into that target's
// Outcome. The returned error is non-nil only when target discovery
// itself fails.
func (r *Runner) Run(ctx context.Context, targets []string) (Summary, error) {
	if len(targets) == 0 {
		var err error
		targets, err = r.listRunning(ctx)
		if err != nil {
			return Summary{}, fmt.Errorf("list running containers: %w", err)
		}
		if len(targets) == 0 {
			r.rep.NoContainers()
			return Summary{}, nil
		}
	}

	var sum Summary
	for _, target := range targets {
		res := r.checkOne(ctx, target)
		r.rep.Container(res)
		sum.Add(res.Outcome)
	}
	r.rep.Summary(sum)
	return sum, nil
}

func (r *Runner) listRunning(ctx context.Context) ([]string, error) {
	qctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.rt.ListRunning(qctx)
}

// checkOne fetches, classifies, and samples a single target.
func (r *Runner) checkOne(ctx context.Context, target string) Result {
	c, err := r.inspect(ctx, target)
	if err != nil {
		logging.Debug("inspect failed", "target", target, "err", err)
		return Result{Target: target, Outcome: OutcomeProblem, Err: err}
	}

	res := Result{
		Target:    target,
		Container: c,
		Outcome:   Classify(c.State, c.Health),
	}

	// Resource sampling is best-effort and only meaningful while running.
	if c.State == runtime.StateRunning {
		if s, err := r.stats(ctx, target); err != nil {
			logging.Debug("stats unavailable", "target", target, "err", err)
		} else {
			res.Stats = s
		}
	}
	return res
}

func (r *Runner) inspect(ctx context.Context, target string) (*runtime.Container, error) {
	qctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.rt.Inspect(qctx, target)
}

func (r *Runner) stats(ctx context.Context, target string) (*runtime.Stats, error) {
	qctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.rt.Stats(qctx, target)
}
