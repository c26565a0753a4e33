package health

import (
	"dockvitals/internal/runtime"
)

// Outcome is the tri-level classification of one checked container.
type Outcome uint8

const (
	OutcomeHealthy Outcome = iota
	OutcomeWarning         // running but failing its health check
	OutcomeProblem         // not running, or lookup failed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHealthy:
		return "healthy"
	case OutcomeWarning:
		return "warning"
	case OutcomeProblem:
		return "problem"
	default:
		return "unknown"
	}
}

// Classify derives the Outcome from a descriptor's lifecycle and health
// states. The decision table is fixed:
//
//	not running                  → Problem (regardless of health state)
//	running + unhealthy          → Warning
//	running + anything else      → Healthy
func Classify(state runtime.LifecycleState, health runtime.HealthState) Outcome {
	if state != runtime.StateRunning {
		return OutcomeProblem
	}
	switch health {
	case runtime.HealthUnhealthy:
		return OutcomeWarning
	case runtime.HealthHealthy, runtime.HealthStarting, runtime.HealthNone:
		return OutcomeHealthy
	}
	return OutcomeHealthy
}

// Summary holds the fold of every checked target's Outcome.
// Invariant: Total == Healthy + Warnings + Problems.
type Summary struct {
	Total    int
	Healthy  int
	Warnings int
	Problems int
}

// Add folds one outcome into the summary.
func (s *Summary) Add(o Outcome) {
	s.Total++
	switch o {
	case OutcomeHealthy:
		s.Healthy++
	case OutcomeWarning:
		s.Warnings++
	case OutcomeProblem:
		s.Problems++
	}
}

// AllHealthy reports whether the run should exit successfully.
func (s Summary) AllHealthy() bool {
	return s.Warnings == 0 && s.Problems == 0
}

// Result is the checked state of one target, ready for rendering.
type Result struct {
	Target  string
	Outcome Outcome

	// Container is nil when the fetch failed; Err then carries the cause.
	Container *runtime.Container

	// Stats is nil when sampling failed or the container is not running.
	// Absence is "not available", never an error.
	Stats *runtime.Stats

	Err error
}

// Reporter receives render events as the run progresses. Rendering is a
// side effect only: implementations must not influence classification
// and must not fail the run.
type Reporter interface {
	// Container renders one per-container block.
	Container(res Result)

	// Summary renders the end-of-run counters.
	Summary(sum Summary)

	// NoContainers renders the "nothing to check" notice.
	NoContainers()
}
