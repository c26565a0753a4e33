// Package health classifies containers and folds per-container outcomes
// into a run summary.
//
// # Outcomes
//
// Every checked target ends in exactly one Outcome:
//
//	OutcomeHealthy - running, health check passing or absent
//	OutcomeWarning - running but failing its health check
//	OutcomeProblem - not running, or the lookup failed
//
// # Run flow
//
// For one target: Resolve → Fetch → Classify → Render → Fold. The Runner
// drives this sequentially over all targets; rendering goes through the
// Reporter interface so the classification core stays independent of any
// output format and is testable with synthetic descriptors.
package health
