package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"dockvitals/internal/errors"
	"dockvitals/internal/health"
	"dockvitals/internal/report"
	"dockvitals/internal/runtime"
)

// runCheck is the root command: pre-flight, resolve, check, summarize.
func runCheck(cmd *cobra.Command, args []string) error {
	rt, err := preflight(cmd.Context())
	if err != nil {
		return err
	}

	printer := report.NewPrinter(reportStream(), report.WithColor(!noColor))
	runner := health.NewRunner(rt, printer)

	sum, err := runner.Run(cmd.Context(), args)
	if err != nil {
		return errors.Wrap(errors.ExitFailure, "health check failed", err)
	}
	if !sum.AllHealthy() {
		return errors.Unhealthy(sum.Warnings, sum.Problems)
	}
	return nil
}

// preflight verifies the runtime is reachable before any target is
// processed. Failure here is fatal: no report is produced at all.
func preflight(ctx context.Context) (runtime.Runtime, error) {
	rt := getRuntime()
	if rt == nil {
		return nil, errors.RuntimeUnreachable(fmt.Errorf("no container runtime available"))
	}
	if dr, ok := rt.(*runtime.DockerRuntime); ok {
		dr.HealthLogLines = healthLogLines
	}

	pctx, cancel := context.WithTimeout(ctx, health.DefaultQueryTimeout)
	defer cancel()
	if err := rt.Ping(pctx); err != nil {
		return nil, errors.RuntimeUnreachable(err)
	}
	return rt, nil
}
