package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"dockvitals/internal/errors"
	"dockvitals/internal/health"
	"dockvitals/internal/logging"
	"dockvitals/internal/report"
)

var watchCmd = &cobra.Command{
	Use:   "watch [container...]",
	Short: "Re-run the health check at a fixed interval",
	Long: `Periodically re-checks the given containers (or all running
containers) in the foreground until interrupted. Each tick is a full
sequential check; nothing is stored between ticks.`,
	Args: cobra.ArbitraryArgs,
	RunE: runWatch,
}

var watchInterval int

func init() {
	watchCmd.Flags().IntVar(&watchInterval, "interval", 60, "Check interval in seconds")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	rt, err := preflight(cmd.Context())
	if err != nil {
		return err
	}

	printer := report.NewPrinter(reportStream(), report.WithColor(!noColor))
	runner := health.NewRunner(rt, printer)

	interval := time.Duration(watchInterval) * time.Second
	logging.UserInfo("Watching container health (interval: %ds)", watchInterval)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		sum, err := runner.Run(ctx, args)
		switch {
		case err != nil && ctx.Err() != nil:
			return nil
		case err != nil:
			return errors.Wrap(errors.ExitFailure, "health check failed", err)
		case !sum.AllHealthy():
			logging.Warn("containers need attention",
				"warnings", sum.Warnings, "problems", sum.Problems)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
