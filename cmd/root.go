package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"dockvitals/internal/logging"
	"dockvitals/internal/runtime"
)

var (
	verbose        bool
	jsonOutput     bool
	noColor        bool
	healthLogLines int
)

var rootCmd = &cobra.Command{
	Use:   "dockvitals [container...]",
	Short: "Health report for running containers",
	Long: `dockvitals produces a human-readable health report for containers.

Each named container (or, with no arguments, every currently running
container) is classified as healthy, warning (running but failing its
health check), or problem (not running, or not found). The exit code is
0 only when nothing is a warning or problem.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.UserError("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().IntVar(&healthLogLines, "health-log-lines", runtime.DefaultHealthLogLines,
		"Health probe log lines to show for unhealthy containers")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
