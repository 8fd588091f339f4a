// slimesim runs stages without a window.
//
// Usage:
//
//	slimesim run [--stage N] [--script S] [stat flags]   - Play a stage headless
//	slimesim stages                                      - Print generated slime stats per stage
//	slimesim results                                     - Show saved stage results
package main

import (
	"fmt"
	"os"

	"github.com/automoto/slimerun/cli"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagStages   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slimesim",
	Short: "Headless slime platformer runner",
	Long: `slimesim plays stages without a window, for balance checks and
scripted regression runs.

Examples:
  slimesim run --stage 3
  slimesim run --stage 1 --script "right*200,right+jump*10,right*300,exit"
  slimesim stages
  slimesim results`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cli.SetLogLevel(flagLogLevel)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStages, "stages", "", "Stage table YAML (default: embedded table)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(resultsCmd)
}
