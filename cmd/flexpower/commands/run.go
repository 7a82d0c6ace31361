package commands

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [stage ...]",
	Short: "Run the pipeline (all stages, or the named ones in order)",
	Long: `Runs the back-office pipeline. Without arguments every stage
runs in dependency order; with arguments only the named stages run.
A failing stage is recorded and the remaining stages still run.

Examples:
  flexpower run
  flexpower run infeed report`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStages(args...)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
