package commands

import (
	"github.com/spf13/cobra"
)

var infeedCmd = &cobra.Command{
	Use:   "infeed",
	Short: "Reconcile forecast vs. measured infeed",
	Long: `Aggregates raw sensor measurements into 15-minute intervals,
joins them with the forecast and keeps the higher value per interval
(best-of-infeed). Writes the per-asset series, the portfolio series and
the quality metrics.

Example:
  flexpower infeed --config config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStages("infeed")
	},
}

func init() {
	rootCmd.AddCommand(infeedCmd)
}
