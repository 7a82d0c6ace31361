package commands

import (
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the daily performance report",
	Long: `Computes per-asset and portfolio performance (production,
revenue, imbalance cost, forecast accuracy, capacity factor) and writes
the data tables, a text report and an XLSX workbook.

Example:
  flexpower report --config config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStages("report")
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
