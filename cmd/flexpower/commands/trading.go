package commands

import (
	"github.com/spf13/cobra"
)

var tradingCmd = &cobra.Command{
	Use:   "trading",
	Short: "Compute trade revenue per book and portfolio",
	Long: `Loads the exchange trade exports, assigns trades to books and
computes volume, revenue and volume-weighted average price per book and
for the whole portfolio.

Example:
  flexpower trading --config config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStages("trading")
	},
}

func init() {
	rootCmd.AddCommand(tradingCmd)
}
