package commands

import (
	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Fetch day-ahead production forecasts",
	Long: `Fetches the production forecast for every configured asset and
writes the per-asset and portfolio forecast tables.

Example:
  flexpower forecast --config config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStages("forecast")
	},
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}
