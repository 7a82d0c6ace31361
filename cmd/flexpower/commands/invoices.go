package commands

import (
	"github.com/spf13/cobra"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Generate producer invoices",
	Long: `Builds one invoice per asset from reconciled production,
contract terms and redispatch compensation, including VAT. Writes the
invoice table, a JSON export and one PDF per invoice.

Example:
  flexpower invoices --config config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStages("invoices")
	},
}

func init() {
	rootCmd.AddCommand(invoicesCmd)
}
