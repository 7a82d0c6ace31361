package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// BuildInvoicePDF renders a minimal PDF for one invoice.
func BuildInvoicePDF(inv model.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Production Invoice")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Asset: %s", inv.AssetID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Invoice Date: %s", inv.InvoiceDate))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 6, "Position", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 6, "Amount (EUR)", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)

	rows := []struct {
		label string
		value string
	}{
		{"Production (MWh)", inv.ProductionMWh.StringFixed(2)},
		{"Base payout", inv.BasePayoutEUR.StringFixed(2)},
		{"Fees", inv.FeesEUR.Neg().StringFixed(2)},
		{"Redispatch compensation", inv.RedispatchEUR.StringFixed(2)},
		{"Total net", inv.TotalNetEUR.StringFixed(2)},
		{"VAT", inv.VATEUR.StringFixed(2)},
		{"Total gross", inv.TotalGrossEUR.StringFixed(2)},
	}
	for _, r := range rows {
		pdf.CellFormat(90, 6, r.label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, r.value, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
