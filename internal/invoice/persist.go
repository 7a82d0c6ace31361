package invoice

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

func WriteInvoicesCSV(path string, invoices []model.Invoice) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"asset_id",
		"invoice_date",
		"production_mwh",
		"base_payout",
		"fees",
		"redispatch_payout",
		"total_net",
		"vat",
		"total_gross",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, inv := range invoices {
		row := []string{
			inv.AssetID,
			inv.InvoiceDate,
			inv.ProductionMWh.StringFixed(2),
			inv.BasePayoutEUR.StringFixed(2),
			inv.FeesEUR.StringFixed(2),
			inv.RedispatchEUR.StringFixed(2),
			inv.TotalNetEUR.StringFixed(2),
			inv.VATEUR.StringFixed(2),
			inv.TotalGrossEUR.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func WriteInvoicesJSON(path string, invoices []model.Invoice) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(invoices, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(raw, '\n'), 0o644)
}

// WritePDFs renders one PDF per invoice into dir and returns their paths.
func WritePDFs(dir string, invoices []model.Invoice) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var paths []string
	for _, inv := range invoices {
		raw, err := BuildInvoicePDF(inv)
		if err != nil {
			return nil, fmt.Errorf("render invoice %s: %w", inv.AssetID, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("invoice_%s.pdf", inv.AssetID))
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
