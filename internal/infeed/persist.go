package infeed

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

func WriteAssetCSV(path string, rows []model.ReconciledInterval) error {
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
		"asset_type",
		"delivery_start",
		"forecast_kw",
		"measured_kw",
		"best_of_infeed_kw",
		"data_source",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			r.AssetID,
			string(r.AssetType),
			fmtTime(r.DeliveryStart),
			fmtFloat(r.ForecastKW),
			fmtFloat(r.MeasuredKW),
			fmtFloat(r.BestOfInfeedKW),
			r.DataSource,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func WritePortfolioCSV(path string, rows []model.PortfolioInterval) error {
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
		"delivery_start",
		"portfolio_forecast_kw",
		"portfolio_measured_kw",
		"portfolio_best_of_infeed_kw",
		"assets_contributing",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			fmtTime(r.DeliveryStart),
			fmtFloat(r.ForecastKW),
			fmtFloat(r.MeasuredKW),
			fmtFloat(r.BestOfInfeedKW),
			strconv.Itoa(r.AssetsContributing),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteMetricsJSON serializes the summary metrics. InfeedMetrics carries
// plain ints and float64s only, so the output stays portable across
// consumers.
func WriteMetricsJSON(path string, m model.InfeedMetrics) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(raw, '\n'), 0o644)
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
