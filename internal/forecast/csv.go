package forecast

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

func WriteAssetForecastCSV(path string, records []model.ForecastRecord) error {
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

	if err := w.Write([]string{"asset_id", "delivery_start", "value_kw"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.AssetID, fmtTime(r.DeliveryStart), fmtFloat(r.ValueKW)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func WritePortfolioForecastCSV(path string, portfolio []model.PortfolioForecast) error {
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

	if err := w.Write([]string{"delivery_start", "portfolio_forecast_kw"}); err != nil {
		return err
	}
	for _, r := range portfolio {
		if err := w.Write([]string{fmtTime(r.DeliveryStart), fmtFloat(r.ForecastKW)}); err != nil {
			return err
		}
	}
	return w.Error()
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
