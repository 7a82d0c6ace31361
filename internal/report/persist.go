package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

func WritePerformanceCSV(path string, rows []model.PerformanceRow) error {
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
		"asset_name",
		"asset_type",
		"capacity_mw",
		"delivery_start",
		"hour",
		"forecast_kw",
		"actual_kw",
		"forecast_mwh",
		"actual_mwh",
		"market_price_eur_mwh",
		"revenue_eur",
		"imbalance_cost_eur",
		"net_revenue_eur",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			r.AssetID,
			r.AssetName,
			string(r.AssetType),
			fmtFloat(r.CapacityMW),
			fmtTime(r.DeliveryStart),
			strconv.Itoa(r.Hour),
			fmtFloat(r.ForecastKW),
			fmtFloat(r.ActualKW),
			fmtFloat(r.ForecastMWh),
			fmtFloat(r.ActualMWh),
			fmtFloat(r.MarketPriceEUR),
			fmtFloat(r.RevenueEUR),
			fmtFloat(r.ImbalanceCostEUR),
			fmtFloat(r.NetRevenueEUR),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func WriteAssetMetricsCSV(path string, assets []model.AssetPerformance) error {
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
		"asset_name",
		"asset_type",
		"capacity_mw",
		"total_forecast_mwh",
		"total_actual_mwh",
		"total_revenue_eur",
		"imbalance_cost_eur",
		"net_revenue_eur",
		"forecast_accuracy_pct",
		"capacity_factor_pct",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, a := range assets {
		row := []string{
			a.AssetID,
			a.AssetName,
			string(a.AssetType),
			fmtFloat(a.CapacityMW),
			fmtFloat(a.TotalForecastMWh),
			fmtFloat(a.TotalActualMWh),
			fmtFloat(a.TotalRevenueEUR),
			fmtFloat(a.ImbalanceCostEUR),
			fmtFloat(a.NetRevenueEUR),
			fmtFloat(a.ForecastAccuracyPct),
			fmtFloat(a.CapacityFactorPct),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func WritePortfolioMetricsJSON(path string, m model.PortfolioPerformance) error {
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
