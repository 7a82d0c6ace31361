package trading

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

func WriteTradesCSV(path string, trades []model.PreparedTrade) error {
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
		"trade_id",
		"book_id",
		"side",
		"delivery_start",
		"delivery_end",
		"volume_mw",
		"price_eur_mwh",
		"revenue_eur",
		"signed_volume_mw",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, t := range trades {
		row := []string{
			t.TradeID,
			t.BookID,
			string(t.Side),
			fmtTime(t.DeliveryStart),
			fmtTime(t.DeliveryEnd),
			t.VolumeMW.String(),
			t.PriceEURMWh.String(),
			t.RevenueEUR.StringFixed(2),
			t.SignedVolumeMW.String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func WriteBookMetricsCSV(path string, metrics []model.BookMetrics) error {
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
		"revenue_eur",
		"net_volume_mw",
		"num_trades",
		"total_volume_mw",
		"vwap_eur_mwh",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, m := range metrics {
		row := []string{
			m.BookID,
			m.RevenueEUR.StringFixed(2),
			m.NetVolumeMW.String(),
			strconv.Itoa(m.NumTrades),
			m.TotalVolumeMW.String(),
			m.VWAPEURMWh.StringFixed(4),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func WritePortfolioMetricsJSON(path string, m model.PortfolioTradingMetrics) error {
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
