package report

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/config"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/data"
)

// Run executes the performance report stage and returns the artifact
// paths.
func Run(cfg *config.Config, log zerolog.Logger) ([]string, error) {
	loc := cfg.Location()

	production := data.LoadReconciledCSV(filepath.Join(cfg.Paths.OutputDir, "asset_best_of_infeed.csv"), loc, log)
	technical := data.LoadTechnicalAssets(cfg.Paths.TechnicalDataDir, log)

	price, fromTrades := LoadMarketPrice(
		filepath.Join(cfg.Paths.OutputDir, "trading_data.csv"),
		cfg.Report.DefaultMarketPrice,
		log,
	)
	pricing := Pricing{
		MarketPriceEUR:      price,
		ImbalancePenaltyEUR: cfg.Report.ImbalancePenaltyEUR,
		FromTrades:          fromTrades,
	}
	log.Info().Float64("market_price", price).Bool("from_trades", fromTrades).Msg("market price resolved")

	rows := BuildRows(production, technical, pricing)
	assets := ComputeAssetMetrics(rows)
	portfolio := ComputePortfolioMetrics(rows)

	perfPath := filepath.Join(cfg.Paths.OutputDir, "performance_data.csv")
	assetsPath := filepath.Join(cfg.Paths.OutputDir, "asset_metrics.csv")
	portfolioPath := filepath.Join(cfg.Paths.OutputDir, "portfolio_metrics.json")
	textPath := filepath.Join(cfg.Paths.OutputDir, "performance_report.txt")

	if err := WritePerformanceCSV(perfPath, rows); err != nil {
		return nil, err
	}
	if err := WriteAssetMetricsCSV(assetsPath, assets); err != nil {
		return nil, err
	}
	if err := WritePortfolioMetricsJSON(portfolioPath, portfolio); err != nil {
		return nil, err
	}
	text := RenderText(assets, portfolio, time.Now())
	if err := os.WriteFile(textPath, []byte(text), 0o644); err != nil {
		return nil, err
	}
	artifacts := []string{perfPath, assetsPath, portfolioPath, textPath}

	if cfg.Report.RenderXLSX {
		raw, err := BuildReportXLSX(assets, portfolio)
		if err != nil {
			return nil, err
		}
		xlsxPath := filepath.Join(cfg.Paths.OutputDir, "performance_report.xlsx")
		if err := os.WriteFile(xlsxPath, raw, 0o644); err != nil {
			return nil, err
		}
		artifacts = append(artifacts, xlsxPath)
	}

	log.Info().Int("rows", len(rows)).Int("assets", len(assets)).Msg("performance report written")
	return artifacts, nil
}
