package trading

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/config"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/data"
)

// Run executes the trading metrics stage over the private trade report.
// The public report is loaded only to surface obvious drops; its rows do
// not enter the P&L.
func Run(cfg *config.Config, log zerolog.Logger) ([]string, error) {
	loc := cfg.Location()

	trades, err := data.LoadTrades(cfg.Paths.PrivateTradesFile, loc, log)
	if err != nil {
		return nil, err
	}
	log.Info().Int("trades", len(trades)).Msg("private trades loaded")

	if cfg.Paths.PublicTradesFile != "" {
		public, err := data.LoadTrades(cfg.Paths.PublicTradesFile, loc, log)
		if err != nil {
			log.Warn().Err(err).Msg("public trade report not available")
		} else {
			log.Info().Int("trades", len(public)).Msg("public trades loaded")
		}
	}

	prepared := Prepare(trades)
	books := ComputeBookMetrics(prepared)
	portfolio := ComputePortfolioMetrics(prepared)

	tradesPath := filepath.Join(cfg.Paths.OutputDir, "trading_data.csv")
	booksPath := filepath.Join(cfg.Paths.OutputDir, "asset_trading_metrics.csv")
	portfolioPath := filepath.Join(cfg.Paths.OutputDir, "portfolio_trading_metrics.json")

	if err := WriteTradesCSV(tradesPath, prepared); err != nil {
		return nil, err
	}
	if err := WriteBookMetricsCSV(booksPath, books); err != nil {
		return nil, err
	}
	if err := WritePortfolioMetricsJSON(portfolioPath, portfolio); err != nil {
		return nil, err
	}

	log.Info().
		Int("books", len(books)).
		Float64("total_revenue_eur", portfolio.TotalRevenueEUR).
		Msg("trading metrics written")
	return []string{tradesPath, booksPath, portfolioPath}, nil
}
