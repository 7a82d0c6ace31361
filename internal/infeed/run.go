package infeed

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/config"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/data"
)

// Run executes the best-of-infeed stage: load measurements, align the
// calendar against the forecast table, reconcile, aggregate, persist.
// Returns the paths of the artifacts written.
func Run(cfg *config.Config, log zerolog.Logger) ([]string, error) {
	loc := cfg.Location()

	docs := data.LoadTimeseriesDir(cfg.Paths.MeasuredInfeedDir, log)
	measured := BuildAssetSeries(docs, loc, cfg.Infeed.MinSamplesPerBucket, log)
	log.Info().Int("files", len(docs)).Int("buckets", len(measured)).Msg("measured infeed loaded")

	forecastPath := filepath.Join(cfg.Paths.OutputDir, "asset_forecasts.csv")
	forecasts := data.LoadForecastCSV(forecastPath, loc, log)
	if len(forecasts) == 0 {
		log.Warn().Msg("no forecast data; best-of-infeed degenerates to measured series")
	}

	if cfg.Infeed.AlignCalendar {
		var days int
		measured, days = AlignCalendar(measured, forecasts, loc)
		if days != 0 {
			log.Info().Int("days", days).Msg("measured calendar shifted onto forecast day")
		}
	}

	asset := Reconcile(measured, forecasts)
	portfolio := AggregatePortfolio(asset)
	metrics := ComputeMetrics(asset, portfolio)

	assetPath := filepath.Join(cfg.Paths.OutputDir, "asset_best_of_infeed.csv")
	portfolioPath := filepath.Join(cfg.Paths.OutputDir, "portfolio_best_of_infeed.csv")
	metricsPath := filepath.Join(cfg.Paths.OutputDir, "best_of_infeed_metrics.json")

	if err := WriteAssetCSV(assetPath, asset); err != nil {
		return nil, err
	}
	if err := WritePortfolioCSV(portfolioPath, portfolio); err != nil {
		return nil, err
	}
	if err := WriteMetricsJSON(metricsPath, metrics); err != nil {
		return nil, err
	}

	log.Info().
		Int("asset_rows", len(asset)).
		Int("portfolio_rows", len(portfolio)).
		Float64("forecast_accuracy", metrics.ForecastAccuracy).
		Msg("best-of-infeed written")
	return []string{assetPath, portfolioPath, metricsPath}, nil
}
