// Package forecast builds the asset and portfolio forecast tables for a
// delivery day from per-asset VPP forecast documents.
package forecast

import (
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/config"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/data"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// GenerateIntervals returns the 96 quarter-hour delivery starts of a day.
func GenerateIntervals(day time.Time) []time.Time {
	intervals := make([]time.Time, 0, 96)
	for i := 0; i < 96; i++ {
		intervals = append(intervals, day.Add(time.Duration(i)*15*time.Minute))
	}
	return intervals
}

// Fetch collects the latest forecast document per asset. Assets without
// a retrievable forecast are skipped with a warning.
func Fetch(provider Provider, assetIDs []string, version time.Time, log zerolog.Logger) []*model.TimeseriesDocument {
	var docs []*model.TimeseriesDocument
	for _, id := range assetIDs {
		doc, err := provider.Forecast(id, version)
		if err != nil {
			log.Warn().Str("asset", id).Err(err).Msg("no forecast available")
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}

// BuildTables flattens forecast documents into asset-level records and
// the per-interval portfolio sum. Forecast documents carry epoch-second
// timestamps in values[0] and power in values[3]; documents without
// both columns are ignored.
func BuildTables(docs []*model.TimeseriesDocument, loc *time.Location) ([]model.ForecastRecord, []model.PortfolioForecast) {
	var records []model.ForecastRecord
	for _, doc := range docs {
		if len(doc.Values) <= model.ForecastValueCol {
			continue
		}
		timestamps := doc.Values[model.ForecastTimestampCol]
		values := doc.Values[model.ForecastValueCol]
		n := len(timestamps)
		if len(values) < n {
			n = len(values)
		}
		for i := 0; i < n; i++ {
			records = append(records, model.ForecastRecord{
				AssetID:       doc.Key.ID(),
				DeliveryStart: time.Unix(int64(timestamps[i]), 0).In(loc),
				ValueKW:       values[i],
			})
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].AssetID != records[j].AssetID {
			return records[i].AssetID < records[j].AssetID
		}
		return records[i].DeliveryStart.Before(records[j].DeliveryStart)
	})

	sums := map[time.Time]float64{}
	for _, r := range records {
		sums[r.DeliveryStart] = sums[r.DeliveryStart] + r.ValueKW
	}
	portfolio := make([]model.PortfolioForecast, 0, len(sums))
	for ts, kw := range sums {
		portfolio = append(portfolio, model.PortfolioForecast{DeliveryStart: ts, ForecastKW: kw})
	}
	sort.Slice(portfolio, func(i, j int) bool {
		return portfolio[i].DeliveryStart.Before(portfolio[j].DeliveryStart)
	})
	return records, portfolio
}

// Run executes the forecasting stage end to end and returns the paths of
// the artifacts it wrote.
func Run(cfg *config.Config, log zerolog.Logger) ([]string, error) {
	loc := cfg.Location()
	day, err := cfg.DeliveryDay()
	if err != nil {
		return nil, err
	}

	assetIDs := data.ExtractAssetIDs(cfg.Paths.MeasuredInfeedDir, log)
	log.Info().Int("assets", len(assetIDs)).Str("day", cfg.Forecast.DeliveryDay).Msg("fetching forecasts")

	provider := &FileProvider{Dir: cfg.Paths.ForecastSourceDir}
	docs := Fetch(provider, assetIDs, day, log)
	records, portfolio := BuildTables(docs, loc)

	assetPath := filepath.Join(cfg.Paths.OutputDir, "asset_forecasts.csv")
	portfolioPath := filepath.Join(cfg.Paths.OutputDir, "portfolio_forecast.csv")
	if err := WriteAssetForecastCSV(assetPath, records); err != nil {
		return nil, err
	}
	if err := WritePortfolioForecastCSV(portfolioPath, portfolio); err != nil {
		return nil, err
	}

	log.Info().Int("asset_rows", len(records)).Int("portfolio_rows", len(portfolio)).Msg("forecast tables written")
	return []string{assetPath, portfolioPath}, nil
}
