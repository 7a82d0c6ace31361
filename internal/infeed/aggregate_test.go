package infeed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

func reconciledAt(assetID string, start time.Time, forecast, measured float64) model.ReconciledInterval {
	best := forecast
	source := model.SourceForecast
	if measured > forecast {
		best = measured
		source = model.SourceMeasured
	}
	return model.ReconciledInterval{
		AssetID:        assetID,
		AssetType:      model.AssetTypeFromID(assetID),
		DeliveryStart:  start,
		ForecastKW:     forecast,
		MeasuredKW:     measured,
		BestOfInfeedKW: best,
		DataSource:     source,
	}
}

func TestAggregatePortfolioSumsAcrossAssets(t *testing.T) {
	start := time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC)
	next := start.Add(15 * time.Minute)

	rows := []model.ReconciledInterval{
		reconciledAt("WND01", start, 100, 120),
		reconciledAt("SOL01", start, 50, 40),
		reconciledAt("WND01", next, 90, 95),
	}

	portfolio := AggregatePortfolio(rows)
	require.Len(t, portfolio, 2)

	assert.Equal(t, start, portfolio[0].DeliveryStart)
	assert.InDelta(t, 150, portfolio[0].ForecastKW, 1e-9)
	assert.InDelta(t, 160, portfolio[0].MeasuredKW, 1e-9)
	assert.InDelta(t, 170, portfolio[0].BestOfInfeedKW, 1e-9)
	assert.Equal(t, 2, portfolio[0].AssetsContributing)

	assert.Equal(t, next, portfolio[1].DeliveryStart)
	assert.Equal(t, 1, portfolio[1].AssetsContributing)
}

func TestComputeMetrics(t *testing.T) {
	start := time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC)
	rows := []model.ReconciledInterval{
		reconciledAt("WND01", start, 100, 120),
		reconciledAt("SOL01", start, 50, 40),
	}
	portfolio := AggregatePortfolio(rows)

	m := ComputeMetrics(rows, portfolio)
	assert.Equal(t, 2, m.TotalAssets)
	assert.InDelta(t, 85, m.AvgBestOfInfeedKW, 1e-9) // (120+50)/2
	assert.InDelta(t, 120, m.MaxAssetPerformanceKW, 1e-9)
	assert.InDelta(t, 170, m.PortfolioPeakKW, 1e-9)
	assert.InDelta(t, 170, m.PortfolioAvgKW, 1e-9)
	assert.Greater(t, m.ForecastAccuracy, 0.0)
}

func TestComputeMetricsEmptyInput(t *testing.T) {
	m := ComputeMetrics(nil, nil)
	assert.Zero(t, m.TotalAssets)
	assert.Zero(t, m.AvgBestOfInfeedKW)
	assert.Zero(t, m.ForecastAccuracy)
}

func TestForecastAccuracyGuards(t *testing.T) {
	start := time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC)

	// Perfect forecast scores 100.
	perfect := []model.PortfolioInterval{
		{DeliveryStart: start, ForecastKW: 100, MeasuredKW: 100},
		{DeliveryStart: start.Add(15 * time.Minute), ForecastKW: 80, MeasuredKW: 80},
	}
	assert.InDelta(t, 100, forecastAccuracy(perfect), 1e-9)

	// Nothing measured never claims accuracy, whatever the forecast says.
	unmeasured := []model.PortfolioInterval{
		{DeliveryStart: start, ForecastKW: 100, MeasuredKW: 0},
		{DeliveryStart: start.Add(15 * time.Minute), ForecastKW: 100, MeasuredKW: 0},
	}
	assert.Zero(t, forecastAccuracy(unmeasured))

	// A wildly wrong forecast clamps at 0 instead of going negative.
	wrong := []model.PortfolioInterval{
		{DeliveryStart: start, ForecastKW: 1000, MeasuredKW: 1},
	}
	assert.Zero(t, forecastAccuracy(wrong))
}
