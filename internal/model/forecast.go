package model

import "time"

// ForecastRecord is one asset-level forecast value for a 15-minute
// delivery interval. Produced by the forecasting stage and consumed
// read-only by best-of-infeed.
type ForecastRecord struct {
	AssetID       string
	DeliveryStart time.Time
	ValueKW       float64
}

// PortfolioForecast is the per-interval sum of all asset forecasts.
type PortfolioForecast struct {
	DeliveryStart time.Time
	ForecastKW    float64
}
