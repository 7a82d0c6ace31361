package model

import "time"

// MeasuredInterval is one quality-filtered 15-minute bucket of measured
// infeed: the mean of all raw samples that fell into the bucket, plus
// how many samples contributed.
type MeasuredInterval struct {
	AssetID       string
	AssetType     AssetType
	DeliveryStart time.Time
	MeasuredKW    float64
	SampleCount   int
}

// ReconciledInterval is one row of the asset-level best-of-infeed output.
// BestOfInfeedKW is the pointwise max of forecast and measured power;
// DataSource records which side won ("forecast" on ties).
type ReconciledInterval struct {
	AssetID        string
	AssetType      AssetType
	DeliveryStart  time.Time
	ForecastKW     float64
	MeasuredKW     float64
	BestOfInfeedKW float64
	DataSource     string
}

const (
	SourceMeasured = "measured"
	SourceForecast = "forecast"
)

// PortfolioInterval is the per-bucket sum across all assets.
type PortfolioInterval struct {
	DeliveryStart      time.Time
	ForecastKW         float64
	MeasuredKW         float64
	BestOfInfeedKW     float64
	AssetsContributing int
}

// InfeedMetrics is the summary object written alongside the best-of-infeed
// tables. ForecastAccuracy is a normalized-RMSE score in percent.
type InfeedMetrics struct {
	TotalAssets           int     `json:"total_assets"`
	AvgBestOfInfeedKW     float64 `json:"avg_best_of_infeed_kw"`
	MaxAssetPerformanceKW float64 `json:"max_asset_performance_kw"`
	PortfolioPeakKW       float64 `json:"portfolio_peak_kw"`
	PortfolioAvgKW        float64 `json:"portfolio_avg_kw"`
	ForecastAccuracy      float64 `json:"forecast_accuracy"`
}
