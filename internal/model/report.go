package model

import "time"

// PerformanceRow is one (asset, interval) row of the performance report
// input table: forecast vs. actual production priced at the market price.
type PerformanceRow struct {
	AssetID          string
	AssetName        string
	AssetType        AssetType
	CapacityMW       float64
	DeliveryStart    time.Time
	Hour             int
	ForecastKW       float64
	ActualKW         float64
	ForecastMWh      float64
	ActualMWh        float64
	MarketPriceEUR   float64
	RevenueEUR       float64
	ImbalanceCostEUR float64
	NetRevenueEUR    float64
}

// AssetPerformance is the per-asset rollup of PerformanceRow.
type AssetPerformance struct {
	AssetID             string
	AssetName           string
	AssetType           AssetType
	CapacityMW          float64
	TotalForecastMWh    float64
	TotalActualMWh      float64
	TotalRevenueEUR     float64
	ImbalanceCostEUR    float64
	NetRevenueEUR       float64
	ForecastAccuracyPct float64
	CapacityFactorPct   float64
}

// PortfolioPerformance is the portfolio-level report summary, written
// as JSON alongside the report.
type PortfolioPerformance struct {
	TotalAssets                int     `json:"total_assets"`
	TotalCapacityMW            float64 `json:"total_capacity_mw"`
	TotalForecastMWh           float64 `json:"total_forecast_mwh"`
	TotalActualMWh             float64 `json:"total_actual_mwh"`
	PortfolioAccuracyPct       float64 `json:"portfolio_accuracy_pct"`
	PortfolioCapacityFactorPct float64 `json:"portfolio_capacity_factor_pct"`
	TotalRevenueEUR            float64 `json:"total_revenue_eur"`
	TotalImbalanceCostEUR      float64 `json:"total_imbalance_cost_eur"`
	NetRevenueEUR              float64 `json:"net_revenue_eur"`
	AvgMarketPrice             float64 `json:"avg_market_price"`
}
