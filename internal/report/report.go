// Package report builds the portfolio performance report: forecast vs.
// actual production per asset, priced at the observed market price, with
// imbalance costs for forecast misses.
package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// Pricing carries the market price inputs for one report run.
type Pricing struct {
	MarketPriceEUR      float64
	ImbalancePenaltyEUR float64
	// FromTrades records whether MarketPriceEUR came from observed trades
	// or the configured default.
	FromTrades bool
}

// AssetName builds the display name used in the report.
func AssetName(assetID string, assetType model.AssetType) string {
	switch assetType {
	case model.AssetWind:
		return fmt.Sprintf("Wind Farm %s", assetID)
	case model.AssetSolar:
		return fmt.Sprintf("Solar Farm %s", assetID)
	default:
		return assetID
	}
}

// BuildRows turns reconciled production into priced performance rows.
// Energy per quarter-hour is kW/1000 * 0.25 MWh; a forecast miss in
// either direction incurs the imbalance penalty on the missed volume.
func BuildRows(production []model.ReconciledInterval, technical map[string]model.TechnicalAsset, pricing Pricing) []model.PerformanceRow {
	rows := make([]model.PerformanceRow, 0, len(production))
	for _, p := range production {
		capacityMW := 0.0
		if tech, ok := technical[p.AssetID]; ok {
			capacityMW = tech.TechnicalAttributes.CapacityKW / 1000
		}

		forecastMWh := p.ForecastKW / 1000 * 0.25
		actualMWh := p.BestOfInfeedKW / 1000 * 0.25
		revenue := actualMWh * pricing.MarketPriceEUR
		imbalance := math.Abs(forecastMWh-actualMWh) * pricing.ImbalancePenaltyEUR

		rows = append(rows, model.PerformanceRow{
			AssetID:          p.AssetID,
			AssetName:        AssetName(p.AssetID, p.AssetType),
			AssetType:        p.AssetType,
			CapacityMW:       capacityMW,
			DeliveryStart:    p.DeliveryStart,
			Hour:             p.DeliveryStart.Hour(),
			ForecastKW:       p.ForecastKW,
			ActualKW:         p.BestOfInfeedKW,
			ForecastMWh:      forecastMWh,
			ActualMWh:        actualMWh,
			MarketPriceEUR:   pricing.MarketPriceEUR,
			RevenueEUR:       revenue,
			ImbalanceCostEUR: imbalance,
			NetRevenueEUR:    revenue - imbalance,
		})
	}
	return rows
}

// ComputeAssetMetrics rolls performance rows up per asset. Forecast
// accuracy and capacity factor report 0 when their denominators are 0.
func ComputeAssetMetrics(rows []model.PerformanceRow) []model.AssetPerformance {
	byAsset := map[string]*model.AssetPerformance{}
	for _, r := range rows {
		m, ok := byAsset[r.AssetID]
		if !ok {
			m = &model.AssetPerformance{
				AssetID:    r.AssetID,
				AssetName:  r.AssetName,
				AssetType:  r.AssetType,
				CapacityMW: r.CapacityMW,
			}
			byAsset[r.AssetID] = m
		}
		m.TotalForecastMWh += r.ForecastMWh
		m.TotalActualMWh += r.ActualMWh
		m.TotalRevenueEUR += r.RevenueEUR
		m.ImbalanceCostEUR += r.ImbalanceCostEUR
		m.NetRevenueEUR += r.NetRevenueEUR
	}

	out := make([]model.AssetPerformance, 0, len(byAsset))
	for _, m := range byAsset {
		if m.TotalForecastMWh > 0 {
			m.ForecastAccuracyPct = (1 - math.Abs(m.TotalForecastMWh-m.TotalActualMWh)/m.TotalForecastMWh) * 100
		}
		if m.CapacityMW > 0 {
			m.CapacityFactorPct = m.TotalActualMWh / (m.CapacityMW * 24) * 100
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssetID < out[j].AssetID })
	return out
}

// ComputePortfolioMetrics reduces performance rows to the portfolio
// summary.
func ComputePortfolioMetrics(rows []model.PerformanceRow) model.PortfolioPerformance {
	var m model.PortfolioPerformance
	capacityByAsset := map[string]float64{}
	for _, r := range rows {
		m.TotalForecastMWh += r.ForecastMWh
		m.TotalActualMWh += r.ActualMWh
		m.TotalRevenueEUR += r.RevenueEUR
		m.TotalImbalanceCostEUR += r.ImbalanceCostEUR
		m.NetRevenueEUR += r.NetRevenueEUR
		capacityByAsset[r.AssetID] = r.CapacityMW
	}
	m.TotalAssets = len(capacityByAsset)
	for _, c := range capacityByAsset {
		m.TotalCapacityMW += c
	}
	if m.TotalForecastMWh > 0 {
		m.PortfolioAccuracyPct = (1 - math.Abs(m.TotalForecastMWh-m.TotalActualMWh)/m.TotalForecastMWh) * 100
	}
	if m.TotalCapacityMW > 0 {
		m.PortfolioCapacityFactorPct = m.TotalActualMWh / (m.TotalCapacityMW * 24) * 100
	}
	if len(rows) > 0 {
		m.AvgMarketPrice = rows[0].MarketPriceEUR
	}
	return m
}
