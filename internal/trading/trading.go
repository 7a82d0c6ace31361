// Package trading computes desk P&L metrics from exchange trade reports.
package trading

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// Prepare enriches raw trades with derived trading columns. Sells earn
// revenue, buys cost it; signed volume nets out the position. Trades are
// assigned round-robin to ten synthetic books (A01..A10) for grouping,
// mirroring the upstream report which carries no real book column.
func Prepare(trades []model.Trade) []model.PreparedTrade {
	out := make([]model.PreparedTrade, 0, len(trades))
	for i, t := range trades {
		mult := t.Side.Multiplier()
		out = append(out, model.PreparedTrade{
			Trade:          t,
			BookID:         fmt.Sprintf("A%02d", i%10+1),
			RevenueEUR:     t.VolumeMW.Mul(t.PriceEURMWh).Mul(mult),
			SignedVolumeMW: t.VolumeMW.Mul(mult),
		})
	}
	return out
}

// ComputeBookMetrics rolls prepared trades up per book. VWAP is the
// volume-weighted average price; a book with zero total volume reports
// VWAP 0 rather than dividing by it.
func ComputeBookMetrics(trades []model.PreparedTrade) []model.BookMetrics {
	type accum struct {
		m        model.BookMetrics
		priceVol decimal.Decimal
	}
	byBook := map[string]*accum{}
	for _, t := range trades {
		acc, ok := byBook[t.BookID]
		if !ok {
			acc = &accum{m: model.BookMetrics{BookID: t.BookID}}
			byBook[t.BookID] = acc
		}
		acc.m.RevenueEUR = acc.m.RevenueEUR.Add(t.RevenueEUR)
		acc.m.NetVolumeMW = acc.m.NetVolumeMW.Add(t.SignedVolumeMW)
		acc.m.TotalVolumeMW = acc.m.TotalVolumeMW.Add(t.VolumeMW)
		acc.m.NumTrades++
		acc.priceVol = acc.priceVol.Add(t.PriceEURMWh.Mul(t.VolumeMW))
	}

	out := make([]model.BookMetrics, 0, len(byBook))
	for _, acc := range byBook {
		if !acc.m.TotalVolumeMW.IsZero() {
			acc.m.VWAPEURMWh = acc.priceVol.Div(acc.m.TotalVolumeMW)
		}
		out = append(out, acc.m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookID < out[j].BookID })
	return out
}

// ComputePortfolioMetrics reduces prepared trades to the desk-level
// summary written as JSON.
func ComputePortfolioMetrics(trades []model.PreparedTrade) model.PortfolioTradingMetrics {
	var m model.PortfolioTradingMetrics
	revenue := decimal.Zero
	netVolume := decimal.Zero
	totalVolume := decimal.Zero
	priceVol := decimal.Zero

	for _, t := range trades {
		revenue = revenue.Add(t.RevenueEUR)
		netVolume = netVolume.Add(t.SignedVolumeMW)
		totalVolume = totalVolume.Add(t.VolumeMW)
		priceVol = priceVol.Add(t.PriceEURMWh.Mul(t.VolumeMW))
		switch t.Side {
		case model.SideBuy:
			m.BuyTrades++
		case model.SideSell:
			m.SellTrades++
		}
	}

	m.TotalTrades = len(trades)
	m.TotalRevenueEUR = revenue.InexactFloat64()
	m.NetTradedVolumeMW = netVolume.InexactFloat64()
	m.TotalVolumeMW = totalVolume.InexactFloat64()
	if !totalVolume.IsZero() {
		m.PortfolioVWAP = priceVol.Div(totalVolume).InexactFloat64()
	}
	return m
}
