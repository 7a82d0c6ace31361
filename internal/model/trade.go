package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side is the direction of an exchange trade.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Multiplier returns the revenue sign for the side: sells earn, buys cost.
func (s Side) Multiplier() decimal.Decimal {
	if s == SideSell {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(-1)
}

// Trade is one private exchange trade as loaded from the trade report CSV.
type Trade struct {
	TradeID       string
	Side          Side
	DeliveryStart time.Time
	DeliveryEnd   time.Time
	VolumeMW      decimal.Decimal
	PriceEURMWh   decimal.Decimal
}

// PreparedTrade is a trade enriched with derived trading columns and the
// synthetic book assignment used for grouping.
type PreparedTrade struct {
	Trade
	BookID         string
	RevenueEUR     decimal.Decimal
	SignedVolumeMW decimal.Decimal
}

// BookMetrics is the per-book trading summary (one row of
// asset_trading_metrics.csv).
type BookMetrics struct {
	BookID        string
	RevenueEUR    decimal.Decimal
	NetVolumeMW   decimal.Decimal
	TotalVolumeMW decimal.Decimal
	NumTrades     int
	VWAPEURMWh    decimal.Decimal
}

// PortfolioTradingMetrics is the desk-level summary written as JSON.
type PortfolioTradingMetrics struct {
	TotalRevenueEUR   float64 `json:"total_revenue_eur"`
	TotalTrades       int     `json:"total_trades"`
	NetTradedVolumeMW float64 `json:"net_traded_volume_mw"`
	PortfolioVWAP     float64 `json:"portfolio_vwap"`
	BuyTrades         int     `json:"buy_trades"`
	SellTrades        int     `json:"sell_trades"`
	TotalVolumeMW     float64 `json:"total_volume_mw"`
}
