package trading

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

func trade(id string, side model.Side, volume, price float64) model.Trade {
	start := time.Date(2025, 7, 8, 12, 0, 0, 0, time.UTC)
	return model.Trade{
		TradeID:       id,
		Side:          side,
		DeliveryStart: start,
		DeliveryEnd:   start.Add(15 * time.Minute),
		VolumeMW:      decimal.NewFromFloat(volume),
		PriceEURMWh:   decimal.NewFromFloat(price),
	}
}

func TestPrepareSignsRevenueBySide(t *testing.T) {
	prepared := Prepare([]model.Trade{
		trade("1", model.SideSell, 10, 50),
		trade("2", model.SideBuy, 4, 25),
	})
	require.Len(t, prepared, 2)

	assert.True(t, prepared[0].RevenueEUR.Equal(decimal.NewFromInt(500)))
	assert.True(t, prepared[0].SignedVolumeMW.Equal(decimal.NewFromInt(10)))

	assert.True(t, prepared[1].RevenueEUR.Equal(decimal.NewFromInt(-100)))
	assert.True(t, prepared[1].SignedVolumeMW.Equal(decimal.NewFromInt(-4)))
}

func TestPrepareAssignsBooksRoundRobin(t *testing.T) {
	var trades []model.Trade
	for i := 0; i < 12; i++ {
		trades = append(trades, trade(fmt.Sprintf("%d", i), model.SideSell, 1, 10))
	}
	prepared := Prepare(trades)

	assert.Equal(t, "A01", prepared[0].BookID)
	assert.Equal(t, "A10", prepared[9].BookID)
	// Wraps around after the tenth book.
	assert.Equal(t, "A01", prepared[10].BookID)
	assert.Equal(t, "A02", prepared[11].BookID)
}

func TestComputeBookMetrics(t *testing.T) {
	// Two trades in the same book: sell 10 MW @ 50, buy 10 MW @ 30.
	prepared := Prepare([]model.Trade{trade("1", model.SideSell, 10, 50)})
	more := Prepare([]model.Trade{trade("2", model.SideBuy, 10, 30)})
	prepared = append(prepared, more...)

	books := ComputeBookMetrics(prepared)
	require.Len(t, books, 1)

	b := books[0]
	assert.Equal(t, "A01", b.BookID)
	assert.Equal(t, 2, b.NumTrades)
	assert.True(t, b.RevenueEUR.Equal(decimal.NewFromInt(200)), "500 - 300 = %s", b.RevenueEUR)
	assert.True(t, b.NetVolumeMW.IsZero())
	assert.True(t, b.TotalVolumeMW.Equal(decimal.NewFromInt(20)))
	assert.True(t, b.VWAPEURMWh.Equal(decimal.NewFromInt(40)), "vwap = %s", b.VWAPEURMWh)
}

func TestComputeBookMetricsZeroVolume(t *testing.T) {
	prepared := Prepare([]model.Trade{trade("1", model.SideSell, 0, 50)})
	books := ComputeBookMetrics(prepared)
	require.Len(t, books, 1)
	assert.True(t, books[0].VWAPEURMWh.IsZero())
}

func TestComputePortfolioMetrics(t *testing.T) {
	prepared := Prepare([]model.Trade{
		trade("1", model.SideSell, 10, 50),
		trade("2", model.SideBuy, 4, 25),
	})

	m := ComputePortfolioMetrics(prepared)
	assert.Equal(t, 2, m.TotalTrades)
	assert.Equal(t, 1, m.SellTrades)
	assert.Equal(t, 1, m.BuyTrades)
	assert.InDelta(t, 400, m.TotalRevenueEUR, 1e-9)
	assert.InDelta(t, 6, m.NetTradedVolumeMW, 1e-9)
	assert.InDelta(t, 14, m.TotalVolumeMW, 1e-9)
	// (10*50 + 4*25) / 14
	assert.InDelta(t, 600.0/14.0, m.PortfolioVWAP, 1e-9)
}

func TestComputePortfolioMetricsEmpty(t *testing.T) {
	m := ComputePortfolioMetrics(nil)
	assert.Zero(t, m.TotalTrades)
	assert.Zero(t, m.PortfolioVWAP)
}
