package invoice

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/config"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

func invoiceConfig() config.InvoiceConfig {
	return config.InvoiceConfig{
		VATRate:       0.19,
		WindPriceEUR:  45,
		SolarPriceEUR: 50,
		WindFeeEUR:    2,
		SolarFeeEUR:   2.5,
	}
}

func TestBuildMasterDataAppliesTypeDefaults(t *testing.T) {
	technical := map[string]model.TechnicalAsset{
		"WND01": {AssetID: "WND01", TechnicalAttributes: model.TechnicalAttributes{CapacityKW: 5000}},
		"SOL01": {AssetID: "SOL01", TechnicalAttributes: model.TechnicalAttributes{CapacityKW: 2000}},
	}

	master := BuildMasterData(technical, nil, invoiceConfig())
	require.Len(t, master, 2)

	wind := master["WND01"]
	assert.Equal(t, model.AssetWind, wind.Type)
	assert.True(t, wind.PriceEUR.Equal(decimal.NewFromInt(45)))
	assert.True(t, wind.FeeEUR.Equal(decimal.NewFromInt(2)))

	solar := master["SOL01"]
	assert.True(t, solar.PriceEUR.Equal(decimal.NewFromInt(50)))
	assert.True(t, solar.FeeEUR.Equal(decimal.NewFromFloat(2.5)))
}

func TestBuildMasterDataContractOverridesDefaults(t *testing.T) {
	technical := map[string]model.TechnicalAsset{
		"WND01": {AssetID: "WND01"},
	}
	contracts := []model.ContractTerms{
		{AssetID: "WND01", Price: 60, Fee: 3},
		{AssetID: "WND99", Price: 99}, // no technical record, ignored
	}

	master := BuildMasterData(technical, contracts, invoiceConfig())
	require.Len(t, master, 1)
	assert.True(t, master["WND01"].PriceEUR.Equal(decimal.NewFromInt(60)))
	assert.True(t, master["WND01"].FeeEUR.Equal(decimal.NewFromInt(3)))
}

func TestCalculate(t *testing.T) {
	start := time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC)
	master := model.AssetMasterData{
		AssetID:  "WND01",
		Type:     model.AssetWind,
		PriceEUR: decimal.NewFromInt(45),
		FeeEUR:   decimal.NewFromInt(2),
	}
	// 2000 kW total best-of = 2 MWh. Rows of another asset are ignored.
	production := []model.ReconciledInterval{
		{AssetID: "WND01", DeliveryStart: start, ForecastKW: 800, BestOfInfeedKW: 1200},
		{AssetID: "WND01", DeliveryStart: start.Add(15 * time.Minute), ForecastKW: 900, BestOfInfeedKW: 800},
		{AssetID: "SOL01", DeliveryStart: start, ForecastKW: 500, BestOfInfeedKW: 500},
	}

	inv := Calculate(master, production, nil, invoiceConfig(), time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2025-07-31", inv.InvoiceDate)
	assert.True(t, inv.ProductionMWh.Equal(decimal.NewFromInt(2)), "got %s", inv.ProductionMWh)
	assert.True(t, inv.BasePayoutEUR.Equal(decimal.NewFromInt(90)), "2 MWh * 45 = %s", inv.BasePayoutEUR)
	assert.True(t, inv.FeesEUR.Equal(decimal.NewFromInt(4)))
	assert.True(t, inv.RedispatchEUR.IsZero())
	assert.True(t, inv.TotalNetEUR.Equal(decimal.NewFromInt(86)))
	assert.True(t, inv.VATEUR.Equal(decimal.NewFromFloat(16.34)), "86 * 0.19 = %s", inv.VATEUR)
	assert.True(t, inv.TotalGrossEUR.Equal(decimal.NewFromFloat(102.34)))
}

func TestCalculateRedispatchCompensatesForecastVolume(t *testing.T) {
	start := time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC)
	master := model.AssetMasterData{
		AssetID:  "WND01",
		PriceEUR: decimal.NewFromInt(45),
		FeeEUR:   decimal.Zero,
	}
	production := []model.ReconciledInterval{
		{AssetID: "WND01", DeliveryStart: start, ForecastKW: 1000, BestOfInfeedKW: 0},
	}
	redispatch := []model.RedispatchEvent{
		// 1 MWh of curtailed forecast at 80 EUR/MWh.
		{AssetID: "WND01", DeliveryStart: start, CompensationPrice: 80},
		// No matching production bucket, no compensation.
		{AssetID: "WND01", DeliveryStart: start.Add(time.Hour), CompensationPrice: 80},
		// Different asset, ignored.
		{AssetID: "SOL01", DeliveryStart: start, CompensationPrice: 80},
	}

	inv := Calculate(master, production, redispatch, invoiceConfig(), start)
	assert.True(t, inv.RedispatchEUR.Equal(decimal.NewFromInt(80)), "got %s", inv.RedispatchEUR)
	assert.True(t, inv.TotalNetEUR.Equal(decimal.NewFromInt(80)))
}

func TestGenerateAllStableOrder(t *testing.T) {
	technical := map[string]model.TechnicalAsset{
		"WND02": {AssetID: "WND02"},
		"SOL01": {AssetID: "SOL01"},
		"WND01": {AssetID: "WND01"},
	}
	master := BuildMasterData(technical, nil, invoiceConfig())

	invoices := GenerateAll(master, nil, nil, invoiceConfig(), time.Now(), zerolog.Nop())
	require.Len(t, invoices, 3)
	assert.Equal(t, "SOL01", invoices[0].AssetID)
	assert.Equal(t, "WND01", invoices[1].AssetID)
	assert.Equal(t, "WND02", invoices[2].AssetID)
}
