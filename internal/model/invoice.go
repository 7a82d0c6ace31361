package model

import "github.com/shopspring/decimal"

// AssetMasterData is the merged technical + contract view of one asset,
// used for invoicing. Price and Fee fall back to technology defaults
// when no contract record exists.
type AssetMasterData struct {
	AssetID    string
	Type       AssetType
	CapacityKW float64
	PriceEUR   decimal.Decimal
	FeeEUR     decimal.Decimal
}

// Invoice is one asset's monthly production invoice. All amounts are EUR,
// rounded to cents.
type Invoice struct {
	AssetID       string          `json:"asset_id"`
	InvoiceDate   string          `json:"invoice_date"`
	ProductionMWh decimal.Decimal `json:"production_mwh"`
	BasePayoutEUR decimal.Decimal `json:"base_payout"`
	FeesEUR       decimal.Decimal `json:"fees"`
	RedispatchEUR decimal.Decimal `json:"redispatch_payout"`
	TotalNetEUR   decimal.Decimal `json:"total_net"`
	VATEUR        decimal.Decimal `json:"vat"`
	TotalGrossEUR decimal.Decimal `json:"total_gross"`
}
