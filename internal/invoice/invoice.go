// Package invoice turns reconciled production into per-asset invoices:
// production payout at the contracted price, management fees, redispatch
// compensation and VAT.
package invoice

import (
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/config"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// BuildMasterData merges technical records with contract terms. Assets
// without a contract fall back to the configured per-technology default
// price and fee.
func BuildMasterData(technical map[string]model.TechnicalAsset, contracts []model.ContractTerms, cfg config.InvoiceConfig) map[string]model.AssetMasterData {
	out := map[string]model.AssetMasterData{}
	for id, tech := range technical {
		assetType := model.AssetTypeFromID(id)
		price := cfg.SolarPriceEUR
		fee := cfg.SolarFeeEUR
		if assetType == model.AssetWind {
			price = cfg.WindPriceEUR
			fee = cfg.WindFeeEUR
		}
		out[id] = model.AssetMasterData{
			AssetID:    id,
			Type:       assetType,
			CapacityKW: tech.TechnicalAttributes.CapacityKW,
			PriceEUR:   decimal.NewFromFloat(price),
			FeeEUR:     decimal.NewFromFloat(fee),
		}
	}
	for _, c := range contracts {
		master, ok := out[c.AssetID]
		if !ok {
			continue
		}
		if c.Price != 0 {
			master.PriceEUR = decimal.NewFromFloat(c.Price)
		}
		if c.Fee != 0 {
			master.FeeEUR = decimal.NewFromFloat(c.Fee)
		}
		out[c.AssetID] = master
	}
	return out
}

// Calculate builds one asset's invoice from its reconciled production
// rows and any redispatch events. Production is billed as the summed
// best-of-infeed power converted to MWh; redispatch compensates the
// forecast volume of the curtailed interval.
func Calculate(master model.AssetMasterData, production []model.ReconciledInterval, redispatch []model.RedispatchEvent, cfg config.InvoiceConfig, invoiceDate time.Time) model.Invoice {
	thousand := decimal.NewFromInt(1000)

	bestSum := decimal.Zero
	forecastByBucket := map[int64]decimal.Decimal{}
	for _, row := range production {
		if row.AssetID != master.AssetID {
			continue
		}
		bestSum = bestSum.Add(decimal.NewFromFloat(row.BestOfInfeedKW))
		forecastByBucket[row.DeliveryStart.Unix()] = decimal.NewFromFloat(row.ForecastKW)
	}
	productionMWh := bestSum.Div(thousand)

	basePayout := productionMWh.Mul(master.PriceEUR)
	fees := productionMWh.Mul(master.FeeEUR)

	redispatchPayout := decimal.Zero
	for _, ev := range redispatch {
		if ev.AssetID != master.AssetID {
			continue
		}
		forecastKW, ok := forecastByBucket[ev.DeliveryStart.Unix()]
		if !ok {
			continue
		}
		comp := forecastKW.Div(thousand).Mul(decimal.NewFromFloat(ev.CompensationPrice))
		redispatchPayout = redispatchPayout.Add(comp)
	}

	totalNet := basePayout.Sub(fees).Add(redispatchPayout)
	vat := totalNet.Mul(decimal.NewFromFloat(cfg.VATRate))

	return model.Invoice{
		AssetID:       master.AssetID,
		InvoiceDate:   invoiceDate.Format("2006-01-02"),
		ProductionMWh: productionMWh.Round(2),
		BasePayoutEUR: basePayout.Round(2),
		FeesEUR:       fees.Round(2),
		RedispatchEUR: redispatchPayout.Round(2),
		TotalNetEUR:   totalNet.Round(2),
		VATEUR:        vat.Round(2),
		TotalGrossEUR: totalNet.Add(vat).Round(2),
	}
}

// GenerateAll builds invoices for every asset with master data, in a
// stable asset order.
func GenerateAll(masterData map[string]model.AssetMasterData, production []model.ReconciledInterval, redispatch []model.RedispatchEvent, cfg config.InvoiceConfig, invoiceDate time.Time, log zerolog.Logger) []model.Invoice {
	ids := make([]string, 0, len(masterData))
	for id := range masterData {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	invoices := make([]model.Invoice, 0, len(ids))
	for _, id := range ids {
		inv := Calculate(masterData[id], production, redispatch, cfg, invoiceDate)
		invoices = append(invoices, inv)
		log.Debug().Str("asset", id).Str("total_gross", inv.TotalGrossEUR.String()).Msg("invoice generated")
	}
	return invoices
}
