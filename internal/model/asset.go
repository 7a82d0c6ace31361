package model

import (
	"strings"
	"time"
)

// AssetType is a coarse technology classification derived from the
// asset identifier naming scheme. Keep these values stable; they are
// intended for CSV output.
type AssetType string

const (
	AssetWind    AssetType = "WND"
	AssetSolar   AssetType = "SOL"
	AssetUnknown AssetType = "UNKNOWN"
)

// AssetTypeFromID classifies an asset by substring match on its identifier.
func AssetTypeFromID(assetID string) AssetType {
	switch {
	case strings.Contains(assetID, "WND"):
		return AssetWind
	case strings.Contains(assetID, "SOL"):
		return AssetSolar
	default:
		return AssetUnknown
	}
}

// TechnicalAsset is one entry from the VPP technical_data files.
type TechnicalAsset struct {
	AssetID             string              `json:"asset_id"`
	TechnicalAttributes TechnicalAttributes `json:"technical_attributes"`
}

type TechnicalAttributes struct {
	CapacityKW float64 `json:"capacity_kw"`
}

// TechnicalDataFile is the on-disk wrapper around technical asset records.
type TechnicalDataFile struct {
	Assets []TechnicalAsset `json:"assets"`
}

// ContractTerms is one entry from the VPP contract_data files.
// Price and Fee are EUR/MWh.
type ContractTerms struct {
	AssetID string  `json:"asset_id"`
	Price   float64 `json:"price"`
	Fee     float64 `json:"fee"`
}

// RedispatchEvent is one curtailment compensation record from the
// distribution system operator. DeliveryStart is parsed from the
// file's timestamp string by the loader.
type RedispatchEvent struct {
	AssetID           string
	DeliveryStart     time.Time
	CompensationPrice float64
}
