package data

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// LoadTechnicalAssets reads every technical_data JSON file in dir and
// returns the assets keyed by asset id. Missing directory or bad files
// degrade to fewer (or zero) assets.
func LoadTechnicalAssets(dir string, log zerolog.Logger) map[string]model.TechnicalAsset {
	out := map[string]model.TechnicalAsset{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warn().Str("dir", dir).Err(err).Msg("technical data directory not readable")
		return out
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			log.Warn().Str("file", e.Name()).Err(err).Msg("skipping technical data file")
			continue
		}
		var file model.TechnicalDataFile
		if err := json.Unmarshal(raw, &file); err != nil {
			log.Warn().Str("file", e.Name()).Err(err).Msg("skipping malformed technical data file")
			continue
		}
		for _, asset := range file.Assets {
			if asset.AssetID != "" {
				out[asset.AssetID] = asset
			}
		}
	}
	return out
}

// LoadContractTerms reads every contract_data JSON file in dir. Each file
// holds an array of contract records.
func LoadContractTerms(dir string, log zerolog.Logger) []model.ContractTerms {
	var out []model.ContractTerms
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warn().Str("dir", dir).Err(err).Msg("contract data directory not readable")
		return out
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			log.Warn().Str("file", e.Name()).Err(err).Msg("skipping contract data file")
			continue
		}
		var records []model.ContractTerms
		if err := json.Unmarshal(raw, &records); err != nil {
			log.Warn().Str("file", e.Name()).Err(err).Msg("skipping malformed contract data file")
			continue
		}
		out = append(out, records...)
	}
	return out
}

type rawRedispatchEvent struct {
	AssetID           string  `json:"asset_id"`
	DeliveryStart     string  `json:"delivery_start"`
	CompensationPrice float64 `json:"compensation_price"`
}

// LoadRedispatchEvents reads the DSO redispatch JSON files in dir.
// Records with unparseable timestamps are dropped individually.
func LoadRedispatchEvents(dir string, loc *time.Location, log zerolog.Logger) []model.RedispatchEvent {
	var out []model.RedispatchEvent
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warn().Str("dir", dir).Err(err).Msg("redispatch directory not readable")
		return out
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			log.Warn().Str("file", e.Name()).Err(err).Msg("skipping redispatch file")
			continue
		}
		var records []rawRedispatchEvent
		if err := json.Unmarshal(raw, &records); err != nil {
			log.Warn().Str("file", e.Name()).Err(err).Msg("skipping malformed redispatch file")
			continue
		}
		for _, r := range records {
			ts, err := ParseTimestamp(r.DeliveryStart, loc)
			if err != nil {
				log.Warn().Str("file", e.Name()).Str("asset", r.AssetID).Err(err).Msg("dropping redispatch record")
				continue
			}
			out = append(out, model.RedispatchEvent{
				AssetID:           r.AssetID,
				DeliveryStart:     ts,
				CompensationPrice: r.CompensationPrice,
			})
		}
	}
	return out
}
