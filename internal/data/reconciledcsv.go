package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// LoadReconciledCSV reads a previously written asset_best_of_infeed
// table back into memory. Downstream stages (invoicing, performance
// report) consume reconciliation output through this loader only.
func LoadReconciledCSV(path string, loc *time.Location, log zerolog.Logger) []model.ReconciledInterval {
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Str("file", path).Err(err).Msg("best-of-infeed table not available")
		return nil
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		log.Warn().Str("file", path).Err(err).Msg("best-of-infeed table unreadable")
		return nil
	}
	if len(rows) < 2 {
		return nil
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[name] = i
	}
	required := []string{"asset_id", "asset_type", "delivery_start", "forecast_kw", "measured_kw", "best_of_infeed_kw", "data_source"}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			log.Warn().Str("file", path).Str("column", name).Msg("best-of-infeed table missing column")
			return nil
		}
	}

	var out []model.ReconciledInterval
	for i, row := range rows[1:] {
		rec, err := parseReconciledRow(row, cols, loc)
		if err != nil {
			log.Warn().Int("row", i+2).Err(err).Msg("dropping best-of-infeed row")
			continue
		}
		out = append(out, rec)
	}
	return out
}

func parseReconciledRow(row []string, cols map[string]int, loc *time.Location) (model.ReconciledInterval, error) {
	get := func(name string) (string, error) {
		idx := cols[name]
		if idx >= len(row) {
			return "", fmt.Errorf("short row")
		}
		return row[idx], nil
	}
	num := func(name string) (float64, error) {
		s, err := get(name)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		return v, nil
	}

	startStr, err := get("delivery_start")
	if err != nil {
		return model.ReconciledInterval{}, err
	}
	start, err := ParseTimestamp(startStr, loc)
	if err != nil {
		return model.ReconciledInterval{}, err
	}
	forecast, err := num("forecast_kw")
	if err != nil {
		return model.ReconciledInterval{}, err
	}
	measured, err := num("measured_kw")
	if err != nil {
		return model.ReconciledInterval{}, err
	}
	best, err := num("best_of_infeed_kw")
	if err != nil {
		return model.ReconciledInterval{}, err
	}
	assetID, _ := get("asset_id")
	assetType, _ := get("asset_type")
	source, _ := get("data_source")

	return model.ReconciledInterval{
		AssetID:        assetID,
		AssetType:      model.AssetType(assetType),
		DeliveryStart:  start.In(loc),
		ForecastKW:     forecast,
		MeasuredKW:     measured,
		BestOfInfeedKW: best,
		DataSource:     source,
	}, nil
}
