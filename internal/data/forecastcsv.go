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

// LoadForecastCSV reads an asset forecast table
// (asset_id, delivery_start, value_kw in any column order matching the
// header). A missing file returns an empty slice: best-of-infeed treats
// absent forecasts as a degenerate but valid input.
func LoadForecastCSV(path string, loc *time.Location, log zerolog.Logger) []model.ForecastRecord {
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Str("file", path).Err(err).Msg("forecast table not available")
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		log.Warn().Str("file", path).Err(err).Msg("forecast table unreadable")
		return nil
	}
	if len(rows) < 2 {
		return nil
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[name] = i
	}
	for _, required := range []string{"asset_id", "delivery_start", "value_kw"} {
		if _, ok := cols[required]; !ok {
			log.Warn().Str("file", path).Str("column", required).Msg("forecast table missing column")
			return nil
		}
	}

	var records []model.ForecastRecord
	for i, row := range rows[1:] {
		rec, err := parseForecastRow(row, cols, loc)
		if err != nil {
			log.Warn().Int("row", i+2).Err(err).Msg("dropping forecast row")
			continue
		}
		records = append(records, rec)
	}
	return records
}

func parseForecastRow(row []string, cols map[string]int, loc *time.Location) (model.ForecastRecord, error) {
	if len(row) <= cols["value_kw"] || len(row) <= cols["delivery_start"] || len(row) <= cols["asset_id"] {
		return model.ForecastRecord{}, fmt.Errorf("short row")
	}
	ts, err := ParseTimestamp(row[cols["delivery_start"]], loc)
	if err != nil {
		return model.ForecastRecord{}, err
	}
	value, err := strconv.ParseFloat(row[cols["value_kw"]], 64)
	if err != nil {
		return model.ForecastRecord{}, fmt.Errorf("value_kw: %w", err)
	}
	return model.ForecastRecord{
		AssetID:       row[cols["asset_id"]],
		DeliveryStart: ts.In(loc),
		ValueKW:       value,
	}, nil
}
