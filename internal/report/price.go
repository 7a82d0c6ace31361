package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rs/zerolog"
)

// LoadMarketPrice derives the market price from a previously written
// trading_data table (mean of the price column). When the table is
// absent or empty the configured default applies.
func LoadMarketPrice(path string, defaultPrice float64, log zerolog.Logger) (float64, bool) {
	f, err := os.Open(path)
	if err != nil {
		log.Info().Str("file", path).Msg("no trading data, using default market price")
		return defaultPrice, false
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil || len(rows) < 2 {
		log.Warn().Str("file", path).Err(err).Msg("trading data unreadable, using default market price")
		return defaultPrice, false
	}

	priceCol := -1
	for i, name := range rows[0] {
		if name == "price_eur_mwh" {
			priceCol = i
			break
		}
	}
	if priceCol < 0 {
		return defaultPrice, false
	}

	sum := 0.0
	count := 0
	for _, row := range rows[1:] {
		if priceCol >= len(row) {
			continue
		}
		v, err := strconv.ParseFloat(row[priceCol], 64)
		if err != nil {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return defaultPrice, false
	}
	return sum / float64(count), true
}
