package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// LoadTrades reads an exchange trade report CSV. The exports are
// semicolon-separated and carry one report title line above the actual
// column header. Rows that fail to parse are dropped with a warning.
func LoadTrades(path string, loc *time.Location, log zerolog.Logger) ([]model.Trade, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("trade report %s has no header", path)
	}

	// rows[0] is the report title, rows[1] the column header.
	cols := map[string]int{}
	for i, name := range rows[1] {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"TradeId", "Side", "Volume", "Price", "DeliveryStart"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("trade report %s missing column %s", path, required)
		}
	}

	var trades []model.Trade
	for i, row := range rows[2:] {
		trade, err := parseTradeRow(row, cols, loc)
		if err != nil {
			log.Warn().Int("row", i+3).Err(err).Msg("dropping trade row")
			continue
		}
		trades = append(trades, trade)
	}
	return trades, nil
}

func parseTradeRow(row []string, cols map[string]int, loc *time.Location) (model.Trade, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	start, err := ParseTimestamp(field("DeliveryStart"), loc)
	if err != nil {
		return model.Trade{}, err
	}
	var end time.Time
	if s := field("DeliveryEnd"); s != "" {
		if end, err = ParseTimestamp(s, loc); err != nil {
			return model.Trade{}, err
		}
	}
	volume, err := decimal.NewFromString(field("Volume"))
	if err != nil {
		return model.Trade{}, fmt.Errorf("volume: %w", err)
	}
	price, err := decimal.NewFromString(field("Price"))
	if err != nil {
		return model.Trade{}, fmt.Errorf("price: %w", err)
	}

	side := model.Side(strings.ToLower(field("Side")))
	if side != model.SideBuy && side != model.SideSell {
		return model.Trade{}, fmt.Errorf("unknown side %q", field("Side"))
	}

	return model.Trade{
		TradeID:       field("TradeId"),
		Side:          side,
		DeliveryStart: start,
		DeliveryEnd:   end,
		VolumeMW:      volume,
		PriceEURMWh:   price,
	}, nil
}
