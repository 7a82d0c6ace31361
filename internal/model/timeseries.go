package model

// TimeseriesDocument matches the JSON shape of the VPP timeseries files
// (live measured infeed and forecast exports).
//
// Example:
//
//	{
//	  "key": {"asset_id": "WND01", "entity_id": "..."},
//	  "values": [[1749340800000, ...], [512.3, ...]]
//	}
//
// Values is a set of parallel arrays. For live measured infeed,
// values[0] holds epoch-millisecond timestamps (UTC) and values[1]
// holds measured power in kW. Forecast documents carry epoch-second
// timestamps in values[0] and forecast power in values[3].
type TimeseriesDocument struct {
	Key    AssetKey    `json:"key"`
	Values [][]float64 `json:"values"`
}

// AssetKey identifies the asset a timeseries document belongs to.
// Some exports use asset_id, older ones only entity_id.
type AssetKey struct {
	AssetID  string `json:"asset_id"`
	EntityID string `json:"entity_id"`
}

// ID returns the asset identifier, preferring asset_id over entity_id.
func (k AssetKey) ID() string {
	if k.AssetID != "" {
		return k.AssetID
	}
	return k.EntityID
}

const (
	// Column indexes into TimeseriesDocument.Values.
	MeasuredTimestampCol = 0
	MeasuredValueCol     = 1
	ForecastTimestampCol = 0
	ForecastValueCol     = 3
)
