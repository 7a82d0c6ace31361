package infeed

import (
	"sort"
	"time"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// Reconcile outer-joins the measured series against the asset forecasts
// and computes best-of-infeed per (asset, bucket). A bucket present on
// only one side still produces a row with the missing side at 0. Both
// sides are clamped to >= 0 before the comparison; negative power is a
// data artifact, never a valid infeed.
//
// With no forecast data at all, best-of-infeed degenerates to the
// measured series verbatim, tagged "measured" throughout.
//
// Output ordering is deterministic (asset, then bucket), so identical
// inputs serialize to identical bytes.
func Reconcile(measured []model.MeasuredInterval, forecasts []model.ForecastRecord) []model.ReconciledInterval {
	if len(forecasts) == 0 {
		out := make([]model.ReconciledInterval, 0, len(measured))
		for _, m := range measured {
			out = append(out, model.ReconciledInterval{
				AssetID:        m.AssetID,
				AssetType:      m.AssetType,
				DeliveryStart:  m.DeliveryStart,
				ForecastKW:     0,
				MeasuredKW:     clamp(m.MeasuredKW),
				BestOfInfeedKW: clamp(m.MeasuredKW),
				DataSource:     model.SourceMeasured,
			})
		}
		sortReconciled(out)
		return out
	}

	measuredByKey := map[joinKey]model.MeasuredInterval{}
	for _, m := range measured {
		measuredByKey[joinKey{m.AssetID, m.DeliveryStart.Unix()}] = m
	}
	forecastByKey := map[joinKey]float64{}
	starts := map[joinKey]time.Time{}
	for _, f := range forecasts {
		key := joinKey{f.AssetID, f.DeliveryStart.Unix()}
		forecastByKey[key] = f.ValueKW
		starts[key] = f.DeliveryStart
	}
	for _, m := range measured {
		key := joinKey{m.AssetID, m.DeliveryStart.Unix()}
		if _, ok := starts[key]; !ok {
			starts[key] = m.DeliveryStart
		}
	}

	out := make([]model.ReconciledInterval, 0, len(starts))
	for key, start := range starts {
		forecastKW := clamp(forecastByKey[key])
		measuredKW := 0.0
		if m, ok := measuredByKey[key]; ok {
			measuredKW = clamp(m.MeasuredKW)
		}

		best := forecastKW
		source := model.SourceForecast
		if measuredKW > forecastKW {
			best = measuredKW
			source = model.SourceMeasured
		}

		out = append(out, model.ReconciledInterval{
			AssetID:        key.assetID,
			AssetType:      model.AssetTypeFromID(key.assetID),
			DeliveryStart:  start,
			ForecastKW:     forecastKW,
			MeasuredKW:     measuredKW,
			BestOfInfeedKW: best,
			DataSource:     source,
		})
	}
	sortReconciled(out)
	return out
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func sortReconciled(rows []model.ReconciledInterval) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AssetID != rows[j].AssetID {
			return rows[i].AssetID < rows[j].AssetID
		}
		return rows[i].DeliveryStart.Before(rows[j].DeliveryStart)
	})
}
