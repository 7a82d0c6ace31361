// Package infeed implements the best-of-infeed reconciliation: measured
// infeed is bucketed and quality-filtered, joined against the asset
// forecasts, and the pointwise maximum taken per 15-minute interval.
package infeed

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// Bucket floors an instant to its 15-minute delivery interval in loc.
// All joins between measured and forecast series happen at this
// granularity only.
func Bucket(t time.Time, loc *time.Location) time.Time {
	return t.In(loc).Truncate(15 * time.Minute)
}

type bucketAccum struct {
	assetID string
	start   time.Time
	sum     float64
	count   int
}

// BuildAssetSeries reduces raw measurement documents to quality-filtered
// 15-minute buckets. Per bucket the mean of all raw samples is kept,
// negative samples are discarded as sensor errors, and buckets with
// fewer than minSamples raw samples are dropped entirely rather than
// zero-filled. Documents with missing or mismatched value arrays are
// skipped with a warning.
func BuildAssetSeries(docs []*model.TimeseriesDocument, loc *time.Location, minSamples int, log zerolog.Logger) []model.MeasuredInterval {
	buckets := map[joinKey]*bucketAccum{}

	for _, doc := range docs {
		assetID := doc.Key.ID()
		if assetID == "" {
			log.Warn().Msg("skipping measurement document without asset id")
			continue
		}
		if len(doc.Values) < 2 {
			log.Warn().Str("asset", assetID).Msg("skipping measurement document without value arrays")
			continue
		}
		timestamps := doc.Values[model.MeasuredTimestampCol]
		values := doc.Values[model.MeasuredValueCol]
		if len(timestamps) == 0 || len(values) == 0 {
			log.Warn().Str("asset", assetID).Msg("skipping empty measurement document")
			continue
		}
		if len(timestamps) != len(values) {
			log.Warn().Str("asset", assetID).
				Int("timestamps", len(timestamps)).
				Int("values", len(values)).
				Msg("skipping measurement document with mismatched arrays")
			continue
		}

		for i, ms := range timestamps {
			v := values[i]
			if v < 0 {
				// Sensor error, not clamped: the sample carries no information.
				continue
			}
			start := Bucket(time.UnixMilli(int64(ms)), loc)
			key := joinKey{assetID: assetID, unix: start.Unix()}
			acc, ok := buckets[key]
			if !ok {
				acc = &bucketAccum{assetID: assetID, start: start}
				buckets[key] = acc
			}
			acc.sum += v
			acc.count++
		}
	}

	series := make([]model.MeasuredInterval, 0, len(buckets))
	for _, acc := range buckets {
		if acc.count < minSamples {
			continue
		}
		series = append(series, model.MeasuredInterval{
			AssetID:       acc.assetID,
			AssetType:     model.AssetTypeFromID(acc.assetID),
			DeliveryStart: acc.start,
			MeasuredKW:    acc.sum / float64(acc.count),
			SampleCount:   acc.count,
		})
	}
	sortMeasured(series)
	return series
}

func sortMeasured(series []model.MeasuredInterval) {
	sort.Slice(series, func(i, j int) bool {
		if series[i].AssetID != series[j].AssetID {
			return series[i].AssetID < series[j].AssetID
		}
		return series[i].DeliveryStart.Before(series[j].DeliveryStart)
	})
}

// joinKey identifies an (asset, bucket) pair. Buckets are keyed by unix
// seconds so that map lookups never depend on time.Location identity.
type joinKey struct {
	assetID string
	unix    int64
}
