package infeed

import (
	"math"
	"sort"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// AggregatePortfolio sums the reconciled rows across assets per bucket.
// AssetsContributing counts distinct asset ids present in the bucket.
func AggregatePortfolio(rows []model.ReconciledInterval) []model.PortfolioInterval {
	type accum struct {
		interval model.PortfolioInterval
		assets   map[string]struct{}
	}
	byBucket := map[int64]*accum{}
	for _, r := range rows {
		key := r.DeliveryStart.Unix()
		acc, ok := byBucket[key]
		if !ok {
			acc = &accum{
				interval: model.PortfolioInterval{DeliveryStart: r.DeliveryStart},
				assets:   map[string]struct{}{},
			}
			byBucket[key] = acc
		}
		acc.interval.ForecastKW += r.ForecastKW
		acc.interval.MeasuredKW += r.MeasuredKW
		acc.interval.BestOfInfeedKW += r.BestOfInfeedKW
		acc.assets[r.AssetID] = struct{}{}
	}

	out := make([]model.PortfolioInterval, 0, len(byBucket))
	for _, acc := range byBucket {
		acc.interval.AssetsContributing = len(acc.assets)
		out = append(out, acc.interval)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DeliveryStart.Before(out[j].DeliveryStart)
	})
	return out
}

// ComputeMetrics derives the summary scalars from the asset and
// portfolio tables. ForecastAccuracy is a normalized-RMSE score:
// max(0, (1 - RMSE/mean(measured)) * 100), defined as 0 when mean
// measured power is 0 so an unmeasured portfolio never claims accuracy.
func ComputeMetrics(asset []model.ReconciledInterval, portfolio []model.PortfolioInterval) model.InfeedMetrics {
	var m model.InfeedMetrics

	assets := map[string]struct{}{}
	bestSum := 0.0
	for _, r := range asset {
		assets[r.AssetID] = struct{}{}
		bestSum += r.BestOfInfeedKW
		if r.BestOfInfeedKW > m.MaxAssetPerformanceKW {
			m.MaxAssetPerformanceKW = r.BestOfInfeedKW
		}
	}
	m.TotalAssets = len(assets)
	if len(asset) > 0 {
		m.AvgBestOfInfeedKW = bestSum / float64(len(asset))
	}

	portfolioSum := 0.0
	for _, p := range portfolio {
		portfolioSum += p.BestOfInfeedKW
		if p.BestOfInfeedKW > m.PortfolioPeakKW {
			m.PortfolioPeakKW = p.BestOfInfeedKW
		}
	}
	if len(portfolio) > 0 {
		m.PortfolioAvgKW = portfolioSum / float64(len(portfolio))
	}

	m.ForecastAccuracy = forecastAccuracy(portfolio)
	return m
}

func forecastAccuracy(portfolio []model.PortfolioInterval) float64 {
	if len(portfolio) == 0 {
		return 0
	}
	sqSum := 0.0
	measuredSum := 0.0
	for _, p := range portfolio {
		diff := p.ForecastKW - p.MeasuredKW
		sqSum += diff * diff
		measuredSum += p.MeasuredKW
	}
	meanMeasured := measuredSum / float64(len(portfolio))
	if meanMeasured <= 0 {
		return 0
	}
	rmse := math.Sqrt(sqSum / float64(len(portfolio)))
	accuracy := (1 - rmse/meanMeasured) * 100
	if accuracy < 0 {
		return 0
	}
	return accuracy
}
