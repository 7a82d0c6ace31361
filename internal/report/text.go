package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// RenderText builds the human-readable performance report.
func RenderText(assets []model.AssetPerformance, portfolio model.PortfolioPerformance, generatedAt time.Time) string {
	var b strings.Builder
	line := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 40)

	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, "FLEXPOWER PORTFOLIO PERFORMANCE REPORT")
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Report Generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "PORTFOLIO OVERVIEW")
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "Total Assets: %d\n", portfolio.TotalAssets)
	fmt.Fprintf(&b, "Total Capacity: %.2f MW\n", portfolio.TotalCapacityMW)
	fmt.Fprintf(&b, "Total Production: %.2f MWh\n", portfolio.TotalActualMWh)
	fmt.Fprintf(&b, "Portfolio Capacity Factor: %.1f%%\n", portfolio.PortfolioCapacityFactorPct)
	fmt.Fprintf(&b, "Portfolio Forecast Accuracy: %.1f%%\n", portfolio.PortfolioAccuracyPct)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "FINANCIAL PERFORMANCE")
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "Total Revenue: EUR %.2f\n", portfolio.TotalRevenueEUR)
	fmt.Fprintf(&b, "Total Imbalance Costs: EUR %.2f\n", portfolio.TotalImbalanceCostEUR)
	fmt.Fprintf(&b, "Net Revenue: EUR %.2f\n", portfolio.NetRevenueEUR)
	fmt.Fprintf(&b, "Average Market Price: EUR %.2f/MWh\n", portfolio.AvgMarketPrice)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "INDIVIDUAL ASSET PERFORMANCE")
	fmt.Fprintln(&b, strings.Repeat("-", 80))
	for _, a := range assets {
		fmt.Fprintf(&b, "\n%s (%s)\n", a.AssetName, a.AssetID)
		fmt.Fprintf(&b, "  Type: %s | Capacity: %.2f MW\n", a.AssetType, a.CapacityMW)
		fmt.Fprintf(&b, "  Production: %.2f MWh\n", a.TotalActualMWh)
		fmt.Fprintf(&b, "  Capacity Factor: %.1f%%\n", a.CapacityFactorPct)
		fmt.Fprintf(&b, "  Forecast Accuracy: %.1f%%\n", a.ForecastAccuracyPct)
		fmt.Fprintf(&b, "  Revenue: EUR %.2f\n", a.TotalRevenueEUR)
		fmt.Fprintf(&b, "  Imbalance Cost: EUR %.2f\n", a.ImbalanceCostEUR)
		fmt.Fprintf(&b, "  Net Revenue: EUR %.2f\n", a.NetRevenueEUR)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, line)
	return b.String()
}
