package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// BuildReportXLSX renders the report as a workbook: one summary sheet,
// one sheet with the per-asset rollup.
func BuildReportXLSX(assets []model.AssetPerformance, portfolio model.PortfolioPerformance) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	assetsSheet := "assets"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(assetsSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Portfolio Performance Report")
	summaryRows := []struct {
		label string
		value interface{}
	}{
		{"Total Assets", portfolio.TotalAssets},
		{"Total Capacity (MW)", portfolio.TotalCapacityMW},
		{"Total Forecast (MWh)", portfolio.TotalForecastMWh},
		{"Total Production (MWh)", portfolio.TotalActualMWh},
		{"Forecast Accuracy (%)", portfolio.PortfolioAccuracyPct},
		{"Capacity Factor (%)", portfolio.PortfolioCapacityFactorPct},
		{"Total Revenue (EUR)", portfolio.TotalRevenueEUR},
		{"Imbalance Costs (EUR)", portfolio.TotalImbalanceCostEUR},
		{"Net Revenue (EUR)", portfolio.NetRevenueEUR},
		{"Avg Market Price (EUR/MWh)", portfolio.AvgMarketPrice},
	}
	for i, r := range summaryRows {
		row := i + 3
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), r.label)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), r.value)
	}

	headers := []string{
		"Asset", "Name", "Type", "Capacity (MW)",
		"Forecast (MWh)", "Actual (MWh)", "Accuracy (%)", "Capacity Factor (%)",
		"Revenue (EUR)", "Imbalance (EUR)", "Net Revenue (EUR)",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(assetsSheet, cell, h)
	}
	for i, a := range assets {
		row := i + 2
		values := []interface{}{
			a.AssetID, a.AssetName, string(a.AssetType), a.CapacityMW,
			a.TotalForecastMWh, a.TotalActualMWh, a.ForecastAccuracyPct, a.CapacityFactorPct,
			a.TotalRevenueEUR, a.ImbalanceCostEUR, a.NetRevenueEUR,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			_ = f.SetCellValue(assetsSheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
