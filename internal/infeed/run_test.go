package infeed

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/config"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/data"
)

func TestRunEndToEnd(t *testing.T) {
	root := t.TempDir()
	measuredDir := filepath.Join(root, "measured")
	outputDir := filepath.Join(root, "output")
	require.NoError(t, os.MkdirAll(measuredDir, 0o755))
	require.NoError(t, os.MkdirAll(outputDir, 0o755))

	// Four raw samples in the 10:00 bucket averaging to 100.25 kW.
	base := time.Date(2025, 7, 8, 10, 0, 0, 0, time.UTC)
	measurement := fmt.Sprintf(
		`{"key":{"asset_id":"WND01"},"values":[[%d,%d,%d,%d],[100,102,98,101]]}`,
		base.UnixMilli(),
		base.Add(3*time.Minute).UnixMilli(),
		base.Add(7*time.Minute).UnixMilli(),
		base.Add(12*time.Minute).UnixMilli(),
	)
	require.NoError(t, os.WriteFile(filepath.Join(measuredDir, "WND01.json"), []byte(measurement), 0o644))

	// Forecast says 150 kW for the same bucket, so the forecast wins.
	forecastCSV := "asset_id,delivery_start,value_kw\n" +
		"WND01,2025-07-08T10:00:00Z,150\n"
	require.NoError(t, os.WriteFile(filepath.Join(outputDir, "asset_forecasts.csv"), []byte(forecastCSV), 0o644))

	cfg := config.Default()
	cfg.Timezone = "UTC"
	cfg.Paths.MeasuredInfeedDir = measuredDir
	cfg.Paths.OutputDir = outputDir

	artifacts, err := Run(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, artifacts, 3)

	rows := data.LoadReconciledCSV(filepath.Join(outputDir, "asset_best_of_infeed.csv"), time.UTC, zerolog.Nop())
	require.Len(t, rows, 1)
	assert.Equal(t, "WND01", rows[0].AssetID)
	assert.InDelta(t, 150, rows[0].ForecastKW, 1e-6)
	assert.InDelta(t, 100.25, rows[0].MeasuredKW, 1e-6)
	assert.InDelta(t, 150, rows[0].BestOfInfeedKW, 1e-6)

	for _, name := range []string{"portfolio_best_of_infeed.csv", "best_of_infeed_metrics.json"} {
		_, err := os.Stat(filepath.Join(outputDir, name))
		assert.NoError(t, err, name)
	}
}
