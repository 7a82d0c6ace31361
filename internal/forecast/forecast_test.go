package forecast

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

func TestGenerateIntervals(t *testing.T) {
	day := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	intervals := GenerateIntervals(day)
	require.Len(t, intervals, 96)
	assert.Equal(t, day, intervals[0])
	assert.Equal(t, day.Add(15*time.Minute), intervals[1])
	assert.Equal(t, day.Add(23*time.Hour+45*time.Minute), intervals[95])
}

func forecastDoc(assetID string, start time.Time, values []float64) *model.TimeseriesDocument {
	timestamps := make([]float64, len(values))
	for i := range values {
		timestamps[i] = float64(start.Add(time.Duration(i) * 15 * time.Minute).Unix())
	}
	// Forecast documents carry power in the fourth value array.
	filler := make([]float64, len(values))
	return &model.TimeseriesDocument{
		Key:    model.AssetKey{AssetID: assetID},
		Values: [][]float64{timestamps, filler, filler, values},
	}
}

func TestBuildTables(t *testing.T) {
	start := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	docs := []*model.TimeseriesDocument{
		forecastDoc("WND01", start, []float64{100, 110}),
		forecastDoc("SOL01", start, []float64{20, 30}),
	}

	records, portfolio := BuildTables(docs, time.UTC)
	require.Len(t, records, 4)

	// Sorted by asset, then time.
	assert.Equal(t, "SOL01", records[0].AssetID)
	assert.Equal(t, 20.0, records[0].ValueKW)
	assert.Equal(t, "WND01", records[2].AssetID)
	assert.True(t, records[2].DeliveryStart.Equal(start))

	require.Len(t, portfolio, 2)
	assert.InDelta(t, 120, portfolio[0].ForecastKW, 1e-9)
	assert.InDelta(t, 140, portfolio[1].ForecastKW, 1e-9)
}

func TestBuildTablesIgnoresDocsWithoutForecastColumn(t *testing.T) {
	doc := &model.TimeseriesDocument{
		Key:    model.AssetKey{AssetID: "WND01"},
		Values: [][]float64{{1, 2}, {3, 4}},
	}
	records, portfolio := BuildTables([]*model.TimeseriesDocument{doc}, time.UTC)
	assert.Empty(t, records)
	assert.Empty(t, portfolio)
}

func TestFileProviderReadsAssetDocument(t *testing.T) {
	dir := t.TempDir()
	doc := forecastDoc("WND01", time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC), []float64{42})
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "WND01.json"), raw, 0o644))

	provider := &FileProvider{Dir: dir}
	got, err := provider.Forecast("WND01", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "WND01", got.Key.ID())

	_, err = provider.Forecast("WND99", time.Now())
	assert.Error(t, err)
}

func TestFetchSkipsMissingForecasts(t *testing.T) {
	dir := t.TempDir()
	doc := forecastDoc("SOL01", time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC), []float64{10})
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SOL01.json"), raw, 0o644))

	provider := &FileProvider{Dir: dir}
	docs := Fetch(provider, []string{"SOL01", "WND99"}, time.Now(), zerolog.Nop())
	require.Len(t, docs, 1)
	assert.Equal(t, "SOL01", docs[0].Key.ID())
}
