package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/archive"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/config"
)

func TestStagesOrder(t *testing.T) {
	var names []string
	for _, s := range Stages() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"forecast", "infeed", "trading", "invoices", "report"}, names)
}

func TestRunStagesContinuesPastFailures(t *testing.T) {
	var ran []string
	stages := []Stage{
		{Name: "first", Run: func(cfg *config.Config, log zerolog.Logger) ([]string, error) {
			ran = append(ran, "first")
			return []string{"a.csv"}, nil
		}},
		{Name: "second", Run: func(cfg *config.Config, log zerolog.Logger) ([]string, error) {
			ran = append(ran, "second")
			return nil, errors.New("boom")
		}},
		{Name: "third", Run: func(cfg *config.Config, log zerolog.Logger) ([]string, error) {
			ran = append(ran, "third")
			return nil, nil
		}},
	}

	r := Runner{Config: config.Default(), Log: zerolog.Nop()}
	result := r.RunStages(context.Background(), stages)

	assert.Equal(t, []string{"first", "second", "third"}, ran)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Stages, 3)
	assert.Equal(t, archive.StatusOK, result.Stages[0].Status)
	assert.Equal(t, []string{"a.csv"}, result.Stages[0].Artifacts)
	assert.Equal(t, archive.StatusFailed, result.Stages[1].Status)
	assert.Equal(t, "boom", result.Stages[1].Error)
	assert.Equal(t, archive.StatusOK, result.Stages[2].Status)
}

func TestRunStagesRecordsToArchive(t *testing.T) {
	store, err := archive.New(":memory:")
	require.NoError(t, err)
	defer store.Close()

	stages := []Stage{
		{Name: "only", Run: func(cfg *config.Config, log zerolog.Logger) ([]string, error) {
			return []string{"x.json"}, nil
		}},
	}

	r := Runner{Config: config.Default(), Log: zerolog.Nop(), Archive: store}
	r.RunStages(context.Background(), stages)

	runs, err := store.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "only", runs[0].Stage)
	assert.Equal(t, archive.StatusOK, runs[0].Status)
	assert.Equal(t, []string{"x.json"}, runs[0].Artifacts)
}
