// Package pipeline composes the back-office stages into one run. Stages
// are independent units with explicit config in and artifact paths out;
// a failing stage is logged and recorded, and the run continues with the
// next stage.
package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/archive"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/config"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/forecast"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/infeed"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/invoice"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/report"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/trading"
)

// Stage is one named pipeline step.
type Stage struct {
	Name string
	Run  func(cfg *config.Config, log zerolog.Logger) ([]string, error)
}

// Stages returns the full back-office pipeline in dependency order.
func Stages() []Stage {
	return []Stage{
		{Name: "forecast", Run: forecast.Run},
		{Name: "infeed", Run: infeed.Run},
		{Name: "trading", Run: trading.Run},
		{Name: "invoices", Run: invoice.Run},
		{Name: "report", Run: report.Run},
	}
}

// Runner executes stages and records each run in the archive (when one
// is configured).
type Runner struct {
	Config  *config.Config
	Log     zerolog.Logger
	Archive *archive.Store
}

// Result summarizes one pipeline execution.
type Result struct {
	Stages []StageResult `json:"stages"`
	Failed int           `json:"failed"`
}

type StageResult struct {
	Stage     string   `json:"stage"`
	Status    string   `json:"status"`
	Duration  string   `json:"duration"`
	Error     string   `json:"error,omitempty"`
	Artifacts []string `json:"artifacts,omitempty"`
}

// RunAll executes every stage in order. Stage failures do not abort the
// pipeline; downstream stages degrade on missing inputs the same way
// they do when a source directory is absent.
func (r *Runner) RunAll(ctx context.Context) Result {
	return r.RunStages(ctx, Stages())
}

// RunStages executes the given stages in order.
func (r *Runner) RunStages(ctx context.Context, stages []Stage) Result {
	var result Result
	for _, stage := range stages {
		result.Stages = append(result.Stages, r.runOne(ctx, stage))
	}
	for _, sr := range result.Stages {
		if sr.Status == archive.StatusFailed {
			result.Failed++
		}
	}
	return result
}

func (r *Runner) runOne(ctx context.Context, stage Stage) StageResult {
	log := r.Log.With().Str("stage", stage.Name).Logger()
	started := time.Now()
	log.Info().Msg("stage started")

	artifacts, err := stage.Run(r.Config, log)
	finished := time.Now()

	sr := StageResult{
		Stage:     stage.Name,
		Status:    archive.StatusOK,
		Duration:  finished.Sub(started).Round(time.Millisecond).String(),
		Artifacts: artifacts,
	}
	if err != nil {
		sr.Status = archive.StatusFailed
		sr.Error = err.Error()
		log.Error().Err(err).Msg("stage failed")
	} else {
		log.Info().Str("duration", sr.Duration).Msg("stage finished")
	}

	if r.Archive != nil {
		record := archive.RunRecord{
			Stage:      stage.Name,
			Status:     sr.Status,
			StartedAt:  started,
			FinishedAt: finished,
			Error:      sr.Error,
			Artifacts:  artifacts,
		}
		if err := r.Archive.Record(ctx, record); err != nil {
			log.Warn().Err(err).Msg("run not recorded in archive")
		}
	}
	return sr
}
