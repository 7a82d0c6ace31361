package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/archive"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/pipeline"
)

// executeStages runs the named stages (or all of them) with the shared
// setup and the run archive attached.
func executeStages(names ...string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	runner := pipeline.Runner{Config: cfg, Log: log}
	if cfg.Paths.ArchiveFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Paths.ArchiveFile), 0o755); err != nil {
			return err
		}
		store, err := archive.New(cfg.Paths.ArchiveFile)
		if err != nil {
			log.Warn().Err(err).Msg("run archive unavailable, runs will not be recorded")
		} else {
			defer store.Close()
			runner.Archive = store
		}
	}

	stages := pipeline.Stages()
	if len(names) > 0 {
		byName := make(map[string]pipeline.Stage, len(stages))
		for _, st := range stages {
			byName[st.Name] = st
		}
		selected := make([]pipeline.Stage, 0, len(names))
		for _, name := range names {
			st, ok := byName[name]
			if !ok {
				return fmt.Errorf("unknown stage %q", name)
			}
			selected = append(selected, st)
		}
		stages = selected
	}

	result := runner.RunStages(context.Background(), stages)
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d stages failed", result.Failed, len(result.Stages))
	}
	return nil
}
