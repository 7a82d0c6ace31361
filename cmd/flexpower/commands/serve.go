package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/api"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/archive"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API",
	Long: `Serves the pipeline artifacts, the run history and a pipeline
trigger endpoint over HTTP. Prometheus metrics are exposed on /metrics.

Example:
  flexpower serve --config config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		var store *archive.Store
		if cfg.Paths.ArchiveFile != "" {
			if err := os.MkdirAll(filepath.Dir(cfg.Paths.ArchiveFile), 0o755); err != nil {
				return err
			}
			store, err = archive.New(cfg.Paths.ArchiveFile)
			if err != nil {
				log.Warn().Err(err).Msg("run archive unavailable")
				store = nil
			} else {
				defer store.Close()
			}
		}

		return api.NewServer(cfg, log, store).Run()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
