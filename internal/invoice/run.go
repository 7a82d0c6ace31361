package invoice

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/config"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/data"
)

// Run executes the invoicing stage and returns the artifact paths.
func Run(cfg *config.Config, log zerolog.Logger) ([]string, error) {
	loc := cfg.Location()

	technical := data.LoadTechnicalAssets(cfg.Paths.TechnicalDataDir, log)
	contracts := data.LoadContractTerms(cfg.Paths.ContractDataDir, log)
	masterData := BuildMasterData(technical, contracts, cfg.Invoice)
	log.Info().Int("assets", len(masterData)).Msg("asset master data loaded")

	production := data.LoadReconciledCSV(filepath.Join(cfg.Paths.OutputDir, "asset_best_of_infeed.csv"), loc, log)
	redispatch := data.LoadRedispatchEvents(cfg.Paths.RedispatchDir, loc, log)

	invoices := GenerateAll(masterData, production, redispatch, cfg.Invoice, time.Now(), log)

	csvPath := filepath.Join(cfg.Paths.OutputDir, "invoices.csv")
	jsonPath := filepath.Join(cfg.Paths.OutputDir, "invoices.json")
	if err := WriteInvoicesCSV(csvPath, invoices); err != nil {
		return nil, err
	}
	if err := WriteInvoicesJSON(jsonPath, invoices); err != nil {
		return nil, err
	}
	artifacts := []string{csvPath, jsonPath}

	if cfg.Invoice.RenderPDF {
		pdfPaths, err := WritePDFs(filepath.Join(cfg.Paths.OutputDir, "invoices"), invoices)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, pdfPaths...)
	}

	log.Info().Int("invoices", len(invoices)).Msg("invoices written")
	return artifacts, nil
}
