package forecast

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/data"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// Provider fetches the forecast document for an asset, valid as of the
// given version time. The production system talks to the VPP service;
// batch runs read the exported files instead.
type Provider interface {
	Forecast(assetID string, version time.Time) (*model.TimeseriesDocument, error)
}

// FileProvider serves forecast documents from a directory of per-asset
// JSON exports (<asset_id>.json), the same shape the VPP service returns.
type FileProvider struct {
	Dir string
}

func (p *FileProvider) Forecast(assetID string, version time.Time) (*model.TimeseriesDocument, error) {
	path := filepath.Join(p.Dir, assetID+".json")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no forecast export for %s: %w", assetID, err)
	}
	return data.LoadTimeseriesDocument(path)
}
