package data

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/model"
)

// LoadTimeseriesDocument reads one VPP timeseries JSON file.
func LoadTimeseriesDocument(path string) (*model.TimeseriesDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc model.TimeseriesDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadTimeseriesDir reads every .json document in dir. Unreadable or
// malformed files are skipped with a warning; a missing directory yields
// an empty slice. Neither case is an error.
func LoadTimeseriesDir(dir string, log zerolog.Logger) []*model.TimeseriesDocument {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warn().Str("dir", dir).Err(err).Msg("measured infeed directory not readable")
		return nil
	}

	var docs []*model.TimeseriesDocument
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		doc, err := LoadTimeseriesDocument(path)
		if err != nil {
			log.Warn().Str("file", e.Name()).Err(err).Msg("skipping unreadable timeseries file")
			continue
		}
		if doc.Key.ID() == "" {
			log.Warn().Str("file", e.Name()).Msg("skipping timeseries file without asset id")
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}

// ExtractAssetIDs returns the sorted set of asset identifiers found in
// the timeseries documents under dir.
func ExtractAssetIDs(dir string, log zerolog.Logger) []string {
	seen := map[string]struct{}{}
	for _, doc := range LoadTimeseriesDir(dir, log) {
		seen[doc.Key.ID()] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
