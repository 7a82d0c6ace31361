package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/archive"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/config"
)

func newTestServer(t *testing.T) (*Server, *config.Config) {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.OutputDir = t.TempDir()

	store, err := archive.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewServer(cfg, zerolog.Nop(), store), cfg
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s.Router(), "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestArtifactNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s.Router(), "/api/v1/infeed/assets")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ARTIFACT_NOT_FOUND")
}

func TestServeCSVArtifact(t *testing.T) {
	s, cfg := newTestServer(t)
	csv := "asset_id,delivery_start_utc,best_of_infeed_kw\nWND01,2025-07-08T10:00:00Z,120\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Paths.OutputDir, "asset_best_of_infeed.csv"), []byte(csv), 0o644))

	w := get(t, s.Router(), "/api/v1/infeed/assets")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Rows  []map[string]string `json:"rows"`
		Count int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "WND01", body.Rows[0]["asset_id"])
	assert.Equal(t, "120", body.Rows[0]["best_of_infeed_kw"])
}

func TestServeJSONArtifact(t *testing.T) {
	s, cfg := newTestServer(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(cfg.Paths.OutputDir, "best_of_infeed_metrics.json"),
		[]byte(`{"total_assets":4}`), 0o644))

	w := get(t, s.Router(), "/api/v1/infeed/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_assets":4`)
}

func TestListRunsEmpty(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s.Router(), "/api/v1/runs")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestRunPipelineRejectsUnknownStage(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pipeline/run",
		strings.NewReader(`{"stages":["nonsense"]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNKNOWN_STAGE")
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := newTestServer(t)
	w := get(t, s.Router(), "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}
