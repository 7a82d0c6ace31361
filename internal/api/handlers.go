package api

import (
	"encoding/csv"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// artifact handlers expose the files written by the pipeline stages.
// Everything is served from the configured output directory; a stage
// that has not run yet simply yields 404.

func (s *Server) serveCSV(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := filepath.Join(s.cfg.Paths.OutputDir, name)
		rows, err := readCSVRows(path)
		if err != nil {
			notFound(c, name, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"rows": rows, "count": len(rows)})
	}
}

func (s *Server) serveJSONFile(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := filepath.Join(s.cfg.Paths.OutputDir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			notFound(c, name, err)
			return
		}
		c.Data(http.StatusOK, "application/json", raw)
	}
}

func (s *Server) serveTextFile(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := filepath.Join(s.cfg.Paths.OutputDir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			notFound(c, name, err)
			return
		}
		c.Data(http.StatusOK, "text/plain; charset=utf-8", raw)
	}
}

// readCSVRows maps a headered CSV into one object per row. The dashboard
// renders tables generically, so column typing stays on the client.
func readCSVRows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []map[string]string{}, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func notFound(c *gin.Context, name string, err error) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": gin.H{
			"code":    "ARTIFACT_NOT_FOUND",
			"message": "artifact " + name + " is not available, run the pipeline first",
			"detail":  err.Error(),
		},
	})
}
