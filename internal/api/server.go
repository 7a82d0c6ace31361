// Package api serves the pipeline artifacts and run history over HTTP
// for the back-office dashboard, and lets operators trigger pipeline
// runs remotely.
package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/archive"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/config"
	"github.com/ghosthapper/Flexpwr-data-DataEngineeringChallenge/internal/pipeline"
)

// Server wires the dashboard routes over one config, run archive and
// pipeline runner.
type Server struct {
	cfg    *config.Config
	log    zerolog.Logger
	store  *archive.Store
	runner *pipeline.Runner
}

func NewServer(cfg *config.Config, log zerolog.Logger, store *archive.Store) *Server {
	return &Server{
		cfg:   cfg,
		log:   log,
		store: store,
		runner: &pipeline.Runner{
			Config:  cfg,
			Log:     log,
			Archive: store,
		},
	}
}

// Router builds the gin engine with all routes and middleware attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(Recovery())
	router.Use(Logger(s.log))
	router.Use(CORS())
	router.Use(Metrics())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.GET("/forecasts/assets", s.serveCSV("asset_forecasts.csv"))
		api.GET("/forecasts/portfolio", s.serveCSV("portfolio_forecast.csv"))

		api.GET("/infeed/assets", s.serveCSV("asset_best_of_infeed.csv"))
		api.GET("/infeed/portfolio", s.serveCSV("portfolio_best_of_infeed.csv"))
		api.GET("/infeed/metrics", s.serveJSONFile("best_of_infeed_metrics.json"))

		api.GET("/trading/trades", s.serveCSV("trading_data.csv"))
		api.GET("/trading/books", s.serveCSV("asset_trading_metrics.csv"))
		api.GET("/trading/portfolio", s.serveJSONFile("portfolio_trading_metrics.json"))

		api.GET("/invoices", s.serveJSONFile("invoices.json"))
		api.GET("/invoices/summary", s.serveCSV("invoices.csv"))

		api.GET("/report/performance", s.serveCSV("performance_data.csv"))
		api.GET("/report/assets", s.serveCSV("asset_metrics.csv"))
		api.GET("/report/portfolio", s.serveJSONFile("portfolio_metrics.json"))
		api.GET("/report/text", s.serveTextFile("performance_report.txt"))

		api.GET("/runs", s.listRuns)
		api.POST("/pipeline/run", s.runPipeline)
	}

	return router
}

// Run starts the HTTP server on the configured port.
func (s *Server) Run() error {
	addr := ":" + s.cfg.Server.Port
	s.log.Info().Str("addr", addr).Msg("dashboard API listening")
	return s.Router().Run(addr)
}

func (s *Server) listRuns(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": gin.H{
				"code":    "ARCHIVE_UNAVAILABLE",
				"message": "run archive is not configured",
			},
		})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	runs, err := s.store.ListRuns(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "ARCHIVE_ERROR",
				"message": err.Error(),
			},
		})
		return
	}
	if runs == nil {
		runs = []archive.RunRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs, "count": len(runs)})
}

// runPipeline executes the requested stages synchronously. The body is
// optional; without one every stage runs.
func (s *Server) runPipeline(c *gin.Context) {
	var req struct {
		Stages []string `json:"stages"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": gin.H{
					"code":    "INVALID_REQUEST",
					"message": err.Error(),
				},
			})
			return
		}
	}

	stages := pipeline.Stages()
	if len(req.Stages) > 0 {
		byName := make(map[string]pipeline.Stage, len(stages))
		for _, st := range stages {
			byName[st.Name] = st
		}
		selected := make([]pipeline.Stage, 0, len(req.Stages))
		for _, name := range req.Stages {
			st, ok := byName[name]
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": gin.H{
						"code":    "UNKNOWN_STAGE",
						"message": "unknown stage " + name,
					},
				})
				return
			}
			selected = append(selected, st)
		}
		stages = selected
	}

	result := s.runner.RunStages(c.Request.Context(), stages)
	for _, sr := range result.Stages {
		countStageRun(sr.Stage, sr.Status)
	}

	status := http.StatusOK
	if result.Failed > 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, result)
}
