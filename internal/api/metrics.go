package api

import (
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	stageRuns    *prometheus.CounterVec
)

func initMetrics() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flexpower_http_requests_total",
				Help: "Dashboard API requests by route and status",
			},
			[]string{"route", "status"},
		)
		stageRuns = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flexpower_pipeline_stage_runs_total",
				Help: "Pipeline stage executions triggered via the API, by stage and status",
			},
			[]string{"stage", "status"},
		)
		prometheus.MustRegister(httpRequests, stageRuns)
	})
}

// Metrics counts requests per route and status code.
func Metrics() gin.HandlerFunc {
	initMetrics()
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func countStageRun(stage, status string) {
	if stageRuns != nil {
		stageRuns.WithLabelValues(stage, status).Inc()
	}
}
