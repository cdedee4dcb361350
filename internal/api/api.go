// Package api exposes the trend-signal engine over HTTP using Gin.
// The package structure is:
// - api.go: handler struct, dependencies and routing
// - handler.go: HTTP request handlers
// - middleware.go: request ID, logging and metrics middleware
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"TrendSentinel/internal/llm"
	"TrendSentinel/internal/metrics"
	"TrendSentinel/internal/model"
	"TrendSentinel/internal/recorder"
)

const (
	DefaultTimeout      = 30 * time.Second
	LLMReportTimeout    = 180 * time.Second
	ServiceName         = "trend-sentinel"
	ServiceVersion      = "1.0.0"
	RequestIDContextKey = "request_id"
	RequestIDHeaderKey  = "X-Request-ID"
)

// SignalService produces signal records; ReportService produces LLM
// reports. The analyzer and llm.Chain satisfy them.
type SignalService interface {
	AnalyzeTrendSignal(symbol string) (model.SignalRecord, error)
}

type ReportService interface {
	Run(ctx context.Context, stockID string) (llm.Report, error)
}

// Handler handles HTTP requests using the Gin framework.
type Handler struct {
	signals  SignalService
	reports  ReportService
	recorder recorder.Recorder
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewHandler creates the API handler. reports and metrics may be nil;
// the corresponding routes then return 503 or skip instrumentation.
// rec may be nil, in which case reports are not persisted.
func NewHandler(signals SignalService, reports ReportService, rec recorder.Recorder, logger *slog.Logger, m *metrics.Metrics) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		signals:  signals,
		reports:  reports,
		recorder: rec,
		logger:   logger,
		metrics:  m,
	}
}

// SetupRoutes configures all API routes.
func (h *Handler) SetupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(requestIDMiddleware())
	router.Use(h.loggingMiddleware())
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	v1.GET("/stock/trend-signal", h.GetTrendSignal)
	v1.POST("/stock/llm-report", h.GetLLMReport)

	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

// NewServer wraps the router in an http.Server for graceful shutdown.
func (h *Handler) NewServer(addr string) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: h.SetupRoutes(),
	}
}
