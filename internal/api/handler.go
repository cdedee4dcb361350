package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// StockAnalysisRequest is the POST body of /api/v1/stock/llm-report.
type StockAnalysisRequest struct {
	StockID string `json:"stock_id" binding:"required"`
}

// GetTrendSignal handles GET /api/v1/stock/trend-signal?stock_id=...
// and returns the raw signal record, valid or not.
func (h *Handler) GetTrendSignal(c *gin.Context) {
	stockID := strings.TrimSpace(c.Query("stock_id"))
	if stockID == "" {
		h.handleValidationError(c, errMissingStockID)
		return
	}

	record, err := h.signals.AnalyzeTrendSignal(stockID)
	if err != nil {
		h.handleError(c, err, http.StatusBadGateway, "market data fetch failed")
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetLLMReport handles POST /api/v1/stock/llm-report. It runs the full
// analysis + LLM chain and returns the structured report.
func (h *Handler) GetLLMReport(c *gin.Context) {
	if h.reports == nil {
		h.handleError(c, errReportsDisabled, http.StatusServiceUnavailable, "llm reports are not configured")
		return
	}

	var req StockAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleValidationError(c, errMissingStockID)
		return
	}
	stockID := strings.TrimSpace(req.StockID)
	if stockID == "" {
		h.handleValidationError(c, errMissingStockID)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), LLMReportTimeout)
	defer cancel()

	report, err := h.reports.Run(ctx, stockID)
	if err != nil {
		h.handleError(c, err, http.StatusInternalServerError, "LLM analysis failed: "+err.Error())
		return
	}

	if h.recorder != nil {
		if err := h.recorder.RecordReport(stockID, report.Suggestion, report.Reason); err != nil {
			h.logger.Warn("record report", "stock_id", stockID, "error", err)
		}
	}

	c.JSON(http.StatusOK, report)
}

// HealthCheck handles GET /health requests.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"service":   ServiceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   ServiceVersion,
	})
}

// handleError logs the error and sends the HTTP response.
func (h *Handler) handleError(c *gin.Context, err error, statusCode int, userMessage string) {
	requestID := "unknown"
	if v, ok := c.Get(RequestIDContextKey); ok {
		if id, ok := v.(string); ok {
			requestID = id
		}
	}

	h.logger.Error("API error",
		slog.String("request_id", requestID),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("error", err.Error()),
		slog.Int("status_code", statusCode),
	)

	c.JSON(statusCode, gin.H{
		"error":      userMessage,
		"request_id": requestID,
	})
}

func (h *Handler) handleValidationError(c *gin.Context, err error) {
	h.handleError(c, err, http.StatusBadRequest, err.Error())
}
