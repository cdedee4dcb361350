package api

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingStockID  = errors.New("stock_id is required")
	errReportsDisabled = errors.New("report service not available")
)

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeaderKey)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeaderKey, requestID)
		c.Set(RequestIDContextKey, requestID)
		c.Next()
	}
}

// loggingMiddleware emits one structured line per request and feeds the
// latency histogram when metrics are wired.
func (h *Handler) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		if h.metrics != nil {
			h.metrics.HTTPRequestDur.
				WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).
				Observe(elapsed.Seconds())
		}

		requestID, _ := c.Get(RequestIDContextKey)
		h.logger.Info("request",
			slog.Any("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.String("latency", elapsed.Round(time.Millisecond).String()),
			slog.String("client_ip", c.ClientIP()),
		)
	}
}
