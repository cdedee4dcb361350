package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"TrendSentinel/internal/metrics"
	"TrendSentinel/internal/model"
)

// Report is the structured answer the model must return.
type Report struct {
	StockID    string `json:"stock_id"`
	Suggestion string `json:"suggestion"`
	Reason     string `json:"reason"`
}

// SignalSource produces the signal record a report is based on.
// *analyzer.Analyzer satisfies it.
type SignalSource interface {
	AnalyzeTrendSignal(symbol string) (model.SignalRecord, error)
}

// Chain runs the full report pipeline: analyze the stock, render the
// prompt, call the model, and parse its JSON answer. The whole chain is
// retried on failure, so a transient fetch error and a malformed model
// answer are handled the same way.
type Chain struct {
	source   SignalSource
	client   Client
	template *PromptTemplate
	retries  int
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewChain wires a chain. retries is the total attempt count, minimum 1.
// m may be nil, in which case no metrics are emitted.
func NewChain(source SignalSource, client Client, template *PromptTemplate, retries int, logger *slog.Logger, m *metrics.Metrics) *Chain {
	if retries < 1 {
		retries = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{
		source:   source,
		client:   client,
		template: template,
		retries:  retries,
		logger:   logger,
		metrics:  m,
	}
}

// Run produces a report for one stock, retrying the whole pipeline up
// to the configured attempt count.
func (c *Chain) Run(ctx context.Context, stockID string) (Report, error) {
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		report, err := c.runOnce(ctx, stockID)
		if err == nil {
			return report, nil
		}
		lastErr = err
		c.logger.Warn("llm chain attempt failed",
			"stock_id", stockID, "attempt", attempt, "error", err)
	}
	return Report{}, fmt.Errorf("llm analysis failed after %d attempts: %w", c.retries, lastErr)
}

func (c *Chain) runOnce(ctx context.Context, stockID string) (Report, error) {
	record, err := c.source.AnalyzeTrendSignal(stockID)
	if err != nil {
		return Report{}, err
	}

	signalJSON, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return Report{}, fmt.Errorf("marshal signal: %w", err)
	}

	prompt := c.template.Format(stockID, string(signalJSON))

	start := time.Now()
	answer, err := c.client.Invoke(ctx, prompt)
	if c.metrics != nil {
		c.metrics.LLMRequestDur.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.countRequest("error")
		return Report{}, err
	}

	report, err := parseReport(answer)
	if err != nil {
		c.countRequest("error")
		return Report{}, err
	}
	c.countRequest("success")
	if report.StockID == "" {
		report.StockID = stockID
	}
	return report, nil
}

// countRequest tallies one model call by provider and outcome. An
// unparseable answer counts as an error, same as a failed invoke.
func (c *Chain) countRequest(outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.LLMRequestsTotal.WithLabelValues(c.client.Provider(), outcome).Inc()
}

// parseReport decodes the model answer, tolerating a markdown code
// fence around the JSON object.
func parseReport(answer string) (Report, error) {
	text := strings.TrimSpace(answer)
	if i := strings.Index(text, "{"); i >= 0 {
		if j := strings.LastIndex(text, "}"); j > i {
			text = text[i : j+1]
		}
	}
	var report Report
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		return Report{}, fmt.Errorf("parse llm answer: %w", err)
	}
	return report, nil
}
