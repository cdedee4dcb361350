// Package analyzer ties the pipeline together: fetch daily bars,
// normalize them, compute the indicator columns, and run the signal
// generator. It is the single entry point the API, scheduler, and LLM
// report chain all share.
package analyzer

import (
	"fmt"
	"log/slog"
	"time"

	"TrendSentinel/internal/calculator"
	"TrendSentinel/internal/collector"
	"TrendSentinel/internal/metrics"
	"TrendSentinel/internal/model"
	"TrendSentinel/internal/strategy"
)

// defaultFetchDays covers the 60-day analysis window plus the longest
// indicator warmup (signal line needs 34 bars).
const defaultFetchDays = 90

// Analyzer runs the fetch -> enrich -> score pipeline for one symbol at
// a time. It is safe for concurrent use as long as the Fetcher is.
type Analyzer struct {
	fetcher collector.Fetcher
	params  strategy.Params
	opts    calculator.Options
	logger  *slog.Logger
	metrics *metrics.Metrics

	fetchDays int
}

// New creates an Analyzer. metrics may be nil when instrumentation is
// not wanted (tests, one-shot CLI runs).
func New(fetcher collector.Fetcher, params strategy.Params, opts calculator.Options, logger *slog.Logger, m *metrics.Metrics) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		fetcher:   fetcher,
		params:    params,
		opts:      opts,
		logger:    logger,
		metrics:   m,
		fetchDays: defaultFetchDays,
	}
}

// AnalyzeTrendSignal produces the signal record for one symbol. A fetch
// transport failure is an error; a symbol with no data is not, it maps
// to an invalid record so the caller still gets a serializable result.
func (a *Analyzer) AnalyzeTrendSignal(symbol string) (model.SignalRecord, error) {
	start := time.Now()

	bars, err := a.fetcher.FetchDailyBars(symbol, a.fetchDays)
	if err != nil {
		if a.metrics != nil {
			a.metrics.FetchErrors.WithLabelValues(a.fetcher.Name()).Inc()
		}
		return model.SignalRecord{}, fmt.Errorf("fetch daily bars for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		a.logger.Warn("no kbar data", "symbol", symbol, "source", a.fetcher.Name())
		return model.InvalidSignal(fmt.Sprintf("No kbar data for %s", symbol)), nil
	}

	series := collector.BuildPriceSeries(symbol, bars)
	es := model.NewEnrichedSeries(series)
	calculator.EnrichAll(es, a.opts)

	record := strategy.GenerateTrendSignals(es, a.params)

	if a.metrics != nil {
		a.metrics.AnalysesTotal.WithLabelValues(a.fetcher.Name()).Inc()
		a.metrics.AnalysisDur.Observe(time.Since(start).Seconds())
		if !record.IsOK() {
			a.metrics.InvalidSignals.Inc()
		}
	}

	if record.IsOK() {
		a.logger.Info("trend analysis complete",
			"symbol", symbol,
			"bars", len(bars),
			"score_total", record.ScoreTotal,
			"categories", record.TrendCategories,
			"elapsed", time.Since(start).Round(time.Millisecond).String())
	} else {
		a.logger.Warn("trend analysis invalid", "symbol", symbol, "reason", record.Reason)
	}

	return record, nil
}
