package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"TrendSentinel/internal/analyzer"
	"TrendSentinel/internal/metrics"
	"TrendSentinel/internal/notifier"
	"TrendSentinel/internal/recorder"
)

// Scheduler runs the daily watchlist scan on a cron schedule. Every
// symbol is analyzed and recorded; signals at or above the notify
// threshold additionally go out through Telegram.
type Scheduler struct {
	Cron           *cron.Cron
	Analyzer       *analyzer.Analyzer
	Notifier       *notifier.TelegramNotifier
	Recorder       recorder.Recorder
	Watchlist      []string
	NotifyMinScore int
	Metrics        *metrics.Metrics
	Ctx            context.Context
}

// NewScheduler creates a Scheduler. notifier may be nil; scan results
// are then only recorded.
func NewScheduler(ctx context.Context, a *analyzer.Analyzer, tn *notifier.TelegramNotifier, rec recorder.Recorder, watchlist []string, notifyMinScore int, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		Cron:           cron.New(cron.WithSeconds()),
		Analyzer:       a,
		Notifier:       tn,
		Recorder:       rec,
		Watchlist:      watchlist,
		NotifyMinScore: notifyMinScore,
		Metrics:        m,
		Ctx:            ctx,
	}
}

// RegisterAll registers the daily scan task.
func (s *Scheduler) RegisterAll(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyScan); err != nil {
		return fmt.Errorf("register daily scan: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	slog.Info("scheduler started", "watchlist_size", len(s.Watchlist))
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	slog.Info("scheduler stopped")
}

// RunScanNow executes the daily scan immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunScanNow() {
	s.dailyScan()
}

func (s *Scheduler) dailyScan() {
	slog.Info("running daily watchlist scan", "symbols", len(s.Watchlist))

	for _, symbol := range s.Watchlist {
		select {
		case <-s.Ctx.Done():
			return
		default:
		}

		record, err := s.Analyzer.AnalyzeTrendSignal(symbol)
		if err != nil {
			slog.Error("scan analyze failed", "symbol", symbol, "error", err)
			continue
		}

		if err := s.Recorder.RecordSignal(symbol, record); err != nil {
			slog.Error("record signal", "symbol", symbol, "error", err)
		}

		if record.IsOK() && record.ScoreTotal >= s.NotifyMinScore {
			s.trySend(notifier.FormatSignalReport(symbol, record))
		}
	}

	if s.Metrics != nil {
		s.Metrics.ScheduledScansTotal.Inc()
	}
	slog.Info("daily watchlist scan complete")
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text); err != nil {
		slog.Error("send notification", "error", err)
	}
}
