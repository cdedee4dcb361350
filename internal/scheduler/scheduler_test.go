package scheduler

import (
	"context"
	"testing"

	"TrendSentinel/internal/analyzer"
	"TrendSentinel/internal/calculator"
	"TrendSentinel/internal/collector"
	"TrendSentinel/internal/model"
	"TrendSentinel/internal/recorder"
	"TrendSentinel/internal/strategy"
)

type countingRecorder struct {
	recorder.Noop
	signals int
}

func (c *countingRecorder) RecordSignal(symbol string, rec model.SignalRecord) error {
	c.signals++
	return nil
}

func newTestScheduler(rec recorder.Recorder, watchlist []string) *Scheduler {
	a := analyzer.New(&collector.MockFetcher{}, strategy.DefaultParams(), calculator.Options{}, nil, nil)
	return NewScheduler(context.Background(), a, nil, rec, watchlist, 5, nil)
}

func TestRegisterAllRejectsBadCron(t *testing.T) {
	s := newTestScheduler(recorder.NewNoopRecorder(), nil)
	if err := s.RegisterAll("not a cron spec"); err == nil {
		t.Error("expected error for malformed cron expression")
	}
	if err := s.RegisterAll("0 0 22 * * 1-5"); err != nil {
		t.Errorf("valid six-field spec rejected: %v", err)
	}
}

func TestDailyScanRecordsEverySymbol(t *testing.T) {
	rec := &countingRecorder{}
	s := newTestScheduler(rec, []string{"2330.TW", "0050.TW", "2317.TW"})

	s.RunScanNow()

	if rec.signals != 3 {
		t.Errorf("recorded %d signals, want 3", rec.signals)
	}
}

func TestDailyScanStopsOnCancelledContext(t *testing.T) {
	rec := &countingRecorder{}
	a := analyzer.New(&collector.MockFetcher{}, strategy.DefaultParams(), calculator.Options{}, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewScheduler(ctx, a, nil, rec, []string{"A", "B"}, 5, nil)

	s.RunScanNow()

	if rec.signals != 0 {
		t.Errorf("cancelled scan still recorded %d signals", rec.signals)
	}
}
