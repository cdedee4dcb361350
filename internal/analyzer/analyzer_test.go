package analyzer

import (
	"errors"
	"strings"
	"testing"

	"TrendSentinel/internal/calculator"
	"TrendSentinel/internal/collector"
	"TrendSentinel/internal/model"
	"TrendSentinel/internal/strategy"
)

type failingFetcher struct{}

func (failingFetcher) Name() string { return "failing" }
func (failingFetcher) FetchDailyBars(string, int) ([]model.OHLCV, error) {
	return nil, errors.New("connection refused")
}

func newTestAnalyzer(f collector.Fetcher) *Analyzer {
	return New(f, strategy.DefaultParams(), calculator.Options{}, nil, nil)
}

func TestAnalyzeTrendSignal(t *testing.T) {
	a := newTestAnalyzer(&collector.MockFetcher{})

	rec, err := a.AnalyzeTrendSignal("2330.TW")
	if err != nil {
		t.Fatal(err)
	}
	if !rec.IsOK() {
		t.Fatalf("expected ok record, got %s: %s", rec.Status, rec.Reason)
	}
	if rec.SignalDetail == nil {
		t.Fatal("ok record must carry detail")
	}
	if len(rec.TrendCategories) == 0 && rec.ScoreTotal == 0 {
		// a gently trending series should at least land on the score board
		t.Log("note: zero score on mock data")
	}
}

func TestAnalyzeTrendSignalNoData(t *testing.T) {
	a := newTestAnalyzer(&collector.MockFetcher{Bars: []model.OHLCV{}})

	rec, err := a.AnalyzeTrendSignal("GHOST")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Status != model.StatusInvalid || rec.Reason != "No kbar data for GHOST" {
		t.Errorf("record = %+v", rec)
	}
}

func TestAnalyzeTrendSignalFetchError(t *testing.T) {
	a := newTestAnalyzer(failingFetcher{})

	_, err := a.AnalyzeTrendSignal("X")
	if err == nil || !strings.Contains(err.Error(), "fetch daily bars for X") {
		t.Errorf("err = %v", err)
	}
}

func TestAnalyzeTrendSignalDeterministicOnFixedBars(t *testing.T) {
	fixed := collector.GenerateMockBars(500, 90)
	a := newTestAnalyzer(&collector.MockFetcher{Bars: fixed})

	first, err := a.AnalyzeTrendSignal("X")
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.AnalyzeTrendSignal("X")
	if err != nil {
		t.Fatal(err)
	}
	if first.ScoreTotal != second.ScoreTotal || first.Status != second.Status {
		t.Error("same bars must yield the same record")
	}
}
