package collector

import (
	"testing"
	"time"

	"TrendSentinel/internal/model"
)

func TestBuildPriceSeriesNormalization(t *testing.T) {
	ts := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	bars := []model.OHLCV{
		{Time: ts, Open: 10.7, High: 11.9, Low: 9.2, Close: 10.4, Volume: 2500},
		{Time: ts.AddDate(0, 0, 1), Open: 103, High: 104, Low: 101, Close: 102, Volume: 999},
	}

	ps := BuildPriceSeries("2330.TW", bars)

	if ps.Symbol != "2330.TW" {
		t.Errorf("symbol = %s", ps.Symbol)
	}
	got := ps.Bars[0]
	want := model.OHLCV{Time: ts, Open: 10, High: 11, Low: 9, Close: 10, Volume: 2}
	if got != want {
		t.Errorf("bar 0 = %+v, want %+v", got, want)
	}
	if ps.Bars[1].Volume != 0 {
		t.Errorf("volume 999 should floor to 0 thousand-share lots, got %v", ps.Bars[1].Volume)
	}
	if ps.FetchedAt.IsZero() {
		t.Error("FetchedAt not stamped")
	}
	// input must stay untouched
	if bars[0].Open != 10.7 {
		t.Error("normalization mutated the input slice")
	}
}

func TestBuildPriceSeriesEmpty(t *testing.T) {
	ps := BuildPriceSeries("X", nil)
	if len(ps.Bars) != 0 {
		t.Errorf("expected empty bars, got %d", len(ps.Bars))
	}
}

func TestMockFetcherFixedBars(t *testing.T) {
	fixed := []model.OHLCV{{Close: 42}}
	m := &MockFetcher{Bars: fixed}

	bars, err := m.FetchDailyBars("ANY", 90)
	if err != nil {
		t.Fatal(err)
	}
	if len(bars) != 1 || bars[0].Close != 42 {
		t.Errorf("fixed bars not returned: %+v", bars)
	}
}

func TestMockFetcherGenerated(t *testing.T) {
	m := &MockFetcher{}
	bars, err := m.FetchDailyBars("ANY", 90)
	if err != nil {
		t.Fatal(err)
	}
	if len(bars) != 90 {
		t.Fatalf("got %d bars, want 90", len(bars))
	}
	for i := 1; i < len(bars); i++ {
		if !bars[i].Time.After(bars[i-1].Time) {
			t.Fatal("bars must be in ascending time order")
		}
		if bars[i].High < bars[i].Low || bars[i].Close > bars[i].High || bars[i].Close < bars[i].Low {
			t.Fatalf("bar %d is not a well-formed candle: %+v", i, bars[i])
		}
	}
}
