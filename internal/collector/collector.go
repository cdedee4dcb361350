package collector

import (
	"math"
	"time"

	"TrendSentinel/internal/model"
)

// BuildPriceSeries normalizes raw bars into a PriceSeries: prices are
// floored to whole units and volume is converted to thousand-share
// lots, matching the exchange's board-lot convention.
func BuildPriceSeries(symbol string, bars []model.OHLCV) model.PriceSeries {
	normalized := make([]model.OHLCV, len(bars))
	for i, b := range bars {
		normalized[i] = model.OHLCV{
			Time:   b.Time,
			Open:   math.Floor(b.Open),
			High:   math.Floor(b.High),
			Low:    math.Floor(b.Low),
			Close:  math.Floor(b.Close),
			Volume: math.Floor(b.Volume / 1000),
		}
	}
	return model.PriceSeries{
		Symbol:    symbol,
		Bars:      normalized,
		FetchedAt: time.Now(),
	}
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.OHLCV
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.OHLCV, error) {
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(500, days), nil
}

// GenerateMockBars builds a gently trending synthetic daily series.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1_000_000,
		}
	}
	return bars
}
