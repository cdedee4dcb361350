package collector

import "TrendSentinel/internal/model"

// Fetcher defines the interface for fetching daily market data.
// Implementations must return bars in ascending time order; an empty
// slice (not an error) means the symbol has no data.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
