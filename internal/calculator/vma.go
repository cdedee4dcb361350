package calculator

import "TrendSentinel/internal/model"

// Default volume moving-average windows.
const (
	DefaultVMAShortWindow = 5
	DefaultVMALongWindow  = 20
)

// CalculateVMA appends the short and long simple moving averages of
// volume. Non-positive windows fall back to the defaults.
func CalculateVMA(es *model.EnrichedSeries, short, long int) {
	if short <= 0 {
		short = DefaultVMAShortWindow
	}
	if long <= 0 {
		long = DefaultVMALongWindow
	}
	v := volumes(es)
	es.VMAShort = rollingMean(v, short)
	es.VMALong = rollingMean(v, long)
}
