package calculator

import "TrendSentinel/internal/model"

const (
	bollingerWindow = 20
	bollingerK      = 2.0
)

// CalculateBollingerBands appends the upper and lower Bollinger Bands:
// 20-period close average plus/minus 2 sample standard deviations.
func CalculateBollingerBands(es *model.EnrichedSeries) {
	c := closes(es)
	mid := rollingMean(c, bollingerWindow)
	sd := rollingStd(c, bollingerWindow)

	upper := make([]model.Value, len(c))
	lower := make([]model.Value, len(c))
	for i := range c {
		if mid[i].Valid && sd[i].Valid {
			upper[i] = model.Defined(mid[i].Float + bollingerK*sd[i].Float)
			lower[i] = model.Defined(mid[i].Float - bollingerK*sd[i].Float)
		}
	}
	es.BollingerUpper = upper
	es.BollingerLower = lower
}
