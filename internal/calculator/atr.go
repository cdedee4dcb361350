package calculator

import (
	"math"

	"TrendSentinel/internal/model"
)

const atrPeriod = 14

// CalculateATR appends the 14-period Average True Range with Wilder
// smoothing, seeded with the simple average of the first 14 true
// ranges. The first bar's true range is high-low (no previous close).
func CalculateATR(es *model.EnrichedSeries) {
	n := es.Len()
	out := make([]model.Value, n)
	if n == 0 {
		es.ATR = out
		return
	}

	tr := make([]float64, n)
	tr[0] = es.Bars[0].High - es.Bars[0].Low
	for i := 1; i < n; i++ {
		b := es.Bars[i]
		prevClose := es.Bars[i-1].Close
		tr[i] = math.Max(b.High-b.Low,
			math.Max(math.Abs(b.High-prevClose), math.Abs(b.Low-prevClose)))
	}

	if n < atrPeriod {
		es.ATR = out
		return
	}

	sum := 0.0
	for i := 0; i < atrPeriod; i++ {
		sum += tr[i]
	}
	atr := sum / float64(atrPeriod)
	out[atrPeriod-1] = model.Defined(atr)

	p := float64(atrPeriod)
	for i := atrPeriod; i < n; i++ {
		atr = (atr*(p-1) + tr[i]) / p
		out[i] = model.Defined(atr)
	}
	es.ATR = out
}
