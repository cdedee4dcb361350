package calculator

import (
	"math"

	"TrendSentinel/internal/model"
)

const cciWindow = 20

// CalculateCCI appends the 20-period Commodity Channel Index:
// (TP - SMA(TP)) / (0.015 * mean deviation), with TP = (H+L+C)/3.
// A zero mean deviation yields 0 rather than a division by zero.
func CalculateCCI(es *model.EnrichedSeries) {
	n := es.Len()
	tp := make([]float64, n)
	for i, b := range es.Bars {
		tp[i] = (b.High + b.Low + b.Close) / 3
	}
	sma := rollingMean(tp, cciWindow)

	cci := make([]model.Value, n)
	for i := cciWindow - 1; i < n; i++ {
		md := 0.0
		for j := i - cciWindow + 1; j <= i; j++ {
			md += math.Abs(tp[j] - sma[i].Float)
		}
		md /= float64(cciWindow)

		if md == 0 {
			cci[i] = model.Defined(0)
			continue
		}
		cci[i] = model.Defined((tp[i] - sma[i].Float) / (0.015 * md))
	}
	es.CCI = cci
}
