package calculator

import "TrendSentinel/internal/model"

// CalculateOBV appends On-Balance Volume: a cumulative sum from the
// start of the series that adds volume on up-closes and subtracts it
// on down-closes. Defined at every row; the first bar starts at 0.
func CalculateOBV(es *model.EnrichedSeries) {
	n := es.Len()
	out := make([]model.Value, n)
	if n == 0 {
		es.OBV = out
		return
	}

	obv := 0.0
	out[0] = model.Defined(obv)
	for i := 1; i < n; i++ {
		switch {
		case es.Bars[i].Close > es.Bars[i-1].Close:
			obv += es.Bars[i].Volume
		case es.Bars[i].Close < es.Bars[i-1].Close:
			obv -= es.Bars[i].Volume
		}
		out[i] = model.Defined(obv)
	}
	es.OBV = out
}
