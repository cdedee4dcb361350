package calculator

import "TrendSentinel/internal/model"

const kdjWindow = 9

// CalculateKDJ appends the stochastic oscillator triple. RSV is the
// close's position in the 9-period high/low range (a flat range yields
// 50); K and D are recursive one-third blends seeded at 50; J = 3K-2D
// and is deliberately not bounded to [0,100].
func CalculateKDJ(es *model.EnrichedSeries) {
	n := es.Len()
	k := make([]model.Value, n)
	d := make([]model.Value, n)
	j := make([]model.Value, n)

	hh := rollingMax(highs(es), kdjWindow)
	ll := rollingMin(lows(es), kdjWindow)

	prevK, prevD := 50.0, 50.0
	for i := kdjWindow - 1; i < n; i++ {
		rng := hh[i].Float - ll[i].Float
		rsv := 50.0
		if rng != 0 {
			rsv = (es.Bars[i].Close - ll[i].Float) / rng * 100
		}
		curK := prevK*2/3 + rsv/3
		curD := prevD*2/3 + curK/3
		k[i] = model.Defined(curK)
		d[i] = model.Defined(curD)
		j[i] = model.Defined(3*curK - 2*curD)
		prevK, prevD = curK, curD
	}

	es.KDJK = k
	es.KDJD = d
	es.KDJJ = j
}
