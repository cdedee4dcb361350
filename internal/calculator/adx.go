package calculator

import (
	"math"

	"TrendSentinel/internal/model"
)

const adxPeriod = 14

// CalculateADX appends the 14-period Average Directional Index.
// Directional movement (+DM/-DM) and true range are Wilder-smoothed
// before the directional indexes are formed; ADX is then a Wilder
// average of DX, so the column is defined from index 2*period-1.
func CalculateADX(es *model.EnrichedSeries) {
	n := es.Len()
	out := make([]model.Value, n)
	if n < 2*adxPeriod {
		es.ADX = out
		return
	}

	plusDM := make([]float64, n)
	minusDM := make([]float64, n)
	tr := make([]float64, n)
	for i := 1; i < n; i++ {
		up := es.Bars[i].High - es.Bars[i-1].High
		down := es.Bars[i-1].Low - es.Bars[i].Low
		if up > down && up > 0 {
			plusDM[i] = up
		}
		if down > up && down > 0 {
			minusDM[i] = down
		}
		prevClose := es.Bars[i-1].Close
		tr[i] = math.Max(es.Bars[i].High-es.Bars[i].Low,
			math.Max(math.Abs(es.Bars[i].High-prevClose), math.Abs(es.Bars[i].Low-prevClose)))
	}

	// Wilder running sums over the first period of movement data
	// (indices 1..period), then the usual decay.
	var smPlus, smMinus, smTR float64
	for i := 1; i <= adxPeriod; i++ {
		smPlus += plusDM[i]
		smMinus += minusDM[i]
		smTR += tr[i]
	}

	p := float64(adxPeriod)
	dx := make([]float64, n)
	dxDefined := make([]bool, n)

	recordDX := func(i int) {
		if smTR == 0 {
			dx[i] = 0
			dxDefined[i] = true
			return
		}
		plusDI := 100 * smPlus / smTR
		minusDI := 100 * smMinus / smTR
		sum := plusDI + minusDI
		if sum == 0 {
			dx[i] = 0
		} else {
			dx[i] = 100 * math.Abs(plusDI-minusDI) / sum
		}
		dxDefined[i] = true
	}

	recordDX(adxPeriod)
	for i := adxPeriod + 1; i < n; i++ {
		smPlus = smPlus - smPlus/p + plusDM[i]
		smMinus = smMinus - smMinus/p + minusDM[i]
		smTR = smTR - smTR/p + tr[i]
		recordDX(i)
	}

	// ADX: simple average of the first period DX values, then Wilder.
	sum := 0.0
	for i := adxPeriod; i < 2*adxPeriod; i++ {
		sum += dx[i]
	}
	adx := sum / p
	out[2*adxPeriod-1] = model.Defined(adx)
	for i := 2 * adxPeriod; i < n; i++ {
		adx = (adx*(p-1) + dx[i]) / p
		out[i] = model.Defined(adx)
	}
	es.ADX = out
}
