package calculator

import (
	"math"

	"TrendSentinel/internal/model"
)

// rollingMean computes the simple moving average of vals over window.
// Positions where the window is not fully covered are undefined.
func rollingMean(vals []float64, window int) []model.Value {
	out := make([]model.Value, len(vals))
	if window <= 0 {
		return out
	}
	sum := 0.0
	for i, v := range vals {
		sum += v
		if i >= window {
			sum -= vals[i-window]
		}
		if i >= window-1 {
			out[i] = model.Defined(sum / float64(window))
		}
	}
	return out
}

// rollingStd computes the rolling sample standard deviation (ddof=1)
// of vals over window. Requires window >= 2 for a defined result.
func rollingStd(vals []float64, window int) []model.Value {
	out := make([]model.Value, len(vals))
	if window < 2 {
		return out
	}
	for i := window - 1; i < len(vals); i++ {
		mean := 0.0
		for j := i - window + 1; j <= i; j++ {
			mean += vals[j]
		}
		mean /= float64(window)

		ss := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := vals[j] - mean
			ss += d * d
		}
		out[i] = model.Defined(math.Sqrt(ss / float64(window-1)))
	}
	return out
}

// rollingMax computes the rolling maximum of vals over window.
func rollingMax(vals []float64, window int) []model.Value {
	out := make([]model.Value, len(vals))
	if window <= 0 {
		return out
	}
	for i := window - 1; i < len(vals); i++ {
		max := vals[i-window+1]
		for j := i - window + 2; j <= i; j++ {
			if vals[j] > max {
				max = vals[j]
			}
		}
		out[i] = model.Defined(max)
	}
	return out
}

// rollingMin computes the rolling minimum of vals over window.
func rollingMin(vals []float64, window int) []model.Value {
	out := make([]model.Value, len(vals))
	if window <= 0 {
		return out
	}
	for i := window - 1; i < len(vals); i++ {
		min := vals[i-window+1]
		for j := i - window + 2; j <= i; j++ {
			if vals[j] < min {
				min = vals[j]
			}
		}
		out[i] = model.Defined(min)
	}
	return out
}

// ema computes the exponential moving average with smoothing 2/(n+1),
// seeded with the simple average of the first period values.
func ema(vals []float64, period int) []model.Value {
	out := make([]model.Value, len(vals))
	if period <= 0 {
		return out
	}
	mult := 2.0 / float64(period+1)
	sum := 0.0
	prev := 0.0
	for i, v := range vals {
		if i < period {
			sum += v
			if i == period-1 {
				prev = sum / float64(period)
				out[i] = model.Defined(prev)
			}
			continue
		}
		prev = v*mult + prev*(1-mult)
		out[i] = model.Defined(prev)
	}
	return out
}

// emaOver computes an EMA over an already-derived column. The undefined
// prefix of the input is skipped; the seed average starts at the first
// defined cell, so undefined-ness propagates instead of coercing to zero.
func emaOver(col []model.Value, period int) []model.Value {
	out := make([]model.Value, len(col))
	if period <= 0 {
		return out
	}
	start := -1
	for i, v := range col {
		if v.Valid {
			start = i
			break
		}
	}
	if start == -1 {
		return out
	}
	mult := 2.0 / float64(period+1)
	sum := 0.0
	prev := 0.0
	for i := start; i < len(col); i++ {
		seen := i - start + 1
		if seen <= period {
			sum += col[i].Float
			if seen == period {
				prev = sum / float64(period)
				out[i] = model.Defined(prev)
			}
			continue
		}
		prev = col[i].Float*mult + prev*(1-mult)
		out[i] = model.Defined(prev)
	}
	return out
}

func closes(es *model.EnrichedSeries) []float64 {
	out := make([]float64, len(es.Bars))
	for i, b := range es.Bars {
		out[i] = b.Close
	}
	return out
}

func highs(es *model.EnrichedSeries) []float64 {
	out := make([]float64, len(es.Bars))
	for i, b := range es.Bars {
		out[i] = b.High
	}
	return out
}

func lows(es *model.EnrichedSeries) []float64 {
	out := make([]float64, len(es.Bars))
	for i, b := range es.Bars {
		out[i] = b.Low
	}
	return out
}

func volumes(es *model.EnrichedSeries) []float64 {
	out := make([]float64, len(es.Bars))
	for i, b := range es.Bars {
		out[i] = b.Volume
	}
	return out
}
