package strategy

import (
	"math"

	"TrendSentinel/internal/model"
)

// macdBullishSignal requires a MACD-over-signal gap above 0.01, bullish
// 5>10>20 moving-average alignment, and a positive short-average slope
// versus the previous 10-period average. Any undefined operand makes
// the predicate false; a zero previous 5-period average makes the
// slope 0 instead of dividing by zero.
func macdBullishSignal(es *model.EnrichedSeries, latest, prev int) bool {
	macd, sig := es.MACD[latest], es.SignalLine[latest]
	ma5, ma10, ma20 := es.MA5[latest], es.MA10[latest], es.MA20[latest]
	prevMA5, prevMA10 := es.MA5[prev], es.MA10[prev]
	if !macd.Valid || !sig.Valid || !ma5.Valid || !ma10.Valid || !ma20.Valid || !prevMA5.Valid || !prevMA10.Valid {
		return false
	}

	slope := 0.0
	if prevMA5.Float != 0 {
		slope = (ma5.Float - prevMA10.Float) / prevMA5.Float
	}
	return macd.Float-sig.Float > 0.01 &&
		ma5.Float > ma10.Float && ma10.Float > ma20.Float &&
		slope > 0
}

// recentHighSignal reports whether the latest close exceeds the highest
// close of the two bars preceding it within the window.
func recentHighSignal(es *model.EnrichedSeries, start int) bool {
	latest := es.Len() - 1
	lo := latest - 2
	if lo < start {
		lo = start
	}
	if lo >= latest {
		return false
	}
	high := es.Bars[lo].Close
	for i := lo + 1; i < latest; i++ {
		if es.Bars[i].Close > high {
			high = es.Bars[i].Close
		}
	}
	return es.Bars[latest].Close > high
}

// sustainedHighsCount walks backward from the most recent bar of the
// window, counting bars whose close exceeds the rolling high (window =
// breakoutWindow) of the closes strictly before them, and stops at the
// first failure. With no prior bars at all the rolling high is -Inf so
// the comparison succeeds; with prior bars but fewer than the rolling
// window it is undefined and the walk stops.
func sustainedHighsCount(es *model.EnrichedSeries, start, breakoutWindow, sustainedDays int) int {
	n := es.Len() - start
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		closes[i] = es.Bars[start+i].Close
	}

	count := 0
	for i := 1; i <= sustainedDays; i++ {
		if i > n {
			break // ran out of bars to compare
		}
		prefixLen := n - (i + 1)
		if prefixLen < 0 {
			prefixLen = 0
		}

		rollingHigh := math.Inf(-1)
		if prefixLen > 0 {
			if prefixLen < breakoutWindow {
				break // rolling high undefined
			}
			rollingHigh = closes[prefixLen-breakoutWindow]
			for j := prefixLen - breakoutWindow + 1; j < prefixLen; j++ {
				if closes[j] > rollingHigh {
					rollingHigh = closes[j]
				}
			}
		}

		if closes[n-i] > rollingHigh {
			count++
		} else {
			break
		}
	}
	return count
}

// trendMomentumSignal requires CCI above 100 and the window-average
// short volume MA above the window-average long volume MA.
func trendMomentumSignal(es *model.EnrichedSeries, start, latest int) bool {
	cci := es.CCI[latest]
	if !cci.Valid || cci.Float <= 100 {
		return false
	}
	return volumeSupport(es, start)
}

// volumeSupport compares the window means of the two volume averages,
// skipping undefined cells; with no defined cells it is false.
func volumeSupport(es *model.EnrichedSeries, start int) bool {
	short, okS := meanDefined(es.VMAShort[start:])
	long, okL := meanDefined(es.VMALong[start:])
	return okS && okL && short > long
}

// volumeSpikeSignal reports whether the latest volume exceeds twice the
// 20-period rolling mean volume within the window. With fewer than 20
// rows in the window the rolling mean is undefined and the predicate
// is false.
func volumeSpikeSignal(es *model.EnrichedSeries, start, latest int) bool {
	const window = 20
	if latest-start+1 < window {
		return false
	}
	sum := 0.0
	for i := latest - window + 1; i <= latest; i++ {
		sum += es.Bars[i].Volume
	}
	mean := sum / window
	return es.Bars[latest].Volume > 2*mean
}

// momentumKbarSignal is evaluated on the full series at its last index,
// not on the trailing window: volume more than doubled versus the
// previous bar, total shadow at most 20% of the bar's range, and the
// close breaking the high or low of the preceding three bars. False
// for the very first bar and for zero-range bars.
func momentumKbarSignal(es *model.EnrichedSeries, index int) bool {
	if index == 0 {
		return false
	}
	cur := es.Bars[index]
	prev := es.Bars[index-1]
	if cur.Volume <= prev.Volume*2 {
		return false
	}

	totalRange := cur.High - cur.Low
	if totalRange == 0 {
		return false
	}
	body := math.Max(cur.Close, cur.Open) - math.Min(cur.Close, cur.Open)
	shadowRatio := (totalRange - body) / totalRange
	if shadowRatio > 0.2 {
		return false
	}

	lo := index - 3
	if lo < 0 {
		lo = 0
	}
	recentHigh := es.Bars[lo].High
	recentLow := es.Bars[lo].Low
	for i := lo + 1; i < index; i++ {
		if es.Bars[i].High > recentHigh {
			recentHigh = es.Bars[i].High
		}
		if es.Bars[i].Low < recentLow {
			recentLow = es.Bars[i].Low
		}
	}
	return cur.Close > recentHigh || cur.Close < recentLow
}

// bollingerBreakoutSignal classifies the latest close against the
// bands: above the upper band wins over below the lower band; anything
// else, including undefined bands, is "none".
func bollingerBreakoutSignal(es *model.EnrichedSeries, latest int) string {
	upper, lower := es.BollingerUpper[latest], es.BollingerLower[latest]
	close := es.Bars[latest].Close
	switch {
	case upper.Valid && close > upper.Float:
		return model.BreakoutUpper
	case lower.Valid && close < lower.Float:
		return model.BreakoutLower
	default:
		return model.BreakoutNone
	}
}

// meanDefined averages the defined cells of a column slice.
func meanDefined(col []model.Value) (float64, bool) {
	sum := 0.0
	count := 0
	for _, v := range col {
		if v.Valid {
			sum += v.Float
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}
