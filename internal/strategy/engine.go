package strategy

import (
	"fmt"
	"strings"

	"TrendSentinel/internal/model"
)

// Params control the lookback windows of the signal generator.
type Params struct {
	TrendLookbackPeriod   int
	BreakoutWindow        int
	SustainedBreakoutDays int
}

// DefaultParams returns the standard 60/10/3 configuration.
func DefaultParams() Params {
	return Params{
		TrendLookbackPeriod:   60,
		BreakoutWindow:        10,
		SustainedBreakoutDays: 3,
	}
}

func (p Params) normalized() Params {
	d := DefaultParams()
	if p.TrendLookbackPeriod <= 0 {
		p.TrendLookbackPeriod = d.TrendLookbackPeriod
	}
	if p.BreakoutWindow <= 0 {
		p.BreakoutWindow = d.BreakoutWindow
	}
	if p.SustainedBreakoutDays <= 0 {
		p.SustainedBreakoutDays = d.SustainedBreakoutDays
	}
	return p
}

// GenerateTrendSignals evaluates the full rule battery over the trailing
// lookback window of an enriched series and returns one SignalRecord.
//
// The generator has exactly two terminal outcomes: an "ok" record, or an
// "invalid" record for an empty series, missing required columns, or a
// window of fewer than 2 rows. It never panics and never returns an
// error; re-running on the same input yields an identical record.
func GenerateTrendSignals(es *model.EnrichedSeries, p Params) model.SignalRecord {
	p = p.normalized()

	n := es.Len()
	if n == 0 {
		return model.InvalidSignal("empty price series")
	}
	if missing := es.MissingColumns(); len(missing) > 0 {
		return model.InvalidSignal(fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")))
	}

	start := n - p.TrendLookbackPeriod
	if start < 0 {
		start = 0
	}
	if n-start < 2 {
		return model.InvalidSignal(fmt.Sprintf("insufficient rows for trend analysis: have %d, need at least 2", n-start))
	}

	latest := n - 1
	prev := n - 2

	detail := &model.SignalDetail{
		MACDBullish: macdBullishSignal(es, latest, prev),
		MACD:        es.MACD[latest].Float,
		SignalLine:  es.SignalLine[latest].Float,

		RecentHigh: recentHighSignal(es, start),

		TrendMomentum: trendMomentumSignal(es, start, latest),
		CCI:           es.CCI[latest].Float,
		VMAShort:      es.VMAShort[latest].Float,
		VMALong:       es.VMALong[latest].Float,

		VolumeSpike: volumeSpikeSignal(es, start, latest),
		Volume:      es.Bars[latest].Volume,

		MomentumKbar: momentumKbarSignal(es, latest),

		RSI: es.RSI[latest].Float,

		BollingerUpper: es.BollingerUpper[latest].Float,
		BollingerLower: es.BollingerLower[latest].Float,

		ATR: es.ATR[latest].Float,
	}

	detail.SustainedHighs = sustainedHighsCount(es, start, p.BreakoutWindow, p.SustainedBreakoutDays)
	detail.SustainedHighsEnough = detail.SustainedHighs >= p.SustainedBreakoutDays

	if es.RSI[latest].Valid {
		detail.RSIOverbought = detail.RSI > 70
		detail.RSIOversold = detail.RSI < 30
	}

	detail.BollingerBreakout = bollingerBreakoutSignal(es, latest)

	total, breakdown, signals := computeScores(es, start, latest)
	detail.ScoreTotal = total
	detail.ScoreBreakdown = breakdown
	detail.ScoreSignals = signals

	detail.TrendCategories = trendCategories(detail)

	return model.SignalRecord{Status: model.StatusOK, SignalDetail: detail}
}

// trendCategories lists the names of all true flags among the fixed
// predicate set, in a stable order.
func trendCategories(d *model.SignalDetail) []string {
	categories := []string{}
	add := func(name string, on bool) {
		if on {
			categories = append(categories, name)
		}
	}
	add("macd_bullish", d.MACDBullish)
	add("recent_high", d.RecentHigh)
	add("sustained_highs_enough", d.SustainedHighsEnough)
	add("trend_momentum", d.TrendMomentum)
	add("volume_spike", d.VolumeSpike)
	add("momentum_kbar", d.MomentumKbar)
	add("rsi_overbought", d.RSIOverbought)
	add("rsi_oversold", d.RSIOversold)
	add("bollinger_breakout", d.BollingerBreakout != model.BreakoutNone)
	return categories
}
