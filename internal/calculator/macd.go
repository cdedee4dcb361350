package calculator

import "TrendSentinel/internal/model"

// MACD periods: fast EMA, slow EMA, and the signal EMA over the MACD line.
const (
	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9
)

// CalculateMACD appends the MACD line (EMA12 - EMA26) and its EMA9
// signal line. The MACD line is defined once the slow EMA warms up;
// the signal line another signal-period later.
func CalculateMACD(es *model.EnrichedSeries) {
	c := closes(es)
	fast := ema(c, macdFastPeriod)
	slow := ema(c, macdSlowPeriod)

	macd := make([]model.Value, len(c))
	for i := range c {
		if fast[i].Valid && slow[i].Valid {
			macd[i] = model.Defined(fast[i].Float - slow[i].Float)
		}
	}
	es.MACD = macd
	es.SignalLine = emaOver(macd, macdSignalPeriod)
}
