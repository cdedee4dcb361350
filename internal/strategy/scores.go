package strategy

import "TrendSentinel/internal/model"

// computeScores accumulates the four sub-scores over the latest row and
// the trailing window. Trend ranges [0,5], momentum and volume [0,1],
// risk [-1,0]; the total is their sum.
func computeScores(es *model.EnrichedSeries, start, latest int) (int, model.ScoreBreakdown, model.ScoreSignals) {
	var b model.ScoreBreakdown
	var s model.ScoreSignals

	ma5, ma10, ma20 := es.MA5[latest], es.MA10[latest], es.MA20[latest]
	s.MAAlignment = ma5.Valid && ma10.Valid && ma20.Valid &&
		ma5.Float > ma10.Float && ma10.Float > ma20.Float

	macd, sig := es.MACD[latest], es.SignalLine[latest]
	s.MACDBullish = macd.Valid && sig.Valid && macd.Float-sig.Float > 0

	// ADX is optional; an absent column or undefined cell scores as 0.
	if es.ADX != nil && es.ADX[latest].Valid {
		s.ADXStrong = es.ADX[latest].Float > 20
	}

	if s.MAAlignment {
		b.Trend += 2
	}
	if s.MACDBullish {
		b.Trend += 2
	}
	if s.ADXStrong {
		b.Trend++
	}

	rsi := es.RSI[latest]
	s.RSIHealthy = rsi.Valid && rsi.Float >= 40 && rsi.Float <= 70
	if s.RSIHealthy {
		b.Momentum++
	}

	s.VolumeSupport = volumeSupport(es, start)
	if s.VolumeSupport {
		b.Volume++
	}

	atr := es.ATR[latest]
	close := es.Bars[latest].Close
	atrRatio := 0.0
	if atr.Valid && close != 0 {
		atrRatio = atr.Float / close
	}
	s.ATRHighRisk = atrRatio > 0.05
	if s.ATRHighRisk {
		b.Risk--
	}

	total := b.Trend + b.Momentum + b.Volume + b.Risk
	return total, b, s
}
