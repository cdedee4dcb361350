package calculator

import "TrendSentinel/internal/model"

const rsiPeriod = 14

// CalculateRSI appends the Wilder-smoothed 14-period Relative Strength
// Index. The first value needs period close-to-close changes, so the
// column is defined from index period onward. A zero average loss
// yields RSI = 100 rather than a division by zero.
func CalculateRSI(es *model.EnrichedSeries) {
	c := closes(es)
	out := make([]model.Value, len(c))
	if len(c) <= rsiPeriod {
		es.RSI = out
		return
	}

	var avgGain, avgLoss float64
	for i := 1; i <= rsiPeriod; i++ {
		change := c[i] - c[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(rsiPeriod)
	avgLoss /= float64(rsiPeriod)
	out[rsiPeriod] = rsiFrom(avgGain, avgLoss)

	p := float64(rsiPeriod)
	for i := rsiPeriod + 1; i < len(c); i++ {
		change := c[i] - c[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out[i] = rsiFrom(avgGain, avgLoss)
	}
	es.RSI = out
}

func rsiFrom(avgGain, avgLoss float64) model.Value {
	if avgLoss == 0 {
		return model.Defined(100)
	}
	rs := avgGain / avgLoss
	return model.Defined(100 - 100/(1+rs))
}
