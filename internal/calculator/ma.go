package calculator

import "TrendSentinel/internal/model"

// CalculateMovingAverages appends the 5/10/20-period simple moving
// averages of the close to the series.
func CalculateMovingAverages(es *model.EnrichedSeries) {
	c := closes(es)
	es.MA5 = rollingMean(c, 5)
	es.MA10 = rollingMean(c, 10)
	es.MA20 = rollingMean(c, 20)
}
