package calculator

import "TrendSentinel/internal/model"

// Options tune the configurable indicator windows.
type Options struct {
	VMAShortWindow int
	VMALongWindow  int
}

// EnrichAll computes every indicator column over the raw price series.
// None of the transforms depend on each other's outputs, only on raw
// OHLCV, so the order here only matters for readability. Existing bars
// are never modified; each transform appends its own columns.
func EnrichAll(es *model.EnrichedSeries, opts Options) {
	CalculateMovingAverages(es)
	CalculateMACD(es)
	CalculateVMA(es, opts.VMAShortWindow, opts.VMALongWindow)
	CalculateCCI(es)
	CalculateRSI(es)
	CalculateBollingerBands(es)
	CalculateATR(es)
	CalculateKDJ(es)
	CalculateOBV(es)
	CalculateADX(es)
}
