package model

// Value is one cell of a derived indicator column. Valid is false where
// the defining lookback window is not fully covered by history. An
// undefined cell stays undefined through dependent computations; it is
// never coerced to zero or guessed.
type Value struct {
	Float float64
	Valid bool
}

// Defined returns a valid Value holding f.
func Defined(f float64) Value { return Value{Float: f, Valid: true} }

// Undefined returns an invalid Value.
func Undefined() Value { return Value{} }

// Column names as they appear in validation reasons and serialized
// output. These match the names the signal generator validates against.
const (
	ColMA5            = "5ma"
	ColMA10           = "10ma"
	ColMA20           = "20ma"
	ColMACD           = "macd"
	ColSignalLine     = "signal_line"
	ColVMAShort       = "vma_short"
	ColVMALong        = "vma_long"
	ColCCI            = "cci"
	ColRSI            = "rsi"
	ColBollingerUpper = "bollinger_upper"
	ColBollingerLower = "bollinger_lower"
	ColATR            = "atr"
	ColKDJK           = "kdj_k"
	ColKDJD           = "kdj_d"
	ColKDJJ           = "kdj_j"
	ColOBV            = "obv"
	ColADX            = "adx"
)

// EnrichedSeries is a PriceSeries plus derived indicator columns. Each
// column is aligned 1:1 by position with Bars; a nil column means the
// indicator has not been computed. ADX, KDJ and OBV are optional for
// signal generation (ADX defaults to 0 in scoring when absent); the
// rest are required.
type EnrichedSeries struct {
	PriceSeries

	MA5  []Value
	MA10 []Value
	MA20 []Value

	MACD       []Value
	SignalLine []Value

	VMAShort []Value
	VMALong  []Value

	CCI []Value
	RSI []Value

	BollingerUpper []Value
	BollingerLower []Value

	ATR []Value

	KDJK []Value
	KDJD []Value
	KDJJ []Value

	OBV []Value
	ADX []Value
}

// NewEnrichedSeries wraps a raw price series without any derived columns.
func NewEnrichedSeries(ps PriceSeries) *EnrichedSeries {
	return &EnrichedSeries{PriceSeries: ps}
}

// Len returns the number of bars in the series.
func (es *EnrichedSeries) Len() int { return len(es.Bars) }

// MissingColumns reports which required derived columns are absent or
// misaligned with the bars. KDJ, OBV and ADX are deliberately not in
// the required set.
func (es *EnrichedSeries) MissingColumns() []string {
	n := len(es.Bars)
	required := []struct {
		name string
		col  []Value
	}{
		{ColMACD, es.MACD},
		{ColSignalLine, es.SignalLine},
		{ColMA5, es.MA5},
		{ColMA10, es.MA10},
		{ColMA20, es.MA20},
		{ColVMAShort, es.VMAShort},
		{ColVMALong, es.VMALong},
		{ColCCI, es.CCI},
		{ColRSI, es.RSI},
		{ColBollingerUpper, es.BollingerUpper},
		{ColBollingerLower, es.BollingerLower},
		{ColATR, es.ATR},
	}

	var missing []string
	for _, r := range required {
		if r.col == nil || len(r.col) != n {
			missing = append(missing, r.name)
		}
	}
	return missing
}
