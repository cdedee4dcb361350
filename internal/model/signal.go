package model

// Signal status values.
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
)

// Bollinger breakout states, mutually exclusive and evaluated in this
// priority order.
const (
	BreakoutUpper = "breakout_upper"
	BreakoutLower = "breakout_lower"
	BreakoutNone  = "none"
)

// ScoreBreakdown holds the four independently accumulated sub-scores.
// Trend is in [0,5], Momentum and Volume in [0,1], Risk in [-1,0].
type ScoreBreakdown struct {
	Trend    int `json:"trend"`
	Momentum int `json:"momentum"`
	Volume   int `json:"volume"`
	Risk     int `json:"risk"`
}

// ScoreSignals exposes the booleans underlying the score breakdown.
// They overlap in meaning with the predicate flags on SignalDetail but
// are a distinct set and both are emitted.
type ScoreSignals struct {
	MAAlignment   bool `json:"ma_alignment"`
	MACDBullish   bool `json:"macd_bullish"`
	ADXStrong     bool `json:"adx_strong"`
	RSIHealthy    bool `json:"rsi_healthy"`
	VolumeSupport bool `json:"volume_support"`
	ATRHighRisk   bool `json:"atr_high_risk"`
}

// SignalDetail carries every flag and raw field of an "ok" signal.
type SignalDetail struct {
	MACDBullish bool    `json:"macd_bullish"`
	MACD        float64 `json:"macd"`
	SignalLine  float64 `json:"signal_line"`

	RecentHigh           bool `json:"recent_high"`
	SustainedHighs       int  `json:"sustained_highs"`
	SustainedHighsEnough bool `json:"sustained_highs_enough"`

	TrendMomentum bool    `json:"trend_momentum"`
	CCI           float64 `json:"cci"`
	VMAShort      float64 `json:"vma_short"`
	VMALong       float64 `json:"vma_long"`

	VolumeSpike bool    `json:"volume_spike"`
	Volume      float64 `json:"volume"`

	MomentumKbar bool `json:"momentum_kbar"`

	RSI           float64 `json:"rsi"`
	RSIOverbought bool    `json:"rsi_overbought"`
	RSIOversold   bool    `json:"rsi_oversold"`

	BollingerUpper    float64 `json:"bollinger_upper"`
	BollingerLower    float64 `json:"bollinger_lower"`
	BollingerBreakout string  `json:"bollinger_breakout"`

	ATR float64 `json:"atr"`

	ScoreTotal     int            `json:"score_total"`
	ScoreBreakdown ScoreBreakdown `json:"score_breakdown"`
	ScoreSignals   ScoreSignals   `json:"score_signals"`

	TrendCategories []string `json:"trend_categories"`
}

// SignalRecord is the signal generator's sole output. When Status is
// "invalid" only Reason is set and the embedded detail is nil, so the
// serialized record carries no numeric fields. The record is immutable
// and fully determined by its input series plus the generator params.
type SignalRecord struct {
	Status string `json:"signal_status"`
	Reason string `json:"reason,omitempty"`

	*SignalDetail
}

// InvalidSignal builds an invalid record with the given reason.
func InvalidSignal(reason string) SignalRecord {
	return SignalRecord{Status: StatusInvalid, Reason: reason}
}

// IsOK reports whether the record carries a usable signal.
func (r SignalRecord) IsOK() bool { return r.Status == StatusOK }
