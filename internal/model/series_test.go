package model

import (
	"encoding/json"
	"testing"
)

func column(n int) []Value {
	out := make([]Value, n)
	for i := range out {
		out[i] = Defined(1)
	}
	return out
}

func enriched(n int) *EnrichedSeries {
	es := NewEnrichedSeries(PriceSeries{Bars: make([]OHLCV, n)})
	es.MA5 = column(n)
	es.MA10 = column(n)
	es.MA20 = column(n)
	es.MACD = column(n)
	es.SignalLine = column(n)
	es.VMAShort = column(n)
	es.VMALong = column(n)
	es.CCI = column(n)
	es.RSI = column(n)
	es.BollingerUpper = column(n)
	es.BollingerLower = column(n)
	es.ATR = column(n)
	return es
}

func TestMissingColumnsComplete(t *testing.T) {
	if missing := enriched(3).MissingColumns(); len(missing) > 0 {
		t.Errorf("missing = %v", missing)
	}
}

func TestMissingColumnsDetectsAbsentAndMisaligned(t *testing.T) {
	es := enriched(3)
	es.MACD = nil      // absent
	es.RSI = column(2) // wrong length

	missing := es.MissingColumns()
	if len(missing) != 2 || missing[0] != ColMACD || missing[1] != ColRSI {
		t.Errorf("missing = %v", missing)
	}
}

func TestMissingColumnsIgnoresOptional(t *testing.T) {
	es := enriched(3)
	es.KDJK, es.KDJD, es.KDJJ, es.OBV, es.ADX = nil, nil, nil, nil, nil
	if missing := es.MissingColumns(); len(missing) > 0 {
		t.Errorf("optional columns reported missing: %v", missing)
	}
}

func TestValueZeroIsUndefined(t *testing.T) {
	var v Value
	if v.Valid {
		t.Error("zero Value must be undefined")
	}
	if d := Defined(3.5); !d.Valid || d.Float != 3.5 {
		t.Errorf("Defined = %+v", d)
	}
	if u := Undefined(); u.Valid {
		t.Errorf("Undefined = %+v", u)
	}
}

func TestSignalRecordJSONShape(t *testing.T) {
	ok := SignalRecord{
		Status: StatusOK,
		SignalDetail: &SignalDetail{
			ScoreTotal:        3,
			BollingerBreakout: BreakoutNone,
			TrendCategories:   []string{},
		},
	}
	data, err := json.Marshal(ok)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if m["signal_status"] != "ok" {
		t.Errorf("signal_status = %v", m["signal_status"])
	}
	if _, hasReason := m["reason"]; hasReason {
		t.Error("ok record must omit the empty reason")
	}
	if cats, ok := m["trend_categories"].([]interface{}); !ok || len(cats) != 0 {
		t.Errorf("trend_categories = %v, want empty array not null", m["trend_categories"])
	}

	invalid := InvalidSignal("why not")
	data, _ = json.Marshal(invalid)
	m = map[string]interface{}{}
	json.Unmarshal(data, &m)
	if len(m) != 2 || m["reason"] != "why not" {
		t.Errorf("invalid record serialized as %v", m)
	}
	if invalid.IsOK() {
		t.Error("invalid record reported ok")
	}
}
