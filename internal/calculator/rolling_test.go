package calculator

import (
	"math"
	"testing"

	"TrendSentinel/internal/model"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRollingMean(t *testing.T) {
	out := rollingMean([]float64{1, 2, 3, 4, 5}, 3)

	if out[0].Valid || out[1].Valid {
		t.Error("positions before a full window must be undefined")
	}
	want := []float64{2, 3, 4}
	for i, w := range want {
		got := out[i+2]
		if !got.Valid || !approxEqual(got.Float, w) {
			t.Errorf("out[%d] = %+v, want %v", i+2, got, w)
		}
	}
}

func TestRollingStd(t *testing.T) {
	out := rollingStd([]float64{1, 2, 3, 4}, 3)

	if out[0].Valid || out[1].Valid {
		t.Error("positions before a full window must be undefined")
	}
	// sample stddev of {1,2,3} and {2,3,4} is 1
	for _, i := range []int{2, 3} {
		if !out[i].Valid || !approxEqual(out[i].Float, 1) {
			t.Errorf("out[%d] = %+v, want 1", i, out[i])
		}
	}
}

func TestEMA(t *testing.T) {
	out := ema([]float64{1, 2, 3, 4, 5}, 3)

	if out[0].Valid || out[1].Valid {
		t.Error("EMA must be undefined before the seed window")
	}
	// seed = avg(1,2,3) = 2; mult = 0.5
	want := []float64{2, 3, 4}
	for i, w := range want {
		got := out[i+2]
		if !got.Valid || !approxEqual(got.Float, w) {
			t.Errorf("out[%d] = %+v, want %v", i+2, got, w)
		}
	}
}

func TestEMAOverSkipsUndefinedPrefix(t *testing.T) {
	col := []model.Value{
		model.Undefined(), model.Undefined(),
		model.Defined(1), model.Defined(2), model.Defined(3), model.Defined(4),
	}
	out := emaOver(col, 2)

	for i := 0; i < 3; i++ {
		if out[i].Valid {
			t.Errorf("out[%d] should be undefined", i)
		}
	}
	// seed = avg(1,2) = 1.5 at index 3; mult = 2/3
	if !approxEqual(out[3].Float, 1.5) {
		t.Errorf("seed = %v, want 1.5", out[3].Float)
	}
	if !approxEqual(out[4].Float, 2.5) {
		t.Errorf("out[4] = %v, want 2.5", out[4].Float)
	}
	if !approxEqual(out[5].Float, 3.5) {
		t.Errorf("out[5] = %v, want 3.5", out[5].Float)
	}
}

func TestEMAOverAllUndefined(t *testing.T) {
	col := []model.Value{model.Undefined(), model.Undefined()}
	out := emaOver(col, 2)
	for i := range out {
		if out[i].Valid {
			t.Errorf("out[%d] should be undefined", i)
		}
	}
}

func TestRollingMaxMin(t *testing.T) {
	vals := []float64{3, 1, 4, 1, 5}
	max := rollingMax(vals, 3)
	min := rollingMin(vals, 3)

	if !approxEqual(max[2].Float, 4) || !approxEqual(max[4].Float, 5) {
		t.Errorf("rollingMax wrong: %+v", max)
	}
	if !approxEqual(min[2].Float, 1) || !approxEqual(min[4].Float, 1) {
		t.Errorf("rollingMin wrong: %+v", min)
	}
}
