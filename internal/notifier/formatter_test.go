package notifier

import (
	"strings"
	"testing"

	"TrendSentinel/internal/model"
)

func TestFormatSignalReport(t *testing.T) {
	rec := model.SignalRecord{
		Status: model.StatusOK,
		SignalDetail: &model.SignalDetail{
			ScoreTotal:      5,
			ScoreBreakdown:  model.ScoreBreakdown{Trend: 4, Momentum: 1},
			TrendCategories: []string{"macd_bullish", "recent_high"},
			SustainedHighs:  2,
			MACD:            1.234,
			RSI:             65,
		},
	}

	msg := FormatSignalReport("2330.TW", rec)

	for _, want := range []string{"2330.TW", "<b>5</b>", "macd_bullish", "recent_high", "1.234"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatSignalReportInvalid(t *testing.T) {
	msg := FormatSignalReport("X", model.InvalidSignal("No kbar data for X"))

	if !strings.Contains(msg, "No kbar data for X") {
		t.Errorf("message missing reason:\n%s", msg)
	}
	if strings.Contains(msg, "综合评分") {
		t.Error("invalid record must not render score lines")
	}
}

func TestFormatSignalReportNoCategories(t *testing.T) {
	rec := model.SignalRecord{Status: model.StatusOK, SignalDetail: &model.SignalDetail{}}
	msg := FormatSignalReport("X", rec)
	if !strings.Contains(msg, "无触发信号") {
		t.Errorf("expected empty-category marker:\n%s", msg)
	}
}
