package notifier

import (
	"fmt"
	"strings"
	"time"

	"TrendSentinel/internal/model"
)

// FormatSignalReport formats one symbol's signal record into a Telegram message.
func FormatSignalReport(symbol string, rec model.SignalRecord) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>TrendSentinel</b> | %s | %s\n\n",
		symbol, time.Now().Format("2006-01-02")))

	if !rec.IsOK() {
		b.WriteString(fmt.Sprintf("⚠️ 无法生成信号: %s\n", rec.Reason))
		return b.String()
	}

	d := rec.SignalDetail

	b.WriteString(fmt.Sprintf("综合评分: <b>%d</b> (趋势 %d | 动能 %d | 量能 %d | 风险 %d)\n\n",
		d.ScoreTotal,
		d.ScoreBreakdown.Trend, d.ScoreBreakdown.Momentum,
		d.ScoreBreakdown.Volume, d.ScoreBreakdown.Risk))

	b.WriteString("📈 <b>指标快照:</b>\n")
	b.WriteString(fmt.Sprintf("  MACD: %.3f | Signal: %.3f\n", d.MACD, d.SignalLine))
	b.WriteString(fmt.Sprintf("  RSI: %.1f | CCI: %.1f | ATR: %.2f\n", d.RSI, d.CCI, d.ATR))
	b.WriteString(fmt.Sprintf("  布林通道: %.2f ~ %.2f\n", d.BollingerLower, d.BollingerUpper))
	b.WriteString(fmt.Sprintf("  量均: %.0f / %.0f | 今量: %.0f\n\n", d.VMAShort, d.VMALong, d.Volume))

	if len(d.TrendCategories) > 0 {
		b.WriteString("🏷 <b>触发信号:</b>\n")
		for _, cat := range d.TrendCategories {
			b.WriteString(fmt.Sprintf("  • %s\n", cat))
		}
	} else {
		b.WriteString("🏷 无触发信号\n")
	}

	if d.SustainedHighs > 0 {
		b.WriteString(fmt.Sprintf("\n连续创高天数: %d\n", d.SustainedHighs))
	}

	return b.String()
}
