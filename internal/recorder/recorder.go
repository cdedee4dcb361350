package recorder

import "TrendSentinel/internal/model"

// Recorder persists signal history for later analysis.
type Recorder interface {
	RecordSignal(symbol string, record model.SignalRecord) error
	RecordReport(symbol, suggestion, reason string) error
	Close() error
}

// Noop discards everything. Used when no database is configured.
type Noop struct{}

// NewNoopRecorder returns a recorder that drops all writes.
func NewNoopRecorder() Noop { return Noop{} }

func (Noop) RecordSignal(string, model.SignalRecord) error { return nil }
func (Noop) RecordReport(string, string, string) error     { return nil }
func (Noop) Close() error                                  { return nil }
