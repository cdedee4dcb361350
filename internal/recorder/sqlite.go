package recorder

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"TrendSentinel/internal/model"
)

// SQLiteRecorder persists signal history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while the bot writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	slog.Info("sqlite recorder opened", "path", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS signals (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			symbol           TEXT NOT NULL,
			signal_status    TEXT NOT NULL,
			reason           TEXT,
			score_total      INTEGER,
			score_trend      INTEGER,
			score_momentum   INTEGER,
			score_volume     INTEGER,
			score_risk       INTEGER,
			trend_categories TEXT,
			macd             REAL,
			signal_line      REAL,
			rsi              REAL,
			cci              REAL,
			atr              REAL,
			volume           REAL,
			bollinger_upper  REAL,
			bollinger_lower  REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_ts ON signals(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_symbol ON signals(symbol)`,

		`CREATE TABLE IF NOT EXISTS reports (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			symbol     TEXT NOT NULL,
			suggestion TEXT,
			reason     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_ts ON reports(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordSignal stores one analysis result. Invalid records persist the
// status and reason with NULL indicator columns.
func (r *SQLiteRecorder) RecordSignal(symbol string, rec model.SignalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()

	if rec.SignalDetail == nil {
		_, err := r.db.Exec(`INSERT INTO signals (timestamp, symbol, signal_status, reason)
			VALUES (?,?,?,?)`,
			now, symbol, rec.Status, rec.Reason)
		return err
	}

	d := rec.SignalDetail
	_, err := r.db.Exec(`INSERT INTO signals
		(timestamp, symbol, signal_status, reason,
		 score_total, score_trend, score_momentum, score_volume, score_risk,
		 trend_categories,
		 macd, signal_line, rsi, cci, atr, volume, bollinger_upper, bollinger_lower)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		now, symbol, rec.Status, rec.Reason,
		d.ScoreTotal, d.ScoreBreakdown.Trend, d.ScoreBreakdown.Momentum,
		d.ScoreBreakdown.Volume, d.ScoreBreakdown.Risk,
		strings.Join(d.TrendCategories, ","),
		d.MACD, d.SignalLine, d.RSI, d.CCI, d.ATR, d.Volume,
		d.BollingerUpper, d.BollingerLower,
	)
	return err
}

// RecordReport stores one LLM report.
func (r *SQLiteRecorder) RecordReport(symbol, suggestion, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO reports (timestamp, symbol, suggestion, reason)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), symbol, suggestion, reason)
	return err
}

func (r *SQLiteRecorder) Close() error {
	slog.Info("closing sqlite recorder")
	return r.db.Close()
}
