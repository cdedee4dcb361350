package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("HTTPS_PROXY", "")
	t.Setenv("SQLITE_PATH", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Addr != ":8000" {
		t.Errorf("addr = %s", cfg.Server.Addr)
	}
	if cfg.DataSource.Provider != "yahoo" {
		t.Errorf("provider = %s", cfg.DataSource.Provider)
	}
	if cfg.Signal.TrendLookbackPeriod != 60 || cfg.Signal.BreakoutWindow != 10 || cfg.Signal.SustainedBreakoutDays != 3 {
		t.Errorf("signal defaults wrong: %+v", cfg.Signal)
	}
	if cfg.Signal.VMAShortWindow != 5 || cfg.Signal.VMALongWindow != 20 {
		t.Errorf("vma defaults wrong: %+v", cfg.Signal)
	}
	if cfg.LLM.Provider != "openai" || cfg.LLM.MaxRetries != 3 || cfg.LLM.TimeoutSeconds != 120 {
		t.Errorf("llm defaults wrong: %+v", cfg.LLM)
	}
	if cfg.Schedule.DailyCron == "" || cfg.Database.SQLitePath == "" {
		t.Error("schedule/database defaults missing")
	}
	if cfg.Telegram.MaxRetries != 3 || cfg.Telegram.RetryBackoffSeconds != 1 {
		t.Errorf("telegram retry defaults wrong: %+v", cfg.Telegram)
	}
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9000"
data_source:
  base_url: "http://bars.local"
  api_key: "file-key"
signal:
  trend_lookback_period: 30
watchlist:
  - "2330.TW"
  - "0050.TW"
`)
	t.Setenv("DATA_SOURCE_API_KEY", "env-key")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr = %s", cfg.Server.Addr)
	}
	// base_url present without explicit provider selects the rest fetcher
	if cfg.DataSource.Provider != "rest" {
		t.Errorf("provider = %s, want rest", cfg.DataSource.Provider)
	}
	if cfg.DataSource.APIKey != "env-key" {
		t.Errorf("env override lost: %s", cfg.DataSource.APIKey)
	}
	if cfg.Server.LogLevel != "debug" {
		t.Errorf("log level = %s", cfg.Server.LogLevel)
	}
	if cfg.Signal.TrendLookbackPeriod != 30 {
		t.Errorf("lookback = %d", cfg.Signal.TrendLookbackPeriod)
	}
	if len(cfg.Watchlist) != 2 || cfg.Watchlist[0] != "2330.TW" {
		t.Errorf("watchlist = %v", cfg.Watchlist)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "server: [not: valid")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		cfg.LLM.APIKey = "sk-test"
		return cfg
	}

	if err := base().Validate(); err != nil {
		t.Errorf("baseline config should validate: %v", err)
	}

	cfg := base()
	cfg.DataSource.Provider = "rest"
	cfg.DataSource.BaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("rest provider without base_url must fail")
	}

	cfg = base()
	cfg.DataSource.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider must fail")
	}

	cfg = base()
	cfg.LLM.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("openai provider without key must fail")
	}

	cfg = base()
	cfg.LLM.Provider = "cli"
	cfg.LLM.Command = ""
	if err := cfg.Validate(); err == nil {
		t.Error("cli provider without command must fail")
	}

	cfg = base()
	cfg.Signal.VMAShortWindow = 20
	cfg.Signal.VMALongWindow = 20
	if err := cfg.Validate(); err == nil {
		t.Error("short window must be below long window")
	}

	cfg = base()
	cfg.Telegram.BotToken = "token"
	if err := cfg.Validate(); err == nil {
		t.Error("bot token without chat id must fail")
	}
}
