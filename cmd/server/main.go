package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TrendSentinel/internal/analyzer"
	"TrendSentinel/internal/api"
	"TrendSentinel/internal/calculator"
	"TrendSentinel/internal/collector"
	"TrendSentinel/internal/config"
	"TrendSentinel/internal/llm"
	"TrendSentinel/internal/logger"
	"TrendSentinel/internal/metrics"
	"TrendSentinel/internal/notifier"
	"TrendSentinel/internal/recorder"
	"TrendSentinel/internal/scheduler"
	"TrendSentinel/internal/strategy"
)

func main() {
	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("config validation", "error", err)
		os.Exit(1)
	}

	log := logger.Init("trend-sentinel", logger.ParseLevel(cfg.Server.LogLevel))
	log.Info("TrendSentinel starting")

	m := metrics.NewMetrics()

	// Init fetcher
	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case "rest":
		fetcher = collector.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	case "mock":
		fetcher = &collector.MockFetcher{}
	default:
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Info("data source ready", "provider", fetcher.Name())

	// Init analyzer
	params := strategy.Params{
		TrendLookbackPeriod:   cfg.Signal.TrendLookbackPeriod,
		BreakoutWindow:        cfg.Signal.BreakoutWindow,
		SustainedBreakoutDays: cfg.Signal.SustainedBreakoutDays,
	}
	opts := calculator.Options{
		VMAShortWindow: cfg.Signal.VMAShortWindow,
		VMALongWindow:  cfg.Signal.VMALongWindow,
	}
	anl := analyzer.New(fetcher, params, opts, log, m)

	// Init LLM report chain
	var reports api.ReportService
	if chain, err := buildChain(cfg, anl, log, m); err != nil {
		log.Warn("llm reports disabled", "error", err)
	} else {
		reports = chain
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warn("init sqlite recorder failed, using noop", "error", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Telegram notifier (optional)
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy,
			cfg.Telegram.MaxRetries, time.Duration(cfg.Telegram.RetryBackoffSeconds)*time.Second)
	}

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, anl, tn, rec, cfg.Watchlist, cfg.Signal.NotifyMinScore, m)
	if len(cfg.Watchlist) > 0 {
		if err := sched.RegisterAll(cfg.Schedule.DailyCron); err != nil {
			log.Error("register cron tasks", "error", err)
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()

		if os.Getenv("RUN_ON_START") == "true" {
			log.Info("RUN_ON_START enabled, executing scan now")
			go sched.RunScanNow()
		}
	}

	// Init HTTP server
	handler := api.NewHandler(anl, reports, rec, log, m)
	srv := handler.NewServer(cfg.Server.Addr)

	go func() {
		log.Info("http server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server", "error", err)
			cancel()
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}

	log.Info("shutdown signal received, stopping")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "error", err)
	}
	cancel()
	log.Info("TrendSentinel stopped")
}

// buildChain assembles the LLM report chain from config.
func buildChain(cfg *config.Config, anl *analyzer.Analyzer, log *slog.Logger, m *metrics.Metrics) (*llm.Chain, error) {
	var client llm.Client
	var err error
	switch cfg.LLM.Provider {
	case "cli":
		client = llm.NewCLIClient(cfg.LLM.Command, cfg.LLM.Model,
			time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)
	default:
		client, err = llm.NewOpenAIClient(llm.OpenAIOptions{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		})
		if err != nil {
			return nil, err
		}
	}

	var template *llm.PromptTemplate
	if cfg.LLM.PromptPath != "" {
		template, err = llm.LoadPromptTemplate(cfg.LLM.PromptPath)
		if err != nil {
			return nil, err
		}
	} else {
		template = llm.NewPromptTemplate("")
	}

	return llm.NewChain(anl, client, template, cfg.LLM.MaxRetries, log, m), nil
}
