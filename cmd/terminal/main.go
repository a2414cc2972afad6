package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/quantdesk/quantterm/internal/config"
	"github.com/quantdesk/quantterm/internal/marketdata"
	"github.com/quantdesk/quantterm/internal/pipeline"
	"github.com/quantdesk/quantterm/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	ticker := flag.String("ticker", "", "ticker to refresh on startup (overrides config)")
	flag.Parse()

	// Optional .env for provider credentials referenced from the config.
	_ = godotenv.Load()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting terminal",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	var cfg *config.Config
	if *configPath != "" {
		loaded, err := config.LoadAndValidate(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	logger.Info("configuration loaded",
		"provider_url", cfg.Provider.BaseURL,
		"rate_symbol", cfg.Provider.RateSymbol,
		"tick_interval", cfg.Refresh.TickInterval,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Create provider client and adapter
	client := marketdata.NewClient(
		cfg.Provider.BaseURL,
		marketdata.WithAPIKey(cfg.Provider.APIKey),
		marketdata.WithTimeout(cfg.Provider.Timeout),
		marketdata.WithLogger(logger),
	)
	adapter := marketdata.NewAdapter(client, marketdata.AdapterConfig{
		MarketSuffix: cfg.Provider.MarketSuffix,
		RateSymbol:   cfg.Provider.RateSymbol,
		FallbackRate: cfg.Provider.FallbackRate,
		BarRange:     cfg.Provider.BarRange,
	}, logger)

	// Create the pricing engine; this issues the startup rate fetch.
	engine := pipeline.New(adapter, pipeline.Config{
		InboxCapacity: cfg.Refresh.InboxCapacity,
		Initial:       pipeline.DefaultParams(),
	}, logger)
	defer engine.Close()

	startupTicker := cfg.Refresh.DefaultTicker
	if *ticker != "" {
		startupTicker = *ticker
	}
	if startupTicker != "" {
		engine.RequestRefresh(startupTicker)
	}

	// Drive the recomputation loop. This tick stands in for a UI
	// redraw cycle: drain the inbox, recompute, publish.
	run(ctx, engine, cfg.Refresh.TickInterval, logger)

	stats := engine.Stats()
	logger.Info("terminal stopped",
		"recomputes", stats.Recomputes,
		"updates_applied", stats.UpdatesApplied,
	)
}

// run ticks the engine until the context is cancelled, logging the
// recomputed result whenever market updates were applied.
func run(ctx context.Context, engine *pipeline.Engine, interval time.Duration, logger *slog.Logger) {
	t := time.NewTicker(interval)
	defer t.Stop()

	var lastApplied int64

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			result := engine.Tick()

			stats := engine.Stats()
			if stats.UpdatesApplied == lastApplied {
				continue
			}
			lastApplied = stats.UpdatesApplied

			params := engine.Params()
			logger.Info("repriced",
				"spot", params.Spot,
				"strike", params.Strike,
				"days", params.Days,
				"rate_pct", params.RatePct,
				"vol_pct", params.VolPct,
				"call", result.CallPrice,
				"put", result.PutPrice,
				"delta", result.Greeks.Delta,
				"gamma", result.Greeks.Gamma,
				"theta", result.Greeks.Theta,
				"vega", result.Greeks.Vega,
			)
		}
	}
}
