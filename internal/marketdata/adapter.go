package marketdata

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Adapter derives pricing parameters from provider quotes. All fetch
// operations swallow provider failures and report them as ok=false;
// callers see no errors (failed enrichment data is silently dropped).
type Adapter struct {
	client       *Client
	logger       *slog.Logger
	marketSuffix string
	rateSymbol   string
	fallbackRate float64
	barRange     string
}

// AdapterConfig holds adapter settings.
type AdapterConfig struct {
	MarketSuffix string  // Appended to normalized tickers (e.g. ".SA")
	RateSymbol   string  // Risk-free-rate proxy instrument
	FallbackRate float64 // Substituted when the rate fetch errors
	BarRange     string  // Lookback for the volatility series (e.g. "6mo")
}

// NewAdapter creates an Adapter on top of a provider client.
func NewAdapter(client *Client, cfg AdapterConfig, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{
		client:       client,
		logger:       logger,
		marketSuffix: cfg.MarketSuffix,
		rateSymbol:   cfg.RateSymbol,
		fallbackRate: cfg.FallbackRate,
		barRange:     cfg.BarRange,
	}
}

// NormalizeTicker trims, uppercases and appends the market suffix.
func (a *Adapter) NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker)) + a.marketSuffix
}

// FetchPriceAndVolatility fetches the recent daily bar series for a
// ticker and returns the last close plus annualized historical
// volatility in percent. Returns ok=false on any provider error or
// when fewer than two bars are available.
func (a *Adapter) FetchPriceAndVolatility(ctx context.Context, ticker string) (price, volPct float64, ok bool) {
	symbol := a.NormalizeTicker(ticker)

	bars, err := a.client.GetDailyBars(ctx, symbol, a.barRange)
	if err != nil {
		a.logger.Warn("market data fetch failed", "symbol", symbol, "err", err)
		return 0, 0, false
	}
	if len(bars) < 2 {
		a.logger.Warn("insufficient bars for volatility", "symbol", symbol, "bars", len(bars))
		return 0, 0, false
	}

	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}

	volPct, ok = HistoricalVolatility(closes)
	if !ok {
		return 0, 0, false
	}

	return closes[len(closes)-1], volPct, true
}

// FetchRiskFreeRate fetches the latest quote for the rate proxy
// instrument. A transport-level error is masked by the configured
// fallback rate (availability over correctness). A successful response
// carrying zero quotes returns ok=false with no fallback applied.
func (a *Adapter) FetchRiskFreeRate(ctx context.Context) (float64, bool) {
	bar, ok, err := a.client.GetLatestQuote(ctx, a.rateSymbol)
	if err != nil {
		a.logger.Warn("rate fetch failed, using fallback",
			"symbol", a.rateSymbol,
			"fallback", a.fallbackRate,
			"err", err,
		)
		return a.fallbackRate, true
	}
	if !ok {
		return 0, false
	}
	return bar.Close, true
}

// MarketSnapshot is the result of a combined refresh.
type MarketSnapshot struct {
	Price         float64
	VolatilityPct float64
	PriceOK       bool
	Rate          float64
	RateOK        bool
}

// FetchAll refreshes price, volatility and the risk-free rate
// concurrently. Individual failures follow the same silent-drop and
// fallback policies as the underlying operations.
func (a *Adapter) FetchAll(ctx context.Context, ticker string) MarketSnapshot {
	var snap MarketSnapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap.Price, snap.VolatilityPct, snap.PriceOK = a.FetchPriceAndVolatility(ctx, ticker)
		return nil
	})
	g.Go(func() error {
		snap.Rate, snap.RateOK = a.FetchRiskFreeRate(ctx)
		return nil
	})
	_ = g.Wait()

	return snap
}
