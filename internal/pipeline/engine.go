package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/quantdesk/quantterm/internal/pricing"
)

// ParameterSource provides market-derived pricing parameters. All
// operations report failure as ok=false; implementations never return
// errors (failed fetches are silently dropped at the adapter boundary).
type ParameterSource interface {
	FetchPriceAndVolatility(ctx context.Context, ticker string) (price, volPct float64, ok bool)
	FetchRiskFreeRate(ctx context.Context) (rate float64, ok bool)
}

// Params are the pricing parameters in presentation units: trading
// days to expiry, nominal annual rate percent, volatility percent.
type Params struct {
	Spot    float64
	Strike  float64
	Days    float64
	RatePct float64
	VolPct  float64
}

// DefaultParams returns the initial parameter set shown before any
// market data arrives.
func DefaultParams() Params {
	return Params{
		Spot:    35.0,
		Strike:  35.0,
		Days:    21.0,
		RatePct: 10.75,
		VolPct:  30.0,
	}
}

// Config holds engine settings.
type Config struct {
	InboxCapacity int
	Initial       Params
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		InboxCapacity: 16,
		Initial:       DefaultParams(),
	}
}

// Engine owns the authoritative parameter set and the latest pricing
// result. Fetches run as independent goroutines and communicate only
// through the inbox; every other field is owned by the single driver
// goroutine that calls Tick and the setters.
type Engine struct {
	source ParameterSource
	inbox  *Inbox
	logger *slog.Logger

	params Params
	result pricing.Result

	recomputes     int64
	updatesApplied int64
}

// New creates an Engine and immediately issues the startup rate fetch
// so the rate field is populated without a manual refresh.
func New(source ParameterSource, cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.InboxCapacity == 0 {
		cfg.InboxCapacity = DefaultConfig().InboxCapacity
	}

	e := &Engine{
		source: source,
		inbox:  NewInbox(cfg.InboxCapacity),
		logger: logger,
		params: cfg.Initial,
	}

	e.RequestRateRefresh()
	return e
}

// RequestRefresh issues a fire-and-forget fetch of price and
// volatility for a ticker. Results surface through the inbox on a
// later tick; an empty fetch is dropped without notice.
func (e *Engine) RequestRefresh(ticker string) {
	refreshID := uuid.New()
	e.logger.Info("refresh requested", "ticker", ticker, "refresh_id", refreshID)

	go func() {
		price, volPct, ok := e.source.FetchPriceAndVolatility(context.Background(), ticker)
		if !ok {
			e.logger.Debug("refresh yielded no data", "ticker", ticker, "refresh_id", refreshID)
			return
		}
		// Price before volatility: in-order delivery within one fetch.
		e.inbox.Post(Update{Kind: KindPrice, Value: price, RefreshID: refreshID})
		e.inbox.Post(Update{Kind: KindVolatility, Value: volPct, RefreshID: refreshID})
	}()
}

// RequestRateRefresh issues a fire-and-forget risk-free-rate fetch.
func (e *Engine) RequestRateRefresh() {
	refreshID := uuid.New()

	go func() {
		rate, ok := e.source.FetchRiskFreeRate(context.Background())
		if !ok {
			e.logger.Debug("rate refresh yielded no data", "refresh_id", refreshID)
			return
		}
		e.inbox.Post(Update{Kind: KindRiskFreeRate, Value: rate, RefreshID: refreshID})
	}()
}

// Tick drains all queued updates, applies them last-write-wins, then
// recomputes the pricing result exactly once. It never blocks: with an
// empty inbox it recomputes from the current parameters immediately.
func (e *Engine) Tick() pricing.Result {
	for _, u := range e.inbox.DrainAll() {
		switch u.Kind {
		case KindPrice:
			e.params.Spot = u.Value
		case KindVolatility:
			e.params.VolPct = u.Value
		case KindRiskFreeRate:
			e.params.RatePct = u.Value
		}
		e.updatesApplied++
		e.logger.Debug("applied market update",
			"kind", u.Kind.String(),
			"value", u.Value,
			"refresh_id", u.RefreshID,
		)
	}

	e.result = pricing.PriceAndGreeks(pricing.InputsFromDisplay(
		e.params.Spot,
		e.params.Strike,
		e.params.Days,
		e.params.RatePct,
		e.params.VolPct,
	))
	e.recomputes++

	return e.result
}

// Params returns the current presentation-unit parameters.
func (e *Engine) Params() Params { return e.params }

// Result returns the latest pricing result.
func (e *Engine) Result() pricing.Result { return e.result }

// Setters for user edits from the presentation layer. Like Tick, they
// must be called from the driver goroutine only.

func (e *Engine) SetSpot(v float64)    { e.params.Spot = v }
func (e *Engine) SetStrike(v float64)  { e.params.Strike = v }
func (e *Engine) SetDays(v float64)    { e.params.Days = v }
func (e *Engine) SetRatePct(v float64) { e.params.RatePct = v }
func (e *Engine) SetVolPct(v float64)  { e.params.VolPct = v }

// EngineStats holds engine counters.
type EngineStats struct {
	Recomputes     int64
	UpdatesApplied int64
	Inbox          InboxStats
}

// Stats returns current counters.
func (e *Engine) Stats() EngineStats {
	return EngineStats{
		Recomputes:     e.recomputes,
		UpdatesApplied: e.updatesApplied,
		Inbox:          e.inbox.Stats(),
	}
}

// Close closes the inbox. In-flight fetches complete on their own and
// their posts are dropped.
func (e *Engine) Close() {
	e.inbox.Close()
}
