package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultProviderURL   = "https://query1.finance.yahoo.com"
	DefaultTimeout       = 10 * time.Second
	DefaultMarketSuffix  = ".SA"
	DefaultRateSymbol    = "BRLSELIC=B"
	DefaultFallbackRate  = 10.75
	DefaultBarRange      = "6mo"
	DefaultTickInterval  = 1 * time.Second
	DefaultInboxCapacity = 16
	DefaultTicker        = "PETR4"
)

func (c *Config) applyDefaults() {
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = DefaultProviderURL
	}
	if c.Provider.Timeout == 0 {
		c.Provider.Timeout = DefaultTimeout
	}
	if c.Provider.MarketSuffix == "" {
		c.Provider.MarketSuffix = DefaultMarketSuffix
	}
	if c.Provider.RateSymbol == "" {
		c.Provider.RateSymbol = DefaultRateSymbol
	}
	if c.Provider.FallbackRate == 0 {
		c.Provider.FallbackRate = DefaultFallbackRate
	}
	if c.Provider.BarRange == "" {
		c.Provider.BarRange = DefaultBarRange
	}

	if c.Refresh.TickInterval == 0 {
		c.Refresh.TickInterval = DefaultTickInterval
	}
	if c.Refresh.InboxCapacity == 0 {
		c.Refresh.InboxCapacity = DefaultInboxCapacity
	}
	if c.Refresh.DefaultTicker == "" {
		c.Refresh.DefaultTicker = DefaultTicker
	}
}
