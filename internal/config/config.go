package config

import "time"

// Config is the root configuration for the terminal.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Refresh  RefreshConfig  `yaml:"refresh"`
}

// ProviderConfig holds quote provider settings.
type ProviderConfig struct {
	BaseURL      string        `yaml:"base_url"`
	APIKey       string        `yaml:"api_key"` // Env-expanded, optional
	Timeout      time.Duration `yaml:"timeout"`
	MarketSuffix string        `yaml:"market_suffix"` // Appended to tickers (e.g. ".SA")
	RateSymbol   string        `yaml:"rate_symbol"`   // Risk-free-rate proxy instrument
	FallbackRate float64       `yaml:"fallback_rate"` // Used when the rate fetch errors
	BarRange     string        `yaml:"bar_range"`     // Volatility lookback (e.g. "6mo")
}

// RefreshConfig holds recomputation loop settings.
type RefreshConfig struct {
	TickInterval  time.Duration `yaml:"tick_interval"`
	InboxCapacity int           `yaml:"inbox_capacity"`
	DefaultTicker string        `yaml:"default_ticker"`
}
