// Package marketdata fetches quotes from the external market data
// provider and derives Black-Scholes parameters from them.
//
// The Market Data Adapter:
//   - Fetches ~6 months of daily bars and estimates annualized
//     historical volatility from log returns
//   - Fetches a risk-free-rate proxy quote, substituting a fixed
//     default when the provider is unreachable
//   - Swallows fetch failures: operations return (value, ok) and never
//     surface provider errors to callers
package marketdata
