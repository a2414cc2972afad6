package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Provider.BaseURL == "" {
		return errors.New("provider.base_url is required")
	}
	if c.Provider.Timeout < 0 {
		return fmt.Errorf("provider.timeout must be >= 0, got %v", c.Provider.Timeout)
	}
	if c.Provider.FallbackRate < 0 {
		return fmt.Errorf("provider.fallback_rate must be >= 0, got %v", c.Provider.FallbackRate)
	}
	if c.Provider.BarRange == "" {
		return errors.New("provider.bar_range is required")
	}

	if c.Refresh.TickInterval < 10*time.Millisecond {
		return fmt.Errorf("refresh.tick_interval must be >= 10ms, got %v", c.Refresh.TickInterval)
	}
	if c.Refresh.InboxCapacity < 1 {
		return errors.New("refresh.inbox_capacity must be >= 1")
	}

	return nil
}
