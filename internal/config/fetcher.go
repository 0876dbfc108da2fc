package config

import (
	"errors"
	"time"
)

const (
	defaultFetchTimeout      = 15 * time.Second
	defaultMaxRetryDelay     = 10 * time.Second
	defaultRequestsPerSecond = 2.0
)

// FetcherConfig is shared by every market fetcher
type FetcherConfig struct {
	Timeout           time.Duration `mapstructure:"timeout"`
	MaxRetryTimes     uint          `mapstructure:"max-retry-times"`
	RetryInterval     time.Duration `mapstructure:"retry-interval"`
	MaxRetryDelay     time.Duration `mapstructure:"max-retry-delay"`
	RequestsPerSecond float64       `mapstructure:"requests-per-second"`
}

func (cfg *FetcherConfig) Validate() error {
	if cfg.Timeout <= 0 {
		return errors.New("fetcher timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return errors.New("fetcher max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return errors.New("fetcher retry-interval must be positive")
	}
	if cfg.MaxRetryDelay < cfg.RetryInterval {
		return errors.New("fetcher max-retry-delay must not be lower than retry-interval")
	}
	if cfg.RequestsPerSecond <= 0 {
		return errors.New("fetcher requests-per-second must be positive")
	}
	return nil
}
