package config

import (
	"errors"
	"time"
)

const (
	defaultMarketPollingInterval      = 10 * time.Minute
	defaultChainParamsPollingInterval = time.Hour
)

type PollerConfig struct {
	MarketPollingInterval      time.Duration `mapstructure:"market-polling-interval"`
	ChainParamsPollingInterval time.Duration `mapstructure:"chain-params-polling-interval"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.MarketPollingInterval <= 0 {
		return errors.New("market-polling-interval must be positive")
	}

	// chain params change rarely, fall back to the default instead of failing
	if cfg.ChainParamsPollingInterval <= 0 {
		cfg.ChainParamsPollingInterval = defaultChainParamsPollingInterval
	}

	return nil
}
