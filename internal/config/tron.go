package config

import (
	"errors"
	"time"
)

const (
	defaultTronEndpoint  = "https://api.trongrid.io"
	defaultTronTimeout   = 20 * time.Second
	defaultMaxRetryTimes = 3
	defaultRetryInterval = time.Second
)

type TronConfig struct {
	Endpoint      string        `mapstructure:"endpoint"`
	APIKey        string        `mapstructure:"api-key"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *TronConfig) Validate() error {
	if cfg.Endpoint == "" {
		return errors.New("missing tron endpoint")
	}
	if cfg.Timeout <= 0 {
		return errors.New("tron timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return errors.New("tron max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return errors.New("tron retry-interval must be positive")
	}
	return nil
}
