package config

import (
	"errors"
	"time"
)

const defaultRankedMarketsTTL = 5 * time.Minute

type RedisConfig struct {
	URL              string        `mapstructure:"url"`
	RankedMarketsTTL time.Duration `mapstructure:"ranked-markets-ttl"`
}

func (cfg *RedisConfig) Validate() error {
	if cfg.URL == "" {
		return errors.New("missing redis url")
	}
	if cfg.RankedMarketsTTL <= 0 {
		return errors.New("ranked-markets-ttl must be positive")
	}
	return nil
}
