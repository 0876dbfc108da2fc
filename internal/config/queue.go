package config

import "errors"

const (
	defaultMarketsExchange   = "tronrelic.markets"
	defaultTransactionsQueue = "transactions"
	defaultPrefetchCount     = 50
)

type QueueConfig struct {
	URL               string `mapstructure:"url"`
	MarketsExchange   string `mapstructure:"markets-exchange"`
	TransactionsQueue string `mapstructure:"transactions-queue"`
	PrefetchCount     int    `mapstructure:"prefetch-count"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.URL == "" {
		return errors.New("missing queue url")
	}
	if cfg.MarketsExchange == "" {
		return errors.New("missing markets exchange name")
	}
	if cfg.TransactionsQueue == "" {
		return errors.New("missing transactions queue name")
	}
	if cfg.PrefetchCount <= 0 {
		return errors.New("prefetch-count must be positive")
	}
	return nil
}
