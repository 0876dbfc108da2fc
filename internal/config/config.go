package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/tronrelic/tronrelic-indexer/internal/observability/logging"
)

const envPrefix = "TRONRELIC"

type Config struct {
	Db        DbConfig        `mapstructure:"db"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Queue     QueueConfig     `mapstructure:"queue"`
	Tron      TronConfig      `mapstructure:"tron"`
	Poller    PollerConfig    `mapstructure:"poller"`
	Fetcher   FetcherConfig   `mapstructure:"fetcher"`
	Markets   []MarketConfig  `mapstructure:"markets"`
	Observers ObserversConfig `mapstructure:"observers"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Logging   logging.Config  `mapstructure:"logging"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Db.Validate(); err != nil {
		return err
	}
	if err := cfg.Redis.Validate(); err != nil {
		return err
	}
	if err := cfg.Queue.Validate(); err != nil {
		return err
	}
	if err := cfg.Tron.Validate(); err != nil {
		return err
	}
	if err := cfg.Poller.Validate(); err != nil {
		return err
	}
	if err := cfg.Fetcher.Validate(); err != nil {
		return err
	}
	if err := cfg.Observers.Validate(); err != nil {
		return err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	if len(cfg.Markets) == 0 {
		return errors.New("at least one market must be configured")
	}
	seen := make(map[string]struct{}, len(cfg.Markets))
	for i := range cfg.Markets {
		market := &cfg.Markets[i]
		if err := market.Validate(); err != nil {
			return fmt.Errorf("market #%d: %w", i, err)
		}
		if _, ok := seen[market.Guid]; ok {
			return fmt.Errorf("duplicate market guid %q", market.Guid)
		}
		seen[market.Guid] = struct{}{}
	}

	return nil
}

// New loads the config from the yaml file at cfgPath, environment variables
// prefixed with TRONRELIC_ override file values
func New(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	v.SetConfigFile(cfgPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.max-pagination-limit", defaultMaxPaginationLimit)

	v.SetDefault("redis.ranked-markets-ttl", defaultRankedMarketsTTL)

	v.SetDefault("queue.markets-exchange", defaultMarketsExchange)
	v.SetDefault("queue.transactions-queue", defaultTransactionsQueue)
	v.SetDefault("queue.prefetch-count", defaultPrefetchCount)

	v.SetDefault("tron.endpoint", defaultTronEndpoint)
	v.SetDefault("tron.timeout", defaultTronTimeout)
	v.SetDefault("tron.max-retry-times", defaultMaxRetryTimes)
	v.SetDefault("tron.retry-interval", defaultRetryInterval)

	v.SetDefault("poller.market-polling-interval", defaultMarketPollingInterval)
	v.SetDefault("poller.chain-params-polling-interval", defaultChainParamsPollingInterval)

	v.SetDefault("fetcher.timeout", defaultFetchTimeout)
	v.SetDefault("fetcher.max-retry-times", defaultMaxRetryTimes)
	v.SetDefault("fetcher.retry-interval", defaultRetryInterval)
	v.SetDefault("fetcher.max-retry-delay", defaultMaxRetryDelay)
	v.SetDefault("fetcher.requests-per-second", defaultRequestsPerSecond)

	v.SetDefault("observers.transaction-queue-capacity", defaultTransactionQueueCapacity)
	v.SetDefault("observers.batch-queue-capacity", defaultBatchQueueCapacity)
	v.SetDefault("observers.block-queue-capacity", defaultBlockQueueCapacity)
	v.SetDefault("observers.large-transfer-threshold-trx", defaultLargeTransferThresholdTrx)

	v.SetDefault("metrics.host", "0.0.0.0")
	v.SetDefault("metrics.port", defaultMetricsPort)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}
