package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tronrelic/tronrelic-indexer/internal/config"
	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

const RankedMarketsKey = "markets:ranked"

var ErrMiss = errors.New("cache miss")

//go:generate mockery --name=MarketCache --output=../../tests/mocks --outpkg=mocks --filename=mock_market_cache.go
type MarketCache interface {
	SetRankedMarkets(ctx context.Context, docs []*model.MarketDocument) error
	// GetRankedMarkets returns ErrMiss when nothing is cached
	GetRankedMarkets(ctx context.Context) ([]*model.MarketDocument, error)
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(ctx context.Context, cfg *config.RedisConfig) (*RedisCache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewWithClient(client, cfg.RankedMarketsTTL), nil
}

func NewWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) SetRankedMarkets(ctx context.Context, docs []*model.MarketDocument) error {
	payload, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("marshal ranked markets: %w", err)
	}
	if err := c.client.Set(ctx, RankedMarketsKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache ranked markets: %w", err)
	}
	return nil
}

func (c *RedisCache) GetRankedMarkets(ctx context.Context) ([]*model.MarketDocument, error) {
	payload, err := c.client.Get(ctx, RankedMarketsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("read ranked markets: %w", err)
	}

	var docs []*model.MarketDocument
	if err := json.Unmarshal(payload, &docs); err != nil {
		return nil, fmt.Errorf("decode ranked markets: %w", err)
	}
	return docs, nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
