package fetcher

import (
	"context"
	"net/http"
	"time"

	"github.com/tronrelic/tronrelic-indexer/internal/clients/client"
	"github.com/tronrelic/tronrelic-indexer/internal/config"
)

// source is the HTTP side shared by all pullers
type source struct {
	market     config.MarketConfig
	cfg        *config.FetcherConfig
	httpClient *http.Client
	limiter    *Limiter
}

func newSource(market config.MarketConfig, cfg *config.FetcherConfig) *source {
	return &source{
		market:     market,
		cfg:        cfg,
		httpClient: &http.Client{},
		limiter:    NewLimiter(cfg.RequestsPerSecond, 1, market.Guid),
	}
}

func (s *source) GetBaseURL() string {
	return s.market.URL
}

func (s *source) GetDefaultRequestTimeout() time.Duration {
	return s.cfg.Timeout
}

func (s *source) GetHttpClient() *http.Client {
	return s.httpClient
}

func getJSON[R any](ctx context.Context, s *source) (*R, error) {
	call := func() (*R, error) {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		opts := &client.HttpClientOptions{TemplatePath: string(s.market.Kind)}
		return client.SendRequest[struct{}, R](ctx, s, http.MethodGet, opts, nil)
	}
	return RequestWithRetry(ctx, s.cfg, s.market.Guid, call)
}
