package tronclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/tronrelic/tronrelic-indexer/internal/clients/client"
	"github.com/tronrelic/tronrelic-indexer/internal/config"
	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

const (
	chainParametersPath = "/wallet/getchainparameters"
	accountResourcePath = "/wallet/getaccountresource"
	apiKeyHeader        = "TRON-PRO-API-KEY"

	// any activated account returns the network wide energy totals
	resourceProbeAddress = "T9yD14Nj9j7xAB4dbGeiX9h8unkKHxuWwb"
)

// chain parameter keys as named by the TRON node API
const (
	keyEnergyFee               = "getEnergyFee"
	keyTotalEnergyCurrentLimit = "getTotalEnergyCurrentLimit"
	keyTotalEnergyLimit        = "getTotalEnergyLimit"
)

type Client struct {
	httpClient *http.Client
	cfg        *config.TronConfig
}

func NewClient(cfg *config.TronConfig) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetBaseURL() string {
	return c.cfg.Endpoint
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

type chainParametersResponse struct {
	ChainParameter []struct {
		Key   string `json:"key"`
		Value int64  `json:"value"`
	} `json:"chainParameter"`
}

type accountResourceRequest struct {
	Address string `json:"address"`
	Visible bool   `json:"visible"`
}

type accountResourceResponse struct {
	TotalEnergyLimit  int64 `json:"TotalEnergyLimit"`
	TotalEnergyWeight int64 `json:"TotalEnergyWeight"`
}

func (c *Client) GetChainParameters(ctx context.Context) (*model.ChainParameters, error) {
	params, err := clientCallWithRetry(ctx, func() (*chainParametersResponse, error) {
		return client.SendRequest[struct{}, chainParametersResponse](
			ctx, c, http.MethodGet, c.options(chainParametersPath), nil,
		)
	}, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain parameters: %w", err)
	}

	resources, err := clientCallWithRetry(ctx, func() (*accountResourceResponse, error) {
		return client.SendRequest[accountResourceRequest, accountResourceResponse](
			ctx, c, http.MethodPost, c.options(accountResourcePath),
			&accountResourceRequest{Address: resourceProbeAddress, Visible: true},
		)
	}, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get energy totals: %w", err)
	}

	result := &model.ChainParameters{
		TotalEnergyLimit:  resources.TotalEnergyLimit,
		TotalEnergyWeight: resources.TotalEnergyWeight,
		UpdatedAt:         time.Now().UTC(),
	}
	for _, p := range params.ChainParameter {
		switch p.Key {
		case keyEnergyFee:
			result.EnergyFee = p.Value
		case keyTotalEnergyCurrentLimit:
			result.TotalEnergyLimit = p.Value
		case keyTotalEnergyLimit:
			if result.TotalEnergyLimit == 0 {
				result.TotalEnergyLimit = p.Value
			}
		}
	}

	if result.EnergyFee <= 0 {
		return nil, errors.New("chain parameters do not contain the energy fee")
	}
	return result, nil
}

func (c *Client) options(path string) *client.HttpClientOptions {
	opts := &client.HttpClientOptions{Path: path}
	if c.cfg.APIKey != "" {
		opts.Headers = map[string]string{apiKeyHeader: c.cfg.APIKey}
	}
	return opts
}

func isRetryable(err error) bool {
	var httpErr *client.HttpError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusTooManyRequests ||
			httpErr.StatusCode >= http.StatusInternalServerError
	}
	return !errors.Is(err, context.Canceled)
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.TronConfig,
) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("tron node request failed, retrying with exponential backoff")
		}))
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
