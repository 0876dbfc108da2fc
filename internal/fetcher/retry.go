package fetcher

import (
	"context"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/tronrelic/tronrelic-indexer/internal/config"
)

// RequestWithRetry runs call with capped exponential backoff
func RequestWithRetry[T any](
	ctx context.Context,
	cfg *config.FetcherConfig,
	guid string,
	call retry.RetryableFuncWithData[T],
) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.MaxDelay(cfg.MaxRetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsRetryable),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Str("guid", guid).
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("source request failed, retrying with exponential backoff")
		}),
	)
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
