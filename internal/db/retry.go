package db

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"
)

const (
	conflictRetryAttempts = 3
	conflictRetryDelay    = 20 * time.Millisecond
)

// RetryOnConflict runs a load-mutate-save cycle for one keyed document and
// repeats the whole cycle with a fresh read when save reports a write conflict.
// After conflictRetryAttempts the last conflict error is returned to the caller.
func RetryOnConflict[T any](
	ctx context.Context,
	key string,
	load func(ctx context.Context) (T, error),
	mutate func(doc T) error,
	save func(ctx context.Context, doc T) error,
) (T, error) {
	cycle := func() (T, error) {
		var zero T
		doc, err := load(ctx)
		if err != nil {
			return zero, err
		}
		if err := mutate(doc); err != nil {
			return zero, err
		}
		if err := save(ctx, doc); err != nil {
			return zero, err
		}
		return doc, nil
	}

	// only conflicts raised by save are retried, RetryIf stops on anything else
	result, err := retry.DoWithData(cycle,
		retry.Context(ctx),
		retry.Attempts(conflictRetryAttempts),
		retry.Delay(conflictRetryDelay),
		retry.MaxJitter(conflictRetryDelay),
		retry.DelayType(retry.CombineDelay(retry.FixedDelay, retry.RandomDelay)),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsConflictError),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Str("key", key).
				Uint("attempt", n+1).
				Err(err).
				Msg("write conflict, retrying with a fresh read")
		}),
	)
	if err != nil {
		var zero T
		if IsConflictError(err) {
			return zero, fmt.Errorf("write conflict on %s not resolved after %d attempts: %w",
				key, conflictRetryAttempts, err)
		}
		return zero, err
	}
	return result, nil
}
