package fetcher

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/tronrelic/tronrelic-indexer/internal/observability/metrics"
)

// Limiter throttles outbound requests of a single source
type Limiter struct {
	limiter *rate.Limiter
	guid    string
}

func NewLimiter(rps float64, burst int, guid string) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		guid:    guid,
	}
}

// Wait blocks until one request is allowed or ctx is done
func (l *Limiter) Wait(ctx context.Context) error {
	r := l.limiter.Reserve()
	if !r.OK() {
		return fmt.Errorf("rate limiter for %s cannot reserve a token", l.guid)
	}
	delay := r.Delay()
	if delay <= 0 {
		return nil
	}

	metrics.RecordRateLimitWait(l.guid)
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}
