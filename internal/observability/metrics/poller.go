package metrics

import (
	"context"
	"errors"
	"time"
)

// PollFunc is a single poller iteration
type PollFunc = func(ctx context.Context) error

// RecordPollerDuration times every iteration of f under typ. Iterations cut
// short by shutdown are recorded as cancelled rather than as errors.
func RecordPollerDuration(typ string, f PollFunc) PollFunc {
	return func(ctx context.Context) error {
		startTime := time.Now()
		err := f(ctx)

		status := Success
		switch {
		case err == nil:
		case errors.Is(err, context.Canceled):
			status = Cancelled
		default:
			status = Error
		}
		pollerDurationHistogram.WithLabelValues(typ, status.String()).Observe(time.Since(startTime).Seconds())

		return err
	}
}
