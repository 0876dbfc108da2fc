package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPollerDuration(t *testing.T) {
	const typ = "test_poller"
	failure := errors.New("source down")

	calls := 0
	results := []error{nil, failure, fmt.Errorf("shutdown: %w", context.Canceled)}
	poll := RecordPollerDuration(typ, func(context.Context) error {
		err := results[calls]
		calls++
		return err
	})

	require.NoError(t, poll(t.Context()))
	assert.ErrorIs(t, poll(t.Context()), failure)
	assert.ErrorIs(t, poll(t.Context()), context.Canceled)

	for _, status := range []Outcome{Success, Error, Cancelled} {
		histogram, ok := pollerDurationHistogram.WithLabelValues(typ, status.String()).(prometheus.Histogram)
		require.True(t, ok)

		m := &dto.Metric{}
		require.NoError(t, histogram.Write(m))
		assert.EqualValues(t, 1, m.GetHistogram().GetSampleCount(), status.String())
	}
}
