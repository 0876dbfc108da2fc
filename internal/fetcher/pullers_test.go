package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tronrelic/tronrelic-indexer/internal/clients/client"
	"github.com/tronrelic/tronrelic-indexer/internal/config"
	"github.com/tronrelic/tronrelic-indexer/internal/db/model"
)

func testFetcherConfig() *config.FetcherConfig {
	return &config.FetcherConfig{
		Timeout:           time.Second,
		MaxRetryTimes:     3,
		RetryInterval:     time.Millisecond,
		MaxRetryDelay:     5 * time.Millisecond,
		RequestsPerSecond: 1000,
	}
}

func marketAt(url string, kind config.MarketKind) config.MarketConfig {
	market := testMarket()
	market.URL = url
	market.Kind = kind
	return market
}

func serveJSON(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOrderBookPuller(t *testing.T) {
	srv := serveJSON(t, `{
		"energy": {"total": 2000000, "available": 500000},
		"orders": [
			{"energy": 65000, "payment": "5850000", "payout": 5265000, "durationSec": 3600},
			{"energy": 130000, "payment": 9000000, "durationSec": 86400}
		],
		"stats": {"successRate": 0.95}
	}`)

	raw, err := NewOrderBookPuller(marketAt(srv.URL, config.MarketKindOrderBook), testFetcherConfig()).
		Pull(context.Background(), testChain())
	require.NoError(t, err)

	assert.Equal(t, int64(2_000_000), raw.TotalEnergy)
	assert.Equal(t, int64(500_000), raw.AvailableEnergy)
	require.Len(t, raw.Orders, 2)
	assert.Equal(t, int64(5_850_000), raw.Orders[0].PaymentSun.IntPart())
	assert.Equal(t, int64(5_265_000), raw.Orders[0].PayoutSun.IntPart())
	assert.Equal(t, "60", raw.Orders[0].Minutes.String())
	assert.Equal(t, "1440", raw.Orders[1].Minutes.String())
	assert.True(t, raw.Orders[1].PayoutSun.IsZero())
	assert.Equal(t, 0.95, raw.Stats["successRate"])
}

func TestFeeSchedulePuller(t *testing.T) {
	srv := serveJSON(t, `{
		"totalEnergy": 5000000,
		"availableEnergy": 4000000,
		"minOrder": 32000,
		"fees": [
			{"minutes": 60, "sun": "90", "minEnergy": 32000},
			{"minutes": 60, "sun": 72, "minEnergy": 100000},
			{"minutes": 1440, "sun": "60.5"}
		]
	}`)

	raw, err := NewFeeSchedulePuller(marketAt(srv.URL, config.MarketKindFeeSchedule), testFetcherConfig()).
		Pull(context.Background(), testChain())
	require.NoError(t, err)

	require.NotNil(t, raw.MinOrder)
	assert.Equal(t, int64(32_000), *raw.MinOrder)
	assert.Nil(t, raw.MaxOrder)
	require.Len(t, raw.Fees, 3)
	assert.Equal(t, int64(100_000), raw.Fees[1].MinEnergy)
	assert.Equal(t, 72.0, raw.Fees[1].Sun.InexactFloat64())
	assert.Equal(t, 60.5, raw.Fees[2].Sun.InexactFloat64())
}

func TestSpotPuller(t *testing.T) {
	t.Run("hourly", func(t *testing.T) {
		srv := serveJSON(t, `{"price": "95", "totalEnergy": 100, "availableEnergy": 40}`)
		raw, err := NewSpotPuller(marketAt(srv.URL, config.MarketKindSpot), testFetcherConfig()).
			Pull(context.Background(), nil)
		require.NoError(t, err)
		require.NotNil(t, raw.SpotPriceSun)
		assert.Equal(t, "95", raw.SpotPriceSun.String())
	})

	t.Run("daily", func(t *testing.T) {
		srv := serveJSON(t, `{"price": 2400, "unit": "sun/energy/day"}`)
		raw, err := NewSpotPuller(marketAt(srv.URL, config.MarketKindSpot), testFetcherConfig()).
			Pull(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "100", raw.SpotPriceSun.String())
	})

	t.Run("unknown unit", func(t *testing.T) {
		srv := serveJSON(t, `{"price": 1, "unit": "trx/week"}`)
		_, err := NewSpotPuller(marketAt(srv.URL, config.MarketKindSpot), testFetcherConfig()).
			Pull(context.Background(), nil)
		require.Error(t, err)
	})

	t.Run("no price", func(t *testing.T) {
		srv := serveJSON(t, `{}`)
		raw, err := NewSpotPuller(marketAt(srv.URL, config.MarketKindSpot), testFetcherConfig()).
			Pull(context.Background(), nil)
		require.NoError(t, err)
		assert.True(t, raw.IsEmpty())
	})
}

func TestRequestWithRetry(t *testing.T) {
	statusServer := func(t *testing.T, statuses ...int) (*httptest.Server, *atomic.Int32) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			n := int(calls.Add(1)) - 1
			if n < len(statuses) {
				w.WriteHeader(statuses[n])
				return
			}
			_, _ = w.Write([]byte(`{"price": 50}`))
		}))
		t.Cleanup(srv.Close)
		return srv, &calls
	}

	pull := func(url string) (*RawMarket, error) {
		return NewSpotPuller(marketAt(url, config.MarketKindSpot), testFetcherConfig()).
			Pull(context.Background(), nil)
	}

	t.Run("server errors are retried", func(t *testing.T) {
		srv, calls := statusServer(t, http.StatusBadGateway, http.StatusServiceUnavailable)
		raw, err := pull(srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "50", raw.SpotPriceSun.String())
		assert.EqualValues(t, 3, calls.Load())
	})

	t.Run("rate limiting is retried", func(t *testing.T) {
		srv, calls := statusServer(t, http.StatusTooManyRequests)
		_, err := pull(srv.URL)
		require.NoError(t, err)
		assert.EqualValues(t, 2, calls.Load())
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		srv, calls := statusServer(t, http.StatusNotFound)
		_, err := pull(srv.URL)
		var httpErr *client.HttpError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("attempts are bounded", func(t *testing.T) {
		srv, calls := statusServer(t, 500, 500, 500, 500)
		_, err := pull(srv.URL)
		require.Error(t, err)
		assert.EqualValues(t, 3, calls.Load())
	})
}

func TestFetch_UntrustedCertificate(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"price": 50}`))
	}))
	defer srv.Close()

	f, err := New(marketAt(srv.URL, config.MarketKindSpot), testFetcherConfig())
	require.NoError(t, err)

	snapshot, err := f.Fetch(context.Background(), testChain())
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.False(t, snapshot.IsActive)
	assert.Equal(t, model.InactivePriority, snapshot.Priority)
	// the handshake fails, the handler is never reached
	assert.Zero(t, calls.Load())
}
