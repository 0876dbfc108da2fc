package tronclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tronrelic/tronrelic-indexer/internal/config"
)

const chainParametersBody = `{"chainParameter":[
	{"key":"getMaintenanceTimeInterval","value":21600000},
	{"key":"getEnergyFee","value":210},
	{"key":"getTotalEnergyLimit","value":50000000000},
	{"key":"getTotalEnergyCurrentLimit","value":90000000000}
]}`

func testConfig(endpoint string) *config.TronConfig {
	return &config.TronConfig{
		Endpoint:      endpoint,
		APIKey:        "test-key",
		Timeout:       time.Second,
		MaxRetryTimes: 3,
		RetryInterval: time.Millisecond,
	}
}

func TestGetChainParameters(t *testing.T) {
	var paramCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get(apiKeyHeader))

		switch r.URL.Path {
		case chainParametersPath:
			if paramCalls.Add(1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(chainParametersBody))
		case accountResourcePath:
			var req accountResourceRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, resourceProbeAddress, req.Address)
			assert.True(t, req.Visible)
			_, _ = w.Write([]byte(`{"TotalEnergyLimit":80000000000,"TotalEnergyWeight":19000000000}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	params, err := NewClient(testConfig(srv.URL)).GetChainParameters(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 2, paramCalls.Load())
	assert.Equal(t, int64(210), params.EnergyFee)
	// the current limit reported by chain parameters wins
	assert.Equal(t, int64(90_000_000_000), params.TotalEnergyLimit)
	assert.Equal(t, int64(19_000_000_000), params.TotalEnergyWeight)
	assert.False(t, params.UpdatedAt.IsZero())
}

func TestGetChainParameters_Errors(t *testing.T) {
	t.Run("client error is not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := NewClient(testConfig(srv.URL)).GetChainParameters(context.Background())
		require.Error(t, err)
		assert.EqualValues(t, 1, calls.Load())
	})

	t.Run("missing energy fee", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == chainParametersPath {
				_, _ = w.Write([]byte(`{"chainParameter":[]}`))
				return
			}
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		_, err := NewClient(testConfig(srv.URL)).GetChainParameters(context.Background())
		require.Error(t, err)
	})
}
