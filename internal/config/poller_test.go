package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerConfig_Validate(t *testing.T) {
	t.Run("all fields set", func(t *testing.T) {
		cfg := &PollerConfig{
			MarketPollingInterval:      10 * time.Minute,
			ChainParamsPollingInterval: 30 * time.Minute,
		}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, 30*time.Minute, cfg.ChainParamsPollingInterval)
	})

	t.Run("chain params interval not set - should use default", func(t *testing.T) {
		cfg := &PollerConfig{MarketPollingInterval: time.Minute}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, defaultChainParamsPollingInterval, cfg.ChainParamsPollingInterval)
	})

	t.Run("market polling interval not set - should error", func(t *testing.T) {
		cfg := &PollerConfig{}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "market-polling-interval must be positive")
	})
}
