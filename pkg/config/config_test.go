package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.HTTP.Port)
		assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
		assert.Equal(t, 1024, cfg.Stream.QueueSize)
		assert.Equal(t, 30*time.Second, cfg.Broker.DefaultTimeout)
		assert.Zero(t, cfg.Retention.MaxEventAge)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("STREAM_QUEUE_SIZE", "16")
		t.Setenv("LEASE_DEFAULT_TTL", "2m")
		t.Setenv("EVENT_RETENTION_MAX_AGE", "720h")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.HTTP.Port)
		assert.Equal(t, 16, cfg.Stream.QueueSize)
		assert.Equal(t, 2*time.Minute, cfg.Lease.DefaultTTL)
		assert.Equal(t, 720*time.Hour, cfg.Retention.MaxEventAge)
	})

	t.Run("broker timeout is clamped", func(t *testing.T) {
		t.Setenv("BROKER_TIMEOUT", "10m")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, MaxBrokerTimeout, cfg.Broker.DefaultTimeout)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "not-a-port")
		_, err := Load()
		assert.Error(t, err)

		t.Setenv("HTTP_PORT", "8080")
		t.Setenv("STREAM_QUEUE_SIZE", "0")
		_, err = Load()
		assert.Error(t, err)
	})

	t.Run("malformed durations fall back to defaults", func(t *testing.T) {
		t.Setenv("LEASE_SWEEP_INTERVAL", "soon")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, time.Second, cfg.Lease.SweepInterval)
	})
}

func TestClampLeaseTTL(t *testing.T) {
	assert.Equal(t, MinLeaseTTL, ClampLeaseTTL(0))
	assert.Equal(t, MaxLeaseTTL, ClampLeaseTTL(48*time.Hour))
	assert.Equal(t, 5*time.Minute, ClampLeaseTTL(5*time.Minute))
}
