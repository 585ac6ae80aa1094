// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// MinLeaseTTL and MaxLeaseTTL bound requested lease durations.
	MinLeaseTTL = 1 * time.Second
	MaxLeaseTTL = 24 * time.Hour

	// MinBrokerTimeout and MaxBrokerTimeout bound outbound tool calls.
	MinBrokerTimeout = 1 * time.Second
	MaxBrokerTimeout = 120 * time.Second

	// MaxAttachmentSize caps stored attachment blobs.
	MaxAttachmentSize = 10 << 20

	// MaxToolResponseSize caps bodies read from tool endpoints.
	MaxToolResponseSize = 1 << 20
)

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// StreamConfig holds event stream settings.
type StreamConfig struct {
	// QueueSize is the per-subscriber bounded buffer length.
	QueueSize int
	// WriteTimeout bounds a single frame write before backpressure kicks in.
	WriteTimeout time.Duration
}

// LeaseConfig holds lease manager settings.
type LeaseConfig struct {
	SweepInterval time.Duration
	DefaultTTL    time.Duration
}

// BrokerConfig holds tool broker settings.
type BrokerConfig struct {
	DefaultTimeout time.Duration
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	// BootstrapAdminKey, when set, is seeded as an admin API key at
	// startup so a fresh deployment can mint its first credentials.
	BootstrapAdminKey string
}

// GovernanceConfig holds portfolio governance check settings.
type GovernanceConfig struct {
	CheckInterval time.Duration
}

// RetentionConfig holds event log retention settings.
type RetentionConfig struct {
	// MaxEventAge prunes events for terminal intents older than this.
	// Zero disables pruning.
	MaxEventAge   time.Duration
	SweepInterval time.Duration
}

// Config is the root service configuration.
type Config struct {
	HTTP       HTTPConfig
	Stream     StreamConfig
	Lease      LeaseConfig
	Broker     BrokerConfig
	Auth       AuthConfig
	Governance GovernanceConfig
	Retention  RetentionConfig
}

// Load reads configuration from environment variables with defaults.
func Load() (*Config, error) {
	port, err := intEnv("HTTP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	queueSize, err := intEnv("STREAM_QUEUE_SIZE", 1024)
	if err != nil {
		return nil, err
	}
	if queueSize < 1 {
		return nil, fmt.Errorf("STREAM_QUEUE_SIZE must be positive, got %d", queueSize)
	}

	cfg := &Config{
		HTTP: HTTPConfig{
			Host:            envOrDefault("HTTP_HOST", "0.0.0.0"),
			Port:            port,
			ReadTimeout:     durationEnv("HTTP_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    durationEnv("HTTP_WRITE_TIMEOUT", 0),
			ShutdownTimeout: durationEnv("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Stream: StreamConfig{
			QueueSize:    queueSize,
			WriteTimeout: durationEnv("STREAM_WRITE_TIMEOUT", 5*time.Second),
		},
		Lease: LeaseConfig{
			SweepInterval: durationEnv("LEASE_SWEEP_INTERVAL", 1*time.Second),
			DefaultTTL:    durationEnv("LEASE_DEFAULT_TTL", 60*time.Second),
		},
		Broker: BrokerConfig{
			DefaultTimeout: clampDuration(
				durationEnv("BROKER_TIMEOUT", 30*time.Second),
				MinBrokerTimeout, MaxBrokerTimeout),
		},
		Auth: AuthConfig{
			BootstrapAdminKey: os.Getenv("BOOTSTRAP_ADMIN_KEY"),
		},
		Governance: GovernanceConfig{
			CheckInterval: durationEnv("GOVERNANCE_CHECK_INTERVAL", 30*time.Second),
		},
		Retention: RetentionConfig{
			MaxEventAge:   durationEnv("EVENT_RETENTION_MAX_AGE", 0),
			SweepInterval: durationEnv("EVENT_RETENTION_SWEEP_INTERVAL", 1*time.Hour),
		},
	}
	return cfg, nil
}

// ClampLeaseTTL bounds a requested TTL to the allowed range.
func ClampLeaseTTL(ttl time.Duration) time.Duration {
	return clampDuration(ttl, MinLeaseTTL, MaxLeaseTTL)
}

func clampDuration(d, min, max time.Duration) time.Duration {
	if d < min {
		return min
	}
	if d > max {
		return max
	}
	return d
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intEnv(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
