package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		policy  RetryPolicy
		wantErr string
	}{
		{
			name:   "valid exponential",
			policy: RetryPolicy{Strategy: RetryExponential, BaseDelayMs: 1000, MaxDelayMs: 60000, FailureThreshold: 3},
		},
		{
			name:   "valid fixed",
			policy: RetryPolicy{Strategy: RetryFixed, BaseDelayMs: 500, MaxDelayMs: 500, FailureThreshold: 1},
		},
		{
			name:    "unknown strategy",
			policy:  RetryPolicy{Strategy: "quadratic", BaseDelayMs: 1000, MaxDelayMs: 60000, FailureThreshold: 3},
			wantErr: "unknown retry strategy",
		},
		{
			name:    "non-positive base delay",
			policy:  RetryPolicy{Strategy: RetryFixed, BaseDelayMs: 0, MaxDelayMs: 1000, FailureThreshold: 3},
			wantErr: "base_delay_ms",
		},
		{
			name:    "max below base",
			policy:  RetryPolicy{Strategy: RetryFixed, BaseDelayMs: 2000, MaxDelayMs: 1000, FailureThreshold: 3},
			wantErr: "max_delay_ms",
		},
		{
			name:    "zero threshold",
			policy:  RetryPolicy{Strategy: RetryFixed, BaseDelayMs: 1000, MaxDelayMs: 2000, FailureThreshold: 0},
			wantErr: "failure_threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestRetryPolicy_NextDelay(t *testing.T) {
	t.Run("fixed returns base every attempt", func(t *testing.T) {
		p := RetryPolicy{Strategy: RetryFixed, BaseDelayMs: 1500, MaxDelayMs: 60000, FailureThreshold: 5}
		for attempt := 1; attempt <= 4; attempt++ {
			assert.Equal(t, 1500*time.Millisecond, p.NextDelay(attempt))
		}
	})

	t.Run("linear grows with attempt", func(t *testing.T) {
		p := RetryPolicy{Strategy: RetryLinear, BaseDelayMs: 1000, MaxDelayMs: 60000, FailureThreshold: 5}
		assert.Equal(t, 1*time.Second, p.NextDelay(1))
		assert.Equal(t, 2*time.Second, p.NextDelay(2))
		assert.Equal(t, 3*time.Second, p.NextDelay(3))
	})

	t.Run("exponential doubles per attempt", func(t *testing.T) {
		p := RetryPolicy{Strategy: RetryExponential, BaseDelayMs: 1000, MaxDelayMs: 60000, FailureThreshold: 3}
		assert.Equal(t, 1000*time.Millisecond, p.NextDelay(1))
		assert.Equal(t, 2000*time.Millisecond, p.NextDelay(2))
		assert.Equal(t, 4000*time.Millisecond, p.NextDelay(3))
	})

	t.Run("clamps to max delay", func(t *testing.T) {
		p := RetryPolicy{Strategy: RetryExponential, BaseDelayMs: 1000, MaxDelayMs: 5000, FailureThreshold: 10}
		assert.Equal(t, 4*time.Second, p.NextDelay(3))
		assert.Equal(t, 5*time.Second, p.NextDelay(4))
		assert.Equal(t, 5*time.Second, p.NextDelay(20))
	})

	t.Run("overflow-sized attempts clamp instead of wrapping", func(t *testing.T) {
		p := RetryPolicy{Strategy: RetryExponential, BaseDelayMs: 1000, MaxDelayMs: 60000, FailureThreshold: 100}
		assert.Equal(t, 60*time.Second, p.NextDelay(80))
	})

	t.Run("attempt below one behaves as first attempt", func(t *testing.T) {
		p := RetryPolicy{Strategy: RetryLinear, BaseDelayMs: 1000, MaxDelayMs: 60000, FailureThreshold: 5}
		assert.Equal(t, 1*time.Second, p.NextDelay(0))
	})
}

func TestRetryPolicy_DocumentRoundTrip(t *testing.T) {
	p := RetryPolicy{Strategy: RetryExponential, BaseDelayMs: 1000, MaxDelayMs: 60000, FailureThreshold: 3}

	doc, err := p.Document()
	require.NoError(t, err)

	decoded, err := RetryPolicyFromDocument(doc)
	require.NoError(t, err)
	assert.Equal(t, &p, decoded)

	empty, err := RetryPolicyFromDocument(nil)
	require.NoError(t, err)
	assert.Nil(t, empty)
}
