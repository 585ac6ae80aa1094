package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// RetryStrategy selects the backoff formula.
type RetryStrategy string

// Supported backoff strategies.
const (
	RetryFixed       RetryStrategy = "fixed"
	RetryLinear      RetryStrategy = "linear"
	RetryExponential RetryStrategy = "exponential"
)

// RetryPolicy is the per-intent retry configuration. It is persisted as
// a JSON document on the intent row.
type RetryPolicy struct {
	Strategy         RetryStrategy `json:"strategy"`
	MaxRetries       int           `json:"max_retries"`
	BaseDelayMs      int64         `json:"base_delay_ms"`
	MaxDelayMs       int64         `json:"max_delay_ms"`
	FailureThreshold int           `json:"failure_threshold"`
}

// Validate checks policy fields for consistency.
func (p *RetryPolicy) Validate() error {
	switch p.Strategy {
	case RetryFixed, RetryLinear, RetryExponential:
	default:
		return fmt.Errorf("unknown retry strategy %q", p.Strategy)
	}
	if p.BaseDelayMs <= 0 {
		return fmt.Errorf("base_delay_ms must be positive, got %d", p.BaseDelayMs)
	}
	if p.MaxDelayMs < p.BaseDelayMs {
		return fmt.Errorf("max_delay_ms (%d) must be >= base_delay_ms (%d)", p.MaxDelayMs, p.BaseDelayMs)
	}
	if p.FailureThreshold < 1 {
		return fmt.Errorf("failure_threshold must be >= 1, got %d", p.FailureThreshold)
	}
	return nil
}

// NextDelay returns the backoff delay before the given attempt retries.
// attempt is 1-based. Results are clamped to MaxDelayMs.
func (p *RetryPolicy) NextDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	var ms int64
	switch p.Strategy {
	case RetryLinear:
		ms = p.BaseDelayMs * int64(attempt)
	case RetryExponential:
		// base * 2^(attempt-1), guarding the shift against overflow.
		shift := attempt - 1
		if shift > 62 {
			shift = 62
		}
		ms = p.BaseDelayMs << shift
		if ms <= 0 {
			ms = p.MaxDelayMs
		}
	default: // fixed
		ms = p.BaseDelayMs
	}
	if ms > p.MaxDelayMs {
		ms = p.MaxDelayMs
	}
	return time.Duration(ms) * time.Millisecond
}

// RetryPolicyFromDocument decodes a policy previously stored via
// Document(). Returns nil when doc is empty.
func RetryPolicyFromDocument(doc map[string]any) (*RetryPolicy, error) {
	if len(doc) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("re-marshal retry policy: %w", err)
	}
	var p RetryPolicy
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode retry policy: %w", err)
	}
	return &p, nil
}

// Document encodes the policy as a generic JSON document for storage.
func (p *RetryPolicy) Document() (map[string]any, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal retry policy: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal retry policy: %w", err)
	}
	return doc, nil
}
