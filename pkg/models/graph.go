package models

import (
	"encoding/json"
	"fmt"
)

// AggregateStatus is the rolled-up completion summary of a composition
// (portfolio or hierarchy root).
type AggregateStatus struct {
	Total                int            `json:"total"`
	ByStatus             map[string]int `json:"by_status"`
	CompletionPercentage float64        `json:"completion_percentage"`
	// ReachableCompletion is the fraction of intents for which COMPLETED
	// is still possible: FAILED/CANCELLED dependencies poison dependents.
	ReachableCompletion float64 `json:"reachable_completion"`
}

// Equal reports whether two summaries describe the same histogram.
func (a *AggregateStatus) Equal(b *AggregateStatus) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Total != b.Total ||
		a.CompletionPercentage != b.CompletionPercentage ||
		a.ReachableCompletion != b.ReachableCompletion ||
		len(a.ByStatus) != len(b.ByStatus) {
		return false
	}
	for k, v := range a.ByStatus {
		if b.ByStatus[k] != v {
			return false
		}
	}
	return true
}

// Document encodes the summary for JSON-column storage.
func (a *AggregateStatus) Document() (map[string]any, error) {
	raw, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal aggregate status: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal aggregate status: %w", err)
	}
	return doc, nil
}

// AggregateStatusFromDocument decodes a stored summary; nil when empty.
func AggregateStatusFromDocument(doc map[string]any) (*AggregateStatus, error) {
	if len(doc) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("re-marshal aggregate status: %w", err)
	}
	var a AggregateStatus
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode aggregate status: %w", err)
	}
	return &a, nil
}

// GraphNode is one descendant in a get_graph response.
type GraphNode struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Status    string   `json:"status"`
	ParentID  string   `json:"parent_id,omitempty"`
	DependsOn []string `json:"depends_on,omitempty"`
	Depth     int      `json:"depth"`
}

// IntentGraph is the transitive-descendant view of a hierarchy root.
type IntentGraph struct {
	RootID    string          `json:"root_id"`
	Nodes     []GraphNode     `json:"nodes"`
	Aggregate AggregateStatus `json:"aggregate_status"`
}

// GovernancePolicy is informational to the core: thresholds are
// surfaced as events for external orchestrators to act on.
type GovernancePolicy struct {
	RequireAllCompleted    bool    `json:"require_all_completed,omitempty"`
	AllowPartialCompletion bool    `json:"allow_partial_completion,omitempty"`
	MaxCostUSD             float64 `json:"max_cost_usd,omitempty"`
	TimeoutHours           float64 `json:"timeout_hours,omitempty"`
}

// Document encodes the policy for JSON-column storage.
func (g *GovernancePolicy) Document() (map[string]any, error) {
	raw, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("marshal governance policy: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal governance policy: %w", err)
	}
	return doc, nil
}

// GovernancePolicyFromDocument decodes a stored policy; nil when empty.
func GovernancePolicyFromDocument(doc map[string]any) (*GovernancePolicy, error) {
	if len(doc) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("re-marshal governance policy: %w", err)
	}
	var g GovernancePolicy
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, fmt.Errorf("decode governance policy: %w", err)
	}
	return &g, nil
}
