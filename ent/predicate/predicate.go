// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Attachment is the predicate function for attachment builders.
type Attachment func(*sql.Selector)

// CostEntry is the predicate function for costentry builders.
type CostEntry func(*sql.Selector)

// Credential is the predicate function for credential builders.
type Credential func(*sql.Selector)

// FailureRecord is the predicate function for failurerecord builders.
type FailureRecord func(*sql.Selector)

// Intent is the predicate function for intent builders.
type Intent func(*sql.Selector)

// IntentEvent is the predicate function for intentevent builders.
type IntentEvent func(*sql.Selector)

// Lease is the predicate function for lease builders.
type Lease func(*sql.Selector)

// Portfolio is the predicate function for portfolio builders.
type Portfolio func(*sql.Selector)

// PortfolioMember is the predicate function for portfoliomember builders.
type PortfolioMember func(*sql.Selector)

// ToolDefinition is the predicate function for tooldefinition builders.
type ToolDefinition func(*sql.Selector)

// ToolGrant is the predicate function for toolgrant builders.
type ToolGrant func(*sql.Selector)
