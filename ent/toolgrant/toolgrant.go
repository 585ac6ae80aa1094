// Code generated by ent, DO NOT EDIT.

package toolgrant

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the toolgrant type in the database.
	Label = "tool_grant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "grant_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldToolName holds the string denoting the tool_name field in the database.
	FieldToolName = "tool_name"
	// FieldCredentialID holds the string denoting the credential_id field in the database.
	FieldCredentialID = "credential_id"
	// FieldAllowedHosts holds the string denoting the allowed_hosts field in the database.
	FieldAllowedHosts = "allowed_hosts"
	// FieldRateLimit holds the string denoting the rate_limit field in the database.
	FieldRateLimit = "rate_limit"
	// FieldRateWindowSeconds holds the string denoting the rate_window_seconds field in the database.
	FieldRateWindowSeconds = "rate_window_seconds"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the toolgrant in the database.
	Table = "tool_grants"
)

// Columns holds all SQL columns for toolgrant fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldToolName,
	FieldCredentialID,
	FieldAllowedHosts,
	FieldRateLimit,
	FieldRateWindowSeconds,
	FieldExpiresAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRateLimit holds the default value on creation for the "rate_limit" field.
	DefaultRateLimit int
	// DefaultRateWindowSeconds holds the default value on creation for the "rate_window_seconds" field.
	DefaultRateWindowSeconds int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ToolGrant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByToolName orders the results by the tool_name field.
func ByToolName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolName, opts...).ToFunc()
}

// ByCredentialID orders the results by the credential_id field.
func ByCredentialID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCredentialID, opts...).ToFunc()
}

// ByRateLimit orders the results by the rate_limit field.
func ByRateLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateLimit, opts...).ToFunc()
}

// ByRateWindowSeconds orders the results by the rate_window_seconds field.
func ByRateWindowSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateWindowSeconds, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
