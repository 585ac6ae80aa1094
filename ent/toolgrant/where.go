// Code generated by ent, DO NOT EDIT.

package toolgrant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/openintent-io/openintent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldContainsFold(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldAgentID, v))
}

// ToolName applies equality check predicate on the "tool_name" field. It's identical to ToolNameEQ.
func ToolName(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldToolName, v))
}

// CredentialID applies equality check predicate on the "credential_id" field. It's identical to CredentialIDEQ.
func CredentialID(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldCredentialID, v))
}

// RateLimit applies equality check predicate on the "rate_limit" field. It's identical to RateLimitEQ.
func RateLimit(v int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldRateLimit, v))
}

// RateWindowSeconds applies equality check predicate on the "rate_window_seconds" field. It's identical to RateWindowSecondsEQ.
func RateWindowSeconds(v int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldRateWindowSeconds, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldContainsFold(FieldAgentID, v))
}

// ToolNameEQ applies the EQ predicate on the "tool_name" field.
func ToolNameEQ(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldToolName, v))
}

// ToolNameNEQ applies the NEQ predicate on the "tool_name" field.
func ToolNameNEQ(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNEQ(FieldToolName, v))
}

// ToolNameIn applies the In predicate on the "tool_name" field.
func ToolNameIn(vs ...string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldIn(FieldToolName, vs...))
}

// ToolNameNotIn applies the NotIn predicate on the "tool_name" field.
func ToolNameNotIn(vs ...string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNotIn(FieldToolName, vs...))
}

// ToolNameGT applies the GT predicate on the "tool_name" field.
func ToolNameGT(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGT(FieldToolName, v))
}

// ToolNameGTE applies the GTE predicate on the "tool_name" field.
func ToolNameGTE(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGTE(FieldToolName, v))
}

// ToolNameLT applies the LT predicate on the "tool_name" field.
func ToolNameLT(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLT(FieldToolName, v))
}

// ToolNameLTE applies the LTE predicate on the "tool_name" field.
func ToolNameLTE(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLTE(FieldToolName, v))
}

// ToolNameContains applies the Contains predicate on the "tool_name" field.
func ToolNameContains(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldContains(FieldToolName, v))
}

// ToolNameHasPrefix applies the HasPrefix predicate on the "tool_name" field.
func ToolNameHasPrefix(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldHasPrefix(FieldToolName, v))
}

// ToolNameHasSuffix applies the HasSuffix predicate on the "tool_name" field.
func ToolNameHasSuffix(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldHasSuffix(FieldToolName, v))
}

// ToolNameEqualFold applies the EqualFold predicate on the "tool_name" field.
func ToolNameEqualFold(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEqualFold(FieldToolName, v))
}

// ToolNameContainsFold applies the ContainsFold predicate on the "tool_name" field.
func ToolNameContainsFold(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldContainsFold(FieldToolName, v))
}

// CredentialIDEQ applies the EQ predicate on the "credential_id" field.
func CredentialIDEQ(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldCredentialID, v))
}

// CredentialIDNEQ applies the NEQ predicate on the "credential_id" field.
func CredentialIDNEQ(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNEQ(FieldCredentialID, v))
}

// CredentialIDIn applies the In predicate on the "credential_id" field.
func CredentialIDIn(vs ...string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldIn(FieldCredentialID, vs...))
}

// CredentialIDNotIn applies the NotIn predicate on the "credential_id" field.
func CredentialIDNotIn(vs ...string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNotIn(FieldCredentialID, vs...))
}

// CredentialIDGT applies the GT predicate on the "credential_id" field.
func CredentialIDGT(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGT(FieldCredentialID, v))
}

// CredentialIDGTE applies the GTE predicate on the "credential_id" field.
func CredentialIDGTE(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGTE(FieldCredentialID, v))
}

// CredentialIDLT applies the LT predicate on the "credential_id" field.
func CredentialIDLT(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLT(FieldCredentialID, v))
}

// CredentialIDLTE applies the LTE predicate on the "credential_id" field.
func CredentialIDLTE(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLTE(FieldCredentialID, v))
}

// CredentialIDContains applies the Contains predicate on the "credential_id" field.
func CredentialIDContains(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldContains(FieldCredentialID, v))
}

// CredentialIDHasPrefix applies the HasPrefix predicate on the "credential_id" field.
func CredentialIDHasPrefix(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldHasPrefix(FieldCredentialID, v))
}

// CredentialIDHasSuffix applies the HasSuffix predicate on the "credential_id" field.
func CredentialIDHasSuffix(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldHasSuffix(FieldCredentialID, v))
}

// CredentialIDEqualFold applies the EqualFold predicate on the "credential_id" field.
func CredentialIDEqualFold(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEqualFold(FieldCredentialID, v))
}

// CredentialIDContainsFold applies the ContainsFold predicate on the "credential_id" field.
func CredentialIDContainsFold(v string) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldContainsFold(FieldCredentialID, v))
}

// AllowedHostsIsNil applies the IsNil predicate on the "allowed_hosts" field.
func AllowedHostsIsNil() predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldIsNull(FieldAllowedHosts))
}

// AllowedHostsNotNil applies the NotNil predicate on the "allowed_hosts" field.
func AllowedHostsNotNil() predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNotNull(FieldAllowedHosts))
}

// RateLimitEQ applies the EQ predicate on the "rate_limit" field.
func RateLimitEQ(v int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldRateLimit, v))
}

// RateLimitNEQ applies the NEQ predicate on the "rate_limit" field.
func RateLimitNEQ(v int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNEQ(FieldRateLimit, v))
}

// RateLimitIn applies the In predicate on the "rate_limit" field.
func RateLimitIn(vs ...int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldIn(FieldRateLimit, vs...))
}

// RateLimitNotIn applies the NotIn predicate on the "rate_limit" field.
func RateLimitNotIn(vs ...int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNotIn(FieldRateLimit, vs...))
}

// RateLimitGT applies the GT predicate on the "rate_limit" field.
func RateLimitGT(v int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGT(FieldRateLimit, v))
}

// RateLimitGTE applies the GTE predicate on the "rate_limit" field.
func RateLimitGTE(v int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGTE(FieldRateLimit, v))
}

// RateLimitLT applies the LT predicate on the "rate_limit" field.
func RateLimitLT(v int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLT(FieldRateLimit, v))
}

// RateLimitLTE applies the LTE predicate on the "rate_limit" field.
func RateLimitLTE(v int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLTE(FieldRateLimit, v))
}

// RateWindowSecondsEQ applies the EQ predicate on the "rate_window_seconds" field.
func RateWindowSecondsEQ(v int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldRateWindowSeconds, v))
}

// RateWindowSecondsNEQ applies the NEQ predicate on the "rate_window_seconds" field.
func RateWindowSecondsNEQ(v int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNEQ(FieldRateWindowSeconds, v))
}

// RateWindowSecondsIn applies the In predicate on the "rate_window_seconds" field.
func RateWindowSecondsIn(vs ...int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldIn(FieldRateWindowSeconds, vs...))
}

// RateWindowSecondsNotIn applies the NotIn predicate on the "rate_window_seconds" field.
func RateWindowSecondsNotIn(vs ...int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNotIn(FieldRateWindowSeconds, vs...))
}

// RateWindowSecondsGT applies the GT predicate on the "rate_window_seconds" field.
func RateWindowSecondsGT(v int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGT(FieldRateWindowSeconds, v))
}

// RateWindowSecondsGTE applies the GTE predicate on the "rate_window_seconds" field.
func RateWindowSecondsGTE(v int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGTE(FieldRateWindowSeconds, v))
}

// RateWindowSecondsLT applies the LT predicate on the "rate_window_seconds" field.
func RateWindowSecondsLT(v int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLT(FieldRateWindowSeconds, v))
}

// RateWindowSecondsLTE applies the LTE predicate on the "rate_window_seconds" field.
func RateWindowSecondsLTE(v int) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLTE(FieldRateWindowSeconds, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLTE(FieldExpiresAt, v))
}

// ExpiresAtIsNil applies the IsNil predicate on the "expires_at" field.
func ExpiresAtIsNil() predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldIsNull(FieldExpiresAt))
}

// ExpiresAtNotNil applies the NotNil predicate on the "expires_at" field.
func ExpiresAtNotNil() predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNotNull(FieldExpiresAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ToolGrant {
	return predicate.ToolGrant(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ToolGrant) predicate.ToolGrant {
	return predicate.ToolGrant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ToolGrant) predicate.ToolGrant {
	return predicate.ToolGrant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ToolGrant) predicate.ToolGrant {
	return predicate.ToolGrant(sql.NotPredicates(p))
}
