// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/openintent-io/openintent/ent/toolgrant"
)

// ToolGrant is the model entity for the ToolGrant schema.
type ToolGrant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// ToolName holds the value of the "tool_name" field.
	ToolName string `json:"tool_name,omitempty"`
	// Credential resolved at execution time, never earlier
	CredentialID string `json:"credential_id,omitempty"`
	// Outbound host allowlist; subdomains of entries match
	AllowedHosts []string `json:"allowed_hosts,omitempty"`
	// Max invocations per window; 0 disables the limit
	RateLimit int `json:"rate_limit,omitempty"`
	// RateWindowSeconds holds the value of the "rate_window_seconds" field.
	RateWindowSeconds int `json:"rate_window_seconds,omitempty"`
	// ExpiresAt holds the value of the "expires_at" field.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ToolGrant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case toolgrant.FieldAllowedHosts:
			values[i] = new([]byte)
		case toolgrant.FieldRateLimit, toolgrant.FieldRateWindowSeconds:
			values[i] = new(sql.NullInt64)
		case toolgrant.FieldID, toolgrant.FieldAgentID, toolgrant.FieldToolName, toolgrant.FieldCredentialID:
			values[i] = new(sql.NullString)
		case toolgrant.FieldExpiresAt, toolgrant.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ToolGrant fields.
func (_m *ToolGrant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case toolgrant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case toolgrant.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case toolgrant.FieldToolName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_name", values[i])
			} else if value.Valid {
				_m.ToolName = value.String
			}
		case toolgrant.FieldCredentialID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field credential_id", values[i])
			} else if value.Valid {
				_m.CredentialID = value.String
			}
		case toolgrant.FieldAllowedHosts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_hosts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AllowedHosts); err != nil {
					return fmt.Errorf("unmarshal field allowed_hosts: %w", err)
				}
			}
		case toolgrant.FieldRateLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_limit", values[i])
			} else if value.Valid {
				_m.RateLimit = int(value.Int64)
			}
		case toolgrant.FieldRateWindowSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_window_seconds", values[i])
			} else if value.Valid {
				_m.RateWindowSeconds = int(value.Int64)
			}
		case toolgrant.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = new(time.Time)
				*_m.ExpiresAt = value.Time
			}
		case toolgrant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ToolGrant.
// This includes values selected through modifiers, order, etc.
func (_m *ToolGrant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ToolGrant.
// Note that you need to call ToolGrant.Unwrap() before calling this method if this ToolGrant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ToolGrant) Update() *ToolGrantUpdateOne {
	return NewToolGrantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ToolGrant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ToolGrant) Unwrap() *ToolGrant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ToolGrant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ToolGrant) String() string {
	var builder strings.Builder
	builder.WriteString("ToolGrant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("tool_name=")
	builder.WriteString(_m.ToolName)
	builder.WriteString(", ")
	builder.WriteString("credential_id=")
	builder.WriteString(_m.CredentialID)
	builder.WriteString(", ")
	builder.WriteString("allowed_hosts=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowedHosts))
	builder.WriteString(", ")
	builder.WriteString("rate_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.RateLimit))
	builder.WriteString(", ")
	builder.WriteString("rate_window_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.RateWindowSeconds))
	builder.WriteString(", ")
	if v := _m.ExpiresAt; v != nil {
		builder.WriteString("expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ToolGrants is a parsable slice of ToolGrant.
type ToolGrants []*ToolGrant
