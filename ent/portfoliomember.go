// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/ent/portfolio"
	"github.com/openintent-io/openintent/ent/portfoliomember"
)

// PortfolioMember is the model entity for the PortfolioMember schema.
type PortfolioMember struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// PortfolioID holds the value of the "portfolio_id" field.
	PortfolioID string `json:"portfolio_id,omitempty"`
	// IntentID holds the value of the "intent_id" field.
	IntentID string `json:"intent_id,omitempty"`
	// Role holds the value of the "role" field.
	Role portfoliomember.Role `json:"role,omitempty"`
	// Lower value sorts first
	Priority int `json:"priority,omitempty"`
	// AddedAt holds the value of the "added_at" field.
	AddedAt time.Time `json:"added_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PortfolioMemberQuery when eager-loading is set.
	Edges        PortfolioMemberEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PortfolioMemberEdges holds the relations/edges for other nodes in the graph.
type PortfolioMemberEdges struct {
	// Portfolio holds the value of the portfolio edge.
	Portfolio *Portfolio `json:"portfolio,omitempty"`
	// Intent holds the value of the intent edge.
	Intent *Intent `json:"intent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PortfolioOrErr returns the Portfolio value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PortfolioMemberEdges) PortfolioOrErr() (*Portfolio, error) {
	if e.Portfolio != nil {
		return e.Portfolio, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: portfolio.Label}
	}
	return nil, &NotLoadedError{edge: "portfolio"}
}

// IntentOrErr returns the Intent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PortfolioMemberEdges) IntentOrErr() (*Intent, error) {
	if e.Intent != nil {
		return e.Intent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: intent.Label}
	}
	return nil, &NotLoadedError{edge: "intent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PortfolioMember) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case portfoliomember.FieldID, portfoliomember.FieldPriority:
			values[i] = new(sql.NullInt64)
		case portfoliomember.FieldPortfolioID, portfoliomember.FieldIntentID, portfoliomember.FieldRole:
			values[i] = new(sql.NullString)
		case portfoliomember.FieldAddedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PortfolioMember fields.
func (_m *PortfolioMember) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case portfoliomember.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case portfoliomember.FieldPortfolioID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field portfolio_id", values[i])
			} else if value.Valid {
				_m.PortfolioID = value.String
			}
		case portfoliomember.FieldIntentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent_id", values[i])
			} else if value.Valid {
				_m.IntentID = value.String
			}
		case portfoliomember.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = portfoliomember.Role(value.String)
			}
		case portfoliomember.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case portfoliomember.FieldAddedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field added_at", values[i])
			} else if value.Valid {
				_m.AddedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PortfolioMember.
// This includes values selected through modifiers, order, etc.
func (_m *PortfolioMember) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPortfolio queries the "portfolio" edge of the PortfolioMember entity.
func (_m *PortfolioMember) QueryPortfolio() *PortfolioQuery {
	return NewPortfolioMemberClient(_m.config).QueryPortfolio(_m)
}

// QueryIntent queries the "intent" edge of the PortfolioMember entity.
func (_m *PortfolioMember) QueryIntent() *IntentQuery {
	return NewPortfolioMemberClient(_m.config).QueryIntent(_m)
}

// Update returns a builder for updating this PortfolioMember.
// Note that you need to call PortfolioMember.Unwrap() before calling this method if this PortfolioMember
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PortfolioMember) Update() *PortfolioMemberUpdateOne {
	return NewPortfolioMemberClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PortfolioMember entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PortfolioMember) Unwrap() *PortfolioMember {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PortfolioMember is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PortfolioMember) String() string {
	var builder strings.Builder
	builder.WriteString("PortfolioMember(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("portfolio_id=")
	builder.WriteString(_m.PortfolioID)
	builder.WriteString(", ")
	builder.WriteString("intent_id=")
	builder.WriteString(_m.IntentID)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("added_at=")
	builder.WriteString(_m.AddedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PortfolioMembers is a parsable slice of PortfolioMember.
type PortfolioMembers []*PortfolioMember
