// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/openintent-io/openintent/ent/costentry"
	"github.com/openintent-io/openintent/ent/intent"
)

// CostEntry is the model entity for the CostEntry schema.
type CostEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// IntentID holds the value of the "intent_id" field.
	IntentID string `json:"intent_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID string `json:"agent_id,omitempty"`
	// CostType holds the value of the "cost_type" field.
	CostType costentry.CostType `json:"cost_type,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// Currency holds the value of the "currency" field.
	Currency string `json:"currency,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CostEntryQuery when eager-loading is set.
	Edges        CostEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CostEntryEdges holds the relations/edges for other nodes in the graph.
type CostEntryEdges struct {
	// Intent holds the value of the intent edge.
	Intent *Intent `json:"intent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// IntentOrErr returns the Intent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CostEntryEdges) IntentOrErr() (*Intent, error) {
	if e.Intent != nil {
		return e.Intent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: intent.Label}
	}
	return nil, &NotLoadedError{edge: "intent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CostEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case costentry.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case costentry.FieldID:
			values[i] = new(sql.NullInt64)
		case costentry.FieldIntentID, costentry.FieldAgentID, costentry.FieldCostType, costentry.FieldCurrency, costentry.FieldDescription:
			values[i] = new(sql.NullString)
		case costentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CostEntry fields.
func (_m *CostEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case costentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case costentry.FieldIntentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent_id", values[i])
			} else if value.Valid {
				_m.IntentID = value.String
			}
		case costentry.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case costentry.FieldCostType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cost_type", values[i])
			} else if value.Valid {
				_m.CostType = costentry.CostType(value.String)
			}
		case costentry.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case costentry.FieldCurrency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency", values[i])
			} else if value.Valid {
				_m.Currency = value.String
			}
		case costentry.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case costentry.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CostEntry.
// This includes values selected through modifiers, order, etc.
func (_m *CostEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIntent queries the "intent" edge of the CostEntry entity.
func (_m *CostEntry) QueryIntent() *IntentQuery {
	return NewCostEntryClient(_m.config).QueryIntent(_m)
}

// Update returns a builder for updating this CostEntry.
// Note that you need to call CostEntry.Unwrap() before calling this method if this CostEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CostEntry) Update() *CostEntryUpdateOne {
	return NewCostEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CostEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CostEntry) Unwrap() *CostEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CostEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CostEntry) String() string {
	var builder strings.Builder
	builder.WriteString("CostEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("intent_id=")
	builder.WriteString(_m.IntentID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("cost_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostType))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("currency=")
	builder.WriteString(_m.Currency)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CostEntries is a parsable slice of CostEntry.
type CostEntries []*CostEntry
