// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/openintent-io/openintent/ent/intent"
	"github.com/openintent-io/openintent/ent/intentevent"
)

// IntentEvent is the model entity for the IntentEvent schema.
type IntentEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// IntentID holds the value of the "intent_id" field.
	IntentID string `json:"intent_id,omitempty"`
	// One of the events.EventType* constants
	EventType string `json:"event_type,omitempty"`
	// Agent whose request produced the event
	ActorAgentID string `json:"actor_agent_id,omitempty"`
	// Per-intent monotonic sequence, starting at 1
	SequenceNumber int64 `json:"sequence_number,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IntentEventQuery when eager-loading is set.
	Edges        IntentEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IntentEventEdges holds the relations/edges for other nodes in the graph.
type IntentEventEdges struct {
	// Intent holds the value of the intent edge.
	Intent *Intent `json:"intent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// IntentOrErr returns the Intent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e IntentEventEdges) IntentOrErr() (*Intent, error) {
	if e.Intent != nil {
		return e.Intent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: intent.Label}
	}
	return nil, &NotLoadedError{edge: "intent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IntentEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case intentevent.FieldPayload:
			values[i] = new([]byte)
		case intentevent.FieldID, intentevent.FieldSequenceNumber:
			values[i] = new(sql.NullInt64)
		case intentevent.FieldIntentID, intentevent.FieldEventType, intentevent.FieldActorAgentID:
			values[i] = new(sql.NullString)
		case intentevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IntentEvent fields.
func (_m *IntentEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case intentevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case intentevent.FieldIntentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent_id", values[i])
			} else if value.Valid {
				_m.IntentID = value.String
			}
		case intentevent.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case intentevent.FieldActorAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field actor_agent_id", values[i])
			} else if value.Valid {
				_m.ActorAgentID = value.String
			}
		case intentevent.FieldSequenceNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_number", values[i])
			} else if value.Valid {
				_m.SequenceNumber = value.Int64
			}
		case intentevent.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case intentevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the IntentEvent.
// This includes values selected through modifiers, order, etc.
func (_m *IntentEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIntent queries the "intent" edge of the IntentEvent entity.
func (_m *IntentEvent) QueryIntent() *IntentQuery {
	return NewIntentEventClient(_m.config).QueryIntent(_m)
}

// Update returns a builder for updating this IntentEvent.
// Note that you need to call IntentEvent.Unwrap() before calling this method if this IntentEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IntentEvent) Update() *IntentEventUpdateOne {
	return NewIntentEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IntentEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IntentEvent) Unwrap() *IntentEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IntentEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IntentEvent) String() string {
	var builder strings.Builder
	builder.WriteString("IntentEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("intent_id=")
	builder.WriteString(_m.IntentID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("actor_agent_id=")
	builder.WriteString(_m.ActorAgentID)
	builder.WriteString(", ")
	builder.WriteString("sequence_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceNumber))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// IntentEvents is a parsable slice of IntentEvent.
type IntentEvents []*IntentEvent
