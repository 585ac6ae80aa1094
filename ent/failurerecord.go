// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/openintent-io/openintent/ent/failurerecord"
	"github.com/openintent-io/openintent/ent/intent"
)

// FailureRecord is the model entity for the FailureRecord schema.
type FailureRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// IntentID holds the value of the "intent_id" field.
	IntentID string `json:"intent_id,omitempty"`
	// ErrorType holds the value of the "error_type" field.
	ErrorType string `json:"error_type,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// Recoverable holds the value of the "recoverable" field.
	Recoverable bool `json:"recoverable,omitempty"`
	// Context holds the value of the "context" field.
	Context map[string]interface{} `json:"context,omitempty"`
	// 1-based attempt counter at the time of recording
	AttemptNumber int `json:"attempt_number,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FailureRecordQuery when eager-loading is set.
	Edges        FailureRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FailureRecordEdges holds the relations/edges for other nodes in the graph.
type FailureRecordEdges struct {
	// Intent holds the value of the intent edge.
	Intent *Intent `json:"intent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// IntentOrErr returns the Intent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FailureRecordEdges) IntentOrErr() (*Intent, error) {
	if e.Intent != nil {
		return e.Intent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: intent.Label}
	}
	return nil, &NotLoadedError{edge: "intent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FailureRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case failurerecord.FieldContext:
			values[i] = new([]byte)
		case failurerecord.FieldRecoverable:
			values[i] = new(sql.NullBool)
		case failurerecord.FieldID, failurerecord.FieldAttemptNumber:
			values[i] = new(sql.NullInt64)
		case failurerecord.FieldIntentID, failurerecord.FieldErrorType, failurerecord.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case failurerecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FailureRecord fields.
func (_m *FailureRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case failurerecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case failurerecord.FieldIntentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent_id", values[i])
			} else if value.Valid {
				_m.IntentID = value.String
			}
		case failurerecord.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = value.String
			}
		case failurerecord.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case failurerecord.FieldRecoverable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field recoverable", values[i])
			} else if value.Valid {
				_m.Recoverable = value.Bool
			}
		case failurerecord.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		case failurerecord.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case failurerecord.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FailureRecord.
// This includes values selected through modifiers, order, etc.
func (_m *FailureRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryIntent queries the "intent" edge of the FailureRecord entity.
func (_m *FailureRecord) QueryIntent() *IntentQuery {
	return NewFailureRecordClient(_m.config).QueryIntent(_m)
}

// Update returns a builder for updating this FailureRecord.
// Note that you need to call FailureRecord.Unwrap() before calling this method if this FailureRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FailureRecord) Update() *FailureRecordUpdateOne {
	return NewFailureRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FailureRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FailureRecord) Unwrap() *FailureRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FailureRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FailureRecord) String() string {
	var builder strings.Builder
	builder.WriteString("FailureRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("intent_id=")
	builder.WriteString(_m.IntentID)
	builder.WriteString(", ")
	builder.WriteString("error_type=")
	builder.WriteString(_m.ErrorType)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("recoverable=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recoverable))
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FailureRecords is a parsable slice of FailureRecord.
type FailureRecords []*FailureRecord
