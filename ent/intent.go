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
)

// Intent is the model entity for the Intent schema.
type Intent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Agent that created the intent
	CreatorAgentID string `json:"creator_agent_id,omitempty"`
	// Status holds the value of the "status" field.
	Status intent.Status `json:"status,omitempty"`
	// Free-form working memory; shallow-merged by state patches
	State map[string]interface{} `json:"state,omitempty"`
	// Bumped on every mutation; drives optimistic concurrency
	Version int64 `json:"version,omitempty"`
	// Human-readable predicates (informational)
	Constraints []string `json:"constraints,omitempty"`
	// Hierarchy parent; nil for roots
	ParentID *string `json:"parent_id,omitempty"`
	// Intent IDs that must be COMPLETED before this one is ready
	DependsOn []string `json:"depends_on,omitempty"`
	// Serialized models.RetryPolicy; nil means no policy set
	RetryPolicy map[string]interface{} `json:"retry_policy,omitempty"`
	// Failure attempts recorded so far
	AttemptCount int `json:"attempt_count,omitempty"`
	// Last computed roll-up summary (roots only)
	Aggregate map[string]interface{} `json:"aggregate,omitempty"`
	// Client-supplied create dedup key
	IdempotencyKey *string `json:"idempotency_key,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the IntentQuery when eager-loading is set.
	Edges        IntentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// IntentEdges holds the relations/edges for other nodes in the graph.
type IntentEdges struct {
	// Events holds the value of the events edge.
	Events []*IntentEvent `json:"events,omitempty"`
	// Leases holds the value of the leases edge.
	Leases []*Lease `json:"leases,omitempty"`
	// Costs holds the value of the costs edge.
	Costs []*CostEntry `json:"costs,omitempty"`
	// Attachments holds the value of the attachments edge.
	Attachments []*Attachment `json:"attachments,omitempty"`
	// Failures holds the value of the failures edge.
	Failures []*FailureRecord `json:"failures,omitempty"`
	// Memberships holds the value of the memberships edge.
	Memberships []*PortfolioMember `json:"memberships,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e IntentEdges) EventsOrErr() ([]*IntentEvent, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// LeasesOrErr returns the Leases value or an error if the edge
// was not loaded in eager-loading.
func (e IntentEdges) LeasesOrErr() ([]*Lease, error) {
	if e.loadedTypes[1] {
		return e.Leases, nil
	}
	return nil, &NotLoadedError{edge: "leases"}
}

// CostsOrErr returns the Costs value or an error if the edge
// was not loaded in eager-loading.
func (e IntentEdges) CostsOrErr() ([]*CostEntry, error) {
	if e.loadedTypes[2] {
		return e.Costs, nil
	}
	return nil, &NotLoadedError{edge: "costs"}
}

// AttachmentsOrErr returns the Attachments value or an error if the edge
// was not loaded in eager-loading.
func (e IntentEdges) AttachmentsOrErr() ([]*Attachment, error) {
	if e.loadedTypes[3] {
		return e.Attachments, nil
	}
	return nil, &NotLoadedError{edge: "attachments"}
}

// FailuresOrErr returns the Failures value or an error if the edge
// was not loaded in eager-loading.
func (e IntentEdges) FailuresOrErr() ([]*FailureRecord, error) {
	if e.loadedTypes[4] {
		return e.Failures, nil
	}
	return nil, &NotLoadedError{edge: "failures"}
}

// MembershipsOrErr returns the Memberships value or an error if the edge
// was not loaded in eager-loading.
func (e IntentEdges) MembershipsOrErr() ([]*PortfolioMember, error) {
	if e.loadedTypes[5] {
		return e.Memberships, nil
	}
	return nil, &NotLoadedError{edge: "memberships"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Intent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case intent.FieldState, intent.FieldConstraints, intent.FieldDependsOn, intent.FieldRetryPolicy, intent.FieldAggregate:
			values[i] = new([]byte)
		case intent.FieldVersion, intent.FieldAttemptCount:
			values[i] = new(sql.NullInt64)
		case intent.FieldID, intent.FieldTitle, intent.FieldDescription, intent.FieldCreatorAgentID, intent.FieldStatus, intent.FieldParentID, intent.FieldIdempotencyKey:
			values[i] = new(sql.NullString)
		case intent.FieldCreatedAt, intent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Intent fields.
func (_m *Intent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case intent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case intent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case intent.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case intent.FieldCreatorAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field creator_agent_id", values[i])
			} else if value.Valid {
				_m.CreatorAgentID = value.String
			}
		case intent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = intent.Status(value.String)
			}
		case intent.FieldState:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.State); err != nil {
					return fmt.Errorf("unmarshal field state: %w", err)
				}
			}
		case intent.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case intent.FieldConstraints:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field constraints", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Constraints); err != nil {
					return fmt.Errorf("unmarshal field constraints: %w", err)
				}
			}
		case intent.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(string)
				*_m.ParentID = value.String
			}
		case intent.FieldDependsOn:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field depends_on", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DependsOn); err != nil {
					return fmt.Errorf("unmarshal field depends_on: %w", err)
				}
			}
		case intent.FieldRetryPolicy:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field retry_policy", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RetryPolicy); err != nil {
					return fmt.Errorf("unmarshal field retry_policy: %w", err)
				}
			}
		case intent.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case intent.FieldAggregate:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field aggregate", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Aggregate); err != nil {
					return fmt.Errorf("unmarshal field aggregate: %w", err)
				}
			}
		case intent.FieldIdempotencyKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field idempotency_key", values[i])
			} else if value.Valid {
				_m.IdempotencyKey = new(string)
				*_m.IdempotencyKey = value.String
			}
		case intent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case intent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Intent.
// This includes values selected through modifiers, order, etc.
func (_m *Intent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the Intent entity.
func (_m *Intent) QueryEvents() *IntentEventQuery {
	return NewIntentClient(_m.config).QueryEvents(_m)
}

// QueryLeases queries the "leases" edge of the Intent entity.
func (_m *Intent) QueryLeases() *LeaseQuery {
	return NewIntentClient(_m.config).QueryLeases(_m)
}

// QueryCosts queries the "costs" edge of the Intent entity.
func (_m *Intent) QueryCosts() *CostEntryQuery {
	return NewIntentClient(_m.config).QueryCosts(_m)
}

// QueryAttachments queries the "attachments" edge of the Intent entity.
func (_m *Intent) QueryAttachments() *AttachmentQuery {
	return NewIntentClient(_m.config).QueryAttachments(_m)
}

// QueryFailures queries the "failures" edge of the Intent entity.
func (_m *Intent) QueryFailures() *FailureRecordQuery {
	return NewIntentClient(_m.config).QueryFailures(_m)
}

// QueryMemberships queries the "memberships" edge of the Intent entity.
func (_m *Intent) QueryMemberships() *PortfolioMemberQuery {
	return NewIntentClient(_m.config).QueryMemberships(_m)
}

// Update returns a builder for updating this Intent.
// Note that you need to call Intent.Unwrap() before calling this method if this Intent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Intent) Update() *IntentUpdateOne {
	return NewIntentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Intent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Intent) Unwrap() *Intent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Intent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Intent) String() string {
	var builder strings.Builder
	builder.WriteString("Intent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("creator_agent_id=")
	builder.WriteString(_m.CreatorAgentID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("constraints=")
	builder.WriteString(fmt.Sprintf("%v", _m.Constraints))
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("depends_on=")
	builder.WriteString(fmt.Sprintf("%v", _m.DependsOn))
	builder.WriteString(", ")
	builder.WriteString("retry_policy=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryPolicy))
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	builder.WriteString("aggregate=")
	builder.WriteString(fmt.Sprintf("%v", _m.Aggregate))
	builder.WriteString(", ")
	if v := _m.IdempotencyKey; v != nil {
		builder.WriteString("idempotency_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Intents is a parsable slice of Intent.
type Intents []*Intent
