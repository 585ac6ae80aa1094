// Code generated by ent, DO NOT EDIT.

package intentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the intentevent type in the database.
	Label = "intent_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldIntentID holds the string denoting the intent_id field in the database.
	FieldIntentID = "intent_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldActorAgentID holds the string denoting the actor_agent_id field in the database.
	FieldActorAgentID = "actor_agent_id"
	// FieldSequenceNumber holds the string denoting the sequence_number field in the database.
	FieldSequenceNumber = "sequence_number"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeIntent holds the string denoting the intent edge name in mutations.
	EdgeIntent = "intent"
	// IntentFieldID holds the string denoting the ID field of the Intent.
	IntentFieldID = "intent_id"
	// Table holds the table name of the intentevent in the database.
	Table = "intent_events"
	// IntentTable is the table that holds the intent relation/edge.
	IntentTable = "intent_events"
	// IntentInverseTable is the table name for the Intent entity.
	// It exists in this package in order to avoid circular dependency with the "intent" package.
	IntentInverseTable = "intents"
	// IntentColumn is the table column denoting the intent relation/edge.
	IntentColumn = "intent_id"
)

// Columns holds all SQL columns for intentevent fields.
var Columns = []string{
	FieldID,
	FieldIntentID,
	FieldEventType,
	FieldActorAgentID,
	FieldSequenceNumber,
	FieldPayload,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the IntentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIntentID orders the results by the intent_id field.
func ByIntentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByActorAgentID orders the results by the actor_agent_id field.
func ByActorAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorAgentID, opts...).ToFunc()
}

// BySequenceNumber orders the results by the sequence_number field.
func BySequenceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceNumber, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByIntentField orders the results by intent field.
func ByIntentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIntentStep(), sql.OrderByField(field, opts...))
	}
}
func newIntentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IntentInverseTable, IntentFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, IntentTable, IntentColumn),
	)
}
