// Code generated by ent, DO NOT EDIT.

package failurerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the failurerecord type in the database.
	Label = "failure_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldIntentID holds the string denoting the intent_id field in the database.
	FieldIntentID = "intent_id"
	// FieldErrorType holds the string denoting the error_type field in the database.
	FieldErrorType = "error_type"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRecoverable holds the string denoting the recoverable field in the database.
	FieldRecoverable = "recoverable"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeIntent holds the string denoting the intent edge name in mutations.
	EdgeIntent = "intent"
	// IntentFieldID holds the string denoting the ID field of the Intent.
	IntentFieldID = "intent_id"
	// Table holds the table name of the failurerecord in the database.
	Table = "failure_records"
	// IntentTable is the table that holds the intent relation/edge.
	IntentTable = "failure_records"
	// IntentInverseTable is the table name for the Intent entity.
	// It exists in this package in order to avoid circular dependency with the "intent" package.
	IntentInverseTable = "intents"
	// IntentColumn is the table column denoting the intent relation/edge.
	IntentColumn = "intent_id"
)

// Columns holds all SQL columns for failurerecord fields.
var Columns = []string{
	FieldID,
	FieldIntentID,
	FieldErrorType,
	FieldErrorMessage,
	FieldRecoverable,
	FieldContext,
	FieldAttemptNumber,
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

// OrderOption defines the ordering options for the FailureRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIntentID orders the results by the intent_id field.
func ByIntentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentID, opts...).ToFunc()
}

// ByErrorType orders the results by the error_type field.
func ByErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorType, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRecoverable orders the results by the recoverable field.
func ByRecoverable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecoverable, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
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
