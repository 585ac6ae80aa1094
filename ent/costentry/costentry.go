// Code generated by ent, DO NOT EDIT.

package costentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the costentry type in the database.
	Label = "cost_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldIntentID holds the string denoting the intent_id field in the database.
	FieldIntentID = "intent_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldCostType holds the string denoting the cost_type field in the database.
	FieldCostType = "cost_type"
	// FieldAmount holds the string denoting the amount field in the database.
	FieldAmount = "amount"
	// FieldCurrency holds the string denoting the currency field in the database.
	FieldCurrency = "currency"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeIntent holds the string denoting the intent edge name in mutations.
	EdgeIntent = "intent"
	// IntentFieldID holds the string denoting the ID field of the Intent.
	IntentFieldID = "intent_id"
	// Table holds the table name of the costentry in the database.
	Table = "cost_entries"
	// IntentTable is the table that holds the intent relation/edge.
	IntentTable = "cost_entries"
	// IntentInverseTable is the table name for the Intent entity.
	// It exists in this package in order to avoid circular dependency with the "intent" package.
	IntentInverseTable = "intents"
	// IntentColumn is the table column denoting the intent relation/edge.
	IntentColumn = "intent_id"
)

// Columns holds all SQL columns for costentry fields.
var Columns = []string{
	FieldID,
	FieldIntentID,
	FieldAgentID,
	FieldCostType,
	FieldAmount,
	FieldCurrency,
	FieldDescription,
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
	// DefaultCurrency holds the default value on creation for the "currency" field.
	DefaultCurrency string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// CostType defines the type for the "cost_type" enum field.
type CostType string

// CostTypeOther is the default value of the CostType enum.
const DefaultCostType = CostTypeOther

// CostType values.
const (
	CostTypeCompute CostType = "compute"
	CostTypeAPI     CostType = "api"
	CostTypeTokens  CostType = "tokens"
	CostTypeStorage CostType = "storage"
	CostTypeOther   CostType = "other"
)

func (ct CostType) String() string {
	return string(ct)
}

// CostTypeValidator is a validator for the "cost_type" field enum values. It is called by the builders before save.
func CostTypeValidator(ct CostType) error {
	switch ct {
	case CostTypeCompute, CostTypeAPI, CostTypeTokens, CostTypeStorage, CostTypeOther:
		return nil
	default:
		return fmt.Errorf("costentry: invalid enum value for cost_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the CostEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByIntentID orders the results by the intent_id field.
func ByIntentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByCostType orders the results by the cost_type field.
func ByCostType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostType, opts...).ToFunc()
}

// ByAmount orders the results by the amount field.
func ByAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAmount, opts...).ToFunc()
}

// ByCurrency orders the results by the currency field.
func ByCurrency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrency, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
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
