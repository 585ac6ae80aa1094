// Code generated by ent, DO NOT EDIT.

package tooldefinition

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tooldefinition type in the database.
	Label = "tool_definition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAdapter holds the string denoting the adapter field in the database.
	FieldAdapter = "adapter"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldConfig holds the string denoting the config field in the database.
	FieldConfig = "config"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the tooldefinition in the database.
	Table = "tool_definitions"
)

// Columns holds all SQL columns for tooldefinition fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldAdapter,
	FieldDescription,
	FieldConfig,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Adapter defines the type for the "adapter" enum field.
type Adapter string

// Adapter values.
const (
	AdapterRest    Adapter = "rest"
	AdapterOauth2  Adapter = "oauth2"
	AdapterWebhook Adapter = "webhook"
)

func (a Adapter) String() string {
	return string(a)
}

// AdapterValidator is a validator for the "adapter" field enum values. It is called by the builders before save.
func AdapterValidator(a Adapter) error {
	switch a {
	case AdapterRest, AdapterOauth2, AdapterWebhook:
		return nil
	default:
		return fmt.Errorf("tooldefinition: invalid enum value for adapter field: %q", a)
	}
}

// OrderOption defines the ordering options for the ToolDefinition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAdapter orders the results by the adapter field.
func ByAdapter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdapter, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
