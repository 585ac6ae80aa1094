// Code generated by ent, DO NOT EDIT.

package intent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the intent type in the database.
	Label = "intent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "intent_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCreatorAgentID holds the string denoting the creator_agent_id field in the database.
	FieldCreatorAgentID = "creator_agent_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldConstraints holds the string denoting the constraints field in the database.
	FieldConstraints = "constraints"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldDependsOn holds the string denoting the depends_on field in the database.
	FieldDependsOn = "depends_on"
	// FieldRetryPolicy holds the string denoting the retry_policy field in the database.
	FieldRetryPolicy = "retry_policy"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldAggregate holds the string denoting the aggregate field in the database.
	FieldAggregate = "aggregate"
	// FieldIdempotencyKey holds the string denoting the idempotency_key field in the database.
	FieldIdempotencyKey = "idempotency_key"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeLeases holds the string denoting the leases edge name in mutations.
	EdgeLeases = "leases"
	// EdgeCosts holds the string denoting the costs edge name in mutations.
	EdgeCosts = "costs"
	// EdgeAttachments holds the string denoting the attachments edge name in mutations.
	EdgeAttachments = "attachments"
	// EdgeFailures holds the string denoting the failures edge name in mutations.
	EdgeFailures = "failures"
	// EdgeMemberships holds the string denoting the memberships edge name in mutations.
	EdgeMemberships = "memberships"
	// IntentEventFieldID holds the string denoting the ID field of the IntentEvent.
	IntentEventFieldID = "id"
	// LeaseFieldID holds the string denoting the ID field of the Lease.
	LeaseFieldID = "lease_id"
	// CostEntryFieldID holds the string denoting the ID field of the CostEntry.
	CostEntryFieldID = "id"
	// AttachmentFieldID holds the string denoting the ID field of the Attachment.
	AttachmentFieldID = "attachment_id"
	// FailureRecordFieldID holds the string denoting the ID field of the FailureRecord.
	FailureRecordFieldID = "id"
	// PortfolioMemberFieldID holds the string denoting the ID field of the PortfolioMember.
	PortfolioMemberFieldID = "id"
	// Table holds the table name of the intent in the database.
	Table = "intents"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "intent_events"
	// EventsInverseTable is the table name for the IntentEvent entity.
	// It exists in this package in order to avoid circular dependency with the "intentevent" package.
	EventsInverseTable = "intent_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "intent_id"
	// LeasesTable is the table that holds the leases relation/edge.
	LeasesTable = "leases"
	// LeasesInverseTable is the table name for the Lease entity.
	// It exists in this package in order to avoid circular dependency with the "lease" package.
	LeasesInverseTable = "leases"
	// LeasesColumn is the table column denoting the leases relation/edge.
	LeasesColumn = "intent_id"
	// CostsTable is the table that holds the costs relation/edge.
	CostsTable = "cost_entries"
	// CostsInverseTable is the table name for the CostEntry entity.
	// It exists in this package in order to avoid circular dependency with the "costentry" package.
	CostsInverseTable = "cost_entries"
	// CostsColumn is the table column denoting the costs relation/edge.
	CostsColumn = "intent_id"
	// AttachmentsTable is the table that holds the attachments relation/edge.
	AttachmentsTable = "attachments"
	// AttachmentsInverseTable is the table name for the Attachment entity.
	// It exists in this package in order to avoid circular dependency with the "attachment" package.
	AttachmentsInverseTable = "attachments"
	// AttachmentsColumn is the table column denoting the attachments relation/edge.
	AttachmentsColumn = "intent_id"
	// FailuresTable is the table that holds the failures relation/edge.
	FailuresTable = "failure_records"
	// FailuresInverseTable is the table name for the FailureRecord entity.
	// It exists in this package in order to avoid circular dependency with the "failurerecord" package.
	FailuresInverseTable = "failure_records"
	// FailuresColumn is the table column denoting the failures relation/edge.
	FailuresColumn = "intent_id"
	// MembershipsTable is the table that holds the memberships relation/edge.
	MembershipsTable = "portfolio_members"
	// MembershipsInverseTable is the table name for the PortfolioMember entity.
	// It exists in this package in order to avoid circular dependency with the "portfoliomember" package.
	MembershipsInverseTable = "portfolio_members"
	// MembershipsColumn is the table column denoting the memberships relation/edge.
	MembershipsColumn = "intent_id"
)

// Columns holds all SQL columns for intent fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldCreatorAgentID,
	FieldStatus,
	FieldState,
	FieldVersion,
	FieldConstraints,
	FieldParentID,
	FieldDependsOn,
	FieldRetryPolicy,
	FieldAttemptCount,
	FieldAggregate,
	FieldIdempotencyKey,
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
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusBlocked   Status = "blocked"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusActive, StatusBlocked, StatusCompleted, StatusCancelled, StatusFailed:
		return nil
	default:
		return fmt.Errorf("intent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Intent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCreatorAgentID orders the results by the creator_agent_id field.
func ByCreatorAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatorAgentID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// ByIdempotencyKey orders the results by the idempotency_key field.
func ByIdempotencyKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdempotencyKey, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLeasesCount orders the results by leases count.
func ByLeasesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLeasesStep(), opts...)
	}
}

// ByLeases orders the results by leases terms.
func ByLeases(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeasesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCostsCount orders the results by costs count.
func ByCostsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCostsStep(), opts...)
	}
}

// ByCosts orders the results by costs terms.
func ByCosts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCostsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAttachmentsCount orders the results by attachments count.
func ByAttachmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttachmentsStep(), opts...)
	}
}

// ByAttachments orders the results by attachments terms.
func ByAttachments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttachmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFailuresCount orders the results by failures count.
func ByFailuresCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFailuresStep(), opts...)
	}
}

// ByFailures orders the results by failures terms.
func ByFailures(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFailuresStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMembershipsCount orders the results by memberships count.
func ByMembershipsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMembershipsStep(), opts...)
	}
}

// ByMemberships orders the results by memberships terms.
func ByMemberships(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMembershipsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, IntentEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newLeasesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeasesInverseTable, LeaseFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LeasesTable, LeasesColumn),
	)
}
func newCostsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CostsInverseTable, CostEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CostsTable, CostsColumn),
	)
}
func newAttachmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttachmentsInverseTable, AttachmentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttachmentsTable, AttachmentsColumn),
	)
}
func newFailuresStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FailuresInverseTable, FailureRecordFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FailuresTable, FailuresColumn),
	)
}
func newMembershipsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MembershipsInverseTable, PortfolioMemberFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MembershipsTable, MembershipsColumn),
	)
}
