// Code generated by ent, DO NOT EDIT.

package failurerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/openintent-io/openintent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldLTE(FieldID, id))
}

// IntentID applies equality check predicate on the "intent_id" field. It's identical to IntentIDEQ.
func IntentID(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEQ(FieldIntentID, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEQ(FieldErrorType, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// Recoverable applies equality check predicate on the "recoverable" field. It's identical to RecoverableEQ.
func Recoverable(v bool) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEQ(FieldRecoverable, v))
}

// AttemptNumber applies equality check predicate on the "attempt_number" field. It's identical to AttemptNumberEQ.
func AttemptNumber(v int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEQ(FieldAttemptNumber, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// IntentIDEQ applies the EQ predicate on the "intent_id" field.
func IntentIDEQ(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEQ(FieldIntentID, v))
}

// IntentIDNEQ applies the NEQ predicate on the "intent_id" field.
func IntentIDNEQ(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldNEQ(FieldIntentID, v))
}

// IntentIDIn applies the In predicate on the "intent_id" field.
func IntentIDIn(vs ...string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldIn(FieldIntentID, vs...))
}

// IntentIDNotIn applies the NotIn predicate on the "intent_id" field.
func IntentIDNotIn(vs ...string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldNotIn(FieldIntentID, vs...))
}

// IntentIDGT applies the GT predicate on the "intent_id" field.
func IntentIDGT(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldGT(FieldIntentID, v))
}

// IntentIDGTE applies the GTE predicate on the "intent_id" field.
func IntentIDGTE(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldGTE(FieldIntentID, v))
}

// IntentIDLT applies the LT predicate on the "intent_id" field.
func IntentIDLT(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldLT(FieldIntentID, v))
}

// IntentIDLTE applies the LTE predicate on the "intent_id" field.
func IntentIDLTE(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldLTE(FieldIntentID, v))
}

// IntentIDContains applies the Contains predicate on the "intent_id" field.
func IntentIDContains(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldContains(FieldIntentID, v))
}

// IntentIDHasPrefix applies the HasPrefix predicate on the "intent_id" field.
func IntentIDHasPrefix(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldHasPrefix(FieldIntentID, v))
}

// IntentIDHasSuffix applies the HasSuffix predicate on the "intent_id" field.
func IntentIDHasSuffix(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldHasSuffix(FieldIntentID, v))
}

// IntentIDEqualFold applies the EqualFold predicate on the "intent_id" field.
func IntentIDEqualFold(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEqualFold(FieldIntentID, v))
}

// IntentIDContainsFold applies the ContainsFold predicate on the "intent_id" field.
func IntentIDContainsFold(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldContainsFold(FieldIntentID, v))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldContainsFold(FieldErrorType, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RecoverableEQ applies the EQ predicate on the "recoverable" field.
func RecoverableEQ(v bool) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEQ(FieldRecoverable, v))
}

// RecoverableNEQ applies the NEQ predicate on the "recoverable" field.
func RecoverableNEQ(v bool) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldNEQ(FieldRecoverable, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldNotNull(FieldContext))
}

// AttemptNumberEQ applies the EQ predicate on the "attempt_number" field.
func AttemptNumberEQ(v int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEQ(FieldAttemptNumber, v))
}

// AttemptNumberNEQ applies the NEQ predicate on the "attempt_number" field.
func AttemptNumberNEQ(v int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldNEQ(FieldAttemptNumber, v))
}

// AttemptNumberIn applies the In predicate on the "attempt_number" field.
func AttemptNumberIn(vs ...int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldIn(FieldAttemptNumber, vs...))
}

// AttemptNumberNotIn applies the NotIn predicate on the "attempt_number" field.
func AttemptNumberNotIn(vs ...int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldNotIn(FieldAttemptNumber, vs...))
}

// AttemptNumberGT applies the GT predicate on the "attempt_number" field.
func AttemptNumberGT(v int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldGT(FieldAttemptNumber, v))
}

// AttemptNumberGTE applies the GTE predicate on the "attempt_number" field.
func AttemptNumberGTE(v int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldGTE(FieldAttemptNumber, v))
}

// AttemptNumberLT applies the LT predicate on the "attempt_number" field.
func AttemptNumberLT(v int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldLT(FieldAttemptNumber, v))
}

// AttemptNumberLTE applies the LTE predicate on the "attempt_number" field.
func AttemptNumberLTE(v int) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldLTE(FieldAttemptNumber, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FailureRecord {
	return predicate.FailureRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasIntent applies the HasEdge predicate on the "intent" edge.
func HasIntent() predicate.FailureRecord {
	return predicate.FailureRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, IntentTable, IntentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIntentWith applies the HasEdge predicate on the "intent" edge with a given conditions (other predicates).
func HasIntentWith(preds ...predicate.Intent) predicate.FailureRecord {
	return predicate.FailureRecord(func(s *sql.Selector) {
		step := newIntentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FailureRecord) predicate.FailureRecord {
	return predicate.FailureRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FailureRecord) predicate.FailureRecord {
	return predicate.FailureRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FailureRecord) predicate.FailureRecord {
	return predicate.FailureRecord(sql.NotPredicates(p))
}
