// Code generated by ent, DO NOT EDIT.

package trialstate

import (
	"entgo.io/ent/dialect/sql"
	"github.com/Tnecniv1/Calcul-Pixel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TrialState {
	return predicate.TrialState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TrialState {
	return predicate.TrialState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TrialState {
	return predicate.TrialState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TrialState {
	return predicate.TrialState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TrialState {
	return predicate.TrialState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TrialState {
	return predicate.TrialState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TrialState {
	return predicate.TrialState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TrialState {
	return predicate.TrialState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TrialState {
	return predicate.TrialState(sql.FieldLTE(FieldID, id))
}

// StartedAtMs applies equality check predicate on the "started_at_ms" field. It's identical to StartedAtMsEQ.
func StartedAtMs(v int64) predicate.TrialState {
	return predicate.TrialState(sql.FieldEQ(FieldStartedAtMs, v))
}

// StartedAtMsEQ applies the EQ predicate on the "started_at_ms" field.
func StartedAtMsEQ(v int64) predicate.TrialState {
	return predicate.TrialState(sql.FieldEQ(FieldStartedAtMs, v))
}

// StartedAtMsNEQ applies the NEQ predicate on the "started_at_ms" field.
func StartedAtMsNEQ(v int64) predicate.TrialState {
	return predicate.TrialState(sql.FieldNEQ(FieldStartedAtMs, v))
}

// StartedAtMsIn applies the In predicate on the "started_at_ms" field.
func StartedAtMsIn(vs ...int64) predicate.TrialState {
	return predicate.TrialState(sql.FieldIn(FieldStartedAtMs, vs...))
}

// StartedAtMsNotIn applies the NotIn predicate on the "started_at_ms" field.
func StartedAtMsNotIn(vs ...int64) predicate.TrialState {
	return predicate.TrialState(sql.FieldNotIn(FieldStartedAtMs, vs...))
}

// StartedAtMsGT applies the GT predicate on the "started_at_ms" field.
func StartedAtMsGT(v int64) predicate.TrialState {
	return predicate.TrialState(sql.FieldGT(FieldStartedAtMs, v))
}

// StartedAtMsGTE applies the GTE predicate on the "started_at_ms" field.
func StartedAtMsGTE(v int64) predicate.TrialState {
	return predicate.TrialState(sql.FieldGTE(FieldStartedAtMs, v))
}

// StartedAtMsLT applies the LT predicate on the "started_at_ms" field.
func StartedAtMsLT(v int64) predicate.TrialState {
	return predicate.TrialState(sql.FieldLT(FieldStartedAtMs, v))
}

// StartedAtMsLTE applies the LTE predicate on the "started_at_ms" field.
func StartedAtMsLTE(v int64) predicate.TrialState {
	return predicate.TrialState(sql.FieldLTE(FieldStartedAtMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TrialState) predicate.TrialState {
	return predicate.TrialState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TrialState) predicate.TrialState {
	return predicate.TrialState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TrialState) predicate.TrialState {
	return predicate.TrialState(sql.NotPredicates(p))
}
