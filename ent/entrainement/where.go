// Code generated by ent, DO NOT EDIT.

package entrainement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Tnecniv1/Calcul-Pixel/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldLTE(FieldID, id))
}

// Volume applies equality check predicate on the "volume" field. It's identical to VolumeEQ.
func Volume(v int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldEQ(FieldVolume, v))
}

// Tentative applies equality check predicate on the "tentative" field. It's identical to TentativeEQ.
func Tentative(v int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldEQ(FieldTentative, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldEQ(FieldCreatedAt, v))
}

// VolumeEQ applies the EQ predicate on the "volume" field.
func VolumeEQ(v int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldEQ(FieldVolume, v))
}

// VolumeNEQ applies the NEQ predicate on the "volume" field.
func VolumeNEQ(v int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldNEQ(FieldVolume, v))
}

// VolumeIn applies the In predicate on the "volume" field.
func VolumeIn(vs ...int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldIn(FieldVolume, vs...))
}

// VolumeNotIn applies the NotIn predicate on the "volume" field.
func VolumeNotIn(vs ...int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldNotIn(FieldVolume, vs...))
}

// VolumeGT applies the GT predicate on the "volume" field.
func VolumeGT(v int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldGT(FieldVolume, v))
}

// VolumeGTE applies the GTE predicate on the "volume" field.
func VolumeGTE(v int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldGTE(FieldVolume, v))
}

// VolumeLT applies the LT predicate on the "volume" field.
func VolumeLT(v int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldLT(FieldVolume, v))
}

// VolumeLTE applies the LTE predicate on the "volume" field.
func VolumeLTE(v int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldLTE(FieldVolume, v))
}

// TentativeEQ applies the EQ predicate on the "tentative" field.
func TentativeEQ(v int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldEQ(FieldTentative, v))
}

// TentativeNEQ applies the NEQ predicate on the "tentative" field.
func TentativeNEQ(v int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldNEQ(FieldTentative, v))
}

// TentativeIn applies the In predicate on the "tentative" field.
func TentativeIn(vs ...int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldIn(FieldTentative, vs...))
}

// TentativeNotIn applies the NotIn predicate on the "tentative" field.
func TentativeNotIn(vs ...int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldNotIn(FieldTentative, vs...))
}

// TentativeGT applies the GT predicate on the "tentative" field.
func TentativeGT(v int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldGT(FieldTentative, v))
}

// TentativeGTE applies the GTE predicate on the "tentative" field.
func TentativeGTE(v int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldGTE(FieldTentative, v))
}

// TentativeLT applies the LT predicate on the "tentative" field.
func TentativeLT(v int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldLT(FieldTentative, v))
}

// TentativeLTE applies the LTE predicate on the "tentative" field.
func TentativeLTE(v int) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldLTE(FieldTentative, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Entrainement {
	return predicate.Entrainement(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Entrainement) predicate.Entrainement {
	return predicate.Entrainement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Entrainement) predicate.Entrainement {
	return predicate.Entrainement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Entrainement) predicate.Entrainement {
	return predicate.Entrainement(sql.NotPredicates(p))
}
