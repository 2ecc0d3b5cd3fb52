// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Tnecniv1/Calcul-Pixel/ent/observation"
	"github.com/Tnecniv1/Calcul-Pixel/ent/predicate"
)

// ObservationUpdate is the builder for updating Observation entities.
type ObservationUpdate struct {
	config
	hooks    []Hook
	mutation *ObservationMutation
}

// Where appends a list predicates to the ObservationUpdate builder.
func (_u *ObservationUpdate) Where(ps ...predicate.Observation) *ObservationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntrainementID sets the "entrainement_id" field.
func (_u *ObservationUpdate) SetEntrainementID(v int) *ObservationUpdate {
	_u.mutation.ResetEntrainementID()
	_u.mutation.SetEntrainementID(v)
	return _u
}

// SetNillableEntrainementID sets the "entrainement_id" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableEntrainementID(v *int) *ObservationUpdate {
	if v != nil {
		_u.SetEntrainementID(*v)
	}
	return _u
}

// AddEntrainementID adds value to the "entrainement_id" field.
func (_u *ObservationUpdate) AddEntrainementID(v int) *ObservationUpdate {
	_u.mutation.AddEntrainementID(v)
	return _u
}

// SetParcoursID sets the "parcours_id" field.
func (_u *ObservationUpdate) SetParcoursID(v int) *ObservationUpdate {
	_u.mutation.ResetParcoursID()
	_u.mutation.SetParcoursID(v)
	return _u
}

// SetNillableParcoursID sets the "parcours_id" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableParcoursID(v *int) *ObservationUpdate {
	if v != nil {
		_u.SetParcoursID(*v)
	}
	return _u
}

// AddParcoursID adds value to the "parcours_id" field.
func (_u *ObservationUpdate) AddParcoursID(v int) *ObservationUpdate {
	_u.mutation.AddParcoursID(v)
	return _u
}

// SetOperateurUn sets the "operateur_un" field.
func (_u *ObservationUpdate) SetOperateurUn(v float64) *ObservationUpdate {
	_u.mutation.ResetOperateurUn()
	_u.mutation.SetOperateurUn(v)
	return _u
}

// SetNillableOperateurUn sets the "operateur_un" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableOperateurUn(v *float64) *ObservationUpdate {
	if v != nil {
		_u.SetOperateurUn(*v)
	}
	return _u
}

// AddOperateurUn adds value to the "operateur_un" field.
func (_u *ObservationUpdate) AddOperateurUn(v float64) *ObservationUpdate {
	_u.mutation.AddOperateurUn(v)
	return _u
}

// SetOperateurDeux sets the "operateur_deux" field.
func (_u *ObservationUpdate) SetOperateurDeux(v float64) *ObservationUpdate {
	_u.mutation.ResetOperateurDeux()
	_u.mutation.SetOperateurDeux(v)
	return _u
}

// SetNillableOperateurDeux sets the "operateur_deux" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableOperateurDeux(v *float64) *ObservationUpdate {
	if v != nil {
		_u.SetOperateurDeux(*v)
	}
	return _u
}

// AddOperateurDeux adds value to the "operateur_deux" field.
func (_u *ObservationUpdate) AddOperateurDeux(v float64) *ObservationUpdate {
	_u.mutation.AddOperateurDeux(v)
	return _u
}

// SetOperation sets the "operation" field.
func (_u *ObservationUpdate) SetOperation(v string) *ObservationUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableOperation(v *string) *ObservationUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetProposition sets the "proposition" field.
func (_u *ObservationUpdate) SetProposition(v float64) *ObservationUpdate {
	_u.mutation.ResetProposition()
	_u.mutation.SetProposition(v)
	return _u
}

// SetNillableProposition sets the "proposition" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableProposition(v *float64) *ObservationUpdate {
	if v != nil {
		_u.SetProposition(*v)
	}
	return _u
}

// AddProposition adds value to the "proposition" field.
func (_u *ObservationUpdate) AddProposition(v float64) *ObservationUpdate {
	_u.mutation.AddProposition(v)
	return _u
}

// SetSolution sets the "solution" field.
func (_u *ObservationUpdate) SetSolution(v float64) *ObservationUpdate {
	_u.mutation.ResetSolution()
	_u.mutation.SetSolution(v)
	return _u
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableSolution(v *float64) *ObservationUpdate {
	if v != nil {
		_u.SetSolution(*v)
	}
	return _u
}

// AddSolution adds value to the "solution" field.
func (_u *ObservationUpdate) AddSolution(v float64) *ObservationUpdate {
	_u.mutation.AddSolution(v)
	return _u
}

// SetEtat sets the "etat" field.
func (_u *ObservationUpdate) SetEtat(v string) *ObservationUpdate {
	_u.mutation.SetEtat(v)
	return _u
}

// SetNillableEtat sets the "etat" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableEtat(v *string) *ObservationUpdate {
	if v != nil {
		_u.SetEtat(*v)
	}
	return _u
}

// SetTempsSeconds sets the "temps_seconds" field.
func (_u *ObservationUpdate) SetTempsSeconds(v int) *ObservationUpdate {
	_u.mutation.ResetTempsSeconds()
	_u.mutation.SetTempsSeconds(v)
	return _u
}

// SetNillableTempsSeconds sets the "temps_seconds" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableTempsSeconds(v *int) *ObservationUpdate {
	if v != nil {
		_u.SetTempsSeconds(*v)
	}
	return _u
}

// AddTempsSeconds adds value to the "temps_seconds" field.
func (_u *ObservationUpdate) AddTempsSeconds(v int) *ObservationUpdate {
	_u.mutation.AddTempsSeconds(v)
	return _u
}

// SetMargeErreur sets the "marge_erreur" field.
func (_u *ObservationUpdate) SetMargeErreur(v float64) *ObservationUpdate {
	_u.mutation.ResetMargeErreur()
	_u.mutation.SetMargeErreur(v)
	return _u
}

// SetNillableMargeErreur sets the "marge_erreur" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableMargeErreur(v *float64) *ObservationUpdate {
	if v != nil {
		_u.SetMargeErreur(*v)
	}
	return _u
}

// AddMargeErreur adds value to the "marge_erreur" field.
func (_u *ObservationUpdate) AddMargeErreur(v float64) *ObservationUpdate {
	_u.mutation.AddMargeErreur(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *ObservationUpdate) SetScore(v float64) *ObservationUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableScore(v *float64) *ObservationUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ObservationUpdate) AddScore(v float64) *ObservationUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetBonusVitesse sets the "bonus_vitesse" field.
func (_u *ObservationUpdate) SetBonusVitesse(v float64) *ObservationUpdate {
	_u.mutation.ResetBonusVitesse()
	_u.mutation.SetBonusVitesse(v)
	return _u
}

// SetNillableBonusVitesse sets the "bonus_vitesse" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableBonusVitesse(v *float64) *ObservationUpdate {
	if v != nil {
		_u.SetBonusVitesse(*v)
	}
	return _u
}

// AddBonusVitesse adds value to the "bonus_vitesse" field.
func (_u *ObservationUpdate) AddBonusVitesse(v float64) *ObservationUpdate {
	_u.mutation.AddBonusVitesse(v)
	return _u
}

// SetBonusMarge sets the "bonus_marge" field.
func (_u *ObservationUpdate) SetBonusMarge(v float64) *ObservationUpdate {
	_u.mutation.ResetBonusMarge()
	_u.mutation.SetBonusMarge(v)
	return _u
}

// SetNillableBonusMarge sets the "bonus_marge" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableBonusMarge(v *float64) *ObservationUpdate {
	if v != nil {
		_u.SetBonusMarge(*v)
	}
	return _u
}

// AddBonusMarge adds value to the "bonus_marge" field.
func (_u *ObservationUpdate) AddBonusMarge(v float64) *ObservationUpdate {
	_u.mutation.AddBonusMarge(v)
	return _u
}

// SetScoreGlobal sets the "score_global" field.
func (_u *ObservationUpdate) SetScoreGlobal(v float64) *ObservationUpdate {
	_u.mutation.ResetScoreGlobal()
	_u.mutation.SetScoreGlobal(v)
	return _u
}

// SetNillableScoreGlobal sets the "score_global" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableScoreGlobal(v *float64) *ObservationUpdate {
	if v != nil {
		_u.SetScoreGlobal(*v)
	}
	return _u
}

// AddScoreGlobal adds value to the "score_global" field.
func (_u *ObservationUpdate) AddScoreGlobal(v float64) *ObservationUpdate {
	_u.mutation.AddScoreGlobal(v)
	return _u
}

// SetCorrection sets the "correction" field.
func (_u *ObservationUpdate) SetCorrection(v string) *ObservationUpdate {
	_u.mutation.SetCorrection(v)
	return _u
}

// SetNillableCorrection sets the "correction" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableCorrection(v *string) *ObservationUpdate {
	if v != nil {
		_u.SetCorrection(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *ObservationUpdate) SetBatchID(v string) *ObservationUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ObservationUpdate) SetNillableBatchID(v *string) *ObservationUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// Mutation returns the ObservationMutation object of the builder.
func (_u *ObservationUpdate) Mutation() *ObservationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ObservationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObservationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ObservationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObservationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObservationUpdate) check() error {
	if v, ok := _u.mutation.Operation(); ok {
		if err := observation.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "Observation.operation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TempsSeconds(); ok {
		if err := observation.TempsSecondsValidator(v); err != nil {
			return &ValidationError{Name: "temps_seconds", err: fmt.Errorf(`ent: validator failed for field "Observation.temps_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BatchID(); ok {
		if err := observation.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "Observation.batch_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ObservationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(observation.Table, observation.Columns, sqlgraph.NewFieldSpec(observation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntrainementID(); ok {
		_spec.SetField(observation.FieldEntrainementID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEntrainementID(); ok {
		_spec.AddField(observation.FieldEntrainementID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParcoursID(); ok {
		_spec.SetField(observation.FieldParcoursID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParcoursID(); ok {
		_spec.AddField(observation.FieldParcoursID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OperateurUn(); ok {
		_spec.SetField(observation.FieldOperateurUn, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOperateurUn(); ok {
		_spec.AddField(observation.FieldOperateurUn, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OperateurDeux(); ok {
		_spec.SetField(observation.FieldOperateurDeux, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOperateurDeux(); ok {
		_spec.AddField(observation.FieldOperateurDeux, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(observation.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Proposition(); ok {
		_spec.SetField(observation.FieldProposition, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProposition(); ok {
		_spec.AddField(observation.FieldProposition, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(observation.FieldSolution, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSolution(); ok {
		_spec.AddField(observation.FieldSolution, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Etat(); ok {
		_spec.SetField(observation.FieldEtat, field.TypeString, value)
	}
	if value, ok := _u.mutation.TempsSeconds(); ok {
		_spec.SetField(observation.FieldTempsSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTempsSeconds(); ok {
		_spec.AddField(observation.FieldTempsSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MargeErreur(); ok {
		_spec.SetField(observation.FieldMargeErreur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMargeErreur(); ok {
		_spec.AddField(observation.FieldMargeErreur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(observation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(observation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BonusVitesse(); ok {
		_spec.SetField(observation.FieldBonusVitesse, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBonusVitesse(); ok {
		_spec.AddField(observation.FieldBonusVitesse, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BonusMarge(); ok {
		_spec.SetField(observation.FieldBonusMarge, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBonusMarge(); ok {
		_spec.AddField(observation.FieldBonusMarge, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoreGlobal(); ok {
		_spec.SetField(observation.FieldScoreGlobal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreGlobal(); ok {
		_spec.AddField(observation.FieldScoreGlobal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correction(); ok {
		_spec.SetField(observation.FieldCorrection, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(observation.FieldBatchID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{observation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ObservationUpdateOne is the builder for updating a single Observation entity.
type ObservationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ObservationMutation
}

// SetEntrainementID sets the "entrainement_id" field.
func (_u *ObservationUpdateOne) SetEntrainementID(v int) *ObservationUpdateOne {
	_u.mutation.ResetEntrainementID()
	_u.mutation.SetEntrainementID(v)
	return _u
}

// SetNillableEntrainementID sets the "entrainement_id" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableEntrainementID(v *int) *ObservationUpdateOne {
	if v != nil {
		_u.SetEntrainementID(*v)
	}
	return _u
}

// AddEntrainementID adds value to the "entrainement_id" field.
func (_u *ObservationUpdateOne) AddEntrainementID(v int) *ObservationUpdateOne {
	_u.mutation.AddEntrainementID(v)
	return _u
}

// SetParcoursID sets the "parcours_id" field.
func (_u *ObservationUpdateOne) SetParcoursID(v int) *ObservationUpdateOne {
	_u.mutation.ResetParcoursID()
	_u.mutation.SetParcoursID(v)
	return _u
}

// SetNillableParcoursID sets the "parcours_id" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableParcoursID(v *int) *ObservationUpdateOne {
	if v != nil {
		_u.SetParcoursID(*v)
	}
	return _u
}

// AddParcoursID adds value to the "parcours_id" field.
func (_u *ObservationUpdateOne) AddParcoursID(v int) *ObservationUpdateOne {
	_u.mutation.AddParcoursID(v)
	return _u
}

// SetOperateurUn sets the "operateur_un" field.
func (_u *ObservationUpdateOne) SetOperateurUn(v float64) *ObservationUpdateOne {
	_u.mutation.ResetOperateurUn()
	_u.mutation.SetOperateurUn(v)
	return _u
}

// SetNillableOperateurUn sets the "operateur_un" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableOperateurUn(v *float64) *ObservationUpdateOne {
	if v != nil {
		_u.SetOperateurUn(*v)
	}
	return _u
}

// AddOperateurUn adds value to the "operateur_un" field.
func (_u *ObservationUpdateOne) AddOperateurUn(v float64) *ObservationUpdateOne {
	_u.mutation.AddOperateurUn(v)
	return _u
}

// SetOperateurDeux sets the "operateur_deux" field.
func (_u *ObservationUpdateOne) SetOperateurDeux(v float64) *ObservationUpdateOne {
	_u.mutation.ResetOperateurDeux()
	_u.mutation.SetOperateurDeux(v)
	return _u
}

// SetNillableOperateurDeux sets the "operateur_deux" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableOperateurDeux(v *float64) *ObservationUpdateOne {
	if v != nil {
		_u.SetOperateurDeux(*v)
	}
	return _u
}

// AddOperateurDeux adds value to the "operateur_deux" field.
func (_u *ObservationUpdateOne) AddOperateurDeux(v float64) *ObservationUpdateOne {
	_u.mutation.AddOperateurDeux(v)
	return _u
}

// SetOperation sets the "operation" field.
func (_u *ObservationUpdateOne) SetOperation(v string) *ObservationUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableOperation(v *string) *ObservationUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetProposition sets the "proposition" field.
func (_u *ObservationUpdateOne) SetProposition(v float64) *ObservationUpdateOne {
	_u.mutation.ResetProposition()
	_u.mutation.SetProposition(v)
	return _u
}

// SetNillableProposition sets the "proposition" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableProposition(v *float64) *ObservationUpdateOne {
	if v != nil {
		_u.SetProposition(*v)
	}
	return _u
}

// AddProposition adds value to the "proposition" field.
func (_u *ObservationUpdateOne) AddProposition(v float64) *ObservationUpdateOne {
	_u.mutation.AddProposition(v)
	return _u
}

// SetSolution sets the "solution" field.
func (_u *ObservationUpdateOne) SetSolution(v float64) *ObservationUpdateOne {
	_u.mutation.ResetSolution()
	_u.mutation.SetSolution(v)
	return _u
}

// SetNillableSolution sets the "solution" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableSolution(v *float64) *ObservationUpdateOne {
	if v != nil {
		_u.SetSolution(*v)
	}
	return _u
}

// AddSolution adds value to the "solution" field.
func (_u *ObservationUpdateOne) AddSolution(v float64) *ObservationUpdateOne {
	_u.mutation.AddSolution(v)
	return _u
}

// SetEtat sets the "etat" field.
func (_u *ObservationUpdateOne) SetEtat(v string) *ObservationUpdateOne {
	_u.mutation.SetEtat(v)
	return _u
}

// SetNillableEtat sets the "etat" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableEtat(v *string) *ObservationUpdateOne {
	if v != nil {
		_u.SetEtat(*v)
	}
	return _u
}

// SetTempsSeconds sets the "temps_seconds" field.
func (_u *ObservationUpdateOne) SetTempsSeconds(v int) *ObservationUpdateOne {
	_u.mutation.ResetTempsSeconds()
	_u.mutation.SetTempsSeconds(v)
	return _u
}

// SetNillableTempsSeconds sets the "temps_seconds" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableTempsSeconds(v *int) *ObservationUpdateOne {
	if v != nil {
		_u.SetTempsSeconds(*v)
	}
	return _u
}

// AddTempsSeconds adds value to the "temps_seconds" field.
func (_u *ObservationUpdateOne) AddTempsSeconds(v int) *ObservationUpdateOne {
	_u.mutation.AddTempsSeconds(v)
	return _u
}

// SetMargeErreur sets the "marge_erreur" field.
func (_u *ObservationUpdateOne) SetMargeErreur(v float64) *ObservationUpdateOne {
	_u.mutation.ResetMargeErreur()
	_u.mutation.SetMargeErreur(v)
	return _u
}

// SetNillableMargeErreur sets the "marge_erreur" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableMargeErreur(v *float64) *ObservationUpdateOne {
	if v != nil {
		_u.SetMargeErreur(*v)
	}
	return _u
}

// AddMargeErreur adds value to the "marge_erreur" field.
func (_u *ObservationUpdateOne) AddMargeErreur(v float64) *ObservationUpdateOne {
	_u.mutation.AddMargeErreur(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *ObservationUpdateOne) SetScore(v float64) *ObservationUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableScore(v *float64) *ObservationUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ObservationUpdateOne) AddScore(v float64) *ObservationUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetBonusVitesse sets the "bonus_vitesse" field.
func (_u *ObservationUpdateOne) SetBonusVitesse(v float64) *ObservationUpdateOne {
	_u.mutation.ResetBonusVitesse()
	_u.mutation.SetBonusVitesse(v)
	return _u
}

// SetNillableBonusVitesse sets the "bonus_vitesse" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableBonusVitesse(v *float64) *ObservationUpdateOne {
	if v != nil {
		_u.SetBonusVitesse(*v)
	}
	return _u
}

// AddBonusVitesse adds value to the "bonus_vitesse" field.
func (_u *ObservationUpdateOne) AddBonusVitesse(v float64) *ObservationUpdateOne {
	_u.mutation.AddBonusVitesse(v)
	return _u
}

// SetBonusMarge sets the "bonus_marge" field.
func (_u *ObservationUpdateOne) SetBonusMarge(v float64) *ObservationUpdateOne {
	_u.mutation.ResetBonusMarge()
	_u.mutation.SetBonusMarge(v)
	return _u
}

// SetNillableBonusMarge sets the "bonus_marge" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableBonusMarge(v *float64) *ObservationUpdateOne {
	if v != nil {
		_u.SetBonusMarge(*v)
	}
	return _u
}

// AddBonusMarge adds value to the "bonus_marge" field.
func (_u *ObservationUpdateOne) AddBonusMarge(v float64) *ObservationUpdateOne {
	_u.mutation.AddBonusMarge(v)
	return _u
}

// SetScoreGlobal sets the "score_global" field.
func (_u *ObservationUpdateOne) SetScoreGlobal(v float64) *ObservationUpdateOne {
	_u.mutation.ResetScoreGlobal()
	_u.mutation.SetScoreGlobal(v)
	return _u
}

// SetNillableScoreGlobal sets the "score_global" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableScoreGlobal(v *float64) *ObservationUpdateOne {
	if v != nil {
		_u.SetScoreGlobal(*v)
	}
	return _u
}

// AddScoreGlobal adds value to the "score_global" field.
func (_u *ObservationUpdateOne) AddScoreGlobal(v float64) *ObservationUpdateOne {
	_u.mutation.AddScoreGlobal(v)
	return _u
}

// SetCorrection sets the "correction" field.
func (_u *ObservationUpdateOne) SetCorrection(v string) *ObservationUpdateOne {
	_u.mutation.SetCorrection(v)
	return _u
}

// SetNillableCorrection sets the "correction" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableCorrection(v *string) *ObservationUpdateOne {
	if v != nil {
		_u.SetCorrection(*v)
	}
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *ObservationUpdateOne) SetBatchID(v string) *ObservationUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *ObservationUpdateOne) SetNillableBatchID(v *string) *ObservationUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// Mutation returns the ObservationMutation object of the builder.
func (_u *ObservationUpdateOne) Mutation() *ObservationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ObservationUpdate builder.
func (_u *ObservationUpdateOne) Where(ps ...predicate.Observation) *ObservationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ObservationUpdateOne) Select(field string, fields ...string) *ObservationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Observation entity.
func (_u *ObservationUpdateOne) Save(ctx context.Context) (*Observation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ObservationUpdateOne) SaveX(ctx context.Context) *Observation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ObservationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ObservationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ObservationUpdateOne) check() error {
	if v, ok := _u.mutation.Operation(); ok {
		if err := observation.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "Observation.operation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TempsSeconds(); ok {
		if err := observation.TempsSecondsValidator(v); err != nil {
			return &ValidationError{Name: "temps_seconds", err: fmt.Errorf(`ent: validator failed for field "Observation.temps_seconds": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BatchID(); ok {
		if err := observation.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "Observation.batch_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ObservationUpdateOne) sqlSave(ctx context.Context) (_node *Observation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(observation.Table, observation.Columns, sqlgraph.NewFieldSpec(observation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Observation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, observation.FieldID)
		for _, f := range fields {
			if !observation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != observation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntrainementID(); ok {
		_spec.SetField(observation.FieldEntrainementID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEntrainementID(); ok {
		_spec.AddField(observation.FieldEntrainementID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParcoursID(); ok {
		_spec.SetField(observation.FieldParcoursID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParcoursID(); ok {
		_spec.AddField(observation.FieldParcoursID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OperateurUn(); ok {
		_spec.SetField(observation.FieldOperateurUn, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOperateurUn(); ok {
		_spec.AddField(observation.FieldOperateurUn, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OperateurDeux(); ok {
		_spec.SetField(observation.FieldOperateurDeux, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOperateurDeux(); ok {
		_spec.AddField(observation.FieldOperateurDeux, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(observation.FieldOperation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Proposition(); ok {
		_spec.SetField(observation.FieldProposition, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProposition(); ok {
		_spec.AddField(observation.FieldProposition, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(observation.FieldSolution, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSolution(); ok {
		_spec.AddField(observation.FieldSolution, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Etat(); ok {
		_spec.SetField(observation.FieldEtat, field.TypeString, value)
	}
	if value, ok := _u.mutation.TempsSeconds(); ok {
		_spec.SetField(observation.FieldTempsSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTempsSeconds(); ok {
		_spec.AddField(observation.FieldTempsSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MargeErreur(); ok {
		_spec.SetField(observation.FieldMargeErreur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMargeErreur(); ok {
		_spec.AddField(observation.FieldMargeErreur, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(observation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(observation.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BonusVitesse(); ok {
		_spec.SetField(observation.FieldBonusVitesse, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBonusVitesse(); ok {
		_spec.AddField(observation.FieldBonusVitesse, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BonusMarge(); ok {
		_spec.SetField(observation.FieldBonusMarge, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBonusMarge(); ok {
		_spec.AddField(observation.FieldBonusMarge, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoreGlobal(); ok {
		_spec.SetField(observation.FieldScoreGlobal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreGlobal(); ok {
		_spec.AddField(observation.FieldScoreGlobal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Correction(); ok {
		_spec.SetField(observation.FieldCorrection, field.TypeString, value)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(observation.FieldBatchID, field.TypeString, value)
	}
	_node = &Observation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{observation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
