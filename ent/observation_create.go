// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Tnecniv1/Calcul-Pixel/ent/observation"
)

// ObservationCreate is the builder for creating a Observation entity.
type ObservationCreate struct {
	config
	mutation *ObservationMutation
	hooks    []Hook
}

// SetEntrainementID sets the "entrainement_id" field.
func (_c *ObservationCreate) SetEntrainementID(v int) *ObservationCreate {
	_c.mutation.SetEntrainementID(v)
	return _c
}

// SetParcoursID sets the "parcours_id" field.
func (_c *ObservationCreate) SetParcoursID(v int) *ObservationCreate {
	_c.mutation.SetParcoursID(v)
	return _c
}

// SetOperateurUn sets the "operateur_un" field.
func (_c *ObservationCreate) SetOperateurUn(v float64) *ObservationCreate {
	_c.mutation.SetOperateurUn(v)
	return _c
}

// SetOperateurDeux sets the "operateur_deux" field.
func (_c *ObservationCreate) SetOperateurDeux(v float64) *ObservationCreate {
	_c.mutation.SetOperateurDeux(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *ObservationCreate) SetOperation(v string) *ObservationCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetProposition sets the "proposition" field.
func (_c *ObservationCreate) SetProposition(v float64) *ObservationCreate {
	_c.mutation.SetProposition(v)
	return _c
}

// SetSolution sets the "solution" field.
func (_c *ObservationCreate) SetSolution(v float64) *ObservationCreate {
	_c.mutation.SetSolution(v)
	return _c
}

// SetEtat sets the "etat" field.
func (_c *ObservationCreate) SetEtat(v string) *ObservationCreate {
	_c.mutation.SetEtat(v)
	return _c
}

// SetTempsSeconds sets the "temps_seconds" field.
func (_c *ObservationCreate) SetTempsSeconds(v int) *ObservationCreate {
	_c.mutation.SetTempsSeconds(v)
	return _c
}

// SetMargeErreur sets the "marge_erreur" field.
func (_c *ObservationCreate) SetMargeErreur(v float64) *ObservationCreate {
	_c.mutation.SetMargeErreur(v)
	return _c
}

// SetNillableMargeErreur sets the "marge_erreur" field if the given value is not nil.
func (_c *ObservationCreate) SetNillableMargeErreur(v *float64) *ObservationCreate {
	if v != nil {
		_c.SetMargeErreur(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *ObservationCreate) SetScore(v float64) *ObservationCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetBonusVitesse sets the "bonus_vitesse" field.
func (_c *ObservationCreate) SetBonusVitesse(v float64) *ObservationCreate {
	_c.mutation.SetBonusVitesse(v)
	return _c
}

// SetNillableBonusVitesse sets the "bonus_vitesse" field if the given value is not nil.
func (_c *ObservationCreate) SetNillableBonusVitesse(v *float64) *ObservationCreate {
	if v != nil {
		_c.SetBonusVitesse(*v)
	}
	return _c
}

// SetBonusMarge sets the "bonus_marge" field.
func (_c *ObservationCreate) SetBonusMarge(v float64) *ObservationCreate {
	_c.mutation.SetBonusMarge(v)
	return _c
}

// SetNillableBonusMarge sets the "bonus_marge" field if the given value is not nil.
func (_c *ObservationCreate) SetNillableBonusMarge(v *float64) *ObservationCreate {
	if v != nil {
		_c.SetBonusMarge(*v)
	}
	return _c
}

// SetScoreGlobal sets the "score_global" field.
func (_c *ObservationCreate) SetScoreGlobal(v float64) *ObservationCreate {
	_c.mutation.SetScoreGlobal(v)
	return _c
}

// SetNillableScoreGlobal sets the "score_global" field if the given value is not nil.
func (_c *ObservationCreate) SetNillableScoreGlobal(v *float64) *ObservationCreate {
	if v != nil {
		_c.SetScoreGlobal(*v)
	}
	return _c
}

// SetCorrection sets the "correction" field.
func (_c *ObservationCreate) SetCorrection(v string) *ObservationCreate {
	_c.mutation.SetCorrection(v)
	return _c
}

// SetNillableCorrection sets the "correction" field if the given value is not nil.
func (_c *ObservationCreate) SetNillableCorrection(v *string) *ObservationCreate {
	if v != nil {
		_c.SetCorrection(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *ObservationCreate) SetBatchID(v string) *ObservationCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ObservationCreate) SetCreatedAt(v time.Time) *ObservationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ObservationCreate) SetNillableCreatedAt(v *time.Time) *ObservationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ObservationMutation object of the builder.
func (_c *ObservationCreate) Mutation() *ObservationMutation {
	return _c.mutation
}

// Save creates the Observation in the database.
func (_c *ObservationCreate) Save(ctx context.Context) (*Observation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ObservationCreate) SaveX(ctx context.Context) *Observation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObservationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObservationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ObservationCreate) defaults() {
	if _, ok := _c.mutation.MargeErreur(); !ok {
		v := observation.DefaultMargeErreur
		_c.mutation.SetMargeErreur(v)
	}
	if _, ok := _c.mutation.BonusVitesse(); !ok {
		v := observation.DefaultBonusVitesse
		_c.mutation.SetBonusVitesse(v)
	}
	if _, ok := _c.mutation.BonusMarge(); !ok {
		v := observation.DefaultBonusMarge
		_c.mutation.SetBonusMarge(v)
	}
	if _, ok := _c.mutation.ScoreGlobal(); !ok {
		v := observation.DefaultScoreGlobal
		_c.mutation.SetScoreGlobal(v)
	}
	if _, ok := _c.mutation.Correction(); !ok {
		v := observation.DefaultCorrection
		_c.mutation.SetCorrection(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := observation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ObservationCreate) check() error {
	if _, ok := _c.mutation.EntrainementID(); !ok {
		return &ValidationError{Name: "entrainement_id", err: errors.New(`ent: missing required field "Observation.entrainement_id"`)}
	}
	if _, ok := _c.mutation.ParcoursID(); !ok {
		return &ValidationError{Name: "parcours_id", err: errors.New(`ent: missing required field "Observation.parcours_id"`)}
	}
	if _, ok := _c.mutation.OperateurUn(); !ok {
		return &ValidationError{Name: "operateur_un", err: errors.New(`ent: missing required field "Observation.operateur_un"`)}
	}
	if _, ok := _c.mutation.OperateurDeux(); !ok {
		return &ValidationError{Name: "operateur_deux", err: errors.New(`ent: missing required field "Observation.operateur_deux"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "Observation.operation"`)}
	}
	if v, ok := _c.mutation.Operation(); ok {
		if err := observation.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "Observation.operation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Proposition(); !ok {
		return &ValidationError{Name: "proposition", err: errors.New(`ent: missing required field "Observation.proposition"`)}
	}
	if _, ok := _c.mutation.Solution(); !ok {
		return &ValidationError{Name: "solution", err: errors.New(`ent: missing required field "Observation.solution"`)}
	}
	if _, ok := _c.mutation.Etat(); !ok {
		return &ValidationError{Name: "etat", err: errors.New(`ent: missing required field "Observation.etat"`)}
	}
	if _, ok := _c.mutation.TempsSeconds(); !ok {
		return &ValidationError{Name: "temps_seconds", err: errors.New(`ent: missing required field "Observation.temps_seconds"`)}
	}
	if v, ok := _c.mutation.TempsSeconds(); ok {
		if err := observation.TempsSecondsValidator(v); err != nil {
			return &ValidationError{Name: "temps_seconds", err: fmt.Errorf(`ent: validator failed for field "Observation.temps_seconds": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MargeErreur(); !ok {
		return &ValidationError{Name: "marge_erreur", err: errors.New(`ent: missing required field "Observation.marge_erreur"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Observation.score"`)}
	}
	if _, ok := _c.mutation.BonusVitesse(); !ok {
		return &ValidationError{Name: "bonus_vitesse", err: errors.New(`ent: missing required field "Observation.bonus_vitesse"`)}
	}
	if _, ok := _c.mutation.BonusMarge(); !ok {
		return &ValidationError{Name: "bonus_marge", err: errors.New(`ent: missing required field "Observation.bonus_marge"`)}
	}
	if _, ok := _c.mutation.ScoreGlobal(); !ok {
		return &ValidationError{Name: "score_global", err: errors.New(`ent: missing required field "Observation.score_global"`)}
	}
	if _, ok := _c.mutation.Correction(); !ok {
		return &ValidationError{Name: "correction", err: errors.New(`ent: missing required field "Observation.correction"`)}
	}
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "Observation.batch_id"`)}
	}
	if v, ok := _c.mutation.BatchID(); ok {
		if err := observation.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "Observation.batch_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Observation.created_at"`)}
	}
	return nil
}

func (_c *ObservationCreate) sqlSave(ctx context.Context) (*Observation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ObservationCreate) createSpec() (*Observation, *sqlgraph.CreateSpec) {
	var (
		_node = &Observation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(observation.Table, sqlgraph.NewFieldSpec(observation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EntrainementID(); ok {
		_spec.SetField(observation.FieldEntrainementID, field.TypeInt, value)
		_node.EntrainementID = value
	}
	if value, ok := _c.mutation.ParcoursID(); ok {
		_spec.SetField(observation.FieldParcoursID, field.TypeInt, value)
		_node.ParcoursID = value
	}
	if value, ok := _c.mutation.OperateurUn(); ok {
		_spec.SetField(observation.FieldOperateurUn, field.TypeFloat64, value)
		_node.OperateurUn = value
	}
	if value, ok := _c.mutation.OperateurDeux(); ok {
		_spec.SetField(observation.FieldOperateurDeux, field.TypeFloat64, value)
		_node.OperateurDeux = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(observation.FieldOperation, field.TypeString, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.Proposition(); ok {
		_spec.SetField(observation.FieldProposition, field.TypeFloat64, value)
		_node.Proposition = value
	}
	if value, ok := _c.mutation.Solution(); ok {
		_spec.SetField(observation.FieldSolution, field.TypeFloat64, value)
		_node.Solution = value
	}
	if value, ok := _c.mutation.Etat(); ok {
		_spec.SetField(observation.FieldEtat, field.TypeString, value)
		_node.Etat = value
	}
	if value, ok := _c.mutation.TempsSeconds(); ok {
		_spec.SetField(observation.FieldTempsSeconds, field.TypeInt, value)
		_node.TempsSeconds = value
	}
	if value, ok := _c.mutation.MargeErreur(); ok {
		_spec.SetField(observation.FieldMargeErreur, field.TypeFloat64, value)
		_node.MargeErreur = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(observation.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.BonusVitesse(); ok {
		_spec.SetField(observation.FieldBonusVitesse, field.TypeFloat64, value)
		_node.BonusVitesse = value
	}
	if value, ok := _c.mutation.BonusMarge(); ok {
		_spec.SetField(observation.FieldBonusMarge, field.TypeFloat64, value)
		_node.BonusMarge = value
	}
	if value, ok := _c.mutation.ScoreGlobal(); ok {
		_spec.SetField(observation.FieldScoreGlobal, field.TypeFloat64, value)
		_node.ScoreGlobal = value
	}
	if value, ok := _c.mutation.Correction(); ok {
		_spec.SetField(observation.FieldCorrection, field.TypeString, value)
		_node.Correction = value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(observation.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(observation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ObservationCreateBulk is the builder for creating many Observation entities in bulk.
type ObservationCreateBulk struct {
	config
	err      error
	builders []*ObservationCreate
}

// Save creates the Observation entities in the database.
func (_c *ObservationCreateBulk) Save(ctx context.Context) ([]*Observation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Observation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ObservationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ObservationCreateBulk) SaveX(ctx context.Context) []*Observation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ObservationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ObservationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
