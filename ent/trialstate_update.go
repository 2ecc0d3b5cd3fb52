// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Tnecniv1/Calcul-Pixel/ent/predicate"
	"github.com/Tnecniv1/Calcul-Pixel/ent/trialstate"
)

// TrialStateUpdate is the builder for updating TrialState entities.
type TrialStateUpdate struct {
	config
	hooks    []Hook
	mutation *TrialStateMutation
}

// Where appends a list predicates to the TrialStateUpdate builder.
func (_u *TrialStateUpdate) Where(ps ...predicate.TrialState) *TrialStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStartedAtMs sets the "started_at_ms" field.
func (_u *TrialStateUpdate) SetStartedAtMs(v int64) *TrialStateUpdate {
	_u.mutation.ResetStartedAtMs()
	_u.mutation.SetStartedAtMs(v)
	return _u
}

// SetNillableStartedAtMs sets the "started_at_ms" field if the given value is not nil.
func (_u *TrialStateUpdate) SetNillableStartedAtMs(v *int64) *TrialStateUpdate {
	if v != nil {
		_u.SetStartedAtMs(*v)
	}
	return _u
}

// AddStartedAtMs adds value to the "started_at_ms" field.
func (_u *TrialStateUpdate) AddStartedAtMs(v int64) *TrialStateUpdate {
	_u.mutation.AddStartedAtMs(v)
	return _u
}

// Mutation returns the TrialStateMutation object of the builder.
func (_u *TrialStateUpdate) Mutation() *TrialStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrialStateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrialStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrialStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrialStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrialStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(trialstate.Table, trialstate.Columns, sqlgraph.NewFieldSpec(trialstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StartedAtMs(); ok {
		_spec.SetField(trialstate.FieldStartedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStartedAtMs(); ok {
		_spec.AddField(trialstate.FieldStartedAtMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trialstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrialStateUpdateOne is the builder for updating a single TrialState entity.
type TrialStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrialStateMutation
}

// SetStartedAtMs sets the "started_at_ms" field.
func (_u *TrialStateUpdateOne) SetStartedAtMs(v int64) *TrialStateUpdateOne {
	_u.mutation.ResetStartedAtMs()
	_u.mutation.SetStartedAtMs(v)
	return _u
}

// SetNillableStartedAtMs sets the "started_at_ms" field if the given value is not nil.
func (_u *TrialStateUpdateOne) SetNillableStartedAtMs(v *int64) *TrialStateUpdateOne {
	if v != nil {
		_u.SetStartedAtMs(*v)
	}
	return _u
}

// AddStartedAtMs adds value to the "started_at_ms" field.
func (_u *TrialStateUpdateOne) AddStartedAtMs(v int64) *TrialStateUpdateOne {
	_u.mutation.AddStartedAtMs(v)
	return _u
}

// Mutation returns the TrialStateMutation object of the builder.
func (_u *TrialStateUpdateOne) Mutation() *TrialStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrialStateUpdate builder.
func (_u *TrialStateUpdateOne) Where(ps ...predicate.TrialState) *TrialStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrialStateUpdateOne) Select(field string, fields ...string) *TrialStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrialState entity.
func (_u *TrialStateUpdateOne) Save(ctx context.Context) (*TrialState, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrialStateUpdateOne) SaveX(ctx context.Context) *TrialState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrialStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrialStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrialStateUpdateOne) sqlSave(ctx context.Context) (_node *TrialState, err error) {
	_spec := sqlgraph.NewUpdateSpec(trialstate.Table, trialstate.Columns, sqlgraph.NewFieldSpec(trialstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrialState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trialstate.FieldID)
		for _, f := range fields {
			if !trialstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trialstate.FieldID {
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
	if value, ok := _u.mutation.StartedAtMs(); ok {
		_spec.SetField(trialstate.FieldStartedAtMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStartedAtMs(); ok {
		_spec.AddField(trialstate.FieldStartedAtMs, field.TypeInt64, value)
	}
	_node = &TrialState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trialstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
