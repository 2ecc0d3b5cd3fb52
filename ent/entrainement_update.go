// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Tnecniv1/Calcul-Pixel/ent/entrainement"
	"github.com/Tnecniv1/Calcul-Pixel/ent/predicate"
)

// EntrainementUpdate is the builder for updating Entrainement entities.
type EntrainementUpdate struct {
	config
	hooks    []Hook
	mutation *EntrainementMutation
}

// Where appends a list predicates to the EntrainementUpdate builder.
func (_u *EntrainementUpdate) Where(ps ...predicate.Entrainement) *EntrainementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVolume sets the "volume" field.
func (_u *EntrainementUpdate) SetVolume(v int) *EntrainementUpdate {
	_u.mutation.ResetVolume()
	_u.mutation.SetVolume(v)
	return _u
}

// SetNillableVolume sets the "volume" field if the given value is not nil.
func (_u *EntrainementUpdate) SetNillableVolume(v *int) *EntrainementUpdate {
	if v != nil {
		_u.SetVolume(*v)
	}
	return _u
}

// AddVolume adds value to the "volume" field.
func (_u *EntrainementUpdate) AddVolume(v int) *EntrainementUpdate {
	_u.mutation.AddVolume(v)
	return _u
}

// SetTentative sets the "tentative" field.
func (_u *EntrainementUpdate) SetTentative(v int) *EntrainementUpdate {
	_u.mutation.ResetTentative()
	_u.mutation.SetTentative(v)
	return _u
}

// SetNillableTentative sets the "tentative" field if the given value is not nil.
func (_u *EntrainementUpdate) SetNillableTentative(v *int) *EntrainementUpdate {
	if v != nil {
		_u.SetTentative(*v)
	}
	return _u
}

// AddTentative adds value to the "tentative" field.
func (_u *EntrainementUpdate) AddTentative(v int) *EntrainementUpdate {
	_u.mutation.AddTentative(v)
	return _u
}

// Mutation returns the EntrainementMutation object of the builder.
func (_u *EntrainementUpdate) Mutation() *EntrainementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntrainementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntrainementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntrainementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntrainementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntrainementUpdate) check() error {
	if v, ok := _u.mutation.Volume(); ok {
		if err := entrainement.VolumeValidator(v); err != nil {
			return &ValidationError{Name: "volume", err: fmt.Errorf(`ent: validator failed for field "Entrainement.volume": %w`, err)}
		}
	}
	return nil
}

func (_u *EntrainementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entrainement.Table, entrainement.Columns, sqlgraph.NewFieldSpec(entrainement.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Volume(); ok {
		_spec.SetField(entrainement.FieldVolume, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVolume(); ok {
		_spec.AddField(entrainement.FieldVolume, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tentative(); ok {
		_spec.SetField(entrainement.FieldTentative, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTentative(); ok {
		_spec.AddField(entrainement.FieldTentative, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entrainement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntrainementUpdateOne is the builder for updating a single Entrainement entity.
type EntrainementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntrainementMutation
}

// SetVolume sets the "volume" field.
func (_u *EntrainementUpdateOne) SetVolume(v int) *EntrainementUpdateOne {
	_u.mutation.ResetVolume()
	_u.mutation.SetVolume(v)
	return _u
}

// SetNillableVolume sets the "volume" field if the given value is not nil.
func (_u *EntrainementUpdateOne) SetNillableVolume(v *int) *EntrainementUpdateOne {
	if v != nil {
		_u.SetVolume(*v)
	}
	return _u
}

// AddVolume adds value to the "volume" field.
func (_u *EntrainementUpdateOne) AddVolume(v int) *EntrainementUpdateOne {
	_u.mutation.AddVolume(v)
	return _u
}

// SetTentative sets the "tentative" field.
func (_u *EntrainementUpdateOne) SetTentative(v int) *EntrainementUpdateOne {
	_u.mutation.ResetTentative()
	_u.mutation.SetTentative(v)
	return _u
}

// SetNillableTentative sets the "tentative" field if the given value is not nil.
func (_u *EntrainementUpdateOne) SetNillableTentative(v *int) *EntrainementUpdateOne {
	if v != nil {
		_u.SetTentative(*v)
	}
	return _u
}

// AddTentative adds value to the "tentative" field.
func (_u *EntrainementUpdateOne) AddTentative(v int) *EntrainementUpdateOne {
	_u.mutation.AddTentative(v)
	return _u
}

// Mutation returns the EntrainementMutation object of the builder.
func (_u *EntrainementUpdateOne) Mutation() *EntrainementMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntrainementUpdate builder.
func (_u *EntrainementUpdateOne) Where(ps ...predicate.Entrainement) *EntrainementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntrainementUpdateOne) Select(field string, fields ...string) *EntrainementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Entrainement entity.
func (_u *EntrainementUpdateOne) Save(ctx context.Context) (*Entrainement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntrainementUpdateOne) SaveX(ctx context.Context) *Entrainement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntrainementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntrainementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntrainementUpdateOne) check() error {
	if v, ok := _u.mutation.Volume(); ok {
		if err := entrainement.VolumeValidator(v); err != nil {
			return &ValidationError{Name: "volume", err: fmt.Errorf(`ent: validator failed for field "Entrainement.volume": %w`, err)}
		}
	}
	return nil
}

func (_u *EntrainementUpdateOne) sqlSave(ctx context.Context) (_node *Entrainement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entrainement.Table, entrainement.Columns, sqlgraph.NewFieldSpec(entrainement.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Entrainement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entrainement.FieldID)
		for _, f := range fields {
			if !entrainement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entrainement.FieldID {
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
	if value, ok := _u.mutation.Volume(); ok {
		_spec.SetField(entrainement.FieldVolume, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVolume(); ok {
		_spec.AddField(entrainement.FieldVolume, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Tentative(); ok {
		_spec.SetField(entrainement.FieldTentative, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTentative(); ok {
		_spec.AddField(entrainement.FieldTentative, field.TypeInt, value)
	}
	_node = &Entrainement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entrainement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
