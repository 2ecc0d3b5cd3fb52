// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Tnecniv1/Calcul-Pixel/ent/entrainement"
)

// EntrainementCreate is the builder for creating a Entrainement entity.
type EntrainementCreate struct {
	config
	mutation *EntrainementMutation
	hooks    []Hook
}

// SetVolume sets the "volume" field.
func (_c *EntrainementCreate) SetVolume(v int) *EntrainementCreate {
	_c.mutation.SetVolume(v)
	return _c
}

// SetTentative sets the "tentative" field.
func (_c *EntrainementCreate) SetTentative(v int) *EntrainementCreate {
	_c.mutation.SetTentative(v)
	return _c
}

// SetNillableTentative sets the "tentative" field if the given value is not nil.
func (_c *EntrainementCreate) SetNillableTentative(v *int) *EntrainementCreate {
	if v != nil {
		_c.SetTentative(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EntrainementCreate) SetCreatedAt(v time.Time) *EntrainementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EntrainementCreate) SetNillableCreatedAt(v *time.Time) *EntrainementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the EntrainementMutation object of the builder.
func (_c *EntrainementCreate) Mutation() *EntrainementMutation {
	return _c.mutation
}

// Save creates the Entrainement in the database.
func (_c *EntrainementCreate) Save(ctx context.Context) (*Entrainement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntrainementCreate) SaveX(ctx context.Context) *Entrainement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntrainementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntrainementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntrainementCreate) defaults() {
	if _, ok := _c.mutation.Tentative(); !ok {
		v := entrainement.DefaultTentative
		_c.mutation.SetTentative(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := entrainement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntrainementCreate) check() error {
	if _, ok := _c.mutation.Volume(); !ok {
		return &ValidationError{Name: "volume", err: errors.New(`ent: missing required field "Entrainement.volume"`)}
	}
	if v, ok := _c.mutation.Volume(); ok {
		if err := entrainement.VolumeValidator(v); err != nil {
			return &ValidationError{Name: "volume", err: fmt.Errorf(`ent: validator failed for field "Entrainement.volume": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tentative(); !ok {
		return &ValidationError{Name: "tentative", err: errors.New(`ent: missing required field "Entrainement.tentative"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Entrainement.created_at"`)}
	}
	return nil
}

func (_c *EntrainementCreate) sqlSave(ctx context.Context) (*Entrainement, error) {
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

func (_c *EntrainementCreate) createSpec() (*Entrainement, *sqlgraph.CreateSpec) {
	var (
		_node = &Entrainement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entrainement.Table, sqlgraph.NewFieldSpec(entrainement.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Volume(); ok {
		_spec.SetField(entrainement.FieldVolume, field.TypeInt, value)
		_node.Volume = value
	}
	if value, ok := _c.mutation.Tentative(); ok {
		_spec.SetField(entrainement.FieldTentative, field.TypeInt, value)
		_node.Tentative = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(entrainement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EntrainementCreateBulk is the builder for creating many Entrainement entities in bulk.
type EntrainementCreateBulk struct {
	config
	err      error
	builders []*EntrainementCreate
}

// Save creates the Entrainement entities in the database.
func (_c *EntrainementCreateBulk) Save(ctx context.Context) ([]*Entrainement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Entrainement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntrainementMutation)
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
func (_c *EntrainementCreateBulk) SaveX(ctx context.Context) []*Entrainement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntrainementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntrainementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
