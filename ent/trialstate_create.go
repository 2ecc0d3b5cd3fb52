// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Tnecniv1/Calcul-Pixel/ent/trialstate"
)

// TrialStateCreate is the builder for creating a TrialState entity.
type TrialStateCreate struct {
	config
	mutation *TrialStateMutation
	hooks    []Hook
}

// SetStartedAtMs sets the "started_at_ms" field.
func (_c *TrialStateCreate) SetStartedAtMs(v int64) *TrialStateCreate {
	_c.mutation.SetStartedAtMs(v)
	return _c
}

// Mutation returns the TrialStateMutation object of the builder.
func (_c *TrialStateCreate) Mutation() *TrialStateMutation {
	return _c.mutation
}

// Save creates the TrialState in the database.
func (_c *TrialStateCreate) Save(ctx context.Context) (*TrialState, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrialStateCreate) SaveX(ctx context.Context) *TrialState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrialStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrialStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrialStateCreate) check() error {
	if _, ok := _c.mutation.StartedAtMs(); !ok {
		return &ValidationError{Name: "started_at_ms", err: errors.New(`ent: missing required field "TrialState.started_at_ms"`)}
	}
	return nil
}

func (_c *TrialStateCreate) sqlSave(ctx context.Context) (*TrialState, error) {
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

func (_c *TrialStateCreate) createSpec() (*TrialState, *sqlgraph.CreateSpec) {
	var (
		_node = &TrialState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trialstate.Table, sqlgraph.NewFieldSpec(trialstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StartedAtMs(); ok {
		_spec.SetField(trialstate.FieldStartedAtMs, field.TypeInt64, value)
		_node.StartedAtMs = value
	}
	return _node, _spec
}

// TrialStateCreateBulk is the builder for creating many TrialState entities in bulk.
type TrialStateCreateBulk struct {
	config
	err      error
	builders []*TrialStateCreate
}

// Save creates the TrialState entities in the database.
func (_c *TrialStateCreateBulk) Save(ctx context.Context) ([]*TrialState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrialState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrialStateMutation)
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
func (_c *TrialStateCreateBulk) SaveX(ctx context.Context) []*TrialState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrialStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrialStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
