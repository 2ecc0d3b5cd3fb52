// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Tnecniv1/Calcul-Pixel/ent/badgeunlock"
)

// BadgeUnlockCreate is the builder for creating a BadgeUnlock entity.
type BadgeUnlockCreate struct {
	config
	mutation *BadgeUnlockMutation
	hooks    []Hook
}

// SetBadgeID sets the "badge_id" field.
func (_c *BadgeUnlockCreate) SetBadgeID(v string) *BadgeUnlockCreate {
	_c.mutation.SetBadgeID(v)
	return _c
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_c *BadgeUnlockCreate) SetUnlockedAt(v time.Time) *BadgeUnlockCreate {
	_c.mutation.SetUnlockedAt(v)
	return _c
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_c *BadgeUnlockCreate) SetNillableUnlockedAt(v *time.Time) *BadgeUnlockCreate {
	if v != nil {
		_c.SetUnlockedAt(*v)
	}
	return _c
}

// Mutation returns the BadgeUnlockMutation object of the builder.
func (_c *BadgeUnlockCreate) Mutation() *BadgeUnlockMutation {
	return _c.mutation
}

// Save creates the BadgeUnlock in the database.
func (_c *BadgeUnlockCreate) Save(ctx context.Context) (*BadgeUnlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BadgeUnlockCreate) SaveX(ctx context.Context) *BadgeUnlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeUnlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeUnlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BadgeUnlockCreate) defaults() {
	if _, ok := _c.mutation.UnlockedAt(); !ok {
		v := badgeunlock.DefaultUnlockedAt()
		_c.mutation.SetUnlockedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BadgeUnlockCreate) check() error {
	if _, ok := _c.mutation.BadgeID(); !ok {
		return &ValidationError{Name: "badge_id", err: errors.New(`ent: missing required field "BadgeUnlock.badge_id"`)}
	}
	if v, ok := _c.mutation.BadgeID(); ok {
		if err := badgeunlock.BadgeIDValidator(v); err != nil {
			return &ValidationError{Name: "badge_id", err: fmt.Errorf(`ent: validator failed for field "BadgeUnlock.badge_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnlockedAt(); !ok {
		return &ValidationError{Name: "unlocked_at", err: errors.New(`ent: missing required field "BadgeUnlock.unlocked_at"`)}
	}
	return nil
}

func (_c *BadgeUnlockCreate) sqlSave(ctx context.Context) (*BadgeUnlock, error) {
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

func (_c *BadgeUnlockCreate) createSpec() (*BadgeUnlock, *sqlgraph.CreateSpec) {
	var (
		_node = &BadgeUnlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(badgeunlock.Table, sqlgraph.NewFieldSpec(badgeunlock.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.BadgeID(); ok {
		_spec.SetField(badgeunlock.FieldBadgeID, field.TypeString, value)
		_node.BadgeID = value
	}
	if value, ok := _c.mutation.UnlockedAt(); ok {
		_spec.SetField(badgeunlock.FieldUnlockedAt, field.TypeTime, value)
		_node.UnlockedAt = value
	}
	return _node, _spec
}

// BadgeUnlockCreateBulk is the builder for creating many BadgeUnlock entities in bulk.
type BadgeUnlockCreateBulk struct {
	config
	err      error
	builders []*BadgeUnlockCreate
}

// Save creates the BadgeUnlock entities in the database.
func (_c *BadgeUnlockCreateBulk) Save(ctx context.Context) ([]*BadgeUnlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BadgeUnlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BadgeUnlockMutation)
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
func (_c *BadgeUnlockCreateBulk) SaveX(ctx context.Context) []*BadgeUnlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeUnlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeUnlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
