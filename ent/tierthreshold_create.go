// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chainadvisory/chainadvisory-api/ent/tierthreshold"
)

// TierThresholdCreate is the builder for creating a TierThreshold entity.
type TierThresholdCreate struct {
	config
	mutation *TierThresholdMutation
	hooks    []Hook
}

// SetTier sets the "tier" field.
func (_c *TierThresholdCreate) SetTier(v tierthreshold.Tier) *TierThresholdCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetMinPoints sets the "min_points" field.
func (_c *TierThresholdCreate) SetMinPoints(v int) *TierThresholdCreate {
	_c.mutation.SetMinPoints(v)
	return _c
}

// SetMonthlyProjectLimit sets the "monthly_project_limit" field.
func (_c *TierThresholdCreate) SetMonthlyProjectLimit(v int) *TierThresholdCreate {
	_c.mutation.SetMonthlyProjectLimit(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TierThresholdCreate) SetUpdatedAt(v time.Time) *TierThresholdCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TierThresholdCreate) SetNillableUpdatedAt(v *time.Time) *TierThresholdCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the TierThresholdMutation object of the builder.
func (_c *TierThresholdCreate) Mutation() *TierThresholdMutation {
	return _c.mutation
}

// Save creates the TierThreshold in the database.
func (_c *TierThresholdCreate) Save(ctx context.Context) (*TierThreshold, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TierThresholdCreate) SaveX(ctx context.Context) *TierThreshold {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TierThresholdCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TierThresholdCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TierThresholdCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tierthreshold.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TierThresholdCreate) check() error {
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "TierThreshold.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := tierthreshold.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "TierThreshold.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinPoints(); !ok {
		return &ValidationError{Name: "min_points", err: errors.New(`ent: missing required field "TierThreshold.min_points"`)}
	}
	if v, ok := _c.mutation.MinPoints(); ok {
		if err := tierthreshold.MinPointsValidator(v); err != nil {
			return &ValidationError{Name: "min_points", err: fmt.Errorf(`ent: validator failed for field "TierThreshold.min_points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MonthlyProjectLimit(); !ok {
		return &ValidationError{Name: "monthly_project_limit", err: errors.New(`ent: missing required field "TierThreshold.monthly_project_limit"`)}
	}
	if v, ok := _c.mutation.MonthlyProjectLimit(); ok {
		if err := tierthreshold.MonthlyProjectLimitValidator(v); err != nil {
			return &ValidationError{Name: "monthly_project_limit", err: fmt.Errorf(`ent: validator failed for field "TierThreshold.monthly_project_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TierThreshold.updated_at"`)}
	}
	return nil
}

func (_c *TierThresholdCreate) sqlSave(ctx context.Context) (*TierThreshold, error) {
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

func (_c *TierThresholdCreate) createSpec() (*TierThreshold, *sqlgraph.CreateSpec) {
	var (
		_node = &TierThreshold{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tierthreshold.Table, sqlgraph.NewFieldSpec(tierthreshold.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(tierthreshold.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.MinPoints(); ok {
		_spec.SetField(tierthreshold.FieldMinPoints, field.TypeInt, value)
		_node.MinPoints = value
	}
	if value, ok := _c.mutation.MonthlyProjectLimit(); ok {
		_spec.SetField(tierthreshold.FieldMonthlyProjectLimit, field.TypeInt, value)
		_node.MonthlyProjectLimit = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tierthreshold.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TierThresholdCreateBulk is the builder for creating many TierThreshold entities in bulk.
type TierThresholdCreateBulk struct {
	config
	err      error
	builders []*TierThresholdCreate
}

// Save creates the TierThreshold entities in the database.
func (_c *TierThresholdCreateBulk) Save(ctx context.Context) ([]*TierThreshold, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TierThreshold, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TierThresholdMutation)
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
func (_c *TierThresholdCreateBulk) SaveX(ctx context.Context) []*TierThreshold {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TierThresholdCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TierThresholdCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
