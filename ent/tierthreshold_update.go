// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chainadvisory/chainadvisory-api/ent/predicate"
	"github.com/chainadvisory/chainadvisory-api/ent/tierthreshold"
)

// TierThresholdUpdate is the builder for updating TierThreshold entities.
type TierThresholdUpdate struct {
	config
	hooks    []Hook
	mutation *TierThresholdMutation
}

// Where appends a list predicates to the TierThresholdUpdate builder.
func (_u *TierThresholdUpdate) Where(ps ...predicate.TierThreshold) *TierThresholdUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTier sets the "tier" field.
func (_u *TierThresholdUpdate) SetTier(v tierthreshold.Tier) *TierThresholdUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *TierThresholdUpdate) SetNillableTier(v *tierthreshold.Tier) *TierThresholdUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetMinPoints sets the "min_points" field.
func (_u *TierThresholdUpdate) SetMinPoints(v int) *TierThresholdUpdate {
	_u.mutation.ResetMinPoints()
	_u.mutation.SetMinPoints(v)
	return _u
}

// SetNillableMinPoints sets the "min_points" field if the given value is not nil.
func (_u *TierThresholdUpdate) SetNillableMinPoints(v *int) *TierThresholdUpdate {
	if v != nil {
		_u.SetMinPoints(*v)
	}
	return _u
}

// AddMinPoints adds value to the "min_points" field.
func (_u *TierThresholdUpdate) AddMinPoints(v int) *TierThresholdUpdate {
	_u.mutation.AddMinPoints(v)
	return _u
}

// SetMonthlyProjectLimit sets the "monthly_project_limit" field.
func (_u *TierThresholdUpdate) SetMonthlyProjectLimit(v int) *TierThresholdUpdate {
	_u.mutation.ResetMonthlyProjectLimit()
	_u.mutation.SetMonthlyProjectLimit(v)
	return _u
}

// SetNillableMonthlyProjectLimit sets the "monthly_project_limit" field if the given value is not nil.
func (_u *TierThresholdUpdate) SetNillableMonthlyProjectLimit(v *int) *TierThresholdUpdate {
	if v != nil {
		_u.SetMonthlyProjectLimit(*v)
	}
	return _u
}

// AddMonthlyProjectLimit adds value to the "monthly_project_limit" field.
func (_u *TierThresholdUpdate) AddMonthlyProjectLimit(v int) *TierThresholdUpdate {
	_u.mutation.AddMonthlyProjectLimit(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TierThresholdUpdate) SetUpdatedAt(v time.Time) *TierThresholdUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TierThresholdMutation object of the builder.
func (_u *TierThresholdUpdate) Mutation() *TierThresholdMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TierThresholdUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TierThresholdUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TierThresholdUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TierThresholdUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TierThresholdUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tierthreshold.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TierThresholdUpdate) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := tierthreshold.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "TierThreshold.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinPoints(); ok {
		if err := tierthreshold.MinPointsValidator(v); err != nil {
			return &ValidationError{Name: "min_points", err: fmt.Errorf(`ent: validator failed for field "TierThreshold.min_points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MonthlyProjectLimit(); ok {
		if err := tierthreshold.MonthlyProjectLimitValidator(v); err != nil {
			return &ValidationError{Name: "monthly_project_limit", err: fmt.Errorf(`ent: validator failed for field "TierThreshold.monthly_project_limit": %w`, err)}
		}
	}
	return nil
}

func (_u *TierThresholdUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tierthreshold.Table, tierthreshold.Columns, sqlgraph.NewFieldSpec(tierthreshold.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(tierthreshold.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MinPoints(); ok {
		_spec.SetField(tierthreshold.FieldMinPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinPoints(); ok {
		_spec.AddField(tierthreshold.FieldMinPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MonthlyProjectLimit(); ok {
		_spec.SetField(tierthreshold.FieldMonthlyProjectLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonthlyProjectLimit(); ok {
		_spec.AddField(tierthreshold.FieldMonthlyProjectLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tierthreshold.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tierthreshold.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TierThresholdUpdateOne is the builder for updating a single TierThreshold entity.
type TierThresholdUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TierThresholdMutation
}

// SetTier sets the "tier" field.
func (_u *TierThresholdUpdateOne) SetTier(v tierthreshold.Tier) *TierThresholdUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *TierThresholdUpdateOne) SetNillableTier(v *tierthreshold.Tier) *TierThresholdUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetMinPoints sets the "min_points" field.
func (_u *TierThresholdUpdateOne) SetMinPoints(v int) *TierThresholdUpdateOne {
	_u.mutation.ResetMinPoints()
	_u.mutation.SetMinPoints(v)
	return _u
}

// SetNillableMinPoints sets the "min_points" field if the given value is not nil.
func (_u *TierThresholdUpdateOne) SetNillableMinPoints(v *int) *TierThresholdUpdateOne {
	if v != nil {
		_u.SetMinPoints(*v)
	}
	return _u
}

// AddMinPoints adds value to the "min_points" field.
func (_u *TierThresholdUpdateOne) AddMinPoints(v int) *TierThresholdUpdateOne {
	_u.mutation.AddMinPoints(v)
	return _u
}

// SetMonthlyProjectLimit sets the "monthly_project_limit" field.
func (_u *TierThresholdUpdateOne) SetMonthlyProjectLimit(v int) *TierThresholdUpdateOne {
	_u.mutation.ResetMonthlyProjectLimit()
	_u.mutation.SetMonthlyProjectLimit(v)
	return _u
}

// SetNillableMonthlyProjectLimit sets the "monthly_project_limit" field if the given value is not nil.
func (_u *TierThresholdUpdateOne) SetNillableMonthlyProjectLimit(v *int) *TierThresholdUpdateOne {
	if v != nil {
		_u.SetMonthlyProjectLimit(*v)
	}
	return _u
}

// AddMonthlyProjectLimit adds value to the "monthly_project_limit" field.
func (_u *TierThresholdUpdateOne) AddMonthlyProjectLimit(v int) *TierThresholdUpdateOne {
	_u.mutation.AddMonthlyProjectLimit(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TierThresholdUpdateOne) SetUpdatedAt(v time.Time) *TierThresholdUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TierThresholdMutation object of the builder.
func (_u *TierThresholdUpdateOne) Mutation() *TierThresholdMutation {
	return _u.mutation
}

// Where appends a list predicates to the TierThresholdUpdate builder.
func (_u *TierThresholdUpdateOne) Where(ps ...predicate.TierThreshold) *TierThresholdUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TierThresholdUpdateOne) Select(field string, fields ...string) *TierThresholdUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TierThreshold entity.
func (_u *TierThresholdUpdateOne) Save(ctx context.Context) (*TierThreshold, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TierThresholdUpdateOne) SaveX(ctx context.Context) *TierThreshold {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TierThresholdUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TierThresholdUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TierThresholdUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tierthreshold.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TierThresholdUpdateOne) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := tierthreshold.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "TierThreshold.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MinPoints(); ok {
		if err := tierthreshold.MinPointsValidator(v); err != nil {
			return &ValidationError{Name: "min_points", err: fmt.Errorf(`ent: validator failed for field "TierThreshold.min_points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MonthlyProjectLimit(); ok {
		if err := tierthreshold.MonthlyProjectLimitValidator(v); err != nil {
			return &ValidationError{Name: "monthly_project_limit", err: fmt.Errorf(`ent: validator failed for field "TierThreshold.monthly_project_limit": %w`, err)}
		}
	}
	return nil
}

func (_u *TierThresholdUpdateOne) sqlSave(ctx context.Context) (_node *TierThreshold, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tierthreshold.Table, tierthreshold.Columns, sqlgraph.NewFieldSpec(tierthreshold.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TierThreshold.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tierthreshold.FieldID)
		for _, f := range fields {
			if !tierthreshold.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tierthreshold.FieldID {
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
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(tierthreshold.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MinPoints(); ok {
		_spec.SetField(tierthreshold.FieldMinPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinPoints(); ok {
		_spec.AddField(tierthreshold.FieldMinPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MonthlyProjectLimit(); ok {
		_spec.SetField(tierthreshold.FieldMonthlyProjectLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonthlyProjectLimit(); ok {
		_spec.AddField(tierthreshold.FieldMonthlyProjectLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tierthreshold.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TierThreshold{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tierthreshold.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
