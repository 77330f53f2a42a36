// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chainadvisory/chainadvisory-api/ent/expertapplication"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// ExpertApplicationCreate is the builder for creating a ExpertApplication entity.
type ExpertApplicationCreate struct {
	config
	mutation *ExpertApplicationMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ExpertApplicationCreate) SetUserID(v int) *ExpertApplicationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetVerificationStatus sets the "verification_status" field.
func (_c *ExpertApplicationCreate) SetVerificationStatus(v expertapplication.VerificationStatus) *ExpertApplicationCreate {
	_c.mutation.SetVerificationStatus(v)
	return _c
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_c *ExpertApplicationCreate) SetNillableVerificationStatus(v *expertapplication.VerificationStatus) *ExpertApplicationCreate {
	if v != nil {
		_c.SetVerificationStatus(*v)
	}
	return _c
}

// SetSpecialization sets the "specialization" field.
func (_c *ExpertApplicationCreate) SetSpecialization(v string) *ExpertApplicationCreate {
	_c.mutation.SetSpecialization(v)
	return _c
}

// SetMotivation sets the "motivation" field.
func (_c *ExpertApplicationCreate) SetMotivation(v string) *ExpertApplicationCreate {
	_c.mutation.SetMotivation(v)
	return _c
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_c *ExpertApplicationCreate) SetNillableMotivation(v *string) *ExpertApplicationCreate {
	if v != nil {
		_c.SetMotivation(*v)
	}
	return _c
}

// SetReputationPoints sets the "reputation_points" field.
func (_c *ExpertApplicationCreate) SetReputationPoints(v int) *ExpertApplicationCreate {
	_c.mutation.SetReputationPoints(v)
	return _c
}

// SetNillableReputationPoints sets the "reputation_points" field if the given value is not nil.
func (_c *ExpertApplicationCreate) SetNillableReputationPoints(v *int) *ExpertApplicationCreate {
	if v != nil {
		_c.SetReputationPoints(*v)
	}
	return _c
}

// SetExpertTier sets the "expert_tier" field.
func (_c *ExpertApplicationCreate) SetExpertTier(v expertapplication.ExpertTier) *ExpertApplicationCreate {
	_c.mutation.SetExpertTier(v)
	return _c
}

// SetNillableExpertTier sets the "expert_tier" field if the given value is not nil.
func (_c *ExpertApplicationCreate) SetNillableExpertTier(v *expertapplication.ExpertTier) *ExpertApplicationCreate {
	if v != nil {
		_c.SetExpertTier(*v)
	}
	return _c
}

// SetAccuracyRate sets the "accuracy_rate" field.
func (_c *ExpertApplicationCreate) SetAccuracyRate(v float64) *ExpertApplicationCreate {
	_c.mutation.SetAccuracyRate(v)
	return _c
}

// SetNillableAccuracyRate sets the "accuracy_rate" field if the given value is not nil.
func (_c *ExpertApplicationCreate) SetNillableAccuracyRate(v *float64) *ExpertApplicationCreate {
	if v != nil {
		_c.SetAccuracyRate(*v)
	}
	return _c
}

// SetReviewNotes sets the "review_notes" field.
func (_c *ExpertApplicationCreate) SetReviewNotes(v string) *ExpertApplicationCreate {
	_c.mutation.SetReviewNotes(v)
	return _c
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_c *ExpertApplicationCreate) SetNillableReviewNotes(v *string) *ExpertApplicationCreate {
	if v != nil {
		_c.SetReviewNotes(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *ExpertApplicationCreate) SetReviewedAt(v time.Time) *ExpertApplicationCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *ExpertApplicationCreate) SetNillableReviewedAt(v *time.Time) *ExpertApplicationCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExpertApplicationCreate) SetCreatedAt(v time.Time) *ExpertApplicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExpertApplicationCreate) SetNillableCreatedAt(v *time.Time) *ExpertApplicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExpertApplicationCreate) SetUpdatedAt(v time.Time) *ExpertApplicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExpertApplicationCreate) SetNillableUpdatedAt(v *time.Time) *ExpertApplicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *ExpertApplicationCreate) SetUser(v *User) *ExpertApplicationCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the ExpertApplicationMutation object of the builder.
func (_c *ExpertApplicationCreate) Mutation() *ExpertApplicationMutation {
	return _c.mutation
}

// Save creates the ExpertApplication in the database.
func (_c *ExpertApplicationCreate) Save(ctx context.Context) (*ExpertApplication, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExpertApplicationCreate) SaveX(ctx context.Context) *ExpertApplication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpertApplicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpertApplicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExpertApplicationCreate) defaults() {
	if _, ok := _c.mutation.VerificationStatus(); !ok {
		v := expertapplication.DefaultVerificationStatus
		_c.mutation.SetVerificationStatus(v)
	}
	if _, ok := _c.mutation.ReputationPoints(); !ok {
		v := expertapplication.DefaultReputationPoints
		_c.mutation.SetReputationPoints(v)
	}
	if _, ok := _c.mutation.ExpertTier(); !ok {
		v := expertapplication.DefaultExpertTier
		_c.mutation.SetExpertTier(v)
	}
	if _, ok := _c.mutation.AccuracyRate(); !ok {
		v := expertapplication.DefaultAccuracyRate
		_c.mutation.SetAccuracyRate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := expertapplication.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := expertapplication.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExpertApplicationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExpertApplication.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := expertapplication.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VerificationStatus(); !ok {
		return &ValidationError{Name: "verification_status", err: errors.New(`ent: missing required field "ExpertApplication.verification_status"`)}
	}
	if v, ok := _c.mutation.VerificationStatus(); ok {
		if err := expertapplication.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.verification_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Specialization(); !ok {
		return &ValidationError{Name: "specialization", err: errors.New(`ent: missing required field "ExpertApplication.specialization"`)}
	}
	if v, ok := _c.mutation.Specialization(); ok {
		if err := expertapplication.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.specialization": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReputationPoints(); !ok {
		return &ValidationError{Name: "reputation_points", err: errors.New(`ent: missing required field "ExpertApplication.reputation_points"`)}
	}
	if v, ok := _c.mutation.ReputationPoints(); ok {
		if err := expertapplication.ReputationPointsValidator(v); err != nil {
			return &ValidationError{Name: "reputation_points", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.reputation_points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpertTier(); !ok {
		return &ValidationError{Name: "expert_tier", err: errors.New(`ent: missing required field "ExpertApplication.expert_tier"`)}
	}
	if v, ok := _c.mutation.ExpertTier(); ok {
		if err := expertapplication.ExpertTierValidator(v); err != nil {
			return &ValidationError{Name: "expert_tier", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.expert_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccuracyRate(); !ok {
		return &ValidationError{Name: "accuracy_rate", err: errors.New(`ent: missing required field "ExpertApplication.accuracy_rate"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExpertApplication.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExpertApplication.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "ExpertApplication.user"`)}
	}
	return nil
}

func (_c *ExpertApplicationCreate) sqlSave(ctx context.Context) (*ExpertApplication, error) {
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

func (_c *ExpertApplicationCreate) createSpec() (*ExpertApplication, *sqlgraph.CreateSpec) {
	var (
		_node = &ExpertApplication{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(expertapplication.Table, sqlgraph.NewFieldSpec(expertapplication.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.VerificationStatus(); ok {
		_spec.SetField(expertapplication.FieldVerificationStatus, field.TypeEnum, value)
		_node.VerificationStatus = value
	}
	if value, ok := _c.mutation.Specialization(); ok {
		_spec.SetField(expertapplication.FieldSpecialization, field.TypeString, value)
		_node.Specialization = value
	}
	if value, ok := _c.mutation.Motivation(); ok {
		_spec.SetField(expertapplication.FieldMotivation, field.TypeString, value)
		_node.Motivation = value
	}
	if value, ok := _c.mutation.ReputationPoints(); ok {
		_spec.SetField(expertapplication.FieldReputationPoints, field.TypeInt, value)
		_node.ReputationPoints = value
	}
	if value, ok := _c.mutation.ExpertTier(); ok {
		_spec.SetField(expertapplication.FieldExpertTier, field.TypeEnum, value)
		_node.ExpertTier = value
	}
	if value, ok := _c.mutation.AccuracyRate(); ok {
		_spec.SetField(expertapplication.FieldAccuracyRate, field.TypeFloat64, value)
		_node.AccuracyRate = value
	}
	if value, ok := _c.mutation.ReviewNotes(); ok {
		_spec.SetField(expertapplication.FieldReviewNotes, field.TypeString, value)
		_node.ReviewNotes = value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(expertapplication.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(expertapplication.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(expertapplication.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   expertapplication.UserTable,
			Columns: []string{expertapplication.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExpertApplicationCreateBulk is the builder for creating many ExpertApplication entities in bulk.
type ExpertApplicationCreateBulk struct {
	config
	err      error
	builders []*ExpertApplicationCreate
}

// Save creates the ExpertApplication entities in the database.
func (_c *ExpertApplicationCreateBulk) Save(ctx context.Context) ([]*ExpertApplication, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExpertApplication, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExpertApplicationMutation)
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
func (_c *ExpertApplicationCreateBulk) SaveX(ctx context.Context) []*ExpertApplication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpertApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpertApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
