// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chainadvisory/chainadvisory-api/ent/achievement"
	"github.com/chainadvisory/chainadvisory-api/ent/reputationrecord"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// ReputationRecordCreate is the builder for creating a ReputationRecord entity.
type ReputationRecordCreate struct {
	config
	mutation *ReputationRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ReputationRecordCreate) SetUserID(v int) *ReputationRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTotalPoints sets the "total_points" field.
func (_c *ReputationRecordCreate) SetTotalPoints(v int) *ReputationRecordCreate {
	_c.mutation.SetTotalPoints(v)
	return _c
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_c *ReputationRecordCreate) SetNillableTotalPoints(v *int) *ReputationRecordCreate {
	if v != nil {
		_c.SetTotalPoints(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *ReputationRecordCreate) SetLevel(v int) *ReputationRecordCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *ReputationRecordCreate) SetNillableLevel(v *int) *ReputationRecordCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetProjectsSubmitted sets the "projects_submitted" field.
func (_c *ReputationRecordCreate) SetProjectsSubmitted(v int) *ReputationRecordCreate {
	_c.mutation.SetProjectsSubmitted(v)
	return _c
}

// SetNillableProjectsSubmitted sets the "projects_submitted" field if the given value is not nil.
func (_c *ReputationRecordCreate) SetNillableProjectsSubmitted(v *int) *ReputationRecordCreate {
	if v != nil {
		_c.SetProjectsSubmitted(*v)
	}
	return _c
}

// SetAverageRating sets the "average_rating" field.
func (_c *ReputationRecordCreate) SetAverageRating(v float64) *ReputationRecordCreate {
	_c.mutation.SetAverageRating(v)
	return _c
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (_c *ReputationRecordCreate) SetNillableAverageRating(v *float64) *ReputationRecordCreate {
	if v != nil {
		_c.SetAverageRating(*v)
	}
	return _c
}

// SetCompletionRate sets the "completion_rate" field.
func (_c *ReputationRecordCreate) SetCompletionRate(v float64) *ReputationRecordCreate {
	_c.mutation.SetCompletionRate(v)
	return _c
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_c *ReputationRecordCreate) SetNillableCompletionRate(v *float64) *ReputationRecordCreate {
	if v != nil {
		_c.SetCompletionRate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReputationRecordCreate) SetCreatedAt(v time.Time) *ReputationRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReputationRecordCreate) SetNillableCreatedAt(v *time.Time) *ReputationRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReputationRecordCreate) SetUpdatedAt(v time.Time) *ReputationRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReputationRecordCreate) SetNillableUpdatedAt(v *time.Time) *ReputationRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *ReputationRecordCreate) SetUser(v *User) *ReputationRecordCreate {
	return _c.SetUserID(v.ID)
}

// AddAchievementIDs adds the "achievements" edge to the Achievement entity by IDs.
func (_c *ReputationRecordCreate) AddAchievementIDs(ids ...int) *ReputationRecordCreate {
	_c.mutation.AddAchievementIDs(ids...)
	return _c
}

// AddAchievements adds the "achievements" edges to the Achievement entity.
func (_c *ReputationRecordCreate) AddAchievements(v ...*Achievement) *ReputationRecordCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAchievementIDs(ids...)
}

// Mutation returns the ReputationRecordMutation object of the builder.
func (_c *ReputationRecordCreate) Mutation() *ReputationRecordMutation {
	return _c.mutation
}

// Save creates the ReputationRecord in the database.
func (_c *ReputationRecordCreate) Save(ctx context.Context) (*ReputationRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReputationRecordCreate) SaveX(ctx context.Context) *ReputationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReputationRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReputationRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReputationRecordCreate) defaults() {
	if _, ok := _c.mutation.TotalPoints(); !ok {
		v := reputationrecord.DefaultTotalPoints
		_c.mutation.SetTotalPoints(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := reputationrecord.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.ProjectsSubmitted(); !ok {
		v := reputationrecord.DefaultProjectsSubmitted
		_c.mutation.SetProjectsSubmitted(v)
	}
	if _, ok := _c.mutation.AverageRating(); !ok {
		v := reputationrecord.DefaultAverageRating
		_c.mutation.SetAverageRating(v)
	}
	if _, ok := _c.mutation.CompletionRate(); !ok {
		v := reputationrecord.DefaultCompletionRate
		_c.mutation.SetCompletionRate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reputationrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reputationrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReputationRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReputationRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := reputationrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReputationRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalPoints(); !ok {
		return &ValidationError{Name: "total_points", err: errors.New(`ent: missing required field "ReputationRecord.total_points"`)}
	}
	if v, ok := _c.mutation.TotalPoints(); ok {
		if err := reputationrecord.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "ReputationRecord.total_points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "ReputationRecord.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := reputationrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ReputationRecord.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProjectsSubmitted(); !ok {
		return &ValidationError{Name: "projects_submitted", err: errors.New(`ent: missing required field "ReputationRecord.projects_submitted"`)}
	}
	if v, ok := _c.mutation.ProjectsSubmitted(); ok {
		if err := reputationrecord.ProjectsSubmittedValidator(v); err != nil {
			return &ValidationError{Name: "projects_submitted", err: fmt.Errorf(`ent: validator failed for field "ReputationRecord.projects_submitted": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AverageRating(); !ok {
		return &ValidationError{Name: "average_rating", err: errors.New(`ent: missing required field "ReputationRecord.average_rating"`)}
	}
	if _, ok := _c.mutation.CompletionRate(); !ok {
		return &ValidationError{Name: "completion_rate", err: errors.New(`ent: missing required field "ReputationRecord.completion_rate"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReputationRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReputationRecord.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "ReputationRecord.user"`)}
	}
	return nil
}

func (_c *ReputationRecordCreate) sqlSave(ctx context.Context) (*ReputationRecord, error) {
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

func (_c *ReputationRecordCreate) createSpec() (*ReputationRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ReputationRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reputationrecord.Table, sqlgraph.NewFieldSpec(reputationrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TotalPoints(); ok {
		_spec.SetField(reputationrecord.FieldTotalPoints, field.TypeInt, value)
		_node.TotalPoints = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(reputationrecord.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.ProjectsSubmitted(); ok {
		_spec.SetField(reputationrecord.FieldProjectsSubmitted, field.TypeInt, value)
		_node.ProjectsSubmitted = value
	}
	if value, ok := _c.mutation.AverageRating(); ok {
		_spec.SetField(reputationrecord.FieldAverageRating, field.TypeFloat64, value)
		_node.AverageRating = value
	}
	if value, ok := _c.mutation.CompletionRate(); ok {
		_spec.SetField(reputationrecord.FieldCompletionRate, field.TypeFloat64, value)
		_node.CompletionRate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reputationrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reputationrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   reputationrecord.UserTable,
			Columns: []string{reputationrecord.UserColumn},
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
	if nodes := _c.mutation.AchievementsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   reputationrecord.AchievementsTable,
			Columns: []string{reputationrecord.AchievementsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReputationRecordCreateBulk is the builder for creating many ReputationRecord entities in bulk.
type ReputationRecordCreateBulk struct {
	config
	err      error
	builders []*ReputationRecordCreate
}

// Save creates the ReputationRecord entities in the database.
func (_c *ReputationRecordCreateBulk) Save(ctx context.Context) ([]*ReputationRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReputationRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReputationRecordMutation)
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
func (_c *ReputationRecordCreateBulk) SaveX(ctx context.Context) []*ReputationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReputationRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReputationRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
