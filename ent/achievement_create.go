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
)

// AchievementCreate is the builder for creating a Achievement entity.
type AchievementCreate struct {
	config
	mutation *AchievementMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *AchievementCreate) SetTitle(v string) *AchievementCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *AchievementCreate) SetDescription(v string) *AchievementCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableDescription(v *string) *AchievementCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPointsAwarded sets the "points_awarded" field.
func (_c *AchievementCreate) SetPointsAwarded(v int) *AchievementCreate {
	_c.mutation.SetPointsAwarded(v)
	return _c
}

// SetAwardedAt sets the "awarded_at" field.
func (_c *AchievementCreate) SetAwardedAt(v time.Time) *AchievementCreate {
	_c.mutation.SetAwardedAt(v)
	return _c
}

// SetNillableAwardedAt sets the "awarded_at" field if the given value is not nil.
func (_c *AchievementCreate) SetNillableAwardedAt(v *time.Time) *AchievementCreate {
	if v != nil {
		_c.SetAwardedAt(*v)
	}
	return _c
}

// SetRecordID sets the "record" edge to the ReputationRecord entity by ID.
func (_c *AchievementCreate) SetRecordID(id int) *AchievementCreate {
	_c.mutation.SetRecordID(id)
	return _c
}

// SetRecord sets the "record" edge to the ReputationRecord entity.
func (_c *AchievementCreate) SetRecord(v *ReputationRecord) *AchievementCreate {
	return _c.SetRecordID(v.ID)
}

// Mutation returns the AchievementMutation object of the builder.
func (_c *AchievementCreate) Mutation() *AchievementMutation {
	return _c.mutation
}

// Save creates the Achievement in the database.
func (_c *AchievementCreate) Save(ctx context.Context) (*Achievement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AchievementCreate) SaveX(ctx context.Context) *Achievement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AchievementCreate) defaults() {
	if _, ok := _c.mutation.AwardedAt(); !ok {
		v := achievement.DefaultAwardedAt()
		_c.mutation.SetAwardedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AchievementCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Achievement.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := achievement.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Achievement.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PointsAwarded(); !ok {
		return &ValidationError{Name: "points_awarded", err: errors.New(`ent: missing required field "Achievement.points_awarded"`)}
	}
	if v, ok := _c.mutation.PointsAwarded(); ok {
		if err := achievement.PointsAwardedValidator(v); err != nil {
			return &ValidationError{Name: "points_awarded", err: fmt.Errorf(`ent: validator failed for field "Achievement.points_awarded": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AwardedAt(); !ok {
		return &ValidationError{Name: "awarded_at", err: errors.New(`ent: missing required field "Achievement.awarded_at"`)}
	}
	if len(_c.mutation.RecordIDs()) == 0 {
		return &ValidationError{Name: "record", err: errors.New(`ent: missing required edge "Achievement.record"`)}
	}
	return nil
}

func (_c *AchievementCreate) sqlSave(ctx context.Context) (*Achievement, error) {
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

func (_c *AchievementCreate) createSpec() (*Achievement, *sqlgraph.CreateSpec) {
	var (
		_node = &Achievement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(achievement.Table, sqlgraph.NewFieldSpec(achievement.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(achievement.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(achievement.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.PointsAwarded(); ok {
		_spec.SetField(achievement.FieldPointsAwarded, field.TypeInt, value)
		_node.PointsAwarded = value
	}
	if value, ok := _c.mutation.AwardedAt(); ok {
		_spec.SetField(achievement.FieldAwardedAt, field.TypeTime, value)
		_node.AwardedAt = value
	}
	if nodes := _c.mutation.RecordIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   achievement.RecordTable,
			Columns: []string{achievement.RecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reputationrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.reputation_record_achievements = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AchievementCreateBulk is the builder for creating many Achievement entities in bulk.
type AchievementCreateBulk struct {
	config
	err      error
	builders []*AchievementCreate
}

// Save creates the Achievement entities in the database.
func (_c *AchievementCreateBulk) Save(ctx context.Context) ([]*Achievement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Achievement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AchievementMutation)
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
func (_c *AchievementCreateBulk) SaveX(ctx context.Context) []*Achievement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
