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
	"github.com/chainadvisory/chainadvisory-api/ent/achievement"
	"github.com/chainadvisory/chainadvisory-api/ent/predicate"
	"github.com/chainadvisory/chainadvisory-api/ent/reputationrecord"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// ReputationRecordUpdate is the builder for updating ReputationRecord entities.
type ReputationRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ReputationRecordMutation
}

// Where appends a list predicates to the ReputationRecordUpdate builder.
func (_u *ReputationRecordUpdate) Where(ps ...predicate.ReputationRecord) *ReputationRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReputationRecordUpdate) SetUserID(v int) *ReputationRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReputationRecordUpdate) SetNillableUserID(v *int) *ReputationRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *ReputationRecordUpdate) SetTotalPoints(v int) *ReputationRecordUpdate {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *ReputationRecordUpdate) SetNillableTotalPoints(v *int) *ReputationRecordUpdate {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *ReputationRecordUpdate) AddTotalPoints(v int) *ReputationRecordUpdate {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *ReputationRecordUpdate) SetLevel(v int) *ReputationRecordUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ReputationRecordUpdate) SetNillableLevel(v *int) *ReputationRecordUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ReputationRecordUpdate) AddLevel(v int) *ReputationRecordUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetProjectsSubmitted sets the "projects_submitted" field.
func (_u *ReputationRecordUpdate) SetProjectsSubmitted(v int) *ReputationRecordUpdate {
	_u.mutation.ResetProjectsSubmitted()
	_u.mutation.SetProjectsSubmitted(v)
	return _u
}

// SetNillableProjectsSubmitted sets the "projects_submitted" field if the given value is not nil.
func (_u *ReputationRecordUpdate) SetNillableProjectsSubmitted(v *int) *ReputationRecordUpdate {
	if v != nil {
		_u.SetProjectsSubmitted(*v)
	}
	return _u
}

// AddProjectsSubmitted adds value to the "projects_submitted" field.
func (_u *ReputationRecordUpdate) AddProjectsSubmitted(v int) *ReputationRecordUpdate {
	_u.mutation.AddProjectsSubmitted(v)
	return _u
}

// SetAverageRating sets the "average_rating" field.
func (_u *ReputationRecordUpdate) SetAverageRating(v float64) *ReputationRecordUpdate {
	_u.mutation.ResetAverageRating()
	_u.mutation.SetAverageRating(v)
	return _u
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (_u *ReputationRecordUpdate) SetNillableAverageRating(v *float64) *ReputationRecordUpdate {
	if v != nil {
		_u.SetAverageRating(*v)
	}
	return _u
}

// AddAverageRating adds value to the "average_rating" field.
func (_u *ReputationRecordUpdate) AddAverageRating(v float64) *ReputationRecordUpdate {
	_u.mutation.AddAverageRating(v)
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *ReputationRecordUpdate) SetCompletionRate(v float64) *ReputationRecordUpdate {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *ReputationRecordUpdate) SetNillableCompletionRate(v *float64) *ReputationRecordUpdate {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *ReputationRecordUpdate) AddCompletionRate(v float64) *ReputationRecordUpdate {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReputationRecordUpdate) SetUpdatedAt(v time.Time) *ReputationRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ReputationRecordUpdate) SetUser(v *User) *ReputationRecordUpdate {
	return _u.SetUserID(v.ID)
}

// AddAchievementIDs adds the "achievements" edge to the Achievement entity by IDs.
func (_u *ReputationRecordUpdate) AddAchievementIDs(ids ...int) *ReputationRecordUpdate {
	_u.mutation.AddAchievementIDs(ids...)
	return _u
}

// AddAchievements adds the "achievements" edges to the Achievement entity.
func (_u *ReputationRecordUpdate) AddAchievements(v ...*Achievement) *ReputationRecordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAchievementIDs(ids...)
}

// Mutation returns the ReputationRecordMutation object of the builder.
func (_u *ReputationRecordUpdate) Mutation() *ReputationRecordMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ReputationRecordUpdate) ClearUser() *ReputationRecordUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearAchievements clears all "achievements" edges to the Achievement entity.
func (_u *ReputationRecordUpdate) ClearAchievements() *ReputationRecordUpdate {
	_u.mutation.ClearAchievements()
	return _u
}

// RemoveAchievementIDs removes the "achievements" edge to Achievement entities by IDs.
func (_u *ReputationRecordUpdate) RemoveAchievementIDs(ids ...int) *ReputationRecordUpdate {
	_u.mutation.RemoveAchievementIDs(ids...)
	return _u
}

// RemoveAchievements removes "achievements" edges to Achievement entities.
func (_u *ReputationRecordUpdate) RemoveAchievements(v ...*Achievement) *ReputationRecordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAchievementIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReputationRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReputationRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReputationRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReputationRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReputationRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reputationrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReputationRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reputationrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReputationRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPoints(); ok {
		if err := reputationrecord.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "ReputationRecord.total_points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := reputationrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ReputationRecord.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProjectsSubmitted(); ok {
		if err := reputationrecord.ProjectsSubmittedValidator(v); err != nil {
			return &ValidationError{Name: "projects_submitted", err: fmt.Errorf(`ent: validator failed for field "ReputationRecord.projects_submitted": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReputationRecord.user"`)
	}
	return nil
}

func (_u *ReputationRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reputationrecord.Table, reputationrecord.Columns, sqlgraph.NewFieldSpec(reputationrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(reputationrecord.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(reputationrecord.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(reputationrecord.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(reputationrecord.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProjectsSubmitted(); ok {
		_spec.SetField(reputationrecord.FieldProjectsSubmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectsSubmitted(); ok {
		_spec.AddField(reputationrecord.FieldProjectsSubmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageRating(); ok {
		_spec.SetField(reputationrecord.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageRating(); ok {
		_spec.AddField(reputationrecord.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(reputationrecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(reputationrecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reputationrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AchievementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAchievementsIDs(); len(nodes) > 0 && !_u.mutation.AchievementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AchievementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reputationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReputationRecordUpdateOne is the builder for updating a single ReputationRecord entity.
type ReputationRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReputationRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReputationRecordUpdateOne) SetUserID(v int) *ReputationRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReputationRecordUpdateOne) SetNillableUserID(v *int) *ReputationRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *ReputationRecordUpdateOne) SetTotalPoints(v int) *ReputationRecordUpdateOne {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *ReputationRecordUpdateOne) SetNillableTotalPoints(v *int) *ReputationRecordUpdateOne {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *ReputationRecordUpdateOne) AddTotalPoints(v int) *ReputationRecordUpdateOne {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *ReputationRecordUpdateOne) SetLevel(v int) *ReputationRecordUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ReputationRecordUpdateOne) SetNillableLevel(v *int) *ReputationRecordUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ReputationRecordUpdateOne) AddLevel(v int) *ReputationRecordUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetProjectsSubmitted sets the "projects_submitted" field.
func (_u *ReputationRecordUpdateOne) SetProjectsSubmitted(v int) *ReputationRecordUpdateOne {
	_u.mutation.ResetProjectsSubmitted()
	_u.mutation.SetProjectsSubmitted(v)
	return _u
}

// SetNillableProjectsSubmitted sets the "projects_submitted" field if the given value is not nil.
func (_u *ReputationRecordUpdateOne) SetNillableProjectsSubmitted(v *int) *ReputationRecordUpdateOne {
	if v != nil {
		_u.SetProjectsSubmitted(*v)
	}
	return _u
}

// AddProjectsSubmitted adds value to the "projects_submitted" field.
func (_u *ReputationRecordUpdateOne) AddProjectsSubmitted(v int) *ReputationRecordUpdateOne {
	_u.mutation.AddProjectsSubmitted(v)
	return _u
}

// SetAverageRating sets the "average_rating" field.
func (_u *ReputationRecordUpdateOne) SetAverageRating(v float64) *ReputationRecordUpdateOne {
	_u.mutation.ResetAverageRating()
	_u.mutation.SetAverageRating(v)
	return _u
}

// SetNillableAverageRating sets the "average_rating" field if the given value is not nil.
func (_u *ReputationRecordUpdateOne) SetNillableAverageRating(v *float64) *ReputationRecordUpdateOne {
	if v != nil {
		_u.SetAverageRating(*v)
	}
	return _u
}

// AddAverageRating adds value to the "average_rating" field.
func (_u *ReputationRecordUpdateOne) AddAverageRating(v float64) *ReputationRecordUpdateOne {
	_u.mutation.AddAverageRating(v)
	return _u
}

// SetCompletionRate sets the "completion_rate" field.
func (_u *ReputationRecordUpdateOne) SetCompletionRate(v float64) *ReputationRecordUpdateOne {
	_u.mutation.ResetCompletionRate()
	_u.mutation.SetCompletionRate(v)
	return _u
}

// SetNillableCompletionRate sets the "completion_rate" field if the given value is not nil.
func (_u *ReputationRecordUpdateOne) SetNillableCompletionRate(v *float64) *ReputationRecordUpdateOne {
	if v != nil {
		_u.SetCompletionRate(*v)
	}
	return _u
}

// AddCompletionRate adds value to the "completion_rate" field.
func (_u *ReputationRecordUpdateOne) AddCompletionRate(v float64) *ReputationRecordUpdateOne {
	_u.mutation.AddCompletionRate(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReputationRecordUpdateOne) SetUpdatedAt(v time.Time) *ReputationRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ReputationRecordUpdateOne) SetUser(v *User) *ReputationRecordUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddAchievementIDs adds the "achievements" edge to the Achievement entity by IDs.
func (_u *ReputationRecordUpdateOne) AddAchievementIDs(ids ...int) *ReputationRecordUpdateOne {
	_u.mutation.AddAchievementIDs(ids...)
	return _u
}

// AddAchievements adds the "achievements" edges to the Achievement entity.
func (_u *ReputationRecordUpdateOne) AddAchievements(v ...*Achievement) *ReputationRecordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAchievementIDs(ids...)
}

// Mutation returns the ReputationRecordMutation object of the builder.
func (_u *ReputationRecordUpdateOne) Mutation() *ReputationRecordMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ReputationRecordUpdateOne) ClearUser() *ReputationRecordUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearAchievements clears all "achievements" edges to the Achievement entity.
func (_u *ReputationRecordUpdateOne) ClearAchievements() *ReputationRecordUpdateOne {
	_u.mutation.ClearAchievements()
	return _u
}

// RemoveAchievementIDs removes the "achievements" edge to Achievement entities by IDs.
func (_u *ReputationRecordUpdateOne) RemoveAchievementIDs(ids ...int) *ReputationRecordUpdateOne {
	_u.mutation.RemoveAchievementIDs(ids...)
	return _u
}

// RemoveAchievements removes "achievements" edges to Achievement entities.
func (_u *ReputationRecordUpdateOne) RemoveAchievements(v ...*Achievement) *ReputationRecordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAchievementIDs(ids...)
}

// Where appends a list predicates to the ReputationRecordUpdate builder.
func (_u *ReputationRecordUpdateOne) Where(ps ...predicate.ReputationRecord) *ReputationRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReputationRecordUpdateOne) Select(field string, fields ...string) *ReputationRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReputationRecord entity.
func (_u *ReputationRecordUpdateOne) Save(ctx context.Context) (*ReputationRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReputationRecordUpdateOne) SaveX(ctx context.Context) *ReputationRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReputationRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReputationRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReputationRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reputationrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReputationRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := reputationrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReputationRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPoints(); ok {
		if err := reputationrecord.TotalPointsValidator(v); err != nil {
			return &ValidationError{Name: "total_points", err: fmt.Errorf(`ent: validator failed for field "ReputationRecord.total_points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := reputationrecord.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ReputationRecord.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProjectsSubmitted(); ok {
		if err := reputationrecord.ProjectsSubmittedValidator(v); err != nil {
			return &ValidationError{Name: "projects_submitted", err: fmt.Errorf(`ent: validator failed for field "ReputationRecord.projects_submitted": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReputationRecord.user"`)
	}
	return nil
}

func (_u *ReputationRecordUpdateOne) sqlSave(ctx context.Context) (_node *ReputationRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reputationrecord.Table, reputationrecord.Columns, sqlgraph.NewFieldSpec(reputationrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReputationRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reputationrecord.FieldID)
		for _, f := range fields {
			if !reputationrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reputationrecord.FieldID {
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
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(reputationrecord.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(reputationrecord.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(reputationrecord.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(reputationrecord.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProjectsSubmitted(); ok {
		_spec.SetField(reputationrecord.FieldProjectsSubmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectsSubmitted(); ok {
		_spec.AddField(reputationrecord.FieldProjectsSubmitted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageRating(); ok {
		_spec.SetField(reputationrecord.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageRating(); ok {
		_spec.AddField(reputationrecord.FieldAverageRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CompletionRate(); ok {
		_spec.SetField(reputationrecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionRate(); ok {
		_spec.AddField(reputationrecord.FieldCompletionRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reputationrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AchievementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAchievementsIDs(); len(nodes) > 0 && !_u.mutation.AchievementsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AchievementsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReputationRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reputationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
