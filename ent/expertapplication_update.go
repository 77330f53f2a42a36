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
	"github.com/chainadvisory/chainadvisory-api/ent/expertapplication"
	"github.com/chainadvisory/chainadvisory-api/ent/predicate"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// ExpertApplicationUpdate is the builder for updating ExpertApplication entities.
type ExpertApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *ExpertApplicationMutation
}

// Where appends a list predicates to the ExpertApplicationUpdate builder.
func (_u *ExpertApplicationUpdate) Where(ps ...predicate.ExpertApplication) *ExpertApplicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExpertApplicationUpdate) SetUserID(v int) *ExpertApplicationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExpertApplicationUpdate) SetNillableUserID(v *int) *ExpertApplicationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetVerificationStatus sets the "verification_status" field.
func (_u *ExpertApplicationUpdate) SetVerificationStatus(v expertapplication.VerificationStatus) *ExpertApplicationUpdate {
	_u.mutation.SetVerificationStatus(v)
	return _u
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_u *ExpertApplicationUpdate) SetNillableVerificationStatus(v *expertapplication.VerificationStatus) *ExpertApplicationUpdate {
	if v != nil {
		_u.SetVerificationStatus(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *ExpertApplicationUpdate) SetSpecialization(v string) *ExpertApplicationUpdate {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *ExpertApplicationUpdate) SetNillableSpecialization(v *string) *ExpertApplicationUpdate {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetMotivation sets the "motivation" field.
func (_u *ExpertApplicationUpdate) SetMotivation(v string) *ExpertApplicationUpdate {
	_u.mutation.SetMotivation(v)
	return _u
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_u *ExpertApplicationUpdate) SetNillableMotivation(v *string) *ExpertApplicationUpdate {
	if v != nil {
		_u.SetMotivation(*v)
	}
	return _u
}

// ClearMotivation clears the value of the "motivation" field.
func (_u *ExpertApplicationUpdate) ClearMotivation() *ExpertApplicationUpdate {
	_u.mutation.ClearMotivation()
	return _u
}

// SetReputationPoints sets the "reputation_points" field.
func (_u *ExpertApplicationUpdate) SetReputationPoints(v int) *ExpertApplicationUpdate {
	_u.mutation.ResetReputationPoints()
	_u.mutation.SetReputationPoints(v)
	return _u
}

// SetNillableReputationPoints sets the "reputation_points" field if the given value is not nil.
func (_u *ExpertApplicationUpdate) SetNillableReputationPoints(v *int) *ExpertApplicationUpdate {
	if v != nil {
		_u.SetReputationPoints(*v)
	}
	return _u
}

// AddReputationPoints adds value to the "reputation_points" field.
func (_u *ExpertApplicationUpdate) AddReputationPoints(v int) *ExpertApplicationUpdate {
	_u.mutation.AddReputationPoints(v)
	return _u
}

// SetExpertTier sets the "expert_tier" field.
func (_u *ExpertApplicationUpdate) SetExpertTier(v expertapplication.ExpertTier) *ExpertApplicationUpdate {
	_u.mutation.SetExpertTier(v)
	return _u
}

// SetNillableExpertTier sets the "expert_tier" field if the given value is not nil.
func (_u *ExpertApplicationUpdate) SetNillableExpertTier(v *expertapplication.ExpertTier) *ExpertApplicationUpdate {
	if v != nil {
		_u.SetExpertTier(*v)
	}
	return _u
}

// SetAccuracyRate sets the "accuracy_rate" field.
func (_u *ExpertApplicationUpdate) SetAccuracyRate(v float64) *ExpertApplicationUpdate {
	_u.mutation.ResetAccuracyRate()
	_u.mutation.SetAccuracyRate(v)
	return _u
}

// SetNillableAccuracyRate sets the "accuracy_rate" field if the given value is not nil.
func (_u *ExpertApplicationUpdate) SetNillableAccuracyRate(v *float64) *ExpertApplicationUpdate {
	if v != nil {
		_u.SetAccuracyRate(*v)
	}
	return _u
}

// AddAccuracyRate adds value to the "accuracy_rate" field.
func (_u *ExpertApplicationUpdate) AddAccuracyRate(v float64) *ExpertApplicationUpdate {
	_u.mutation.AddAccuracyRate(v)
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *ExpertApplicationUpdate) SetReviewNotes(v string) *ExpertApplicationUpdate {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *ExpertApplicationUpdate) SetNillableReviewNotes(v *string) *ExpertApplicationUpdate {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *ExpertApplicationUpdate) ClearReviewNotes() *ExpertApplicationUpdate {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ExpertApplicationUpdate) SetReviewedAt(v time.Time) *ExpertApplicationUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ExpertApplicationUpdate) SetNillableReviewedAt(v *time.Time) *ExpertApplicationUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ExpertApplicationUpdate) ClearReviewedAt() *ExpertApplicationUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExpertApplicationUpdate) SetUpdatedAt(v time.Time) *ExpertApplicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ExpertApplicationUpdate) SetUser(v *User) *ExpertApplicationUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ExpertApplicationMutation object of the builder.
func (_u *ExpertApplicationUpdate) Mutation() *ExpertApplicationMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ExpertApplicationUpdate) ClearUser() *ExpertApplicationUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExpertApplicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpertApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExpertApplicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpertApplicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExpertApplicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := expertapplication.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpertApplicationUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := expertapplication.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VerificationStatus(); ok {
		if err := expertapplication.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.verification_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := expertapplication.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.specialization": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReputationPoints(); ok {
		if err := expertapplication.ReputationPointsValidator(v); err != nil {
			return &ValidationError{Name: "reputation_points", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.reputation_points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpertTier(); ok {
		if err := expertapplication.ExpertTierValidator(v); err != nil {
			return &ValidationError{Name: "expert_tier", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.expert_tier": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExpertApplication.user"`)
	}
	return nil
}

func (_u *ExpertApplicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expertapplication.Table, expertapplication.Columns, sqlgraph.NewFieldSpec(expertapplication.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VerificationStatus(); ok {
		_spec.SetField(expertapplication.FieldVerificationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(expertapplication.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.Motivation(); ok {
		_spec.SetField(expertapplication.FieldMotivation, field.TypeString, value)
	}
	if _u.mutation.MotivationCleared() {
		_spec.ClearField(expertapplication.FieldMotivation, field.TypeString)
	}
	if value, ok := _u.mutation.ReputationPoints(); ok {
		_spec.SetField(expertapplication.FieldReputationPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReputationPoints(); ok {
		_spec.AddField(expertapplication.FieldReputationPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpertTier(); ok {
		_spec.SetField(expertapplication.FieldExpertTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AccuracyRate(); ok {
		_spec.SetField(expertapplication.FieldAccuracyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracyRate(); ok {
		_spec.AddField(expertapplication.FieldAccuracyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(expertapplication.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(expertapplication.FieldReviewNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(expertapplication.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(expertapplication.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(expertapplication.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expertapplication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExpertApplicationUpdateOne is the builder for updating a single ExpertApplication entity.
type ExpertApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExpertApplicationMutation
}

// SetUserID sets the "user_id" field.
func (_u *ExpertApplicationUpdateOne) SetUserID(v int) *ExpertApplicationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExpertApplicationUpdateOne) SetNillableUserID(v *int) *ExpertApplicationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetVerificationStatus sets the "verification_status" field.
func (_u *ExpertApplicationUpdateOne) SetVerificationStatus(v expertapplication.VerificationStatus) *ExpertApplicationUpdateOne {
	_u.mutation.SetVerificationStatus(v)
	return _u
}

// SetNillableVerificationStatus sets the "verification_status" field if the given value is not nil.
func (_u *ExpertApplicationUpdateOne) SetNillableVerificationStatus(v *expertapplication.VerificationStatus) *ExpertApplicationUpdateOne {
	if v != nil {
		_u.SetVerificationStatus(*v)
	}
	return _u
}

// SetSpecialization sets the "specialization" field.
func (_u *ExpertApplicationUpdateOne) SetSpecialization(v string) *ExpertApplicationUpdateOne {
	_u.mutation.SetSpecialization(v)
	return _u
}

// SetNillableSpecialization sets the "specialization" field if the given value is not nil.
func (_u *ExpertApplicationUpdateOne) SetNillableSpecialization(v *string) *ExpertApplicationUpdateOne {
	if v != nil {
		_u.SetSpecialization(*v)
	}
	return _u
}

// SetMotivation sets the "motivation" field.
func (_u *ExpertApplicationUpdateOne) SetMotivation(v string) *ExpertApplicationUpdateOne {
	_u.mutation.SetMotivation(v)
	return _u
}

// SetNillableMotivation sets the "motivation" field if the given value is not nil.
func (_u *ExpertApplicationUpdateOne) SetNillableMotivation(v *string) *ExpertApplicationUpdateOne {
	if v != nil {
		_u.SetMotivation(*v)
	}
	return _u
}

// ClearMotivation clears the value of the "motivation" field.
func (_u *ExpertApplicationUpdateOne) ClearMotivation() *ExpertApplicationUpdateOne {
	_u.mutation.ClearMotivation()
	return _u
}

// SetReputationPoints sets the "reputation_points" field.
func (_u *ExpertApplicationUpdateOne) SetReputationPoints(v int) *ExpertApplicationUpdateOne {
	_u.mutation.ResetReputationPoints()
	_u.mutation.SetReputationPoints(v)
	return _u
}

// SetNillableReputationPoints sets the "reputation_points" field if the given value is not nil.
func (_u *ExpertApplicationUpdateOne) SetNillableReputationPoints(v *int) *ExpertApplicationUpdateOne {
	if v != nil {
		_u.SetReputationPoints(*v)
	}
	return _u
}

// AddReputationPoints adds value to the "reputation_points" field.
func (_u *ExpertApplicationUpdateOne) AddReputationPoints(v int) *ExpertApplicationUpdateOne {
	_u.mutation.AddReputationPoints(v)
	return _u
}

// SetExpertTier sets the "expert_tier" field.
func (_u *ExpertApplicationUpdateOne) SetExpertTier(v expertapplication.ExpertTier) *ExpertApplicationUpdateOne {
	_u.mutation.SetExpertTier(v)
	return _u
}

// SetNillableExpertTier sets the "expert_tier" field if the given value is not nil.
func (_u *ExpertApplicationUpdateOne) SetNillableExpertTier(v *expertapplication.ExpertTier) *ExpertApplicationUpdateOne {
	if v != nil {
		_u.SetExpertTier(*v)
	}
	return _u
}

// SetAccuracyRate sets the "accuracy_rate" field.
func (_u *ExpertApplicationUpdateOne) SetAccuracyRate(v float64) *ExpertApplicationUpdateOne {
	_u.mutation.ResetAccuracyRate()
	_u.mutation.SetAccuracyRate(v)
	return _u
}

// SetNillableAccuracyRate sets the "accuracy_rate" field if the given value is not nil.
func (_u *ExpertApplicationUpdateOne) SetNillableAccuracyRate(v *float64) *ExpertApplicationUpdateOne {
	if v != nil {
		_u.SetAccuracyRate(*v)
	}
	return _u
}

// AddAccuracyRate adds value to the "accuracy_rate" field.
func (_u *ExpertApplicationUpdateOne) AddAccuracyRate(v float64) *ExpertApplicationUpdateOne {
	_u.mutation.AddAccuracyRate(v)
	return _u
}

// SetReviewNotes sets the "review_notes" field.
func (_u *ExpertApplicationUpdateOne) SetReviewNotes(v string) *ExpertApplicationUpdateOne {
	_u.mutation.SetReviewNotes(v)
	return _u
}

// SetNillableReviewNotes sets the "review_notes" field if the given value is not nil.
func (_u *ExpertApplicationUpdateOne) SetNillableReviewNotes(v *string) *ExpertApplicationUpdateOne {
	if v != nil {
		_u.SetReviewNotes(*v)
	}
	return _u
}

// ClearReviewNotes clears the value of the "review_notes" field.
func (_u *ExpertApplicationUpdateOne) ClearReviewNotes() *ExpertApplicationUpdateOne {
	_u.mutation.ClearReviewNotes()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ExpertApplicationUpdateOne) SetReviewedAt(v time.Time) *ExpertApplicationUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ExpertApplicationUpdateOne) SetNillableReviewedAt(v *time.Time) *ExpertApplicationUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ExpertApplicationUpdateOne) ClearReviewedAt() *ExpertApplicationUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExpertApplicationUpdateOne) SetUpdatedAt(v time.Time) *ExpertApplicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ExpertApplicationUpdateOne) SetUser(v *User) *ExpertApplicationUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ExpertApplicationMutation object of the builder.
func (_u *ExpertApplicationUpdateOne) Mutation() *ExpertApplicationMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ExpertApplicationUpdateOne) ClearUser() *ExpertApplicationUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the ExpertApplicationUpdate builder.
func (_u *ExpertApplicationUpdateOne) Where(ps ...predicate.ExpertApplication) *ExpertApplicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExpertApplicationUpdateOne) Select(field string, fields ...string) *ExpertApplicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExpertApplication entity.
func (_u *ExpertApplicationUpdateOne) Save(ctx context.Context) (*ExpertApplication, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpertApplicationUpdateOne) SaveX(ctx context.Context) *ExpertApplication {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExpertApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpertApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExpertApplicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := expertapplication.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpertApplicationUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := expertapplication.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VerificationStatus(); ok {
		if err := expertapplication.VerificationStatusValidator(v); err != nil {
			return &ValidationError{Name: "verification_status", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.verification_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialization(); ok {
		if err := expertapplication.SpecializationValidator(v); err != nil {
			return &ValidationError{Name: "specialization", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.specialization": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReputationPoints(); ok {
		if err := expertapplication.ReputationPointsValidator(v); err != nil {
			return &ValidationError{Name: "reputation_points", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.reputation_points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpertTier(); ok {
		if err := expertapplication.ExpertTierValidator(v); err != nil {
			return &ValidationError{Name: "expert_tier", err: fmt.Errorf(`ent: validator failed for field "ExpertApplication.expert_tier": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExpertApplication.user"`)
	}
	return nil
}

func (_u *ExpertApplicationUpdateOne) sqlSave(ctx context.Context) (_node *ExpertApplication, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expertapplication.Table, expertapplication.Columns, sqlgraph.NewFieldSpec(expertapplication.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExpertApplication.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, expertapplication.FieldID)
		for _, f := range fields {
			if !expertapplication.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != expertapplication.FieldID {
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
	if value, ok := _u.mutation.VerificationStatus(); ok {
		_spec.SetField(expertapplication.FieldVerificationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Specialization(); ok {
		_spec.SetField(expertapplication.FieldSpecialization, field.TypeString, value)
	}
	if value, ok := _u.mutation.Motivation(); ok {
		_spec.SetField(expertapplication.FieldMotivation, field.TypeString, value)
	}
	if _u.mutation.MotivationCleared() {
		_spec.ClearField(expertapplication.FieldMotivation, field.TypeString)
	}
	if value, ok := _u.mutation.ReputationPoints(); ok {
		_spec.SetField(expertapplication.FieldReputationPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReputationPoints(); ok {
		_spec.AddField(expertapplication.FieldReputationPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpertTier(); ok {
		_spec.SetField(expertapplication.FieldExpertTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AccuracyRate(); ok {
		_spec.SetField(expertapplication.FieldAccuracyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracyRate(); ok {
		_spec.AddField(expertapplication.FieldAccuracyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewNotes(); ok {
		_spec.SetField(expertapplication.FieldReviewNotes, field.TypeString, value)
	}
	if _u.mutation.ReviewNotesCleared() {
		_spec.ClearField(expertapplication.FieldReviewNotes, field.TypeString)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(expertapplication.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(expertapplication.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(expertapplication.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExpertApplication{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expertapplication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
