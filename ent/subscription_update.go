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
	"github.com/chainadvisory/chainadvisory-api/ent/subscription"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// SubscriptionUpdate is the builder for updating Subscription entities.
type SubscriptionUpdate struct {
	config
	hooks    []Hook
	mutation *SubscriptionMutation
}

// Where appends a list predicates to the SubscriptionUpdate builder.
func (_u *SubscriptionUpdate) Where(ps ...predicate.Subscription) *SubscriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SubscriptionUpdate) SetUserID(v int) *SubscriptionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableUserID(v *int) *SubscriptionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *SubscriptionUpdate) SetPlan(v subscription.Plan) *SubscriptionUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillablePlan(v *subscription.Plan) *SubscriptionUpdate {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// SetBillingCycle sets the "billing_cycle" field.
func (_u *SubscriptionUpdate) SetBillingCycle(v subscription.BillingCycle) *SubscriptionUpdate {
	_u.mutation.SetBillingCycle(v)
	return _u
}

// SetNillableBillingCycle sets the "billing_cycle" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableBillingCycle(v *subscription.BillingCycle) *SubscriptionUpdate {
	if v != nil {
		_u.SetBillingCycle(*v)
	}
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *SubscriptionUpdate) SetPriceCents(v int) *SubscriptionUpdate {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillablePriceCents(v *int) *SubscriptionUpdate {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *SubscriptionUpdate) AddPriceCents(v int) *SubscriptionUpdate {
	_u.mutation.AddPriceCents(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubscriptionUpdate) SetStatus(v subscription.Status) *SubscriptionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableStatus(v *subscription.Status) *SubscriptionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreditAllotment sets the "credit_allotment" field.
func (_u *SubscriptionUpdate) SetCreditAllotment(v int) *SubscriptionUpdate {
	_u.mutation.ResetCreditAllotment()
	_u.mutation.SetCreditAllotment(v)
	return _u
}

// SetNillableCreditAllotment sets the "credit_allotment" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableCreditAllotment(v *int) *SubscriptionUpdate {
	if v != nil {
		_u.SetCreditAllotment(*v)
	}
	return _u
}

// AddCreditAllotment adds value to the "credit_allotment" field.
func (_u *SubscriptionUpdate) AddCreditAllotment(v int) *SubscriptionUpdate {
	_u.mutation.AddCreditAllotment(v)
	return _u
}

// SetUsedCredits sets the "used_credits" field.
func (_u *SubscriptionUpdate) SetUsedCredits(v int) *SubscriptionUpdate {
	_u.mutation.ResetUsedCredits()
	_u.mutation.SetUsedCredits(v)
	return _u
}

// SetNillableUsedCredits sets the "used_credits" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableUsedCredits(v *int) *SubscriptionUpdate {
	if v != nil {
		_u.SetUsedCredits(*v)
	}
	return _u
}

// AddUsedCredits adds value to the "used_credits" field.
func (_u *SubscriptionUpdate) AddUsedCredits(v int) *SubscriptionUpdate {
	_u.mutation.AddUsedCredits(v)
	return _u
}

// SetIsUnlimited sets the "is_unlimited" field.
func (_u *SubscriptionUpdate) SetIsUnlimited(v bool) *SubscriptionUpdate {
	_u.mutation.SetIsUnlimited(v)
	return _u
}

// SetNillableIsUnlimited sets the "is_unlimited" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableIsUnlimited(v *bool) *SubscriptionUpdate {
	if v != nil {
		_u.SetIsUnlimited(*v)
	}
	return _u
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (_u *SubscriptionUpdate) SetStripeSubscriptionID(v string) *SubscriptionUpdate {
	_u.mutation.SetStripeSubscriptionID(v)
	return _u
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableStripeSubscriptionID(v *string) *SubscriptionUpdate {
	if v != nil {
		_u.SetStripeSubscriptionID(*v)
	}
	return _u
}

// ClearStripeSubscriptionID clears the value of the "stripe_subscription_id" field.
func (_u *SubscriptionUpdate) ClearStripeSubscriptionID() *SubscriptionUpdate {
	_u.mutation.ClearStripeSubscriptionID()
	return _u
}

// SetStripePriceID sets the "stripe_price_id" field.
func (_u *SubscriptionUpdate) SetStripePriceID(v string) *SubscriptionUpdate {
	_u.mutation.SetStripePriceID(v)
	return _u
}

// SetNillableStripePriceID sets the "stripe_price_id" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableStripePriceID(v *string) *SubscriptionUpdate {
	if v != nil {
		_u.SetStripePriceID(*v)
	}
	return _u
}

// ClearStripePriceID clears the value of the "stripe_price_id" field.
func (_u *SubscriptionUpdate) ClearStripePriceID() *SubscriptionUpdate {
	_u.mutation.ClearStripePriceID()
	return _u
}

// SetCurrentPeriodStart sets the "current_period_start" field.
func (_u *SubscriptionUpdate) SetCurrentPeriodStart(v time.Time) *SubscriptionUpdate {
	_u.mutation.SetCurrentPeriodStart(v)
	return _u
}

// SetNillableCurrentPeriodStart sets the "current_period_start" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableCurrentPeriodStart(v *time.Time) *SubscriptionUpdate {
	if v != nil {
		_u.SetCurrentPeriodStart(*v)
	}
	return _u
}

// ClearCurrentPeriodStart clears the value of the "current_period_start" field.
func (_u *SubscriptionUpdate) ClearCurrentPeriodStart() *SubscriptionUpdate {
	_u.mutation.ClearCurrentPeriodStart()
	return _u
}

// SetCurrentPeriodEnd sets the "current_period_end" field.
func (_u *SubscriptionUpdate) SetCurrentPeriodEnd(v time.Time) *SubscriptionUpdate {
	_u.mutation.SetCurrentPeriodEnd(v)
	return _u
}

// SetNillableCurrentPeriodEnd sets the "current_period_end" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableCurrentPeriodEnd(v *time.Time) *SubscriptionUpdate {
	if v != nil {
		_u.SetCurrentPeriodEnd(*v)
	}
	return _u
}

// ClearCurrentPeriodEnd clears the value of the "current_period_end" field.
func (_u *SubscriptionUpdate) ClearCurrentPeriodEnd() *SubscriptionUpdate {
	_u.mutation.ClearCurrentPeriodEnd()
	return _u
}

// SetCancelAtPeriodEnd sets the "cancel_at_period_end" field.
func (_u *SubscriptionUpdate) SetCancelAtPeriodEnd(v bool) *SubscriptionUpdate {
	_u.mutation.SetCancelAtPeriodEnd(v)
	return _u
}

// SetNillableCancelAtPeriodEnd sets the "cancel_at_period_end" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableCancelAtPeriodEnd(v *bool) *SubscriptionUpdate {
	if v != nil {
		_u.SetCancelAtPeriodEnd(*v)
	}
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *SubscriptionUpdate) SetCancelledAt(v time.Time) *SubscriptionUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *SubscriptionUpdate) SetNillableCancelledAt(v *time.Time) *SubscriptionUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *SubscriptionUpdate) ClearCancelledAt() *SubscriptionUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubscriptionUpdate) SetUpdatedAt(v time.Time) *SubscriptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *SubscriptionUpdate) SetUser(v *User) *SubscriptionUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the SubscriptionMutation object of the builder.
func (_u *SubscriptionUpdate) Mutation() *SubscriptionMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *SubscriptionUpdate) ClearUser() *SubscriptionUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubscriptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubscriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubscriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubscriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubscriptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subscription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubscriptionUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := subscription.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Subscription.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Plan(); ok {
		if err := subscription.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "Subscription.plan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BillingCycle(); ok {
		if err := subscription.BillingCycleValidator(v); err != nil {
			return &ValidationError{Name: "billing_cycle", err: fmt.Errorf(`ent: validator failed for field "Subscription.billing_cycle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceCents(); ok {
		if err := subscription.PriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_cents", err: fmt.Errorf(`ent: validator failed for field "Subscription.price_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subscription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subscription.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreditAllotment(); ok {
		if err := subscription.CreditAllotmentValidator(v); err != nil {
			return &ValidationError{Name: "credit_allotment", err: fmt.Errorf(`ent: validator failed for field "Subscription.credit_allotment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsedCredits(); ok {
		if err := subscription.UsedCreditsValidator(v); err != nil {
			return &ValidationError{Name: "used_credits", err: fmt.Errorf(`ent: validator failed for field "Subscription.used_credits": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subscription.user"`)
	}
	return nil
}

func (_u *SubscriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscription.Table, subscription.Columns, sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(subscription.FieldPlan, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BillingCycle(); ok {
		_spec.SetField(subscription.FieldBillingCycle, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(subscription.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(subscription.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subscription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreditAllotment(); ok {
		_spec.SetField(subscription.FieldCreditAllotment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditAllotment(); ok {
		_spec.AddField(subscription.FieldCreditAllotment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsedCredits(); ok {
		_spec.SetField(subscription.FieldUsedCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsedCredits(); ok {
		_spec.AddField(subscription.FieldUsedCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsUnlimited(); ok {
		_spec.SetField(subscription.FieldIsUnlimited, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(subscription.FieldStripeSubscriptionID, field.TypeString, value)
	}
	if _u.mutation.StripeSubscriptionIDCleared() {
		_spec.ClearField(subscription.FieldStripeSubscriptionID, field.TypeString)
	}
	if value, ok := _u.mutation.StripePriceID(); ok {
		_spec.SetField(subscription.FieldStripePriceID, field.TypeString, value)
	}
	if _u.mutation.StripePriceIDCleared() {
		_spec.ClearField(subscription.FieldStripePriceID, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentPeriodStart(); ok {
		_spec.SetField(subscription.FieldCurrentPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.CurrentPeriodStartCleared() {
		_spec.ClearField(subscription.FieldCurrentPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentPeriodEnd(); ok {
		_spec.SetField(subscription.FieldCurrentPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.CurrentPeriodEndCleared() {
		_spec.ClearField(subscription.FieldCurrentPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelAtPeriodEnd(); ok {
		_spec.SetField(subscription.FieldCancelAtPeriodEnd, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(subscription.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(subscription.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subscription.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subscription.UserTable,
			Columns: []string{subscription.UserColumn},
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
			Table:   subscription.UserTable,
			Columns: []string{subscription.UserColumn},
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
			err = &NotFoundError{subscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubscriptionUpdateOne is the builder for updating a single Subscription entity.
type SubscriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubscriptionMutation
}

// SetUserID sets the "user_id" field.
func (_u *SubscriptionUpdateOne) SetUserID(v int) *SubscriptionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableUserID(v *int) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *SubscriptionUpdateOne) SetPlan(v subscription.Plan) *SubscriptionUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillablePlan(v *subscription.Plan) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// SetBillingCycle sets the "billing_cycle" field.
func (_u *SubscriptionUpdateOne) SetBillingCycle(v subscription.BillingCycle) *SubscriptionUpdateOne {
	_u.mutation.SetBillingCycle(v)
	return _u
}

// SetNillableBillingCycle sets the "billing_cycle" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableBillingCycle(v *subscription.BillingCycle) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetBillingCycle(*v)
	}
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *SubscriptionUpdateOne) SetPriceCents(v int) *SubscriptionUpdateOne {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillablePriceCents(v *int) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *SubscriptionUpdateOne) AddPriceCents(v int) *SubscriptionUpdateOne {
	_u.mutation.AddPriceCents(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubscriptionUpdateOne) SetStatus(v subscription.Status) *SubscriptionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableStatus(v *subscription.Status) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreditAllotment sets the "credit_allotment" field.
func (_u *SubscriptionUpdateOne) SetCreditAllotment(v int) *SubscriptionUpdateOne {
	_u.mutation.ResetCreditAllotment()
	_u.mutation.SetCreditAllotment(v)
	return _u
}

// SetNillableCreditAllotment sets the "credit_allotment" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableCreditAllotment(v *int) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetCreditAllotment(*v)
	}
	return _u
}

// AddCreditAllotment adds value to the "credit_allotment" field.
func (_u *SubscriptionUpdateOne) AddCreditAllotment(v int) *SubscriptionUpdateOne {
	_u.mutation.AddCreditAllotment(v)
	return _u
}

// SetUsedCredits sets the "used_credits" field.
func (_u *SubscriptionUpdateOne) SetUsedCredits(v int) *SubscriptionUpdateOne {
	_u.mutation.ResetUsedCredits()
	_u.mutation.SetUsedCredits(v)
	return _u
}

// SetNillableUsedCredits sets the "used_credits" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableUsedCredits(v *int) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetUsedCredits(*v)
	}
	return _u
}

// AddUsedCredits adds value to the "used_credits" field.
func (_u *SubscriptionUpdateOne) AddUsedCredits(v int) *SubscriptionUpdateOne {
	_u.mutation.AddUsedCredits(v)
	return _u
}

// SetIsUnlimited sets the "is_unlimited" field.
func (_u *SubscriptionUpdateOne) SetIsUnlimited(v bool) *SubscriptionUpdateOne {
	_u.mutation.SetIsUnlimited(v)
	return _u
}

// SetNillableIsUnlimited sets the "is_unlimited" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableIsUnlimited(v *bool) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetIsUnlimited(*v)
	}
	return _u
}

// SetStripeSubscriptionID sets the "stripe_subscription_id" field.
func (_u *SubscriptionUpdateOne) SetStripeSubscriptionID(v string) *SubscriptionUpdateOne {
	_u.mutation.SetStripeSubscriptionID(v)
	return _u
}

// SetNillableStripeSubscriptionID sets the "stripe_subscription_id" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableStripeSubscriptionID(v *string) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetStripeSubscriptionID(*v)
	}
	return _u
}

// ClearStripeSubscriptionID clears the value of the "stripe_subscription_id" field.
func (_u *SubscriptionUpdateOne) ClearStripeSubscriptionID() *SubscriptionUpdateOne {
	_u.mutation.ClearStripeSubscriptionID()
	return _u
}

// SetStripePriceID sets the "stripe_price_id" field.
func (_u *SubscriptionUpdateOne) SetStripePriceID(v string) *SubscriptionUpdateOne {
	_u.mutation.SetStripePriceID(v)
	return _u
}

// SetNillableStripePriceID sets the "stripe_price_id" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableStripePriceID(v *string) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetStripePriceID(*v)
	}
	return _u
}

// ClearStripePriceID clears the value of the "stripe_price_id" field.
func (_u *SubscriptionUpdateOne) ClearStripePriceID() *SubscriptionUpdateOne {
	_u.mutation.ClearStripePriceID()
	return _u
}

// SetCurrentPeriodStart sets the "current_period_start" field.
func (_u *SubscriptionUpdateOne) SetCurrentPeriodStart(v time.Time) *SubscriptionUpdateOne {
	_u.mutation.SetCurrentPeriodStart(v)
	return _u
}

// SetNillableCurrentPeriodStart sets the "current_period_start" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableCurrentPeriodStart(v *time.Time) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetCurrentPeriodStart(*v)
	}
	return _u
}

// ClearCurrentPeriodStart clears the value of the "current_period_start" field.
func (_u *SubscriptionUpdateOne) ClearCurrentPeriodStart() *SubscriptionUpdateOne {
	_u.mutation.ClearCurrentPeriodStart()
	return _u
}

// SetCurrentPeriodEnd sets the "current_period_end" field.
func (_u *SubscriptionUpdateOne) SetCurrentPeriodEnd(v time.Time) *SubscriptionUpdateOne {
	_u.mutation.SetCurrentPeriodEnd(v)
	return _u
}

// SetNillableCurrentPeriodEnd sets the "current_period_end" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableCurrentPeriodEnd(v *time.Time) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetCurrentPeriodEnd(*v)
	}
	return _u
}

// ClearCurrentPeriodEnd clears the value of the "current_period_end" field.
func (_u *SubscriptionUpdateOne) ClearCurrentPeriodEnd() *SubscriptionUpdateOne {
	_u.mutation.ClearCurrentPeriodEnd()
	return _u
}

// SetCancelAtPeriodEnd sets the "cancel_at_period_end" field.
func (_u *SubscriptionUpdateOne) SetCancelAtPeriodEnd(v bool) *SubscriptionUpdateOne {
	_u.mutation.SetCancelAtPeriodEnd(v)
	return _u
}

// SetNillableCancelAtPeriodEnd sets the "cancel_at_period_end" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableCancelAtPeriodEnd(v *bool) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetCancelAtPeriodEnd(*v)
	}
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *SubscriptionUpdateOne) SetCancelledAt(v time.Time) *SubscriptionUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *SubscriptionUpdateOne) SetNillableCancelledAt(v *time.Time) *SubscriptionUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *SubscriptionUpdateOne) ClearCancelledAt() *SubscriptionUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubscriptionUpdateOne) SetUpdatedAt(v time.Time) *SubscriptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *SubscriptionUpdateOne) SetUser(v *User) *SubscriptionUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the SubscriptionMutation object of the builder.
func (_u *SubscriptionUpdateOne) Mutation() *SubscriptionMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *SubscriptionUpdateOne) ClearUser() *SubscriptionUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the SubscriptionUpdate builder.
func (_u *SubscriptionUpdateOne) Where(ps ...predicate.Subscription) *SubscriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubscriptionUpdateOne) Select(field string, fields ...string) *SubscriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subscription entity.
func (_u *SubscriptionUpdateOne) Save(ctx context.Context) (*Subscription, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubscriptionUpdateOne) SaveX(ctx context.Context) *Subscription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubscriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubscriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubscriptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subscription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubscriptionUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := subscription.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Subscription.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Plan(); ok {
		if err := subscription.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`ent: validator failed for field "Subscription.plan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BillingCycle(); ok {
		if err := subscription.BillingCycleValidator(v); err != nil {
			return &ValidationError{Name: "billing_cycle", err: fmt.Errorf(`ent: validator failed for field "Subscription.billing_cycle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceCents(); ok {
		if err := subscription.PriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_cents", err: fmt.Errorf(`ent: validator failed for field "Subscription.price_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subscription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subscription.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreditAllotment(); ok {
		if err := subscription.CreditAllotmentValidator(v); err != nil {
			return &ValidationError{Name: "credit_allotment", err: fmt.Errorf(`ent: validator failed for field "Subscription.credit_allotment": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsedCredits(); ok {
		if err := subscription.UsedCreditsValidator(v); err != nil {
			return &ValidationError{Name: "used_credits", err: fmt.Errorf(`ent: validator failed for field "Subscription.used_credits": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subscription.user"`)
	}
	return nil
}

func (_u *SubscriptionUpdateOne) sqlSave(ctx context.Context) (_node *Subscription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscription.Table, subscription.Columns, sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subscription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subscription.FieldID)
		for _, f := range fields {
			if !subscription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subscription.FieldID {
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
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(subscription.FieldPlan, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BillingCycle(); ok {
		_spec.SetField(subscription.FieldBillingCycle, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(subscription.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(subscription.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subscription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreditAllotment(); ok {
		_spec.SetField(subscription.FieldCreditAllotment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCreditAllotment(); ok {
		_spec.AddField(subscription.FieldCreditAllotment, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsedCredits(); ok {
		_spec.SetField(subscription.FieldUsedCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsedCredits(); ok {
		_spec.AddField(subscription.FieldUsedCredits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsUnlimited(); ok {
		_spec.SetField(subscription.FieldIsUnlimited, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StripeSubscriptionID(); ok {
		_spec.SetField(subscription.FieldStripeSubscriptionID, field.TypeString, value)
	}
	if _u.mutation.StripeSubscriptionIDCleared() {
		_spec.ClearField(subscription.FieldStripeSubscriptionID, field.TypeString)
	}
	if value, ok := _u.mutation.StripePriceID(); ok {
		_spec.SetField(subscription.FieldStripePriceID, field.TypeString, value)
	}
	if _u.mutation.StripePriceIDCleared() {
		_spec.ClearField(subscription.FieldStripePriceID, field.TypeString)
	}
	if value, ok := _u.mutation.CurrentPeriodStart(); ok {
		_spec.SetField(subscription.FieldCurrentPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.CurrentPeriodStartCleared() {
		_spec.ClearField(subscription.FieldCurrentPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentPeriodEnd(); ok {
		_spec.SetField(subscription.FieldCurrentPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.CurrentPeriodEndCleared() {
		_spec.ClearField(subscription.FieldCurrentPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelAtPeriodEnd(); ok {
		_spec.SetField(subscription.FieldCancelAtPeriodEnd, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(subscription.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(subscription.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subscription.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subscription.UserTable,
			Columns: []string{subscription.UserColumn},
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
			Table:   subscription.UserTable,
			Columns: []string{subscription.UserColumn},
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
	_node = &Subscription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
