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
	"github.com/chainadvisory/chainadvisory-api/ent/consultation"
	"github.com/chainadvisory/chainadvisory-api/ent/predicate"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// ConsultationUpdate is the builder for updating Consultation entities.
type ConsultationUpdate struct {
	config
	hooks    []Hook
	mutation *ConsultationMutation
}

// Where appends a list predicates to the ConsultationUpdate builder.
func (_u *ConsultationUpdate) Where(ps ...predicate.Consultation) *ConsultationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ConsultationUpdate) SetUserID(v int) *ConsultationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableUserID(v *int) *ConsultationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetServiceType sets the "service_type" field.
func (_u *ConsultationUpdate) SetServiceType(v consultation.ServiceType) *ConsultationUpdate {
	_u.mutation.SetServiceType(v)
	return _u
}

// SetNillableServiceType sets the "service_type" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableServiceType(v *consultation.ServiceType) *ConsultationUpdate {
	if v != nil {
		_u.SetServiceType(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *ConsultationUpdate) SetDurationMinutes(v int) *ConsultationUpdate {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableDurationMinutes(v *int) *ConsultationUpdate {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *ConsultationUpdate) AddDurationMinutes(v int) *ConsultationUpdate {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *ConsultationUpdate) SetScheduledAt(v time.Time) *ConsultationUpdate {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableScheduledAt(v *time.Time) *ConsultationUpdate {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *ConsultationUpdate) SetPriceCents(v int) *ConsultationUpdate {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillablePriceCents(v *int) *ConsultationUpdate {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *ConsultationUpdate) AddPriceCents(v int) *ConsultationUpdate {
	_u.mutation.AddPriceCents(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConsultationUpdate) SetStatus(v consultation.Status) *ConsultationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableStatus(v *consultation.Status) *ConsultationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *ConsultationUpdate) SetContactPhone(v string) *ConsultationUpdate {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableContactPhone(v *string) *ConsultationUpdate {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (_u *ConsultationUpdate) ClearContactPhone() *ConsultationUpdate {
	_u.mutation.ClearContactPhone()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ConsultationUpdate) SetNotes(v string) *ConsultationUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableNotes(v *string) *ConsultationUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ConsultationUpdate) ClearNotes() *ConsultationUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPaid sets the "paid" field.
func (_u *ConsultationUpdate) SetPaid(v bool) *ConsultationUpdate {
	_u.mutation.SetPaid(v)
	return _u
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillablePaid(v *bool) *ConsultationUpdate {
	if v != nil {
		_u.SetPaid(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConsultationUpdate) SetUpdatedAt(v time.Time) *ConsultationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ConsultationUpdate) SetUser(v *User) *ConsultationUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ConsultationMutation object of the builder.
func (_u *ConsultationUpdate) Mutation() *ConsultationMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ConsultationUpdate) ClearUser() *ConsultationUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConsultationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsultationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConsultationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsultationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConsultationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := consultation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsultationUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := consultation.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Consultation.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ServiceType(); ok {
		if err := consultation.ServiceTypeValidator(v); err != nil {
			return &ValidationError{Name: "service_type", err: fmt.Errorf(`ent: validator failed for field "Consultation.service_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceCents(); ok {
		if err := consultation.PriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_cents", err: fmt.Errorf(`ent: validator failed for field "Consultation.price_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := consultation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Consultation.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Consultation.user"`)
	}
	return nil
}

func (_u *ConsultationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consultation.Table, consultation.Columns, sqlgraph.NewFieldSpec(consultation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ServiceType(); ok {
		_spec.SetField(consultation.FieldServiceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(consultation.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(consultation.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(consultation.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(consultation.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(consultation.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(consultation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(consultation.FieldContactPhone, field.TypeString, value)
	}
	if _u.mutation.ContactPhoneCleared() {
		_spec.ClearField(consultation.FieldContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(consultation.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(consultation.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Paid(); ok {
		_spec.SetField(consultation.FieldPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(consultation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consultation.UserTable,
			Columns: []string{consultation.UserColumn},
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
			Table:   consultation.UserTable,
			Columns: []string{consultation.UserColumn},
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
			err = &NotFoundError{consultation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConsultationUpdateOne is the builder for updating a single Consultation entity.
type ConsultationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConsultationMutation
}

// SetUserID sets the "user_id" field.
func (_u *ConsultationUpdateOne) SetUserID(v int) *ConsultationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableUserID(v *int) *ConsultationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetServiceType sets the "service_type" field.
func (_u *ConsultationUpdateOne) SetServiceType(v consultation.ServiceType) *ConsultationUpdateOne {
	_u.mutation.SetServiceType(v)
	return _u
}

// SetNillableServiceType sets the "service_type" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableServiceType(v *consultation.ServiceType) *ConsultationUpdateOne {
	if v != nil {
		_u.SetServiceType(*v)
	}
	return _u
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_u *ConsultationUpdateOne) SetDurationMinutes(v int) *ConsultationUpdateOne {
	_u.mutation.ResetDurationMinutes()
	_u.mutation.SetDurationMinutes(v)
	return _u
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableDurationMinutes(v *int) *ConsultationUpdateOne {
	if v != nil {
		_u.SetDurationMinutes(*v)
	}
	return _u
}

// AddDurationMinutes adds value to the "duration_minutes" field.
func (_u *ConsultationUpdateOne) AddDurationMinutes(v int) *ConsultationUpdateOne {
	_u.mutation.AddDurationMinutes(v)
	return _u
}

// SetScheduledAt sets the "scheduled_at" field.
func (_u *ConsultationUpdateOne) SetScheduledAt(v time.Time) *ConsultationUpdateOne {
	_u.mutation.SetScheduledAt(v)
	return _u
}

// SetNillableScheduledAt sets the "scheduled_at" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableScheduledAt(v *time.Time) *ConsultationUpdateOne {
	if v != nil {
		_u.SetScheduledAt(*v)
	}
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *ConsultationUpdateOne) SetPriceCents(v int) *ConsultationUpdateOne {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillablePriceCents(v *int) *ConsultationUpdateOne {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *ConsultationUpdateOne) AddPriceCents(v int) *ConsultationUpdateOne {
	_u.mutation.AddPriceCents(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConsultationUpdateOne) SetStatus(v consultation.Status) *ConsultationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableStatus(v *consultation.Status) *ConsultationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContactPhone sets the "contact_phone" field.
func (_u *ConsultationUpdateOne) SetContactPhone(v string) *ConsultationUpdateOne {
	_u.mutation.SetContactPhone(v)
	return _u
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableContactPhone(v *string) *ConsultationUpdateOne {
	if v != nil {
		_u.SetContactPhone(*v)
	}
	return _u
}

// ClearContactPhone clears the value of the "contact_phone" field.
func (_u *ConsultationUpdateOne) ClearContactPhone() *ConsultationUpdateOne {
	_u.mutation.ClearContactPhone()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *ConsultationUpdateOne) SetNotes(v string) *ConsultationUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableNotes(v *string) *ConsultationUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *ConsultationUpdateOne) ClearNotes() *ConsultationUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPaid sets the "paid" field.
func (_u *ConsultationUpdateOne) SetPaid(v bool) *ConsultationUpdateOne {
	_u.mutation.SetPaid(v)
	return _u
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillablePaid(v *bool) *ConsultationUpdateOne {
	if v != nil {
		_u.SetPaid(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConsultationUpdateOne) SetUpdatedAt(v time.Time) *ConsultationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ConsultationUpdateOne) SetUser(v *User) *ConsultationUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ConsultationMutation object of the builder.
func (_u *ConsultationUpdateOne) Mutation() *ConsultationMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ConsultationUpdateOne) ClearUser() *ConsultationUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the ConsultationUpdate builder.
func (_u *ConsultationUpdateOne) Where(ps ...predicate.Consultation) *ConsultationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConsultationUpdateOne) Select(field string, fields ...string) *ConsultationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Consultation entity.
func (_u *ConsultationUpdateOne) Save(ctx context.Context) (*Consultation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsultationUpdateOne) SaveX(ctx context.Context) *Consultation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConsultationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsultationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConsultationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := consultation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsultationUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := consultation.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Consultation.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ServiceType(); ok {
		if err := consultation.ServiceTypeValidator(v); err != nil {
			return &ValidationError{Name: "service_type", err: fmt.Errorf(`ent: validator failed for field "Consultation.service_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceCents(); ok {
		if err := consultation.PriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_cents", err: fmt.Errorf(`ent: validator failed for field "Consultation.price_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := consultation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Consultation.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Consultation.user"`)
	}
	return nil
}

func (_u *ConsultationUpdateOne) sqlSave(ctx context.Context) (_node *Consultation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consultation.Table, consultation.Columns, sqlgraph.NewFieldSpec(consultation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Consultation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, consultation.FieldID)
		for _, f := range fields {
			if !consultation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != consultation.FieldID {
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
	if value, ok := _u.mutation.ServiceType(); ok {
		_spec.SetField(consultation.FieldServiceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DurationMinutes(); ok {
		_spec.SetField(consultation.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMinutes(); ok {
		_spec.AddField(consultation.FieldDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ScheduledAt(); ok {
		_spec.SetField(consultation.FieldScheduledAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(consultation.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(consultation.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(consultation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ContactPhone(); ok {
		_spec.SetField(consultation.FieldContactPhone, field.TypeString, value)
	}
	if _u.mutation.ContactPhoneCleared() {
		_spec.ClearField(consultation.FieldContactPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(consultation.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(consultation.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.Paid(); ok {
		_spec.SetField(consultation.FieldPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(consultation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consultation.UserTable,
			Columns: []string{consultation.UserColumn},
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
			Table:   consultation.UserTable,
			Columns: []string{consultation.UserColumn},
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
	_node = &Consultation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consultation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
