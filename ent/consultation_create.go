// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chainadvisory/chainadvisory-api/ent/consultation"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// ConsultationCreate is the builder for creating a Consultation entity.
type ConsultationCreate struct {
	config
	mutation *ConsultationMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ConsultationCreate) SetUserID(v int) *ConsultationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetServiceType sets the "service_type" field.
func (_c *ConsultationCreate) SetServiceType(v consultation.ServiceType) *ConsultationCreate {
	_c.mutation.SetServiceType(v)
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *ConsultationCreate) SetDurationMinutes(v int) *ConsultationCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetScheduledAt sets the "scheduled_at" field.
func (_c *ConsultationCreate) SetScheduledAt(v time.Time) *ConsultationCreate {
	_c.mutation.SetScheduledAt(v)
	return _c
}

// SetPriceCents sets the "price_cents" field.
func (_c *ConsultationCreate) SetPriceCents(v int) *ConsultationCreate {
	_c.mutation.SetPriceCents(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConsultationCreate) SetStatus(v consultation.Status) *ConsultationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableStatus(v *consultation.Status) *ConsultationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetContactPhone sets the "contact_phone" field.
func (_c *ConsultationCreate) SetContactPhone(v string) *ConsultationCreate {
	_c.mutation.SetContactPhone(v)
	return _c
}

// SetNillableContactPhone sets the "contact_phone" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableContactPhone(v *string) *ConsultationCreate {
	if v != nil {
		_c.SetContactPhone(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *ConsultationCreate) SetNotes(v string) *ConsultationCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableNotes(v *string) *ConsultationCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetPaid sets the "paid" field.
func (_c *ConsultationCreate) SetPaid(v bool) *ConsultationCreate {
	_c.mutation.SetPaid(v)
	return _c
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillablePaid(v *bool) *ConsultationCreate {
	if v != nil {
		_c.SetPaid(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConsultationCreate) SetCreatedAt(v time.Time) *ConsultationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableCreatedAt(v *time.Time) *ConsultationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConsultationCreate) SetUpdatedAt(v time.Time) *ConsultationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableUpdatedAt(v *time.Time) *ConsultationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *ConsultationCreate) SetUser(v *User) *ConsultationCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the ConsultationMutation object of the builder.
func (_c *ConsultationCreate) Mutation() *ConsultationMutation {
	return _c.mutation
}

// Save creates the Consultation in the database.
func (_c *ConsultationCreate) Save(ctx context.Context) (*Consultation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConsultationCreate) SaveX(ctx context.Context) *Consultation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsultationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsultationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConsultationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := consultation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Paid(); !ok {
		v := consultation.DefaultPaid
		_c.mutation.SetPaid(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := consultation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := consultation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConsultationCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Consultation.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := consultation.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Consultation.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ServiceType(); !ok {
		return &ValidationError{Name: "service_type", err: errors.New(`ent: missing required field "Consultation.service_type"`)}
	}
	if v, ok := _c.mutation.ServiceType(); ok {
		if err := consultation.ServiceTypeValidator(v); err != nil {
			return &ValidationError{Name: "service_type", err: fmt.Errorf(`ent: validator failed for field "Consultation.service_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "Consultation.duration_minutes"`)}
	}
	if _, ok := _c.mutation.ScheduledAt(); !ok {
		return &ValidationError{Name: "scheduled_at", err: errors.New(`ent: missing required field "Consultation.scheduled_at"`)}
	}
	if _, ok := _c.mutation.PriceCents(); !ok {
		return &ValidationError{Name: "price_cents", err: errors.New(`ent: missing required field "Consultation.price_cents"`)}
	}
	if v, ok := _c.mutation.PriceCents(); ok {
		if err := consultation.PriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_cents", err: fmt.Errorf(`ent: validator failed for field "Consultation.price_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Consultation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := consultation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Consultation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Paid(); !ok {
		return &ValidationError{Name: "paid", err: errors.New(`ent: missing required field "Consultation.paid"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Consultation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Consultation.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Consultation.user"`)}
	}
	return nil
}

func (_c *ConsultationCreate) sqlSave(ctx context.Context) (*Consultation, error) {
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

func (_c *ConsultationCreate) createSpec() (*Consultation, *sqlgraph.CreateSpec) {
	var (
		_node = &Consultation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(consultation.Table, sqlgraph.NewFieldSpec(consultation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ServiceType(); ok {
		_spec.SetField(consultation.FieldServiceType, field.TypeEnum, value)
		_node.ServiceType = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(consultation.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.ScheduledAt(); ok {
		_spec.SetField(consultation.FieldScheduledAt, field.TypeTime, value)
		_node.ScheduledAt = value
	}
	if value, ok := _c.mutation.PriceCents(); ok {
		_spec.SetField(consultation.FieldPriceCents, field.TypeInt, value)
		_node.PriceCents = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(consultation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ContactPhone(); ok {
		_spec.SetField(consultation.FieldContactPhone, field.TypeString, value)
		_node.ContactPhone = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(consultation.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.Paid(); ok {
		_spec.SetField(consultation.FieldPaid, field.TypeBool, value)
		_node.Paid = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(consultation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(consultation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConsultationCreateBulk is the builder for creating many Consultation entities in bulk.
type ConsultationCreateBulk struct {
	config
	err      error
	builders []*ConsultationCreate
}

// Save creates the Consultation entities in the database.
func (_c *ConsultationCreateBulk) Save(ctx context.Context) ([]*Consultation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Consultation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConsultationMutation)
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
func (_c *ConsultationCreateBulk) SaveX(ctx context.Context) []*Consultation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsultationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsultationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
