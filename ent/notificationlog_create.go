// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chainadvisory/chainadvisory-api/ent/notificationlog"
)

// NotificationLogCreate is the builder for creating a NotificationLog entity.
type NotificationLogCreate struct {
	config
	mutation *NotificationLogMutation
	hooks    []Hook
}

// SetType sets the "type" field.
func (_c *NotificationLogCreate) SetType(v notificationlog.Type) *NotificationLogCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetEmailSent sets the "email_sent" field.
func (_c *NotificationLogCreate) SetEmailSent(v bool) *NotificationLogCreate {
	_c.mutation.SetEmailSent(v)
	return _c
}

// SetRecipient sets the "recipient" field.
func (_c *NotificationLogCreate) SetRecipient(v string) *NotificationLogCreate {
	_c.mutation.SetRecipient(v)
	return _c
}

// SetSender sets the "sender" field.
func (_c *NotificationLogCreate) SetSender(v string) *NotificationLogCreate {
	_c.mutation.SetSender(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *NotificationLogCreate) SetDetails(v string) *NotificationLogCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *NotificationLogCreate) SetNillableDetails(v *string) *NotificationLogCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NotificationLogCreate) SetCreatedAt(v time.Time) *NotificationLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NotificationLogCreate) SetNillableCreatedAt(v *time.Time) *NotificationLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the NotificationLogMutation object of the builder.
func (_c *NotificationLogCreate) Mutation() *NotificationLogMutation {
	return _c.mutation
}

// Save creates the NotificationLog in the database.
func (_c *NotificationLogCreate) Save(ctx context.Context) (*NotificationLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NotificationLogCreate) SaveX(ctx context.Context) *NotificationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NotificationLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notificationlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NotificationLogCreate) check() error {
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "NotificationLog.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := notificationlog.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "NotificationLog.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmailSent(); !ok {
		return &ValidationError{Name: "email_sent", err: errors.New(`ent: missing required field "NotificationLog.email_sent"`)}
	}
	if _, ok := _c.mutation.Recipient(); !ok {
		return &ValidationError{Name: "recipient", err: errors.New(`ent: missing required field "NotificationLog.recipient"`)}
	}
	if v, ok := _c.mutation.Recipient(); ok {
		if err := notificationlog.RecipientValidator(v); err != nil {
			return &ValidationError{Name: "recipient", err: fmt.Errorf(`ent: validator failed for field "NotificationLog.recipient": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sender(); !ok {
		return &ValidationError{Name: "sender", err: errors.New(`ent: missing required field "NotificationLog.sender"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "NotificationLog.created_at"`)}
	}
	return nil
}

func (_c *NotificationLogCreate) sqlSave(ctx context.Context) (*NotificationLog, error) {
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

func (_c *NotificationLogCreate) createSpec() (*NotificationLog, *sqlgraph.CreateSpec) {
	var (
		_node = &NotificationLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notificationlog.Table, sqlgraph.NewFieldSpec(notificationlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(notificationlog.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.EmailSent(); ok {
		_spec.SetField(notificationlog.FieldEmailSent, field.TypeBool, value)
		_node.EmailSent = value
	}
	if value, ok := _c.mutation.Recipient(); ok {
		_spec.SetField(notificationlog.FieldRecipient, field.TypeString, value)
		_node.Recipient = value
	}
	if value, ok := _c.mutation.Sender(); ok {
		_spec.SetField(notificationlog.FieldSender, field.TypeString, value)
		_node.Sender = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(notificationlog.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notificationlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// NotificationLogCreateBulk is the builder for creating many NotificationLog entities in bulk.
type NotificationLogCreateBulk struct {
	config
	err      error
	builders []*NotificationLogCreate
}

// Save creates the NotificationLog entities in the database.
func (_c *NotificationLogCreateBulk) Save(ctx context.Context) ([]*NotificationLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NotificationLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NotificationLogMutation)
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
func (_c *NotificationLogCreateBulk) SaveX(ctx context.Context) []*NotificationLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NotificationLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NotificationLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
