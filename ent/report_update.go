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
	"github.com/chainadvisory/chainadvisory-api/ent/report"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// ReportUpdate is the builder for updating Report entities.
type ReportUpdate struct {
	config
	hooks    []Hook
	mutation *ReportMutation
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdate) Where(ps ...predicate.Report) *ReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ReportUpdate) SetUserID(v int) *ReportUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableUserID(v *int) *ReportUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetReportType sets the "report_type" field.
func (_u *ReportUpdate) SetReportType(v report.ReportType) *ReportUpdate {
	_u.mutation.SetReportType(v)
	return _u
}

// SetNillableReportType sets the "report_type" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableReportType(v *report.ReportType) *ReportUpdate {
	if v != nil {
		_u.SetReportType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ReportUpdate) SetPriority(v report.Priority) *ReportUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ReportUpdate) SetNillablePriority(v *report.Priority) *ReportUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *ReportUpdate) SetPriceCents(v int) *ReportUpdate {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *ReportUpdate) SetNillablePriceCents(v *int) *ReportUpdate {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *ReportUpdate) AddPriceCents(v int) *ReportUpdate {
	_u.mutation.AddPriceCents(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdate) SetStatus(v report.Status) *ReportUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableStatus(v *report.Status) *ReportUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBrief sets the "brief" field.
func (_u *ReportUpdate) SetBrief(v string) *ReportUpdate {
	_u.mutation.SetBrief(v)
	return _u
}

// SetNillableBrief sets the "brief" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableBrief(v *string) *ReportUpdate {
	if v != nil {
		_u.SetBrief(*v)
	}
	return _u
}

// ClearBrief clears the value of the "brief" field.
func (_u *ReportUpdate) ClearBrief() *ReportUpdate {
	_u.mutation.ClearBrief()
	return _u
}

// SetPaid sets the "paid" field.
func (_u *ReportUpdate) SetPaid(v bool) *ReportUpdate {
	_u.mutation.SetPaid(v)
	return _u
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_u *ReportUpdate) SetNillablePaid(v *bool) *ReportUpdate {
	if v != nil {
		_u.SetPaid(*v)
	}
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *ReportUpdate) SetDeliveredAt(v time.Time) *ReportUpdate {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *ReportUpdate) SetNillableDeliveredAt(v *time.Time) *ReportUpdate {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *ReportUpdate) ClearDeliveredAt() *ReportUpdate {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdate) SetUpdatedAt(v time.Time) *ReportUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ReportUpdate) SetUser(v *User) *ReportUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdate) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ReportUpdate) ClearUser() *ReportUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := report.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Report.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReportType(); ok {
		if err := report.ReportTypeValidator(v); err != nil {
			return &ValidationError{Name: "report_type", err: fmt.Errorf(`ent: validator failed for field "Report.report_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := report.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Report.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceCents(); ok {
		if err := report.PriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_cents", err: fmt.Errorf(`ent: validator failed for field "Report.price_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.user"`)
	}
	return nil
}

func (_u *ReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReportType(); ok {
		_spec.SetField(report.FieldReportType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(report.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(report.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(report.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Brief(); ok {
		_spec.SetField(report.FieldBrief, field.TypeString, value)
	}
	if _u.mutation.BriefCleared() {
		_spec.ClearField(report.FieldBrief, field.TypeString)
	}
	if value, ok := _u.mutation.Paid(); ok {
		_spec.SetField(report.FieldPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(report.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(report.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.UserTable,
			Columns: []string{report.UserColumn},
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
			Table:   report.UserTable,
			Columns: []string{report.UserColumn},
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
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportUpdateOne is the builder for updating a single Report entity.
type ReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportMutation
}

// SetUserID sets the "user_id" field.
func (_u *ReportUpdateOne) SetUserID(v int) *ReportUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableUserID(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetReportType sets the "report_type" field.
func (_u *ReportUpdateOne) SetReportType(v report.ReportType) *ReportUpdateOne {
	_u.mutation.SetReportType(v)
	return _u
}

// SetNillableReportType sets the "report_type" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableReportType(v *report.ReportType) *ReportUpdateOne {
	if v != nil {
		_u.SetReportType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ReportUpdateOne) SetPriority(v report.Priority) *ReportUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillablePriority(v *report.Priority) *ReportUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetPriceCents sets the "price_cents" field.
func (_u *ReportUpdateOne) SetPriceCents(v int) *ReportUpdateOne {
	_u.mutation.ResetPriceCents()
	_u.mutation.SetPriceCents(v)
	return _u
}

// SetNillablePriceCents sets the "price_cents" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillablePriceCents(v *int) *ReportUpdateOne {
	if v != nil {
		_u.SetPriceCents(*v)
	}
	return _u
}

// AddPriceCents adds value to the "price_cents" field.
func (_u *ReportUpdateOne) AddPriceCents(v int) *ReportUpdateOne {
	_u.mutation.AddPriceCents(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReportUpdateOne) SetStatus(v report.Status) *ReportUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableStatus(v *report.Status) *ReportUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBrief sets the "brief" field.
func (_u *ReportUpdateOne) SetBrief(v string) *ReportUpdateOne {
	_u.mutation.SetBrief(v)
	return _u
}

// SetNillableBrief sets the "brief" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableBrief(v *string) *ReportUpdateOne {
	if v != nil {
		_u.SetBrief(*v)
	}
	return _u
}

// ClearBrief clears the value of the "brief" field.
func (_u *ReportUpdateOne) ClearBrief() *ReportUpdateOne {
	_u.mutation.ClearBrief()
	return _u
}

// SetPaid sets the "paid" field.
func (_u *ReportUpdateOne) SetPaid(v bool) *ReportUpdateOne {
	_u.mutation.SetPaid(v)
	return _u
}

// SetNillablePaid sets the "paid" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillablePaid(v *bool) *ReportUpdateOne {
	if v != nil {
		_u.SetPaid(*v)
	}
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *ReportUpdateOne) SetDeliveredAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *ReportUpdateOne) SetNillableDeliveredAt(v *time.Time) *ReportUpdateOne {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *ReportUpdateOne) ClearDeliveredAt() *ReportUpdateOne {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReportUpdateOne) SetUpdatedAt(v time.Time) *ReportUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ReportUpdateOne) SetUser(v *User) *ReportUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the ReportMutation object of the builder.
func (_u *ReportUpdateOne) Mutation() *ReportMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ReportUpdateOne) ClearUser() *ReportUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the ReportUpdate builder.
func (_u *ReportUpdateOne) Where(ps ...predicate.Report) *ReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportUpdateOne) Select(field string, fields ...string) *ReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Report entity.
func (_u *ReportUpdateOne) Save(ctx context.Context) (*Report, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportUpdateOne) SaveX(ctx context.Context) *Report {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReportUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := report.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := report.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Report.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReportType(); ok {
		if err := report.ReportTypeValidator(v); err != nil {
			return &ValidationError{Name: "report_type", err: fmt.Errorf(`ent: validator failed for field "Report.report_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := report.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Report.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriceCents(); ok {
		if err := report.PriceCentsValidator(v); err != nil {
			return &ValidationError{Name: "price_cents", err: fmt.Errorf(`ent: validator failed for field "Report.price_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := report.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Report.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Report.user"`)
	}
	return nil
}

func (_u *ReportUpdateOne) sqlSave(ctx context.Context) (_node *Report, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(report.Table, report.Columns, sqlgraph.NewFieldSpec(report.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Report.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, report.FieldID)
		for _, f := range fields {
			if !report.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != report.FieldID {
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
	if value, ok := _u.mutation.ReportType(); ok {
		_spec.SetField(report.FieldReportType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(report.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PriceCents(); ok {
		_spec.SetField(report.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriceCents(); ok {
		_spec.AddField(report.FieldPriceCents, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(report.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Brief(); ok {
		_spec.SetField(report.FieldBrief, field.TypeString, value)
	}
	if _u.mutation.BriefCleared() {
		_spec.ClearField(report.FieldBrief, field.TypeString)
	}
	if value, ok := _u.mutation.Paid(); ok {
		_spec.SetField(report.FieldPaid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(report.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(report.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(report.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   report.UserTable,
			Columns: []string{report.UserColumn},
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
			Table:   report.UserTable,
			Columns: []string{report.UserColumn},
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
	_node = &Report{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{report.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
