// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/chainadvisory/chainadvisory-api/ent/assignment"
	"github.com/chainadvisory/chainadvisory-api/ent/auditlog"
	"github.com/chainadvisory/chainadvisory-api/ent/consultation"
	"github.com/chainadvisory/chainadvisory-api/ent/expertapplication"
	"github.com/chainadvisory/chainadvisory-api/ent/project"
	"github.com/chainadvisory/chainadvisory-api/ent/report"
	"github.com/chainadvisory/chainadvisory-api/ent/reputationrecord"
	"github.com/chainadvisory/chainadvisory-api/ent/subscription"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	mutation *UserMutation
	hooks    []Hook
}

// SetEmail sets the "email" field.
func (_c *UserCreate) SetEmail(v string) *UserCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *UserCreate) SetPasswordHash(v string) *UserCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetName sets the "name" field.
func (_c *UserCreate) SetName(v string) *UserCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCompany sets the "company" field.
func (_c *UserCreate) SetCompany(v string) *UserCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *UserCreate) SetNillableCompany(v *string) *UserCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *UserCreate) SetRole(v user.Role) *UserCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *UserCreate) SetNillableRole(v *user.Role) *UserCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *UserCreate) SetStatus(v user.Status) *UserCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *UserCreate) SetNillableStatus(v *user.Status) *UserCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSubmitterTier sets the "submitter_tier" field.
func (_c *UserCreate) SetSubmitterTier(v user.SubmitterTier) *UserCreate {
	_c.mutation.SetSubmitterTier(v)
	return _c
}

// SetNillableSubmitterTier sets the "submitter_tier" field if the given value is not nil.
func (_c *UserCreate) SetNillableSubmitterTier(v *user.SubmitterTier) *UserCreate {
	if v != nil {
		_c.SetSubmitterTier(*v)
	}
	return _c
}

// SetProjectsUsed sets the "projects_used" field.
func (_c *UserCreate) SetProjectsUsed(v int) *UserCreate {
	_c.mutation.SetProjectsUsed(v)
	return _c
}

// SetNillableProjectsUsed sets the "projects_used" field if the given value is not nil.
func (_c *UserCreate) SetNillableProjectsUsed(v *int) *UserCreate {
	if v != nil {
		_c.SetProjectsUsed(*v)
	}
	return _c
}

// SetMonthlyProjectLimit sets the "monthly_project_limit" field.
func (_c *UserCreate) SetMonthlyProjectLimit(v int) *UserCreate {
	_c.mutation.SetMonthlyProjectLimit(v)
	return _c
}

// SetNillableMonthlyProjectLimit sets the "monthly_project_limit" field if the given value is not nil.
func (_c *UserCreate) SetNillableMonthlyProjectLimit(v *int) *UserCreate {
	if v != nil {
		_c.SetMonthlyProjectLimit(*v)
	}
	return _c
}

// SetLastResetAt sets the "last_reset_at" field.
func (_c *UserCreate) SetLastResetAt(v time.Time) *UserCreate {
	_c.mutation.SetLastResetAt(v)
	return _c
}

// SetNillableLastResetAt sets the "last_reset_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableLastResetAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetLastResetAt(*v)
	}
	return _c
}

// SetTotalProjects sets the "total_projects" field.
func (_c *UserCreate) SetTotalProjects(v int) *UserCreate {
	_c.mutation.SetTotalProjects(v)
	return _c
}

// SetNillableTotalProjects sets the "total_projects" field if the given value is not nil.
func (_c *UserCreate) SetNillableTotalProjects(v *int) *UserCreate {
	if v != nil {
		_c.SetTotalProjects(*v)
	}
	return _c
}

// SetSuccessfulProjects sets the "successful_projects" field.
func (_c *UserCreate) SetSuccessfulProjects(v int) *UserCreate {
	_c.mutation.SetSuccessfulProjects(v)
	return _c
}

// SetNillableSuccessfulProjects sets the "successful_projects" field if the given value is not nil.
func (_c *UserCreate) SetNillableSuccessfulProjects(v *int) *UserCreate {
	if v != nil {
		_c.SetSuccessfulProjects(*v)
	}
	return _c
}

// SetAverageProjectScore sets the "average_project_score" field.
func (_c *UserCreate) SetAverageProjectScore(v float64) *UserCreate {
	_c.mutation.SetAverageProjectScore(v)
	return _c
}

// SetNillableAverageProjectScore sets the "average_project_score" field if the given value is not nil.
func (_c *UserCreate) SetNillableAverageProjectScore(v *float64) *UserCreate {
	if v != nil {
		_c.SetAverageProjectScore(*v)
	}
	return _c
}

// SetEmailVerified sets the "email_verified" field.
func (_c *UserCreate) SetEmailVerified(v bool) *UserCreate {
	_c.mutation.SetEmailVerified(v)
	return _c
}

// SetNillableEmailVerified sets the "email_verified" field if the given value is not nil.
func (_c *UserCreate) SetNillableEmailVerified(v *bool) *UserCreate {
	if v != nil {
		_c.SetEmailVerified(*v)
	}
	return _c
}

// SetEmailVerificationToken sets the "email_verification_token" field.
func (_c *UserCreate) SetEmailVerificationToken(v string) *UserCreate {
	_c.mutation.SetEmailVerificationToken(v)
	return _c
}

// SetNillableEmailVerificationToken sets the "email_verification_token" field if the given value is not nil.
func (_c *UserCreate) SetNillableEmailVerificationToken(v *string) *UserCreate {
	if v != nil {
		_c.SetEmailVerificationToken(*v)
	}
	return _c
}

// SetEmailVerificationTokenExpiresAt sets the "email_verification_token_expires_at" field.
func (_c *UserCreate) SetEmailVerificationTokenExpiresAt(v time.Time) *UserCreate {
	_c.mutation.SetEmailVerificationTokenExpiresAt(v)
	return _c
}

// SetNillableEmailVerificationTokenExpiresAt sets the "email_verification_token_expires_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableEmailVerificationTokenExpiresAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetEmailVerificationTokenExpiresAt(*v)
	}
	return _c
}

// SetLastLoginAt sets the "last_login_at" field.
func (_c *UserCreate) SetLastLoginAt(v time.Time) *UserCreate {
	_c.mutation.SetLastLoginAt(v)
	return _c
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableLastLoginAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetLastLoginAt(*v)
	}
	return _c
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_c *UserCreate) SetStripeCustomerID(v string) *UserCreate {
	_c.mutation.SetStripeCustomerID(v)
	return _c
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_c *UserCreate) SetNillableStripeCustomerID(v *string) *UserCreate {
	if v != nil {
		_c.SetStripeCustomerID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserCreate) SetCreatedAt(v time.Time) *UserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableCreatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserCreate) SetUpdatedAt(v time.Time) *UserCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableUpdatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by IDs.
func (_c *UserCreate) AddSubscriptionIDs(ids ...int) *UserCreate {
	_c.mutation.AddSubscriptionIDs(ids...)
	return _c
}

// AddSubscriptions adds the "subscriptions" edges to the Subscription entity.
func (_c *UserCreate) AddSubscriptions(v ...*Subscription) *UserCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubscriptionIDs(ids...)
}

// SetReputationID sets the "reputation" edge to the ReputationRecord entity by ID.
func (_c *UserCreate) SetReputationID(id int) *UserCreate {
	_c.mutation.SetReputationID(id)
	return _c
}

// SetNillableReputationID sets the "reputation" edge to the ReputationRecord entity by ID if the given value is not nil.
func (_c *UserCreate) SetNillableReputationID(id *int) *UserCreate {
	if id != nil {
		_c = _c.SetReputationID(*id)
	}
	return _c
}

// SetReputation sets the "reputation" edge to the ReputationRecord entity.
func (_c *UserCreate) SetReputation(v *ReputationRecord) *UserCreate {
	return _c.SetReputationID(v.ID)
}

// AddExpertApplicationIDs adds the "expert_applications" edge to the ExpertApplication entity by IDs.
func (_c *UserCreate) AddExpertApplicationIDs(ids ...int) *UserCreate {
	_c.mutation.AddExpertApplicationIDs(ids...)
	return _c
}

// AddExpertApplications adds the "expert_applications" edges to the ExpertApplication entity.
func (_c *UserCreate) AddExpertApplications(v ...*ExpertApplication) *UserCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExpertApplicationIDs(ids...)
}

// AddConsultationIDs adds the "consultations" edge to the Consultation entity by IDs.
func (_c *UserCreate) AddConsultationIDs(ids ...int) *UserCreate {
	_c.mutation.AddConsultationIDs(ids...)
	return _c
}

// AddConsultations adds the "consultations" edges to the Consultation entity.
func (_c *UserCreate) AddConsultations(v ...*Consultation) *UserCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConsultationIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the Report entity by IDs.
func (_c *UserCreate) AddReportIDs(ids ...int) *UserCreate {
	_c.mutation.AddReportIDs(ids...)
	return _c
}

// AddReports adds the "reports" edges to the Report entity.
func (_c *UserCreate) AddReports(v ...*Report) *UserCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReportIDs(ids...)
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_c *UserCreate) AddProjectIDs(ids ...int) *UserCreate {
	_c.mutation.AddProjectIDs(ids...)
	return _c
}

// AddProjects adds the "projects" edges to the Project entity.
func (_c *UserCreate) AddProjects(v ...*Project) *UserCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProjectIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the Assignment entity by IDs.
func (_c *UserCreate) AddAssignmentIDs(ids ...int) *UserCreate {
	_c.mutation.AddAssignmentIDs(ids...)
	return _c
}

// AddAssignments adds the "assignments" edges to the Assignment entity.
func (_c *UserCreate) AddAssignments(v ...*Assignment) *UserCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssignmentIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_c *UserCreate) AddAuditLogIDs(ids ...int) *UserCreate {
	_c.mutation.AddAuditLogIDs(ids...)
	return _c
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_c *UserCreate) AddAuditLogs(v ...*AuditLog) *UserCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditLogIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_c *UserCreate) Mutation() *UserMutation {
	return _c.mutation
}

// Save creates the User in the database.
func (_c *UserCreate) Save(ctx context.Context) (*User, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCreate) SaveX(ctx context.Context) *User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCreate) defaults() {
	if _, ok := _c.mutation.Role(); !ok {
		v := user.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := user.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.SubmitterTier(); !ok {
		v := user.DefaultSubmitterTier
		_c.mutation.SetSubmitterTier(v)
	}
	if _, ok := _c.mutation.ProjectsUsed(); !ok {
		v := user.DefaultProjectsUsed
		_c.mutation.SetProjectsUsed(v)
	}
	if _, ok := _c.mutation.MonthlyProjectLimit(); !ok {
		v := user.DefaultMonthlyProjectLimit
		_c.mutation.SetMonthlyProjectLimit(v)
	}
	if _, ok := _c.mutation.LastResetAt(); !ok {
		v := user.DefaultLastResetAt()
		_c.mutation.SetLastResetAt(v)
	}
	if _, ok := _c.mutation.TotalProjects(); !ok {
		v := user.DefaultTotalProjects
		_c.mutation.SetTotalProjects(v)
	}
	if _, ok := _c.mutation.SuccessfulProjects(); !ok {
		v := user.DefaultSuccessfulProjects
		_c.mutation.SetSuccessfulProjects(v)
	}
	if _, ok := _c.mutation.AverageProjectScore(); !ok {
		v := user.DefaultAverageProjectScore
		_c.mutation.SetAverageProjectScore(v)
	}
	if _, ok := _c.mutation.EmailVerified(); !ok {
		v := user.DefaultEmailVerified
		_c.mutation.SetEmailVerified(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := user.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := user.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCreate) check() error {
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "User.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PasswordHash(); !ok {
		return &ValidationError{Name: "password_hash", err: errors.New(`ent: missing required field "User.password_hash"`)}
	}
	if v, ok := _c.mutation.PasswordHash(); ok {
		if err := user.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "User.password_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "User.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "User.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "User.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := user.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "User.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmitterTier(); !ok {
		return &ValidationError{Name: "submitter_tier", err: errors.New(`ent: missing required field "User.submitter_tier"`)}
	}
	if v, ok := _c.mutation.SubmitterTier(); ok {
		if err := user.SubmitterTierValidator(v); err != nil {
			return &ValidationError{Name: "submitter_tier", err: fmt.Errorf(`ent: validator failed for field "User.submitter_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProjectsUsed(); !ok {
		return &ValidationError{Name: "projects_used", err: errors.New(`ent: missing required field "User.projects_used"`)}
	}
	if v, ok := _c.mutation.ProjectsUsed(); ok {
		if err := user.ProjectsUsedValidator(v); err != nil {
			return &ValidationError{Name: "projects_used", err: fmt.Errorf(`ent: validator failed for field "User.projects_used": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MonthlyProjectLimit(); !ok {
		return &ValidationError{Name: "monthly_project_limit", err: errors.New(`ent: missing required field "User.monthly_project_limit"`)}
	}
	if v, ok := _c.mutation.MonthlyProjectLimit(); ok {
		if err := user.MonthlyProjectLimitValidator(v); err != nil {
			return &ValidationError{Name: "monthly_project_limit", err: fmt.Errorf(`ent: validator failed for field "User.monthly_project_limit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastResetAt(); !ok {
		return &ValidationError{Name: "last_reset_at", err: errors.New(`ent: missing required field "User.last_reset_at"`)}
	}
	if _, ok := _c.mutation.TotalProjects(); !ok {
		return &ValidationError{Name: "total_projects", err: errors.New(`ent: missing required field "User.total_projects"`)}
	}
	if v, ok := _c.mutation.TotalProjects(); ok {
		if err := user.TotalProjectsValidator(v); err != nil {
			return &ValidationError{Name: "total_projects", err: fmt.Errorf(`ent: validator failed for field "User.total_projects": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SuccessfulProjects(); !ok {
		return &ValidationError{Name: "successful_projects", err: errors.New(`ent: missing required field "User.successful_projects"`)}
	}
	if v, ok := _c.mutation.SuccessfulProjects(); ok {
		if err := user.SuccessfulProjectsValidator(v); err != nil {
			return &ValidationError{Name: "successful_projects", err: fmt.Errorf(`ent: validator failed for field "User.successful_projects": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AverageProjectScore(); !ok {
		return &ValidationError{Name: "average_project_score", err: errors.New(`ent: missing required field "User.average_project_score"`)}
	}
	if _, ok := _c.mutation.EmailVerified(); !ok {
		return &ValidationError{Name: "email_verified", err: errors.New(`ent: missing required field "User.email_verified"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "User.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "User.updated_at"`)}
	}
	return nil
}

func (_c *UserCreate) sqlSave(ctx context.Context) (*User, error) {
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

func (_c *UserCreate) createSpec() (*User, *sqlgraph.CreateSpec) {
	var (
		_node = &User{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(user.Table, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(user.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(user.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SubmitterTier(); ok {
		_spec.SetField(user.FieldSubmitterTier, field.TypeEnum, value)
		_node.SubmitterTier = value
	}
	if value, ok := _c.mutation.ProjectsUsed(); ok {
		_spec.SetField(user.FieldProjectsUsed, field.TypeInt, value)
		_node.ProjectsUsed = value
	}
	if value, ok := _c.mutation.MonthlyProjectLimit(); ok {
		_spec.SetField(user.FieldMonthlyProjectLimit, field.TypeInt, value)
		_node.MonthlyProjectLimit = value
	}
	if value, ok := _c.mutation.LastResetAt(); ok {
		_spec.SetField(user.FieldLastResetAt, field.TypeTime, value)
		_node.LastResetAt = value
	}
	if value, ok := _c.mutation.TotalProjects(); ok {
		_spec.SetField(user.FieldTotalProjects, field.TypeInt, value)
		_node.TotalProjects = value
	}
	if value, ok := _c.mutation.SuccessfulProjects(); ok {
		_spec.SetField(user.FieldSuccessfulProjects, field.TypeInt, value)
		_node.SuccessfulProjects = value
	}
	if value, ok := _c.mutation.AverageProjectScore(); ok {
		_spec.SetField(user.FieldAverageProjectScore, field.TypeFloat64, value)
		_node.AverageProjectScore = value
	}
	if value, ok := _c.mutation.EmailVerified(); ok {
		_spec.SetField(user.FieldEmailVerified, field.TypeBool, value)
		_node.EmailVerified = value
	}
	if value, ok := _c.mutation.EmailVerificationToken(); ok {
		_spec.SetField(user.FieldEmailVerificationToken, field.TypeString, value)
		_node.EmailVerificationToken = &value
	}
	if value, ok := _c.mutation.EmailVerificationTokenExpiresAt(); ok {
		_spec.SetField(user.FieldEmailVerificationTokenExpiresAt, field.TypeTime, value)
		_node.EmailVerificationTokenExpiresAt = &value
	}
	if value, ok := _c.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
		_node.LastLoginAt = &value
	}
	if value, ok := _c.mutation.StripeCustomerID(); ok {
		_spec.SetField(user.FieldStripeCustomerID, field.TypeString, value)
		_node.StripeCustomerID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SubscriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.SubscriptionsTable,
			Columns: []string{user.SubscriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReputationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   user.ReputationTable,
			Columns: []string{user.ReputationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reputationrecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExpertApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ExpertApplicationsTable,
			Columns: []string{user.ExpertApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(expertapplication.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConsultationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ConsultationsTable,
			Columns: []string{user.ConsultationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consultation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ReportsTable,
			Columns: []string{user.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ProjectsTable,
			Columns: []string{user.ProjectsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignmentsTable,
			Columns: []string{user.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuditLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AuditLogsTable,
			Columns: []string{user.AuditLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	err      error
	builders []*UserCreate
}

// Save creates the User entities in the database.
func (_c *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*User, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMutation)
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
func (_c *UserCreateBulk) SaveX(ctx context.Context) []*User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
