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
	"github.com/chainadvisory/chainadvisory-api/ent/assignment"
	"github.com/chainadvisory/chainadvisory-api/ent/auditlog"
	"github.com/chainadvisory/chainadvisory-api/ent/consultation"
	"github.com/chainadvisory/chainadvisory-api/ent/expertapplication"
	"github.com/chainadvisory/chainadvisory-api/ent/predicate"
	"github.com/chainadvisory/chainadvisory-api/ent/project"
	"github.com/chainadvisory/chainadvisory-api/ent/report"
	"github.com/chainadvisory/chainadvisory-api/ent/reputationrecord"
	"github.com/chainadvisory/chainadvisory-api/ent/subscription"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdate) SetPasswordHash(v string) *UserUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePasswordHash(v *string) *UserUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdate) SetName(v string) *UserUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableName(v *string) *UserUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *UserUpdate) SetCompany(v string) *UserUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *UserUpdate) SetNillableCompany(v *string) *UserUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *UserUpdate) ClearCompany() *UserUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdate) SetRole(v user.Role) *UserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRole(v *user.Role) *UserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserUpdate) SetStatus(v user.Status) *UserUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserUpdate) SetNillableStatus(v *user.Status) *UserUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSubmitterTier sets the "submitter_tier" field.
func (_u *UserUpdate) SetSubmitterTier(v user.SubmitterTier) *UserUpdate {
	_u.mutation.SetSubmitterTier(v)
	return _u
}

// SetNillableSubmitterTier sets the "submitter_tier" field if the given value is not nil.
func (_u *UserUpdate) SetNillableSubmitterTier(v *user.SubmitterTier) *UserUpdate {
	if v != nil {
		_u.SetSubmitterTier(*v)
	}
	return _u
}

// SetProjectsUsed sets the "projects_used" field.
func (_u *UserUpdate) SetProjectsUsed(v int) *UserUpdate {
	_u.mutation.ResetProjectsUsed()
	_u.mutation.SetProjectsUsed(v)
	return _u
}

// SetNillableProjectsUsed sets the "projects_used" field if the given value is not nil.
func (_u *UserUpdate) SetNillableProjectsUsed(v *int) *UserUpdate {
	if v != nil {
		_u.SetProjectsUsed(*v)
	}
	return _u
}

// AddProjectsUsed adds value to the "projects_used" field.
func (_u *UserUpdate) AddProjectsUsed(v int) *UserUpdate {
	_u.mutation.AddProjectsUsed(v)
	return _u
}

// SetMonthlyProjectLimit sets the "monthly_project_limit" field.
func (_u *UserUpdate) SetMonthlyProjectLimit(v int) *UserUpdate {
	_u.mutation.ResetMonthlyProjectLimit()
	_u.mutation.SetMonthlyProjectLimit(v)
	return _u
}

// SetNillableMonthlyProjectLimit sets the "monthly_project_limit" field if the given value is not nil.
func (_u *UserUpdate) SetNillableMonthlyProjectLimit(v *int) *UserUpdate {
	if v != nil {
		_u.SetMonthlyProjectLimit(*v)
	}
	return _u
}

// AddMonthlyProjectLimit adds value to the "monthly_project_limit" field.
func (_u *UserUpdate) AddMonthlyProjectLimit(v int) *UserUpdate {
	_u.mutation.AddMonthlyProjectLimit(v)
	return _u
}

// SetLastResetAt sets the "last_reset_at" field.
func (_u *UserUpdate) SetLastResetAt(v time.Time) *UserUpdate {
	_u.mutation.SetLastResetAt(v)
	return _u
}

// SetNillableLastResetAt sets the "last_reset_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastResetAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastResetAt(*v)
	}
	return _u
}

// SetTotalProjects sets the "total_projects" field.
func (_u *UserUpdate) SetTotalProjects(v int) *UserUpdate {
	_u.mutation.ResetTotalProjects()
	_u.mutation.SetTotalProjects(v)
	return _u
}

// SetNillableTotalProjects sets the "total_projects" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTotalProjects(v *int) *UserUpdate {
	if v != nil {
		_u.SetTotalProjects(*v)
	}
	return _u
}

// AddTotalProjects adds value to the "total_projects" field.
func (_u *UserUpdate) AddTotalProjects(v int) *UserUpdate {
	_u.mutation.AddTotalProjects(v)
	return _u
}

// SetSuccessfulProjects sets the "successful_projects" field.
func (_u *UserUpdate) SetSuccessfulProjects(v int) *UserUpdate {
	_u.mutation.ResetSuccessfulProjects()
	_u.mutation.SetSuccessfulProjects(v)
	return _u
}

// SetNillableSuccessfulProjects sets the "successful_projects" field if the given value is not nil.
func (_u *UserUpdate) SetNillableSuccessfulProjects(v *int) *UserUpdate {
	if v != nil {
		_u.SetSuccessfulProjects(*v)
	}
	return _u
}

// AddSuccessfulProjects adds value to the "successful_projects" field.
func (_u *UserUpdate) AddSuccessfulProjects(v int) *UserUpdate {
	_u.mutation.AddSuccessfulProjects(v)
	return _u
}

// SetAverageProjectScore sets the "average_project_score" field.
func (_u *UserUpdate) SetAverageProjectScore(v float64) *UserUpdate {
	_u.mutation.ResetAverageProjectScore()
	_u.mutation.SetAverageProjectScore(v)
	return _u
}

// SetNillableAverageProjectScore sets the "average_project_score" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAverageProjectScore(v *float64) *UserUpdate {
	if v != nil {
		_u.SetAverageProjectScore(*v)
	}
	return _u
}

// AddAverageProjectScore adds value to the "average_project_score" field.
func (_u *UserUpdate) AddAverageProjectScore(v float64) *UserUpdate {
	_u.mutation.AddAverageProjectScore(v)
	return _u
}

// SetEmailVerified sets the "email_verified" field.
func (_u *UserUpdate) SetEmailVerified(v bool) *UserUpdate {
	_u.mutation.SetEmailVerified(v)
	return _u
}

// SetNillableEmailVerified sets the "email_verified" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmailVerified(v *bool) *UserUpdate {
	if v != nil {
		_u.SetEmailVerified(*v)
	}
	return _u
}

// SetEmailVerificationToken sets the "email_verification_token" field.
func (_u *UserUpdate) SetEmailVerificationToken(v string) *UserUpdate {
	_u.mutation.SetEmailVerificationToken(v)
	return _u
}

// SetNillableEmailVerificationToken sets the "email_verification_token" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmailVerificationToken(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmailVerificationToken(*v)
	}
	return _u
}

// ClearEmailVerificationToken clears the value of the "email_verification_token" field.
func (_u *UserUpdate) ClearEmailVerificationToken() *UserUpdate {
	_u.mutation.ClearEmailVerificationToken()
	return _u
}

// SetEmailVerificationTokenExpiresAt sets the "email_verification_token_expires_at" field.
func (_u *UserUpdate) SetEmailVerificationTokenExpiresAt(v time.Time) *UserUpdate {
	_u.mutation.SetEmailVerificationTokenExpiresAt(v)
	return _u
}

// SetNillableEmailVerificationTokenExpiresAt sets the "email_verification_token_expires_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmailVerificationTokenExpiresAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetEmailVerificationTokenExpiresAt(*v)
	}
	return _u
}

// ClearEmailVerificationTokenExpiresAt clears the value of the "email_verification_token_expires_at" field.
func (_u *UserUpdate) ClearEmailVerificationTokenExpiresAt() *UserUpdate {
	_u.mutation.ClearEmailVerificationTokenExpiresAt()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdate) SetLastLoginAt(v time.Time) *UserUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastLoginAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdate) ClearLastLoginAt() *UserUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_u *UserUpdate) SetStripeCustomerID(v string) *UserUpdate {
	_u.mutation.SetStripeCustomerID(v)
	return _u
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_u *UserUpdate) SetNillableStripeCustomerID(v *string) *UserUpdate {
	if v != nil {
		_u.SetStripeCustomerID(*v)
	}
	return _u
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (_u *UserUpdate) ClearStripeCustomerID() *UserUpdate {
	_u.mutation.ClearStripeCustomerID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by IDs.
func (_u *UserUpdate) AddSubscriptionIDs(ids ...int) *UserUpdate {
	_u.mutation.AddSubscriptionIDs(ids...)
	return _u
}

// AddSubscriptions adds the "subscriptions" edges to the Subscription entity.
func (_u *UserUpdate) AddSubscriptions(v ...*Subscription) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriptionIDs(ids...)
}

// SetReputationID sets the "reputation" edge to the ReputationRecord entity by ID.
func (_u *UserUpdate) SetReputationID(id int) *UserUpdate {
	_u.mutation.SetReputationID(id)
	return _u
}

// SetNillableReputationID sets the "reputation" edge to the ReputationRecord entity by ID if the given value is not nil.
func (_u *UserUpdate) SetNillableReputationID(id *int) *UserUpdate {
	if id != nil {
		_u = _u.SetReputationID(*id)
	}
	return _u
}

// SetReputation sets the "reputation" edge to the ReputationRecord entity.
func (_u *UserUpdate) SetReputation(v *ReputationRecord) *UserUpdate {
	return _u.SetReputationID(v.ID)
}

// AddExpertApplicationIDs adds the "expert_applications" edge to the ExpertApplication entity by IDs.
func (_u *UserUpdate) AddExpertApplicationIDs(ids ...int) *UserUpdate {
	_u.mutation.AddExpertApplicationIDs(ids...)
	return _u
}

// AddExpertApplications adds the "expert_applications" edges to the ExpertApplication entity.
func (_u *UserUpdate) AddExpertApplications(v ...*ExpertApplication) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExpertApplicationIDs(ids...)
}

// AddConsultationIDs adds the "consultations" edge to the Consultation entity by IDs.
func (_u *UserUpdate) AddConsultationIDs(ids ...int) *UserUpdate {
	_u.mutation.AddConsultationIDs(ids...)
	return _u
}

// AddConsultations adds the "consultations" edges to the Consultation entity.
func (_u *UserUpdate) AddConsultations(v ...*Consultation) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConsultationIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the Report entity by IDs.
func (_u *UserUpdate) AddReportIDs(ids ...int) *UserUpdate {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the Report entity.
func (_u *UserUpdate) AddReports(v ...*Report) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_u *UserUpdate) AddProjectIDs(ids ...int) *UserUpdate {
	_u.mutation.AddProjectIDs(ids...)
	return _u
}

// AddProjects adds the "projects" edges to the Project entity.
func (_u *UserUpdate) AddProjects(v ...*Project) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProjectIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the Assignment entity by IDs.
func (_u *UserUpdate) AddAssignmentIDs(ids ...int) *UserUpdate {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the Assignment entity.
func (_u *UserUpdate) AddAssignments(v ...*Assignment) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *UserUpdate) AddAuditLogIDs(ids ...int) *UserUpdate {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *UserUpdate) AddAuditLogs(v ...*AuditLog) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearSubscriptions clears all "subscriptions" edges to the Subscription entity.
func (_u *UserUpdate) ClearSubscriptions() *UserUpdate {
	_u.mutation.ClearSubscriptions()
	return _u
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to Subscription entities by IDs.
func (_u *UserUpdate) RemoveSubscriptionIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveSubscriptionIDs(ids...)
	return _u
}

// RemoveSubscriptions removes "subscriptions" edges to Subscription entities.
func (_u *UserUpdate) RemoveSubscriptions(v ...*Subscription) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriptionIDs(ids...)
}

// ClearReputation clears the "reputation" edge to the ReputationRecord entity.
func (_u *UserUpdate) ClearReputation() *UserUpdate {
	_u.mutation.ClearReputation()
	return _u
}

// ClearExpertApplications clears all "expert_applications" edges to the ExpertApplication entity.
func (_u *UserUpdate) ClearExpertApplications() *UserUpdate {
	_u.mutation.ClearExpertApplications()
	return _u
}

// RemoveExpertApplicationIDs removes the "expert_applications" edge to ExpertApplication entities by IDs.
func (_u *UserUpdate) RemoveExpertApplicationIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveExpertApplicationIDs(ids...)
	return _u
}

// RemoveExpertApplications removes "expert_applications" edges to ExpertApplication entities.
func (_u *UserUpdate) RemoveExpertApplications(v ...*ExpertApplication) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExpertApplicationIDs(ids...)
}

// ClearConsultations clears all "consultations" edges to the Consultation entity.
func (_u *UserUpdate) ClearConsultations() *UserUpdate {
	_u.mutation.ClearConsultations()
	return _u
}

// RemoveConsultationIDs removes the "consultations" edge to Consultation entities by IDs.
func (_u *UserUpdate) RemoveConsultationIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveConsultationIDs(ids...)
	return _u
}

// RemoveConsultations removes "consultations" edges to Consultation entities.
func (_u *UserUpdate) RemoveConsultations(v ...*Consultation) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConsultationIDs(ids...)
}

// ClearReports clears all "reports" edges to the Report entity.
func (_u *UserUpdate) ClearReports() *UserUpdate {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to Report entities by IDs.
func (_u *UserUpdate) RemoveReportIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to Report entities.
func (_u *UserUpdate) RemoveReports(v ...*Report) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// ClearProjects clears all "projects" edges to the Project entity.
func (_u *UserUpdate) ClearProjects() *UserUpdate {
	_u.mutation.ClearProjects()
	return _u
}

// RemoveProjectIDs removes the "projects" edge to Project entities by IDs.
func (_u *UserUpdate) RemoveProjectIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveProjectIDs(ids...)
	return _u
}

// RemoveProjects removes "projects" edges to Project entities.
func (_u *UserUpdate) RemoveProjects(v ...*Project) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProjectIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the Assignment entity.
func (_u *UserUpdate) ClearAssignments() *UserUpdate {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to Assignment entities by IDs.
func (_u *UserUpdate) RemoveAssignmentIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to Assignment entities.
func (_u *UserUpdate) RemoveAssignments(v ...*Assignment) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *UserUpdate) ClearAuditLogs() *UserUpdate {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *UserUpdate) RemoveAuditLogIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *UserUpdate) RemoveAuditLogs(v ...*AuditLog) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := user.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "User.password_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := user.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "User.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmitterTier(); ok {
		if err := user.SubmitterTierValidator(v); err != nil {
			return &ValidationError{Name: "submitter_tier", err: fmt.Errorf(`ent: validator failed for field "User.submitter_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProjectsUsed(); ok {
		if err := user.ProjectsUsedValidator(v); err != nil {
			return &ValidationError{Name: "projects_used", err: fmt.Errorf(`ent: validator failed for field "User.projects_used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MonthlyProjectLimit(); ok {
		if err := user.MonthlyProjectLimitValidator(v); err != nil {
			return &ValidationError{Name: "monthly_project_limit", err: fmt.Errorf(`ent: validator failed for field "User.monthly_project_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalProjects(); ok {
		if err := user.TotalProjectsValidator(v); err != nil {
			return &ValidationError{Name: "total_projects", err: fmt.Errorf(`ent: validator failed for field "User.total_projects": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessfulProjects(); ok {
		if err := user.SuccessfulProjectsValidator(v); err != nil {
			return &ValidationError{Name: "successful_projects", err: fmt.Errorf(`ent: validator failed for field "User.successful_projects": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(user.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(user.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(user.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubmitterTier(); ok {
		_spec.SetField(user.FieldSubmitterTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProjectsUsed(); ok {
		_spec.SetField(user.FieldProjectsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectsUsed(); ok {
		_spec.AddField(user.FieldProjectsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MonthlyProjectLimit(); ok {
		_spec.SetField(user.FieldMonthlyProjectLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonthlyProjectLimit(); ok {
		_spec.AddField(user.FieldMonthlyProjectLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastResetAt(); ok {
		_spec.SetField(user.FieldLastResetAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalProjects(); ok {
		_spec.SetField(user.FieldTotalProjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalProjects(); ok {
		_spec.AddField(user.FieldTotalProjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessfulProjects(); ok {
		_spec.SetField(user.FieldSuccessfulProjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulProjects(); ok {
		_spec.AddField(user.FieldSuccessfulProjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageProjectScore(); ok {
		_spec.SetField(user.FieldAverageProjectScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageProjectScore(); ok {
		_spec.AddField(user.FieldAverageProjectScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EmailVerified(); ok {
		_spec.SetField(user.FieldEmailVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailVerificationToken(); ok {
		_spec.SetField(user.FieldEmailVerificationToken, field.TypeString, value)
	}
	if _u.mutation.EmailVerificationTokenCleared() {
		_spec.ClearField(user.FieldEmailVerificationToken, field.TypeString)
	}
	if value, ok := _u.mutation.EmailVerificationTokenExpiresAt(); ok {
		_spec.SetField(user.FieldEmailVerificationTokenExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.EmailVerificationTokenExpiresAtCleared() {
		_spec.ClearField(user.FieldEmailVerificationTokenExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StripeCustomerID(); ok {
		_spec.SetField(user.FieldStripeCustomerID, field.TypeString, value)
	}
	if _u.mutation.StripeCustomerIDCleared() {
		_spec.ClearField(user.FieldStripeCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscriptionsIDs(); len(nodes) > 0 && !_u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReputationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReputationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExpertApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExpertApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ExpertApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExpertApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConsultationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConsultationsIDs(); len(nodes) > 0 && !_u.mutation.ConsultationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConsultationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProjectsIDs(); len(nodes) > 0 && !_u.mutation.ProjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdateOne) SetPasswordHash(v string) *UserUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePasswordHash(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *UserUpdateOne) SetName(v string) *UserUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *UserUpdateOne) SetCompany(v string) *UserUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableCompany(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *UserUpdateOne) ClearCompany() *UserUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdateOne) SetRole(v user.Role) *UserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRole(v *user.Role) *UserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *UserUpdateOne) SetStatus(v user.Status) *UserUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableStatus(v *user.Status) *UserUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSubmitterTier sets the "submitter_tier" field.
func (_u *UserUpdateOne) SetSubmitterTier(v user.SubmitterTier) *UserUpdateOne {
	_u.mutation.SetSubmitterTier(v)
	return _u
}

// SetNillableSubmitterTier sets the "submitter_tier" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableSubmitterTier(v *user.SubmitterTier) *UserUpdateOne {
	if v != nil {
		_u.SetSubmitterTier(*v)
	}
	return _u
}

// SetProjectsUsed sets the "projects_used" field.
func (_u *UserUpdateOne) SetProjectsUsed(v int) *UserUpdateOne {
	_u.mutation.ResetProjectsUsed()
	_u.mutation.SetProjectsUsed(v)
	return _u
}

// SetNillableProjectsUsed sets the "projects_used" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableProjectsUsed(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetProjectsUsed(*v)
	}
	return _u
}

// AddProjectsUsed adds value to the "projects_used" field.
func (_u *UserUpdateOne) AddProjectsUsed(v int) *UserUpdateOne {
	_u.mutation.AddProjectsUsed(v)
	return _u
}

// SetMonthlyProjectLimit sets the "monthly_project_limit" field.
func (_u *UserUpdateOne) SetMonthlyProjectLimit(v int) *UserUpdateOne {
	_u.mutation.ResetMonthlyProjectLimit()
	_u.mutation.SetMonthlyProjectLimit(v)
	return _u
}

// SetNillableMonthlyProjectLimit sets the "monthly_project_limit" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableMonthlyProjectLimit(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetMonthlyProjectLimit(*v)
	}
	return _u
}

// AddMonthlyProjectLimit adds value to the "monthly_project_limit" field.
func (_u *UserUpdateOne) AddMonthlyProjectLimit(v int) *UserUpdateOne {
	_u.mutation.AddMonthlyProjectLimit(v)
	return _u
}

// SetLastResetAt sets the "last_reset_at" field.
func (_u *UserUpdateOne) SetLastResetAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastResetAt(v)
	return _u
}

// SetNillableLastResetAt sets the "last_reset_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastResetAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastResetAt(*v)
	}
	return _u
}

// SetTotalProjects sets the "total_projects" field.
func (_u *UserUpdateOne) SetTotalProjects(v int) *UserUpdateOne {
	_u.mutation.ResetTotalProjects()
	_u.mutation.SetTotalProjects(v)
	return _u
}

// SetNillableTotalProjects sets the "total_projects" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTotalProjects(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetTotalProjects(*v)
	}
	return _u
}

// AddTotalProjects adds value to the "total_projects" field.
func (_u *UserUpdateOne) AddTotalProjects(v int) *UserUpdateOne {
	_u.mutation.AddTotalProjects(v)
	return _u
}

// SetSuccessfulProjects sets the "successful_projects" field.
func (_u *UserUpdateOne) SetSuccessfulProjects(v int) *UserUpdateOne {
	_u.mutation.ResetSuccessfulProjects()
	_u.mutation.SetSuccessfulProjects(v)
	return _u
}

// SetNillableSuccessfulProjects sets the "successful_projects" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableSuccessfulProjects(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetSuccessfulProjects(*v)
	}
	return _u
}

// AddSuccessfulProjects adds value to the "successful_projects" field.
func (_u *UserUpdateOne) AddSuccessfulProjects(v int) *UserUpdateOne {
	_u.mutation.AddSuccessfulProjects(v)
	return _u
}

// SetAverageProjectScore sets the "average_project_score" field.
func (_u *UserUpdateOne) SetAverageProjectScore(v float64) *UserUpdateOne {
	_u.mutation.ResetAverageProjectScore()
	_u.mutation.SetAverageProjectScore(v)
	return _u
}

// SetNillableAverageProjectScore sets the "average_project_score" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAverageProjectScore(v *float64) *UserUpdateOne {
	if v != nil {
		_u.SetAverageProjectScore(*v)
	}
	return _u
}

// AddAverageProjectScore adds value to the "average_project_score" field.
func (_u *UserUpdateOne) AddAverageProjectScore(v float64) *UserUpdateOne {
	_u.mutation.AddAverageProjectScore(v)
	return _u
}

// SetEmailVerified sets the "email_verified" field.
func (_u *UserUpdateOne) SetEmailVerified(v bool) *UserUpdateOne {
	_u.mutation.SetEmailVerified(v)
	return _u
}

// SetNillableEmailVerified sets the "email_verified" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmailVerified(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetEmailVerified(*v)
	}
	return _u
}

// SetEmailVerificationToken sets the "email_verification_token" field.
func (_u *UserUpdateOne) SetEmailVerificationToken(v string) *UserUpdateOne {
	_u.mutation.SetEmailVerificationToken(v)
	return _u
}

// SetNillableEmailVerificationToken sets the "email_verification_token" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmailVerificationToken(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmailVerificationToken(*v)
	}
	return _u
}

// ClearEmailVerificationToken clears the value of the "email_verification_token" field.
func (_u *UserUpdateOne) ClearEmailVerificationToken() *UserUpdateOne {
	_u.mutation.ClearEmailVerificationToken()
	return _u
}

// SetEmailVerificationTokenExpiresAt sets the "email_verification_token_expires_at" field.
func (_u *UserUpdateOne) SetEmailVerificationTokenExpiresAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetEmailVerificationTokenExpiresAt(v)
	return _u
}

// SetNillableEmailVerificationTokenExpiresAt sets the "email_verification_token_expires_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmailVerificationTokenExpiresAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetEmailVerificationTokenExpiresAt(*v)
	}
	return _u
}

// ClearEmailVerificationTokenExpiresAt clears the value of the "email_verification_token_expires_at" field.
func (_u *UserUpdateOne) ClearEmailVerificationTokenExpiresAt() *UserUpdateOne {
	_u.mutation.ClearEmailVerificationTokenExpiresAt()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdateOne) SetLastLoginAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastLoginAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdateOne) ClearLastLoginAt() *UserUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetStripeCustomerID sets the "stripe_customer_id" field.
func (_u *UserUpdateOne) SetStripeCustomerID(v string) *UserUpdateOne {
	_u.mutation.SetStripeCustomerID(v)
	return _u
}

// SetNillableStripeCustomerID sets the "stripe_customer_id" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableStripeCustomerID(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetStripeCustomerID(*v)
	}
	return _u
}

// ClearStripeCustomerID clears the value of the "stripe_customer_id" field.
func (_u *UserUpdateOne) ClearStripeCustomerID() *UserUpdateOne {
	_u.mutation.ClearStripeCustomerID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSubscriptionIDs adds the "subscriptions" edge to the Subscription entity by IDs.
func (_u *UserUpdateOne) AddSubscriptionIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddSubscriptionIDs(ids...)
	return _u
}

// AddSubscriptions adds the "subscriptions" edges to the Subscription entity.
func (_u *UserUpdateOne) AddSubscriptions(v ...*Subscription) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubscriptionIDs(ids...)
}

// SetReputationID sets the "reputation" edge to the ReputationRecord entity by ID.
func (_u *UserUpdateOne) SetReputationID(id int) *UserUpdateOne {
	_u.mutation.SetReputationID(id)
	return _u
}

// SetNillableReputationID sets the "reputation" edge to the ReputationRecord entity by ID if the given value is not nil.
func (_u *UserUpdateOne) SetNillableReputationID(id *int) *UserUpdateOne {
	if id != nil {
		_u = _u.SetReputationID(*id)
	}
	return _u
}

// SetReputation sets the "reputation" edge to the ReputationRecord entity.
func (_u *UserUpdateOne) SetReputation(v *ReputationRecord) *UserUpdateOne {
	return _u.SetReputationID(v.ID)
}

// AddExpertApplicationIDs adds the "expert_applications" edge to the ExpertApplication entity by IDs.
func (_u *UserUpdateOne) AddExpertApplicationIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddExpertApplicationIDs(ids...)
	return _u
}

// AddExpertApplications adds the "expert_applications" edges to the ExpertApplication entity.
func (_u *UserUpdateOne) AddExpertApplications(v ...*ExpertApplication) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExpertApplicationIDs(ids...)
}

// AddConsultationIDs adds the "consultations" edge to the Consultation entity by IDs.
func (_u *UserUpdateOne) AddConsultationIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddConsultationIDs(ids...)
	return _u
}

// AddConsultations adds the "consultations" edges to the Consultation entity.
func (_u *UserUpdateOne) AddConsultations(v ...*Consultation) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConsultationIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the Report entity by IDs.
func (_u *UserUpdateOne) AddReportIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the Report entity.
func (_u *UserUpdateOne) AddReports(v ...*Report) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_u *UserUpdateOne) AddProjectIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddProjectIDs(ids...)
	return _u
}

// AddProjects adds the "projects" edges to the Project entity.
func (_u *UserUpdateOne) AddProjects(v ...*Project) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProjectIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the Assignment entity by IDs.
func (_u *UserUpdateOne) AddAssignmentIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the Assignment entity.
func (_u *UserUpdateOne) AddAssignments(v ...*Assignment) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by IDs.
func (_u *UserUpdateOne) AddAuditLogIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddAuditLogIDs(ids...)
	return _u
}

// AddAuditLogs adds the "audit_logs" edges to the AuditLog entity.
func (_u *UserUpdateOne) AddAuditLogs(v ...*AuditLog) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditLogIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearSubscriptions clears all "subscriptions" edges to the Subscription entity.
func (_u *UserUpdateOne) ClearSubscriptions() *UserUpdateOne {
	_u.mutation.ClearSubscriptions()
	return _u
}

// RemoveSubscriptionIDs removes the "subscriptions" edge to Subscription entities by IDs.
func (_u *UserUpdateOne) RemoveSubscriptionIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveSubscriptionIDs(ids...)
	return _u
}

// RemoveSubscriptions removes "subscriptions" edges to Subscription entities.
func (_u *UserUpdateOne) RemoveSubscriptions(v ...*Subscription) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubscriptionIDs(ids...)
}

// ClearReputation clears the "reputation" edge to the ReputationRecord entity.
func (_u *UserUpdateOne) ClearReputation() *UserUpdateOne {
	_u.mutation.ClearReputation()
	return _u
}

// ClearExpertApplications clears all "expert_applications" edges to the ExpertApplication entity.
func (_u *UserUpdateOne) ClearExpertApplications() *UserUpdateOne {
	_u.mutation.ClearExpertApplications()
	return _u
}

// RemoveExpertApplicationIDs removes the "expert_applications" edge to ExpertApplication entities by IDs.
func (_u *UserUpdateOne) RemoveExpertApplicationIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveExpertApplicationIDs(ids...)
	return _u
}

// RemoveExpertApplications removes "expert_applications" edges to ExpertApplication entities.
func (_u *UserUpdateOne) RemoveExpertApplications(v ...*ExpertApplication) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExpertApplicationIDs(ids...)
}

// ClearConsultations clears all "consultations" edges to the Consultation entity.
func (_u *UserUpdateOne) ClearConsultations() *UserUpdateOne {
	_u.mutation.ClearConsultations()
	return _u
}

// RemoveConsultationIDs removes the "consultations" edge to Consultation entities by IDs.
func (_u *UserUpdateOne) RemoveConsultationIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveConsultationIDs(ids...)
	return _u
}

// RemoveConsultations removes "consultations" edges to Consultation entities.
func (_u *UserUpdateOne) RemoveConsultations(v ...*Consultation) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConsultationIDs(ids...)
}

// ClearReports clears all "reports" edges to the Report entity.
func (_u *UserUpdateOne) ClearReports() *UserUpdateOne {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to Report entities by IDs.
func (_u *UserUpdateOne) RemoveReportIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to Report entities.
func (_u *UserUpdateOne) RemoveReports(v ...*Report) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// ClearProjects clears all "projects" edges to the Project entity.
func (_u *UserUpdateOne) ClearProjects() *UserUpdateOne {
	_u.mutation.ClearProjects()
	return _u
}

// RemoveProjectIDs removes the "projects" edge to Project entities by IDs.
func (_u *UserUpdateOne) RemoveProjectIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveProjectIDs(ids...)
	return _u
}

// RemoveProjects removes "projects" edges to Project entities.
func (_u *UserUpdateOne) RemoveProjects(v ...*Project) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProjectIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the Assignment entity.
func (_u *UserUpdateOne) ClearAssignments() *UserUpdateOne {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to Assignment entities by IDs.
func (_u *UserUpdateOne) RemoveAssignmentIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to Assignment entities.
func (_u *UserUpdateOne) RemoveAssignments(v ...*Assignment) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// ClearAuditLogs clears all "audit_logs" edges to the AuditLog entity.
func (_u *UserUpdateOne) ClearAuditLogs() *UserUpdateOne {
	_u.mutation.ClearAuditLogs()
	return _u
}

// RemoveAuditLogIDs removes the "audit_logs" edge to AuditLog entities by IDs.
func (_u *UserUpdateOne) RemoveAuditLogIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveAuditLogIDs(ids...)
	return _u
}

// RemoveAuditLogs removes "audit_logs" edges to AuditLog entities.
func (_u *UserUpdateOne) RemoveAuditLogs(v ...*AuditLog) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditLogIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PasswordHash(); ok {
		if err := user.PasswordHashValidator(v); err != nil {
			return &ValidationError{Name: "password_hash", err: fmt.Errorf(`ent: validator failed for field "User.password_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := user.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "User.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := user.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "User.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubmitterTier(); ok {
		if err := user.SubmitterTierValidator(v); err != nil {
			return &ValidationError{Name: "submitter_tier", err: fmt.Errorf(`ent: validator failed for field "User.submitter_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProjectsUsed(); ok {
		if err := user.ProjectsUsedValidator(v); err != nil {
			return &ValidationError{Name: "projects_used", err: fmt.Errorf(`ent: validator failed for field "User.projects_used": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MonthlyProjectLimit(); ok {
		if err := user.MonthlyProjectLimitValidator(v); err != nil {
			return &ValidationError{Name: "monthly_project_limit", err: fmt.Errorf(`ent: validator failed for field "User.monthly_project_limit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalProjects(); ok {
		if err := user.TotalProjectsValidator(v); err != nil {
			return &ValidationError{Name: "total_projects", err: fmt.Errorf(`ent: validator failed for field "User.total_projects": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessfulProjects(); ok {
		if err := user.SuccessfulProjectsValidator(v); err != nil {
			return &ValidationError{Name: "successful_projects", err: fmt.Errorf(`ent: validator failed for field "User.successful_projects": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(user.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(user.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(user.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(user.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubmitterTier(); ok {
		_spec.SetField(user.FieldSubmitterTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProjectsUsed(); ok {
		_spec.SetField(user.FieldProjectsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProjectsUsed(); ok {
		_spec.AddField(user.FieldProjectsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MonthlyProjectLimit(); ok {
		_spec.SetField(user.FieldMonthlyProjectLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMonthlyProjectLimit(); ok {
		_spec.AddField(user.FieldMonthlyProjectLimit, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastResetAt(); ok {
		_spec.SetField(user.FieldLastResetAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalProjects(); ok {
		_spec.SetField(user.FieldTotalProjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalProjects(); ok {
		_spec.AddField(user.FieldTotalProjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessfulProjects(); ok {
		_spec.SetField(user.FieldSuccessfulProjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulProjects(); ok {
		_spec.AddField(user.FieldSuccessfulProjects, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageProjectScore(); ok {
		_spec.SetField(user.FieldAverageProjectScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAverageProjectScore(); ok {
		_spec.AddField(user.FieldAverageProjectScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EmailVerified(); ok {
		_spec.SetField(user.FieldEmailVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EmailVerificationToken(); ok {
		_spec.SetField(user.FieldEmailVerificationToken, field.TypeString, value)
	}
	if _u.mutation.EmailVerificationTokenCleared() {
		_spec.ClearField(user.FieldEmailVerificationToken, field.TypeString)
	}
	if value, ok := _u.mutation.EmailVerificationTokenExpiresAt(); ok {
		_spec.SetField(user.FieldEmailVerificationTokenExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.EmailVerificationTokenExpiresAtCleared() {
		_spec.ClearField(user.FieldEmailVerificationTokenExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StripeCustomerID(); ok {
		_spec.SetField(user.FieldStripeCustomerID, field.TypeString, value)
	}
	if _u.mutation.StripeCustomerIDCleared() {
		_spec.ClearField(user.FieldStripeCustomerID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubscriptionsIDs(); len(nodes) > 0 && !_u.mutation.SubscriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubscriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReputationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReputationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExpertApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExpertApplicationsIDs(); len(nodes) > 0 && !_u.mutation.ExpertApplicationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExpertApplicationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConsultationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConsultationsIDs(); len(nodes) > 0 && !_u.mutation.ConsultationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConsultationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProjectsIDs(); len(nodes) > 0 && !_u.mutation.ProjectsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditLogsIDs(); len(nodes) > 0 && !_u.mutation.AuditLogsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
