// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCompany holds the string denoting the company field in the database.
	FieldCompany = "company"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSubmitterTier holds the string denoting the submitter_tier field in the database.
	FieldSubmitterTier = "submitter_tier"
	// FieldProjectsUsed holds the string denoting the projects_used field in the database.
	FieldProjectsUsed = "projects_used"
	// FieldMonthlyProjectLimit holds the string denoting the monthly_project_limit field in the database.
	FieldMonthlyProjectLimit = "monthly_project_limit"
	// FieldLastResetAt holds the string denoting the last_reset_at field in the database.
	FieldLastResetAt = "last_reset_at"
	// FieldTotalProjects holds the string denoting the total_projects field in the database.
	FieldTotalProjects = "total_projects"
	// FieldSuccessfulProjects holds the string denoting the successful_projects field in the database.
	FieldSuccessfulProjects = "successful_projects"
	// FieldAverageProjectScore holds the string denoting the average_project_score field in the database.
	FieldAverageProjectScore = "average_project_score"
	// FieldEmailVerified holds the string denoting the email_verified field in the database.
	FieldEmailVerified = "email_verified"
	// FieldEmailVerificationToken holds the string denoting the email_verification_token field in the database.
	FieldEmailVerificationToken = "email_verification_token"
	// FieldEmailVerificationTokenExpiresAt holds the string denoting the email_verification_token_expires_at field in the database.
	FieldEmailVerificationTokenExpiresAt = "email_verification_token_expires_at"
	// FieldLastLoginAt holds the string denoting the last_login_at field in the database.
	FieldLastLoginAt = "last_login_at"
	// FieldStripeCustomerID holds the string denoting the stripe_customer_id field in the database.
	FieldStripeCustomerID = "stripe_customer_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSubscriptions holds the string denoting the subscriptions edge name in mutations.
	EdgeSubscriptions = "subscriptions"
	// EdgeReputation holds the string denoting the reputation edge name in mutations.
	EdgeReputation = "reputation"
	// EdgeExpertApplications holds the string denoting the expert_applications edge name in mutations.
	EdgeExpertApplications = "expert_applications"
	// EdgeConsultations holds the string denoting the consultations edge name in mutations.
	EdgeConsultations = "consultations"
	// EdgeReports holds the string denoting the reports edge name in mutations.
	EdgeReports = "reports"
	// EdgeProjects holds the string denoting the projects edge name in mutations.
	EdgeProjects = "projects"
	// EdgeAssignments holds the string denoting the assignments edge name in mutations.
	EdgeAssignments = "assignments"
	// EdgeAuditLogs holds the string denoting the audit_logs edge name in mutations.
	EdgeAuditLogs = "audit_logs"
	// Table holds the table name of the user in the database.
	Table = "users"
	// SubscriptionsTable is the table that holds the subscriptions relation/edge.
	SubscriptionsTable = "subscriptions"
	// SubscriptionsInverseTable is the table name for the Subscription entity.
	// It exists in this package in order to avoid circular dependency with the "subscription" package.
	SubscriptionsInverseTable = "subscriptions"
	// SubscriptionsColumn is the table column denoting the subscriptions relation/edge.
	SubscriptionsColumn = "user_id"
	// ReputationTable is the table that holds the reputation relation/edge.
	ReputationTable = "reputation_records"
	// ReputationInverseTable is the table name for the ReputationRecord entity.
	// It exists in this package in order to avoid circular dependency with the "reputationrecord" package.
	ReputationInverseTable = "reputation_records"
	// ReputationColumn is the table column denoting the reputation relation/edge.
	ReputationColumn = "user_id"
	// ExpertApplicationsTable is the table that holds the expert_applications relation/edge.
	ExpertApplicationsTable = "expert_applications"
	// ExpertApplicationsInverseTable is the table name for the ExpertApplication entity.
	// It exists in this package in order to avoid circular dependency with the "expertapplication" package.
	ExpertApplicationsInverseTable = "expert_applications"
	// ExpertApplicationsColumn is the table column denoting the expert_applications relation/edge.
	ExpertApplicationsColumn = "user_id"
	// ConsultationsTable is the table that holds the consultations relation/edge.
	ConsultationsTable = "consultations"
	// ConsultationsInverseTable is the table name for the Consultation entity.
	// It exists in this package in order to avoid circular dependency with the "consultation" package.
	ConsultationsInverseTable = "consultations"
	// ConsultationsColumn is the table column denoting the consultations relation/edge.
	ConsultationsColumn = "user_id"
	// ReportsTable is the table that holds the reports relation/edge.
	ReportsTable = "reports"
	// ReportsInverseTable is the table name for the Report entity.
	// It exists in this package in order to avoid circular dependency with the "report" package.
	ReportsInverseTable = "reports"
	// ReportsColumn is the table column denoting the reports relation/edge.
	ReportsColumn = "user_id"
	// ProjectsTable is the table that holds the projects relation/edge.
	ProjectsTable = "projects"
	// ProjectsInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectsInverseTable = "projects"
	// ProjectsColumn is the table column denoting the projects relation/edge.
	ProjectsColumn = "user_id"
	// AssignmentsTable is the table that holds the assignments relation/edge.
	AssignmentsTable = "assignments"
	// AssignmentsInverseTable is the table name for the Assignment entity.
	// It exists in this package in order to avoid circular dependency with the "assignment" package.
	AssignmentsInverseTable = "assignments"
	// AssignmentsColumn is the table column denoting the assignments relation/edge.
	AssignmentsColumn = "expert_id"
	// AuditLogsTable is the table that holds the audit_logs relation/edge.
	AuditLogsTable = "audit_logs"
	// AuditLogsInverseTable is the table name for the AuditLog entity.
	// It exists in this package in order to avoid circular dependency with the "auditlog" package.
	AuditLogsInverseTable = "audit_logs"
	// AuditLogsColumn is the table column denoting the audit_logs relation/edge.
	AuditLogsColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldEmail,
	FieldPasswordHash,
	FieldName,
	FieldCompany,
	FieldRole,
	FieldStatus,
	FieldSubmitterTier,
	FieldProjectsUsed,
	FieldMonthlyProjectLimit,
	FieldLastResetAt,
	FieldTotalProjects,
	FieldSuccessfulProjects,
	FieldAverageProjectScore,
	FieldEmailVerified,
	FieldEmailVerificationToken,
	FieldEmailVerificationTokenExpiresAt,
	FieldLastLoginAt,
	FieldStripeCustomerID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	PasswordHashValidator func(string) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultProjectsUsed holds the default value on creation for the "projects_used" field.
	DefaultProjectsUsed int
	// ProjectsUsedValidator is a validator for the "projects_used" field. It is called by the builders before save.
	ProjectsUsedValidator func(int) error
	// DefaultMonthlyProjectLimit holds the default value on creation for the "monthly_project_limit" field.
	DefaultMonthlyProjectLimit int
	// MonthlyProjectLimitValidator is a validator for the "monthly_project_limit" field. It is called by the builders before save.
	MonthlyProjectLimitValidator func(int) error
	// DefaultLastResetAt holds the default value on creation for the "last_reset_at" field.
	DefaultLastResetAt func() time.Time
	// DefaultTotalProjects holds the default value on creation for the "total_projects" field.
	DefaultTotalProjects int
	// TotalProjectsValidator is a validator for the "total_projects" field. It is called by the builders before save.
	TotalProjectsValidator func(int) error
	// DefaultSuccessfulProjects holds the default value on creation for the "successful_projects" field.
	DefaultSuccessfulProjects int
	// SuccessfulProjectsValidator is a validator for the "successful_projects" field. It is called by the builders before save.
	SuccessfulProjectsValidator func(int) error
	// DefaultAverageProjectScore holds the default value on creation for the "average_project_score" field.
	DefaultAverageProjectScore float64
	// DefaultEmailVerified holds the default value on creation for the "email_verified" field.
	DefaultEmailVerified bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Role defines the type for the "role" enum field.
type Role string

// RoleUser is the default value of the Role enum.
const DefaultRole = RoleUser

// Role values.
const (
	RoleUser       Role = "user"
	RoleExpert     Role = "expert"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleUser, RoleExpert, RoleAdmin, RoleSuperadmin:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for role field: %q", r)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusDeleted   Status = "deleted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusSuspended, StatusDeleted:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for status field: %q", s)
	}
}

// SubmitterTier defines the type for the "submitter_tier" enum field.
type SubmitterTier string

// SubmitterTierBasic is the default value of the SubmitterTier enum.
const DefaultSubmitterTier = SubmitterTierBasic

// SubmitterTier values.
const (
	SubmitterTierBasic            SubmitterTier = "basic"
	SubmitterTierVerified         SubmitterTier = "verified"
	SubmitterTierPremium          SubmitterTier = "premium"
	SubmitterTierVc               SubmitterTier = "vc"
	SubmitterTierEcosystemPartner SubmitterTier = "ecosystem_partner"
)

func (st SubmitterTier) String() string {
	return string(st)
}

// SubmitterTierValidator is a validator for the "submitter_tier" field enum values. It is called by the builders before save.
func SubmitterTierValidator(st SubmitterTier) error {
	switch st {
	case SubmitterTierBasic, SubmitterTierVerified, SubmitterTierPremium, SubmitterTierVc, SubmitterTierEcosystemPartner:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for submitter_tier field: %q", st)
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCompany orders the results by the company field.
func ByCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompany, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySubmitterTier orders the results by the submitter_tier field.
func BySubmitterTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmitterTier, opts...).ToFunc()
}

// ByProjectsUsed orders the results by the projects_used field.
func ByProjectsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectsUsed, opts...).ToFunc()
}

// ByMonthlyProjectLimit orders the results by the monthly_project_limit field.
func ByMonthlyProjectLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyProjectLimit, opts...).ToFunc()
}

// ByLastResetAt orders the results by the last_reset_at field.
func ByLastResetAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastResetAt, opts...).ToFunc()
}

// ByTotalProjects orders the results by the total_projects field.
func ByTotalProjects(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalProjects, opts...).ToFunc()
}

// BySuccessfulProjects orders the results by the successful_projects field.
func BySuccessfulProjects(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccessfulProjects, opts...).ToFunc()
}

// ByAverageProjectScore orders the results by the average_project_score field.
func ByAverageProjectScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageProjectScore, opts...).ToFunc()
}

// ByEmailVerified orders the results by the email_verified field.
func ByEmailVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailVerified, opts...).ToFunc()
}

// ByEmailVerificationToken orders the results by the email_verification_token field.
func ByEmailVerificationToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailVerificationToken, opts...).ToFunc()
}

// ByEmailVerificationTokenExpiresAt orders the results by the email_verification_token_expires_at field.
func ByEmailVerificationTokenExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailVerificationTokenExpiresAt, opts...).ToFunc()
}

// ByLastLoginAt orders the results by the last_login_at field.
func ByLastLoginAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLoginAt, opts...).ToFunc()
}

// ByStripeCustomerID orders the results by the stripe_customer_id field.
func ByStripeCustomerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStripeCustomerID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySubscriptionsCount orders the results by subscriptions count.
func BySubscriptionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubscriptionsStep(), opts...)
	}
}

// BySubscriptions orders the results by subscriptions terms.
func BySubscriptions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubscriptionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReputationField orders the results by reputation field.
func ByReputationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReputationStep(), sql.OrderByField(field, opts...))
	}
}

// ByExpertApplicationsCount orders the results by expert_applications count.
func ByExpertApplicationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExpertApplicationsStep(), opts...)
	}
}

// ByExpertApplications orders the results by expert_applications terms.
func ByExpertApplications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExpertApplicationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByConsultationsCount orders the results by consultations count.
func ByConsultationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConsultationsStep(), opts...)
	}
}

// ByConsultations orders the results by consultations terms.
func ByConsultations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConsultationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReportsCount orders the results by reports count.
func ByReportsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReportsStep(), opts...)
	}
}

// ByReports orders the results by reports terms.
func ByReports(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReportsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByProjectsCount orders the results by projects count.
func ByProjectsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProjectsStep(), opts...)
	}
}

// ByProjects orders the results by projects terms.
func ByProjects(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAssignmentsCount orders the results by assignments count.
func ByAssignmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssignmentsStep(), opts...)
	}
}

// ByAssignments orders the results by assignments terms.
func ByAssignments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuditLogsCount orders the results by audit_logs count.
func ByAuditLogsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuditLogsStep(), opts...)
	}
}

// ByAuditLogs orders the results by audit_logs terms.
func ByAuditLogs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditLogsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubscriptionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubscriptionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubscriptionsTable, SubscriptionsColumn),
	)
}
func newReputationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReputationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ReputationTable, ReputationColumn),
	)
}
func newExpertApplicationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExpertApplicationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExpertApplicationsTable, ExpertApplicationsColumn),
	)
}
func newConsultationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConsultationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConsultationsTable, ConsultationsColumn),
	)
}
func newReportsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReportsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReportsTable, ReportsColumn),
	)
}
func newProjectsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProjectsTable, ProjectsColumn),
	)
}
func newAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
	)
}
func newAuditLogsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditLogsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
	)
}
