// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chainadvisory/chainadvisory-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// PasswordHash applies equality check predicate on the "password_hash" field. It's identical to PasswordHashEQ.
func PasswordHash(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCompany, v))
}

// ProjectsUsed applies equality check predicate on the "projects_used" field. It's identical to ProjectsUsedEQ.
func ProjectsUsed(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldProjectsUsed, v))
}

// MonthlyProjectLimit applies equality check predicate on the "monthly_project_limit" field. It's identical to MonthlyProjectLimitEQ.
func MonthlyProjectLimit(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldMonthlyProjectLimit, v))
}

// LastResetAt applies equality check predicate on the "last_reset_at" field. It's identical to LastResetAtEQ.
func LastResetAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastResetAt, v))
}

// TotalProjects applies equality check predicate on the "total_projects" field. It's identical to TotalProjectsEQ.
func TotalProjects(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTotalProjects, v))
}

// SuccessfulProjects applies equality check predicate on the "successful_projects" field. It's identical to SuccessfulProjectsEQ.
func SuccessfulProjects(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSuccessfulProjects, v))
}

// AverageProjectScore applies equality check predicate on the "average_project_score" field. It's identical to AverageProjectScoreEQ.
func AverageProjectScore(v float64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAverageProjectScore, v))
}

// EmailVerified applies equality check predicate on the "email_verified" field. It's identical to EmailVerifiedEQ.
func EmailVerified(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerified, v))
}

// EmailVerificationToken applies equality check predicate on the "email_verification_token" field. It's identical to EmailVerificationTokenEQ.
func EmailVerificationToken(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenExpiresAt applies equality check predicate on the "email_verification_token_expires_at" field. It's identical to EmailVerificationTokenExpiresAtEQ.
func EmailVerificationTokenExpiresAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerificationTokenExpiresAt, v))
}

// LastLoginAt applies equality check predicate on the "last_login_at" field. It's identical to LastLoginAtEQ.
func LastLoginAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginAt, v))
}

// StripeCustomerID applies equality check predicate on the "stripe_customer_id" field. It's identical to StripeCustomerIDEQ.
func StripeCustomerID(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStripeCustomerID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// PasswordHashEQ applies the EQ predicate on the "password_hash" field.
func PasswordHashEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// PasswordHashNEQ applies the NEQ predicate on the "password_hash" field.
func PasswordHashNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPasswordHash, v))
}

// PasswordHashIn applies the In predicate on the "password_hash" field.
func PasswordHashIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPasswordHash, vs...))
}

// PasswordHashNotIn applies the NotIn predicate on the "password_hash" field.
func PasswordHashNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPasswordHash, vs...))
}

// PasswordHashGT applies the GT predicate on the "password_hash" field.
func PasswordHashGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPasswordHash, v))
}

// PasswordHashGTE applies the GTE predicate on the "password_hash" field.
func PasswordHashGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPasswordHash, v))
}

// PasswordHashLT applies the LT predicate on the "password_hash" field.
func PasswordHashLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPasswordHash, v))
}

// PasswordHashLTE applies the LTE predicate on the "password_hash" field.
func PasswordHashLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPasswordHash, v))
}

// PasswordHashContains applies the Contains predicate on the "password_hash" field.
func PasswordHashContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPasswordHash, v))
}

// PasswordHashHasPrefix applies the HasPrefix predicate on the "password_hash" field.
func PasswordHashHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPasswordHash, v))
}

// PasswordHashHasSuffix applies the HasSuffix predicate on the "password_hash" field.
func PasswordHashHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPasswordHash, v))
}

// PasswordHashEqualFold applies the EqualFold predicate on the "password_hash" field.
func PasswordHashEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPasswordHash, v))
}

// PasswordHashContainsFold applies the ContainsFold predicate on the "password_hash" field.
func PasswordHashContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPasswordHash, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldName, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyIsNil applies the IsNil predicate on the "company" field.
func CompanyIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldCompany))
}

// CompanyNotNil applies the NotNil predicate on the "company" field.
func CompanyNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldCompany))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldCompany, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.User {
	return predicate.User(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.User {
	return predicate.User(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldRole, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.User {
	return predicate.User(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldStatus, vs...))
}

// SubmitterTierEQ applies the EQ predicate on the "submitter_tier" field.
func SubmitterTierEQ(v SubmitterTier) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSubmitterTier, v))
}

// SubmitterTierNEQ applies the NEQ predicate on the "submitter_tier" field.
func SubmitterTierNEQ(v SubmitterTier) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldSubmitterTier, v))
}

// SubmitterTierIn applies the In predicate on the "submitter_tier" field.
func SubmitterTierIn(vs ...SubmitterTier) predicate.User {
	return predicate.User(sql.FieldIn(FieldSubmitterTier, vs...))
}

// SubmitterTierNotIn applies the NotIn predicate on the "submitter_tier" field.
func SubmitterTierNotIn(vs ...SubmitterTier) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldSubmitterTier, vs...))
}

// ProjectsUsedEQ applies the EQ predicate on the "projects_used" field.
func ProjectsUsedEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldProjectsUsed, v))
}

// ProjectsUsedNEQ applies the NEQ predicate on the "projects_used" field.
func ProjectsUsedNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldProjectsUsed, v))
}

// ProjectsUsedIn applies the In predicate on the "projects_used" field.
func ProjectsUsedIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldProjectsUsed, vs...))
}

// ProjectsUsedNotIn applies the NotIn predicate on the "projects_used" field.
func ProjectsUsedNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldProjectsUsed, vs...))
}

// ProjectsUsedGT applies the GT predicate on the "projects_used" field.
func ProjectsUsedGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldProjectsUsed, v))
}

// ProjectsUsedGTE applies the GTE predicate on the "projects_used" field.
func ProjectsUsedGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldProjectsUsed, v))
}

// ProjectsUsedLT applies the LT predicate on the "projects_used" field.
func ProjectsUsedLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldProjectsUsed, v))
}

// ProjectsUsedLTE applies the LTE predicate on the "projects_used" field.
func ProjectsUsedLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldProjectsUsed, v))
}

// MonthlyProjectLimitEQ applies the EQ predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldMonthlyProjectLimit, v))
}

// MonthlyProjectLimitNEQ applies the NEQ predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldMonthlyProjectLimit, v))
}

// MonthlyProjectLimitIn applies the In predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldMonthlyProjectLimit, vs...))
}

// MonthlyProjectLimitNotIn applies the NotIn predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldMonthlyProjectLimit, vs...))
}

// MonthlyProjectLimitGT applies the GT predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldMonthlyProjectLimit, v))
}

// MonthlyProjectLimitGTE applies the GTE predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldMonthlyProjectLimit, v))
}

// MonthlyProjectLimitLT applies the LT predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldMonthlyProjectLimit, v))
}

// MonthlyProjectLimitLTE applies the LTE predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldMonthlyProjectLimit, v))
}

// LastResetAtEQ applies the EQ predicate on the "last_reset_at" field.
func LastResetAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastResetAt, v))
}

// LastResetAtNEQ applies the NEQ predicate on the "last_reset_at" field.
func LastResetAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastResetAt, v))
}

// LastResetAtIn applies the In predicate on the "last_reset_at" field.
func LastResetAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastResetAt, vs...))
}

// LastResetAtNotIn applies the NotIn predicate on the "last_reset_at" field.
func LastResetAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastResetAt, vs...))
}

// LastResetAtGT applies the GT predicate on the "last_reset_at" field.
func LastResetAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastResetAt, v))
}

// LastResetAtGTE applies the GTE predicate on the "last_reset_at" field.
func LastResetAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastResetAt, v))
}

// LastResetAtLT applies the LT predicate on the "last_reset_at" field.
func LastResetAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastResetAt, v))
}

// LastResetAtLTE applies the LTE predicate on the "last_reset_at" field.
func LastResetAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastResetAt, v))
}

// TotalProjectsEQ applies the EQ predicate on the "total_projects" field.
func TotalProjectsEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTotalProjects, v))
}

// TotalProjectsNEQ applies the NEQ predicate on the "total_projects" field.
func TotalProjectsNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldTotalProjects, v))
}

// TotalProjectsIn applies the In predicate on the "total_projects" field.
func TotalProjectsIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldTotalProjects, vs...))
}

// TotalProjectsNotIn applies the NotIn predicate on the "total_projects" field.
func TotalProjectsNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldTotalProjects, vs...))
}

// TotalProjectsGT applies the GT predicate on the "total_projects" field.
func TotalProjectsGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldTotalProjects, v))
}

// TotalProjectsGTE applies the GTE predicate on the "total_projects" field.
func TotalProjectsGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldTotalProjects, v))
}

// TotalProjectsLT applies the LT predicate on the "total_projects" field.
func TotalProjectsLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldTotalProjects, v))
}

// TotalProjectsLTE applies the LTE predicate on the "total_projects" field.
func TotalProjectsLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldTotalProjects, v))
}

// SuccessfulProjectsEQ applies the EQ predicate on the "successful_projects" field.
func SuccessfulProjectsEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSuccessfulProjects, v))
}

// SuccessfulProjectsNEQ applies the NEQ predicate on the "successful_projects" field.
func SuccessfulProjectsNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldSuccessfulProjects, v))
}

// SuccessfulProjectsIn applies the In predicate on the "successful_projects" field.
func SuccessfulProjectsIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldSuccessfulProjects, vs...))
}

// SuccessfulProjectsNotIn applies the NotIn predicate on the "successful_projects" field.
func SuccessfulProjectsNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldSuccessfulProjects, vs...))
}

// SuccessfulProjectsGT applies the GT predicate on the "successful_projects" field.
func SuccessfulProjectsGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldSuccessfulProjects, v))
}

// SuccessfulProjectsGTE applies the GTE predicate on the "successful_projects" field.
func SuccessfulProjectsGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldSuccessfulProjects, v))
}

// SuccessfulProjectsLT applies the LT predicate on the "successful_projects" field.
func SuccessfulProjectsLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldSuccessfulProjects, v))
}

// SuccessfulProjectsLTE applies the LTE predicate on the "successful_projects" field.
func SuccessfulProjectsLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldSuccessfulProjects, v))
}

// AverageProjectScoreEQ applies the EQ predicate on the "average_project_score" field.
func AverageProjectScoreEQ(v float64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAverageProjectScore, v))
}

// AverageProjectScoreNEQ applies the NEQ predicate on the "average_project_score" field.
func AverageProjectScoreNEQ(v float64) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAverageProjectScore, v))
}

// AverageProjectScoreIn applies the In predicate on the "average_project_score" field.
func AverageProjectScoreIn(vs ...float64) predicate.User {
	return predicate.User(sql.FieldIn(FieldAverageProjectScore, vs...))
}

// AverageProjectScoreNotIn applies the NotIn predicate on the "average_project_score" field.
func AverageProjectScoreNotIn(vs ...float64) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAverageProjectScore, vs...))
}

// AverageProjectScoreGT applies the GT predicate on the "average_project_score" field.
func AverageProjectScoreGT(v float64) predicate.User {
	return predicate.User(sql.FieldGT(FieldAverageProjectScore, v))
}

// AverageProjectScoreGTE applies the GTE predicate on the "average_project_score" field.
func AverageProjectScoreGTE(v float64) predicate.User {
	return predicate.User(sql.FieldGTE(FieldAverageProjectScore, v))
}

// AverageProjectScoreLT applies the LT predicate on the "average_project_score" field.
func AverageProjectScoreLT(v float64) predicate.User {
	return predicate.User(sql.FieldLT(FieldAverageProjectScore, v))
}

// AverageProjectScoreLTE applies the LTE predicate on the "average_project_score" field.
func AverageProjectScoreLTE(v float64) predicate.User {
	return predicate.User(sql.FieldLTE(FieldAverageProjectScore, v))
}

// EmailVerifiedEQ applies the EQ predicate on the "email_verified" field.
func EmailVerifiedEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerified, v))
}

// EmailVerifiedNEQ applies the NEQ predicate on the "email_verified" field.
func EmailVerifiedNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmailVerified, v))
}

// EmailVerificationTokenEQ applies the EQ predicate on the "email_verification_token" field.
func EmailVerificationTokenEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenNEQ applies the NEQ predicate on the "email_verification_token" field.
func EmailVerificationTokenNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenIn applies the In predicate on the "email_verification_token" field.
func EmailVerificationTokenIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmailVerificationToken, vs...))
}

// EmailVerificationTokenNotIn applies the NotIn predicate on the "email_verification_token" field.
func EmailVerificationTokenNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmailVerificationToken, vs...))
}

// EmailVerificationTokenGT applies the GT predicate on the "email_verification_token" field.
func EmailVerificationTokenGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenGTE applies the GTE predicate on the "email_verification_token" field.
func EmailVerificationTokenGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenLT applies the LT predicate on the "email_verification_token" field.
func EmailVerificationTokenLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenLTE applies the LTE predicate on the "email_verification_token" field.
func EmailVerificationTokenLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenContains applies the Contains predicate on the "email_verification_token" field.
func EmailVerificationTokenContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenHasPrefix applies the HasPrefix predicate on the "email_verification_token" field.
func EmailVerificationTokenHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenHasSuffix applies the HasSuffix predicate on the "email_verification_token" field.
func EmailVerificationTokenHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenIsNil applies the IsNil predicate on the "email_verification_token" field.
func EmailVerificationTokenIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldEmailVerificationToken))
}

// EmailVerificationTokenNotNil applies the NotNil predicate on the "email_verification_token" field.
func EmailVerificationTokenNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldEmailVerificationToken))
}

// EmailVerificationTokenEqualFold applies the EqualFold predicate on the "email_verification_token" field.
func EmailVerificationTokenEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenContainsFold applies the ContainsFold predicate on the "email_verification_token" field.
func EmailVerificationTokenContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenExpiresAtEQ applies the EQ predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerificationTokenExpiresAt, v))
}

// EmailVerificationTokenExpiresAtNEQ applies the NEQ predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmailVerificationTokenExpiresAt, v))
}

// EmailVerificationTokenExpiresAtIn applies the In predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmailVerificationTokenExpiresAt, vs...))
}

// EmailVerificationTokenExpiresAtNotIn applies the NotIn predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmailVerificationTokenExpiresAt, vs...))
}

// EmailVerificationTokenExpiresAtGT applies the GT predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmailVerificationTokenExpiresAt, v))
}

// EmailVerificationTokenExpiresAtGTE applies the GTE predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmailVerificationTokenExpiresAt, v))
}

// EmailVerificationTokenExpiresAtLT applies the LT predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmailVerificationTokenExpiresAt, v))
}

// EmailVerificationTokenExpiresAtLTE applies the LTE predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmailVerificationTokenExpiresAt, v))
}

// EmailVerificationTokenExpiresAtIsNil applies the IsNil predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldEmailVerificationTokenExpiresAt))
}

// EmailVerificationTokenExpiresAtNotNil applies the NotNil predicate on the "email_verification_token_expires_at" field.
func EmailVerificationTokenExpiresAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldEmailVerificationTokenExpiresAt))
}

// LastLoginAtEQ applies the EQ predicate on the "last_login_at" field.
func LastLoginAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginAt, v))
}

// LastLoginAtNEQ applies the NEQ predicate on the "last_login_at" field.
func LastLoginAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastLoginAt, v))
}

// LastLoginAtIn applies the In predicate on the "last_login_at" field.
func LastLoginAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastLoginAt, vs...))
}

// LastLoginAtNotIn applies the NotIn predicate on the "last_login_at" field.
func LastLoginAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastLoginAt, vs...))
}

// LastLoginAtGT applies the GT predicate on the "last_login_at" field.
func LastLoginAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastLoginAt, v))
}

// LastLoginAtGTE applies the GTE predicate on the "last_login_at" field.
func LastLoginAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastLoginAt, v))
}

// LastLoginAtLT applies the LT predicate on the "last_login_at" field.
func LastLoginAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastLoginAt, v))
}

// LastLoginAtLTE applies the LTE predicate on the "last_login_at" field.
func LastLoginAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastLoginAt, v))
}

// LastLoginAtIsNil applies the IsNil predicate on the "last_login_at" field.
func LastLoginAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastLoginAt))
}

// LastLoginAtNotNil applies the NotNil predicate on the "last_login_at" field.
func LastLoginAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastLoginAt))
}

// StripeCustomerIDEQ applies the EQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDNEQ applies the NEQ predicate on the "stripe_customer_id" field.
func StripeCustomerIDNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldStripeCustomerID, v))
}

// StripeCustomerIDIn applies the In predicate on the "stripe_customer_id" field.
func StripeCustomerIDIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDNotIn applies the NotIn predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldStripeCustomerID, vs...))
}

// StripeCustomerIDGT applies the GT predicate on the "stripe_customer_id" field.
func StripeCustomerIDGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldStripeCustomerID, v))
}

// StripeCustomerIDGTE applies the GTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDLT applies the LT predicate on the "stripe_customer_id" field.
func StripeCustomerIDLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldStripeCustomerID, v))
}

// StripeCustomerIDLTE applies the LTE predicate on the "stripe_customer_id" field.
func StripeCustomerIDLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldStripeCustomerID, v))
}

// StripeCustomerIDContains applies the Contains predicate on the "stripe_customer_id" field.
func StripeCustomerIDContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasPrefix applies the HasPrefix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldStripeCustomerID, v))
}

// StripeCustomerIDHasSuffix applies the HasSuffix predicate on the "stripe_customer_id" field.
func StripeCustomerIDHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldStripeCustomerID, v))
}

// StripeCustomerIDIsNil applies the IsNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldStripeCustomerID))
}

// StripeCustomerIDNotNil applies the NotNil predicate on the "stripe_customer_id" field.
func StripeCustomerIDNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldStripeCustomerID))
}

// StripeCustomerIDEqualFold applies the EqualFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldStripeCustomerID, v))
}

// StripeCustomerIDContainsFold applies the ContainsFold predicate on the "stripe_customer_id" field.
func StripeCustomerIDContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldStripeCustomerID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSubscriptions applies the HasEdge predicate on the "subscriptions" edge.
func HasSubscriptions() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubscriptionsTable, SubscriptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubscriptionsWith applies the HasEdge predicate on the "subscriptions" edge with a given conditions (other predicates).
func HasSubscriptionsWith(preds ...predicate.Subscription) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newSubscriptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReputation applies the HasEdge predicate on the "reputation" edge.
func HasReputation() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ReputationTable, ReputationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReputationWith applies the HasEdge predicate on the "reputation" edge with a given conditions (other predicates).
func HasReputationWith(preds ...predicate.ReputationRecord) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newReputationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExpertApplications applies the HasEdge predicate on the "expert_applications" edge.
func HasExpertApplications() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExpertApplicationsTable, ExpertApplicationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExpertApplicationsWith applies the HasEdge predicate on the "expert_applications" edge with a given conditions (other predicates).
func HasExpertApplicationsWith(preds ...predicate.ExpertApplication) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newExpertApplicationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConsultations applies the HasEdge predicate on the "consultations" edge.
func HasConsultations() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConsultationsTable, ConsultationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConsultationsWith applies the HasEdge predicate on the "consultations" edge with a given conditions (other predicates).
func HasConsultationsWith(preds ...predicate.Consultation) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newConsultationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReports applies the HasEdge predicate on the "reports" edge.
func HasReports() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReportsTable, ReportsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportsWith applies the HasEdge predicate on the "reports" edge with a given conditions (other predicates).
func HasReportsWith(preds ...predicate.Report) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newReportsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProjects applies the HasEdge predicate on the "projects" edge.
func HasProjects() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProjectsTable, ProjectsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectsWith applies the HasEdge predicate on the "projects" edge with a given conditions (other predicates).
func HasProjectsWith(preds ...predicate.Project) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newProjectsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignments applies the HasEdge predicate on the "assignments" edge.
func HasAssignments() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignmentsWith applies the HasEdge predicate on the "assignments" edge with a given conditions (other predicates).
func HasAssignmentsWith(preds ...predicate.Assignment) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newAssignmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuditLogs applies the HasEdge predicate on the "audit_logs" edge.
func HasAuditLogs() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditLogsTable, AuditLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditLogsWith applies the HasEdge predicate on the "audit_logs" edge with a given conditions (other predicates).
func HasAuditLogsWith(preds ...predicate.AuditLog) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newAuditLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
