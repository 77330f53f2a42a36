// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chainadvisory/chainadvisory-api/ent/reputationrecord"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// User email address
	Email string `json:"email,omitempty"`
	// Bcrypt hashed password
	PasswordHash string `json:"-"`
	// User full name
	Name string `json:"name,omitempty"`
	// Company or project name
	Company string `json:"company,omitempty"`
	// User role for access control
	Role user.Role `json:"role,omitempty"`
	// Account status; users are never hard-deleted
	Status user.Status `json:"status,omitempty"`
	// Reputation tier, derived from the threshold table
	SubmitterTier user.SubmitterTier `json:"submitter_tier,omitempty"`
	// Projects submitted in the current month
	ProjectsUsed int `json:"projects_used,omitempty"`
	// Monthly project quota for the current tier
	MonthlyProjectLimit int `json:"monthly_project_limit,omitempty"`
	// Last time monthly usage was reset
	LastResetAt time.Time `json:"last_reset_at,omitempty"`
	// Total projects ever submitted
	TotalProjects int `json:"total_projects,omitempty"`
	// Projects that completed evaluation successfully
	SuccessfulProjects int `json:"successful_projects,omitempty"`
	// Average evaluation score across completed projects
	AverageProjectScore float64 `json:"average_project_score,omitempty"`
	// Whether email is verified
	EmailVerified bool `json:"email_verified,omitempty"`
	// Token for email verification
	EmailVerificationToken *string `json:"-"`
	// Expiration time for verification token
	EmailVerificationTokenExpiresAt *time.Time `json:"email_verification_token_expires_at,omitempty"`
	// Last login timestamp
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	// Stripe customer ID
	StripeCustomerID string `json:"stripe_customer_id,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// User's subscription history
	Subscriptions []*Subscription `json:"subscriptions,omitempty"`
	// User's reputation record
	Reputation *ReputationRecord `json:"reputation,omitempty"`
	// User's expert applications
	ExpertApplications []*ExpertApplication `json:"expert_applications,omitempty"`
	// User's booked consultations
	Consultations []*Consultation `json:"consultations,omitempty"`
	// User's report requests
	Reports []*Report `json:"reports,omitempty"`
	// Projects submitted by the user
	Projects []*Project `json:"projects,omitempty"`
	// Expert assignments held by the user
	Assignments []*Assignment `json:"assignments,omitempty"`
	// User's audit log entries
	AuditLogs []*AuditLog `json:"audit_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// SubscriptionsOrErr returns the Subscriptions value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) SubscriptionsOrErr() ([]*Subscription, error) {
	if e.loadedTypes[0] {
		return e.Subscriptions, nil
	}
	return nil, &NotLoadedError{edge: "subscriptions"}
}

// ReputationOrErr returns the Reputation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e UserEdges) ReputationOrErr() (*ReputationRecord, error) {
	if e.Reputation != nil {
		return e.Reputation, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: reputationrecord.Label}
	}
	return nil, &NotLoadedError{edge: "reputation"}
}

// ExpertApplicationsOrErr returns the ExpertApplications value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ExpertApplicationsOrErr() ([]*ExpertApplication, error) {
	if e.loadedTypes[2] {
		return e.ExpertApplications, nil
	}
	return nil, &NotLoadedError{edge: "expert_applications"}
}

// ConsultationsOrErr returns the Consultations value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ConsultationsOrErr() ([]*Consultation, error) {
	if e.loadedTypes[3] {
		return e.Consultations, nil
	}
	return nil, &NotLoadedError{edge: "consultations"}
}

// ReportsOrErr returns the Reports value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ReportsOrErr() ([]*Report, error) {
	if e.loadedTypes[4] {
		return e.Reports, nil
	}
	return nil, &NotLoadedError{edge: "reports"}
}

// ProjectsOrErr returns the Projects value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) ProjectsOrErr() ([]*Project, error) {
	if e.loadedTypes[5] {
		return e.Projects, nil
	}
	return nil, &NotLoadedError{edge: "projects"}
}

// AssignmentsOrErr returns the Assignments value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) AssignmentsOrErr() ([]*Assignment, error) {
	if e.loadedTypes[6] {
		return e.Assignments, nil
	}
	return nil, &NotLoadedError{edge: "assignments"}
}

// AuditLogsOrErr returns the AuditLogs value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) AuditLogsOrErr() ([]*AuditLog, error) {
	if e.loadedTypes[7] {
		return e.AuditLogs, nil
	}
	return nil, &NotLoadedError{edge: "audit_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldEmailVerified:
			values[i] = new(sql.NullBool)
		case user.FieldAverageProjectScore:
			values[i] = new(sql.NullFloat64)
		case user.FieldID, user.FieldProjectsUsed, user.FieldMonthlyProjectLimit, user.FieldTotalProjects, user.FieldSuccessfulProjects:
			values[i] = new(sql.NullInt64)
		case user.FieldEmail, user.FieldPasswordHash, user.FieldName, user.FieldCompany, user.FieldRole, user.FieldStatus, user.FieldSubmitterTier, user.FieldEmailVerificationToken, user.FieldStripeCustomerID:
			values[i] = new(sql.NullString)
		case user.FieldLastResetAt, user.FieldEmailVerificationTokenExpiresAt, user.FieldLastLoginAt, user.FieldCreatedAt, user.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case user.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case user.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				_m.PasswordHash = value.String
			}
		case user.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case user.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = value.String
			}
		case user.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = user.Role(value.String)
			}
		case user.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = user.Status(value.String)
			}
		case user.FieldSubmitterTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitter_tier", values[i])
			} else if value.Valid {
				_m.SubmitterTier = user.SubmitterTier(value.String)
			}
		case user.FieldProjectsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field projects_used", values[i])
			} else if value.Valid {
				_m.ProjectsUsed = int(value.Int64)
			}
		case user.FieldMonthlyProjectLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_project_limit", values[i])
			} else if value.Valid {
				_m.MonthlyProjectLimit = int(value.Int64)
			}
		case user.FieldLastResetAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reset_at", values[i])
			} else if value.Valid {
				_m.LastResetAt = value.Time
			}
		case user.FieldTotalProjects:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_projects", values[i])
			} else if value.Valid {
				_m.TotalProjects = int(value.Int64)
			}
		case user.FieldSuccessfulProjects:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field successful_projects", values[i])
			} else if value.Valid {
				_m.SuccessfulProjects = int(value.Int64)
			}
		case user.FieldAverageProjectScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_project_score", values[i])
			} else if value.Valid {
				_m.AverageProjectScore = value.Float64
			}
		case user.FieldEmailVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_verified", values[i])
			} else if value.Valid {
				_m.EmailVerified = value.Bool
			}
		case user.FieldEmailVerificationToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_verification_token", values[i])
			} else if value.Valid {
				_m.EmailVerificationToken = new(string)
				*_m.EmailVerificationToken = value.String
			}
		case user.FieldEmailVerificationTokenExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field email_verification_token_expires_at", values[i])
			} else if value.Valid {
				_m.EmailVerificationTokenExpiresAt = new(time.Time)
				*_m.EmailVerificationTokenExpiresAt = value.Time
			}
		case user.FieldLastLoginAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_login_at", values[i])
			} else if value.Valid {
				_m.LastLoginAt = new(time.Time)
				*_m.LastLoginAt = value.Time
			}
		case user.FieldStripeCustomerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stripe_customer_id", values[i])
			} else if value.Valid {
				_m.StripeCustomerID = value.String
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case user.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubscriptions queries the "subscriptions" edge of the User entity.
func (_m *User) QuerySubscriptions() *SubscriptionQuery {
	return NewUserClient(_m.config).QuerySubscriptions(_m)
}

// QueryReputation queries the "reputation" edge of the User entity.
func (_m *User) QueryReputation() *ReputationRecordQuery {
	return NewUserClient(_m.config).QueryReputation(_m)
}

// QueryExpertApplications queries the "expert_applications" edge of the User entity.
func (_m *User) QueryExpertApplications() *ExpertApplicationQuery {
	return NewUserClient(_m.config).QueryExpertApplications(_m)
}

// QueryConsultations queries the "consultations" edge of the User entity.
func (_m *User) QueryConsultations() *ConsultationQuery {
	return NewUserClient(_m.config).QueryConsultations(_m)
}

// QueryReports queries the "reports" edge of the User entity.
func (_m *User) QueryReports() *ReportQuery {
	return NewUserClient(_m.config).QueryReports(_m)
}

// QueryProjects queries the "projects" edge of the User entity.
func (_m *User) QueryProjects() *ProjectQuery {
	return NewUserClient(_m.config).QueryProjects(_m)
}

// QueryAssignments queries the "assignments" edge of the User entity.
func (_m *User) QueryAssignments() *AssignmentQuery {
	return NewUserClient(_m.config).QueryAssignments(_m)
}

// QueryAuditLogs queries the "audit_logs" edge of the User entity.
func (_m *User) QueryAuditLogs() *AuditLogQuery {
	return NewUserClient(_m.config).QueryAuditLogs(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("company=")
	builder.WriteString(_m.Company)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("submitter_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubmitterTier))
	builder.WriteString(", ")
	builder.WriteString("projects_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectsUsed))
	builder.WriteString(", ")
	builder.WriteString("monthly_project_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlyProjectLimit))
	builder.WriteString(", ")
	builder.WriteString("last_reset_at=")
	builder.WriteString(_m.LastResetAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_projects=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalProjects))
	builder.WriteString(", ")
	builder.WriteString("successful_projects=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessfulProjects))
	builder.WriteString(", ")
	builder.WriteString("average_project_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageProjectScore))
	builder.WriteString(", ")
	builder.WriteString("email_verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailVerified))
	builder.WriteString(", ")
	builder.WriteString("email_verification_token=<sensitive>")
	builder.WriteString(", ")
	if v := _m.EmailVerificationTokenExpiresAt; v != nil {
		builder.WriteString("email_verification_token_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastLoginAt; v != nil {
		builder.WriteString("last_login_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("stripe_customer_id=")
	builder.WriteString(_m.StripeCustomerID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
