package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("User email address"),
		field.String("password_hash").
			Sensitive().
			NotEmpty().
			Comment("Bcrypt hashed password"),
		field.String("name").
			NotEmpty().
			Comment("User full name"),
		field.String("company").
			Optional().
			Comment("Company or project name"),
		field.Enum("role").
			Values("user", "expert", "admin", "superadmin").
			Default("user").
			Comment("User role for access control"),
		field.Enum("status").
			Values("active", "suspended", "deleted").
			Default("active").
			Comment("Account status; users are never hard-deleted"),
		field.Enum("submitter_tier").
			Values("basic", "verified", "premium", "vc", "ecosystem_partner").
			Default("basic").
			Comment("Reputation tier, derived from the threshold table"),
		field.Int("projects_used").
			Default(0).
			NonNegative().
			Comment("Projects submitted in the current month"),
		field.Int("monthly_project_limit").
			Default(3).
			Positive().
			Comment("Monthly project quota for the current tier"),
		field.Time("last_reset_at").
			Default(time.Now).
			Comment("Last time monthly usage was reset"),
		field.Int("total_projects").
			Default(0).
			NonNegative().
			Comment("Total projects ever submitted"),
		field.Int("successful_projects").
			Default(0).
			NonNegative().
			Comment("Projects that completed evaluation successfully"),
		field.Float("average_project_score").
			Default(0).
			Comment("Average evaluation score across completed projects"),
		field.Bool("email_verified").
			Default(false).
			Comment("Whether email is verified"),
		field.String("email_verification_token").
			Optional().
			Nillable().
			Sensitive().
			Comment("Token for email verification"),
		field.Time("email_verification_token_expires_at").
			Optional().
			Nillable().
			Comment("Expiration time for verification token"),
		field.Time("last_login_at").
			Optional().
			Nillable().
			Comment("Last login timestamp"),
		field.String("stripe_customer_id").
			Optional().
			Comment("Stripe customer ID"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subscriptions", Subscription.Type).
			Comment("User's subscription history"),
		edge.To("reputation", ReputationRecord.Type).
			Unique().
			Comment("User's reputation record"),
		edge.To("expert_applications", ExpertApplication.Type).
			Comment("User's expert applications"),
		edge.To("consultations", Consultation.Type).
			Comment("User's booked consultations"),
		edge.To("reports", Report.Type).
			Comment("User's report requests"),
		edge.To("projects", Project.Type).
			Comment("Projects submitted by the user"),
		edge.To("assignments", Assignment.Type).
			Comment("Expert assignments held by the user"),
		edge.To("audit_logs", AuditLog.Type).
			Comment("User's audit log entries"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("stripe_customer_id"),
		index.Fields("submitter_tier"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
