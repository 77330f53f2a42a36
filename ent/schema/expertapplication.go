package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExpertApplication holds the schema definition for the ExpertApplication entity.
type ExpertApplication struct {
	ent.Schema
}

// Fields of the ExpertApplication.
func (ExpertApplication) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Comment("User ID foreign key"),
		field.Enum("verification_status").
			Values("pending", "under_review", "verified", "rejected", "suspended").
			Default("pending").
			Comment("Admin-driven review status"),
		field.String("specialization").
			NotEmpty().
			Comment("Claimed area of expertise"),
		field.Text("motivation").
			Optional().
			Comment("Applicant's motivation statement"),
		field.Int("reputation_points").
			Default(0).
			NonNegative().
			Comment("Reputation points at review time"),
		field.Enum("expert_tier").
			Values("junior", "senior", "principal").
			Default("junior").
			Comment("Expert tier granted on verification"),
		field.Float("accuracy_rate").
			Default(0).
			Comment("Evaluation accuracy rate, 0..100"),
		field.Text("review_notes").
			Optional().
			Comment("Reviewer notes, including info requests"),
		field.Time("reviewed_at").
			Optional().
			Nillable().
			Comment("When the application was last reviewed"),
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

// Edges of the ExpertApplication.
func (ExpertApplication) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("expert_applications").
			Field("user_id").
			Unique().
			Required().
			Comment("Applicant"),
	}
}

// Indexes of the ExpertApplication.
func (ExpertApplication) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("verification_status"),
		index.Fields("created_at"),
	}
}
