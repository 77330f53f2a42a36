package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Report holds the schema definition for the Report entity.
type Report struct {
	ent.Schema
}

// Fields of the Report.
func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Comment("Requesting user ID"),
		field.Enum("report_type").
			Values("advisory_notes", "market_analysis", "audit_summary", "tokenomics_review").
			Comment("Report type"),
		field.Enum("priority").
			Values("low", "medium", "high").
			Default("low").
			Comment("Delivery priority; drives the pricing multiplier"),
		field.Int("price_cents").
			NonNegative().
			Comment("Total price in cents, computed by the pricing calculator"),
		field.Enum("status").
			Values("requested", "in_progress", "delivered", "cancelled").
			Default("requested").
			Comment("Report request status"),
		field.Text("brief").
			Optional().
			Comment("Client brief for the report"),
		field.Bool("paid").
			Default(false).
			Comment("Whether payment completed"),
		field.Time("delivered_at").
			Optional().
			Nillable().
			Comment("Delivery timestamp"),
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

// Edges of the Report.
func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("reports").
			Field("user_id").
			Unique().
			Required().
			Comment("Request owner"),
	}
}

// Indexes of the Report.
func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("priority"),
		index.Fields("created_at"),
	}
}
