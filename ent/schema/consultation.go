package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Consultation holds the schema definition for the Consultation entity.
type Consultation struct {
	ent.Schema
}

// Fields of the Consultation.
func (Consultation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Comment("Booking user ID"),
		field.Enum("service_type").
			Values("due_diligence", "advisory", "tokenomics", "security_review").
			Comment("Consultation service type"),
		field.Int("duration_minutes").
			Comment("Session length: 30, 45 or 60 minutes"),
		field.Time("scheduled_at").
			Comment("Scheduled session start"),
		field.Int("price_cents").
			NonNegative().
			Comment("Total price in cents, computed by the pricing calculator"),
		field.Enum("status").
			Values("pending", "confirmed", "completed", "cancelled").
			Default("pending").
			Comment("Booking status"),
		field.String("contact_phone").
			Optional().
			Comment("Contact phone in E.164 format"),
		field.Text("notes").
			Optional().
			Comment("Client notes for the consultant"),
		field.Bool("paid").
			Default(false).
			Comment("Whether payment completed"),
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

// Edges of the Consultation.
func (Consultation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("consultations").
			Field("user_id").
			Unique().
			Required().
			Comment("Booking owner"),
	}
}

// Indexes of the Consultation.
func (Consultation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("scheduled_at"),
		index.Fields("created_at"),
	}
}
