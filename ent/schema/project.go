package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Comment("Submitting user ID"),
		field.String("name").
			NotEmpty().
			Comment("Project name"),
		field.Text("description").
			Optional().
			Comment("Project description"),
		field.Enum("category").
			Values("defi", "infrastructure", "nft", "dao", "gaming", "other").
			Default("other").
			Comment("Project category"),
		field.Enum("status").
			Values("submitted", "in_review", "completed", "withdrawn").
			Default("submitted").
			Comment("Project lifecycle status"),
		field.Float("final_score").
			Optional().
			Comment("Final averaged evaluation score"),
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

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("projects").
			Field("user_id").
			Unique().
			Required().
			Comment("Project submitter"),
		edge.To("assignments", Assignment.Type).
			Comment("Expert assignments; at most 3 concurrent"),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
