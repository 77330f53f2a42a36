package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assignment holds the schema definition for the Assignment entity.
// An assignment links one expert to one project.
type Assignment struct {
	ent.Schema
}

// Fields of the Assignment.
func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id").
			Positive().
			Comment("Project ID foreign key"),
		field.Int("expert_id").
			Positive().
			Comment("Expert user ID foreign key"),
		field.Enum("status").
			Values("assigned", "in_progress", "completed").
			Default("assigned").
			Comment("Assignment lifecycle status"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When the expert started work"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("When the evaluation was delivered"),
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

// Edges of the Assignment.
func (Assignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("assignments").
			Field("project_id").
			Unique().
			Required().
			Comment("Assigned project"),
		edge.From("expert", User.Type).
			Ref("assignments").
			Field("expert_id").
			Unique().
			Required().
			Comment("Assigned expert"),
		edge.To("evaluation", Evaluation.Type).
			Unique().
			Comment("Evaluation produced by this assignment"),
	}
}

// Indexes of the Assignment.
func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("expert_id"),
		index.Fields("status"),
		index.Fields("project_id", "expert_id").Unique(),
	}
}
