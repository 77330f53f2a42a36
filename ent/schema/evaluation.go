package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Evaluation holds the schema definition for the Evaluation entity.
// Exactly one evaluation is produced per assignment.
type Evaluation struct {
	ent.Schema
}

// Fields of the Evaluation.
func (Evaluation) Fields() []ent.Field {
	return []ent.Field{
		field.Float("score").
			Comment("Evaluation score, 0..10"),
		field.Text("summary").
			Optional().
			Comment("Evaluation summary"),
		field.Float("rating").
			Optional().
			Comment("Submitter's rating of the evaluation, 0..5"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Evaluation.
func (Evaluation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("assignment", Assignment.Type).
			Ref("evaluation").
			Unique().
			Required().
			Comment("Assignment that produced this evaluation"),
	}
}

// Indexes of the Evaluation.
func (Evaluation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
