package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReputationRecord holds the schema definition for the ReputationRecord entity.
type ReputationRecord struct {
	ent.Schema
}

// Fields of the ReputationRecord.
func (ReputationRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Unique().
			Comment("User ID foreign key; one record per user"),
		field.Int("total_points").
			Default(0).
			NonNegative().
			Comment("Accumulated reputation points"),
		field.Int("level").
			Default(1).
			Positive().
			Comment("Derived level, a pure function of total_points"),
		field.Int("projects_submitted").
			Default(0).
			NonNegative().
			Comment("Projects submitted for evaluation"),
		field.Float("average_rating").
			Default(0).
			Comment("Average evaluation rating received"),
		field.Float("completion_rate").
			Default(0).
			Comment("Share of submitted projects that completed, 0..100"),
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

// Edges of the ReputationRecord.
func (ReputationRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("reputation").
			Field("user_id").
			Unique().
			Required().
			Comment("Record owner"),
		edge.To("achievements", Achievement.Type).
			Comment("Achievements awarded to this record"),
	}
}

// Indexes of the ReputationRecord.
func (ReputationRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
		index.Fields("total_points"),
	}
}
