package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Achievement holds the schema definition for the Achievement entity.
// Achievements are immutable once awarded.
type Achievement struct {
	ent.Schema
}

// Fields of the Achievement.
func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty().
			Immutable().
			Comment("Achievement title"),
		field.String("description").
			Optional().
			Immutable().
			Comment("What the achievement was awarded for"),
		field.Int("points_awarded").
			NonNegative().
			Immutable().
			Comment("Reputation points granted by this achievement"),
		field.Time("awarded_at").
			Default(time.Now).
			Immutable().
			Comment("Award timestamp"),
	}
}

// Edges of the Achievement.
func (Achievement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("record", ReputationRecord.Type).
			Ref("achievements").
			Unique().
			Required().
			Comment("Reputation record this achievement belongs to"),
	}
}

// Indexes of the Achievement.
func (Achievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("awarded_at"),
	}
}
