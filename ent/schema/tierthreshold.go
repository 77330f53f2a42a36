package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TierThreshold holds the schema definition for the TierThreshold entity.
// The persisted table is the single authoritative source of tier cutoffs;
// no service hard-codes them.
type TierThreshold struct {
	ent.Schema
}

// Fields of the TierThreshold.
func (TierThreshold) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("tier").
			Values("basic", "verified", "premium", "vc", "ecosystem_partner").
			Comment("Tier name"),
		field.Int("min_points").
			NonNegative().
			Comment("Minimum reputation points required for this tier"),
		field.Int("monthly_project_limit").
			Positive().
			Comment("Monthly project quota this tier permits"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Indexes of the TierThreshold.
func (TierThreshold) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tier").Unique(),
		index.Fields("min_points"),
	}
}
