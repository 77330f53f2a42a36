package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subscription holds the schema definition for the Subscription entity.
type Subscription struct {
	ent.Schema
}

// Fields of the Subscription.
func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Comment("User ID foreign key"),
		field.Enum("plan").
			Values("starter", "growth", "enterprise").
			Comment("Subscription plan"),
		field.Enum("billing_cycle").
			Values("monthly", "yearly").
			Default("monthly").
			Comment("Billing cycle"),
		field.Int("price_cents").
			NonNegative().
			Comment("Plan price per cycle in cents"),
		field.Enum("status").
			Values("active", "expired", "cancelled", "past_due", "trialing").
			Default("active").
			Comment("Subscription status"),
		field.Int("credit_allotment").
			Default(0).
			NonNegative().
			Comment("Consultation credits granted per billing period"),
		field.Int("used_credits").
			Default(0).
			NonNegative().
			Comment("Consultation credits consumed this period"),
		field.Bool("is_unlimited").
			Default(false).
			Comment("Whether the plan grants unlimited credits"),
		field.String("stripe_subscription_id").
			Optional().
			Comment("Stripe subscription ID"),
		field.String("stripe_price_id").
			Optional().
			Comment("Stripe price ID"),
		field.Time("current_period_start").
			Optional().
			Comment("Current billing period start"),
		field.Time("current_period_end").
			Optional().
			Comment("Current billing period end"),
		field.Bool("cancel_at_period_end").
			Default(false).
			Comment("Whether to cancel at period end"),
		field.Time("cancelled_at").
			Optional().
			Nillable().
			Comment("Cancellation timestamp"),
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

// Edges of the Subscription.
func (Subscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("subscriptions").
			Field("user_id").
			Unique().
			Required().
			Comment("Subscription owner"),
	}
}

// Indexes of the Subscription.
func (Subscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("stripe_subscription_id").Unique(),
		index.Fields("status"),
		index.Fields("current_period_end"),
		index.Fields("created_at"),
	}
}
