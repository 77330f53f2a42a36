package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// NotificationLog holds the schema definition for the NotificationLog entity.
// Rows are append-only: delivery history is audit data and is never mutated.
type NotificationLog struct {
	ent.Schema
}

// Fields of the NotificationLog.
func (NotificationLog) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("type").
			Values(
				"consultation_confirmation",
				"consultation_reminder",
				"report_ready",
				"subscription_activated",
				"subscription_renewed",
				"subscription_cancelled",
				"subscription_expiring",
				"payment_failed",
				"expert_application_update",
				"email_verification",
				"password_reset",
			).
			Immutable().
			Comment("Notification type"),
		field.Bool("email_sent").
			Immutable().
			Comment("Whether delivery succeeded"),
		field.String("recipient").
			NotEmpty().
			Immutable().
			Comment("Recipient email address"),
		field.String("sender").
			Immutable().
			Comment("Sender email address"),
		field.Text("details").
			Optional().
			Immutable().
			Comment("Subject line or failure detail"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Indexes of the NotificationLog.
func (NotificationLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type"),
		index.Fields("email_sent"),
		index.Fields("recipient"),
		index.Fields("created_at"),
	}
}
