// Code generated by ent, DO NOT EDIT.

package notificationlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the notificationlog type in the database.
	Label = "notification_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldEmailSent holds the string denoting the email_sent field in the database.
	FieldEmailSent = "email_sent"
	// FieldRecipient holds the string denoting the recipient field in the database.
	FieldRecipient = "recipient"
	// FieldSender holds the string denoting the sender field in the database.
	FieldSender = "sender"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the notificationlog in the database.
	Table = "notification_logs"
)

// Columns holds all SQL columns for notificationlog fields.
var Columns = []string{
	FieldID,
	FieldType,
	FieldEmailSent,
	FieldRecipient,
	FieldSender,
	FieldDetails,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// RecipientValidator is a validator for the "recipient" field. It is called by the builders before save.
	RecipientValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeConsultationConfirmation Type = "consultation_confirmation"
	TypeConsultationReminder     Type = "consultation_reminder"
	TypeReportReady              Type = "report_ready"
	TypeSubscriptionActivated    Type = "subscription_activated"
	TypeSubscriptionRenewed      Type = "subscription_renewed"
	TypeSubscriptionCancelled    Type = "subscription_cancelled"
	TypeSubscriptionExpiring     Type = "subscription_expiring"
	TypePaymentFailed            Type = "payment_failed"
	TypeExpertApplicationUpdate  Type = "expert_application_update"
	TypeEmailVerification        Type = "email_verification"
	TypePasswordReset            Type = "password_reset"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeConsultationConfirmation, TypeConsultationReminder, TypeReportReady, TypeSubscriptionActivated, TypeSubscriptionRenewed, TypeSubscriptionCancelled, TypeSubscriptionExpiring, TypePaymentFailed, TypeExpertApplicationUpdate, TypeEmailVerification, TypePasswordReset:
		return nil
	default:
		return fmt.Errorf("notificationlog: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the NotificationLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByEmailSent orders the results by the email_sent field.
func ByEmailSent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailSent, opts...).ToFunc()
}

// ByRecipient orders the results by the recipient field.
func ByRecipient(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipient, opts...).ToFunc()
}

// BySender orders the results by the sender field.
func BySender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSender, opts...).ToFunc()
}

// ByDetails orders the results by the details field.
func ByDetails(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetails, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
