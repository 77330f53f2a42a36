// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chainadvisory/chainadvisory-api/ent/notificationlog"
)

// NotificationLog is the model entity for the NotificationLog schema.
type NotificationLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Notification type
	Type notificationlog.Type `json:"type,omitempty"`
	// Whether delivery succeeded
	EmailSent bool `json:"email_sent,omitempty"`
	// Recipient email address
	Recipient string `json:"recipient,omitempty"`
	// Sender email address
	Sender string `json:"sender,omitempty"`
	// Subject line or failure detail
	Details string `json:"details,omitempty"`
	// Creation timestamp
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NotificationLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case notificationlog.FieldEmailSent:
			values[i] = new(sql.NullBool)
		case notificationlog.FieldID:
			values[i] = new(sql.NullInt64)
		case notificationlog.FieldType, notificationlog.FieldRecipient, notificationlog.FieldSender, notificationlog.FieldDetails:
			values[i] = new(sql.NullString)
		case notificationlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NotificationLog fields.
func (_m *NotificationLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case notificationlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case notificationlog.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = notificationlog.Type(value.String)
			}
		case notificationlog.FieldEmailSent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field email_sent", values[i])
			} else if value.Valid {
				_m.EmailSent = value.Bool
			}
		case notificationlog.FieldRecipient:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient", values[i])
			} else if value.Valid {
				_m.Recipient = value.String
			}
		case notificationlog.FieldSender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender", values[i])
			} else if value.Valid {
				_m.Sender = value.String
			}
		case notificationlog.FieldDetails:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value.Valid {
				_m.Details = value.String
			}
		case notificationlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NotificationLog.
// This includes values selected through modifiers, order, etc.
func (_m *NotificationLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this NotificationLog.
// Note that you need to call NotificationLog.Unwrap() before calling this method if this NotificationLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NotificationLog) Update() *NotificationLogUpdateOne {
	return NewNotificationLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NotificationLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NotificationLog) Unwrap() *NotificationLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: NotificationLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NotificationLog) String() string {
	var builder strings.Builder
	builder.WriteString("NotificationLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("email_sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailSent))
	builder.WriteString(", ")
	builder.WriteString("recipient=")
	builder.WriteString(_m.Recipient)
	builder.WriteString(", ")
	builder.WriteString("sender=")
	builder.WriteString(_m.Sender)
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(_m.Details)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// NotificationLogs is a parsable slice of NotificationLog.
type NotificationLogs []*NotificationLog
