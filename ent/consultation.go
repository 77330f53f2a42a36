// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chainadvisory/chainadvisory-api/ent/consultation"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// Consultation is the model entity for the Consultation schema.
type Consultation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Booking user ID
	UserID int `json:"user_id,omitempty"`
	// Consultation service type
	ServiceType consultation.ServiceType `json:"service_type,omitempty"`
	// Session length: 30, 45 or 60 minutes
	DurationMinutes int `json:"duration_minutes,omitempty"`
	// Scheduled session start
	ScheduledAt time.Time `json:"scheduled_at,omitempty"`
	// Total price in cents, computed by the pricing calculator
	PriceCents int `json:"price_cents,omitempty"`
	// Booking status
	Status consultation.Status `json:"status,omitempty"`
	// Contact phone in E.164 format
	ContactPhone string `json:"contact_phone,omitempty"`
	// Client notes for the consultant
	Notes string `json:"notes,omitempty"`
	// Whether payment completed
	Paid bool `json:"paid,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConsultationQuery when eager-loading is set.
	Edges        ConsultationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConsultationEdges holds the relations/edges for other nodes in the graph.
type ConsultationEdges struct {
	// Booking owner
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConsultationEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Consultation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case consultation.FieldPaid:
			values[i] = new(sql.NullBool)
		case consultation.FieldID, consultation.FieldUserID, consultation.FieldDurationMinutes, consultation.FieldPriceCents:
			values[i] = new(sql.NullInt64)
		case consultation.FieldServiceType, consultation.FieldStatus, consultation.FieldContactPhone, consultation.FieldNotes:
			values[i] = new(sql.NullString)
		case consultation.FieldScheduledAt, consultation.FieldCreatedAt, consultation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Consultation fields.
func (_m *Consultation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case consultation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case consultation.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case consultation.FieldServiceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field service_type", values[i])
			} else if value.Valid {
				_m.ServiceType = consultation.ServiceType(value.String)
			}
		case consultation.FieldDurationMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_minutes", values[i])
			} else if value.Valid {
				_m.DurationMinutes = int(value.Int64)
			}
		case consultation.FieldScheduledAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_at", values[i])
			} else if value.Valid {
				_m.ScheduledAt = value.Time
			}
		case consultation.FieldPriceCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field price_cents", values[i])
			} else if value.Valid {
				_m.PriceCents = int(value.Int64)
			}
		case consultation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = consultation.Status(value.String)
			}
		case consultation.FieldContactPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_phone", values[i])
			} else if value.Valid {
				_m.ContactPhone = value.String
			}
		case consultation.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case consultation.FieldPaid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field paid", values[i])
			} else if value.Valid {
				_m.Paid = value.Bool
			}
		case consultation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case consultation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Consultation.
// This includes values selected through modifiers, order, etc.
func (_m *Consultation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Consultation entity.
func (_m *Consultation) QueryUser() *UserQuery {
	return NewConsultationClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this Consultation.
// Note that you need to call Consultation.Unwrap() before calling this method if this Consultation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Consultation) Update() *ConsultationUpdateOne {
	return NewConsultationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Consultation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Consultation) Unwrap() *Consultation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Consultation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Consultation) String() string {
	var builder strings.Builder
	builder.WriteString("Consultation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("service_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ServiceType))
	builder.WriteString(", ")
	builder.WriteString("duration_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMinutes))
	builder.WriteString(", ")
	builder.WriteString("scheduled_at=")
	builder.WriteString(_m.ScheduledAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("price_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriceCents))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("contact_phone=")
	builder.WriteString(_m.ContactPhone)
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("paid=")
	builder.WriteString(fmt.Sprintf("%v", _m.Paid))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Consultations is a parsable slice of Consultation.
type Consultations []*Consultation
