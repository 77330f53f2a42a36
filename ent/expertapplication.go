// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chainadvisory/chainadvisory-api/ent/expertapplication"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// ExpertApplication is the model entity for the ExpertApplication schema.
type ExpertApplication struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// User ID foreign key
	UserID int `json:"user_id,omitempty"`
	// Admin-driven review status
	VerificationStatus expertapplication.VerificationStatus `json:"verification_status,omitempty"`
	// Claimed area of expertise
	Specialization string `json:"specialization,omitempty"`
	// Applicant's motivation statement
	Motivation string `json:"motivation,omitempty"`
	// Reputation points at review time
	ReputationPoints int `json:"reputation_points,omitempty"`
	// Expert tier granted on verification
	ExpertTier expertapplication.ExpertTier `json:"expert_tier,omitempty"`
	// Evaluation accuracy rate, 0..100
	AccuracyRate float64 `json:"accuracy_rate,omitempty"`
	// Reviewer notes, including info requests
	ReviewNotes string `json:"review_notes,omitempty"`
	// When the application was last reviewed
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExpertApplicationQuery when eager-loading is set.
	Edges        ExpertApplicationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExpertApplicationEdges holds the relations/edges for other nodes in the graph.
type ExpertApplicationEdges struct {
	// Applicant
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExpertApplicationEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExpertApplication) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case expertapplication.FieldAccuracyRate:
			values[i] = new(sql.NullFloat64)
		case expertapplication.FieldID, expertapplication.FieldUserID, expertapplication.FieldReputationPoints:
			values[i] = new(sql.NullInt64)
		case expertapplication.FieldVerificationStatus, expertapplication.FieldSpecialization, expertapplication.FieldMotivation, expertapplication.FieldExpertTier, expertapplication.FieldReviewNotes:
			values[i] = new(sql.NullString)
		case expertapplication.FieldReviewedAt, expertapplication.FieldCreatedAt, expertapplication.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExpertApplication fields.
func (_m *ExpertApplication) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case expertapplication.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case expertapplication.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case expertapplication.FieldVerificationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verification_status", values[i])
			} else if value.Valid {
				_m.VerificationStatus = expertapplication.VerificationStatus(value.String)
			}
		case expertapplication.FieldSpecialization:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field specialization", values[i])
			} else if value.Valid {
				_m.Specialization = value.String
			}
		case expertapplication.FieldMotivation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field motivation", values[i])
			} else if value.Valid {
				_m.Motivation = value.String
			}
		case expertapplication.FieldReputationPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reputation_points", values[i])
			} else if value.Valid {
				_m.ReputationPoints = int(value.Int64)
			}
		case expertapplication.FieldExpertTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expert_tier", values[i])
			} else if value.Valid {
				_m.ExpertTier = expertapplication.ExpertTier(value.String)
			}
		case expertapplication.FieldAccuracyRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy_rate", values[i])
			} else if value.Valid {
				_m.AccuracyRate = value.Float64
			}
		case expertapplication.FieldReviewNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field review_notes", values[i])
			} else if value.Valid {
				_m.ReviewNotes = value.String
			}
		case expertapplication.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		case expertapplication.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case expertapplication.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExpertApplication.
// This includes values selected through modifiers, order, etc.
func (_m *ExpertApplication) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the ExpertApplication entity.
func (_m *ExpertApplication) QueryUser() *UserQuery {
	return NewExpertApplicationClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this ExpertApplication.
// Note that you need to call ExpertApplication.Unwrap() before calling this method if this ExpertApplication
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExpertApplication) Update() *ExpertApplicationUpdateOne {
	return NewExpertApplicationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExpertApplication entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExpertApplication) Unwrap() *ExpertApplication {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExpertApplication is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExpertApplication) String() string {
	var builder strings.Builder
	builder.WriteString("ExpertApplication(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("verification_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.VerificationStatus))
	builder.WriteString(", ")
	builder.WriteString("specialization=")
	builder.WriteString(_m.Specialization)
	builder.WriteString(", ")
	builder.WriteString("motivation=")
	builder.WriteString(_m.Motivation)
	builder.WriteString(", ")
	builder.WriteString("reputation_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReputationPoints))
	builder.WriteString(", ")
	builder.WriteString("expert_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpertTier))
	builder.WriteString(", ")
	builder.WriteString("accuracy_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccuracyRate))
	builder.WriteString(", ")
	builder.WriteString("review_notes=")
	builder.WriteString(_m.ReviewNotes)
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExpertApplications is a parsable slice of ExpertApplication.
type ExpertApplications []*ExpertApplication
