// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chainadvisory/chainadvisory-api/ent/reputationrecord"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// ReputationRecord is the model entity for the ReputationRecord schema.
type ReputationRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// User ID foreign key; one record per user
	UserID int `json:"user_id,omitempty"`
	// Accumulated reputation points
	TotalPoints int `json:"total_points,omitempty"`
	// Derived level, a pure function of total_points
	Level int `json:"level,omitempty"`
	// Projects submitted for evaluation
	ProjectsSubmitted int `json:"projects_submitted,omitempty"`
	// Average evaluation rating received
	AverageRating float64 `json:"average_rating,omitempty"`
	// Share of submitted projects that completed, 0..100
	CompletionRate float64 `json:"completion_rate,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReputationRecordQuery when eager-loading is set.
	Edges        ReputationRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReputationRecordEdges holds the relations/edges for other nodes in the graph.
type ReputationRecordEdges struct {
	// Record owner
	User *User `json:"user,omitempty"`
	// Achievements awarded to this record
	Achievements []*Achievement `json:"achievements,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReputationRecordEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// AchievementsOrErr returns the Achievements value or an error if the edge
// was not loaded in eager-loading.
func (e ReputationRecordEdges) AchievementsOrErr() ([]*Achievement, error) {
	if e.loadedTypes[1] {
		return e.Achievements, nil
	}
	return nil, &NotLoadedError{edge: "achievements"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReputationRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reputationrecord.FieldAverageRating, reputationrecord.FieldCompletionRate:
			values[i] = new(sql.NullFloat64)
		case reputationrecord.FieldID, reputationrecord.FieldUserID, reputationrecord.FieldTotalPoints, reputationrecord.FieldLevel, reputationrecord.FieldProjectsSubmitted:
			values[i] = new(sql.NullInt64)
		case reputationrecord.FieldCreatedAt, reputationrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReputationRecord fields.
func (_m *ReputationRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reputationrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reputationrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case reputationrecord.FieldTotalPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_points", values[i])
			} else if value.Valid {
				_m.TotalPoints = int(value.Int64)
			}
		case reputationrecord.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case reputationrecord.FieldProjectsSubmitted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field projects_submitted", values[i])
			} else if value.Valid {
				_m.ProjectsSubmitted = int(value.Int64)
			}
		case reputationrecord.FieldAverageRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_rating", values[i])
			} else if value.Valid {
				_m.AverageRating = value.Float64
			}
		case reputationrecord.FieldCompletionRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_rate", values[i])
			} else if value.Valid {
				_m.CompletionRate = value.Float64
			}
		case reputationrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case reputationrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ReputationRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ReputationRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the ReputationRecord entity.
func (_m *ReputationRecord) QueryUser() *UserQuery {
	return NewReputationRecordClient(_m.config).QueryUser(_m)
}

// QueryAchievements queries the "achievements" edge of the ReputationRecord entity.
func (_m *ReputationRecord) QueryAchievements() *AchievementQuery {
	return NewReputationRecordClient(_m.config).QueryAchievements(_m)
}

// Update returns a builder for updating this ReputationRecord.
// Note that you need to call ReputationRecord.Unwrap() before calling this method if this ReputationRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReputationRecord) Update() *ReputationRecordUpdateOne {
	return NewReputationRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReputationRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReputationRecord) Unwrap() *ReputationRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReputationRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReputationRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ReputationRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("total_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPoints))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("projects_submitted=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectsSubmitted))
	builder.WriteString(", ")
	builder.WriteString("average_rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.AverageRating))
	builder.WriteString(", ")
	builder.WriteString("completion_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionRate))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReputationRecords is a parsable slice of ReputationRecord.
type ReputationRecords []*ReputationRecord
