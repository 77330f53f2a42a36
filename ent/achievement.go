// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chainadvisory/chainadvisory-api/ent/achievement"
	"github.com/chainadvisory/chainadvisory-api/ent/reputationrecord"
)

// Achievement is the model entity for the Achievement schema.
type Achievement struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Achievement title
	Title string `json:"title,omitempty"`
	// What the achievement was awarded for
	Description string `json:"description,omitempty"`
	// Reputation points granted by this achievement
	PointsAwarded int `json:"points_awarded,omitempty"`
	// Award timestamp
	AwardedAt time.Time `json:"awarded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AchievementQuery when eager-loading is set.
	Edges                          AchievementEdges `json:"edges"`
	reputation_record_achievements *int
	selectValues                   sql.SelectValues
}

// AchievementEdges holds the relations/edges for other nodes in the graph.
type AchievementEdges struct {
	// Reputation record this achievement belongs to
	Record *ReputationRecord `json:"record,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RecordOrErr returns the Record value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AchievementEdges) RecordOrErr() (*ReputationRecord, error) {
	if e.Record != nil {
		return e.Record, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: reputationrecord.Label}
	}
	return nil, &NotLoadedError{edge: "record"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Achievement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case achievement.FieldID, achievement.FieldPointsAwarded:
			values[i] = new(sql.NullInt64)
		case achievement.FieldTitle, achievement.FieldDescription:
			values[i] = new(sql.NullString)
		case achievement.FieldAwardedAt:
			values[i] = new(sql.NullTime)
		case achievement.ForeignKeys[0]: // reputation_record_achievements
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Achievement fields.
func (_m *Achievement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case achievement.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case achievement.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case achievement.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case achievement.FieldPointsAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points_awarded", values[i])
			} else if value.Valid {
				_m.PointsAwarded = int(value.Int64)
			}
		case achievement.FieldAwardedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field awarded_at", values[i])
			} else if value.Valid {
				_m.AwardedAt = value.Time
			}
		case achievement.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field reputation_record_achievements", value)
			} else if value.Valid {
				_m.reputation_record_achievements = new(int)
				*_m.reputation_record_achievements = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Achievement.
// This includes values selected through modifiers, order, etc.
func (_m *Achievement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRecord queries the "record" edge of the Achievement entity.
func (_m *Achievement) QueryRecord() *ReputationRecordQuery {
	return NewAchievementClient(_m.config).QueryRecord(_m)
}

// Update returns a builder for updating this Achievement.
// Note that you need to call Achievement.Unwrap() before calling this method if this Achievement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Achievement) Update() *AchievementUpdateOne {
	return NewAchievementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Achievement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Achievement) Unwrap() *Achievement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Achievement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Achievement) String() string {
	var builder strings.Builder
	builder.WriteString("Achievement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("points_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.PointsAwarded))
	builder.WriteString(", ")
	builder.WriteString("awarded_at=")
	builder.WriteString(_m.AwardedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Achievements is a parsable slice of Achievement.
type Achievements []*Achievement
