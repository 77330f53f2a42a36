// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/chainadvisory/chainadvisory-api/ent/tierthreshold"
)

// TierThreshold is the model entity for the TierThreshold schema.
type TierThreshold struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Tier name
	Tier tierthreshold.Tier `json:"tier,omitempty"`
	// Minimum reputation points required for this tier
	MinPoints int `json:"min_points,omitempty"`
	// Monthly project quota this tier permits
	MonthlyProjectLimit int `json:"monthly_project_limit,omitempty"`
	// Last update timestamp
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TierThreshold) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tierthreshold.FieldID, tierthreshold.FieldMinPoints, tierthreshold.FieldMonthlyProjectLimit:
			values[i] = new(sql.NullInt64)
		case tierthreshold.FieldTier:
			values[i] = new(sql.NullString)
		case tierthreshold.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TierThreshold fields.
func (_m *TierThreshold) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tierthreshold.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case tierthreshold.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = tierthreshold.Tier(value.String)
			}
		case tierthreshold.FieldMinPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_points", values[i])
			} else if value.Valid {
				_m.MinPoints = int(value.Int64)
			}
		case tierthreshold.FieldMonthlyProjectLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_project_limit", values[i])
			} else if value.Valid {
				_m.MonthlyProjectLimit = int(value.Int64)
			}
		case tierthreshold.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TierThreshold.
// This includes values selected through modifiers, order, etc.
func (_m *TierThreshold) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TierThreshold.
// Note that you need to call TierThreshold.Unwrap() before calling this method if this TierThreshold
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TierThreshold) Update() *TierThresholdUpdateOne {
	return NewTierThresholdClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TierThreshold entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TierThreshold) Unwrap() *TierThreshold {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TierThreshold is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TierThreshold) String() string {
	var builder strings.Builder
	builder.WriteString("TierThreshold(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("min_points=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinPoints))
	builder.WriteString(", ")
	builder.WriteString("monthly_project_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlyProjectLimit))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TierThresholds is a parsable slice of TierThreshold.
type TierThresholds []*TierThreshold
