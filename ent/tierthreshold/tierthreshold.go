// Code generated by ent, DO NOT EDIT.

package tierthreshold

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tierthreshold type in the database.
	Label = "tier_threshold"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldMinPoints holds the string denoting the min_points field in the database.
	FieldMinPoints = "min_points"
	// FieldMonthlyProjectLimit holds the string denoting the monthly_project_limit field in the database.
	FieldMonthlyProjectLimit = "monthly_project_limit"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the tierthreshold in the database.
	Table = "tier_thresholds"
)

// Columns holds all SQL columns for tierthreshold fields.
var Columns = []string{
	FieldID,
	FieldTier,
	FieldMinPoints,
	FieldMonthlyProjectLimit,
	FieldUpdatedAt,
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
	// MinPointsValidator is a validator for the "min_points" field. It is called by the builders before save.
	MinPointsValidator func(int) error
	// MonthlyProjectLimitValidator is a validator for the "monthly_project_limit" field. It is called by the builders before save.
	MonthlyProjectLimitValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Tier defines the type for the "tier" enum field.
type Tier string

// Tier values.
const (
	TierBasic            Tier = "basic"
	TierVerified         Tier = "verified"
	TierPremium          Tier = "premium"
	TierVc               Tier = "vc"
	TierEcosystemPartner Tier = "ecosystem_partner"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierBasic, TierVerified, TierPremium, TierVc, TierEcosystemPartner:
		return nil
	default:
		return fmt.Errorf("tierthreshold: invalid enum value for tier field: %q", t)
	}
}

// OrderOption defines the ordering options for the TierThreshold queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByMinPoints orders the results by the min_points field.
func ByMinPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinPoints, opts...).ToFunc()
}

// ByMonthlyProjectLimit orders the results by the monthly_project_limit field.
func ByMonthlyProjectLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyProjectLimit, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
