// Code generated by ent, DO NOT EDIT.

package achievement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the achievement type in the database.
	Label = "achievement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPointsAwarded holds the string denoting the points_awarded field in the database.
	FieldPointsAwarded = "points_awarded"
	// FieldAwardedAt holds the string denoting the awarded_at field in the database.
	FieldAwardedAt = "awarded_at"
	// EdgeRecord holds the string denoting the record edge name in mutations.
	EdgeRecord = "record"
	// Table holds the table name of the achievement in the database.
	Table = "achievements"
	// RecordTable is the table that holds the record relation/edge.
	RecordTable = "achievements"
	// RecordInverseTable is the table name for the ReputationRecord entity.
	// It exists in this package in order to avoid circular dependency with the "reputationrecord" package.
	RecordInverseTable = "reputation_records"
	// RecordColumn is the table column denoting the record relation/edge.
	RecordColumn = "reputation_record_achievements"
)

// Columns holds all SQL columns for achievement fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldPointsAwarded,
	FieldAwardedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "achievements"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"reputation_record_achievements",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// PointsAwardedValidator is a validator for the "points_awarded" field. It is called by the builders before save.
	PointsAwardedValidator func(int) error
	// DefaultAwardedAt holds the default value on creation for the "awarded_at" field.
	DefaultAwardedAt func() time.Time
)

// OrderOption defines the ordering options for the Achievement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPointsAwarded orders the results by the points_awarded field.
func ByPointsAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPointsAwarded, opts...).ToFunc()
}

// ByAwardedAt orders the results by the awarded_at field.
func ByAwardedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAwardedAt, opts...).ToFunc()
}

// ByRecordField orders the results by record field.
func ByRecordField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecordStep(), sql.OrderByField(field, opts...))
	}
}
func newRecordStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecordInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RecordTable, RecordColumn),
	)
}
