// Code generated by ent, DO NOT EDIT.

package expertapplication

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the expertapplication type in the database.
	Label = "expert_application"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldVerificationStatus holds the string denoting the verification_status field in the database.
	FieldVerificationStatus = "verification_status"
	// FieldSpecialization holds the string denoting the specialization field in the database.
	FieldSpecialization = "specialization"
	// FieldMotivation holds the string denoting the motivation field in the database.
	FieldMotivation = "motivation"
	// FieldReputationPoints holds the string denoting the reputation_points field in the database.
	FieldReputationPoints = "reputation_points"
	// FieldExpertTier holds the string denoting the expert_tier field in the database.
	FieldExpertTier = "expert_tier"
	// FieldAccuracyRate holds the string denoting the accuracy_rate field in the database.
	FieldAccuracyRate = "accuracy_rate"
	// FieldReviewNotes holds the string denoting the review_notes field in the database.
	FieldReviewNotes = "review_notes"
	// FieldReviewedAt holds the string denoting the reviewed_at field in the database.
	FieldReviewedAt = "reviewed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the expertapplication in the database.
	Table = "expert_applications"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "expert_applications"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for expertapplication fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldVerificationStatus,
	FieldSpecialization,
	FieldMotivation,
	FieldReputationPoints,
	FieldExpertTier,
	FieldAccuracyRate,
	FieldReviewNotes,
	FieldReviewedAt,
	FieldCreatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(int) error
	// SpecializationValidator is a validator for the "specialization" field. It is called by the builders before save.
	SpecializationValidator func(string) error
	// DefaultReputationPoints holds the default value on creation for the "reputation_points" field.
	DefaultReputationPoints int
	// ReputationPointsValidator is a validator for the "reputation_points" field. It is called by the builders before save.
	ReputationPointsValidator func(int) error
	// DefaultAccuracyRate holds the default value on creation for the "accuracy_rate" field.
	DefaultAccuracyRate float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// VerificationStatus defines the type for the "verification_status" enum field.
type VerificationStatus string

// VerificationStatusPending is the default value of the VerificationStatus enum.
const DefaultVerificationStatus = VerificationStatusPending

// VerificationStatus values.
const (
	VerificationStatusPending     VerificationStatus = "pending"
	VerificationStatusUnderReview VerificationStatus = "under_review"
	VerificationStatusVerified    VerificationStatus = "verified"
	VerificationStatusRejected    VerificationStatus = "rejected"
	VerificationStatusSuspended   VerificationStatus = "suspended"
)

func (vs VerificationStatus) String() string {
	return string(vs)
}

// VerificationStatusValidator is a validator for the "verification_status" field enum values. It is called by the builders before save.
func VerificationStatusValidator(vs VerificationStatus) error {
	switch vs {
	case VerificationStatusPending, VerificationStatusUnderReview, VerificationStatusVerified, VerificationStatusRejected, VerificationStatusSuspended:
		return nil
	default:
		return fmt.Errorf("expertapplication: invalid enum value for verification_status field: %q", vs)
	}
}

// ExpertTier defines the type for the "expert_tier" enum field.
type ExpertTier string

// ExpertTierJunior is the default value of the ExpertTier enum.
const DefaultExpertTier = ExpertTierJunior

// ExpertTier values.
const (
	ExpertTierJunior    ExpertTier = "junior"
	ExpertTierSenior    ExpertTier = "senior"
	ExpertTierPrincipal ExpertTier = "principal"
)

func (et ExpertTier) String() string {
	return string(et)
}

// ExpertTierValidator is a validator for the "expert_tier" field enum values. It is called by the builders before save.
func ExpertTierValidator(et ExpertTier) error {
	switch et {
	case ExpertTierJunior, ExpertTierSenior, ExpertTierPrincipal:
		return nil
	default:
		return fmt.Errorf("expertapplication: invalid enum value for expert_tier field: %q", et)
	}
}

// OrderOption defines the ordering options for the ExpertApplication queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByVerificationStatus orders the results by the verification_status field.
func ByVerificationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerificationStatus, opts...).ToFunc()
}

// BySpecialization orders the results by the specialization field.
func BySpecialization(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecialization, opts...).ToFunc()
}

// ByMotivation orders the results by the motivation field.
func ByMotivation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMotivation, opts...).ToFunc()
}

// ByReputationPoints orders the results by the reputation_points field.
func ByReputationPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReputationPoints, opts...).ToFunc()
}

// ByExpertTier orders the results by the expert_tier field.
func ByExpertTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpertTier, opts...).ToFunc()
}

// ByAccuracyRate orders the results by the accuracy_rate field.
func ByAccuracyRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracyRate, opts...).ToFunc()
}

// ByReviewNotes orders the results by the review_notes field.
func ByReviewNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewNotes, opts...).ToFunc()
}

// ByReviewedAt orders the results by the reviewed_at field.
func ByReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
