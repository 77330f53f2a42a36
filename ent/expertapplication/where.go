// Code generated by ent, DO NOT EDIT.

package expertapplication

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chainadvisory/chainadvisory-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldUserID, v))
}

// Specialization applies equality check predicate on the "specialization" field. It's identical to SpecializationEQ.
func Specialization(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldSpecialization, v))
}

// Motivation applies equality check predicate on the "motivation" field. It's identical to MotivationEQ.
func Motivation(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldMotivation, v))
}

// ReputationPoints applies equality check predicate on the "reputation_points" field. It's identical to ReputationPointsEQ.
func ReputationPoints(v int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldReputationPoints, v))
}

// AccuracyRate applies equality check predicate on the "accuracy_rate" field. It's identical to AccuracyRateEQ.
func AccuracyRate(v float64) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldAccuracyRate, v))
}

// ReviewNotes applies equality check predicate on the "review_notes" field. It's identical to ReviewNotesEQ.
func ReviewNotes(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldReviewNotes, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldReviewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotIn(FieldUserID, vs...))
}

// VerificationStatusEQ applies the EQ predicate on the "verification_status" field.
func VerificationStatusEQ(v VerificationStatus) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldVerificationStatus, v))
}

// VerificationStatusNEQ applies the NEQ predicate on the "verification_status" field.
func VerificationStatusNEQ(v VerificationStatus) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNEQ(FieldVerificationStatus, v))
}

// VerificationStatusIn applies the In predicate on the "verification_status" field.
func VerificationStatusIn(vs ...VerificationStatus) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIn(FieldVerificationStatus, vs...))
}

// VerificationStatusNotIn applies the NotIn predicate on the "verification_status" field.
func VerificationStatusNotIn(vs ...VerificationStatus) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotIn(FieldVerificationStatus, vs...))
}

// SpecializationEQ applies the EQ predicate on the "specialization" field.
func SpecializationEQ(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldSpecialization, v))
}

// SpecializationNEQ applies the NEQ predicate on the "specialization" field.
func SpecializationNEQ(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNEQ(FieldSpecialization, v))
}

// SpecializationIn applies the In predicate on the "specialization" field.
func SpecializationIn(vs ...string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIn(FieldSpecialization, vs...))
}

// SpecializationNotIn applies the NotIn predicate on the "specialization" field.
func SpecializationNotIn(vs ...string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotIn(FieldSpecialization, vs...))
}

// SpecializationGT applies the GT predicate on the "specialization" field.
func SpecializationGT(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGT(FieldSpecialization, v))
}

// SpecializationGTE applies the GTE predicate on the "specialization" field.
func SpecializationGTE(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGTE(FieldSpecialization, v))
}

// SpecializationLT applies the LT predicate on the "specialization" field.
func SpecializationLT(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLT(FieldSpecialization, v))
}

// SpecializationLTE applies the LTE predicate on the "specialization" field.
func SpecializationLTE(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLTE(FieldSpecialization, v))
}

// SpecializationContains applies the Contains predicate on the "specialization" field.
func SpecializationContains(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldContains(FieldSpecialization, v))
}

// SpecializationHasPrefix applies the HasPrefix predicate on the "specialization" field.
func SpecializationHasPrefix(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldHasPrefix(FieldSpecialization, v))
}

// SpecializationHasSuffix applies the HasSuffix predicate on the "specialization" field.
func SpecializationHasSuffix(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldHasSuffix(FieldSpecialization, v))
}

// SpecializationEqualFold applies the EqualFold predicate on the "specialization" field.
func SpecializationEqualFold(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEqualFold(FieldSpecialization, v))
}

// SpecializationContainsFold applies the ContainsFold predicate on the "specialization" field.
func SpecializationContainsFold(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldContainsFold(FieldSpecialization, v))
}

// MotivationEQ applies the EQ predicate on the "motivation" field.
func MotivationEQ(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldMotivation, v))
}

// MotivationNEQ applies the NEQ predicate on the "motivation" field.
func MotivationNEQ(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNEQ(FieldMotivation, v))
}

// MotivationIn applies the In predicate on the "motivation" field.
func MotivationIn(vs ...string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIn(FieldMotivation, vs...))
}

// MotivationNotIn applies the NotIn predicate on the "motivation" field.
func MotivationNotIn(vs ...string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotIn(FieldMotivation, vs...))
}

// MotivationGT applies the GT predicate on the "motivation" field.
func MotivationGT(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGT(FieldMotivation, v))
}

// MotivationGTE applies the GTE predicate on the "motivation" field.
func MotivationGTE(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGTE(FieldMotivation, v))
}

// MotivationLT applies the LT predicate on the "motivation" field.
func MotivationLT(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLT(FieldMotivation, v))
}

// MotivationLTE applies the LTE predicate on the "motivation" field.
func MotivationLTE(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLTE(FieldMotivation, v))
}

// MotivationContains applies the Contains predicate on the "motivation" field.
func MotivationContains(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldContains(FieldMotivation, v))
}

// MotivationHasPrefix applies the HasPrefix predicate on the "motivation" field.
func MotivationHasPrefix(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldHasPrefix(FieldMotivation, v))
}

// MotivationHasSuffix applies the HasSuffix predicate on the "motivation" field.
func MotivationHasSuffix(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldHasSuffix(FieldMotivation, v))
}

// MotivationIsNil applies the IsNil predicate on the "motivation" field.
func MotivationIsNil() predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIsNull(FieldMotivation))
}

// MotivationNotNil applies the NotNil predicate on the "motivation" field.
func MotivationNotNil() predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotNull(FieldMotivation))
}

// MotivationEqualFold applies the EqualFold predicate on the "motivation" field.
func MotivationEqualFold(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEqualFold(FieldMotivation, v))
}

// MotivationContainsFold applies the ContainsFold predicate on the "motivation" field.
func MotivationContainsFold(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldContainsFold(FieldMotivation, v))
}

// ReputationPointsEQ applies the EQ predicate on the "reputation_points" field.
func ReputationPointsEQ(v int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldReputationPoints, v))
}

// ReputationPointsNEQ applies the NEQ predicate on the "reputation_points" field.
func ReputationPointsNEQ(v int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNEQ(FieldReputationPoints, v))
}

// ReputationPointsIn applies the In predicate on the "reputation_points" field.
func ReputationPointsIn(vs ...int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIn(FieldReputationPoints, vs...))
}

// ReputationPointsNotIn applies the NotIn predicate on the "reputation_points" field.
func ReputationPointsNotIn(vs ...int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotIn(FieldReputationPoints, vs...))
}

// ReputationPointsGT applies the GT predicate on the "reputation_points" field.
func ReputationPointsGT(v int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGT(FieldReputationPoints, v))
}

// ReputationPointsGTE applies the GTE predicate on the "reputation_points" field.
func ReputationPointsGTE(v int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGTE(FieldReputationPoints, v))
}

// ReputationPointsLT applies the LT predicate on the "reputation_points" field.
func ReputationPointsLT(v int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLT(FieldReputationPoints, v))
}

// ReputationPointsLTE applies the LTE predicate on the "reputation_points" field.
func ReputationPointsLTE(v int) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLTE(FieldReputationPoints, v))
}

// ExpertTierEQ applies the EQ predicate on the "expert_tier" field.
func ExpertTierEQ(v ExpertTier) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldExpertTier, v))
}

// ExpertTierNEQ applies the NEQ predicate on the "expert_tier" field.
func ExpertTierNEQ(v ExpertTier) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNEQ(FieldExpertTier, v))
}

// ExpertTierIn applies the In predicate on the "expert_tier" field.
func ExpertTierIn(vs ...ExpertTier) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIn(FieldExpertTier, vs...))
}

// ExpertTierNotIn applies the NotIn predicate on the "expert_tier" field.
func ExpertTierNotIn(vs ...ExpertTier) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotIn(FieldExpertTier, vs...))
}

// AccuracyRateEQ applies the EQ predicate on the "accuracy_rate" field.
func AccuracyRateEQ(v float64) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldAccuracyRate, v))
}

// AccuracyRateNEQ applies the NEQ predicate on the "accuracy_rate" field.
func AccuracyRateNEQ(v float64) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNEQ(FieldAccuracyRate, v))
}

// AccuracyRateIn applies the In predicate on the "accuracy_rate" field.
func AccuracyRateIn(vs ...float64) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIn(FieldAccuracyRate, vs...))
}

// AccuracyRateNotIn applies the NotIn predicate on the "accuracy_rate" field.
func AccuracyRateNotIn(vs ...float64) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotIn(FieldAccuracyRate, vs...))
}

// AccuracyRateGT applies the GT predicate on the "accuracy_rate" field.
func AccuracyRateGT(v float64) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGT(FieldAccuracyRate, v))
}

// AccuracyRateGTE applies the GTE predicate on the "accuracy_rate" field.
func AccuracyRateGTE(v float64) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGTE(FieldAccuracyRate, v))
}

// AccuracyRateLT applies the LT predicate on the "accuracy_rate" field.
func AccuracyRateLT(v float64) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLT(FieldAccuracyRate, v))
}

// AccuracyRateLTE applies the LTE predicate on the "accuracy_rate" field.
func AccuracyRateLTE(v float64) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLTE(FieldAccuracyRate, v))
}

// ReviewNotesEQ applies the EQ predicate on the "review_notes" field.
func ReviewNotesEQ(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldReviewNotes, v))
}

// ReviewNotesNEQ applies the NEQ predicate on the "review_notes" field.
func ReviewNotesNEQ(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNEQ(FieldReviewNotes, v))
}

// ReviewNotesIn applies the In predicate on the "review_notes" field.
func ReviewNotesIn(vs ...string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIn(FieldReviewNotes, vs...))
}

// ReviewNotesNotIn applies the NotIn predicate on the "review_notes" field.
func ReviewNotesNotIn(vs ...string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotIn(FieldReviewNotes, vs...))
}

// ReviewNotesGT applies the GT predicate on the "review_notes" field.
func ReviewNotesGT(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGT(FieldReviewNotes, v))
}

// ReviewNotesGTE applies the GTE predicate on the "review_notes" field.
func ReviewNotesGTE(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGTE(FieldReviewNotes, v))
}

// ReviewNotesLT applies the LT predicate on the "review_notes" field.
func ReviewNotesLT(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLT(FieldReviewNotes, v))
}

// ReviewNotesLTE applies the LTE predicate on the "review_notes" field.
func ReviewNotesLTE(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLTE(FieldReviewNotes, v))
}

// ReviewNotesContains applies the Contains predicate on the "review_notes" field.
func ReviewNotesContains(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldContains(FieldReviewNotes, v))
}

// ReviewNotesHasPrefix applies the HasPrefix predicate on the "review_notes" field.
func ReviewNotesHasPrefix(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldHasPrefix(FieldReviewNotes, v))
}

// ReviewNotesHasSuffix applies the HasSuffix predicate on the "review_notes" field.
func ReviewNotesHasSuffix(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldHasSuffix(FieldReviewNotes, v))
}

// ReviewNotesIsNil applies the IsNil predicate on the "review_notes" field.
func ReviewNotesIsNil() predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIsNull(FieldReviewNotes))
}

// ReviewNotesNotNil applies the NotNil predicate on the "review_notes" field.
func ReviewNotesNotNil() predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotNull(FieldReviewNotes))
}

// ReviewNotesEqualFold applies the EqualFold predicate on the "review_notes" field.
func ReviewNotesEqualFold(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEqualFold(FieldReviewNotes, v))
}

// ReviewNotesContainsFold applies the ContainsFold predicate on the "review_notes" field.
func ReviewNotesContainsFold(v string) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldContainsFold(FieldReviewNotes, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotNull(FieldReviewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.ExpertApplication {
	return predicate.ExpertApplication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.ExpertApplication {
	return predicate.ExpertApplication(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExpertApplication) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExpertApplication) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExpertApplication) predicate.ExpertApplication {
	return predicate.ExpertApplication(sql.NotPredicates(p))
}
