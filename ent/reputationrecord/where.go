// Code generated by ent, DO NOT EDIT.

package reputationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chainadvisory/chainadvisory-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldUserID, v))
}

// TotalPoints applies equality check predicate on the "total_points" field. It's identical to TotalPointsEQ.
func TotalPoints(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldTotalPoints, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldLevel, v))
}

// ProjectsSubmitted applies equality check predicate on the "projects_submitted" field. It's identical to ProjectsSubmittedEQ.
func ProjectsSubmitted(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldProjectsSubmitted, v))
}

// AverageRating applies equality check predicate on the "average_rating" field. It's identical to AverageRatingEQ.
func AverageRating(v float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldAverageRating, v))
}

// CompletionRate applies equality check predicate on the "completion_rate" field. It's identical to CompletionRateEQ.
func CompletionRate(v float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldCompletionRate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNotIn(FieldUserID, vs...))
}

// TotalPointsEQ applies the EQ predicate on the "total_points" field.
func TotalPointsEQ(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldTotalPoints, v))
}

// TotalPointsNEQ applies the NEQ predicate on the "total_points" field.
func TotalPointsNEQ(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNEQ(FieldTotalPoints, v))
}

// TotalPointsIn applies the In predicate on the "total_points" field.
func TotalPointsIn(vs ...int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldIn(FieldTotalPoints, vs...))
}

// TotalPointsNotIn applies the NotIn predicate on the "total_points" field.
func TotalPointsNotIn(vs ...int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNotIn(FieldTotalPoints, vs...))
}

// TotalPointsGT applies the GT predicate on the "total_points" field.
func TotalPointsGT(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGT(FieldTotalPoints, v))
}

// TotalPointsGTE applies the GTE predicate on the "total_points" field.
func TotalPointsGTE(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGTE(FieldTotalPoints, v))
}

// TotalPointsLT applies the LT predicate on the "total_points" field.
func TotalPointsLT(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLT(FieldTotalPoints, v))
}

// TotalPointsLTE applies the LTE predicate on the "total_points" field.
func TotalPointsLTE(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLTE(FieldTotalPoints, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLTE(FieldLevel, v))
}

// ProjectsSubmittedEQ applies the EQ predicate on the "projects_submitted" field.
func ProjectsSubmittedEQ(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldProjectsSubmitted, v))
}

// ProjectsSubmittedNEQ applies the NEQ predicate on the "projects_submitted" field.
func ProjectsSubmittedNEQ(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNEQ(FieldProjectsSubmitted, v))
}

// ProjectsSubmittedIn applies the In predicate on the "projects_submitted" field.
func ProjectsSubmittedIn(vs ...int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldIn(FieldProjectsSubmitted, vs...))
}

// ProjectsSubmittedNotIn applies the NotIn predicate on the "projects_submitted" field.
func ProjectsSubmittedNotIn(vs ...int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNotIn(FieldProjectsSubmitted, vs...))
}

// ProjectsSubmittedGT applies the GT predicate on the "projects_submitted" field.
func ProjectsSubmittedGT(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGT(FieldProjectsSubmitted, v))
}

// ProjectsSubmittedGTE applies the GTE predicate on the "projects_submitted" field.
func ProjectsSubmittedGTE(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGTE(FieldProjectsSubmitted, v))
}

// ProjectsSubmittedLT applies the LT predicate on the "projects_submitted" field.
func ProjectsSubmittedLT(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLT(FieldProjectsSubmitted, v))
}

// ProjectsSubmittedLTE applies the LTE predicate on the "projects_submitted" field.
func ProjectsSubmittedLTE(v int) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLTE(FieldProjectsSubmitted, v))
}

// AverageRatingEQ applies the EQ predicate on the "average_rating" field.
func AverageRatingEQ(v float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldAverageRating, v))
}

// AverageRatingNEQ applies the NEQ predicate on the "average_rating" field.
func AverageRatingNEQ(v float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNEQ(FieldAverageRating, v))
}

// AverageRatingIn applies the In predicate on the "average_rating" field.
func AverageRatingIn(vs ...float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldIn(FieldAverageRating, vs...))
}

// AverageRatingNotIn applies the NotIn predicate on the "average_rating" field.
func AverageRatingNotIn(vs ...float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNotIn(FieldAverageRating, vs...))
}

// AverageRatingGT applies the GT predicate on the "average_rating" field.
func AverageRatingGT(v float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGT(FieldAverageRating, v))
}

// AverageRatingGTE applies the GTE predicate on the "average_rating" field.
func AverageRatingGTE(v float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGTE(FieldAverageRating, v))
}

// AverageRatingLT applies the LT predicate on the "average_rating" field.
func AverageRatingLT(v float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLT(FieldAverageRating, v))
}

// AverageRatingLTE applies the LTE predicate on the "average_rating" field.
func AverageRatingLTE(v float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLTE(FieldAverageRating, v))
}

// CompletionRateEQ applies the EQ predicate on the "completion_rate" field.
func CompletionRateEQ(v float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldCompletionRate, v))
}

// CompletionRateNEQ applies the NEQ predicate on the "completion_rate" field.
func CompletionRateNEQ(v float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNEQ(FieldCompletionRate, v))
}

// CompletionRateIn applies the In predicate on the "completion_rate" field.
func CompletionRateIn(vs ...float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldIn(FieldCompletionRate, vs...))
}

// CompletionRateNotIn applies the NotIn predicate on the "completion_rate" field.
func CompletionRateNotIn(vs ...float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNotIn(FieldCompletionRate, vs...))
}

// CompletionRateGT applies the GT predicate on the "completion_rate" field.
func CompletionRateGT(v float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGT(FieldCompletionRate, v))
}

// CompletionRateGTE applies the GTE predicate on the "completion_rate" field.
func CompletionRateGTE(v float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGTE(FieldCompletionRate, v))
}

// CompletionRateLT applies the LT predicate on the "completion_rate" field.
func CompletionRateLT(v float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLT(FieldCompletionRate, v))
}

// CompletionRateLTE applies the LTE predicate on the "completion_rate" field.
func CompletionRateLTE(v float64) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLTE(FieldCompletionRate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.ReputationRecord {
	return predicate.ReputationRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.ReputationRecord {
	return predicate.ReputationRecord(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAchievements applies the HasEdge predicate on the "achievements" edge.
func HasAchievements() predicate.ReputationRecord {
	return predicate.ReputationRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AchievementsTable, AchievementsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAchievementsWith applies the HasEdge predicate on the "achievements" edge with a given conditions (other predicates).
func HasAchievementsWith(preds ...predicate.Achievement) predicate.ReputationRecord {
	return predicate.ReputationRecord(func(s *sql.Selector) {
		step := newAchievementsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReputationRecord) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReputationRecord) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReputationRecord) predicate.ReputationRecord {
	return predicate.ReputationRecord(sql.NotPredicates(p))
}
