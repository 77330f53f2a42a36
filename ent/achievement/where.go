// Code generated by ent, DO NOT EDIT.

package achievement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chainadvisory/chainadvisory-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldDescription, v))
}

// PointsAwarded applies equality check predicate on the "points_awarded" field. It's identical to PointsAwardedEQ.
func PointsAwarded(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldPointsAwarded, v))
}

// AwardedAt applies equality check predicate on the "awarded_at" field. It's identical to AwardedAtEQ.
func AwardedAt(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldAwardedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Achievement {
	return predicate.Achievement(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Achievement {
	return predicate.Achievement(sql.FieldContainsFold(FieldDescription, v))
}

// PointsAwardedEQ applies the EQ predicate on the "points_awarded" field.
func PointsAwardedEQ(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldPointsAwarded, v))
}

// PointsAwardedNEQ applies the NEQ predicate on the "points_awarded" field.
func PointsAwardedNEQ(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldPointsAwarded, v))
}

// PointsAwardedIn applies the In predicate on the "points_awarded" field.
func PointsAwardedIn(vs ...int) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldPointsAwarded, vs...))
}

// PointsAwardedNotIn applies the NotIn predicate on the "points_awarded" field.
func PointsAwardedNotIn(vs ...int) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldPointsAwarded, vs...))
}

// PointsAwardedGT applies the GT predicate on the "points_awarded" field.
func PointsAwardedGT(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldPointsAwarded, v))
}

// PointsAwardedGTE applies the GTE predicate on the "points_awarded" field.
func PointsAwardedGTE(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldPointsAwarded, v))
}

// PointsAwardedLT applies the LT predicate on the "points_awarded" field.
func PointsAwardedLT(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldPointsAwarded, v))
}

// PointsAwardedLTE applies the LTE predicate on the "points_awarded" field.
func PointsAwardedLTE(v int) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldPointsAwarded, v))
}

// AwardedAtEQ applies the EQ predicate on the "awarded_at" field.
func AwardedAtEQ(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldEQ(FieldAwardedAt, v))
}

// AwardedAtNEQ applies the NEQ predicate on the "awarded_at" field.
func AwardedAtNEQ(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldNEQ(FieldAwardedAt, v))
}

// AwardedAtIn applies the In predicate on the "awarded_at" field.
func AwardedAtIn(vs ...time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldIn(FieldAwardedAt, vs...))
}

// AwardedAtNotIn applies the NotIn predicate on the "awarded_at" field.
func AwardedAtNotIn(vs ...time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldNotIn(FieldAwardedAt, vs...))
}

// AwardedAtGT applies the GT predicate on the "awarded_at" field.
func AwardedAtGT(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldGT(FieldAwardedAt, v))
}

// AwardedAtGTE applies the GTE predicate on the "awarded_at" field.
func AwardedAtGTE(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldGTE(FieldAwardedAt, v))
}

// AwardedAtLT applies the LT predicate on the "awarded_at" field.
func AwardedAtLT(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldLT(FieldAwardedAt, v))
}

// AwardedAtLTE applies the LTE predicate on the "awarded_at" field.
func AwardedAtLTE(v time.Time) predicate.Achievement {
	return predicate.Achievement(sql.FieldLTE(FieldAwardedAt, v))
}

// HasRecord applies the HasEdge predicate on the "record" edge.
func HasRecord() predicate.Achievement {
	return predicate.Achievement(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RecordTable, RecordColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecordWith applies the HasEdge predicate on the "record" edge with a given conditions (other predicates).
func HasRecordWith(preds ...predicate.ReputationRecord) predicate.Achievement {
	return predicate.Achievement(func(s *sql.Selector) {
		step := newRecordStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Achievement) predicate.Achievement {
	return predicate.Achievement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Achievement) predicate.Achievement {
	return predicate.Achievement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Achievement) predicate.Achievement {
	return predicate.Achievement(sql.NotPredicates(p))
}
