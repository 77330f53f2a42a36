// Code generated by ent, DO NOT EDIT.

package tierthreshold

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/chainadvisory/chainadvisory-api/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldLTE(FieldID, id))
}

// MinPoints applies equality check predicate on the "min_points" field. It's identical to MinPointsEQ.
func MinPoints(v int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldEQ(FieldMinPoints, v))
}

// MonthlyProjectLimit applies equality check predicate on the "monthly_project_limit" field. It's identical to MonthlyProjectLimitEQ.
func MonthlyProjectLimit(v int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldEQ(FieldMonthlyProjectLimit, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldEQ(FieldUpdatedAt, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldNotIn(FieldTier, vs...))
}

// MinPointsEQ applies the EQ predicate on the "min_points" field.
func MinPointsEQ(v int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldEQ(FieldMinPoints, v))
}

// MinPointsNEQ applies the NEQ predicate on the "min_points" field.
func MinPointsNEQ(v int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldNEQ(FieldMinPoints, v))
}

// MinPointsIn applies the In predicate on the "min_points" field.
func MinPointsIn(vs ...int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldIn(FieldMinPoints, vs...))
}

// MinPointsNotIn applies the NotIn predicate on the "min_points" field.
func MinPointsNotIn(vs ...int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldNotIn(FieldMinPoints, vs...))
}

// MinPointsGT applies the GT predicate on the "min_points" field.
func MinPointsGT(v int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldGT(FieldMinPoints, v))
}

// MinPointsGTE applies the GTE predicate on the "min_points" field.
func MinPointsGTE(v int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldGTE(FieldMinPoints, v))
}

// MinPointsLT applies the LT predicate on the "min_points" field.
func MinPointsLT(v int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldLT(FieldMinPoints, v))
}

// MinPointsLTE applies the LTE predicate on the "min_points" field.
func MinPointsLTE(v int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldLTE(FieldMinPoints, v))
}

// MonthlyProjectLimitEQ applies the EQ predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitEQ(v int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldEQ(FieldMonthlyProjectLimit, v))
}

// MonthlyProjectLimitNEQ applies the NEQ predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitNEQ(v int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldNEQ(FieldMonthlyProjectLimit, v))
}

// MonthlyProjectLimitIn applies the In predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitIn(vs ...int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldIn(FieldMonthlyProjectLimit, vs...))
}

// MonthlyProjectLimitNotIn applies the NotIn predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitNotIn(vs ...int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldNotIn(FieldMonthlyProjectLimit, vs...))
}

// MonthlyProjectLimitGT applies the GT predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitGT(v int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldGT(FieldMonthlyProjectLimit, v))
}

// MonthlyProjectLimitGTE applies the GTE predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitGTE(v int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldGTE(FieldMonthlyProjectLimit, v))
}

// MonthlyProjectLimitLT applies the LT predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitLT(v int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldLT(FieldMonthlyProjectLimit, v))
}

// MonthlyProjectLimitLTE applies the LTE predicate on the "monthly_project_limit" field.
func MonthlyProjectLimitLTE(v int) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldLTE(FieldMonthlyProjectLimit, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TierThreshold {
	return predicate.TierThreshold(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TierThreshold) predicate.TierThreshold {
	return predicate.TierThreshold(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TierThreshold) predicate.TierThreshold {
	return predicate.TierThreshold(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TierThreshold) predicate.TierThreshold {
	return predicate.TierThreshold(sql.NotPredicates(p))
}
