// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Achievement is the predicate function for achievement builders.
type Achievement func(*sql.Selector)

// Assignment is the predicate function for assignment builders.
type Assignment func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Consultation is the predicate function for consultation builders.
type Consultation func(*sql.Selector)

// Evaluation is the predicate function for evaluation builders.
type Evaluation func(*sql.Selector)

// ExpertApplication is the predicate function for expertapplication builders.
type ExpertApplication func(*sql.Selector)

// NotificationLog is the predicate function for notificationlog builders.
type NotificationLog func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// ReputationRecord is the predicate function for reputationrecord builders.
type ReputationRecord func(*sql.Selector)

// Subscription is the predicate function for subscription builders.
type Subscription func(*sql.Selector)

// TierThreshold is the predicate function for tierthreshold builders.
type TierThreshold func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
