// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/chainadvisory/chainadvisory-api/ent/achievement"
	"github.com/chainadvisory/chainadvisory-api/ent/assignment"
	"github.com/chainadvisory/chainadvisory-api/ent/auditlog"
	"github.com/chainadvisory/chainadvisory-api/ent/consultation"
	"github.com/chainadvisory/chainadvisory-api/ent/evaluation"
	"github.com/chainadvisory/chainadvisory-api/ent/expertapplication"
	"github.com/chainadvisory/chainadvisory-api/ent/notificationlog"
	"github.com/chainadvisory/chainadvisory-api/ent/project"
	"github.com/chainadvisory/chainadvisory-api/ent/report"
	"github.com/chainadvisory/chainadvisory-api/ent/reputationrecord"
	"github.com/chainadvisory/chainadvisory-api/ent/schema"
	"github.com/chainadvisory/chainadvisory-api/ent/subscription"
	"github.com/chainadvisory/chainadvisory-api/ent/tierthreshold"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescTitle is the schema descriptor for title field.
	achievementDescTitle := achievementFields[0].Descriptor()
	// achievement.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	achievement.TitleValidator = achievementDescTitle.Validators[0].(func(string) error)
	// achievementDescPointsAwarded is the schema descriptor for points_awarded field.
	achievementDescPointsAwarded := achievementFields[2].Descriptor()
	// achievement.PointsAwardedValidator is a validator for the "points_awarded" field. It is called by the builders before save.
	achievement.PointsAwardedValidator = achievementDescPointsAwarded.Validators[0].(func(int) error)
	// achievementDescAwardedAt is the schema descriptor for awarded_at field.
	achievementDescAwardedAt := achievementFields[3].Descriptor()
	// achievement.DefaultAwardedAt holds the default value on creation for the awarded_at field.
	achievement.DefaultAwardedAt = achievementDescAwardedAt.Default.(func() time.Time)
	assignmentFields := schema.Assignment{}.Fields()
	_ = assignmentFields
	// assignmentDescProjectID is the schema descriptor for project_id field.
	assignmentDescProjectID := assignmentFields[0].Descriptor()
	// assignment.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	assignment.ProjectIDValidator = assignmentDescProjectID.Validators[0].(func(int) error)
	// assignmentDescExpertID is the schema descriptor for expert_id field.
	assignmentDescExpertID := assignmentFields[1].Descriptor()
	// assignment.ExpertIDValidator is a validator for the "expert_id" field. It is called by the builders before save.
	assignment.ExpertIDValidator = assignmentDescExpertID.Validators[0].(func(int) error)
	// assignmentDescCreatedAt is the schema descriptor for created_at field.
	assignmentDescCreatedAt := assignmentFields[5].Descriptor()
	// assignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	assignment.DefaultCreatedAt = assignmentDescCreatedAt.Default.(func() time.Time)
	// assignmentDescUpdatedAt is the schema descriptor for updated_at field.
	assignmentDescUpdatedAt := assignmentFields[6].Descriptor()
	// assignment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assignment.DefaultUpdatedAt = assignmentDescUpdatedAt.Default.(func() time.Time)
	// assignment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assignment.UpdateDefaultUpdatedAt = assignmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[9].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	consultationFields := schema.Consultation{}.Fields()
	_ = consultationFields
	// consultationDescUserID is the schema descriptor for user_id field.
	consultationDescUserID := consultationFields[0].Descriptor()
	// consultation.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	consultation.UserIDValidator = consultationDescUserID.Validators[0].(func(int) error)
	// consultationDescPriceCents is the schema descriptor for price_cents field.
	consultationDescPriceCents := consultationFields[4].Descriptor()
	// consultation.PriceCentsValidator is a validator for the "price_cents" field. It is called by the builders before save.
	consultation.PriceCentsValidator = consultationDescPriceCents.Validators[0].(func(int) error)
	// consultationDescPaid is the schema descriptor for paid field.
	consultationDescPaid := consultationFields[8].Descriptor()
	// consultation.DefaultPaid holds the default value on creation for the paid field.
	consultation.DefaultPaid = consultationDescPaid.Default.(bool)
	// consultationDescCreatedAt is the schema descriptor for created_at field.
	consultationDescCreatedAt := consultationFields[9].Descriptor()
	// consultation.DefaultCreatedAt holds the default value on creation for the created_at field.
	consultation.DefaultCreatedAt = consultationDescCreatedAt.Default.(func() time.Time)
	// consultationDescUpdatedAt is the schema descriptor for updated_at field.
	consultationDescUpdatedAt := consultationFields[10].Descriptor()
	// consultation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	consultation.DefaultUpdatedAt = consultationDescUpdatedAt.Default.(func() time.Time)
	// consultation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	consultation.UpdateDefaultUpdatedAt = consultationDescUpdatedAt.UpdateDefault.(func() time.Time)
	evaluationFields := schema.Evaluation{}.Fields()
	_ = evaluationFields
	// evaluationDescCreatedAt is the schema descriptor for created_at field.
	evaluationDescCreatedAt := evaluationFields[3].Descriptor()
	// evaluation.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluation.DefaultCreatedAt = evaluationDescCreatedAt.Default.(func() time.Time)
	expertapplicationFields := schema.ExpertApplication{}.Fields()
	_ = expertapplicationFields
	// expertapplicationDescUserID is the schema descriptor for user_id field.
	expertapplicationDescUserID := expertapplicationFields[0].Descriptor()
	// expertapplication.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	expertapplication.UserIDValidator = expertapplicationDescUserID.Validators[0].(func(int) error)
	// expertapplicationDescSpecialization is the schema descriptor for specialization field.
	expertapplicationDescSpecialization := expertapplicationFields[2].Descriptor()
	// expertapplication.SpecializationValidator is a validator for the "specialization" field. It is called by the builders before save.
	expertapplication.SpecializationValidator = expertapplicationDescSpecialization.Validators[0].(func(string) error)
	// expertapplicationDescReputationPoints is the schema descriptor for reputation_points field.
	expertapplicationDescReputationPoints := expertapplicationFields[4].Descriptor()
	// expertapplication.DefaultReputationPoints holds the default value on creation for the reputation_points field.
	expertapplication.DefaultReputationPoints = expertapplicationDescReputationPoints.Default.(int)
	// expertapplication.ReputationPointsValidator is a validator for the "reputation_points" field. It is called by the builders before save.
	expertapplication.ReputationPointsValidator = expertapplicationDescReputationPoints.Validators[0].(func(int) error)
	// expertapplicationDescAccuracyRate is the schema descriptor for accuracy_rate field.
	expertapplicationDescAccuracyRate := expertapplicationFields[6].Descriptor()
	// expertapplication.DefaultAccuracyRate holds the default value on creation for the accuracy_rate field.
	expertapplication.DefaultAccuracyRate = expertapplicationDescAccuracyRate.Default.(float64)
	// expertapplicationDescCreatedAt is the schema descriptor for created_at field.
	expertapplicationDescCreatedAt := expertapplicationFields[9].Descriptor()
	// expertapplication.DefaultCreatedAt holds the default value on creation for the created_at field.
	expertapplication.DefaultCreatedAt = expertapplicationDescCreatedAt.Default.(func() time.Time)
	// expertapplicationDescUpdatedAt is the schema descriptor for updated_at field.
	expertapplicationDescUpdatedAt := expertapplicationFields[10].Descriptor()
	// expertapplication.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	expertapplication.DefaultUpdatedAt = expertapplicationDescUpdatedAt.Default.(func() time.Time)
	// expertapplication.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	expertapplication.UpdateDefaultUpdatedAt = expertapplicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	notificationlogFields := schema.NotificationLog{}.Fields()
	_ = notificationlogFields
	// notificationlogDescRecipient is the schema descriptor for recipient field.
	notificationlogDescRecipient := notificationlogFields[2].Descriptor()
	// notificationlog.RecipientValidator is a validator for the "recipient" field. It is called by the builders before save.
	notificationlog.RecipientValidator = notificationlogDescRecipient.Validators[0].(func(string) error)
	// notificationlogDescCreatedAt is the schema descriptor for created_at field.
	notificationlogDescCreatedAt := notificationlogFields[5].Descriptor()
	// notificationlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	notificationlog.DefaultCreatedAt = notificationlogDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescUserID is the schema descriptor for user_id field.
	projectDescUserID := projectFields[0].Descriptor()
	// project.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	project.UserIDValidator = projectDescUserID.Validators[0].(func(int) error)
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[6].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[7].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescUserID is the schema descriptor for user_id field.
	reportDescUserID := reportFields[0].Descriptor()
	// report.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	report.UserIDValidator = reportDescUserID.Validators[0].(func(int) error)
	// reportDescPriceCents is the schema descriptor for price_cents field.
	reportDescPriceCents := reportFields[3].Descriptor()
	// report.PriceCentsValidator is a validator for the "price_cents" field. It is called by the builders before save.
	report.PriceCentsValidator = reportDescPriceCents.Validators[0].(func(int) error)
	// reportDescPaid is the schema descriptor for paid field.
	reportDescPaid := reportFields[6].Descriptor()
	// report.DefaultPaid holds the default value on creation for the paid field.
	report.DefaultPaid = reportDescPaid.Default.(bool)
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[8].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
	// reportDescUpdatedAt is the schema descriptor for updated_at field.
	reportDescUpdatedAt := reportFields[9].Descriptor()
	// report.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	report.DefaultUpdatedAt = reportDescUpdatedAt.Default.(func() time.Time)
	// report.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	report.UpdateDefaultUpdatedAt = reportDescUpdatedAt.UpdateDefault.(func() time.Time)
	reputationrecordFields := schema.ReputationRecord{}.Fields()
	_ = reputationrecordFields
	// reputationrecordDescUserID is the schema descriptor for user_id field.
	reputationrecordDescUserID := reputationrecordFields[0].Descriptor()
	// reputationrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reputationrecord.UserIDValidator = reputationrecordDescUserID.Validators[0].(func(int) error)
	// reputationrecordDescTotalPoints is the schema descriptor for total_points field.
	reputationrecordDescTotalPoints := reputationrecordFields[1].Descriptor()
	// reputationrecord.DefaultTotalPoints holds the default value on creation for the total_points field.
	reputationrecord.DefaultTotalPoints = reputationrecordDescTotalPoints.Default.(int)
	// reputationrecord.TotalPointsValidator is a validator for the "total_points" field. It is called by the builders before save.
	reputationrecord.TotalPointsValidator = reputationrecordDescTotalPoints.Validators[0].(func(int) error)
	// reputationrecordDescLevel is the schema descriptor for level field.
	reputationrecordDescLevel := reputationrecordFields[2].Descriptor()
	// reputationrecord.DefaultLevel holds the default value on creation for the level field.
	reputationrecord.DefaultLevel = reputationrecordDescLevel.Default.(int)
	// reputationrecord.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	reputationrecord.LevelValidator = reputationrecordDescLevel.Validators[0].(func(int) error)
	// reputationrecordDescProjectsSubmitted is the schema descriptor for projects_submitted field.
	reputationrecordDescProjectsSubmitted := reputationrecordFields[3].Descriptor()
	// reputationrecord.DefaultProjectsSubmitted holds the default value on creation for the projects_submitted field.
	reputationrecord.DefaultProjectsSubmitted = reputationrecordDescProjectsSubmitted.Default.(int)
	// reputationrecord.ProjectsSubmittedValidator is a validator for the "projects_submitted" field. It is called by the builders before save.
	reputationrecord.ProjectsSubmittedValidator = reputationrecordDescProjectsSubmitted.Validators[0].(func(int) error)
	// reputationrecordDescAverageRating is the schema descriptor for average_rating field.
	reputationrecordDescAverageRating := reputationrecordFields[4].Descriptor()
	// reputationrecord.DefaultAverageRating holds the default value on creation for the average_rating field.
	reputationrecord.DefaultAverageRating = reputationrecordDescAverageRating.Default.(float64)
	// reputationrecordDescCompletionRate is the schema descriptor for completion_rate field.
	reputationrecordDescCompletionRate := reputationrecordFields[5].Descriptor()
	// reputationrecord.DefaultCompletionRate holds the default value on creation for the completion_rate field.
	reputationrecord.DefaultCompletionRate = reputationrecordDescCompletionRate.Default.(float64)
	// reputationrecordDescCreatedAt is the schema descriptor for created_at field.
	reputationrecordDescCreatedAt := reputationrecordFields[6].Descriptor()
	// reputationrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	reputationrecord.DefaultCreatedAt = reputationrecordDescCreatedAt.Default.(func() time.Time)
	// reputationrecordDescUpdatedAt is the schema descriptor for updated_at field.
	reputationrecordDescUpdatedAt := reputationrecordFields[7].Descriptor()
	// reputationrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reputationrecord.DefaultUpdatedAt = reputationrecordDescUpdatedAt.Default.(func() time.Time)
	// reputationrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reputationrecord.UpdateDefaultUpdatedAt = reputationrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescUserID is the schema descriptor for user_id field.
	subscriptionDescUserID := subscriptionFields[0].Descriptor()
	// subscription.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	subscription.UserIDValidator = subscriptionDescUserID.Validators[0].(func(int) error)
	// subscriptionDescPriceCents is the schema descriptor for price_cents field.
	subscriptionDescPriceCents := subscriptionFields[3].Descriptor()
	// subscription.PriceCentsValidator is a validator for the "price_cents" field. It is called by the builders before save.
	subscription.PriceCentsValidator = subscriptionDescPriceCents.Validators[0].(func(int) error)
	// subscriptionDescCreditAllotment is the schema descriptor for credit_allotment field.
	subscriptionDescCreditAllotment := subscriptionFields[5].Descriptor()
	// subscription.DefaultCreditAllotment holds the default value on creation for the credit_allotment field.
	subscription.DefaultCreditAllotment = subscriptionDescCreditAllotment.Default.(int)
	// subscription.CreditAllotmentValidator is a validator for the "credit_allotment" field. It is called by the builders before save.
	subscription.CreditAllotmentValidator = subscriptionDescCreditAllotment.Validators[0].(func(int) error)
	// subscriptionDescUsedCredits is the schema descriptor for used_credits field.
	subscriptionDescUsedCredits := subscriptionFields[6].Descriptor()
	// subscription.DefaultUsedCredits holds the default value on creation for the used_credits field.
	subscription.DefaultUsedCredits = subscriptionDescUsedCredits.Default.(int)
	// subscription.UsedCreditsValidator is a validator for the "used_credits" field. It is called by the builders before save.
	subscription.UsedCreditsValidator = subscriptionDescUsedCredits.Validators[0].(func(int) error)
	// subscriptionDescIsUnlimited is the schema descriptor for is_unlimited field.
	subscriptionDescIsUnlimited := subscriptionFields[7].Descriptor()
	// subscription.DefaultIsUnlimited holds the default value on creation for the is_unlimited field.
	subscription.DefaultIsUnlimited = subscriptionDescIsUnlimited.Default.(bool)
	// subscriptionDescCancelAtPeriodEnd is the schema descriptor for cancel_at_period_end field.
	subscriptionDescCancelAtPeriodEnd := subscriptionFields[12].Descriptor()
	// subscription.DefaultCancelAtPeriodEnd holds the default value on creation for the cancel_at_period_end field.
	subscription.DefaultCancelAtPeriodEnd = subscriptionDescCancelAtPeriodEnd.Default.(bool)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[14].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionFields[15].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	tierthresholdFields := schema.TierThreshold{}.Fields()
	_ = tierthresholdFields
	// tierthresholdDescMinPoints is the schema descriptor for min_points field.
	tierthresholdDescMinPoints := tierthresholdFields[1].Descriptor()
	// tierthreshold.MinPointsValidator is a validator for the "min_points" field. It is called by the builders before save.
	tierthreshold.MinPointsValidator = tierthresholdDescMinPoints.Validators[0].(func(int) error)
	// tierthresholdDescMonthlyProjectLimit is the schema descriptor for monthly_project_limit field.
	tierthresholdDescMonthlyProjectLimit := tierthresholdFields[2].Descriptor()
	// tierthreshold.MonthlyProjectLimitValidator is a validator for the "monthly_project_limit" field. It is called by the builders before save.
	tierthreshold.MonthlyProjectLimitValidator = tierthresholdDescMonthlyProjectLimit.Validators[0].(func(int) error)
	// tierthresholdDescUpdatedAt is the schema descriptor for updated_at field.
	tierthresholdDescUpdatedAt := tierthresholdFields[3].Descriptor()
	// tierthreshold.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tierthreshold.DefaultUpdatedAt = tierthresholdDescUpdatedAt.Default.(func() time.Time)
	// tierthreshold.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tierthreshold.UpdateDefaultUpdatedAt = tierthresholdDescUpdatedAt.UpdateDefault.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescProjectsUsed is the schema descriptor for projects_used field.
	userDescProjectsUsed := userFields[7].Descriptor()
	// user.DefaultProjectsUsed holds the default value on creation for the projects_used field.
	user.DefaultProjectsUsed = userDescProjectsUsed.Default.(int)
	// user.ProjectsUsedValidator is a validator for the "projects_used" field. It is called by the builders before save.
	user.ProjectsUsedValidator = userDescProjectsUsed.Validators[0].(func(int) error)
	// userDescMonthlyProjectLimit is the schema descriptor for monthly_project_limit field.
	userDescMonthlyProjectLimit := userFields[8].Descriptor()
	// user.DefaultMonthlyProjectLimit holds the default value on creation for the monthly_project_limit field.
	user.DefaultMonthlyProjectLimit = userDescMonthlyProjectLimit.Default.(int)
	// user.MonthlyProjectLimitValidator is a validator for the "monthly_project_limit" field. It is called by the builders before save.
	user.MonthlyProjectLimitValidator = userDescMonthlyProjectLimit.Validators[0].(func(int) error)
	// userDescLastResetAt is the schema descriptor for last_reset_at field.
	userDescLastResetAt := userFields[9].Descriptor()
	// user.DefaultLastResetAt holds the default value on creation for the last_reset_at field.
	user.DefaultLastResetAt = userDescLastResetAt.Default.(func() time.Time)
	// userDescTotalProjects is the schema descriptor for total_projects field.
	userDescTotalProjects := userFields[10].Descriptor()
	// user.DefaultTotalProjects holds the default value on creation for the total_projects field.
	user.DefaultTotalProjects = userDescTotalProjects.Default.(int)
	// user.TotalProjectsValidator is a validator for the "total_projects" field. It is called by the builders before save.
	user.TotalProjectsValidator = userDescTotalProjects.Validators[0].(func(int) error)
	// userDescSuccessfulProjects is the schema descriptor for successful_projects field.
	userDescSuccessfulProjects := userFields[11].Descriptor()
	// user.DefaultSuccessfulProjects holds the default value on creation for the successful_projects field.
	user.DefaultSuccessfulProjects = userDescSuccessfulProjects.Default.(int)
	// user.SuccessfulProjectsValidator is a validator for the "successful_projects" field. It is called by the builders before save.
	user.SuccessfulProjectsValidator = userDescSuccessfulProjects.Validators[0].(func(int) error)
	// userDescAverageProjectScore is the schema descriptor for average_project_score field.
	userDescAverageProjectScore := userFields[12].Descriptor()
	// user.DefaultAverageProjectScore holds the default value on creation for the average_project_score field.
	user.DefaultAverageProjectScore = userDescAverageProjectScore.Default.(float64)
	// userDescEmailVerified is the schema descriptor for email_verified field.
	userDescEmailVerified := userFields[13].Descriptor()
	// user.DefaultEmailVerified holds the default value on creation for the email_verified field.
	user.DefaultEmailVerified = userDescEmailVerified.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[18].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[19].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
