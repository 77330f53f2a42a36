package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/consultation"
	"github.com/chainadvisory/chainadvisory-api/ent/project"
	"github.com/chainadvisory/chainadvisory-api/ent/report"
	"github.com/chainadvisory/chainadvisory-api/ent/subscription"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
	"github.com/chainadvisory/chainadvisory-api/pkg/pricing"
	"github.com/chainadvisory/chainadvisory-api/pkg/reputation"
)

// SeedConfig configures demo data generation parameters
type SeedConfig struct {
	UserCount          int
	ProjectsPerUser    int     // upper bound, uniform per user
	ConsultationChance float64 // 0.0-1.0 (probability of a booked session)
	ReportChance       float64
	SubscriberChance   float64 // probability of an active subscription
}

// DefaultSeedConfig returns sensible defaults for a demo environment
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		UserCount:          50,
		ProjectsPerUser:    4,
		ConsultationChance: 0.5,
		ReportChance:       0.3,
		SubscriberChance:   0.4,
	}
}

// Crypto project name fragments, combined into plausible project names
var projectNameParts = struct {
	Prefixes []string
	Suffixes []string
}{
	Prefixes: []string{"Nova", "Astra", "Zenith", "Orbit", "Flux", "Vertex", "Aurora", "Quantum", "Helix", "Atlas"},
	Suffixes: []string{"Protocol", "Finance", "Swap", "Chain", "Network", "Labs", "DAO", "Vault", "Bridge", "Markets"},
}

var projectCategories = []project.Category{
	project.CategoryDefi,
	project.CategoryInfrastructure,
	project.CategoryNft,
	project.CategoryDao,
	project.CategoryGaming,
	project.CategoryOther,
}

var consultationServiceTypes = []consultation.ServiceType{
	consultation.ServiceTypeDueDiligence,
	consultation.ServiceTypeAdvisory,
	consultation.ServiceTypeTokenomics,
	consultation.ServiceTypeSecurityReview,
}

var reportTypes = []report.ReportType{
	report.ReportTypeAdvisoryNotes,
	report.ReportTypeMarketAnalysis,
	report.ReportTypeAuditSummary,
	report.ReportTypeTokenomicsReview,
}

var consultationDurations = []int{30, 45, 60}

var reportPriorities = []report.Priority{
	report.PriorityLow,
	report.PriorityMedium,
	report.PriorityHigh,
}

// GenerateProjectName creates a plausible crypto project name
func GenerateProjectName() string {
	prefix := projectNameParts.Prefixes[rand.Intn(len(projectNameParts.Prefixes))]
	suffix := projectNameParts.Suffixes[rand.Intn(len(projectNameParts.Suffixes))]
	return fmt.Sprintf("%s %s", prefix, suffix)
}

// RandomPoints draws a reputation point total skewed toward low values,
// with an occasional whale.
func RandomPoints() int {
	if rand.Float64() < 0.15 {
		return 500 + rand.Intn(12000)
	}
	return rand.Intn(300)
}

// GenerateUser creates a single demo user with the tier derived from the
// given point total. All demo accounts share the password "demo1234".
func GenerateUser(client *ent.Client, passwordHash string, points int) *ent.UserCreate {
	name := gofakeit.Name()
	email := fmt.Sprintf("%s.%d@%s",
		strings.ToLower(strings.ReplaceAll(name, " ", ".")),
		rand.Intn(10000),
		gofakeit.DomainName())

	thresholds := reputation.DefaultThresholds()
	progress := reputation.ResolveTier(points, thresholds)
	limit := reputation.LimitForTier(progress.CurrentTier, thresholds)

	return client.User.Create().
		SetEmail(email).
		SetName(name).
		SetCompany(gofakeit.Company()).
		SetPasswordHash(passwordHash).
		SetSubmitterTier(user.SubmitterTier(progress.CurrentTier)).
		SetMonthlyProjectLimit(limit).
		SetEmailVerified(rand.Float64() < 0.8).
		SetCreatedAt(pastTime(365))
}

// GenerateReputationRecord builds the record backing a user's point total
func GenerateReputationRecord(client *ent.Client, userID, points, projectCount int) *ent.ReputationRecordCreate {
	level := points/reputation.PointsPerLevel + 1
	return client.ReputationRecord.Create().
		SetUserID(userID).
		SetTotalPoints(points).
		SetLevel(level).
		SetProjectsSubmitted(projectCount).
		SetAverageRating(3.0 + rand.Float64()*2.0).
		SetCompletionRate(0.5 + rand.Float64()*0.5)
}

// GenerateProject creates a project for the given user
func GenerateProject(client *ent.Client, userID int) *ent.ProjectCreate {
	status := project.StatusSubmitted
	roll := rand.Float64()
	switch {
	case roll < 0.4:
		status = project.StatusCompleted
	case roll < 0.6:
		status = project.StatusInReview
	case roll < 0.7:
		status = project.StatusWithdrawn
	}

	create := client.Project.Create().
		SetUserID(userID).
		SetName(GenerateProjectName()).
		SetDescription(gofakeit.Paragraph(1, 3, 12, " ")).
		SetCategory(projectCategories[rand.Intn(len(projectCategories))]).
		SetStatus(status).
		SetCreatedAt(pastTime(180))

	if status == project.StatusCompleted {
		create.SetFinalScore(40 + rand.Float64()*60)
	}
	return create
}

// GenerateConsultation creates a booked session for the given user
func GenerateConsultation(client *ent.Client, userID int) *ent.ConsultationCreate {
	serviceType := consultationServiceTypes[rand.Intn(len(consultationServiceTypes))]
	minutes := consultationDurations[rand.Intn(len(consultationDurations))]

	dollars, err := pricing.ForConsultation(pricing.ConsultationRate(string(serviceType)), minutes)
	if err != nil {
		dollars = 0
	}

	status := consultation.StatusConfirmed
	scheduled := time.Now().Add(time.Duration(1+rand.Intn(14*24)) * time.Hour)
	if rand.Float64() < 0.5 {
		status = consultation.StatusCompleted
		scheduled = pastTime(90)
	}

	return client.Consultation.Create().
		SetUserID(userID).
		SetServiceType(serviceType).
		SetDurationMinutes(minutes).
		SetScheduledAt(scheduled).
		SetPriceCents(dollars * 100).
		SetStatus(status).
		SetPaid(status == consultation.StatusCompleted).
		SetNotes(gofakeit.Sentence(10))
}

// GenerateReport creates a report request for the given user
func GenerateReport(client *ent.Client, userID int) *ent.ReportCreate {
	reportType := reportTypes[rand.Intn(len(reportTypes))]
	priority := reportPriorities[rand.Intn(len(reportPriorities))]

	dollars, err := pricing.ForReport(pricing.ReportRate(string(reportType)), string(priority))
	if err != nil {
		dollars = 0
	}

	status := report.StatusRequested
	create := client.Report.Create().
		SetUserID(userID).
		SetReportType(reportType).
		SetPriority(priority).
		SetPriceCents(dollars * 100).
		SetBrief(gofakeit.Paragraph(1, 2, 10, " ")).
		SetCreatedAt(pastTime(120))

	if rand.Float64() < 0.4 {
		status = report.StatusDelivered
		create.SetDeliveredAt(pastTime(30)).SetPaid(true)
	}
	return create.SetStatus(status)
}

// GenerateSubscription creates an active subscription on a random plan
func GenerateSubscription(client *ent.Client, userID int) *ent.SubscriptionCreate {
	plans := []subscription.Plan{
		subscription.PlanStarter,
		subscription.PlanGrowth,
		subscription.PlanEnterprise,
	}
	prices := map[subscription.Plan]int{
		subscription.PlanStarter:    19900,
		subscription.PlanGrowth:     49900,
		subscription.PlanEnterprise: 149900,
	}
	allotments := map[subscription.Plan]int{
		subscription.PlanStarter:    2,
		subscription.PlanGrowth:     6,
		subscription.PlanEnterprise: -1,
	}

	plan := plans[rand.Intn(len(plans))]
	allotment := allotments[plan]
	unlimited := allotment < 0

	used := 0
	if !unlimited {
		used = rand.Intn(allotment + 1)
	}

	start := pastTime(28)
	return client.Subscription.Create().
		SetUserID(userID).
		SetPlan(plan).
		SetBillingCycle(subscription.BillingCycleMonthly).
		SetPriceCents(prices[plan]).
		SetStatus(subscription.StatusActive).
		SetCreditAllotment(allotment).
		SetUsedCredits(used).
		SetIsUnlimited(unlimited).
		SetStripeSubscriptionID(fmt.Sprintf("sub_demo_%d", userID)).
		SetCurrentPeriodStart(start).
		SetCurrentPeriodEnd(start.AddDate(0, 1, 0))
}

// Seed populates the database with a full demo dataset
func Seed(ctx context.Context, client *ent.Client, config SeedConfig) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	for i := 0; i < config.UserCount; i++ {
		points := RandomPoints()
		u, err := GenerateUser(client, string(hash), points).Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed user %d: %w", i, err)
		}

		projectCount := rand.Intn(config.ProjectsPerUser + 1)
		for p := 0; p < projectCount; p++ {
			if err := GenerateProject(client, u.ID).Exec(ctx); err != nil {
				return fmt.Errorf("failed to seed project for user %d: %w", u.ID, err)
			}
		}

		if err := GenerateReputationRecord(client, u.ID, points, projectCount).Exec(ctx); err != nil {
			return fmt.Errorf("failed to seed reputation for user %d: %w", u.ID, err)
		}

		if rand.Float64() < config.SubscriberChance {
			if err := GenerateSubscription(client, u.ID).Exec(ctx); err != nil {
				return fmt.Errorf("failed to seed subscription for user %d: %w", u.ID, err)
			}
		}

		if rand.Float64() < config.ConsultationChance {
			if err := GenerateConsultation(client, u.ID).Exec(ctx); err != nil {
				return fmt.Errorf("failed to seed consultation for user %d: %w", u.ID, err)
			}
		}

		if rand.Float64() < config.ReportChance {
			if err := GenerateReport(client, u.ID).Exec(ctx); err != nil {
				return fmt.Errorf("failed to seed report for user %d: %w", u.ID, err)
			}
		}
	}

	return nil
}

func pastTime(maxDays int) time.Time {
	return time.Now().Add(-time.Duration(rand.Intn(maxDays*24)) * time.Hour)
}
