package consultations

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/consultation"
	"github.com/chainadvisory/chainadvisory-api/ent/enttest"
	"github.com/chainadvisory/chainadvisory-api/ent/subscription"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/chainadvisory/chainadvisory-api/pkg/entitlement"
	"github.com/chainadvisory/chainadvisory-api/pkg/metrics"

	_ "github.com/mattn/go-sqlite3"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name        string
		serviceType string
		minutes     int
		expected    int
	}{
		{"due diligence 45 minutes", "due_diligence", 45, 30000},
		{"due diligence full hour", "due_diligence", 60, 40000},
		{"advisory half hour", "advisory", 30, 15000},
		{"tokenomics 45 minutes", "tokenomics", 45, 26300},
		{"security review full hour", "security_review", 60, 45000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, err := Quote(tt.serviceType, tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cents)
		})
	}
}

func TestQuoteRejectsUnknownInput(t *testing.T) {
	_, err := Quote("astro_forecast", 60)
	assert.True(t, domain.IsInvalidPricingInput(err), "unknown service type has no base rate")

	_, err = Quote("advisory", 90)
	assert.True(t, domain.IsInvalidPricingInput(err), "unsupported duration has no multiplier")
}

func setupBookingService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	return NewService(client, entitlement.NewService(client)), client
}

func createSubscribedUser(t *testing.T, client *ent.Client, allotment int) *ent.User {
	ctx := context.Background()
	u, err := client.User.Create().
		SetEmail("client@example.com").
		SetPasswordHash("x").
		SetName("Test Client").
		Save(ctx)
	require.NoError(t, err)

	now := time.Now()
	_, err = client.Subscription.Create().
		SetUserID(u.ID).
		SetPlan(subscription.PlanStarter).
		SetBillingCycle(subscription.BillingCycleMonthly).
		SetPriceCents(9900).
		SetStatus(subscription.StatusActive).
		SetCreditAllotment(allotment).
		SetStripeSubscriptionID(fmt.Sprintf("sub_test_%d", u.ID)).
		SetCurrentPeriodStart(now).
		SetCurrentPeriodEnd(now.AddDate(0, 1, 0)).
		Save(ctx)
	require.NoError(t, err)
	return u
}

func TestBookConsumesCredit(t *testing.T) {
	service, client := setupBookingService(t)
	defer client.Close()
	ctx := context.Background()

	u := createSubscribedUser(t, client, 2)
	now := time.Now()

	bookedBefore := testutil.ToFloat64(metrics.ConsultationsBooked)
	creditsBefore := testutil.ToFloat64(metrics.CreditsConsumed)

	c, err := service.Book(ctx, u.ID, BookingInput{
		ServiceType:     "advisory",
		DurationMinutes: 30,
		ScheduledAt:     now.Add(48 * time.Hour),
	}, now)
	require.NoError(t, err)
	assert.Equal(t, consultation.StatusPending, c.Status)
	assert.Equal(t, 15000, c.PriceCents)

	sub := client.Subscription.Query().Where(subscription.UserIDEQ(u.ID)).OnlyX(ctx)
	assert.Equal(t, 1, sub.UsedCredits)

	assert.Equal(t, bookedBefore+1, testutil.ToFloat64(metrics.ConsultationsBooked))
	assert.Equal(t, creditsBefore+1, testutil.ToFloat64(metrics.CreditsConsumed))
}

func TestBookWithoutSubscription(t *testing.T) {
	service, client := setupBookingService(t)
	defer client.Close()
	ctx := context.Background()

	u, err := client.User.Create().
		SetEmail("free@example.com").
		SetPasswordHash("x").
		SetName("Free User").
		Save(ctx)
	require.NoError(t, err)

	now := time.Now()
	bookedBefore := testutil.ToFloat64(metrics.ConsultationsBooked)

	_, err = service.Book(ctx, u.ID, BookingInput{
		ServiceType:     "advisory",
		DurationMinutes: 30,
		ScheduledAt:     now.Add(48 * time.Hour),
	}, now)
	assert.True(t, domain.IsNotFound(err))

	// a failed booking records nothing
	assert.Equal(t, bookedBefore, testutil.ToFloat64(metrics.ConsultationsBooked))
}

func TestBookRejectsPastSchedule(t *testing.T) {
	service, client := setupBookingService(t)
	defer client.Close()

	u := createSubscribedUser(t, client, 2)
	now := time.Now()

	_, err := service.Book(context.Background(), u.ID, BookingInput{
		ServiceType:     "advisory",
		DurationMinutes: 30,
		ScheduledAt:     now.Add(-time.Hour),
	}, now)
	assert.True(t, domain.IsValidation(err))
}
