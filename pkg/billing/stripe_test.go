package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"github.com/chainadvisory/chainadvisory-api/ent/enttest"
	"github.com/chainadvisory/chainadvisory-api/ent/subscription"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/chainadvisory/chainadvisory-api/pkg/metrics"

	_ "github.com/mattn/go-sqlite3"
)

func newTestService() *Service {
	return &Service{config: &StripeConfig{
		PriceStarter:    "price_starter_123",
		PriceGrowth:     "price_growth_456",
		PriceEnterprise: "price_enterprise_789",
	}}
}

func TestPriceIDForPlan(t *testing.T) {
	s := newTestService()

	tests := []struct {
		plan     string
		expected string
	}{
		{"starter", "price_starter_123"},
		{"growth", "price_growth_456"},
		{"enterprise", "price_enterprise_789"},
	}

	for _, tt := range tests {
		t.Run(tt.plan, func(t *testing.T) {
			id, err := s.priceIDForPlan(tt.plan)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestPriceIDForPlanRejectsUnknown(t *testing.T) {
	s := newTestService()

	_, err := s.priceIDForPlan("platinum")
	assert.True(t, domain.IsValidation(err))
}

func TestGetPricingCatalog(t *testing.T) {
	s := newTestService()

	pricing := s.GetPricing()
	require.Len(t, pricing.Plans, 3)

	assert.Equal(t, "starter", pricing.Plans[0].Name)
	assert.Equal(t, 2, pricing.Plans[0].Credits)
	assert.Equal(t, "growth", pricing.Plans[1].Name)
	assert.Equal(t, 6, pricing.Plans[1].Credits)
	assert.Equal(t, "enterprise", pricing.Plans[2].Name)
	assert.Equal(t, -1, pricing.Plans[2].Credits, "enterprise credits are unlimited")
}

func TestHandleCheckoutCompletedActivatesPlan(t *testing.T) {
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	defer client.Close()
	s := &Service{db: client, config: &StripeConfig{}}
	ctx := context.Background()

	u, err := client.User.Create().
		SetEmail("client@example.com").
		SetPasswordHash("x").
		SetName("Test Client").
		Save(ctx)
	require.NoError(t, err)

	// an older active subscription must be expired by the new checkout
	now := time.Now()
	_, err = client.Subscription.Create().
		SetUserID(u.ID).
		SetPlan(subscription.PlanStarter).
		SetBillingCycle(subscription.BillingCycleMonthly).
		SetPriceCents(9900).
		SetStatus(subscription.StatusActive).
		SetCreditAllotment(2).
		SetStripeSubscriptionID("sub_old").
		SetCurrentPeriodStart(now.AddDate(0, -1, 0)).
		SetCurrentPeriodEnd(now).
		Save(ctx)
	require.NoError(t, err)

	before := testutil.ToFloat64(metrics.SubscriptionsActivated.WithLabelValues("growth"))

	raw := fmt.Sprintf(`{
		"amount_total": 24900,
		"subscription": "sub_new",
		"metadata": {"user_id": "%d", "plan": "growth"}
	}`, u.ID)
	event := stripe.Event{Data: &stripe.EventData{Raw: json.RawMessage(raw)}}

	require.NoError(t, s.handleCheckoutCompleted(ctx, event))

	active := client.Subscription.Query().
		Where(
			subscription.UserIDEQ(u.ID),
			subscription.StatusEQ(subscription.StatusActive),
		).
		OnlyX(ctx)
	assert.Equal(t, subscription.PlanGrowth, active.Plan)
	assert.Equal(t, 6, active.CreditAllotment)
	assert.False(t, active.IsUnlimited)
	assert.Equal(t, "sub_new", active.StripeSubscriptionID)

	old := client.Subscription.Query().
		Where(subscription.StripeSubscriptionIDEQ("sub_old")).
		OnlyX(ctx)
	assert.Equal(t, subscription.StatusExpired, old.Status)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.SubscriptionsActivated.WithLabelValues("growth")))
}

func TestHandleCheckoutCompletedRequiresUserID(t *testing.T) {
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	defer client.Close()
	s := &Service{db: client, config: &StripeConfig{}}

	event := stripe.Event{Data: &stripe.EventData{Raw: json.RawMessage(`{"metadata": {"plan": "growth"}}`)}}
	assert.Error(t, s.handleCheckoutCompleted(context.Background(), event))
}
