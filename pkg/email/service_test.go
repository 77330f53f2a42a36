package email

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainadvisory/chainadvisory-api/ent/notificationlog"
	"github.com/chainadvisory/chainadvisory-api/pkg/metrics"
)

type recordedDelivery struct {
	typ       notificationlog.Type
	emailSent bool
	recipient string
	details   string
}

type fakeRecorder struct {
	deliveries []recordedDelivery
	err        error
}

func (r *fakeRecorder) Record(ctx context.Context, typ notificationlog.Type, emailSent bool, recipient, sender, details string) error {
	r.deliveries = append(r.deliveries, recordedDelivery{typ: typ, emailSent: emailSent, recipient: recipient, details: details})
	return r.err
}

func TestSendVerificationEmailRecordsDelivery(t *testing.T) {
	recorder := &fakeRecorder{}
	// empty API key keeps the service in console-only mode
	s := NewService("noreply@chainadvisory.io", "ChainAdvisory", "http://localhost:3000", "", recorder)

	before := testutil.ToFloat64(metrics.EmailsSent.WithLabelValues("email_verification", "sent"))

	err := s.SendVerificationEmail(context.Background(), "new@example.com", "New User", "tok123")
	require.NoError(t, err)

	require.Len(t, recorder.deliveries, 1)
	rec := recorder.deliveries[0]
	assert.Equal(t, notificationlog.TypeEmailVerification, rec.typ)
	assert.True(t, rec.emailSent)
	assert.Equal(t, "new@example.com", rec.recipient)

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.EmailsSent.WithLabelValues("email_verification", "sent")))
}

func TestSendSubscriptionActivatedRecordsDelivery(t *testing.T) {
	recorder := &fakeRecorder{}
	s := NewService("noreply@chainadvisory.io", "ChainAdvisory", "http://localhost:3000", "", recorder)

	before := testutil.ToFloat64(metrics.EmailsSent.WithLabelValues("subscription_activated", "sent"))

	err := s.SendSubscriptionActivated(context.Background(), "client@example.com", "Test Client", "growth")
	require.NoError(t, err)

	require.Len(t, recorder.deliveries, 1)
	assert.Equal(t, notificationlog.TypeSubscriptionActivated, recorder.deliveries[0].typ)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.EmailsSent.WithLabelValues("subscription_activated", "sent")))
}

func TestDeliverSurvivesRecorderFailure(t *testing.T) {
	recorder := &fakeRecorder{err: errors.New("log table unavailable")}
	s := NewService("noreply@chainadvisory.io", "ChainAdvisory", "http://localhost:3000", "", recorder)

	// a broken notification log must not fail the send itself
	err := s.SendPasswordResetEmail(context.Background(), "new@example.com", "New User", "tok123")
	assert.NoError(t, err)
}
