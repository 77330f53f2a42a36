package experts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainadvisory/chainadvisory-api/ent/expertapplication"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
)

func TestNextStatusAllowedTransitions(t *testing.T) {
	tests := []struct {
		name     string
		current  expertapplication.VerificationStatus
		action   ReviewAction
		expected expertapplication.VerificationStatus
	}{
		{"pending to under review", expertapplication.VerificationStatusPending, ActionStartReview, expertapplication.VerificationStatusUnderReview},
		{"under review to verified", expertapplication.VerificationStatusUnderReview, ActionVerify, expertapplication.VerificationStatusVerified},
		{"under review to rejected", expertapplication.VerificationStatusUnderReview, ActionReject, expertapplication.VerificationStatusRejected},
		{"under review to suspended", expertapplication.VerificationStatusUnderReview, ActionSuspend, expertapplication.VerificationStatusSuspended},
		{"request info returns to pending", expertapplication.VerificationStatusUnderReview, ActionRequestInfo, expertapplication.VerificationStatusPending},
		{"verified can be suspended", expertapplication.VerificationStatusVerified, ActionSuspend, expertapplication.VerificationStatusSuspended},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := NextStatus(tt.current, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, next)
		})
	}
}

func TestNextStatusRejectsInvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current expertapplication.VerificationStatus
		action  ReviewAction
	}{
		{"pending cannot be verified directly", expertapplication.VerificationStatusPending, ActionVerify},
		{"pending cannot be rejected directly", expertapplication.VerificationStatusPending, ActionReject},
		{"rejected is terminal", expertapplication.VerificationStatusRejected, ActionStartReview},
		{"suspended is terminal", expertapplication.VerificationStatusSuspended, ActionVerify},
		{"verified cannot return to review", expertapplication.VerificationStatusVerified, ActionRequestInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NextStatus(tt.current, tt.action)
			assert.True(t, domain.IsConflict(err))
		})
	}
}

func TestTierForPoints(t *testing.T) {
	assert.Equal(t, expertapplication.ExpertTierJunior, TierForPoints(0))
	assert.Equal(t, expertapplication.ExpertTierJunior, TierForPoints(499))
	assert.Equal(t, expertapplication.ExpertTierSenior, TierForPoints(500))
	assert.Equal(t, expertapplication.ExpertTierSenior, TierForPoints(1999))
	assert.Equal(t, expertapplication.ExpertTierPrincipal, TierForPoints(2000))
}
