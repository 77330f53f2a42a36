package experts

import (
	"fmt"

	"github.com/chainadvisory/chainadvisory-api/ent/expertapplication"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
)

// ReviewAction is an admin decision on an expert application.
type ReviewAction string

const (
	ActionStartReview ReviewAction = "START_REVIEW"
	ActionVerify      ReviewAction = "VERIFY"
	ActionReject      ReviewAction = "REJECT"
	ActionSuspend     ReviewAction = "SUSPEND"
	ActionRequestInfo ReviewAction = "REQUEST_INFO"
)

// Review transitions are one-directional: pending → under_review →
// {verified, rejected, suspended}. REQUEST_INFO is the only path back to
// pending, and verified experts can still be suspended later.
var transitions = map[expertapplication.VerificationStatus]map[ReviewAction]expertapplication.VerificationStatus{
	expertapplication.VerificationStatusPending: {
		ActionStartReview: expertapplication.VerificationStatusUnderReview,
	},
	expertapplication.VerificationStatusUnderReview: {
		ActionVerify:      expertapplication.VerificationStatusVerified,
		ActionReject:      expertapplication.VerificationStatusRejected,
		ActionSuspend:     expertapplication.VerificationStatusSuspended,
		ActionRequestInfo: expertapplication.VerificationStatusPending,
	},
	expertapplication.VerificationStatusVerified: {
		ActionSuspend: expertapplication.VerificationStatusSuspended,
	},
}

// NextStatus resolves the status an action leads to from the current one,
// or a conflict error when the transition is not allowed.
func NextStatus(current expertapplication.VerificationStatus, action ReviewAction) (expertapplication.VerificationStatus, error) {
	next, ok := transitions[current][action]
	if !ok {
		return "", domain.NewConflictError(fmt.Sprintf("cannot apply %s to a %s application", action, current))
	}
	return next, nil
}

// TierForPoints maps accumulated reputation points to an expert tier.
func TierForPoints(points int) expertapplication.ExpertTier {
	switch {
	case points >= 2000:
		return expertapplication.ExpertTierPrincipal
	case points >= 500:
		return expertapplication.ExpertTierSenior
	default:
		return expertapplication.ExpertTierJunior
	}
}
