package tiers

import (
	"context"
	"fmt"
	"time"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/tierthreshold"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
	"github.com/chainadvisory/chainadvisory-api/pkg/cache"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/chainadvisory/chainadvisory-api/pkg/reputation"
)

const thresholdsCacheKey = "reputation:thresholds"

// Service handles admin management of the tier threshold table.
type Service struct {
	db         *ent.Client
	cache      *cache.Client
	reputation *reputation.Service
}

// NewService creates a new tier administration service.
func NewService(db *ent.Client, cache *cache.Client, reputation *reputation.Service) *Service {
	return &Service{db: db, cache: cache, reputation: reputation}
}

// ThresholdResponse represents one row of the threshold table.
type ThresholdResponse struct {
	ID                  int    `json:"id"`
	Tier                string `json:"tier"`
	MinPoints           int    `json:"min_points"`
	MonthlyProjectLimit int    `json:"monthly_project_limit"`
	UpdatedAt           string `json:"updated_at"`
}

// UpdateThresholdRequest represents a request to change a tier's cutoff or quota.
type UpdateThresholdRequest struct {
	MinPoints           *int `json:"min_points,omitempty"`
	MonthlyProjectLimit *int `json:"monthly_project_limit,omitempty"`
}

// ListThresholds returns the full threshold table ordered by ascending cutoff.
func (s *Service) ListThresholds(ctx context.Context) ([]*ThresholdResponse, error) {
	rows, err := s.db.TierThreshold.Query().
		Order(ent.Asc(tierthreshold.FieldMinPoints)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tier thresholds: %w", err)
	}

	responses := make([]*ThresholdResponse, len(rows))
	for i, row := range rows {
		responses[i] = toThresholdResponse(row)
	}
	return responses, nil
}

// UpdateThreshold changes a tier's minimum points or monthly quota. The table
// must stay strictly ordered: each tier's cutoff must remain above the tier
// below it and below the tier above it.
func (s *Service) UpdateThreshold(ctx context.Context, tier string, req UpdateThresholdRequest) (*ThresholdResponse, error) {
	row, err := s.db.TierThreshold.Query().
		Where(tierthreshold.TierEQ(tierthreshold.Tier(tier))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("tier threshold")
		}
		return nil, fmt.Errorf("failed to load tier threshold: %w", err)
	}

	update := row.Update()

	if req.MinPoints != nil {
		if err := s.validateOrdering(ctx, row, *req.MinPoints); err != nil {
			return nil, err
		}
		if string(row.Tier) == reputation.TierBasic && *req.MinPoints != 0 {
			return nil, domain.NewValidationError("basic tier cutoff must stay at 0")
		}
		update.SetMinPoints(*req.MinPoints)
	}

	if req.MonthlyProjectLimit != nil {
		if *req.MonthlyProjectLimit <= 0 {
			return nil, domain.NewValidationError("monthly project limit must be positive")
		}
		update.SetMonthlyProjectLimit(*req.MonthlyProjectLimit)
	}

	updated, err := update.SetUpdatedAt(time.Now()).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update tier threshold: %w", err)
	}

	s.invalidateCache(ctx)
	return toThresholdResponse(updated), nil
}

// ResyncUsers recomputes every user's tier and monthly quota from the current
// threshold table. Call after changing cutoffs so existing accounts move to
// their new tiers. Returns the number of users whose tier changed.
func (s *Service) ResyncUsers(ctx context.Context) (int, error) {
	thresholds, err := s.reputation.Thresholds(ctx)
	if err != nil {
		return 0, err
	}

	users, err := s.db.User.Query().
		Where(user.StatusEQ(user.StatusActive)).
		WithReputation().
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	changed := 0
	for _, u := range users {
		points := 0
		if u.Edges.Reputation != nil {
			points = u.Edges.Reputation.TotalPoints
		}

		progress := reputation.ResolveTier(points, thresholds)
		limit := reputation.LimitForTier(progress.CurrentTier, thresholds)

		if string(u.SubmitterTier) == progress.CurrentTier && u.MonthlyProjectLimit == limit {
			continue
		}

		err := s.db.User.UpdateOneID(u.ID).
			SetSubmitterTier(user.SubmitterTier(progress.CurrentTier)).
			SetMonthlyProjectLimit(limit).
			Exec(ctx)
		if err != nil {
			return changed, fmt.Errorf("failed to resync user %d: %w", u.ID, err)
		}
		changed++
	}

	return changed, nil
}

// validateOrdering rejects a cutoff that would reorder the tier ladder.
func (s *Service) validateOrdering(ctx context.Context, row *ent.TierThreshold, minPoints int) error {
	if minPoints < 0 {
		return domain.NewValidationError("minimum points cannot be negative")
	}

	others, err := s.db.TierThreshold.Query().
		Where(tierthreshold.IDNEQ(row.ID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tier thresholds: %w", err)
	}

	for _, other := range others {
		lower := other.MinPoints < row.MinPoints && minPoints <= other.MinPoints
		higher := other.MinPoints > row.MinPoints && minPoints >= other.MinPoints
		if lower || higher {
			return domain.NewValidationError(fmt.Sprintf(
				"cutoff %d would reorder tier %s against %s (%d)",
				minPoints, row.Tier, other.Tier, other.MinPoints))
		}
	}
	return nil
}

func (s *Service) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, thresholdsCacheKey)
	}
}

func toThresholdResponse(row *ent.TierThreshold) *ThresholdResponse {
	return &ThresholdResponse{
		ID:                  row.ID,
		Tier:                string(row.Tier),
		MinPoints:           row.MinPoints,
		MonthlyProjectLimit: row.MonthlyProjectLimit,
		UpdatedAt:           row.UpdatedAt.Format(time.RFC3339),
	}
}
