package reputation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/reputationrecord"
	"github.com/chainadvisory/chainadvisory-api/ent/tierthreshold"
	"github.com/chainadvisory/chainadvisory-api/ent/user"
	"github.com/chainadvisory/chainadvisory-api/pkg/cache"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
)

const (
	thresholdsCacheKey = "reputation:thresholds"
	thresholdsCacheTTL = 1 * time.Hour
)

// Service handles reputation accumulation and tier progression.
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new reputation service.
func NewService(db *ent.Client, cache *cache.Client) *Service {
	return &Service{db: db, cache: cache}
}

// Thresholds returns the tier threshold table, cached in Redis. The
// persisted table is the single source of truth for tier cutoffs.
func (s *Service) Thresholds(ctx context.Context) ([]Threshold, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, thresholdsCacheKey); err == nil && raw != "" {
			var cached []Threshold
			if err := json.Unmarshal([]byte(raw), &cached); err == nil && len(cached) > 0 {
				return cached, nil
			}
		}
	}

	rows, err := s.db.TierThreshold.Query().
		Order(ent.Asc(tierthreshold.FieldMinPoints)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tier thresholds: %w", err)
	}

	if len(rows) == 0 {
		return DefaultThresholds(), nil
	}

	thresholds := make([]Threshold, 0, len(rows))
	for _, row := range rows {
		thresholds = append(thresholds, Threshold{
			Tier:                string(row.Tier),
			MinPoints:           row.MinPoints,
			MonthlyProjectLimit: row.MonthlyProjectLimit,
		})
	}

	if s.cache != nil {
		if data, err := json.Marshal(thresholds); err == nil {
			_ = s.cache.Set(ctx, thresholdsCacheKey, string(data), thresholdsCacheTTL)
		}
	}

	return thresholds, nil
}

// SeedThresholds inserts the default threshold table if none exists.
func (s *Service) SeedThresholds(ctx context.Context) error {
	count, err := s.db.TierThreshold.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count tier thresholds: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, th := range DefaultThresholds() {
		_, err := s.db.TierThreshold.Create().
			SetTier(tierthreshold.Tier(th.Tier)).
			SetMinPoints(th.MinPoints).
			SetMonthlyProjectLimit(th.MonthlyProjectLimit).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed tier threshold %s: %w", th.Tier, err)
		}
	}

	return nil
}

// GetOrCreateRecord returns the user's reputation record, creating an empty
// one on first access.
func (s *Service) GetOrCreateRecord(ctx context.Context, userID int) (*ent.ReputationRecord, error) {
	rec, err := s.db.ReputationRecord.Query().
		Where(reputationrecord.UserIDEQ(userID)).
		Only(ctx)
	if err == nil {
		return rec, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query reputation record: %w", err)
	}

	rec, err = s.db.ReputationRecord.Create().
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create reputation record: %w", err)
	}
	return rec, nil
}

// Progress resolves the user's current tier and progress toward the next.
func (s *Service) Progress(ctx context.Context, userID int) (*TierProgress, error) {
	rec, err := s.GetOrCreateRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	thresholds, err := s.Thresholds(ctx)
	if err != nil {
		return nil, err
	}

	progress := ResolveTier(rec.TotalPoints, thresholds)
	return &progress, nil
}

// AwardAchievement grants an achievement and its points to a user. This is
// the only path besides evaluation scoring that increases total points.
func (s *Service) AwardAchievement(ctx context.Context, userID int, title, description string, points int) (*ent.Achievement, error) {
	if points < 0 {
		return nil, domain.NewValidationError("achievement points cannot be negative")
	}

	rec, err := s.GetOrCreateRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	ach, err := tx.Achievement.Create().
		SetTitle(title).
		SetDescription(description).
		SetPointsAwarded(points).
		SetRecordID(rec.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}

	newTotal := rec.TotalPoints + points
	_, err = tx.ReputationRecord.UpdateOneID(rec.ID).
		SetTotalPoints(newTotal).
		SetLevel(LevelForPoints(newTotal)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update reputation record: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if err := s.syncUserTier(ctx, userID, newTotal); err != nil {
		return nil, err
	}

	return ach, nil
}

// AdjustPoints applies an admin correction. This is the only operation that
// may decrease a point total; the result is floored at zero.
func (s *Service) AdjustPoints(ctx context.Context, userID, delta int) (*ent.ReputationRecord, error) {
	rec, err := s.GetOrCreateRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	newTotal := rec.TotalPoints + delta
	if newTotal < 0 {
		newTotal = 0
	}

	rec, err = s.db.ReputationRecord.UpdateOneID(rec.ID).
		SetTotalPoints(newTotal).
		SetLevel(LevelForPoints(newTotal)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust points: %w", err)
	}

	if err := s.syncUserTier(ctx, userID, newTotal); err != nil {
		return nil, err
	}

	return rec, nil
}

// RecordEvaluationOutcome folds a completed evaluation into the submitter's
// reputation: counters, average rating, completion rate, points and level.
func (s *Service) RecordEvaluationOutcome(ctx context.Context, userID int, rating float64, completed bool) error {
	rec, err := s.GetOrCreateRecord(ctx, userID)
	if err != nil {
		return err
	}

	submitted := rec.ProjectsSubmitted + 1
	completedDelta := 0
	if completed {
		completedDelta = 1
	}
	highRatedDelta := 0
	if rating >= RatingBonusCutoff {
		highRatedDelta = 1
	}
	earned := PointsForActivity(1, completedDelta, highRatedDelta)

	// Running average over submissions.
	avg := (rec.AverageRating*float64(rec.ProjectsSubmitted) + rating) / float64(submitted)

	// Completed count is reconstructed from the stored rate.
	completedCount := int(rec.CompletionRate/100*float64(rec.ProjectsSubmitted) + 0.5)
	if completed {
		completedCount++
	}

	newTotal := rec.TotalPoints + earned
	update := s.db.ReputationRecord.UpdateOneID(rec.ID).
		SetProjectsSubmitted(submitted).
		SetAverageRating(avg).
		SetCompletionRate(CompletionRate(submitted, completedCount)).
		SetTotalPoints(newTotal).
		SetLevel(LevelForPoints(newTotal))

	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to record evaluation outcome: %w", err)
	}

	return s.syncUserTier(ctx, userID, newTotal)
}

// syncUserTier keeps the user's submitter tier and monthly project limit in
// line with the threshold table after any point change.
func (s *Service) syncUserTier(ctx context.Context, userID, totalPoints int) error {
	thresholds, err := s.Thresholds(ctx)
	if err != nil {
		return err
	}

	progress := ResolveTier(totalPoints, thresholds)
	limit := LimitForTier(progress.CurrentTier, thresholds)

	_, err = s.db.User.UpdateOneID(userID).
		SetSubmitterTier(user.SubmitterTier(progress.CurrentTier)).
		SetMonthlyProjectLimit(limit).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to sync user tier: %w", err)
	}
	return nil
}
