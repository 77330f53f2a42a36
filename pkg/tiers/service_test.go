package tiers

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/enttest"
	"github.com/chainadvisory/chainadvisory-api/pkg/cache"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/chainadvisory/chainadvisory-api/pkg/reputation"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	repService := reputation.NewService(client, cacheClient)
	require.NoError(t, repService.SeedThresholds(context.Background()))

	return NewService(client, cacheClient, repService), client
}

func TestListThresholds(t *testing.T) {
	svc, _ := setupTestService(t)

	rows, err := svc.ListThresholds(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "basic", rows[0].Tier)
	assert.Equal(t, 0, rows[0].MinPoints)
	assert.Equal(t, "ecosystem_partner", rows[4].Tier)
	assert.Equal(t, 10000, rows[4].MinPoints)
}

func TestUpdateThreshold(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	minPoints := 150
	limit := 12
	updated, err := svc.UpdateThreshold(ctx, "verified", UpdateThresholdRequest{
		MinPoints:           &minPoints,
		MonthlyProjectLimit: &limit,
	})
	require.NoError(t, err)
	assert.Equal(t, 150, updated.MinPoints)
	assert.Equal(t, 12, updated.MonthlyProjectLimit)
}

func TestUpdateThresholdRejectsReordering(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	// verified (100) cannot jump above premium (500)
	minPoints := 600
	_, err := svc.UpdateThreshold(ctx, "verified", UpdateThresholdRequest{MinPoints: &minPoints})
	assert.True(t, domain.IsValidation(err))

	// basic stays pinned at zero
	minPoints = 50
	_, err = svc.UpdateThreshold(ctx, "basic", UpdateThresholdRequest{MinPoints: &minPoints})
	assert.True(t, domain.IsValidation(err))

	limit := 0
	_, err = svc.UpdateThreshold(ctx, "premium", UpdateThresholdRequest{MonthlyProjectLimit: &limit})
	assert.True(t, domain.IsValidation(err))
}

func TestUpdateThresholdNotFound(t *testing.T) {
	svc, _ := setupTestService(t)

	minPoints := 10
	_, err := svc.UpdateThreshold(context.Background(), "platinum", UpdateThresholdRequest{MinPoints: &minPoints})
	assert.True(t, domain.IsNotFound(err))
}

func TestResyncUsers(t *testing.T) {
	svc, client := setupTestService(t)
	ctx := context.Background()

	u, err := client.User.Create().
		SetEmail("resync@example.com").
		SetPasswordHash("x").
		SetName("Resync User").
		Save(ctx)
	require.NoError(t, err)

	err = client.ReputationRecord.Create().
		SetUserID(u.ID).
		SetTotalPoints(120).
		Exec(ctx)
	require.NoError(t, err)

	// 120 points clears the verified cutoff
	changed, err := svc.ResyncUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	refreshed := client.User.GetX(ctx, u.ID)
	assert.Equal(t, "verified", string(refreshed.SubmitterTier))
	assert.Equal(t, 10, refreshed.MonthlyProjectLimit)

	// A second pass is a no-op
	changed, err = svc.ResyncUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, changed)
}
