package reputation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/enttest"
	"github.com/chainadvisory/chainadvisory-api/ent/reputationrecord"

	_ "github.com/mattn/go-sqlite3"
)

func setupReputationService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	return NewService(client, nil), client
}

func createReputationUser(t *testing.T, client *ent.Client) *ent.User {
	u, err := client.User.Create().
		SetEmail("founder@example.com").
		SetPasswordHash("x").
		SetName("Test Founder").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestRecordEvaluationOutcomeAwardsActivityPoints(t *testing.T) {
	service, client := setupReputationService(t)
	defer client.Close()
	ctx := context.Background()

	u := createReputationUser(t, client)

	// completed and rated above the bonus cutoff: full activity points
	require.NoError(t, service.RecordEvaluationOutcome(ctx, u.ID, 4.5, true))

	rec := client.ReputationRecord.Query().
		Where(reputationrecord.UserIDEQ(u.ID)).
		OnlyX(ctx)
	assert.Equal(t, PointsForActivity(1, 1, 1), rec.TotalPoints)
	assert.Equal(t, 1, rec.ProjectsSubmitted)
	assert.InDelta(t, 4.5, rec.AverageRating, 0.001)
	assert.InDelta(t, 100.0, rec.CompletionRate, 0.001)

	// incomplete and rated below the cutoff: submission points only
	require.NoError(t, service.RecordEvaluationOutcome(ctx, u.ID, 2.0, false))

	rec = client.ReputationRecord.Query().
		Where(reputationrecord.UserIDEQ(u.ID)).
		OnlyX(ctx)
	assert.Equal(t, PointsForActivity(2, 1, 1), rec.TotalPoints)
	assert.Equal(t, 2, rec.ProjectsSubmitted)
	assert.InDelta(t, 3.25, rec.AverageRating, 0.001)
	assert.InDelta(t, 50.0, rec.CompletionRate, 0.001)
}

func TestRecordEvaluationOutcomeLevelsUp(t *testing.T) {
	service, client := setupReputationService(t)
	defer client.Close()
	ctx := context.Background()

	u := createReputationUser(t, client)

	// three completed high-rated evaluations cross the 100 point level line
	for i := 0; i < 3; i++ {
		require.NoError(t, service.RecordEvaluationOutcome(ctx, u.ID, 5.0, true))
	}

	rec := client.ReputationRecord.Query().
		Where(reputationrecord.UserIDEQ(u.ID)).
		OnlyX(ctx)
	assert.Equal(t, PointsForActivity(3, 3, 3), rec.TotalPoints)
	assert.Equal(t, LevelForPoints(rec.TotalPoints), rec.Level)
	assert.Equal(t, 2, rec.Level)
}
