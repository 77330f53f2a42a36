package projects

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainadvisory/chainadvisory-api/ent"
	"github.com/chainadvisory/chainadvisory-api/ent/assignment"
	"github.com/chainadvisory/chainadvisory-api/ent/enttest"
	"github.com/chainadvisory/chainadvisory-api/ent/project"
	entuser "github.com/chainadvisory/chainadvisory-api/ent/user"
	"github.com/chainadvisory/chainadvisory-api/pkg/cache"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
	"github.com/chainadvisory/chainadvisory-api/pkg/entitlement"
	"github.com/chainadvisory/chainadvisory-api/pkg/metrics"
	"github.com/chainadvisory/chainadvisory-api/pkg/reputation"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name()))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	rep := reputation.NewService(client, cacheClient)
	quota := entitlement.NewService(client)
	return NewService(client, quota, rep), client
}

func createTestUser(t *testing.T, client *ent.Client, email string, role entuser.Role) *ent.User {
	u, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetName("Test User").
		SetRole(role).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func createTestProject(t *testing.T, s *Service, userID int) *ent.Project {
	p, err := s.Submit(context.Background(), userID, SubmitInput{
		Name:        "Liquidity Protocol",
		Description: "A cross-chain liquidity aggregation protocol under audit.",
		Category:    "defi",
	}, time.Now())
	require.NoError(t, err)
	return p
}

func TestSubmitChargesQuota(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	owner := createTestUser(t, client, "owner@example.com", entuser.RoleUser)

	before := testutil.ToFloat64(metrics.ProjectsSubmitted)
	p := createTestProject(t, service, owner.ID)
	assert.Equal(t, project.StatusSubmitted, p.Status)

	owner = client.User.GetX(ctx, owner.ID)
	assert.Equal(t, 1, owner.ProjectsUsed)
	assert.Equal(t, 1, owner.TotalProjects)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ProjectsSubmitted))
}

func TestSubmitRejectsOverQuota(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	owner := createTestUser(t, client, "owner@example.com", entuser.RoleUser)
	// basic tier allows three submissions per month
	for i := 0; i < 3; i++ {
		createTestProject(t, service, owner.ID)
	}

	_, err := service.Submit(ctx, owner.ID, SubmitInput{
		Name:        "One Too Many",
		Description: "A fourth submission in the same calendar month.",
		Category:    "other",
	}, time.Now())
	assert.True(t, domain.IsForbidden(err))
}

func TestAssignExpertCap(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	owner := createTestUser(t, client, "owner@example.com", entuser.RoleUser)
	p := createTestProject(t, service, owner.ID)

	for i := 0; i < MaxConcurrentAssignments; i++ {
		expert := createTestUser(t, client, fmt.Sprintf("expert%d@example.com", i), entuser.RoleExpert)
		_, err := service.AssignExpert(ctx, p.ID, expert.ID)
		require.NoError(t, err)
	}

	extra := createTestUser(t, client, "extra@example.com", entuser.RoleExpert)
	_, err := service.AssignExpert(ctx, p.ID, extra.ID)
	assert.True(t, domain.IsConflict(err))

	count := client.Assignment.Query().Where(assignment.ProjectIDEQ(p.ID)).CountX(ctx)
	assert.Equal(t, MaxConcurrentAssignments, count)
}

func TestAssignExpertRejectsDuplicate(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	owner := createTestUser(t, client, "owner@example.com", entuser.RoleUser)
	expert := createTestUser(t, client, "expert@example.com", entuser.RoleExpert)
	p := createTestProject(t, service, owner.ID)

	_, err := service.AssignExpert(ctx, p.ID, expert.ID)
	require.NoError(t, err)

	_, err = service.AssignExpert(ctx, p.ID, expert.ID)
	assert.True(t, domain.IsConflict(err))
}

func TestAssignExpertRequiresExpertRole(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	owner := createTestUser(t, client, "owner@example.com", entuser.RoleUser)
	plain := createTestUser(t, client, "plain@example.com", entuser.RoleUser)
	p := createTestProject(t, service, owner.ID)

	_, err := service.AssignExpert(ctx, p.ID, plain.ID)
	assert.True(t, domain.IsValidation(err))
}

func TestAssignmentMovesProjectIntoReview(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	owner := createTestUser(t, client, "owner@example.com", entuser.RoleUser)
	expert := createTestUser(t, client, "expert@example.com", entuser.RoleExpert)
	p := createTestProject(t, service, owner.ID)

	_, err := service.AssignExpert(ctx, p.ID, expert.ID)
	require.NoError(t, err)

	p = client.Project.GetX(ctx, p.ID)
	assert.Equal(t, project.StatusInReview, p.Status)
}

func TestCompleteAssignmentFinalizesProject(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()
	now := time.Now()

	owner := createTestUser(t, client, "owner@example.com", entuser.RoleUser)
	expert := createTestUser(t, client, "expert@example.com", entuser.RoleExpert)
	p := createTestProject(t, service, owner.ID)

	a, err := service.AssignExpert(ctx, p.ID, expert.ID)
	require.NoError(t, err)

	a, err = service.StartAssignment(ctx, a.ID, expert.ID, now)
	require.NoError(t, err)
	assert.Equal(t, assignment.StatusInProgress, a.Status)

	eval, err := service.CompleteAssignment(ctx, a.ID, expert.ID, EvaluationInput{
		Score:   82,
		Rating:  4.5,
		Summary: "Solid tokenomics, treasury controls need multisig hardening.",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, 82.0, eval.Score)

	p = client.Project.GetX(ctx, p.ID)
	assert.Equal(t, project.StatusCompleted, p.Status)
	assert.Equal(t, 82.0, p.FinalScore)

	owner = client.User.GetX(ctx, owner.ID)
	assert.Equal(t, 1, owner.SuccessfulProjects)
	assert.Equal(t, 82.0, owner.AverageProjectScore)

	// submission + completion + high-rating bonus
	rec, err := reputation.NewService(client, nil).GetOrCreateRecord(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, rec.TotalPoints)
}

func TestStartAssignmentEnforcesOwnership(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	owner := createTestUser(t, client, "owner@example.com", entuser.RoleUser)
	expert := createTestUser(t, client, "expert@example.com", entuser.RoleExpert)
	other := createTestUser(t, client, "other@example.com", entuser.RoleExpert)
	p := createTestProject(t, service, owner.ID)

	a, err := service.AssignExpert(ctx, p.ID, expert.ID)
	require.NoError(t, err)

	_, err = service.StartAssignment(ctx, a.ID, other.ID, time.Now())
	assert.True(t, domain.IsForbidden(err))
}

func TestWithdraw(t *testing.T) {
	service, client := setupTestService(t)
	defer client.Close()
	ctx := context.Background()

	owner := createTestUser(t, client, "owner@example.com", entuser.RoleUser)
	p := createTestProject(t, service, owner.ID)

	p, err := service.Withdraw(ctx, owner.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, project.StatusWithdrawn, p.Status)

	_, err = service.Withdraw(ctx, owner.ID, p.ID)
	assert.True(t, domain.IsConflict(err))
}
