package consultations

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainadvisory/chainadvisory-api/pkg/cache"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
)

func setupDraftStore(t *testing.T) (*DraftStore, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := &cache.Client{
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return NewDraftStore(client), mr
}

func TestDraftSaveAndTake(t *testing.T) {
	store, mr := setupDraftStore(t)
	defer mr.Close()

	ctx := context.Background()
	draft := &Draft{
		ServiceType:     "due_diligence",
		DurationMinutes: 45,
		ScheduledAt:     time.Date(2025, 7, 1, 15, 0, 0, 0, time.UTC),
		ContactPhone:    "+14155552671",
		Notes:           "token launch review",
		SavedAt:         time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}

	err := store.Save(ctx, "tok123", draft)
	require.NoError(t, err)

	got, err := store.Take(ctx, "tok123")
	require.NoError(t, err)
	assert.Equal(t, draft.ServiceType, got.ServiceType)
	assert.Equal(t, draft.DurationMinutes, got.DurationMinutes)
	assert.True(t, draft.ScheduledAt.Equal(got.ScheduledAt))
	assert.Equal(t, draft.ContactPhone, got.ContactPhone)

	// single-use: a second take fails
	_, err = store.Take(ctx, "tok123")
	assert.True(t, domain.IsNotFound(err))
}

func TestDraftTakeMissing(t *testing.T) {
	store, mr := setupDraftStore(t)
	defer mr.Close()

	_, err := store.Take(context.Background(), "unknown")
	assert.True(t, domain.IsNotFound(err))
}

func TestDraftSaveRequiresToken(t *testing.T) {
	store, mr := setupDraftStore(t)
	defer mr.Close()

	err := store.Save(context.Background(), "", &Draft{})
	assert.True(t, domain.IsValidation(err))
}

func TestDraftExpires(t *testing.T) {
	store, mr := setupDraftStore(t)
	defer mr.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "tok456", &Draft{ServiceType: "advisory"}))

	mr.FastForward(draftTTL + time.Minute)

	_, err := store.Take(ctx, "tok456")
	assert.True(t, domain.IsNotFound(err))
}
