package consultations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chainadvisory/chainadvisory-api/pkg/cache"
	"github.com/chainadvisory/chainadvisory-api/pkg/domain"
)

// Drafts survive the login redirect: a visitor fills the booking form,
// authenticates, and the dashboard resumes from the stashed draft. The draft
// lives server-side rather than in client storage, keyed by the authenticated
// user id, so each user has at most one pending draft.
const (
	draftKeyPrefix = "consultation:draft:"
	draftTTL       = 30 * time.Minute
)

// Draft is a booking form captured before checkout.
type Draft struct {
	ServiceType     string    `json:"service_type"`
	DurationMinutes int       `json:"duration_minutes"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	ContactPhone    string    `json:"contact_phone,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	SavedAt         time.Time `json:"saved_at"`
}

// DraftStore stashes and retrieves booking drafts in Redis.
type DraftStore struct {
	cache *cache.Client
}

// NewDraftStore creates a draft store backed by the shared Redis client.
func NewDraftStore(c *cache.Client) *DraftStore {
	return &DraftStore{cache: c}
}

// Save stores a draft under the given token.
func (d *DraftStore) Save(ctx context.Context, token string, draft *Draft) error {
	if token == "" {
		return domain.NewValidationError("draft token is required")
	}
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := d.cache.Set(ctx, draftKeyPrefix+token, data, draftTTL); err != nil {
		return fmt.Errorf("failed to store draft: %w", err)
	}
	return nil
}

// Take retrieves a draft and removes it so it can only be consumed once.
func (d *DraftStore) Take(ctx context.Context, token string) (*Draft, error) {
	data, err := d.cache.Get(ctx, draftKeyPrefix+token)
	if err != nil {
		return nil, domain.NewNotFoundError("booking draft")
	}
	var draft Draft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	if err := d.cache.Delete(ctx, draftKeyPrefix+token); err != nil {
		return nil, fmt.Errorf("failed to discard draft: %w", err)
	}
	return &draft, nil
}
