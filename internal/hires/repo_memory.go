package hires

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo for development and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	intents []Intent
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create stores an intent.
func (r *MemoryRepo) Create(ctx context.Context, intent Intent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.intents = append(r.intents, intent)
	return nil
}

// ListByProfile returns intents for a candidate, newest first.
func (r *MemoryRepo) ListByProfile(ctx context.Context, profileID string) ([]Intent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Intent
	for _, intent := range r.intents {
		if intent.ProfileID == profileID {
			out = append(out, intent)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
