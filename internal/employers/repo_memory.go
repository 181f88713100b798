package employers

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo for development and tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	requests map[string]Request
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{requests: make(map[string]Request)}
}

// Create stores a request.
func (r *MemoryRepo) Create(ctx context.Context, req Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[req.ID] = req
	return nil
}

// GetByID returns a request by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.requests[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	return req, nil
}

// List returns requests ordered newest-first.
func (r *MemoryRepo) List(ctx context.Context, limit int) ([]Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Request, 0, len(r.requests))
	for _, req := range r.requests {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
