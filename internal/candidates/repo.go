package candidates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"hirehand-backend/internal/shared/storage/kv"
)

const keyPrefix = "candidate:"

// Repo persists candidate profiles in a key-value store, one key per profile.
type Repo struct {
	KV kv.Store
}

// Create writes a profile as a single atomic key write. Keys are never
// overwritten in practice because profile IDs are freshly generated per run.
func (r *Repo) Create(ctx context.Context, profile Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return r.KV.Set(ctx, keyPrefix+profile.ID, data)
}

// GetByID returns a profile by ID.
func (r *Repo) GetByID(ctx context.Context, id string) (Profile, error) {
	data, err := r.KV.Get(ctx, keyPrefix+id)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("unmarshal profile %s: %w", id, err)
	}
	return profile, nil
}

// List returns all profiles, newest first.
func (r *Repo) List(ctx context.Context) ([]Profile, error) {
	keys, err := r.KV.Keys(ctx, keyPrefix)
	if err != nil {
		return nil, err
	}

	profiles := make([]Profile, 0, len(keys))
	for _, key := range keys {
		data, err := r.KV.Get(ctx, key)
		if err != nil {
			if errors.Is(err, kv.ErrNotFound) {
				continue
			}
			return nil, err
		}
		var profile Profile
		if err := json.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("unmarshal profile key %s: %w", key, err)
		}
		profiles = append(profiles, profile)
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt.After(profiles[j].CreatedAt)
	})
	return profiles, nil
}

// UpdateStatus sets the verification status and optionally the pro flag.
// This is the admin review path; the pipeline itself never mutates profiles.
func (r *Repo) UpdateStatus(ctx context.Context, id, status string, isPro *bool) (Profile, error) {
	profile, err := r.GetByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}

	profile.VerificationStatus = status
	if isPro != nil {
		profile.IsPro = *isPro
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return Profile{}, fmt.Errorf("marshal profile: %w", err)
	}
	if err := r.KV.Set(ctx, keyPrefix+id, data); err != nil {
		return Profile{}, err
	}
	return profile, nil
}
