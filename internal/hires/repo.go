package hires

import "context"

// Repo persists hire intents.
type Repo interface {
	Create(ctx context.Context, intent Intent) error
	ListByProfile(ctx context.Context, profileID string) ([]Intent, error)
}
