package employers

import (
	"context"
	"errors"
)

// ErrNotFound indicates the employer request does not exist.
var ErrNotFound = errors.New("employer request not found")

// Repo persists employer requests.
type Repo interface {
	Create(ctx context.Context, req Request) error
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, limit int) ([]Request, error)
}
