package blob

import (
	"context"
	"io"
)

// Store accepts a named byte stream and returns a durable, publicly resolvable URL.
type Store interface {
	Put(ctx context.Context, fileName string, contentType string, r io.Reader) (url string, err error)
}
