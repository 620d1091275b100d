package catalog

import (
	"context"
	"time"

	"photobooking/internal/domain"
)

type PhotographerRepository interface {
	List(ctx context.Context) ([]domain.Photographer, error)
}

// Cache stores opaque values by key. Get returns ErrCacheMiss when the key is
// absent.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
