package repository

import (
	"context"
	"time"
)

// StateStore abstracts ephemeral key-value state.
// Implementations: Redis (production) or in-memory (local dev / single-instance).
type StateStore interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// SetNX sets the key only if it does not exist; returns whether it was set.
	// Backs the per-invitation mutation lock.
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
