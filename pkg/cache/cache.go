package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer. Implementations may be
// backed by Redis or an in-memory store for tests.
type Cache interface {
	// Get reads the value stored under key and unmarshals it into dest.
	// Returns false on a cache miss, in which case dest is untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
