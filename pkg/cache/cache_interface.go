package cache

import (
	"context"
	"time"
)

// Cache is the contract for the read-side cache layer, implemented on
// Redis in internal/infrastructure/cache.
type Cache interface {
	// Get loads the value stored under key and unmarshals it into dest.
	// Returns (true, nil) on a hit; (false, nil) on a miss, leaving dest
	// untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
