// Package cache stores solved assignments keyed by a hash of their cost
// matrix, so repeated solves of the same matrix (common when the HTTP API
// fronts a batch workload) skip the computation entirely.
//
// Three backends are provided:
//   - [FileCache]: entries as JSON files in a directory, for CLI use
//   - [RedisCache]: shared cache for multi-instance server deployments
//   - [NullCache]: no-op, for tests or when caching is disabled
package cache

import (
	"context"
	"time"
)

// Cache is the storage contract shared by all backends. Values are opaque
// byte slices; callers handle serialization. A zero ttl means the entry
// never expires.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit;
	// a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any backend resources.
	Close() error
}
