// Package cache stores computed plans and rendered artifacts.
//
// Plans are pure functions of their request, so identical requests can be
// served from a cache. The CLI uses [FileCache] under the user's cache
// directory; the HTTP server can share a [RedisCache] between instances.
// [NullCache] disables caching.
//
// Keys are produced by a [Keyer] so that the key layout lives in one place:
//
//	k := cache.NewDefaultKeyer()
//	key := k.PlanKey(cache.PlanKeyOpts{Scheme: "booklet", Pages: 6})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs.
const (
	PlanTTL     = 7 * 24 * time.Hour
	ArtifactTTL = 24 * time.Hour
)
