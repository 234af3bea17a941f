// Package redis defines the cache abstraction the services depend on
// and its go-redis implementation.
package redis

import (
	"context"
	"time"
)

// CacheService synchronous cache operations.
type CacheService interface {
	// Set stores value under key with ttl (0 = no expiry)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get returns "" and nil when the key is absent
	Get(ctx context.Context, key string) (string, error)
	// Delete removes the key if present
	Delete(ctx context.Context, key string) error

	// AddToSet adds members to a set
	AddToSet(ctx context.Context, key string, members ...interface{}) error
	// GetSetMembers returns every member; an absent key yields an empty slice
	GetSetMembers(ctx context.Context, key string) ([]string, error)
	// Expire sets a ttl on an existing key
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// Incr bumps a counter, creating it at 1
	Incr(ctx context.Context, key string) (int64, error)
	// AddToSetIfUnchanged fills a set with ttl only while guardKey still holds
	// guard ("" meaning absent). Reports whether the write happened.
	AddToSetIfUnchanged(ctx context.Context, key, guardKey, guard string, ttl time.Duration, members ...string) (bool, error)
}

// AsyncCacheService adds fire-and-forget work for non-critical cache writes.
type AsyncCacheService interface {
	CacheService
	// SubmitTask queues action on the worker pool, running it inline when the queue is full
	SubmitTask(action func())
}
