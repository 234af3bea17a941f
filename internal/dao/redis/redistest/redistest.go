// Package redistest backs the cache with an in-process miniredis for tests.
package redistest

import (
	"testing"

	myredis "vidcall_server/internal/dao/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

// New returns a cache with a small worker pool over a fresh miniredis.
func New(t testing.TB) (*myredis.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return myredis.NewRedisCache(client, 2, 16), mr
}
