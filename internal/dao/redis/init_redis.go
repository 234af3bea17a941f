package redis

import (
	"context"
	"fmt"
	"strconv"

	"vidcall_server/internal/config"

	"github.com/go-redis/redis/v8"
)

// worker pool sizing shared by every service
const (
	defaultWorkers    = 15
	defaultBufferSize = 3000
)

// Init dials Redis from cfg, pings it and returns the cache with its worker pool running.
func Init(ctx context.Context, cfg *config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Host + ":" + strconv.Itoa(cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.Db,
		PoolSize:     50,
		MinIdleConns: defaultWorkers,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisCache(client, defaultWorkers, defaultBufferSize), nil
}
