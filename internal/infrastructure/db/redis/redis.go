// Package redis owns the Redis client backing the postal lookup cache and
// the readiness endpoint.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fcamara/user-address-api/internal/infrastructure/config"
)

// Connect builds a client from the Redis section of the runtime
// configuration and pings it before anything caches through it, so a
// miswired address fails at startup instead of on the first lookup. The
// ping honours cfg.Timeout.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
