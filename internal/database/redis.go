package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/intercityline/booking-backend/internal/config"
)

// NewRedisClient connects the optional response cache. Returns nil when no
// address is configured or the server is unreachable; callers degrade by
// serving uncached.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil
	}
	return client
}
