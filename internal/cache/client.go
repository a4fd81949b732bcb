package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lamkn06/delivery-ops/internal/config"
)

// NewClient connects a redis client. An empty address disables the cache
// and returns nil without error.
func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
