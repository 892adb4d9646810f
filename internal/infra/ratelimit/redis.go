// Package ratelimit implements the sliding-window rate limiter backed by Redis.
package ratelimit

import (
	"context"
	"log/slog"

	"accountd/config"
	"accountd/internal/domain/lifecycle"
	"accountd/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// RedisParams defines the required parameters
type RedisParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient creates the Redis client used by the rate limiter.
func NewRedisClient(params RedisParams) (*redis.Client, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis configuration missing")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
