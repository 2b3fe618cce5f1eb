// Package cache wires the shared Redis client.
package cache

import (
	"context"
	"log/slog"

	"voiceauth/config"
	"voiceauth/internal/domain/lifecycle"
	"voiceauth/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// NewClient creates a Redis client whose connectivity is checked on start
// and which is closed on stop.
func NewClient(cfg *config.RedisConfig, lc fx.Lifecycle, logger *slog.Logger) (*redis.Client, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address is not configured")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			logger.Info("Redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
