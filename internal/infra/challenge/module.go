package challenge

import (
	"context"
	"log/slog"

	"voiceauth/config"
	"voiceauth/internal/domain/repository"
	"voiceauth/internal/infra/cache"

	"go.uber.org/fx"
)

// Params defines the dependencies of the challenge repository.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRepository selects the configured challenge backend.
func NewRepository(params Params) (repository.ChallengeRepository, error) {
	if params.Config.Challenge.Backend == config.BackendRedis {
		client, err := cache.NewClient(params.Config.Redis, params.Lifecycle, params.Logger)
		if err != nil {
			return nil, err
		}

		return NewRedisStore(client), nil
	}

	store := NewMemoryStore(params.Logger, nil)
	interval := params.Config.Challenge.SweepInterval

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			store.StartSweeper(interval)

			return nil
		},
		OnStop: store.StopSweeper,
	})

	return store, nil
}
