package main

import (
	"context"
	"log/slog"
	"os"

	"voiceauth/config"
	"voiceauth/internal/delivery"
	"voiceauth/internal/delivery/api"
	"voiceauth/internal/delivery/api/router/handler"
	"voiceauth/internal/delivery/api/session"
	"voiceauth/internal/infra/auth"
	"voiceauth/internal/infra/auth/oauth"
	"voiceauth/internal/infra/challenge"
	logs "voiceauth/internal/infra/log"
	"voiceauth/internal/infra/lockout"
	"voiceauth/internal/infra/persistence/postgres"
	"voiceauth/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewTransactionManager,
			lockout.NewRepository,
			challenge.NewRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewSessionIssuer,
			oauth.NewRegistry,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewChallengeStore,
			impl.NewLockoutLedger,
			impl.NewIdentityResolver,
			impl.NewAuthorizationInitiator,
			impl.NewCallbackExchanger,
			impl.NewAuthService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			session.NewDeliverer,
			handler.NewOAuthHandler,
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
