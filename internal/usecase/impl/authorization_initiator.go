package impl

import (
	"context"
	"log/slog"

	deliverycontext "voiceauth/internal/delivery/context"
	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/service"
	"voiceauth/internal/errors"
	"voiceauth/internal/usecase"

	"go.uber.org/fx"
)

type authorizationInitiator struct {
	providers  service.ProviderRegistry
	challenges usecase.ChallengeStore
	logger     *slog.Logger
}

// AuthorizationInitiatorParams holds dependencies for the initiator, injected by Fx.
type AuthorizationInitiatorParams struct {
	fx.In

	Providers  service.ProviderRegistry
	Challenges usecase.ChallengeStore
	Logger     *slog.Logger
}

// NewAuthorizationInitiator is the constructor for authorizationInitiator.
func NewAuthorizationInitiator(params AuthorizationInitiatorParams) usecase.AuthorizationInitiator {
	return &authorizationInitiator{
		providers:  params.Providers,
		challenges: params.Challenges,
		logger:     params.Logger,
	}
}

// Begin rejects unknown and unconfigured providers before any challenge is stored.
func (i *authorizationInitiator) Begin(ctx context.Context, input usecase.BeginAuthorizationInput) (*usecase.BeginAuthorizationOutput, error) {
	adapter, err := lookupConfigured(i.providers, input.Provider)
	if err != nil {
		return nil, err
	}

	flow := input.Flow
	if flow != entity.FlowMobile {
		flow = entity.FlowWeb
	}

	challenge, err := i.challenges.Create(ctx, adapter.Provider(), flow)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create challenge")
	}

	deliverycontext.GetLoggerOrDefault(ctx, i.logger).Info("Authorization started",
		slog.String("provider", adapter.Provider().String()),
		slog.String("flow", string(flow)),
	)

	return &usecase.BeginAuthorizationOutput{
		AuthorizationURL: adapter.AuthorizationURL(service.AuthorizationRequest{
			State:         challenge.State,
			CodeChallenge: challenge.CodeChallenge,
			RedirectURI:   input.RedirectURI,
		}),
		State:     challenge.State,
		ExpiresAt: challenge.ExpiresAt(i.challenges.TTL()),
	}, nil
}

// lookupProvider resolves a path segment into an adapter.
func lookupProvider(providers service.ProviderRegistry, name string) (service.ProviderAdapter, error) {
	provider, ok := entity.ParseOAuthProvider(name)
	if !ok {
		return nil, domainerrors.NewAuthError(domainerrors.KindUnsupportedProvider, errors.Errorf("unsupported provider %q", name))
	}

	adapter, ok := providers.Lookup(provider)
	if !ok {
		return nil, domainerrors.NewAuthError(domainerrors.KindUnsupportedProvider, errors.Errorf("no adapter for %q", name))
	}

	return adapter, nil
}

func lookupConfigured(providers service.ProviderRegistry, name string) (service.ProviderAdapter, error) {
	adapter, err := lookupProvider(providers, name)
	if err != nil {
		return nil, err
	}

	if !adapter.Configured() {
		return nil, domainerrors.NewAuthError(domainerrors.KindProviderNotConfigured, errors.Errorf("provider %q is not configured", name))
	}

	return adapter, nil
}
