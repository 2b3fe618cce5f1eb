package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "voiceauth/internal/delivery/context"
	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/repository"
	"voiceauth/internal/domain/service"
	"voiceauth/internal/errors"
	"voiceauth/internal/usecase"

	"go.uber.org/fx"
)

type callbackExchanger struct {
	providers  service.ProviderRegistry
	challenges usecase.ChallengeStore
	logger     *slog.Logger
}

// CallbackExchangerParams holds dependencies for the exchanger, injected by Fx.
type CallbackExchangerParams struct {
	fx.In

	Providers  service.ProviderRegistry
	Challenges usecase.ChallengeStore
	Logger     *slog.Logger
}

// NewCallbackExchanger is the constructor for callbackExchanger.
func NewCallbackExchanger(params CallbackExchangerParams) usecase.CallbackExchanger {
	return &callbackExchanger{
		providers:  params.Providers,
		challenges: params.Challenges,
		logger:     params.Logger,
	}
}

func (e *callbackExchanger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, e.logger)
}

// Complete runs the callback steps in order. Every failure is terminal;
// the client has to start a new authorization.
func (e *callbackExchanger) Complete(ctx context.Context, input usecase.CallbackInput) (*usecase.CallbackOutput, error) {
	if input.Error != "" {
		e.log(ctx).Info("Provider reported an error",
			slog.String("error", input.Error),
			slog.String("error_description", input.ErrorDescription),
		)

		return nil, domainerrors.NewAuthError(domainerrors.KindProviderDenied, errors.Errorf("provider error %q", input.Error))
	}

	if strings.TrimSpace(input.Code) == "" || strings.TrimSpace(input.State) == "" {
		return nil, domainerrors.NewAuthError(domainerrors.KindBadRequest, nil)
	}

	challenge, err := e.challenges.Consume(ctx, input.State)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, domainerrors.NewAuthError(domainerrors.KindInvalidState, nil)
		}

		return nil, domainerrors.NewAuthError(domainerrors.KindExchangeFailed, errors.Wrap(err, "consume challenge"))
	}

	adapter, ok := e.providers.Lookup(challenge.Provider)
	if !ok || !adapter.Configured() {
		return nil, domainerrors.NewAuthError(domainerrors.KindProviderNotConfigured, nil)
	}

	tokens, err := adapter.Exchange(ctx, input.Code, challenge.Verifier, input.RedirectURI)
	if err != nil {
		return nil, asExchangeFailed(err)
	}

	identity, err := adapter.FetchProfile(ctx, tokens, service.CallbackProfileHint{RawUser: input.User})
	if err != nil {
		return nil, asExchangeFailed(err)
	}

	if strings.TrimSpace(identity.Email) == "" {
		return nil, domainerrors.NewAuthError(domainerrors.KindProfileIncomplete,
			errors.Errorf("%s profile has no email", challenge.Provider))
	}

	// Accounts are matched by email, so an unverified one must not reach the resolver.
	if !identity.EmailVerified {
		return nil, domainerrors.NewAuthError(domainerrors.KindProfileIncomplete,
			errors.Errorf("%s email is not verified", challenge.Provider))
	}

	return &usecase.CallbackOutput{Identity: identity, Flow: challengeFlow(challenge)}, nil
}

// asExchangeFailed keeps adapter errors that already carry a kind and folds
// everything else into exchange_failed.
func asExchangeFailed(err error) error {
	if _, ok := domainerrors.KindOf(err); ok {
		return err
	}

	return domainerrors.NewAuthError(domainerrors.KindExchangeFailed, err)
}

func challengeFlow(challenge *entity.Challenge) entity.Flow {
	if challenge.Flow == "" {
		return entity.FlowFromState(challenge.State)
	}

	return challenge.Flow
}
