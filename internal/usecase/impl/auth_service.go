package impl

import (
	"context"
	"log/slog"
	"strings"

	"voiceauth/config"
	deliverycontext "voiceauth/internal/delivery/context"
	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/repository"
	"voiceauth/internal/domain/service"
	"voiceauth/internal/errors"
	"voiceauth/internal/usecase"

	"go.uber.org/fx"
)

// authService implements usecase.AuthUsecase by wiring the initiator,
// exchanger, resolver, lockout ledger and session issuer together.
type authService struct {
	initiator   usecase.AuthorizationInitiator
	exchanger   usecase.CallbackExchanger
	resolver    usecase.IdentityResolver
	ledger      usecase.LockoutLedger
	providers   service.ProviderRegistry
	sessions    service.SessionIssuer
	hasher      service.PasswordHasher
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	redirectURI string
	tail        handleTail
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Initiator   usecase.AuthorizationInitiator
	Exchanger   usecase.CallbackExchanger
	Resolver    usecase.IdentityResolver
	Ledger      usecase.LockoutLedger
	Providers   service.ProviderRegistry
	Sessions    service.SessionIssuer
	Hasher      service.PasswordHasher
	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		initiator:   params.Initiator,
		exchanger:   params.Exchanger,
		resolver:    params.Resolver,
		ledger:      params.Ledger,
		providers:   params.Providers,
		sessions:    params.Sessions,
		hasher:      params.Hasher,
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		redirectURI: strings.TrimRight(params.Config.HTTP.PublicBaseURL, "/") + params.Config.OAuth.CallbackPath,
		tail:        randomHandleTail,
		logger:      params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartOAuth begins an authorization against the callback URL of this service.
func (srv *authService) StartOAuth(ctx context.Context, input usecase.StartOAuthInput) (*usecase.BeginAuthorizationOutput, error) {
	return srv.initiator.Begin(ctx, usecase.BeginAuthorizationInput{
		Provider:    input.Provider,
		Flow:        input.Flow,
		RedirectURI: srv.redirectURI,
	})
}

// FinishOAuth completes the callback. Storage failures while resolving the
// account abort the flow as exchange_failed; handle exhaustion keeps its kind.
func (srv *authService) FinishOAuth(ctx context.Context, input usecase.CallbackInput) (*usecase.AuthOutput, error) {
	input.RedirectURI = srv.redirectURI

	result, err := srv.exchanger.Complete(ctx, input)
	if err != nil {
		return nil, err
	}

	account, err := srv.resolver.Resolve(ctx, result.Identity)
	if err != nil {
		return nil, asExchangeFailed(err)
	}

	session, err := srv.sessions.Issue(account, false)
	if err != nil {
		return nil, domainerrors.NewAuthError(domainerrors.KindExchangeFailed, err)
	}

	srv.log(ctx).Info("OAuth sign-in completed",
		slog.String("account_id", account.ID.String()),
		slog.String("provider", result.Identity.Provider.String()),
	)

	return &usecase.AuthOutput{Account: account, Session: session, Flow: result.Flow}, nil
}

// Login runs lockout check, password verification, ledger update and
// session issue, in that order.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	key := normalizeEmail(input.Email)

	if srv.ledger.CheckLocked(ctx, key) {
		return nil, domainerrors.ErrAccountLocked
	}

	account, err := srv.accountRepo.FindByEmail(ctx, key)
	if err != nil && !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account")
	}

	if account == nil || !account.HasPassword() || !srv.hasher.Check(input.Password, account.PasswordHash) {
		if srv.ledger.RecordFailure(ctx, key) {
			return nil, domainerrors.ErrAccountLocked
		}

		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.ledger.Reset(ctx, key)

	session, err := srv.sessions.Issue(account, input.RememberMe)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session")
	}

	srv.log(ctx).Info("Password login succeeded", slog.String("account_id", account.ID.String()))

	return &usecase.AuthOutput{Account: account, Session: session}, nil
}

// Register creates a password account with a generated handle.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	var created *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		_, err := accountRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrAccountAlreadyExists
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to find account by email")
		}

		handle, err := allocateHandle(ctx, accountRepo, handleBase(input.DisplayName, email), srv.tail)
		if err != nil {
			return err
		}

		account := &entity.Account{
			Email:        email,
			Handle:       handle,
			DisplayName:  strings.TrimSpace(input.DisplayName),
			PasswordHash: hash,
			Providers: []entity.ProviderLink{{
				Provider:       entity.ProviderTypeEmail,
				ProviderUserID: email,
			}},
		}
		if err := accountRepo.Create(ctx, account); err != nil {
			return err
		}
		created = account

		return nil
	})
	if err != nil {
		if errors.Is(err, errHandleExhausted) {
			return nil, domainerrors.ErrHandleTaken
		}

		return nil, err
	}

	session, err := srv.sessions.Issue(created, input.RememberMe)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session")
	}

	srv.log(ctx).Info("Account registered", slog.String("account_id", created.ID.String()))

	return &usecase.AuthOutput{Account: created, Session: session}, nil
}

// Providers lists configured providers only.
func (srv *authService) Providers(_ context.Context) []usecase.ProviderInfo {
	adapters := srv.providers.All()
	infos := make([]usecase.ProviderInfo, 0, len(adapters))

	for _, adapter := range adapters {
		if !adapter.Configured() {
			continue
		}
		infos = append(infos, providerInfo(adapter))
	}

	return infos
}

// ProviderStatus reports on any supported provider, configured or not.
func (srv *authService) ProviderStatus(_ context.Context, provider string) (*usecase.ProviderInfo, error) {
	adapter, err := lookupProvider(srv.providers, provider)
	if err != nil {
		return nil, domainerrors.ErrUnsupportedProvider
	}

	info := providerInfo(adapter)

	return &info, nil
}

// CurrentSession validates token and returns what it asserts.
func (srv *authService) CurrentSession(_ context.Context, token string) (*usecase.SessionInfo, error) {
	if token == "" {
		return nil, domainerrors.ErrSessionInvalid
	}

	claims, err := srv.sessions.Validate(token)
	if err != nil {
		return nil, err
	}

	info := &usecase.SessionInfo{
		AccountID: claims.SubjectID,
		Email:     claims.Email,
		Handle:    claims.Handle,
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}

	return info, nil
}

func providerInfo(adapter service.ProviderAdapter) usecase.ProviderInfo {
	return usecase.ProviderInfo{
		Provider:     adapter.Provider(),
		Configured:   adapter.Configured(),
		ResponseMode: adapter.ResponseMode(),
	}
}
