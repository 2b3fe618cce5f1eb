package impl

import (
	"context"
	"testing"
	"time"

	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/repository"
	"voiceauth/internal/domain/service"
	"voiceauth/internal/infra/lockout"
	mockRepo "voiceauth/internal/mocks/repository"
	mockService "voiceauth/internal/mocks/service"
	mockUsecase "voiceauth/internal/mocks/usecase"
	"voiceauth/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	initiator   *mockUsecase.MockAuthorizationInitiator
	exchanger   *mockUsecase.MockCallbackExchanger
	resolver    *mockUsecase.MockIdentityResolver
	ledger      usecase.LockoutLedger
	registry    *mockService.MockProviderRegistry
	sessions    *mockService.MockSessionIssuer
	hasher      *mockService.MockPasswordHasher
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	accountRepo *mockRepo.MockAccountRepository
	clock       *fakeClock
	service     *authService
}

func newAuthServiceFixtures(t *testing.T) *authServiceFixtures {
	t.Helper()

	clock := newFakeClock()
	f := &authServiceFixtures{
		initiator:   mockUsecase.NewMockAuthorizationInitiator(t),
		exchanger:   mockUsecase.NewMockCallbackExchanger(t),
		resolver:    mockUsecase.NewMockIdentityResolver(t),
		ledger:      newLockoutLedger(lockout.NewMemoryStore(clock.Now), testLockoutConfig, newDiscardLogger(), clock.Now),
		registry:    mockService.NewMockProviderRegistry(t),
		sessions:    mockService.NewMockSessionIssuer(t),
		hasher:      mockService.NewMockPasswordHasher(t),
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		clock:       clock,
	}

	uc := NewAuthService(AuthServiceParams{
		Initiator:   f.initiator,
		Exchanger:   f.exchanger,
		Resolver:    f.resolver,
		Ledger:      f.ledger,
		Providers:   f.registry,
		Sessions:    f.sessions,
		Hasher:      f.hasher,
		TxManager:   f.txManager,
		AccountRepo: f.accountRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	f.service = uc.(*authService)
	f.service.tail = sequenceTail("0042")

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Maybe()
	f.factory.EXPECT().NewAccountRepository().Return(f.accountRepo).Maybe()

	return f
}

func sessionFor(account *entity.Account) *entity.Session {
	return &entity.Session{
		Token:     "signed-token",
		SubjectID: account.ID,
		Email:     account.Email,
		Handle:    account.Handle,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func passwordAccount() *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		Handle:       "ada1815",
		PasswordHash: "$2a$12$hash",
	}
}

func TestAuthService_StartOAuthUsesCallbackURL(t *testing.T) {
	f := newAuthServiceFixtures(t)
	ctx := context.Background()
	want := &usecase.BeginAuthorizationOutput{AuthorizationURL: "https://provider.example.com", State: "s"}

	f.initiator.EXPECT().
		Begin(ctx, usecase.BeginAuthorizationInput{
			Provider:    "google",
			Flow:        entity.FlowMobile,
			RedirectURI: "https://api.example.com/auth/oauth/callback",
		}).
		Return(want, nil)

	out, err := f.service.StartOAuth(ctx, usecase.StartOAuthInput{Provider: "google", Flow: entity.FlowMobile})

	require.NoError(t, err)
	assert.Same(t, want, out)
}

func TestAuthService_FinishOAuth(t *testing.T) {
	f := newAuthServiceFixtures(t)
	ctx := context.Background()
	identity := &entity.ExternalIdentity{Provider: entity.ProviderTypeGoogle, ProviderUserID: "g-1", Email: "ada@example.com"}
	account := &entity.Account{ID: uuid.New(), Email: "ada@example.com", Handle: "ada0042"}
	session := sessionFor(account)

	f.exchanger.EXPECT().
		Complete(ctx, mock.MatchedBy(func(in usecase.CallbackInput) bool {
			return in.Code == "code" && in.State == "state" && in.RedirectURI == "https://api.example.com/auth/oauth/callback"
		})).
		Return(&usecase.CallbackOutput{Identity: identity, Flow: entity.FlowMobile}, nil)
	f.resolver.EXPECT().Resolve(ctx, identity).Return(account, nil)
	f.sessions.EXPECT().Issue(account, false).Return(session, nil)

	out, err := f.service.FinishOAuth(ctx, usecase.CallbackInput{Code: "code", State: "state"})

	require.NoError(t, err)
	assert.Same(t, account, out.Account)
	assert.Same(t, session, out.Session)
	assert.Equal(t, entity.FlowMobile, out.Flow)
}

func TestAuthService_FinishOAuthErrors(t *testing.T) {
	ctx := context.Background()
	identity := &entity.ExternalIdentity{Provider: entity.ProviderTypeGoogle, Email: "ada@example.com"}

	t.Run("exchanger kind passes through", func(t *testing.T) {
		f := newAuthServiceFixtures(t)
		f.exchanger.EXPECT().Complete(ctx, mock.Anything).Return(nil, domainerrors.NewAuthError(domainerrors.KindInvalidState, nil))

		_, err := f.service.FinishOAuth(ctx, usecase.CallbackInput{})

		kind, _ := domainerrors.KindOf(err)
		assert.Equal(t, domainerrors.KindInvalidState, kind)
	})

	t.Run("resolver storage failure becomes exchange_failed", func(t *testing.T) {
		f := newAuthServiceFixtures(t)
		f.exchanger.EXPECT().Complete(ctx, mock.Anything).Return(&usecase.CallbackOutput{Identity: identity}, nil)
		f.resolver.EXPECT().Resolve(ctx, identity).Return(nil, assert.AnError)

		_, err := f.service.FinishOAuth(ctx, usecase.CallbackInput{})

		kind, _ := domainerrors.KindOf(err)
		assert.Equal(t, domainerrors.KindExchangeFailed, kind)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("handle exhaustion keeps its kind", func(t *testing.T) {
		f := newAuthServiceFixtures(t)
		f.exchanger.EXPECT().Complete(ctx, mock.Anything).Return(&usecase.CallbackOutput{Identity: identity}, nil)
		f.resolver.EXPECT().Resolve(ctx, identity).Return(nil, errHandleExhausted)

		_, err := f.service.FinishOAuth(ctx, usecase.CallbackInput{})

		kind, _ := domainerrors.KindOf(err)
		assert.Equal(t, domainerrors.KindHandleExhausted, kind)
	})
}

func TestAuthService_LoginSuccess(t *testing.T) {
	f := newAuthServiceFixtures(t)
	ctx := context.Background()
	account := passwordAccount()
	session := sessionFor(account)

	f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(account, nil)
	f.hasher.EXPECT().Check("correct horse", account.PasswordHash).Return(true)
	f.sessions.EXPECT().Issue(account, true).Return(session, nil)

	out, err := f.service.Login(ctx, usecase.LoginInput{Email: "  ADA@example.com", Password: "correct horse", RememberMe: true})

	require.NoError(t, err)
	assert.Same(t, session, out.Session)
	assert.Equal(t, entity.Flow(""), out.Flow)
}

func TestAuthService_LoginLockoutSequence(t *testing.T) {
	f := newAuthServiceFixtures(t)
	ctx := context.Background()
	account := passwordAccount()

	f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(account, nil)
	f.hasher.EXPECT().Check("wrong", account.PasswordHash).Return(false)

	for i := 1; i < testLockoutConfig.Threshold; i++ {
		_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials, "attempt %d", i)
	}

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrAccountLocked)

	// A correct password is not even checked while locked.
	_, err = f.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "correct horse"})
	require.ErrorIs(t, err, domainerrors.ErrAccountLocked)
	f.hasher.AssertNotCalled(t, "Check", "correct horse", mock.Anything)

	f.clock.Advance(testLockoutConfig.Duration)
	f.hasher.EXPECT().Check("correct horse", account.PasswordHash).Return(true)
	f.sessions.EXPECT().Issue(account, false).Return(sessionFor(account), nil)

	_, err = f.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.False(t, f.ledger.CheckLocked(ctx, "ada@example.com"))
}

func TestAuthService_LoginUnknownAccountCountsAsFailure(t *testing.T) {
	f := newAuthServiceFixtures(t)
	ctx := context.Background()

	f.accountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	f.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestAuthService_LoginProviderOnlyAccount(t *testing.T) {
	f := newAuthServiceFixtures(t)
	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "ada@example.com"}

	f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(account, nil)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "whatever"})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_LoginStorageFailure(t *testing.T) {
	f := newAuthServiceFixtures(t)
	ctx := context.Background()

	f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, assert.AnError)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "whatever"})

	require.ErrorIs(t, err, assert.AnError)
}

func TestAuthService_Register(t *testing.T) {
	f := newAuthServiceFixtures(t)
	ctx := context.Background()

	f.hasher.EXPECT().ValidatePasswordStrength("Str0ng!pass").Return(nil)
	f.hasher.EXPECT().Hash("Str0ng!pass").Return("$2a$12$hash", nil)
	f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound)
	f.accountRepo.EXPECT().FindByHandle(ctx, "ada_lovelace0042").Return(nil, repository.ErrAccountNotFound)
	f.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		RunAndReturn(func(_ context.Context, account *entity.Account) error {
			account.ID = uuid.New()

			return nil
		})
	f.sessions.EXPECT().
		Issue(mock.AnythingOfType("*entity.Account"), false).
		RunAndReturn(func(account *entity.Account, _ bool) (*entity.Session, error) {
			return sessionFor(account), nil
		})

	out, err := f.service.Register(ctx, usecase.RegisterInput{
		Email:       "Ada@Example.com",
		Password:    "Str0ng!pass",
		DisplayName: " Ada Lovelace ",
	})

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out.Account.Email)
	assert.Equal(t, "ada_lovelace0042", out.Account.Handle)
	assert.Equal(t, "Ada Lovelace", out.Account.DisplayName)
	assert.Equal(t, "$2a$12$hash", out.Account.PasswordHash)
	assert.True(t, out.Account.HasProvider(entity.ProviderTypeEmail))
	assert.Equal(t, out.Account.ID, out.Session.SubjectID)
}

func TestAuthService_RegisterErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("weak password", func(t *testing.T) {
		f := newAuthServiceFixtures(t)
		f.hasher.EXPECT().ValidatePasswordStrength("short").Return(domainerrors.ErrPasswordStrength)

		_, err := f.service.Register(ctx, usecase.RegisterInput{Email: "ada@example.com", Password: "short"})

		require.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
		f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})

	t.Run("email taken", func(t *testing.T) {
		f := newAuthServiceFixtures(t)
		f.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
		f.hasher.EXPECT().Hash(mock.Anything).Return("$2a$12$hash", nil)
		f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(passwordAccount(), nil)

		_, err := f.service.Register(ctx, usecase.RegisterInput{Email: "ada@example.com", Password: "Str0ng!pass"})

		require.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
	})

	t.Run("handles exhausted", func(t *testing.T) {
		f := newAuthServiceFixtures(t)
		f.hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
		f.hasher.EXPECT().Hash(mock.Anything).Return("$2a$12$hash", nil)
		f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound)
		f.accountRepo.EXPECT().FindByHandle(ctx, mock.Anything).Return(&entity.Account{}, nil).Times(maxHandleAttempts)

		_, err := f.service.Register(ctx, usecase.RegisterInput{Email: "ada@example.com", Password: "Str0ng!pass"})

		require.ErrorIs(t, err, domainerrors.ErrHandleTaken)
	})
}

func TestAuthService_Providers(t *testing.T) {
	f := newAuthServiceFixtures(t)
	google := mockService.NewMockProviderAdapter(t)
	apple := mockService.NewMockProviderAdapter(t)

	google.EXPECT().Configured().Return(true)
	google.EXPECT().Provider().Return(entity.ProviderTypeGoogle)
	google.EXPECT().ResponseMode().Return(service.ResponseModeQuery)
	apple.EXPECT().Configured().Return(false)
	f.registry.EXPECT().All().Return([]service.ProviderAdapter{google, apple})

	infos := f.service.Providers(context.Background())

	require.Len(t, infos, 1)
	assert.Equal(t, usecase.ProviderInfo{
		Provider:     entity.ProviderTypeGoogle,
		Configured:   true,
		ResponseMode: service.ResponseModeQuery,
	}, infos[0])
}

func TestAuthService_ProviderStatus(t *testing.T) {
	f := newAuthServiceFixtures(t)
	ctx := context.Background()
	apple := mockService.NewMockProviderAdapter(t)

	apple.EXPECT().Configured().Return(false)
	apple.EXPECT().Provider().Return(entity.ProviderTypeApple)
	apple.EXPECT().ResponseMode().Return(service.ResponseModeFormPost)
	f.registry.EXPECT().Lookup(entity.ProviderTypeApple).Return(apple, true)

	info, err := f.service.ProviderStatus(ctx, "apple")

	require.NoError(t, err)
	assert.False(t, info.Configured)
	assert.Equal(t, service.ResponseModeFormPost, info.ResponseMode)

	_, err = f.service.ProviderStatus(ctx, "myspace")
	require.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
}

func TestAuthService_CurrentSession(t *testing.T) {
	f := newAuthServiceFixtures(t)
	ctx := context.Background()
	accountID := uuid.New()
	expiresAt := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)

	f.sessions.EXPECT().Validate("good").Return(&service.SessionClaims{
		SubjectID: accountID,
		Email:     "ada@example.com",
		Handle:    "ada1815",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}, nil)
	f.sessions.EXPECT().Validate("tampered").Return(nil, domainerrors.ErrSessionInvalid)

	info, err := f.service.CurrentSession(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, accountID, info.AccountID)
	assert.Equal(t, "ada1815", info.Handle)
	assert.Equal(t, expiresAt, info.ExpiresAt)

	_, err = f.service.CurrentSession(ctx, "tampered")
	require.ErrorIs(t, err, domainerrors.ErrSessionInvalid)

	_, err = f.service.CurrentSession(ctx, "")
	require.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}
