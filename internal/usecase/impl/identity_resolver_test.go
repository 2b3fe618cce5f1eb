package impl

import (
	"context"
	"testing"

	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/repository"
	mockRepo "voiceauth/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type resolverFixtures struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	accountRepo *mockRepo.MockAccountRepository
	resolver    *identityResolver
}

func newResolverFixtures(t *testing.T, tails ...string) *resolverFixtures {
	t.Helper()

	f := &resolverFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
	}
	if len(tails) == 0 {
		tails = []string{"0042"}
	}
	f.resolver = newIdentityResolver(f.txManager, newDiscardLogger(), sequenceTail(tails...))

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Maybe()
	f.factory.EXPECT().NewAccountRepository().Return(f.accountRepo).Maybe()

	return f
}

func googleIdentity() *entity.ExternalIdentity {
	return &entity.ExternalIdentity{
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: "g-123",
		Email:          " Ada@Example.com ",
		EmailVerified:  true,
		DisplayName:    "Ada Lovelace",
		AvatarURL:      "https://example.com/ada.png",
	}
}

func TestIdentityResolver_CreatesAccount(t *testing.T) {
	f := newResolverFixtures(t)
	ctx := context.Background()

	f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound)
	f.accountRepo.EXPECT().FindByHandle(ctx, "ada_lovelace0042").Return(nil, repository.ErrAccountNotFound)
	f.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		RunAndReturn(func(_ context.Context, account *entity.Account) error {
			account.ID = uuid.New()

			return nil
		})

	account, err := f.resolver.Resolve(ctx, googleIdentity())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, "ada@example.com", account.Email)
	assert.Equal(t, "ada_lovelace0042", account.Handle)
	assert.Equal(t, "Ada Lovelace", account.DisplayName)
	assert.Equal(t, "https://example.com/ada.png", account.AvatarURL)
	assert.Empty(t, account.PasswordHash)
	require.Len(t, account.Providers, 1)
	assert.Equal(t, entity.ProviderTypeGoogle, account.Providers[0].Provider)
	assert.Equal(t, "g-123", account.Providers[0].ProviderUserID)
}

func TestIdentityResolver_LinksExistingAccount(t *testing.T) {
	f := newResolverFixtures(t)
	ctx := context.Background()

	existing := &entity.Account{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		Handle:       "ada1815",
		PasswordHash: "$2a$12$hash",
		Providers:    []entity.ProviderLink{{Provider: entity.ProviderTypeEmail, ProviderUserID: "ada@example.com"}},
	}

	f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(existing, nil)
	f.accountRepo.EXPECT().
		LinkProvider(ctx, mock.MatchedBy(func(link *entity.ProviderLink) bool {
			return link.AccountID == existing.ID && link.Provider == entity.ProviderTypeGoogle && link.ProviderUserID == "g-123"
		})).
		Return(nil)

	account, err := f.resolver.Resolve(ctx, googleIdentity())

	require.NoError(t, err)
	assert.Equal(t, existing.ID, account.ID)
	assert.Equal(t, "ada1815", account.Handle)
	assert.True(t, account.HasProvider(entity.ProviderTypeEmail))
	assert.True(t, account.HasProvider(entity.ProviderTypeGoogle))
}

func TestIdentityResolver_AlreadyLinkedIsIdempotent(t *testing.T) {
	f := newResolverFixtures(t)
	ctx := context.Background()

	existing := &entity.Account{
		ID:        uuid.New(),
		Email:     "ada@example.com",
		Handle:    "ada1815",
		Providers: []entity.ProviderLink{{Provider: entity.ProviderTypeGoogle, ProviderUserID: "g-123"}},
	}
	f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(existing, nil).Twice()

	first, err := f.resolver.Resolve(ctx, googleIdentity())
	require.NoError(t, err)
	second, err := f.resolver.Resolve(ctx, googleIdentity())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, second.Providers, 1)
	f.accountRepo.AssertNotCalled(t, "LinkProvider", mock.Anything, mock.Anything)
	f.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIdentityResolver_HandleCollisionRetriesTail(t *testing.T) {
	f := newResolverFixtures(t, "0001", "0002")
	ctx := context.Background()

	f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound)
	f.accountRepo.EXPECT().FindByHandle(ctx, "ada_lovelace0001").Return(&entity.Account{}, nil)
	f.accountRepo.EXPECT().FindByHandle(ctx, "ada_lovelace0002").Return(nil, repository.ErrAccountNotFound)
	f.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	account, err := f.resolver.Resolve(ctx, googleIdentity())

	require.NoError(t, err)
	assert.Equal(t, "ada_lovelace0002", account.Handle)
}

func TestIdentityResolver_HandleExhausted(t *testing.T) {
	f := newResolverFixtures(t)
	ctx := context.Background()

	f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound)
	f.accountRepo.EXPECT().FindByHandle(ctx, "ada_lovelace0042").Return(&entity.Account{}, nil).Times(maxHandleAttempts)

	account, err := f.resolver.Resolve(ctx, googleIdentity())

	require.Error(t, err)
	assert.Nil(t, account)
	kind, ok := domainerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindHandleExhausted, kind)
	f.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIdentityResolver_LostCreationRaceLinksWinner(t *testing.T) {
	f := newResolverFixtures(t)
	ctx := context.Background()

	winner := &entity.Account{ID: uuid.New(), Email: "ada@example.com", Handle: "ada_lovelace7777"}

	f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrAccountNotFound).Once()
	f.accountRepo.EXPECT().FindByHandle(ctx, "ada_lovelace0042").Return(nil, repository.ErrAccountNotFound).Once()
	f.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(domainerrors.ErrAccountAlreadyExists).Once()
	f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(winner, nil).Once()
	f.accountRepo.EXPECT().LinkProvider(ctx, mock.AnythingOfType("*entity.ProviderLink")).Return(nil).Once()

	account, err := f.resolver.Resolve(ctx, googleIdentity())

	require.NoError(t, err)
	assert.Equal(t, winner.ID, account.ID)
	assert.True(t, account.HasProvider(entity.ProviderTypeGoogle))
}

func TestIdentityResolver_StorageFailure(t *testing.T) {
	f := newResolverFixtures(t)
	ctx := context.Background()

	f.accountRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, assert.AnError).Once()

	account, err := f.resolver.Resolve(ctx, googleIdentity())

	require.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, account)
}

func TestIdentityResolver_MissingEmail(t *testing.T) {
	f := newResolverFixtures(t)
	identity := googleIdentity()
	identity.Email = "  "

	_, err := f.resolver.Resolve(context.Background(), identity)

	kind, ok := domainerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindProfileIncomplete, kind)
}
