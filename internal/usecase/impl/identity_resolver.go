package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "voiceauth/internal/delivery/context"
	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/repository"
	"voiceauth/internal/errors"
	"voiceauth/internal/usecase"

	"go.uber.org/fx"
)

// maxResolveAttempts bounds retries after losing a creation race.
const maxResolveAttempts = 2

type identityResolver struct {
	txManager repository.TransactionManager
	tail      handleTail
	logger    *slog.Logger
}

// IdentityResolverParams holds dependencies for the identity resolver, injected by Fx.
type IdentityResolverParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewIdentityResolver is the constructor for identityResolver.
func NewIdentityResolver(params IdentityResolverParams) usecase.IdentityResolver {
	return newIdentityResolver(params.TxManager, params.Logger, randomHandleTail)
}

func newIdentityResolver(txManager repository.TransactionManager, logger *slog.Logger, tail handleTail) *identityResolver {
	return &identityResolver{txManager: txManager, tail: tail, logger: logger}
}

func (r *identityResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Resolve finds the account owning identity's email, linking the provider if
// needed, or creates a new account with a fresh handle. A concurrent creation
// of the same email makes the second attempt find and link instead.
func (r *identityResolver) Resolve(ctx context.Context, identity *entity.ExternalIdentity) (*entity.Account, error) {
	email := normalizeEmail(identity.Email)
	if email == "" {
		return nil, domainerrors.NewAuthError(domainerrors.KindProfileIncomplete, nil)
	}

	var lastErr error
	for range maxResolveAttempts {
		account, err := r.resolveOnce(ctx, email, identity)
		if err == nil {
			return account, nil
		}
		if !isCreationConflict(err) {
			return nil, err
		}

		r.log(ctx).Info("Account creation raced, retrying", slog.Any("error", err))
		lastErr = err
	}

	return nil, lastErr
}

func (r *identityResolver) resolveOnce(ctx context.Context, email string, identity *entity.ExternalIdentity) (*entity.Account, error) {
	var resolved *entity.Account

	err := r.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByEmail(ctx, email)
		switch {
		case err == nil:
			if !account.HasProvider(identity.Provider) {
				link := &entity.ProviderLink{
					AccountID:      account.ID,
					Provider:       identity.Provider,
					ProviderUserID: identity.ProviderUserID,
				}
				if err := accountRepo.LinkProvider(ctx, link); err != nil {
					return errors.Wrap(err, "failed to link provider")
				}
				account.Providers = append(account.Providers, *link)
				r.log(ctx).Info("Linked provider to existing account",
					slog.String("account_id", account.ID.String()),
					slog.String("provider", identity.Provider.String()),
				)
			}
			resolved = account

			return nil
		case errors.Is(err, repository.ErrAccountNotFound):
		default:
			return errors.Wrap(err, "failed to find account by email")
		}

		handle, err := allocateHandle(ctx, accountRepo, handleBase(identity.DisplayName, email), r.tail)
		if err != nil {
			return err
		}

		account = &entity.Account{
			Email:       email,
			Handle:      handle,
			DisplayName: identity.DisplayName,
			AvatarURL:   identity.AvatarURL,
			Providers: []entity.ProviderLink{{
				Provider:       identity.Provider,
				ProviderUserID: identity.ProviderUserID,
			}},
		}
		if err := accountRepo.Create(ctx, account); err != nil {
			return err
		}

		r.log(ctx).Info("Created account from provider identity",
			slog.String("account_id", account.ID.String()),
			slog.String("provider", identity.Provider.String()),
		)
		resolved = account

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resolved, nil
}

func isCreationConflict(err error) bool {
	return errors.Is(err, domainerrors.ErrAccountAlreadyExists) || errors.Is(err, domainerrors.ErrHandleTaken)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
