// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/repository"
	"voiceauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const handleIndex = "idx_accounts_handle"

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// findOne reads from the primary so an account created by a concurrent sign-in is visible.
func (repo *accountRepository) findOne(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("Providers").
		Where(query, arg).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// FindByID retrieves an account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves an account by its normalized email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByHandle retrieves an account by its handle.
func (repo *accountRepository) FindByHandle(ctx context.Context, handle string) (*entity.Account, error) {
	return repo.findOne(ctx, "handle = ?", handle)
}

// Create inserts the account and its provider links. Conflicts never update the existing row.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate account id")
		}
		account.ID = id
	}

	accountM := fromAccountDomain(account)
	for i := range accountM.Providers {
		if accountM.Providers[i].ID == uuid.Nil {
			accountM.Providers[i].ID = uuid.New()
		}
	}

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if strings.Contains(constraintName(err), handleIndex) {
				return domainerrors.ErrHandleTaken.WrapMessage("handle already exists")
			}

			return domainerrors.ErrAccountAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	created := toAccountDomain(accountM)
	*account = *created

	return nil
}

// LinkProvider attaches a provider identity to an account. An existing link
// for the same account and provider is left untouched.
func (repo *accountRepository) LinkProvider(ctx context.Context, link *entity.ProviderLink) error {
	linkM := fromProviderLinkDomain(link)
	if linkM.ID == uuid.Nil {
		linkM.ID = uuid.New()
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account_id"}, {Name: "provider"}},
			DoNothing: true,
		}).
		Create(&linkM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("provider identity is linked to another account")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link provider")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt

	return nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	providers := make([]entity.ProviderLink, 0, len(data.Providers))
	for i := range data.Providers {
		providers = append(providers, toProviderLinkDomain(&data.Providers[i]))
	}

	return &entity.Account{
		ID:           data.ID,
		Email:        data.Email,
		Handle:       data.Handle,
		DisplayName:  data.DisplayName,
		AvatarURL:    data.AvatarURL,
		PasswordHash: data.PasswordHash,
		Providers:    providers,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	providers := make([]model.ProviderLinkModel, 0, len(data.Providers))
	for i := range data.Providers {
		link := fromProviderLinkDomain(&data.Providers[i])
		link.AccountID = data.ID
		providers = append(providers, link)
	}

	return &model.AccountModel{
		ID:           data.ID,
		Email:        data.Email,
		Handle:       data.Handle,
		DisplayName:  data.DisplayName,
		AvatarURL:    data.AvatarURL,
		PasswordHash: data.PasswordHash,
		Providers:    providers,
	}
}

func toProviderLinkDomain(data *model.ProviderLinkModel) entity.ProviderLink {
	return entity.ProviderLink{
		ID:             data.ID,
		AccountID:      data.AccountID,
		Provider:       entity.ProviderType(data.Provider),
		ProviderUserID: data.ProviderUserID,
		CreatedAt:      data.CreatedAt,
	}
}

func fromProviderLinkDomain(data *entity.ProviderLink) model.ProviderLinkModel {
	return model.ProviderLinkModel{
		ID:             data.ID,
		AccountID:      data.AccountID,
		Provider:       data.Provider.String(),
		ProviderUserID: data.ProviderUserID,
		CreatedAt:      data.CreatedAt,
	}
}
