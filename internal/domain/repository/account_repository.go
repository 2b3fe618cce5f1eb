// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"voiceauth/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches a lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines persistence for accounts and their provider links.
type AccountRepository interface {
	// FindByID retrieves an account with its provider links.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an account by normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByHandle retrieves an account by handle.
	FindByHandle(ctx context.Context, handle string) (*entity.Account, error)

	// Create persists a new account together with its provider links.
	// A uniqueness violation on email or handle is reported as a domain error
	// and never overwrites the existing row.
	Create(ctx context.Context, account *entity.Account) error

	// LinkProvider attaches a provider identity to an existing account.
	// Linking a provider that is already linked is a no-op.
	LinkProvider(ctx context.Context, link *entity.ProviderLink) error
}
