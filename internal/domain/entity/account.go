package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Account is the internal identity a session is issued for.
// Email is unique across accounts, and so is Handle.
type Account struct {
	ID           uuid.UUID      // Global identifier, also the session subject.
	Email        string         // Normalized (trimmed, lower-cased) email address.
	Handle       string         // User-facing unique username.
	DisplayName  string         // Free-form name shown in the UI.
	AvatarURL    string         // Optional profile picture.
	PasswordHash string         // bcrypt hash; empty for accounts that only sign in through a provider.
	Providers    []ProviderLink // Linked upstream identities. Linkage is additive only.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProviderLink ties an account to an identity at an upstream provider.
type ProviderLink struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	Provider       ProviderType
	ProviderUserID string // The provider's stable subject identifier.
	CreatedAt      time.Time
}

// HasProvider reports whether the account is already linked to provider.
func (a *Account) HasProvider(provider ProviderType) bool {
	return slices.ContainsFunc(a.Providers, func(link ProviderLink) bool {
		return link.Provider == provider
	})
}

// HasPassword reports whether the account can sign in with a password.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != ""
}
