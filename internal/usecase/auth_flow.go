// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"voiceauth/internal/domain/entity"
)

// ChallengeStore mints and redeems single-use PKCE challenges.
type ChallengeStore interface {
	// Create generates a fresh verifier, challenge and state for provider and stores them.
	Create(ctx context.Context, provider entity.ProviderType, flow entity.Flow) (*entity.Challenge, error)

	// Consume redeems state once. Unknown, replayed and expired states all
	// return repository.ErrChallengeNotFound.
	Consume(ctx context.Context, state string) (*entity.Challenge, error)

	// TTL is how long a challenge stays redeemable.
	TTL() time.Duration
}

// --- Authorization ---

// BeginAuthorizationInput starts an OAuth flow.
type BeginAuthorizationInput struct {
	Provider    string
	Flow        entity.Flow
	RedirectURI string
}

// BeginAuthorizationOutput carries the URL the user agent must visit.
type BeginAuthorizationOutput struct {
	AuthorizationURL string
	State            string
	ExpiresAt        time.Time
}

// AuthorizationInitiator builds provider authorization URLs backed by a stored challenge.
type AuthorizationInitiator interface {
	Begin(ctx context.Context, input BeginAuthorizationInput) (*BeginAuthorizationOutput, error)
}

// --- Callback ---

// CallbackInput is everything the provider sent back to the callback.
type CallbackInput struct {
	Code             string
	State            string
	Error            string
	ErrorDescription string
	// User is the raw "user" form field some providers post on first sign-in.
	User        string
	RedirectURI string
}

// CallbackOutput is a verified external identity plus the flow that started it.
type CallbackOutput struct {
	Identity *entity.ExternalIdentity
	Flow     entity.Flow
}

// CallbackExchanger turns a provider callback into a verified external identity.
type CallbackExchanger interface {
	Complete(ctx context.Context, input CallbackInput) (*CallbackOutput, error)
}

// IdentityResolver maps an external identity onto an internal account,
// creating or linking as needed.
type IdentityResolver interface {
	Resolve(ctx context.Context, identity *entity.ExternalIdentity) (*entity.Account, error)
}

// LockoutLedger guards password login against brute force. Storage errors
// never lock anyone out.
type LockoutLedger interface {
	// CheckLocked reports whether key is currently locked.
	CheckLocked(ctx context.Context, key string) bool

	// RecordFailure counts one failed attempt and reports whether it caused a lock.
	RecordFailure(ctx context.Context, key string) (becameLocked bool)

	// Reset clears the record after a verified successful login.
	Reset(ctx context.Context, key string)
}
