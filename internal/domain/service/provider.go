package service

import (
	"context"
	"time"

	"voiceauth/internal/domain/entity"
)

// ResponseMode is how a provider delivers the callback.
type ResponseMode string

const (
	ResponseModeQuery    ResponseMode = "query"
	ResponseModeFormPost ResponseMode = "form_post"
)

// AuthorizationRequest is the input for building a provider authorization URL.
type AuthorizationRequest struct {
	State         string
	CodeChallenge string
	RedirectURI   string
}

// ProviderTokens is the result of a successful code exchange.
type ProviderTokens struct {
	AccessToken string
	IDToken     string
	Expiry      time.Time
}

// CallbackProfileHint carries provider data posted to the callback itself
// (Apple sends the user's name only on the first authorization).
type CallbackProfileHint struct {
	RawUser string
}

// ProviderAdapter hides the differences between upstream identity providers.
type ProviderAdapter interface {
	// Provider returns the provider this adapter serves.
	Provider() entity.ProviderType

	// Configured reports whether credentials are present.
	Configured() bool

	// ResponseMode returns how the provider returns to the callback.
	ResponseMode() ResponseMode

	// AuthorizationURL builds the URL the user agent is sent to.
	AuthorizationURL(req AuthorizationRequest) string

	// Exchange redeems an authorization code with its PKCE verifier.
	Exchange(ctx context.Context, code, verifier, redirectURI string) (*ProviderTokens, error)

	// FetchProfile turns the exchanged tokens into a normalized identity.
	FetchProfile(ctx context.Context, tokens *ProviderTokens, hint CallbackProfileHint) (*entity.ExternalIdentity, error)
}

// ProviderRegistry is the closed set of provider adapters known to the process.
type ProviderRegistry interface {
	// Lookup returns the adapter for provider; ok is false for unsupported providers.
	Lookup(provider entity.ProviderType) (adapter ProviderAdapter, ok bool)

	// All returns every supported adapter in display order.
	All() []ProviderAdapter
}
