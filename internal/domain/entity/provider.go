// Package entity contains the core business objects of the authentication core,
// each representing a unique, identifiable concept within the domain.
package entity

import "slices"

// ProviderType identifies where a credential comes from.
type ProviderType string

const (
	// ProviderTypeEmail is the first-party email/password credential.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle is the OIDC-style upstream provider.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeApple is the upstream provider that requires a signed client assertion.
	ProviderTypeApple ProviderType = "apple"
)

// OAuthProviders lists the upstream providers in display order.
var OAuthProviders = []ProviderType{ProviderTypeGoogle, ProviderTypeApple}

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsOAuth reports whether p is one of the supported upstream providers.
func (p ProviderType) IsOAuth() bool {
	return slices.Contains(OAuthProviders, p)
}

// ParseOAuthProvider converts a path segment into a supported upstream provider.
func ParseOAuthProvider(s string) (ProviderType, bool) {
	p := ProviderType(s)
	if !p.IsOAuth() {
		return "", false
	}

	return p, true
}
