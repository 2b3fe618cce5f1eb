package entity

// ExternalIdentity is the normalized profile returned by an upstream provider.
// It only lives for the duration of one callback and is never persisted as-is.
type ExternalIdentity struct {
	Provider       ProviderType
	ProviderUserID string
	Email          string
	EmailVerified  bool
	DisplayName    string
	AvatarURL      string // Empty when the provider does not expose a picture.
}
