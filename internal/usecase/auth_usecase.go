package usecase

import (
	"context"
	"time"

	"voiceauth/internal/domain/entity"
	"voiceauth/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// StartOAuthInput asks to begin an OAuth sign-in.
type StartOAuthInput struct {
	Provider string
	Flow     entity.Flow
}

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// RegisterInput defines the data required to register with a password.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	RememberMe  bool
}

// --- Output DTOs ---

// AuthOutput is a signed-in account and its session.
type AuthOutput struct {
	Account *entity.Account
	Session *entity.Session
	Flow    entity.Flow
}

// ProviderInfo describes one upstream provider for clients.
type ProviderInfo struct {
	Provider     entity.ProviderType
	Configured   bool
	ResponseMode service.ResponseMode
}

// SessionInfo is the verified content of a session token.
type SessionInfo struct {
	AccountID uuid.UUID
	Email     string
	Handle    string
	ExpiresAt time.Time
}

// AuthUsecase is what the delivery layer drives for both sign-in flows.
type AuthUsecase interface {
	// StartOAuth validates the provider and returns the authorization URL.
	StartOAuth(ctx context.Context, input StartOAuthInput) (*BeginAuthorizationOutput, error)

	// FinishOAuth completes the callback, resolves the account and issues a session.
	// OAuth sessions use the default lifetime.
	FinishOAuth(ctx context.Context, input CallbackInput) (*AuthOutput, error)

	// Login verifies a password under lockout protection and issues a session.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// Register creates a password account and issues a session.
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)

	// Providers lists the configured providers.
	Providers(ctx context.Context) []ProviderInfo

	// ProviderStatus reports on one supported provider.
	ProviderStatus(ctx context.Context, provider string) (*ProviderInfo, error)

	// CurrentSession validates a session token.
	CurrentSession(ctx context.Context, token string) (*SessionInfo, error)
}
