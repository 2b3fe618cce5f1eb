package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"voiceauth/internal/domain/entity"
)

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	SubjectID uuid.UUID `json:"-"`
	Email     string    `json:"email"`
	Handle    string    `json:"handle"`
	jwt.RegisteredClaims
}

// SessionIssuer mints and verifies signed session tokens.
type SessionIssuer interface {
	// Issue signs a session for account. rememberMe selects the long lifetime.
	Issue(account *entity.Account, rememberMe bool) (*entity.Session, error)

	// Validate verifies signature and expiry and returns the claims.
	Validate(token string) (*SessionClaims, error)
}
