package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"voiceauth/config"
	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/service"
	"voiceauth/internal/errors"
)

// jwtSessionIssuer is a concrete implementation of the SessionIssuer interface using HS256 JWTs.
type jwtSessionIssuer struct {
	secret        []byte
	ttl           time.Duration // Default session lifetime.
	rememberMeTTL time.Duration // Lifetime when the client asked to be remembered.
	issuer        string
	now           func() time.Time
}

// NewSessionIssuer is the constructor for jwtSessionIssuer.
func NewSessionIssuer(cfg *config.Config) (service.SessionIssuer, error) {
	return newSessionIssuer(cfg, time.Now)
}

func newSessionIssuer(cfg *config.Config, now func() time.Time) (*jwtSessionIssuer, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtSessionIssuer{
		secret:        []byte(cfg.SecretKey.Session),
		ttl:           cfg.Session.TTL,
		rememberMeTTL: cfg.Session.RememberMeTTL,
		issuer:        cfg.Env.ServiceName,
		now:           now,
	}, nil
}

// Issue signs a session token for account.
func (s *jwtSessionIssuer) Issue(account *entity.Account, rememberMe bool) (*entity.Session, error) {
	ttl := s.ttl
	if rememberMe {
		ttl = s.rememberMeTTL
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(ttl)

	claims := &service.SessionClaims{
		Email:  account.Email,
		Handle: account.Handle,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign session token")
	}

	return &entity.Session{
		Token:     token,
		SubjectID: account.ID,
		Email:     account.Email,
		Handle:    account.Handle,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate checks signature, algorithm and expiry of a session token.
func (s *jwtSessionIssuer) Validate(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage(err.Error())
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("malformed subject")
	}
	claims.SubjectID = subjectID

	return claims, nil
}
