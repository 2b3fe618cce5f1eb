package oauth

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"voiceauth/config"
	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/service"
	"voiceauth/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

const (
	appleAuthURL  = "https://appleid.apple.com/auth/authorize"
	appleTokenURL = "https://appleid.apple.com/auth/token"
	appleAudience = "https://appleid.apple.com"
	appleScopes   = "name email"

	clientAssertionTTL = time.Hour
)

// appleProvider signs in through Apple. The client secret is a short-lived
// ES256 assertion minted per exchange, and the profile comes from the id_token.
type appleProvider struct {
	flow     codeFlow
	clientID string
	teamID   string
	keyID    string
	audience string
	key      *ecdsa.PrivateKey
	now      func() time.Time
}

// NewAppleProvider builds the Apple adapter. A configured but unreadable
// signing key is a startup error; a missing key leaves the provider unconfigured.
func NewAppleProvider(cfg config.AppleOAuthConfig, logger *slog.Logger) (service.ProviderAdapter, error) {
	return newAppleProvider(cfg, logger, time.Now)
}

func newAppleProvider(cfg config.AppleOAuthConfig, logger *slog.Logger, now func() time.Time) (*appleProvider, error) {
	key, err := loadAppleKey(cfg)
	if err != nil {
		return nil, err
	}

	return &appleProvider{
		flow: newCodeFlow(entity.ProviderTypeApple, oauth2.Config{
			ClientID: cfg.ClientID,
			Scopes:   splitScopes(cfg.Scopes, appleScopes),
			Endpoint: oauth2.Endpoint{
				AuthURL:  firstNonEmpty(cfg.AuthURL, appleAuthURL),
				TokenURL: firstNonEmpty(cfg.TokenURL, appleTokenURL),
			},
		}, logger, oauth2.SetAuthURLParam("response_mode", string(service.ResponseModeFormPost))),
		clientID: cfg.ClientID,
		teamID:   cfg.TeamID,
		keyID:    cfg.KeyID,
		audience: firstNonEmpty(cfg.Audience, appleAudience),
		key:      key,
		now:      now,
	}, nil
}

func loadAppleKey(cfg config.AppleOAuthConfig) (*ecdsa.PrivateKey, error) {
	pemData := cfg.PrivateKey
	if pemData == "" && cfg.PrivateKeyPath != "" {
		raw, err := os.ReadFile(cfg.PrivateKeyPath)
		if err != nil {
			return nil, errors.Wrap(err, "read apple private key")
		}
		pemData = string(raw)
	}
	if pemData == "" {
		return nil, nil
	}

	// Keys passed through the environment usually arrive with escaped newlines.
	pemData = strings.ReplaceAll(pemData, `\n`, "\n")

	key, err := jwt.ParseECPrivateKeyFromPEM([]byte(pemData))
	if err != nil {
		return nil, errors.Wrap(err, "parse apple private key")
	}

	return key, nil
}

func (p *appleProvider) Provider() entity.ProviderType {
	return entity.ProviderTypeApple
}

func (p *appleProvider) Configured() bool {
	return p.clientID != "" && p.teamID != "" && p.keyID != "" && p.key != nil
}

func (p *appleProvider) ResponseMode() service.ResponseMode {
	return service.ResponseModeFormPost
}

func (p *appleProvider) AuthorizationURL(req service.AuthorizationRequest) string {
	return p.flow.authorizationURL(req)
}

func (p *appleProvider) Exchange(ctx context.Context, code, verifier, redirectURI string) (*service.ProviderTokens, error) {
	assertion, err := p.clientAssertion()
	if err != nil {
		return nil, domainerrors.NewAuthError(domainerrors.KindExchangeFailed, err)
	}

	return p.flow.exchange(ctx, code, verifier, redirectURI, assertion)
}

// clientAssertion mints the client_secret expected by the token endpoint.
func (p *appleProvider) clientAssertion() (string, error) {
	if p.key == nil {
		return "", errors.New("apple signing key is not configured")
	}

	issuedAt := p.now().UTC().Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.RegisteredClaims{
		Issuer:    p.teamID,
		Subject:   p.clientID,
		Audience:  jwt.ClaimStrings{p.audience},
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(clientAssertionTTL)),
	})
	token.Header["kid"] = p.keyID

	signed, err := token.SignedString(p.key)
	if err != nil {
		return "", errors.Wrap(err, "sign apple client assertion")
	}

	return signed, nil
}

type appleIDClaims struct {
	Email         string `json:"email"`
	EmailVerified any    `json:"email_verified"`
	jwt.RegisteredClaims
}

// appleUser is the JSON posted in the "user" form field on first authorization.
type appleUser struct {
	Name struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"name"`
}

// FetchProfile decodes the id_token claims without verifying the signature:
// the token came straight from the token endpoint over TLS.
func (p *appleProvider) FetchProfile(_ context.Context, tokens *service.ProviderTokens, hint service.CallbackProfileHint) (*entity.ExternalIdentity, error) {
	if tokens == nil || tokens.IDToken == "" {
		return nil, domainerrors.NewAuthError(domainerrors.KindExchangeFailed, errors.New("apple returned no id_token"))
	}

	claims := &appleIDClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokens.IDToken, claims); err != nil {
		return nil, domainerrors.NewAuthError(domainerrors.KindExchangeFailed, errors.Wrap(err, "decode apple id_token"))
	}

	if claims.Subject == "" {
		return nil, domainerrors.NewAuthError(domainerrors.KindExchangeFailed, errors.New("apple id_token has no subject"))
	}

	// The user form field is posted by the user agent; only the name is taken from it.
	if claims.Email == "" {
		return nil, domainerrors.NewAuthError(domainerrors.KindProfileIncomplete, errors.New("apple id_token has no email"))
	}

	identity := &entity.ExternalIdentity{
		Provider:       entity.ProviderTypeApple,
		ProviderUserID: claims.Subject,
		Email:          claims.Email,
		EmailVerified:  parseBoolClaim(claims.EmailVerified),
	}
	if !identity.EmailVerified {
		return nil, domainerrors.NewAuthError(domainerrors.KindProfileIncomplete, errors.New("apple email not verified"))
	}

	if hint.RawUser != "" {
		var user appleUser
		if err := json.Unmarshal([]byte(hint.RawUser), &user); err == nil {
			identity.DisplayName = strings.TrimSpace(user.Name.FirstName + " " + user.Name.LastName)
		}
	}

	return identity, nil
}

// parseBoolClaim accepts both JSON booleans and the "true"/"false" strings Apple sends.
func parseBoolClaim(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, _ := strconv.ParseBool(b)

		return parsed
	default:
		return false
	}
}
