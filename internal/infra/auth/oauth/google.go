package oauth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"voiceauth/config"
	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/service"
	"voiceauth/internal/errors"

	"golang.org/x/oauth2"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
	googleScopes      = "openid email profile"
)

// googleProvider signs in through Google and reads the profile from the userinfo endpoint.
type googleProvider struct {
	flow        codeFlow
	userInfoURL string
	configured  bool
}

// NewGoogleProvider builds the Google adapter from config.
func NewGoogleProvider(cfg config.GoogleOAuthConfig, logger *slog.Logger) service.ProviderAdapter {
	return &googleProvider{
		flow: newCodeFlow(entity.ProviderTypeGoogle, oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       splitScopes(cfg.Scopes, googleScopes),
			Endpoint: oauth2.Endpoint{
				AuthURL:  firstNonEmpty(cfg.AuthURL, googleAuthURL),
				TokenURL: firstNonEmpty(cfg.TokenURL, googleTokenURL),
			},
		}, logger),
		userInfoURL: firstNonEmpty(cfg.UserInfoURL, googleUserInfoURL),
		configured:  cfg.ClientID != "" && cfg.ClientSecret != "",
	}
}

func (p *googleProvider) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func (p *googleProvider) Configured() bool {
	return p.configured
}

func (p *googleProvider) ResponseMode() service.ResponseMode {
	return service.ResponseModeQuery
}

func (p *googleProvider) AuthorizationURL(req service.AuthorizationRequest) string {
	return p.flow.authorizationURL(req)
}

func (p *googleProvider) Exchange(ctx context.Context, code, verifier, redirectURI string) (*service.ProviderTokens, error) {
	return p.flow.exchange(ctx, code, verifier, redirectURI, "")
}

type googleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// FetchProfile calls the userinfo endpoint with the access token.
func (p *googleProvider) FetchProfile(ctx context.Context, tokens *service.ProviderTokens, _ service.CallbackProfileHint) (*entity.ExternalIdentity, error) {
	if tokens == nil || tokens.AccessToken == "" {
		return nil, domainerrors.NewAuthError(domainerrors.KindExchangeFailed, errors.New("google returned no access token"))
	}

	var info googleUserInfo
	err := p.flow.getJSON(ctx, p.userInfoURL, tokens.AccessToken, func(body io.Reader) error {
		return json.NewDecoder(body).Decode(&info)
	})
	if err != nil {
		return nil, domainerrors.NewAuthError(domainerrors.KindExchangeFailed, err)
	}

	if info.Sub == "" {
		return nil, domainerrors.NewAuthError(domainerrors.KindExchangeFailed, errors.New("google userinfo has no subject"))
	}

	if info.Email != "" && !info.EmailVerified {
		return nil, domainerrors.NewAuthError(domainerrors.KindProfileIncomplete, errors.New("google email not verified"))
	}

	return &entity.ExternalIdentity{
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: info.Sub,
		Email:          info.Email,
		EmailVerified:  info.EmailVerified,
		DisplayName:    info.Name,
		AvatarURL:      info.Picture,
	}, nil
}
