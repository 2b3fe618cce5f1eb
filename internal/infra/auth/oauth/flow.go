// Package oauth implements the upstream identity providers on top of golang.org/x/oauth2.
package oauth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/service"
	"voiceauth/internal/errors"

	"golang.org/x/oauth2"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	// maxLoggedBody caps how much of a provider error body reaches the logs.
	maxLoggedBody = 2048
)

// codeFlow holds the authorization-code plumbing shared by every provider.
// Each request works on a copy of the template so the redirect URI and
// the client secret never leak between requests.
type codeFlow struct {
	provider   entity.ProviderType
	template   oauth2.Config
	extra      []oauth2.AuthCodeOption
	httpClient *http.Client
	logger     *slog.Logger
}

func newCodeFlow(provider entity.ProviderType, template oauth2.Config, logger *slog.Logger, extra ...oauth2.AuthCodeOption) codeFlow {
	template.Endpoint.AuthStyle = oauth2.AuthStyleInParams

	return codeFlow{
		provider:   provider,
		template:   template,
		extra:      extra,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		logger:     logger,
	}
}

func (f *codeFlow) config(redirectURI string) *oauth2.Config {
	conf := f.template
	conf.RedirectURL = redirectURI
	conf.Scopes = append([]string(nil), f.template.Scopes...)

	return &conf
}

func (f *codeFlow) clientContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, f.httpClient)
}

func (f *codeFlow) authorizationURL(req service.AuthorizationRequest) string {
	opts := make([]oauth2.AuthCodeOption, 0, len(f.extra)+2)
	opts = append(opts,
		oauth2.SetAuthURLParam("code_challenge", req.CodeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", entity.ChallengeMethodS256),
	)
	opts = append(opts, f.extra...)

	return f.config(req.RedirectURI).AuthCodeURL(req.State, opts...)
}

// exchange redeems code at the token endpoint. clientSecret overrides the
// configured secret when non-empty.
func (f *codeFlow) exchange(ctx context.Context, code, verifier, redirectURI, clientSecret string) (*service.ProviderTokens, error) {
	conf := f.config(redirectURI)
	if clientSecret != "" {
		conf.ClientSecret = clientSecret
	}

	token, err := conf.Exchange(f.clientContext(ctx), code, oauth2.VerifierOption(verifier))
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			f.logProviderError(ctx, "token", retrieveErr.Response.StatusCode, retrieveErr.Body)

			return nil, domainerrors.NewAuthError(domainerrors.KindExchangeFailed,
				errors.Errorf("%s token endpoint returned %d", f.provider, retrieveErr.Response.StatusCode))
		}

		return nil, domainerrors.NewAuthError(domainerrors.KindExchangeFailed,
			errors.Wrapf(err, "%s token exchange", f.provider))
	}

	tokens := &service.ProviderTokens{
		AccessToken: token.AccessToken,
		Expiry:      token.Expiry,
	}
	if idToken, ok := token.Extra("id_token").(string); ok {
		tokens.IDToken = idToken
	}

	return tokens, nil
}

// getJSON performs an authenticated GET and hands the body to decode on 200.
func (f *codeFlow) getJSON(ctx context.Context, endpoint, accessToken string, decode func(io.Reader) error) error {
	client := oauth2.NewClient(f.clientContext(ctx), oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create profile request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s profile request", f.provider)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
		f.logProviderError(ctx, "profile", resp.StatusCode, body)

		return errors.Errorf("%s profile endpoint returned %d", f.provider, resp.StatusCode)
	}

	return decode(resp.Body)
}

func (f *codeFlow) logProviderError(ctx context.Context, endpoint string, status int, body []byte) {
	if f.logger == nil {
		return
	}

	if len(body) > maxLoggedBody {
		body = body[:maxLoggedBody]
	}

	f.logger.WarnContext(ctx, "Provider endpoint rejected request",
		slog.String("provider", f.provider.String()),
		slog.String("endpoint", endpoint),
		slog.Int("status", status),
		slog.String("body", strings.TrimSpace(string(body))),
	)
}

func splitScopes(scopes, fallback string) []string {
	if strings.TrimSpace(scopes) == "" {
		scopes = fallback
	}

	return strings.Fields(scopes)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
