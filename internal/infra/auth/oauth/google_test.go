package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"voiceauth/config"
	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedirectURI = "https://api.example/auth/oauth/callback"

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func newGoogleTestServer(t *testing.T, tokenStatus, userInfoStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "the-verifier", r.PostForm.Get("code_verifier"))
		assert.Equal(t, "google-client", r.PostForm.Get("client_id"))
		assert.Equal(t, "google-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, testRedirectURI, r.PostForm.Get("redirect_uri"))

		if tokenStatus != http.StatusOK {
			writeJSON(t, w, tokenStatus, map[string]string{"error": "invalid_grant"})

			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token": "google-access",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer google-access", r.Header.Get("Authorization"))

		if userInfoStatus != http.StatusOK {
			writeJSON(t, w, userInfoStatus, map[string]string{"error": "boom"})

			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"sub":            "g-123",
			"email":          "alice@example.com",
			"email_verified": true,
			"name":           "Alice Liddell",
			"picture":        "https://img.example/alice.png",
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func newTestGoogle(serverURL string) service.ProviderAdapter {
	return NewGoogleProvider(config.GoogleOAuthConfig{
		ClientID:     "google-client",
		ClientSecret: "google-secret",
		AuthURL:      serverURL + "/authorize",
		TokenURL:     serverURL + "/token",
		UserInfoURL:  serverURL + "/userinfo",
	}, nil)
}

func TestGoogleProvider_AuthorizationURL(t *testing.T) {
	provider := newTestGoogle("https://accounts.example")

	raw := provider.AuthorizationURL(service.AuthorizationRequest{
		State:         "state-1",
		CodeChallenge: "challenge-1",
		RedirectURI:   testRedirectURI,
	})

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/authorize", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "google-client", query.Get("client_id"))
	assert.Equal(t, testRedirectURI, query.Get("redirect_uri"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "openid email profile", query.Get("scope"))
	assert.Equal(t, "challenge-1", query.Get("code_challenge"))
	assert.Equal(t, "S256", query.Get("code_challenge_method"))
	assert.Equal(t, "state-1", query.Get("state"))
	assert.Empty(t, query.Get("response_mode"))
	assert.Equal(t, service.ResponseModeQuery, provider.ResponseMode())
}

func TestGoogleProvider_ExchangeAndFetchProfile(t *testing.T) {
	server := newGoogleTestServer(t, http.StatusOK, http.StatusOK)
	provider := newTestGoogle(server.URL)

	tokens, err := provider.Exchange(context.Background(), "the-code", "the-verifier", testRedirectURI)
	require.NoError(t, err)
	assert.Equal(t, "google-access", tokens.AccessToken)

	identity, err := provider.FetchProfile(context.Background(), tokens, service.CallbackProfileHint{})
	require.NoError(t, err)
	assert.Equal(t, &entity.ExternalIdentity{
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: "g-123",
		Email:          "alice@example.com",
		EmailVerified:  true,
		DisplayName:    "Alice Liddell",
		AvatarURL:      "https://img.example/alice.png",
	}, identity)
}

func TestGoogleProvider_TokenEndpointFailure(t *testing.T) {
	server := newGoogleTestServer(t, http.StatusBadRequest, http.StatusOK)
	provider := newTestGoogle(server.URL)

	_, err := provider.Exchange(context.Background(), "the-code", "the-verifier", testRedirectURI)
	require.Error(t, err)

	kind, ok := domainerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindExchangeFailed, kind)
	assert.NotContains(t, err.Error(), "invalid_grant")
}

func TestGoogleProvider_UserInfoFailure(t *testing.T) {
	server := newGoogleTestServer(t, http.StatusOK, http.StatusInternalServerError)
	provider := newTestGoogle(server.URL)

	_, err := provider.FetchProfile(context.Background(), &service.ProviderTokens{AccessToken: "google-access"}, service.CallbackProfileHint{})
	kind, ok := domainerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindExchangeFailed, kind)
}

func TestGoogleProvider_Configured(t *testing.T) {
	assert.True(t, newTestGoogle("https://x").Configured())
	assert.False(t, NewGoogleProvider(config.GoogleOAuthConfig{ClientID: "only-id"}, nil).Configured())
}

func TestGoogleProvider_UnverifiedEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"sub":            "g-456",
			"email":          "mallory@example.com",
			"email_verified": false,
		})
	}))
	t.Cleanup(server.Close)

	provider := NewGoogleProvider(config.GoogleOAuthConfig{
		ClientID:     "google-client",
		ClientSecret: "google-secret",
		UserInfoURL:  server.URL,
	}, nil)

	identity, err := provider.FetchProfile(context.Background(), &service.ProviderTokens{AccessToken: "google-access"}, service.CallbackProfileHint{})

	require.Error(t, err)
	assert.Nil(t, identity)
	kind, ok := domainerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindProfileIncomplete, kind)
}
