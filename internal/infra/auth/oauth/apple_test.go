package oauth

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"voiceauth/config"
	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppleKey(t *testing.T) (*ecdsa.PrivateKey, string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}

func appleTestConfig(pemKey, serverURL string) config.AppleOAuthConfig {
	return config.AppleOAuthConfig{
		ClientID:   "com.example.web",
		TeamID:     "TEAM123456",
		KeyID:      "KEY1234567",
		PrivateKey: pemKey,
		AuthURL:    serverURL + "/auth/authorize",
		TokenURL:   serverURL + "/auth/token",
	}
}

func unsignedIDToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	return token
}

func TestAppleProvider_AuthorizationURL(t *testing.T) {
	_, pemKey := newTestAppleKey(t)
	provider, err := newAppleProvider(appleTestConfig(pemKey, "https://appleid.example"), nil, time.Now)
	require.NoError(t, err)

	parsed, err := url.Parse(provider.AuthorizationURL(service.AuthorizationRequest{
		State:         "m.state-2",
		CodeChallenge: "challenge-2",
		RedirectURI:   testRedirectURI,
	}))
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "com.example.web", query.Get("client_id"))
	assert.Equal(t, "form_post", query.Get("response_mode"))
	assert.Equal(t, "name email", query.Get("scope"))
	assert.Equal(t, "S256", query.Get("code_challenge_method"))
	assert.Equal(t, "m.state-2", query.Get("state"))
	assert.Equal(t, service.ResponseModeFormPost, provider.ResponseMode())
}

func TestAppleProvider_ClientAssertion(t *testing.T) {
	key, pemKey := newTestAppleKey(t)
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	provider, err := newAppleProvider(appleTestConfig(pemKey, "https://appleid.example"), nil, func() time.Time { return now })
	require.NoError(t, err)

	assertion, err := provider.clientAssertion()
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(assertion, claims, func(*jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	require.NoError(t, err)

	assert.Equal(t, "ES256", token.Method.Alg())
	assert.Equal(t, "KEY1234567", token.Header["kid"])
	assert.Equal(t, "TEAM123456", claims.Issuer)
	assert.Equal(t, "com.example.web", claims.Subject)
	assert.Equal(t, jwt.ClaimStrings{"https://appleid.apple.com"}, claims.Audience)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestAppleProvider_ExchangeAndFetchProfile(t *testing.T) {
	key, pemKey := newTestAppleKey(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "/auth/token", r.URL.Path)
		assert.Equal(t, "apple-code", r.PostForm.Get("code"))
		assert.Equal(t, "apple-verifier", r.PostForm.Get("code_verifier"))

		_, err := jwt.Parse(r.PostForm.Get("client_secret"), func(*jwt.Token) (any, error) {
			return &key.PublicKey, nil
		}, jwt.WithValidMethods([]string{"ES256"}), jwt.WithAudience("https://appleid.apple.com"))
		assert.NoError(t, err)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token": "apple-access",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token": unsignedIDToken(t, jwt.MapClaims{
				"sub":            "001234.abcd",
				"email":          "bob@privaterelay.appleid.com",
				"email_verified": "true",
			}),
		})
	}))
	t.Cleanup(server.Close)

	provider, err := NewAppleProvider(appleTestConfig(pemKey, server.URL), nil)
	require.NoError(t, err)
	require.True(t, provider.Configured())

	tokens, err := provider.Exchange(context.Background(), "apple-code", "apple-verifier", testRedirectURI)
	require.NoError(t, err)
	require.NotEmpty(t, tokens.IDToken)

	identity, err := provider.FetchProfile(context.Background(), tokens, service.CallbackProfileHint{
		RawUser: `{"name":{"firstName":"Bob","lastName":"Builder"},"email":"bob@privaterelay.appleid.com"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderTypeApple, identity.Provider)
	assert.Equal(t, "001234.abcd", identity.ProviderUserID)
	assert.Equal(t, "bob@privaterelay.appleid.com", identity.Email)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, "Bob Builder", identity.DisplayName)
}

func TestAppleProvider_FetchProfileWithoutIDToken(t *testing.T) {
	_, pemKey := newTestAppleKey(t)
	provider, err := NewAppleProvider(appleTestConfig(pemKey, "https://appleid.example"), nil)
	require.NoError(t, err)

	_, err = provider.FetchProfile(context.Background(), &service.ProviderTokens{AccessToken: "x"}, service.CallbackProfileHint{})
	kind, ok := domainerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindExchangeFailed, kind)
}

func TestAppleProvider_TokenEndpointFailure(t *testing.T) {
	_, pemKey := newTestAppleKey(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"error": "invalid_client"})
	}))
	t.Cleanup(server.Close)

	provider, err := NewAppleProvider(appleTestConfig(pemKey, server.URL), nil)
	require.NoError(t, err)

	_, err = provider.Exchange(context.Background(), "apple-code", "apple-verifier", testRedirectURI)
	kind, ok := domainerrors.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindExchangeFailed, kind)
}

func TestNewAppleProvider_KeySources(t *testing.T) {
	_, pemKey := newTestAppleKey(t)

	t.Run("missing key leaves provider unconfigured", func(t *testing.T) {
		cfg := appleTestConfig("", "https://appleid.example")
		provider, err := NewAppleProvider(cfg, nil)
		require.NoError(t, err)
		assert.False(t, provider.Configured())
	})

	t.Run("key from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "AuthKey.p8")
		require.NoError(t, os.WriteFile(path, []byte(pemKey), 0o600))

		cfg := appleTestConfig("", "https://appleid.example")
		cfg.PrivateKeyPath = path
		provider, err := NewAppleProvider(cfg, nil)
		require.NoError(t, err)
		assert.True(t, provider.Configured())
	})

	t.Run("garbage key fails startup", func(t *testing.T) {
		_, err := NewAppleProvider(appleTestConfig("not a key", "https://appleid.example"), nil)
		assert.Error(t, err)
	})
}

func TestAppleProvider_FetchProfileRejectsUntrustedEmail(t *testing.T) {
	_, pemKey := newTestAppleKey(t)
	provider, err := NewAppleProvider(appleTestConfig(pemKey, "https://appleid.example"), nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		claims jwt.MapClaims
		user   string
	}{
		{
			name:   "email only in user field",
			claims: jwt.MapClaims{"sub": "001234.other"},
			user:   `{"name":{"firstName":"Eve","lastName":"Smith"},"email":"victim@example.com"}`,
		},
		{
			name:   "email not verified",
			claims: jwt.MapClaims{"sub": "001234.other", "email": "eve@example.com", "email_verified": "false"},
		},
		{
			name:   "email_verified missing",
			claims: jwt.MapClaims{"sub": "001234.other", "email": "eve@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &service.ProviderTokens{IDToken: unsignedIDToken(t, tt.claims)}

			identity, err := provider.FetchProfile(context.Background(), tokens, service.CallbackProfileHint{RawUser: tt.user})

			require.Error(t, err)
			assert.Nil(t, identity)
			kind, ok := domainerrors.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, domainerrors.KindProfileIncomplete, kind)
		})
	}
}

func TestAppleProvider_FetchProfileKeepsIDTokenEmail(t *testing.T) {
	_, pemKey := newTestAppleKey(t)
	provider, err := NewAppleProvider(appleTestConfig(pemKey, "https://appleid.example"), nil)
	require.NoError(t, err)

	tokens := &service.ProviderTokens{IDToken: unsignedIDToken(t, jwt.MapClaims{
		"sub":            "001234.abcd",
		"email":          "bob@privaterelay.appleid.com",
		"email_verified": true,
	})}

	identity, err := provider.FetchProfile(context.Background(), tokens, service.CallbackProfileHint{
		RawUser: `{"name":{"firstName":"Bob","lastName":""},"email":"someone-else@example.com"}`,
	})

	require.NoError(t, err)
	assert.Equal(t, "bob@privaterelay.appleid.com", identity.Email)
	assert.Equal(t, "Bob", identity.DisplayName)
}
