// Package session hands issued session tokens to clients: as a cookie, in a
// browser redirect or in a mobile deep link.
package session

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"voiceauth/config"
	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Redirect error codes understood by the frontend and the mobile app.
const (
	CodeAccessDenied          = "access_denied"
	CodeOAuthInitFailed       = "oauth_init_failed"
	CodeCallbackFailed        = "callback_failed"
	CodeProviderNotConfigured = "provider_not_configured"
	CodeMissingParameters     = "missing_parameters"
	CodeInvalidState          = "invalid_state"
)

const (
	mobileCallbackPath = "://auth/callback"
	bearerPrefix       = "Bearer "
)

// Deliverer builds redirect targets and manages the session cookie.
type Deliverer struct {
	production     bool
	cookieName     string
	cookieDomain   string
	frontendTarget string
	mobileTarget   string
	now            func() time.Time
}

// NewDeliverer is the constructor for Deliverer.
func NewDeliverer(cfg *config.Config) *Deliverer {
	return &Deliverer{
		production:     cfg.IsProduction(),
		cookieName:     cfg.Session.CookieName,
		cookieDomain:   cfg.Session.CookieDomain,
		frontendTarget: strings.TrimRight(cfg.Frontend.BaseURL, "/") + cfg.Frontend.CallbackPath,
		mobileTarget:   cfg.Mobile.Scheme + mobileCallbackPath,
		now:            time.Now,
	}
}

// SetCookie sets the session cookie in production and reports whether it did.
// Outside production the token has to travel in the response body instead.
func (d *Deliverer) SetCookie(c echo.Context, session *entity.Session) bool {
	if !d.production {
		return false
	}

	c.SetCookie(&http.Cookie{
		Name:     d.cookieName,
		Value:    session.Token,
		Path:     "/",
		Domain:   d.cookieDomain,
		Expires:  session.ExpiresAt,
		MaxAge:   int(session.ExpiresAt.Sub(d.now()).Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})

	return true
}

// ClearCookie expires the session cookie.
func (d *Deliverer) ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     d.cookieName,
		Value:    "",
		Path:     "/",
		Domain:   d.cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   d.production,
		SameSite: http.SameSiteStrictMode,
	})
}

// TokenFromRequest returns the bearer token, falling back to the session cookie.
func (d *Deliverer) TokenFromRequest(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	if cookie, err := c.Cookie(d.cookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// SuccessURL is where a finished authorization sends the client.
func (d *Deliverer) SuccessURL(flow entity.Flow, token string) string {
	if flow == entity.FlowMobile {
		return d.mobileTarget + "?" + url.Values{"token": {token}}.Encode()
	}

	return d.frontendTarget + "?" + url.Values{"auth_token": {token}}.Encode()
}

// ErrorURL is where a failed authorization sends the client.
func (d *Deliverer) ErrorURL(flow entity.Flow, code string) string {
	if flow == entity.FlowMobile {
		return d.mobileTarget + "?" + url.Values{"error": {code}}.Encode()
	}

	return d.frontendTarget + "?" + url.Values{"auth_error": {code}}.Encode()
}

// CallbackErrorCode maps a callback failure onto the redirect error code.
func CallbackErrorCode(err error) string {
	kind, _ := domainerrors.KindOf(err)

	switch kind {
	case domainerrors.KindProviderDenied:
		return CodeAccessDenied
	case domainerrors.KindBadRequest:
		return CodeMissingParameters
	case domainerrors.KindInvalidState:
		return CodeInvalidState
	case domainerrors.KindProviderNotConfigured:
		return CodeProviderNotConfigured
	default:
		return CodeCallbackFailed
	}
}

// InitErrorCode maps a failure to start an authorization onto the redirect error code.
func InitErrorCode(err error) string {
	if kind, _ := domainerrors.KindOf(err); kind == domainerrors.KindProviderNotConfigured {
		return CodeProviderNotConfigured
	}

	return CodeOAuthInitFailed
}
