// Package handler contains the HTTP handlers for the authentication API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"voiceauth/internal/delivery/api/response"
	"voiceauth/internal/delivery/api/session"
	deliverycontext "voiceauth/internal/delivery/context"
	"voiceauth/internal/domain/entity"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/domain/service"
	"voiceauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	Deliverer *session.Deliverer
	Logger    *slog.Logger
}

// OAuthHandler serves the authorization-code flow endpoints.
type OAuthHandler struct {
	authUC    usecase.AuthUsecase
	deliverer *session.Deliverer
	logger    *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	return &OAuthHandler{
		authUC:    params.AuthUC,
		deliverer: params.Deliverer,
		logger:    params.Logger,
	}
}

// BeginResponse is returned instead of a redirect when return_url=true.
type BeginResponse struct {
	AuthURL   string    `json:"authUrl"`
	State     string    `json:"state"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ProviderResponse describes one provider in the listing.
type ProviderResponse struct {
	Provider     entity.ProviderType  `json:"provider"`
	Configured   bool                 `json:"configured"`
	ResponseMode service.ResponseMode `json:"responseMode"`
}

// ProviderStatusResponse is the body of the status endpoint.
type ProviderStatusResponse struct {
	Configured bool `json:"configured"`
}

// Begin starts an authorization. Browsers are redirected to the provider;
// return_url=true answers with the URL as JSON for clients that open it themselves.
// Failures always redirect, to the deep link for mobile clients.
func (h *OAuthHandler) Begin(c echo.Context) error {
	returnURL := c.QueryParam("return_url") == "true"

	flow := entity.FlowWeb
	if returnURL || c.QueryParam("client") == "mobile" {
		flow = entity.FlowMobile
	}

	out, err := h.authUC.StartOAuth(c.Request().Context(), usecase.StartOAuthInput{
		Provider: c.Param("provider"),
		Flow:     flow,
	})
	if err != nil {
		h.log(c).Warn("Failed to start authorization",
			slog.String("provider", c.Param("provider")),
			slog.Any("error", err),
		)

		return c.Redirect(http.StatusFound, h.deliverer.ErrorURL(flow, session.InitErrorCode(err)))
	}

	if returnURL {
		return response.Success(c, http.StatusOK, BeginResponse{
			AuthURL:   out.AuthorizationURL,
			State:     out.State,
			ExpiresAt: out.ExpiresAt,
		})
	}

	return c.Redirect(http.StatusFound, out.AuthorizationURL)
}

// Callback completes an authorization. Parameters arrive in the query string
// (GET) or in a form body (POST, response_mode=form_post); the outcome is
// always a redirect carrying either the session token or an error code.
func (h *OAuthHandler) Callback(c echo.Context) error {
	input := usecase.CallbackInput{
		Code:             c.FormValue("code"),
		State:            c.FormValue("state"),
		Error:            c.FormValue("error"),
		ErrorDescription: c.FormValue("error_description"),
		User:             c.FormValue("user"),
	}

	status := http.StatusFound
	if c.Request().Method == http.MethodPost {
		status = http.StatusSeeOther
	}

	out, err := h.authUC.FinishOAuth(c.Request().Context(), input)
	if err != nil {
		kind, _ := domainerrors.KindOf(err)
		h.log(c).Warn("Authorization callback failed",
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)

		return c.Redirect(status, h.deliverer.ErrorURL(entity.FlowFromState(input.State), session.CallbackErrorCode(err)))
	}

	if out.Flow != entity.FlowMobile {
		h.deliverer.SetCookie(c, out.Session)
	}

	return c.Redirect(status, h.deliverer.SuccessURL(out.Flow, out.Session.Token))
}

// Providers lists the configured providers.
func (h *OAuthHandler) Providers(c echo.Context) error {
	infos := h.authUC.Providers(c.Request().Context())

	providers := make([]ProviderResponse, 0, len(infos))
	for _, info := range infos {
		providers = append(providers, ProviderResponse{
			Provider:     info.Provider,
			Configured:   info.Configured,
			ResponseMode: info.ResponseMode,
		})
	}

	return response.Success(c, http.StatusOK, providers)
}

// ProviderStatus reports whether a supported provider is configured.
func (h *OAuthHandler) ProviderStatus(c echo.Context) error {
	info, err := h.authUC.ProviderStatus(c.Request().Context(), c.Param("provider"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ProviderStatusResponse{Configured: info.Configured})
}

func (h *OAuthHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}
