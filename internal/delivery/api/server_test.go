package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"voiceauth/config"
	"voiceauth/internal/delivery/api/router"
	"voiceauth/internal/delivery/api/router/handler"
	"voiceauth/internal/delivery/api/session"
	"voiceauth/internal/domain/entity"
	"voiceauth/internal/domain/service"
	mockUsecase "voiceauth/internal/mocks/usecase"
	"voiceauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockAuthUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Frontend.BaseURL = "https://app.example.com"
	cfg.SecretKey.Session = "secret"
	cfg.ApplyDefaults()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authUC := mockUsecase.NewMockAuthUsecase(t)
	deliverer := session.NewDeliverer(cfg)

	e := newEcho(cfg, logger, router.RouterParams{
		OAuthHandler: handler.NewOAuthHandler(handler.OAuthHandlerParams{AuthUC: authUC, Deliverer: deliverer, Logger: logger}),
		AuthHandler:  handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Deliverer: deliverer}),
	})

	return e, authUC
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestServer_Health(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestServer_ProvidersRouteIsNotAProvider(t *testing.T) {
	e, authUC := newTestEcho(t)

	authUC.EXPECT().Providers(mock.Anything).Return([]usecase.ProviderInfo{
		{Provider: entity.ProviderTypeApple, Configured: true, ResponseMode: service.ResponseModeFormPost},
	})

	rec := serve(e, http.MethodGet, "/auth/oauth/providers")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"responseMode":"form_post"`)
	authUC.AssertNotCalled(t, "StartOAuth", mock.Anything, mock.Anything)
}

func TestServer_CallbackAcceptsGetAndPost(t *testing.T) {
	e, authUC := newTestEcho(t)

	authUC.EXPECT().FinishOAuth(mock.Anything, mock.Anything).Return(nil, assert.AnError).Twice()

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := serve(e, method, "/auth/oauth/callback?state=s1")

		assert.Contains(t, []int{http.StatusFound, http.StatusSeeOther}, rec.Code, method)
		assert.Equal(t, "https://app.example.com/auth/callback?auth_error=callback_failed", rec.Header().Get("Location"))
	}
}

func TestServer_UnknownRouteUsesEnvelope(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := serve(e, http.MethodGet, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
	assert.Contains(t, rec.Body.String(), `"request_id"`)
}
