package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"voiceauth/config"
	"voiceauth/internal/delivery/api/session"
	"voiceauth/internal/delivery/api/validator"
	mockUsecase "voiceauth/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	echo   *echo.Echo
	authUC *mockUsecase.MockAuthUsecase
	oauth  *OAuthHandler
	auth   *AuthHandler
}

func newHandlerFixtures(t *testing.T, env string) *handlerFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = env
	cfg.Frontend.BaseURL = "https://app.example.com"
	cfg.Mobile.Scheme = "voiceauth"
	cfg.SecretKey.Session = "secret"
	cfg.ApplyDefaults()

	e := echo.New()
	e.Validator = validator.New()

	authUC := mockUsecase.NewMockAuthUsecase(t)
	deliverer := session.NewDeliverer(cfg)

	return &handlerFixtures{
		echo:   e,
		authUC: authUC,
		oauth:  NewOAuthHandler(OAuthHandlerParams{AuthUC: authUC, Deliverer: deliverer, Logger: newDiscardLogger()}),
		auth:   NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Deliverer: deliverer}),
	}
}

func (f *handlerFixtures) context(req *http.Request, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)

	if len(params) > 0 {
		var names, values []string
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	return c, rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	return req
}

func redirectQuery(t *testing.T, rec *httptest.ResponseRecorder) (*url.URL, url.Values) {
	t.Helper()

	location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)

	return location, location.Query()
}
