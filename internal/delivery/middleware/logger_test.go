package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"voiceauth/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactQuery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "callback", raw: "code=abc&state=xyz", want: "code=REDACTED&state=REDACTED"},
		{name: "tokens", raw: "auth_token=t1&token=t2&client=mobile", want: "auth_token=REDACTED&client=mobile&token=REDACTED"},
		{name: "harmless", raw: "return_url=true", want: "return_url=true"},
		{name: "unparseable", raw: "code=%zz", want: "REDACTED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redactQuery(tt.raw))
		})
	}
}

func TestLoggerMiddleware_NeverLogsCode(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/oauth/callback?code=secret-code&state=secret-state", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusFound)
	})

	require.NoError(t, handler(c))
	assert.Contains(t, buf.String(), "HTTP Request")
	assert.NotContains(t, buf.String(), "secret-code")
	assert.NotContains(t, buf.String(), "secret-state")
}
