package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "voiceauth/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAppError_Details(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantDetails any
	}{
		{
			name:        "client error keeps details",
			err:         domainerrors.ErrPasswordStrength.WithDetails("password is too short"),
			wantStatus:  http.StatusBadRequest,
			wantDetails: "password is too short",
		},
		{
			name:       "server error hides details",
			err:        domainerrors.NewDatabaseExecuteError(assert.AnError, "insert accounts"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unauthorized hides details",
			err:        domainerrors.ErrSessionInvalid.WithDetails("token expired"),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, HandleAppError(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestHandleAppError_PassesThroughUnknownErrors(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := HandleAppError(c, assert.AnError)

	require.ErrorIs(t, err, assert.AnError)
	assert.False(t, c.Response().Committed)
}
