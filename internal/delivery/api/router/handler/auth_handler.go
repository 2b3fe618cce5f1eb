package handler

import (
	"net/http"
	"time"

	"voiceauth/internal/delivery/api/response"
	"voiceauth/internal/delivery/api/session"
	"voiceauth/internal/delivery/api/validator"
	domainerrors "voiceauth/internal/domain/errors"
	"voiceauth/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	Deliverer *session.Deliverer
}

// AuthHandler serves password sign-in, registration and session endpoints.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	deliverer *session.Deliverer
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:    params.AuthUC,
		deliverer: params.Deliverer,
	}
}

// LoginRequest represents the request body for a password login
type LoginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,max=72"`
	RememberMe bool   `json:"rememberMe"`
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	Password    string `json:"password" validate:"required"`
	DisplayName string `json:"displayName" validate:"max=64"`
	RememberMe  bool   `json:"rememberMe"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Handle      string    `json:"handle"`
	DisplayName string    `json:"displayName,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
}

// AuthResponse is returned by login and registration. Token is omitted when
// the session was delivered as a cookie.
type AuthResponse struct {
	Account   AccountResponse `json:"account"`
	Token     string          `json:"token,omitempty"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// SessionResponse describes the caller's current session.
type SessionResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Handle    string    `json:"handle"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login handles password sign-in.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	out, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, http.StatusOK, out)
}

// Register handles account creation with a password.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	out, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		RememberMe:  req.RememberMe,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.respond(c, http.StatusCreated, out)
}

// Logout clears the session cookie. Bearer tokens simply expire.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.deliverer.ClearCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"status": "logged_out"})
}

// Session returns the caller's session, authenticated by bearer token or cookie.
func (h *AuthHandler) Session(c echo.Context) error {
	token := h.deliverer.TokenFromRequest(c)
	if token == "" {
		return response.HandleAppError(c, domainerrors.ErrSessionInvalid)
	}

	info, err := h.authUC.CurrentSession(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SessionResponse{
		ID:        info.AccountID,
		Email:     info.Email,
		Handle:    info.Handle,
		ExpiresAt: info.ExpiresAt,
	})
}

// respond delivers the session as a cookie in production; mobile clients and
// non-production deployments get the token in the body.
func (h *AuthHandler) respond(c echo.Context, status int, out *usecase.AuthOutput) error {
	body := AuthResponse{
		Account: AccountResponse{
			ID:          out.Account.ID,
			Email:       out.Account.Email,
			Handle:      out.Account.Handle,
			DisplayName: out.Account.DisplayName,
			AvatarURL:   out.Account.AvatarURL,
		},
		ExpiresAt: out.Session.ExpiresAt,
	}

	if c.QueryParam("client") == "mobile" || !h.deliverer.SetCookie(c, out.Session) {
		body.Token = out.Session.Token
	}

	return response.Success(c, status, body)
}

func validationError(c echo.Context, err error) error {
	fields, ok := validator.FieldErrors(err)
	if !ok {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), fields)
}
