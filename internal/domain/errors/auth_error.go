package errors

import (
	"net/http"

	"voiceauth/internal/errors"
)

// Kind classifies a failed authentication attempt. Only the kind ever
// reaches a client; the wrapped cause stays in the logs.
type Kind string

const (
	KindBadRequest            Kind = "bad_request"
	KindInvalidState          Kind = "invalid_state"
	KindProviderDenied        Kind = "provider_denied"
	KindExchangeFailed        Kind = "exchange_failed"
	KindProfileIncomplete     Kind = "profile_incomplete"
	KindHandleExhausted       Kind = "handle_exhausted"
	KindProviderNotConfigured Kind = "provider_not_configured"
	KindUnsupportedProvider   Kind = "unsupported_provider"
	KindAccountLocked         Kind = "account_locked"
)

// AuthError is a terminal failure of one authentication attempt.
type AuthError struct {
	kind  Kind
	cause error
}

// NewAuthError creates an AuthError of kind k wrapping cause (which may be nil).
func NewAuthError(k Kind, cause error) *AuthError {
	return &AuthError{kind: k, cause: cause}
}

// Error implements the error interface
func (e *AuthError) Error() string {
	if e.cause == nil {
		return string(e.kind)
	}

	return string(e.kind) + ": " + e.cause.Error()
}

// Unwrap returns the underlying cause.
func (e *AuthError) Unwrap() error {
	return e.cause
}

// Kind returns the error kind.
func (e *AuthError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code used on JSON paths.
func (e *AuthError) HTTPCode() int {
	switch e.kind {
	case KindBadRequest, KindProviderNotConfigured:
		return http.StatusBadRequest
	case KindUnsupportedProvider:
		return http.StatusNotFound
	case KindInvalidState, KindProviderDenied, KindProfileIncomplete:
		return http.StatusUnauthorized
	case KindAccountLocked:
		return http.StatusLocked
	default:
		return http.StatusBadGateway
	}
}

// ErrorCode returns the business error code
func (e *AuthError) ErrorCode() string {
	return string(e.kind)
}

// Message returns the user-friendly error message
func (e *AuthError) Message() string {
	switch e.kind {
	case KindInvalidState:
		return "Invalid or expired authorization"
	case KindProviderDenied:
		return "Authorization was denied"
	case KindProviderNotConfigured:
		return "Provider is not configured"
	case KindUnsupportedProvider:
		return "Unsupported authentication provider"
	case KindBadRequest:
		return "Missing authorization parameters"
	default:
		return "Authentication failed"
	}
}

// Details is always empty: provider payloads are never surfaced.
func (e *AuthError) Details() string {
	return ""
}

// KindOf returns the kind of the first AuthError in err's chain.
// ok is false when err carries no AuthError.
func KindOf(err error) (Kind, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.kind, true
	}

	return "", false
}
