// Package context carries request-scoped values from the echo layer down to
// the use cases and the persistence logger.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type ctxKey int

const loggerKey ctxKey = iota

const (
	// HeaderXRequestID is read from clients and echoed on every response.
	HeaderXRequestID = echo.HeaderXRequestID

	// requestIDKey stores the id in echo.Context for the response envelope.
	requestIDKey = "request_id"
)

// GetRequestID returns the id assigned by the request-id middleware, or the
// one already written to the response. Empty outside that middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok && id != "" {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}

// SetRequestID records the request id on echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(requestIDKey, requestID)
}

// WithLogger returns ctx carrying the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when ctx
// did not pass through the request-id middleware.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx == nil {
		return fallback
	}
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
