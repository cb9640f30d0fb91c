// Package context carries request-scoped values (request id, logger, caller identity)
// between the echo middlewares and the layers below them.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header carrying the request id in both directions.
const HeaderXRequestID = echo.HeaderXRequestID

// echo.Context keys
const (
	requestIDKey = "request_id"
	userIDKey    = "user_id"
	rolesKey     = "roles"
)

type ctxKey int

// context.Context keys
const (
	requestIDCtxKey ctxKey = iota
	loggerCtxKey
)

// GetRequestID returns the id assigned to the request, or an empty string outside a request.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)

	return id
}

// SetRequestID stores the request id on the echo.Context and on the request's context.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(requestIDKey, requestID)

	req := c.Request()
	c.SetRequest(req.WithContext(context.WithValue(req.Context(), requestIDCtxKey, requestID)))
}

// RequestIDFromContext returns the request id stored by SetRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDCtxKey).(string)

	return id
}

// WithLogger returns a new context carrying the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when the context has none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
