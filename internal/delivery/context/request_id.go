// Package context carries the request id and the request-scoped logger
// from the transport edge down to the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request ID stored on c, or an empty string.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok {
		return id
	}

	return ""
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from ctx, or an empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// ResolveRequestID returns the first non-empty candidate, or a new UUID.
func ResolveRequestID(candidates ...string) string {
	for _, candidate := range candidates {
		if candidate != "" {
			return candidate
		}
	}

	return uuid.New().String()
}

// Scope stores requestID on ctx together with a child of base tagged with it.
func Scope(ctx context.Context, base *slog.Logger, requestID string) (context.Context, *slog.Logger) {
	reqLogger := base.With(slog.String("request_id", requestID))
	ctx = context.WithValue(ctx, KeyRequestID, requestID)
	ctx = context.WithValue(ctx, KeyLogger, reqLogger)

	return ctx, reqLogger
}

// GetLoggerOrDefault extracts the request-scoped logger from ctx,
// falling back to the provided logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}
