package middleware

import (
	"log/slog"

	deliverycontext "strik/internal/delivery/context"
	"strik/internal/delivery/response"
	"strik/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders handler errors as ErrorResponse bodies
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if handled, writeErr := response.AppError(c, err); handled {
		m.logWriteFailure(c, writeErr)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		m.logWriteFailure(c, response.Error(c, httpErr.Code, "HTTP_ERROR", message, ""))

		return
	}

	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("[Worker] Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.logWriteFailure(c, response.InternalServerError(c))
}

func (m *ErrorMiddleware) logWriteFailure(c echo.Context, err error) {
	if err != nil {
		m.logger.Warn("[Worker] Failed to write error response",
			slog.String("path", c.Request().URL.Path),
			slog.Any("error", err),
		)
	}
}
