package middleware

import (
	"net/http"
	"time"

	domainerrors "strik/internal/domain/errors"
	"strik/internal/errors"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that hit no registered route
const unmatchedRoute = "unmatched"

// HTTPObserver receives one observation per served request
type HTTPObserver interface {
	ObserveHTTP(path, method string, status int, elapsed time.Duration)
}

// MetricsMiddleware records request counts and latency by route template
type MetricsMiddleware struct {
	observer HTTPObserver
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(observer HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{
		observer: observer,
	}
}

// Handle observes the request after the handler chain returns
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		path := c.Path()
		if path == "" {
			path = unmatchedRoute
		}
		m.observer.ObserveHTTP(path, c.Request().Method, statusOf(c, err), time.Since(start))

		return err
	}
}

// statusOf returns the status the error handler will write when the handler
// failed before committing a response
func statusOf(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}
	if appErr, ok := domainerrors.AsAppError(err); ok {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}
