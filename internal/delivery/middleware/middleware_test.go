package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"strik/config"
	deliverycontext "strik/internal/delivery/context"
	domainerrors "strik/internal/domain/errors"
	"strik/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	path   string
	method string
	status int
}

type fakeObserver struct {
	observations []observation
}

func (f *fakeObserver) ObserveHTTP(path, method string, status int, _ time.Duration) {
	f.observations = append(f.observations, observation{path: path, method: method, status: status})
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{name: "reuses caller id", header: "req-1"},
		{name: "mints id when absent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			next := func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil))

				return nil
			}

			require.NoError(t, NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process(next)(c))

			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			if tt.header != "" {
				assert.Equal(t, tt.header, seen)
			}
		})
	}
}

func TestMetricsMiddleware_StatusOfFailedHandlers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "success", status: http.StatusOK},
		{name: "app error", err: domainerrors.ErrNotFound, status: http.StatusNotFound},
		{name: "echo error", err: echo.ErrUnsupportedMediaType, status: http.StatusUnsupportedMediaType},
		{name: "plain error", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			observer := &fakeObserver{}
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/events", nil), httptest.NewRecorder())
			c.SetPath("/events")

			err := NewMetricsMiddleware(observer).Handle(func(echo.Context) error { return tt.err })(c)

			assert.Equal(t, tt.err, err)
			require.Len(t, observer.observations, 1)
			assert.Equal(t, observation{path: "/events", method: http.MethodPost, status: tt.status}, observer.observations[0])
		})
	}
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	t.Parallel()

	observer := &fakeObserver{}
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/nope", nil), httptest.NewRecorder())

	_ = NewMetricsMiddleware(observer).Handle(func(echo.Context) error { return echo.ErrNotFound })(c)

	require.Len(t, observer.observations, 1)
	assert.Equal(t, unmatchedRoute, observer.observations[0].path)
	assert.Equal(t, http.StatusNotFound, observer.observations[0].status)
}

func TestLoggerMiddleware_LogsFailuresOutsideDebug(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})
	e := echo.New()

	ok := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(ok))
	assert.Empty(t, buf.String())

	failed := e.NewContext(httptest.NewRequest(http.MethodPost, "/events", nil), httptest.NewRecorder())
	_ = mw.Handle(func(echo.Context) error { return domainerrors.ErrNotFound })(failed)
	assert.Contains(t, buf.String(), "[Worker] HTTP request")
	assert.Contains(t, buf.String(), "status=404")
}

func TestWebhookGuard(t *testing.T) {
	t.Parallel()

	newContext := func(secret string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/events", nil)
		if secret != "" {
			req.Header.Set("X-Hook", secret)
		}
		rec := httptest.NewRecorder()

		return echo.New().NewContext(req, rec), rec
	}
	passed := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	logger := slog.New(slog.DiscardHandler)

	t.Run("open without secret", func(t *testing.T) {
		t.Parallel()

		guard := NewWebhookGuard(&config.WebhookConfig{Header: "X-Hook"}, logger)
		c, rec := newContext("")

		require.NoError(t, guard.Handle(passed)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("matching secret", func(t *testing.T) {
		t.Parallel()

		guard := NewWebhookGuard(&config.WebhookConfig{Header: "X-Hook", Secret: "abc"}, logger)
		c, rec := newContext("abc")

		require.NoError(t, guard.Handle(passed)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("prefix of secret is rejected", func(t *testing.T) {
		t.Parallel()

		guard := NewWebhookGuard(&config.WebhookConfig{Header: "X-Hook", Secret: "abc"}, logger)
		c, rec := newContext("ab")

		require.NoError(t, guard.Handle(passed)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("limiter rejects burst overflow", func(t *testing.T) {
		t.Parallel()

		guard := NewWebhookGuard(&config.WebhookConfig{Header: "X-Hook", RequestsPerSecond: 0.001, Burst: 2}, logger)
		codes := make([]int, 0, 3)
		for range 3 {
			c, rec := newContext("")
			require.NoError(t, guard.Handle(passed)(c))
			codes = append(codes, rec.Code)
		}

		assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
	})
}
