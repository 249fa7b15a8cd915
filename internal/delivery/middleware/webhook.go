package middleware

import (
	"crypto/subtle"
	"log/slog"

	"strik/config"
	deliverycontext "strik/internal/delivery/context"
	"strik/internal/delivery/response"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// WebhookGuard protects the database webhook endpoint with a shared secret
// and an ingress rate limit. Either check is off when unconfigured.
type WebhookGuard struct {
	logger  *slog.Logger
	header  string
	secret  []byte
	limiter *rate.Limiter
}

// NewWebhookGuard creates the guard from the webhook configuration
func NewWebhookGuard(cfg *config.WebhookConfig, logger *slog.Logger) *WebhookGuard {
	guard := &WebhookGuard{
		logger: logger,
		header: cfg.Header,
		secret: []byte(cfg.Secret),
	}

	if cfg.RequestsPerSecond > 0 {
		guard.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), max(cfg.Burst, 1))
	}

	return guard
}

// Handle rejects throttled requests with 429 and unauthenticated ones with 401
func (g *WebhookGuard) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), g.logger)

		if g.limiter != nil && !g.limiter.Allow() {
			logger.Warn("[Worker] Webhook rate limit exceeded")

			return response.TooManyRequests(c)
		}

		if len(g.secret) > 0 {
			provided := []byte(c.Request().Header.Get(g.header))
			if subtle.ConstantTimeCompare(provided, g.secret) != 1 {
				logger.Warn("[Worker] Webhook secret mismatch", slog.String("header", g.header))

				return response.Unauthorized(c, "invalid webhook secret")
			}
		}

		return next(c)
	}
}
