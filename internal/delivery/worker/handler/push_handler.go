package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"strik/config"
	deliverycontext "strik/internal/delivery/context"
	"strik/internal/domain/constants"
	"strik/internal/domain/entity"
	domainerrors "strik/internal/domain/errors"
	"strik/internal/errors"
	"strik/internal/infra/pubsub"
	"strik/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator checks a Google-signed ID token for audience
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes change events delivered by a Pub/Sub push subscription
type PushHandler struct {
	verifyPushAuth bool
	validate       tokenValidator
	logger         *slog.Logger
	events         usecase.EventUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Events usecase.EventUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Pushes from Google carry an OIDC token outside local development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		events:         params.Events,
	}
}

// HandlePush routes the enveloped change event. It answers 503 when the
// failure is worth a redelivery and 200 otherwise, so poison messages are
// acknowledged after logging.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push envelope", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	event, err := decodeEnvelope(&envelope)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode change event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	// Priority: message attributes > event field > X-Request-Id of the push request
	requestID := deliverycontext.ResolveRequestID(
		envelope.Message.Attributes[pubsub.AttributeRequestID],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	)
	ctx, reqLogger := deliverycontext.Scope(ctx, h.logger, requestID)
	event.RequestID = requestID

	reqLogger.Info("[Worker] Processing change event",
		slog.String("message_id", envelope.Message.MessageID),
		slog.String("table", event.TableName()),
		slog.String("type", event.Type),
	)

	result, err := h.events.Route(ctx, event)
	if err != nil {
		retryable := isRetryable(err)
		reqLogger.Error("[Worker] Failed to process change event",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Change event processed",
		slog.String("message_id", envelope.Message.MessageID),
		slog.String("result", result.Message),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return c.NoContent(http.StatusOK)
}

func decodeEnvelope(envelope *pubsub.PushEnvelope) (*entity.ChangeEvent, error) {
	data, err := base64.StdEncoding.DecodeString(envelope.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event entity.ChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not a change event")
	}

	return &event, nil
}

// isRetryable reports whether a redelivery could succeed. Client-class
// AppErrors (missing rows, malformed events) never will; store and upstream
// failures might.
func isRetryable(err error) bool {
	appErr, ok := domainerrors.AsAppError(err)
	if !ok {
		return true
	}

	return appErr.HTTPCode() >= http.StatusInternalServerError
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
