// Package handler contains the worker's HTTP handlers.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "strik/internal/delivery/context"
	"strik/internal/domain/entity"
	"strik/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandler receives database webhooks
type EventHandler struct {
	logger *slog.Logger
	events usecase.EventUsecase
}

// EventHandlerParams holds dependencies for the EventHandler
type EventHandlerParams struct {
	fx.In

	Logger *slog.Logger
	Events usecase.EventUsecase
}

// NewEventHandler creates a new webhook handler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		logger: params.Logger,
		events: params.Events,
	}
}

// msgInvalidEvent answers a body that is not a change event
const msgInvalidEvent = "Ignored: invalid event"

// HandleEvent routes one change event and answers with its RouteResult.
// An undecodable body is logged and acknowledged like any other malformed event.
// Router failures are returned for the error middleware to render.
func (h *EventHandler) HandleEvent(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	var event entity.ChangeEvent
	if err := c.Bind(&event); err != nil {
		logger.Warn("[Worker] Ignoring undecodable change event", slog.Any("error", err))

		return c.JSON(http.StatusOK, &usecase.RouteResult{Message: msgInvalidEvent})
	}

	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestID(c)
	}

	result, err := h.events.Route(ctx, &event)
	if err != nil {
		logger.Error("[Worker] Failed to route change event",
			slog.String("table", event.TableName()),
			slog.String("type", event.Type),
			slog.Any("error", err),
		)

		return err
	}

	return c.JSON(http.StatusOK, result)
}
