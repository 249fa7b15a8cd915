package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "strik/internal/delivery/context"
	"strik/internal/domain/entity"
	"strik/internal/domain/service"
	"strik/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// PushRequest is one recipient's rendered push
type PushRequest struct {
	RecipientID uuid.UUID
	DeviceToken string
	Title       string
	Body        string
	Type        entity.NotificationType
	Data        map[string]string
}

// PushDispatcher renders push messages and sends them through a gateway session
type PushDispatcher struct {
	logger  *slog.Logger
	metrics service.MetricsRecorder
}

// PushDispatcherParams holds dependencies for PushDispatcher, injected by Fx.
type PushDispatcherParams struct {
	fx.In

	Logger  *slog.Logger
	Metrics service.MetricsRecorder
}

// NewPushDispatcher creates a new push dispatcher
func NewPushDispatcher(params PushDispatcherParams) *PushDispatcher {
	return &PushDispatcher{
		logger:  params.Logger,
		metrics: params.Metrics,
	}
}

// Send renders one message and delivers it. Gateway failures come back as
// *domainerrors.DeliveryError carrying the raw response body.
func (d *PushDispatcher) Send(
	ctx context.Context,
	session service.PushSession,
	deviceToken, title, body string,
	notificationType entity.NotificationType,
	data map[string]string,
) (*entity.DeliveryResult, error) {
	msg := entity.NewPushMessage(deviceToken, title, body, notificationType, data)

	messageID, err := session.Send(ctx, msg)
	d.metrics.ObserveDispatch(notificationType.String(), err)
	if err != nil {
		return nil, err
	}

	return &entity.DeliveryResult{MessageID: messageID}, nil
}

// FanOut starts every request concurrently and waits for all of them.
// Results keep the order of requests; a failed recipient never affects the others.
func (d *PushDispatcher) FanOut(ctx context.Context, session service.PushSession, requests []*PushRequest) []*entity.DeliveryResult {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)
	results := make([]*entity.DeliveryResult, len(requests))

	var wg sync.WaitGroup
	for idx, req := range requests {
		wg.Go(func() {
			result, err := d.Send(ctx, session, req.DeviceToken, req.Title, req.Body, req.Type, req.Data)
			if err != nil {
				logger.Warn("Push delivery failed",
					slog.String("recipient_id", req.RecipientID.String()),
					slog.String("token", util.MaskToken(req.DeviceToken)),
					slog.String("type", req.Type.String()),
					slog.Any("error", err),
				)
				result = &entity.DeliveryResult{Err: err}
			}
			result.RecipientID = req.RecipientID
			results[idx] = result
		})
	}
	wg.Wait()

	return results
}

// countDelivered splits results into delivered and failed counts
func countDelivered(results []*entity.DeliveryResult) (sent, failed int) {
	for _, result := range results {
		if result.Delivered() {
			sent++
		} else {
			failed++
		}
	}

	return sent, failed
}
