package impl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "strik/internal/delivery/context"
	"strik/internal/domain/constants"
	"strik/internal/domain/entity"
	domainerrors "strik/internal/domain/errors"
	"strik/internal/domain/repository"
	"strik/internal/domain/service"
	"strik/internal/errors"
	"strik/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	fallbackActorName        = "Someone"
	defaultNotificationTitle = "Strik!"
	defaultNotificationBody  = "Notification"

	reactionTitle      = "Ada reaksi baru di momentz kamu!"
	reactionBodyFormat = "%s bereaksi %s ke momentz kamu"
)

// No-op outcomes reported back to the event source
const (
	msgIgnoredNonInsert     = "Ignored: Not an INSERT event"
	msgUnhandled            = "Unhandled event/payload"
	msgNoFriends            = "No friends to notify"
	msgNoReachableFriends   = "No friends have FCM tokens"
	msgRecipientUnreachable = "User has no FCM token"
	msgOwnerUnreachable     = "Story owner has no FCM token"
	msgSelfReaction         = "Self reaction ignored"
	msgPostReaction         = "Post reactions are not notified"
	msgReactionNoTarget     = "Reaction has no target"
	msgSentFormat           = "Sent %d notifications"
	msgInvalidFormat        = "Ignored: invalid %s record"
)

// Event outcomes for metrics
const (
	outcomeHandled = "handled"
	outcomeIgnored = "ignored"
	outcomeInvalid = "invalid"
	outcomeError   = "error"
)

type eventRouter struct {
	logger         *slog.Logger
	validate       *validator.Validate
	profileRepo    repository.ProfileRepository
	friendshipRepo repository.FriendshipRepository
	storyRepo      repository.StoryRepository
	gateway        service.PushGateway
	dispatcher     *PushDispatcher
	metrics        service.MetricsRecorder
}

// EventRouterParams holds dependencies for the event router, injected by Fx.
type EventRouterParams struct {
	fx.In

	Logger         *slog.Logger
	ProfileRepo    repository.ProfileRepository
	FriendshipRepo repository.FriendshipRepository
	StoryRepo      repository.StoryRepository
	Gateway        service.PushGateway
	Dispatcher     *PushDispatcher
	Metrics        service.MetricsRecorder
}

// NewEventRouter creates the change-event router
func NewEventRouter(params EventRouterParams) usecase.EventUsecase {
	return &eventRouter{
		logger:         params.Logger,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		profileRepo:    params.ProfileRepo,
		friendshipRepo: params.FriendshipRepo,
		storyRepo:      params.StoryRepo,
		gateway:        params.Gateway,
		dispatcher:     params.Dispatcher,
		metrics:        params.Metrics,
	}
}

// Route implements usecase.EventUsecase
func (r *eventRouter) Route(ctx context.Context, event *entity.ChangeEvent) (*usecase.RouteResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
	table := event.TableName()
	label := table
	if label == "" {
		label = constants.EventSourceDirect
	}

	result, err := r.route(ctx, event)
	if err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			logger.Warn("[Router] Ignoring invalid record",
				slog.String("table", label),
				slog.Any("error", err),
			)
			r.metrics.ObserveEvent(label, outcomeInvalid)

			return &usecase.RouteResult{Message: fmt.Sprintf(msgInvalidFormat, label)}, nil
		}

		r.metrics.ObserveEvent(label, outcomeError)

		return nil, err
	}

	outcome := outcomeHandled
	if len(result.Deliveries) == 0 {
		outcome = outcomeIgnored
	}
	r.metrics.ObserveEvent(label, outcome)

	logger.Info("[Router] Event routed",
		slog.String("table", label),
		slog.String("message", result.Message),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func (r *eventRouter) route(ctx context.Context, event *entity.ChangeEvent) (*usecase.RouteResult, error) {
	if event.Type != constants.EventTypeInsert {
		return noop(msgIgnoredNonInsert), nil
	}

	switch event.TableName() {
	case constants.TableStories:
		return r.routeStory(ctx, event)
	case constants.TablePosts:
		return r.routePost(ctx, event)
	case constants.TableReactions:
		return r.routeReaction(ctx, event)
	case constants.TableNotifications:
		return r.routeNotification(ctx, event)
	case "":
		return r.routeDirect(ctx, event)
	default:
		return noop(msgUnhandled), nil
	}
}

func (r *eventRouter) routeStory(ctx context.Context, event *entity.ChangeEvent) (*usecase.RouteResult, error) {
	var record usecase.StoryRecord
	if err := r.decodeRecord(event, &record, true); err != nil {
		return nil, err
	}

	return r.fanOutToCircle(ctx, &circleFanOut{
		policy:    storyPolicy,
		creatorID: record.UserID,
		caption:   record.Caption,
		data: func(creatorName string) map[string]string {
			return map[string]string{
				"story_id":   record.ID.String(),
				"username":   creatorName,
				"media_url":  record.MediaURL,
				"created_at": record.CreatedAt,
			}
		},
	})
}

func (r *eventRouter) routePost(ctx context.Context, event *entity.ChangeEvent) (*usecase.RouteResult, error) {
	var record usecase.PostRecord
	if err := r.decodeRecord(event, &record, true); err != nil {
		return nil, err
	}

	content := ""
	if record.Content != nil {
		content = *record.Content
	}

	return r.fanOutToCircle(ctx, &circleFanOut{
		policy:    postPolicy,
		creatorID: record.UserID,
		content:   content,
		data: func(string) map[string]string {
			return map[string]string{"post_id": record.ID.String()}
		},
	})
}

func (r *eventRouter) routeReaction(ctx context.Context, event *entity.ChangeEvent) (*usecase.RouteResult, error) {
	var record usecase.ReactionRecord
	if err := r.decodeRecord(event, &record, true); err != nil {
		return nil, err
	}

	switch {
	case record.StoryID != nil:
		return r.notifyStoryReaction(ctx, &record)
	case record.PostID != nil:
		return noop(msgPostReaction), nil
	default:
		return noop(msgReactionNoTarget), nil
	}
}

func (r *eventRouter) notifyStoryReaction(ctx context.Context, record *usecase.ReactionRecord) (*usecase.RouteResult, error) {
	story, err := r.storyRepo.FindStoryByID(ctx, *record.StoryID)
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("story " + record.StoryID.String())
		}

		return nil, errors.Wrap(err, "failed to find reacted story")
	}

	if story.UserID == record.UserID {
		return noop(msgSelfReaction), nil
	}

	owner, err := r.profileRepo.FindProfileByID(ctx, story.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("profile " + story.UserID.String())
		}

		return nil, errors.Wrap(err, "failed to find story owner")
	}

	if !owner.Reachable() {
		return noop(msgOwnerUnreachable), nil
	}

	reactor, err := r.findOptionalProfile(ctx, record.UserID)
	if err != nil {
		return nil, err
	}

	reactionID := ""
	if record.ID != uuid.Nil {
		reactionID = record.ID.String()
	}

	return r.deliver(ctx, []*PushRequest{{
		RecipientID: owner.ID,
		DeviceToken: owner.PushToken(),
		Title:       reactionTitle,
		Body:        fmt.Sprintf(reactionBodyFormat, reactor.DisplayName(fallbackActorName), record.Emoji),
		Type:        entity.NotificationTypeStoryReaction,
		Data: map[string]string{
			"story_id":    story.ID.String(),
			"reaction_id": reactionID,
			"reactor_id":  record.UserID.String(),
		},
	}})
}

func (r *eventRouter) routeNotification(ctx context.Context, event *entity.ChangeEvent) (*usecase.RouteResult, error) {
	var record usecase.NotificationPayload
	if err := r.decodeRecord(event, &record, false); err != nil {
		return nil, err
	}

	if record.RecipientID == uuid.Nil {
		return noop(msgUnhandled), nil
	}

	notificationType := entity.NotificationType(record.Type)
	if notificationType == "" {
		notificationType = entity.NotificationTypeGeneral
	}

	return r.notifyRecipient(ctx, record.RecipientID, record.Title, record.Body, notificationType, map[string]string{
		"post_id":      optionalID(record.PostID),
		"story_id":     optionalID(record.StoryID),
		"habit_log_id": optionalID(record.HabitLogID),
	})
}

func (r *eventRouter) routeDirect(ctx context.Context, event *entity.ChangeEvent) (*usecase.RouteResult, error) {
	var record usecase.DirectPayload
	if err := r.decodeRecord(event, &record, false); err != nil {
		return nil, err
	}

	if record.RecipientID == uuid.Nil {
		return noop(msgUnhandled), nil
	}

	data := stringifyData(record.Data)
	notificationType := entity.NotificationType(data[entity.DataKeyType])
	if notificationType == "" {
		notificationType = entity.NotificationTypeGeneral
	}

	return r.notifyRecipient(ctx, record.RecipientID, record.Title, record.Body, notificationType, data)
}

// notifyRecipient is the single-recipient lookup-and-push path
func (r *eventRouter) notifyRecipient(
	ctx context.Context,
	recipientID uuid.UUID,
	title, body string,
	notificationType entity.NotificationType,
	data map[string]string,
) (*usecase.RouteResult, error) {
	recipient, err := r.findOptionalProfile(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	if !recipient.Reachable() {
		return noop(msgRecipientUnreachable), nil
	}

	return r.deliver(ctx, []*PushRequest{{
		RecipientID: recipient.ID,
		DeviceToken: recipient.PushToken(),
		Title:       orDefault(title, defaultNotificationTitle),
		Body:        orDefault(body, defaultNotificationBody),
		Type:        notificationType,
		Data:        data,
	}})
}

// deliver opens one gateway session for the invocation and fans out
func (r *eventRouter) deliver(ctx context.Context, requests []*PushRequest) (*usecase.RouteResult, error) {
	session, err := r.gateway.Open(ctx)
	if err != nil {
		return nil, err
	}

	results := r.dispatcher.FanOut(ctx, session, requests)
	sent, failed := countDelivered(results)

	return &usecase.RouteResult{
		Message:    fmt.Sprintf(msgSentFormat, sent),
		Sent:       sent,
		Failed:     failed,
		Deliveries: results,
	}, nil
}

// findOptionalProfile returns nil without error when the profile does not exist
func (r *eventRouter) findOptionalProfile(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	profile, err := r.profileRepo.FindProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// decodeRecord unmarshals the event record into dst, optionally running struct validation.
// Any failure is reported as ErrValidationFailed.
func (r *eventRouter) decodeRecord(event *entity.ChangeEvent, dst any, validate bool) error {
	if !event.HasRecord() {
		return domainerrors.ErrValidationFailed.WithDetails("event has no record")
	}

	if err := json.Unmarshal(event.Record, dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if validate {
		if err := r.validate.Struct(dst); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
	}

	return nil
}

func noop(message string) *usecase.RouteResult {
	return &usecase.RouteResult{Message: message}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func optionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}

	return id.String()
}

// stringifyData flattens an arbitrary JSON object into string values.
// Nested values are re-encoded as compact JSON; null becomes an empty string.
func stringifyData(data map[string]any) map[string]string {
	out := make(map[string]string, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case nil:
			out[key] = ""
		case string:
			out[key] = v
		case map[string]any, []any:
			var buf bytes.Buffer
			if err := json.NewEncoder(&buf).Encode(v); err != nil {
				out[key] = fmt.Sprint(v)

				continue
			}
			out[key] = strings.TrimSpace(buf.String())
		default:
			out[key] = fmt.Sprint(v)
		}
	}

	return out
}
