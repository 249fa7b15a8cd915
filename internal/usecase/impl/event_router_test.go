package impl

import (
	"context"
	"testing"
	"time"

	"strik/internal/domain/entity"
	domainerrors "strik/internal/domain/errors"
	"strik/internal/domain/repository"
	mockRepo "strik/internal/mocks/repository"
	mockSvc "strik/internal/mocks/service"
	"strik/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	profileRepo    *mockRepo.MockProfileRepository
	friendshipRepo *mockRepo.MockFriendshipRepository
	storyRepo      *mockRepo.MockStoryRepository
	gateway        *mockSvc.MockPushGateway
	session        *mockSvc.MockPushSession
	metrics        *mockSvc.MockMetricsRecorder
	router         usecase.EventUsecase
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	fx := &routerFixture{
		profileRepo:    mockRepo.NewMockProfileRepository(t),
		friendshipRepo: mockRepo.NewMockFriendshipRepository(t),
		storyRepo:      mockRepo.NewMockStoryRepository(t),
		gateway:        mockSvc.NewMockPushGateway(t),
		session:        mockSvc.NewMockPushSession(t),
		metrics:        quietMetrics(t),
	}
	fx.router = NewEventRouter(EventRouterParams{
		Logger:         discardLogger(),
		ProfileRepo:    fx.profileRepo,
		FriendshipRepo: fx.friendshipRepo,
		StoryRepo:      fx.storyRepo,
		Gateway:        fx.gateway,
		Dispatcher:     NewPushDispatcher(PushDispatcherParams{Logger: discardLogger(), Metrics: fx.metrics}),
		Metrics:        fx.metrics,
	})

	return fx
}

func (fx *routerFixture) expectSession() {
	fx.gateway.EXPECT().Open(mock.Anything).Return(fx.session, nil).Once()
}

func TestEventRouter_IgnoresNonInsert(t *testing.T) {
	fx := newRouterFixture(t)

	event := insertEvent(t, "stories", map[string]any{"id": uuid.New(), "user_id": uuid.New()})
	event.Type = "UPDATE"

	result, err := fx.router.Route(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, "Ignored: Not an INSERT event", result.Message)
	assert.Zero(t, result.Sent)
}

func TestEventRouter_Story_FansOutToReachableFriend(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()

	creator, friend1, friend2 := uuid.New(), uuid.New(), uuid.New()
	storyID := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, creator).Return(profile(creator, "ana", strPtr("creator-token")), nil)
	fx.friendshipRepo.EXPECT().
		FindAcceptedFriendshipsByUser(ctx, creator).
		Return([]*entity.Friendship{accepted(creator, friend1), accepted(friend2, creator)}, nil)
	fx.profileRepo.EXPECT().
		FindReachableProfilesByIDs(ctx, []uuid.UUID{friend1, friend2}).
		Return([]*entity.Profile{profile(friend1, "budi", strPtr("T1")), profile(friend2, "cici", nil)}, nil)
	fx.expectSession()

	var sent *entity.PushMessage
	fx.session.EXPECT().
		Send(ctx, mock.AnythingOfType("*entity.PushMessage")).
		Run(func(_ context.Context, msg *entity.PushMessage) { sent = msg }).
		Return("msg-1", nil).
		Once()

	result, err := fx.router.Route(ctx, insertEvent(t, "stories", map[string]any{
		"id":         storyID,
		"user_id":    creator,
		"caption":    "pagi!",
		"media_url":  "https://cdn.strik.app/s.jpg",
		"created_at": "2026-03-01T07:00:00Z",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Sent 1 notifications", result.Message)
	assert.Equal(t, 1, result.Sent)
	assert.Zero(t, result.Failed)

	require.NotNil(t, sent)
	assert.Equal(t, "T1", sent.DeviceToken)
	assert.Equal(t, entity.NotificationTypeNewStory, sent.Type)
	assert.True(t, sent.DataOnly())
	assert.Equal(t, "ana bikin momentz baru!", sent.Title)
	assert.Equal(t, "gas liat sekarang!", sent.Body)
	assert.Equal(t, storyID.String(), sent.Data["story_id"])
	assert.Equal(t, "ana", sent.Data["username"])
	assert.Equal(t, "https://cdn.strik.app/s.jpg", sent.Data["media_url"])
	assert.Equal(t, "2026-03-01T07:00:00Z", sent.Data["created_at"])
}

func TestEventRouter_Story_ChallengeCaption(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()

	creator, friend := uuid.New(), uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, creator).Return(nil, repository.ErrProfileNotFound)
	fx.friendshipRepo.EXPECT().FindAcceptedFriendshipsByUser(ctx, creator).Return([]*entity.Friendship{accepted(creator, friend)}, nil)
	fx.profileRepo.EXPECT().FindReachableProfilesByIDs(ctx, []uuid.UUID{friend}).Return([]*entity.Profile{profile(friend, "budi", strPtr("T1"))}, nil)
	fx.expectSession()
	fx.session.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *entity.PushMessage) bool {
			return msg.Title == "Someone selesain habit challenge 'Lari 5K'" &&
				msg.Body == "Cek momentz-nya buat liat update!" &&
				msg.Data["username"] == "Someone"
		})).
		Return("msg-1", nil)

	result, err := fx.router.Route(ctx, insertEvent(t, "stories", map[string]any{
		"id":      uuid.New(),
		"user_id": creator,
		"caption": "Progres Habit Challenge 'Lari 5K' hari ke-3",
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestEventRouter_Story_NoFriends(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	creator := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, creator).Return(profile(creator, "ana", nil), nil)
	fx.friendshipRepo.EXPECT().FindAcceptedFriendshipsByUser(ctx, creator).Return(nil, nil)

	result, err := fx.router.Route(ctx, insertEvent(t, "stories", map[string]any{"id": uuid.New(), "user_id": creator}))
	require.NoError(t, err)
	assert.Equal(t, "No friends to notify", result.Message)
}

func TestEventRouter_Story_NoReachableFriends(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	creator, friend := uuid.New(), uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, creator).Return(profile(creator, "ana", nil), nil)
	fx.friendshipRepo.EXPECT().FindAcceptedFriendshipsByUser(ctx, creator).Return([]*entity.Friendship{accepted(friend, creator)}, nil)
	fx.profileRepo.EXPECT().FindReachableProfilesByIDs(ctx, []uuid.UUID{friend}).Return(nil, nil)

	result, err := fx.router.Route(ctx, insertEvent(t, "stories", map[string]any{"id": uuid.New(), "user_id": creator}))
	require.NoError(t, err)
	assert.Equal(t, "No friends have FCM tokens", result.Message)
}

func TestEventRouter_Story_InvalidRecordIsNoop(t *testing.T) {
	fx := newRouterFixture(t)

	result, err := fx.router.Route(context.Background(), insertEvent(t, "stories", map[string]any{"id": uuid.New()}))
	require.NoError(t, err)
	assert.Equal(t, "Ignored: invalid stories record", result.Message)
}

func TestEventRouter_Story_FriendLookupFails(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	creator := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, creator).Return(profile(creator, "ana", nil), nil)
	fx.friendshipRepo.EXPECT().FindAcceptedFriendshipsByUser(ctx, creator).Return(nil, errors.New("connection refused"))

	_, err := fx.router.Route(ctx, insertEvent(t, "stories", map[string]any{"id": uuid.New(), "user_id": creator}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestEventRouter_Story_GatewayAuthFailureIsFatal(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	creator, friend := uuid.New(), uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, creator).Return(profile(creator, "ana", nil), nil)
	fx.friendshipRepo.EXPECT().FindAcceptedFriendshipsByUser(ctx, creator).Return([]*entity.Friendship{accepted(creator, friend)}, nil)
	fx.profileRepo.EXPECT().FindReachableProfilesByIDs(ctx, []uuid.UUID{friend}).Return([]*entity.Profile{profile(friend, "budi", strPtr("T1"))}, nil)
	fx.gateway.EXPECT().Open(ctx).Return(nil, domainerrors.ErrAuthenticationFailed.WithDetails(`{"error":"invalid_grant"}`))

	_, err := fx.router.Route(ctx, insertEvent(t, "stories", map[string]any{"id": uuid.New(), "user_id": creator}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
}

func TestEventRouter_Post_UsesContentAsBody(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	creator, friend := uuid.New(), uuid.New()
	postID := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, creator).Return(profile(creator, "ana", nil), nil)
	fx.friendshipRepo.EXPECT().FindAcceptedFriendshipsByUser(ctx, creator).Return([]*entity.Friendship{accepted(creator, friend)}, nil)
	fx.profileRepo.EXPECT().FindReachableProfilesByIDs(ctx, []uuid.UUID{friend}).Return([]*entity.Profile{profile(friend, "budi", strPtr("T1"))}, nil)
	fx.expectSession()
	fx.session.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *entity.PushMessage) bool {
			return msg.Type == entity.NotificationTypeNewPost &&
				!msg.DataOnly() &&
				msg.Title == "ana ngepost!" &&
				msg.Body == "7 hari streak!" &&
				msg.Data["post_id"] == postID.String()
		})).
		Return("msg-1", nil)

	result, err := fx.router.Route(ctx, insertEvent(t, "posts", map[string]any{
		"id": postID, "user_id": creator, "content": "7 hari streak!",
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestEventRouter_Post_DefaultBody(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	creator, friend := uuid.New(), uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, creator).Return(profile(creator, "ana", nil), nil)
	fx.friendshipRepo.EXPECT().FindAcceptedFriendshipsByUser(ctx, creator).Return([]*entity.Friendship{accepted(creator, friend)}, nil)
	fx.profileRepo.EXPECT().FindReachableProfilesByIDs(ctx, []uuid.UUID{friend}).Return([]*entity.Profile{profile(friend, "budi", strPtr("T1"))}, nil)
	fx.expectSession()
	fx.session.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *entity.PushMessage) bool { return msg.Body == "Cek postingan baru!" })).
		Return("msg-1", nil)

	_, err := fx.router.Route(ctx, insertEvent(t, "posts", map[string]any{"id": uuid.New(), "user_id": creator, "content": nil}))
	require.NoError(t, err)
}

func TestEventRouter_Reaction_NotifiesStoryOwner(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	owner, reactor := uuid.New(), uuid.New()
	storyID, reactionID := uuid.New(), uuid.New()

	fx.storyRepo.EXPECT().FindStoryByID(ctx, storyID).Return(&entity.Story{ID: storyID, UserID: owner, CreatedAt: time.Now()}, nil)
	fx.profileRepo.EXPECT().FindProfileByID(ctx, owner).Return(profile(owner, "ana", strPtr("owner-token")), nil)
	fx.profileRepo.EXPECT().FindProfileByID(ctx, reactor).Return(profile(reactor, "rina", nil), nil)
	fx.expectSession()

	var sent *entity.PushMessage
	fx.session.EXPECT().
		Send(ctx, mock.AnythingOfType("*entity.PushMessage")).
		Run(func(_ context.Context, msg *entity.PushMessage) { sent = msg }).
		Return("msg-1", nil).
		Once()

	result, err := fx.router.Route(ctx, insertEvent(t, "reactions", map[string]any{
		"id": reactionID, "user_id": reactor, "story_id": storyID, "emoji": "🔥",
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)

	require.NotNil(t, sent)
	assert.Equal(t, "owner-token", sent.DeviceToken)
	assert.Equal(t, entity.NotificationTypeStoryReaction, sent.Type)
	assert.False(t, sent.DataOnly())
	assert.Equal(t, "Ada reaksi baru di momentz kamu!", sent.Title)
	assert.Contains(t, sent.Body, "rina")
	assert.Contains(t, sent.Body, "🔥")
	assert.Equal(t, storyID.String(), sent.Data["story_id"])
	assert.Equal(t, reactionID.String(), sent.Data["reaction_id"])
	assert.Equal(t, reactor.String(), sent.Data["reactor_id"])
}

func TestEventRouter_Reaction_SelfReactionIgnored(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	owner, storyID := uuid.New(), uuid.New()

	fx.storyRepo.EXPECT().FindStoryByID(ctx, storyID).Return(&entity.Story{ID: storyID, UserID: owner}, nil)

	result, err := fx.router.Route(ctx, insertEvent(t, "reactions", map[string]any{
		"id": uuid.New(), "user_id": owner, "story_id": storyID, "emoji": "❤️",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Self reaction ignored", result.Message)
	assert.Zero(t, result.Sent)
}

func TestEventRouter_Reaction_OwnerWithoutToken(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	owner, reactor, storyID := uuid.New(), uuid.New(), uuid.New()

	fx.storyRepo.EXPECT().FindStoryByID(ctx, storyID).Return(&entity.Story{ID: storyID, UserID: owner}, nil)
	fx.profileRepo.EXPECT().FindProfileByID(ctx, owner).Return(profile(owner, "ana", strPtr("  ")), nil)

	result, err := fx.router.Route(ctx, insertEvent(t, "reactions", map[string]any{
		"id": uuid.New(), "user_id": reactor, "story_id": storyID, "emoji": "👏",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Story owner has no FCM token", result.Message)
}

func TestEventRouter_Reaction_MissingStoryIsNotFound(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	storyID := uuid.New()

	fx.storyRepo.EXPECT().FindStoryByID(ctx, storyID).Return(nil, repository.ErrStoryNotFound)

	_, err := fx.router.Route(ctx, insertEvent(t, "reactions", map[string]any{
		"id": uuid.New(), "user_id": uuid.New(), "story_id": storyID,
	}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestEventRouter_Reaction_MissingOwnerIsNotFound(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	owner, storyID := uuid.New(), uuid.New()

	fx.storyRepo.EXPECT().FindStoryByID(ctx, storyID).Return(&entity.Story{ID: storyID, UserID: owner}, nil)
	fx.profileRepo.EXPECT().FindProfileByID(ctx, owner).Return(nil, repository.ErrProfileNotFound)

	_, err := fx.router.Route(ctx, insertEvent(t, "reactions", map[string]any{
		"id": uuid.New(), "user_id": uuid.New(), "story_id": storyID,
	}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestEventRouter_Reaction_Targets(t *testing.T) {
	tests := []struct {
		name     string
		record   map[string]any
		expected string
	}{
		{
			name:     "post reaction",
			record:   map[string]any{"id": uuid.New(), "user_id": uuid.New(), "post_id": uuid.New(), "emoji": "🔥"},
			expected: "Post reactions are not notified",
		},
		{
			name:     "no target",
			record:   map[string]any{"id": uuid.New(), "user_id": uuid.New(), "emoji": "🔥"},
			expected: "Reaction has no target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newRouterFixture(t)

			result, err := fx.router.Route(context.Background(), insertEvent(t, "reactions", tt.record))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Message)
		})
	}
}

func TestEventRouter_Notification_PushesRecordVerbatim(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	recipient, sender, habitLogID := uuid.New(), uuid.New(), uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, recipient).Return(profile(recipient, "budi", strPtr("T1")), nil)
	fx.expectSession()
	fx.session.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *entity.PushMessage) bool {
			return msg.Type == entity.NotificationTypeLeaderboardWinner &&
				msg.Title == "Juara Minggu Ini! 👑" &&
				msg.Body == "ana jadi juara leaderboard di circle kamu minggu lalu!" &&
				msg.Data["post_id"] == "" &&
				msg.Data["story_id"] == "" &&
				msg.Data["habit_log_id"] == habitLogID.String()
		})).
		Return("msg-1", nil)

	result, err := fx.router.Route(ctx, insertEvent(t, "notifications", map[string]any{
		"id":           uuid.New(),
		"recipient_id": recipient,
		"sender_id":    sender,
		"type":         "leaderboard_winner",
		"title":        "Juara Minggu Ini! 👑",
		"body":         "ana jadi juara leaderboard di circle kamu minggu lalu!",
		"post_id":      nil,
		"habit_log_id": habitLogID,
	}))
	require.NoError(t, err)
	assert.Equal(t, "Sent 1 notifications", result.Message)
}

func TestEventRouter_Notification_Defaults(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	recipient := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, recipient).Return(profile(recipient, "budi", strPtr("T1")), nil)
	fx.expectSession()
	fx.session.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *entity.PushMessage) bool {
			return msg.Type == entity.NotificationTypeGeneral && msg.Title == "Strik!" && msg.Body == "Notification"
		})).
		Return("msg-1", nil)

	_, err := fx.router.Route(ctx, insertEvent(t, "notifications", map[string]any{"recipient_id": recipient}))
	require.NoError(t, err)
}

func TestEventRouter_Notification_RecipientUnreachable(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	recipient := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, recipient).Return(nil, repository.ErrProfileNotFound)

	result, err := fx.router.Route(ctx, insertEvent(t, "notifications", map[string]any{"recipient_id": recipient}))
	require.NoError(t, err)
	assert.Equal(t, "User has no FCM token", result.Message)
}

func TestEventRouter_Notification_WithoutRecipientIsUnhandled(t *testing.T) {
	fx := newRouterFixture(t)

	result, err := fx.router.Route(context.Background(), insertEvent(t, "notifications", map[string]any{"title": "x"}))
	require.NoError(t, err)
	assert.Equal(t, "Unhandled event/payload", result.Message)
}

func TestEventRouter_Direct_StringifiesData(t *testing.T) {
	fx := newRouterFixture(t)
	ctx := context.Background()
	recipient := uuid.New()

	fx.profileRepo.EXPECT().FindProfileByID(ctx, recipient).Return(profile(recipient, "budi", strPtr("T1")), nil)
	fx.expectSession()
	fx.session.EXPECT().
		Send(ctx, mock.MatchedBy(func(msg *entity.PushMessage) bool {
			return msg.Type == "streak_reminder" &&
				msg.Title == "Jangan putus!" &&
				msg.Data["count"] == "3" &&
				msg.Data["urgent"] == "true" &&
				msg.Data["meta"] == `{"habit":"lari"}` &&
				msg.Data["empty"] == ""
		})).
		Return("msg-1", nil)

	result, err := fx.router.Route(ctx, insertEvent(t, "", map[string]any{
		"recipient_id": recipient,
		"title":        "Jangan putus!",
		"data": map[string]any{
			"type":   "streak_reminder",
			"count":  3,
			"urgent": true,
			"meta":   map[string]any{"habit": "lari"},
			"empty":  nil,
		},
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestEventRouter_Direct_WithoutRecipientIsUnhandled(t *testing.T) {
	fx := newRouterFixture(t)

	result, err := fx.router.Route(context.Background(), insertEvent(t, "", map[string]any{"title": "hi"}))
	require.NoError(t, err)
	assert.Equal(t, "Unhandled event/payload", result.Message)
}

func TestEventRouter_UnknownTable(t *testing.T) {
	fx := newRouterFixture(t)

	result, err := fx.router.Route(context.Background(), insertEvent(t, "comments", map[string]any{"id": uuid.New()}))
	require.NoError(t, err)
	assert.Equal(t, "Unhandled event/payload", result.Message)
}

func TestEventRouter_RecordsOutcomeMetrics(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	router := NewEventRouter(EventRouterParams{
		Logger:         discardLogger(),
		ProfileRepo:    profileRepo,
		FriendshipRepo: mockRepo.NewMockFriendshipRepository(t),
		StoryRepo:      mockRepo.NewMockStoryRepository(t),
		Gateway:        mockSvc.NewMockPushGateway(t),
		Dispatcher:     NewPushDispatcher(PushDispatcherParams{Logger: discardLogger(), Metrics: metrics}),
		Metrics:        metrics,
	})
	ctx := context.Background()
	recipient := uuid.New()

	metrics.EXPECT().ObserveEvent("posts", "invalid").Return().Once()
	metrics.EXPECT().ObserveEvent("direct", "ignored").Return().Once()
	metrics.EXPECT().ObserveEvent("notifications", "error").Return().Once()

	profileRepo.EXPECT().FindProfileByID(ctx, recipient).Return(nil, errors.New("timeout")).Once()

	_, err := router.Route(ctx, insertEvent(t, "posts", map[string]any{"content": "x"}))
	require.NoError(t, err)
	_, err = router.Route(ctx, insertEvent(t, "", map[string]any{}))
	require.NoError(t, err)
	_, err = router.Route(ctx, insertEvent(t, "notifications", map[string]any{"recipient_id": recipient}))
	require.Error(t, err)
}
