package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"strik/config"
	"strik/internal/domain/entity"
	mockRepo "strik/internal/mocks/repository"
	mockSvc "strik/internal/mocks/service"
	"strik/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	userAna  = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	userBudi = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	userCici = uuid.MustParse("00000000-0000-0000-0000-000000000003")
	userDewi = uuid.MustParse("00000000-0000-0000-0000-000000000004")

	habitAna  = uuid.MustParse("10000000-0000-0000-0000-000000000001")
	habitBudi = uuid.MustParse("10000000-0000-0000-0000-000000000002")
	habitDewi = uuid.MustParse("10000000-0000-0000-0000-000000000004")

	// Monday; the scored week is 2026-03-02 .. 2026-03-08.
	runAt = time.Date(2026, time.March, 9, 10, 30, 0, 0, time.UTC)
)

type leaderboardFixture struct {
	profileRepo      *mockRepo.MockProfileRepository
	friendshipRepo   *mockRepo.MockFriendshipRepository
	habitRepo        *mockRepo.MockHabitRepository
	leaderboardRepo  *mockRepo.MockLeaderboardRepository
	notificationRepo *mockRepo.MockNotificationRepository
	publisher        *mockSvc.MockEventPublisher
	metrics          *mockSvc.MockMetricsRecorder
	cfg              *config.Config
}

func newLeaderboardFixture(t *testing.T) *leaderboardFixture {
	t.Helper()

	return &leaderboardFixture{
		profileRepo:      mockRepo.NewMockProfileRepository(t),
		friendshipRepo:   mockRepo.NewMockFriendshipRepository(t),
		habitRepo:        mockRepo.NewMockHabitRepository(t),
		leaderboardRepo:  mockRepo.NewMockLeaderboardRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
		metrics:          quietMetrics(t),
		cfg: &config.Config{
			Leaderboard: &config.LeaderboardConfig{Timezone: "UTC", Workers: 2},
		},
	}
}

func (fx *leaderboardFixture) service() usecase.LeaderboardUsecase {
	return NewLeaderboardService(LeaderboardServiceParams{
		Logger:           discardLogger(),
		Config:           fx.cfg,
		ProfileRepo:      fx.profileRepo,
		FriendshipRepo:   fx.friendshipRepo,
		HabitRepo:        fx.habitRepo,
		LeaderboardRepo:  fx.leaderboardRepo,
		NotificationRepo: fx.notificationRepo,
		Publisher:        fx.publisher,
		Metrics:          fx.metrics,
	})
}

func habitIDsEqual(expected ...uuid.UUID) any {
	return mock.MatchedBy(func(ids []uuid.UUID) bool {
		return assert.ObjectsAreEqual(expected, ids)
	})
}

// expectFourUserWeek wires ana (101.5), budi (50.5), cici (no habits) and dewi (0).
// Friendships: ana-budi and budi-cici; dewi has none.
func (fx *leaderboardFixture) expectFourUserWeek() {
	fx.profileRepo.EXPECT().FindAllProfiles(mock.Anything).Return([]*entity.Profile{
		profile(userAna, "ana", strPtr("t-ana")),
		profile(userBudi, "budi", strPtr("t-budi")),
		profile(userCici, "cici", nil),
		profile(userDewi, "", nil),
	}, nil)

	fx.habitRepo.EXPECT().FindAllHabits(mock.Anything).Return([]*entity.Habit{
		{ID: habitAna, UserID: userAna, Frequency: entity.HabitFrequencyDaily, DaysOfWeek: []int{1, 3, 5}},
		{ID: habitBudi, UserID: userBudi, Frequency: entity.HabitFrequencyWeekly, FrequencyCount: intPtr(2)},
		{ID: habitDewi, UserID: userDewi, Frequency: entity.HabitFrequencyDaily},
	}, nil)

	fx.friendshipRepo.EXPECT().FindAllAcceptedFriendships(mock.Anything).Return([]*entity.Friendship{
		accepted(userAna, userBudi),
		accepted(userCici, userBudi),
	}, nil)

	fx.habitRepo.EXPECT().CountCompletedLogs(mock.Anything, habitIDsEqual(habitAna), mock.Anything).Return(3, nil)
	fx.habitRepo.EXPECT().CountCompletedLogs(mock.Anything, habitIDsEqual(habitBudi), mock.Anything).Return(1, nil)
	fx.habitRepo.EXPECT().CountCompletedLogs(mock.Anything, habitIDsEqual(habitDewi), mock.Anything).Return(0, nil)
}

func intPtr(v int) *int {
	return &v
}

func TestLeaderboardService_RunWeekly(t *testing.T) {
	fx := newLeaderboardFixture(t)
	fx.expectFourUserWeek()

	var entries []*entity.LeaderboardEntry
	fx.leaderboardRepo.EXPECT().
		BatchCreateEntries(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e []*entity.LeaderboardEntry) { entries = e }).
		Return(nil)

	var notifications []*entity.NotificationRecord
	fx.notificationRepo.EXPECT().
		BatchCreateNotifications(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n []*entity.NotificationRecord) { notifications = n }).
		Return(nil)

	result, err := fx.service().RunWeekly(context.Background(), runAt)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", result.WeekStart)
	assert.Equal(t, 4, result.Participants)
	assert.Equal(t, 2, result.Notifications)
	assert.Zero(t, result.Published)
	assert.True(t, result.LeaderboardPersisted)

	require.Len(t, entries, 4)
	expectedOrder := []uuid.UUID{userAna, userBudi, userCici, userDewi}
	for idx, entry := range entries {
		assert.Equal(t, expectedOrder[idx], entry.UserID)
		assert.Equal(t, idx+1, entry.Rank)
		assert.Equal(t, 4, entry.TotalParticipants)
		assert.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), entry.WeekStartDate)
	}
	assert.InDelta(t, 101.5, entries[0].TotalPoints, 1e-9)
	assert.InDelta(t, 100, entries[0].CompletionRate, 1e-9)
	assert.Equal(t, 3, entries[0].TotalHabits)
	assert.InDelta(t, 50.5, entries[1].TotalPoints, 1e-9)
	assert.Equal(t, 2, entries[1].TotalHabits)
	assert.Zero(t, entries[2].TotalPoints)
	assert.Zero(t, entries[2].TotalHabits)
	assert.Equal(t, 7, entries[3].TotalHabits)

	require.Len(t, notifications, 2)

	budiNote := notifications[0]
	assert.Equal(t, userBudi, budiNote.RecipientID)
	require.NotNil(t, budiNote.SenderID)
	assert.Equal(t, userAna, *budiNote.SenderID)
	assert.Equal(t, entity.NotificationTypeLeaderboardWinner, budiNote.Type)
	assert.Equal(t, "Juara Minggu Ini! 👑", budiNote.Title)
	assert.Equal(t, "ana jadi juara leaderboard di circle kamu minggu lalu!", budiNote.Body)
	assert.False(t, budiNote.IsRead)
	assert.True(t, budiNote.CreatedAt.Equal(runAt))

	ciciNote := notifications[1]
	assert.Equal(t, userCici, ciciNote.RecipientID)
	assert.Equal(t, userBudi, *ciciNote.SenderID)
	assert.Equal(t, "budi jadi juara leaderboard di circle kamu minggu lalu!", ciciNote.Body)
}

func TestLeaderboardService_RunWeekly_LeaderboardFailureContinues(t *testing.T) {
	fx := newLeaderboardFixture(t)
	fx.expectFourUserWeek()

	fx.leaderboardRepo.EXPECT().BatchCreateEntries(mock.Anything, mock.Anything).Return(errors.New("unique violation"))
	fx.notificationRepo.EXPECT().BatchCreateNotifications(mock.Anything, mock.Anything).Return(nil).Once()

	result, err := fx.service().RunWeekly(context.Background(), runAt)
	require.NoError(t, err)
	assert.False(t, result.LeaderboardPersisted)
	assert.Equal(t, 2, result.Notifications)
}

func TestLeaderboardService_RunWeekly_NotificationFailureIsFatal(t *testing.T) {
	fx := newLeaderboardFixture(t)
	fx.metrics = mockSvc.NewMockMetricsRecorder(t)
	fx.expectFourUserWeek()

	fx.leaderboardRepo.EXPECT().BatchCreateEntries(mock.Anything, mock.Anything).Return(nil)
	fx.notificationRepo.EXPECT().BatchCreateNotifications(mock.Anything, mock.Anything).Return(errors.New("connection reset"))
	fx.metrics.EXPECT().
		ObserveLeaderboardRun(0, mock.AnythingOfType("time.Duration"), mock.MatchedBy(func(err error) bool { return err != nil })).
		Return().
		Once()

	result, err := fx.service().RunWeekly(context.Background(), runAt)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestLeaderboardService_RunWeekly_PublishesNotifications(t *testing.T) {
	fx := newLeaderboardFixture(t)
	fx.cfg.Leaderboard.PublishNotifications = true
	fx.expectFourUserWeek()

	fx.leaderboardRepo.EXPECT().BatchCreateEntries(mock.Anything, mock.Anything).Return(nil)
	fx.notificationRepo.EXPECT().
		BatchCreateNotifications(mock.Anything, mock.Anything).
		Run(func(_ context.Context, records []*entity.NotificationRecord) {
			for _, record := range records {
				record.ID = uuid.New()
			}
		}).
		Return(nil)

	var published []*entity.ChangeEvent
	fx.publisher.EXPECT().
		PublishChangeEvent(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *entity.ChangeEvent) { published = append(published, event) }).
		Return(nil).
		Once()
	fx.publisher.EXPECT().
		PublishChangeEvent(mock.Anything, mock.Anything).
		Return(errors.New("topic not found")).
		Once()

	result, err := fx.service().RunWeekly(context.Background(), runAt)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Notifications)
	assert.Equal(t, 1, result.Published)

	require.Len(t, published, 1)
	event := published[0]
	assert.Equal(t, "INSERT", event.Type)
	assert.Equal(t, "notifications", event.TableName())

	var record map[string]any
	require.NoError(t, json.Unmarshal(event.Record, &record))
	assert.Equal(t, userBudi.String(), record["recipient_id"])
	assert.Equal(t, "leaderboard_winner", record["type"])
}

func TestLeaderboardService_RunWeekly_LoneZeroHabitUser(t *testing.T) {
	fx := newLeaderboardFixture(t)

	fx.profileRepo.EXPECT().FindAllProfiles(mock.Anything).Return([]*entity.Profile{profile(userCici, "cici", nil)}, nil)
	fx.habitRepo.EXPECT().FindAllHabits(mock.Anything).Return(nil, nil)
	fx.friendshipRepo.EXPECT().FindAllAcceptedFriendships(mock.Anything).Return(nil, nil)

	var entries []*entity.LeaderboardEntry
	fx.leaderboardRepo.EXPECT().
		BatchCreateEntries(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e []*entity.LeaderboardEntry) { entries = e }).
		Return(nil)

	result, err := fx.service().RunWeekly(context.Background(), runAt)
	require.NoError(t, err)
	assert.Zero(t, result.Notifications)

	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Zero(t, entries[0].TotalPoints)
	assert.Zero(t, entries[0].CompletionRate)
	assert.Zero(t, entries[0].TotalCompleted)
	assert.Equal(t, 1, entries[0].TotalParticipants)
}

func TestLeaderboardService_RunWeekly_TiedWinnerPicksLowestID(t *testing.T) {
	fx := newLeaderboardFixture(t)

	fx.profileRepo.EXPECT().FindAllProfiles(mock.Anything).Return([]*entity.Profile{
		profile(userCici, "cici", nil),
		profile(userBudi, "budi", nil),
		profile(userAna, "ana", nil),
	}, nil)
	fx.habitRepo.EXPECT().FindAllHabits(mock.Anything).Return([]*entity.Habit{
		{ID: habitAna, UserID: userAna, Frequency: entity.HabitFrequencyWeekly},
		{ID: habitBudi, UserID: userBudi, Frequency: entity.HabitFrequencyWeekly},
	}, nil)
	fx.friendshipRepo.EXPECT().FindAllAcceptedFriendships(mock.Anything).Return([]*entity.Friendship{
		accepted(userCici, userBudi),
		accepted(userCici, userAna),
	}, nil)
	fx.habitRepo.EXPECT().CountCompletedLogs(mock.Anything, mock.Anything, mock.Anything).Return(1, nil).Times(2)

	var entries []*entity.LeaderboardEntry
	fx.leaderboardRepo.EXPECT().
		BatchCreateEntries(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e []*entity.LeaderboardEntry) { entries = e }).
		Return(nil)

	var notifications []*entity.NotificationRecord
	fx.notificationRepo.EXPECT().
		BatchCreateNotifications(mock.Anything, mock.Anything).
		Run(func(_ context.Context, n []*entity.NotificationRecord) { notifications = n }).
		Return(nil)

	_, err := fx.service().RunWeekly(context.Background(), runAt)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, userAna, entries[0].UserID)
	assert.Equal(t, userBudi, entries[1].UserID)
	assert.Equal(t, userCici, entries[2].UserID)

	// cici's circle ties ana and budi; budi already leads the budi-cici circle.
	require.Len(t, notifications, 1)
	assert.Equal(t, userCici, notifications[0].RecipientID)
	assert.Equal(t, userAna, *notifications[0].SenderID)
}

func TestLeaderboardService_RunWeekly_CountFailure(t *testing.T) {
	fx := newLeaderboardFixture(t)

	fx.profileRepo.EXPECT().FindAllProfiles(mock.Anything).Return([]*entity.Profile{profile(userAna, "ana", nil)}, nil)
	fx.habitRepo.EXPECT().FindAllHabits(mock.Anything).Return([]*entity.Habit{
		{ID: habitAna, UserID: userAna, Frequency: entity.HabitFrequencyDaily},
	}, nil)
	fx.friendshipRepo.EXPECT().FindAllAcceptedFriendships(mock.Anything).Return(nil, nil)
	fx.habitRepo.EXPECT().CountCompletedLogs(mock.Anything, mock.Anything, mock.Anything).Return(0, errors.New("statement timeout"))

	_, err := fx.service().RunWeekly(context.Background(), runAt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statement timeout")
}

func TestLeaderboardService_RunWeekly_UsesConfiguredZone(t *testing.T) {
	fx := newLeaderboardFixture(t)
	fx.cfg.Leaderboard.Timezone = "Asia/Jakarta"

	fx.profileRepo.EXPECT().FindAllProfiles(mock.Anything).Return(nil, nil)
	fx.habitRepo.EXPECT().FindAllHabits(mock.Anything).Return(nil, nil)
	fx.friendshipRepo.EXPECT().FindAllAcceptedFriendships(mock.Anything).Return(nil, nil)

	// 2026-03-08 20:00 UTC is already Monday 03:00 in Jakarta.
	result, err := fx.service().RunWeekly(context.Background(), time.Date(2026, time.March, 8, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", result.WeekStart)
	assert.Zero(t, result.Participants)
}
