package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"strik/config"
	"strik/internal/domain/constants"
	"strik/internal/domain/entity"
	"strik/internal/domain/repository"
	"strik/internal/domain/service"
	"strik/internal/errors"
	"strik/internal/usecase"
	"strik/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	winnerTitle        = "Juara Minggu Ini! 👑"
	winnerBodyFormat   = "%s jadi juara leaderboard di circle kamu minggu lalu!"
	fallbackWinnerName = "User"
)

type leaderboardService struct {
	logger           *slog.Logger
	cfg              *config.LeaderboardConfig
	profileRepo      repository.ProfileRepository
	friendshipRepo   repository.FriendshipRepository
	habitRepo        repository.HabitRepository
	leaderboardRepo  repository.LeaderboardRepository
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	metrics          service.MetricsRecorder
}

// LeaderboardServiceParams holds dependencies for the weekly leaderboard, injected by Fx.
type LeaderboardServiceParams struct {
	fx.In

	Logger           *slog.Logger
	Config           *config.Config
	ProfileRepo      repository.ProfileRepository
	FriendshipRepo   repository.FriendshipRepository
	HabitRepo        repository.HabitRepository
	LeaderboardRepo  repository.LeaderboardRepository
	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	Metrics          service.MetricsRecorder
}

// NewLeaderboardService creates the weekly scoring and circle-ranking service
func NewLeaderboardService(params LeaderboardServiceParams) usecase.LeaderboardUsecase {
	return &leaderboardService{
		logger:           params.Logger,
		cfg:              params.Config.Leaderboard,
		profileRepo:      params.ProfileRepo,
		friendshipRepo:   params.FriendshipRepo,
		habitRepo:        params.HabitRepo,
		leaderboardRepo:  params.LeaderboardRepo,
		notificationRepo: params.NotificationRepo,
		publisher:        params.Publisher,
		metrics:          params.Metrics,
	}
}

// RunWeekly implements usecase.LeaderboardUsecase
func (s *leaderboardService) RunWeekly(ctx context.Context, now time.Time) (*usecase.WeeklyRunResult, error) {
	started := time.Now()
	result, err := s.runWeekly(ctx, now.In(s.cfg.Location()))

	participants := 0
	if result != nil {
		participants = result.Participants
	}
	elapsed := time.Since(started)
	s.metrics.ObserveLeaderboardRun(participants, elapsed, err)

	if err != nil {
		s.logger.Error("[Leaderboard] Weekly run failed",
			slog.Any("error", err),
			slog.String("elapsed", util.FormatDuration(elapsed)),
		)

		return nil, err
	}

	s.logger.Info("[Leaderboard] Weekly run completed",
		slog.String("week_start", result.WeekStart),
		slog.Int("participants", result.Participants),
		slog.Int("notifications", result.Notifications),
		slog.Int("published", result.Published),
		slog.Bool("leaderboard_persisted", result.LeaderboardPersisted),
		slog.String("elapsed", util.FormatDuration(elapsed)),
	)

	return result, nil
}

func (s *leaderboardService) runWeekly(ctx context.Context, now time.Time) (*usecase.WeeklyRunResult, error) {
	window := entity.PriorWeekWindow(now)

	profiles, err := s.profileRepo.FindAllProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profiles")
	}

	habits, err := s.habitRepo.FindAllHabits(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load habits")
	}

	friendships, err := s.friendshipRepo.FindAllAcceptedFriendships(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load friendships")
	}
	graph := entity.NewFriendGraph(friendships)

	scores, err := s.computeScores(ctx, window, profiles, groupHabitsByUser(habits))
	if err != nil {
		return nil, err
	}

	ranked := entity.RankScores(scores)
	entries := entity.NewLeaderboardEntries(window, ranked)

	result := &usecase.WeeklyRunResult{
		WeekStart:    window.StartDate(),
		Participants: len(ranked),
	}

	if len(entries) > 0 {
		if err := s.leaderboardRepo.BatchCreateEntries(ctx, entries); err != nil {
			s.logger.Error("[Leaderboard] Failed to insert leaderboard, continuing",
				slog.String("week_start", result.WeekStart),
				slog.Int("entries", len(entries)),
				slog.Any("error", err),
			)
		} else {
			result.LeaderboardPersisted = true
		}
	}

	notifications := buildWinnerNotifications(graph, scores, now)
	if len(notifications) == 0 {
		return result, nil
	}

	if err := s.notificationRepo.BatchCreateNotifications(ctx, notifications); err != nil {
		return nil, errors.Wrap(err, "failed to insert winner notifications")
	}
	result.Notifications = len(notifications)

	if s.cfg.PublishNotifications {
		result.Published = s.publishNotifications(ctx, notifications)
	}

	return result, nil
}

// computeScores counts completions for every profile with bounded parallelism.
// The returned slice follows the profile order.
func (s *leaderboardService) computeScores(
	ctx context.Context,
	window entity.WeekWindow,
	profiles []*entity.Profile,
	habitsByUser map[uuid.UUID][]*entity.Habit,
) ([]*entity.WeeklyScore, error) {
	scores := make([]*entity.WeeklyScore, len(profiles))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(s.cfg.Workers, 1))

	for idx, profile := range profiles {
		habits := habitsByUser[profile.ID]
		username := profile.DisplayName("")

		if len(habits) == 0 {
			scores[idx] = entity.NewWeeklyScore(profile.ID, username, 0, 0)

			continue
		}

		group.Go(func() error {
			habitIDs := make([]uuid.UUID, 0, len(habits))
			for _, habit := range habits {
				habitIDs = append(habitIDs, habit.ID)
			}

			completed, err := s.habitRepo.CountCompletedLogs(groupCtx, habitIDs, window)
			if err != nil {
				return errors.Wrapf(err, "failed to count completed logs for user %s", profile.ID)
			}

			scores[idx] = entity.NewWeeklyScore(profile.ID, username, entity.ExpectedUnitsOf(habits), completed)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return scores, nil
}

func (s *leaderboardService) publishNotifications(ctx context.Context, notifications []*entity.NotificationRecord) int {
	published := 0
	for _, notification := range notifications {
		event, err := notificationChangeEvent(notification)
		if err != nil {
			s.logger.Warn("[Leaderboard] Failed to encode notification event",
				slog.String("notification_id", notification.ID.String()),
				slog.Any("error", err),
			)

			continue
		}

		if err := s.publisher.PublishChangeEvent(ctx, event); err != nil {
			s.logger.Warn("[Leaderboard] Failed to publish notification event",
				slog.String("notification_id", notification.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		published++
	}

	return published
}

// buildWinnerNotifications emits one record per user whose circle is led by a friend with a positive score
func buildWinnerNotifications(graph *entity.FriendGraph, scores []*entity.WeeklyScore, now time.Time) []*entity.NotificationRecord {
	byUser := make(map[uuid.UUID]*entity.WeeklyScore, len(scores))
	for _, score := range scores {
		byUser[score.UserID] = score
	}

	var notifications []*entity.NotificationRecord
	for _, score := range scores {
		winner, ok := entity.CircleWinner(graph, byUser, score.UserID)
		if !ok || winner.HybridScore <= 0 || winner.UserID == score.UserID {
			continue
		}

		winnerName := winner.Username
		if winnerName == "" {
			winnerName = fallbackWinnerName
		}
		senderID := winner.UserID

		notifications = append(notifications, &entity.NotificationRecord{
			RecipientID: score.UserID,
			SenderID:    &senderID,
			Type:        entity.NotificationTypeLeaderboardWinner,
			Title:       winnerTitle,
			Body:        fmt.Sprintf(winnerBodyFormat, winnerName),
			IsRead:      false,
			CreatedAt:   now,
		})
	}

	return notifications
}

func groupHabitsByUser(habits []*entity.Habit) map[uuid.UUID][]*entity.Habit {
	grouped := make(map[uuid.UUID][]*entity.Habit)
	for _, habit := range habits {
		grouped[habit.UserID] = append(grouped[habit.UserID], habit)
	}

	return grouped
}

// notificationChangeEvent wraps a persisted notification as the INSERT event a database webhook would emit
func notificationChangeEvent(notification *entity.NotificationRecord) (*entity.ChangeEvent, error) {
	record, err := json.Marshal(notification)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal notification")
	}

	table := constants.TableNotifications

	return &entity.ChangeEvent{
		Type:   constants.EventTypeInsert,
		Table:  &table,
		Schema: "public",
		Record: record,
	}, nil
}
