package impl

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"strik/internal/domain/entity"
	"strik/internal/errors"
	"strik/internal/usecase"

	"github.com/google/uuid"
)

var challengeCaptionPattern = regexp.MustCompile(`^Progres Habit Challenge '([^']+)'`)

// circlePolicy is the per-table phrasing of a friend-circle fan-out
type circlePolicy struct {
	notificationType entity.NotificationType
	titleFormat      string // receives the creator name
	body             string
	contentAsBody    bool // use the record content as body when present

	captionPattern     *regexp.Regexp
	patternTitleFormat string // receives the creator name and the first capture
	patternBody        string
}

var (
	storyPolicy = circlePolicy{
		notificationType:   entity.NotificationTypeNewStory,
		titleFormat:        "%s bikin momentz baru!",
		body:               "gas liat sekarang!",
		captionPattern:     challengeCaptionPattern,
		patternTitleFormat: "%s selesain habit challenge '%s'",
		patternBody:        "Cek momentz-nya buat liat update!",
	}

	postPolicy = circlePolicy{
		notificationType: entity.NotificationTypeNewPost,
		titleFormat:      "%s ngepost!",
		body:             "Cek postingan baru!",
		contentAsBody:    true,
	}
)

func (p circlePolicy) render(creatorName, caption, content string) (title, body string) {
	if p.captionPattern != nil {
		if match := p.captionPattern.FindStringSubmatch(caption); match != nil {
			return fmt.Sprintf(p.patternTitleFormat, creatorName, match[1]), p.patternBody
		}
	}

	body = p.body
	if p.contentAsBody && strings.TrimSpace(content) != "" {
		body = content
	}

	return fmt.Sprintf(p.titleFormat, creatorName), body
}

// circleFanOut is one creator's activity to announce to their friends
type circleFanOut struct {
	policy    circlePolicy
	creatorID uuid.UUID
	caption   string
	content   string
	data      func(creatorName string) map[string]string
}

// fanOutToCircle pushes the activity to every reachable friend of the creator
func (r *eventRouter) fanOutToCircle(ctx context.Context, fanOut *circleFanOut) (*usecase.RouteResult, error) {
	creator, err := r.findOptionalProfile(ctx, fanOut.creatorID)
	if err != nil {
		return nil, err
	}
	creatorName := creator.DisplayName(fallbackActorName)

	rows, err := r.friendshipRepo.FindAcceptedFriendshipsByUser(ctx, fanOut.creatorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find friendships")
	}

	friendIDs := entity.FriendIDs(rows, fanOut.creatorID)
	if len(friendIDs) == 0 {
		return noop(msgNoFriends), nil
	}

	profiles, err := r.profileRepo.FindReachableProfilesByIDs(ctx, friendIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find friend profiles")
	}

	title, body := fanOut.policy.render(creatorName, fanOut.caption, fanOut.content)
	data := fanOut.data(creatorName)

	requests := make([]*PushRequest, 0, len(profiles))
	for _, profile := range profiles {
		if !profile.Reachable() {
			continue
		}
		requests = append(requests, &PushRequest{
			RecipientID: profile.ID,
			DeviceToken: profile.PushToken(),
			Title:       title,
			Body:        body,
			Type:        fanOut.policy.notificationType,
			Data:        data,
		})
	}

	if len(requests) == 0 {
		return noop(msgNoReachableFriends), nil
	}

	return r.deliver(ctx, requests)
}
