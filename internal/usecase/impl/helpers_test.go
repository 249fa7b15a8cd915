package impl

import (
	"encoding/json"
	"log/slog"
	"testing"

	"strik/internal/domain/entity"
	mockSvc "strik/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// quietMetrics accepts any observation
func quietMetrics(t *testing.T) *mockSvc.MockMetricsRecorder {
	t.Helper()

	metrics := mockSvc.NewMockMetricsRecorder(t)
	metrics.EXPECT().ObserveDispatch(mock.Anything, mock.Anything).Return().Maybe()
	metrics.EXPECT().ObserveEvent(mock.Anything, mock.Anything).Return().Maybe()
	metrics.EXPECT().ObserveLeaderboardRun(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	return metrics
}

func strPtr(s string) *string {
	return &s
}

func profile(id uuid.UUID, username string, token *string) *entity.Profile {
	return &entity.Profile{ID: id, Username: username, FCMToken: token}
}

func accepted(a, b uuid.UUID) *entity.Friendship {
	return &entity.Friendship{RequesterID: a, ReceiverID: b, Status: entity.FriendshipStatusAccepted}
}

func insertEvent(t *testing.T, table string, record any) *entity.ChangeEvent {
	t.Helper()

	raw, err := json.Marshal(record)
	require.NoError(t, err)

	event := &entity.ChangeEvent{Type: "INSERT", Schema: "public", Record: raw}
	if table != "" {
		event.Table = &table
	}

	return event
}
