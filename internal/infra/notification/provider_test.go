package notification

import (
	"context"
	"log/slog"
	"testing"

	"strik/config"
	mockSvc "strik/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPushGateway_SelectsProvider(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	gateway, err := NewPushGateway(GatewayParams{
		Ctx:    context.Background(),
		Config: &config.Config{FCM: &config.FCMConfig{}},
		Logger: logger,
		Tokens: mockSvc.NewMockTokenProvider(t),
	})
	require.NoError(t, err)
	assert.IsType(t, &httpGateway{}, gateway)

	_, err = NewPushGateway(GatewayParams{
		Ctx:    context.Background(),
		Config: &config.Config{FCM: &config.FCMConfig{Provider: "apns"}},
		Logger: logger,
		Tokens: mockSvc.NewMockTokenProvider(t),
	})
	assert.Error(t, err)
}
