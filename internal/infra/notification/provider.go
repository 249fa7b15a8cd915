package notification

import (
	"context"
	"log/slog"

	"strik/config"
	"strik/internal/domain/constants"
	"strik/internal/domain/service"
	"strik/internal/errors"
	"strik/internal/infra/auth/google"

	"go.uber.org/fx"
)

// GatewayParams holds dependencies for the push gateway, injected by Fx.
type GatewayParams struct {
	fx.In

	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Tokens  service.TokenProvider
	Account *google.ServiceAccount
}

// NewPushGateway selects the gateway named by fcm.provider
func NewPushGateway(params GatewayParams) (service.PushGateway, error) {
	provider := constants.FCMProviderHTTP
	if params.Config.FCM != nil && params.Config.FCM.Provider != "" {
		provider = params.Config.FCM.Provider
	}

	params.Logger.Info("Initializing push gateway", slog.String("provider", provider))

	switch provider {
	case constants.FCMProviderHTTP:
		return NewHTTPGateway(params.Config.FCM, params.Tokens), nil
	case constants.FCMProviderFirebase:
		return NewFirebaseGateway(params.Ctx, params.Account.ProjectID, params.Account.JSON())
	default:
		return nil, errors.Errorf("unknown fcm provider: %s", provider)
	}
}
