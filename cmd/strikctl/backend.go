package main

import (
	"context"

	"strik/config"
	"strik/internal/domain/service"
	"strik/internal/infra/auth/google"
	logs "strik/internal/infra/log"
	"strik/internal/infra/metrics"
	"strik/internal/infra/notification"
	"strik/internal/infra/persistence/postgres"
	"strik/internal/usecase"
	"strik/internal/usecase/impl"

	"go.uber.org/fx"
)

// fxBackend builds a short-lived fx app per command. fx only constructs
// what the populated target needs, so the token command never opens the
// database.
type fxBackend struct{}

func (fxBackend) OpenEvents(ctx context.Context) (usecase.EventUsecase, func(context.Context) error, error) {
	var events usecase.EventUsecase
	stop, err := start(ctx, &events)

	return events, stop, err
}

func (fxBackend) OpenTokens(ctx context.Context) (service.TokenProvider, func(context.Context) error, error) {
	var tokens service.TokenProvider
	stop, err := start(ctx, &tokens)

	return tokens, stop, err
}

func start(ctx context.Context, target any) (func(context.Context) error, error) {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.NewStderr,
			func() context.Context { return ctx },
			postgres.New,
			postgres.NewProfileRepository,
			postgres.NewFriendshipRepository,
			postgres.NewStoryRepository,
			notification.NewPushGateway,
			impl.NewPushDispatcher,
			impl.NewEventRouter,
		),
		metrics.Module,
		google.Module,
		fx.Populate(target),
	)
	if err := app.Start(ctx); err != nil {
		return nil, err
	}

	return app.Stop, nil
}
