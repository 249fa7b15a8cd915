package main

import (
	"context"
	"log/slog"
	"os"

	"strik/config"
	"strik/internal/delivery"
	"strik/internal/delivery/worker"
	"strik/internal/delivery/worker/handler"
	"strik/internal/infra/auth/google"
	logs "strik/internal/infra/log"
	"strik/internal/infra/metrics"
	"strik/internal/infra/notification"
	"strik/internal/infra/persistence/postgres"
	"strik/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewFriendshipRepository,
			postgres.NewStoryRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		google.Module,
		fx.Provide(
			notification.NewPushGateway,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPushDispatcher,
			impl.NewEventRouter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEventHandler,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))

						// Trigger graceful shutdown to execute all OnStop hooks
						if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
							slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
							os.Exit(1)
						}
					}
				}()
			}

			return nil
		},
	})
}
