package main

import (
	"context"
	"log/slog"
	"os"

	"strik/config"
	"strik/internal/delivery"
	"strik/internal/delivery/job"
	logs "strik/internal/infra/log"
	"strik/internal/infra/metrics"
	"strik/internal/infra/persistence/postgres"
	"strik/internal/infra/pubsub"
	"strik/internal/usecase/impl"

	"go.uber.org/fx"
)

type runJobParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Jobs []delivery.Delivery `group:"jobs"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			runJobs,
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
			postgres.NewHabitRepository,
			postgres.NewLeaderboardRepository,
			postgres.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return pubsub.Module
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLeaderboardService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				job.NewLeaderboardJob,
				fx.ResultTags(`group:"jobs"`),
			),
		),
	)
}

// runJobs starts the jobs once every start hook has run and shuts the app
// down with a non-zero exit code if any of them failed
func runJobs(ctx context.Context, params runJobParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				for _, job := range params.Jobs {
					if err := job.Serve(ctx); err != nil {
						exitCode = 1
					}
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", err))
					os.Exit(1)
				}
			}()

			return nil
		},
	})
}
