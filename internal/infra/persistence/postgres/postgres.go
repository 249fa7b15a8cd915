package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"strik/config"
	"strik/internal/domain/lifecycle"
	"strik/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolStatsDBName    = "strik"
	poolCheckInterval  = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
	poolWaitLogMessage = "[Postgres] Connection pool wait"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
}

// New opens the shared PostgreSQL connection. The pool stats are exported on
// the service registry as go_sql_* series labelled db_name="strik", and pool
// contention is logged while the app runs.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Single-statement writes run bare; batch inserts open their own transaction.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if err := registerPoolStats(params.Registry, sqlDB); err != nil {
		return nil, err
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go watchPoolWaits(watchCtx, params.Logger, sqlDB.Stats, poolCheckInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func registerPoolStats(registry prometheus.Registerer, sqlDB *sql.DB) error {
	if registry == nil {
		return nil
	}

	if err := registry.Register(collectors.NewDBStatsCollector(sqlDB, poolStatsDBName)); err != nil {
		return errors.Wrap(err, "failed to register PostgreSQL pool stats")
	}

	return nil
}

// poolWait is the contention seen between two pool snapshots
type poolWait struct {
	count    int64
	duration time.Duration
	inUse    int
	maxOpen  int
}

func (w poolWait) average() time.Duration {
	if w.count == 0 {
		return 0
	}

	return w.duration / time.Duration(w.count)
}

func (w poolWait) level() slog.Level {
	if w.duration >= poolWaitWarnAfter {
		return slog.LevelWarn
	}

	return slog.LevelDebug
}

// poolWaitSince reports whether any caller waited for a connection after prev
func poolWaitSince(prev, cur sql.DBStats) (poolWait, bool) {
	wait := poolWait{
		count:    cur.WaitCount - prev.WaitCount,
		duration: cur.WaitDuration - prev.WaitDuration,
		inUse:    cur.InUse,
		maxOpen:  cur.MaxOpenConnections,
	}

	return wait, wait.count > 0
}

// watchPoolWaits logs pool contention until ctx is done. The weekly run's
// parallel scoring is the usual source.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, stats func() sql.DBStats, interval time.Duration) {
	if logger == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := stats()
			if wait, waited := poolWaitSince(prev, cur); waited {
				logger.LogAttrs(ctx, wait.level(), poolWaitLogMessage,
					slog.Int64("waits", wait.count),
					slog.Duration("waited", wait.duration),
					slog.Duration("avg_wait", wait.average()),
					slog.Int("in_use", wait.inUse),
					slog.Int("max_open", wait.maxOpen),
				)
			}
			prev = cur
		}
	}
}
