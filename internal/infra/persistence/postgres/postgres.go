package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"staffportal/config"
	"staffportal/internal/domain/lifecycle"
	"staffportal/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval  = 5 * time.Second
	poolWaitWarnDuration = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the portal database.
// Statements run without GORM's implicit transaction; multi-step writes go through TransactionManager.Execute.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(sqlDB, params.Logger)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := prepare(ctx, db, sqlDB, params.Config, params.Logger); err != nil {
				return err
			}

			go monitor.run(poolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			monitor.stop()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// prepare checks connectivity, migrates when enabled and refuses to start on a schema
// that lacks the indexes the repositories depend on.
func prepare(ctx context.Context, db *gorm.DB, sqlDB *sql.DB, cfg *config.Config, logger *slog.Logger) error {
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	if cfg.Env.AutoMigrate {
		if err := Migrate(ctx, db); err != nil {
			return err
		}
		logger.Info("Database schema migrated")
	}

	return VerifySchema(ctx, db)
}

// poolMonitor reports connection pool contention. Nothing is logged while the pool keeps up.
type poolMonitor struct {
	db     *sql.DB
	logger *slog.Logger
	done   chan struct{}
}

func newPoolMonitor(db *sql.DB, logger *slog.Logger) *poolMonitor {
	return &poolMonitor{db: db, logger: logger, done: make(chan struct{})}
}

func (m *poolMonitor) run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := m.db.Stats()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			cur := m.db.Stats()
			m.report(prev, cur)
			prev = cur
		}
	}
}

func (m *poolMonitor) report(prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnDuration {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(context.Background(), level, "Postgres pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}

func (m *poolMonitor) stop() {
	select {
	case <-m.done:
	default:
		close(m.done)
	}
}
