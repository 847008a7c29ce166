package common

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/scanworks/scanvault/gen/ent"
)

// DatabaseResult bundles an open canonical store with its cleanup.
type DatabaseResult struct {
	Client  *ent.Client
	pool    *pgxpool.Pool
	Cleanup func()

	sqldb *sql.DB
}

// InitDatabase opens the canonical store per config. Driver "sqlite" opens an
// in-memory database and creates the schema, for dev and one-shot CLI runs.
func InitDatabase(ctx context.Context, cfg *Config, logger *slog.Logger) (*DatabaseResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Database.Driver == "sqlite" {
		return initSQLite(ctx, logger)
	}
	return initPostgres(ctx, cfg, logger)
}

func initSQLite(ctx context.Context, logger *slog.Logger) (*DatabaseResult, error) {
	db, err := sql.Open("sqlite", "file:scanvault?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}
	logger.Info("using in-memory sqlite store")
	return &DatabaseResult{
		Client: client,
		sqldb:  db,
		Cleanup: func() {
			if err := client.Close(); err != nil {
				logger.Error("failed to close ent client", "error", err)
			}
		},
	}, nil
}

func initPostgres(ctx context.Context, cfg *Config, logger *slog.Logger) (*DatabaseResult, error) {
	logger.Info("connecting to database")
	pc, err := pgxpool.ParseConfig(cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to parse database config", "error", err)
		return nil, err
	}
	pc.MaxConns = cfg.Database.MaxConns
	pc.MinConns = cfg.Database.MinConns
	pc.MaxConnLifetime = cfg.Database.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.Database.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "scanvault"
	if cfg.Database.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.Database.StatementTimeout.String()
	}

	dialCtx := ctx
	if cfg.Database.DialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, cfg.Database.DialTimeout)
		defer cancel()
	}
	pool, err := pgxpool.NewWithConfig(dialCtx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, err
	}

	// Wrap pool as *sql.DB for Ent
	db := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))

	logger.Info("successfully connected to database")
	return &DatabaseResult{
		Client: client,
		pool:   pool,
		Cleanup: func() {
			logger.Info("closing database connections")
			if err := client.Close(); err != nil {
				logger.Error("failed to close ent client", "error", err)
			}
			pool.Close()
		},
	}, nil
}

// Ping checks store connectivity for either driver.
func (d *DatabaseResult) Ping(ctx context.Context, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if d.pool != nil {
		return d.pool.Ping(ctx)
	}
	if d.sqldb != nil {
		return d.sqldb.PingContext(ctx)
	}
	return nil
}
