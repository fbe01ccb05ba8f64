// Package database contains the logic for establishing
// connections to the backing store.
//
// Two backends share one *sql.DB handle and one SQL dialect:
//   - PostgreSQL through a pgx connection pool (pgxpool) exposed via pgx/stdlib,
//     with query tracing/logging (pgx tracelog) and optional New Relic instrumentation (nrpgx5)
//   - DuckDB, a local file-backed store used when no postgres URL is configured
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"

	"github.com/deppfellow/starwars-api/internal/config"
	loggerConfig "github.com/deppfellow/starwars-api/internal/logger"
)

// Database wraps the shared *sql.DB handle and a logger.
//
// Pool is only set for the PostgreSQL backend.
type Database struct {
	DB     *sql.DB
	Pool   *pgxpool.Pool
	Driver string
	log    *zerolog.Logger
}

// multiTracer allows chaining multiple tracers.
//
// pgx supports a single Tracer in ConnConfig, so this adapter runs
// the New Relic tracer and the local tracelog.TraceLog side by side.
type multiTracer struct {
	tracers []any
}

// TraceQueryStart implements pgx tracer interface.
func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

// TraceQueryEnd implements pgx tracer interface.
func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

// DatabasePingTimeout defines the number of seconds to wait for a ping
// before considering the database "unreachable".
const DatabasePingTimeout = 10

// New opens the configured backend and pings it.
//
// Inputs:
//   - cfg: application config (URL / path and pool settings)
//   - logger: main app logger
//   - loggerService: optional New Relic service (nil if not configured)
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	var (
		database *Database
		err      error
	)

	switch cfg.Database.Driver() {
	case config.DriverPostgres:
		database, err = newPostgres(cfg, logger, loggerService)
	default:
		database, err = newDuckDB(cfg, logger)
	}
	if err != nil {
		return nil, err
	}

	database.DB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	database.DB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	database.DB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	database.DB.SetConnMaxIdleTime(time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second)

	// Ping the DB with a timeout, so startup fails fast if DB is down.
	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = database.DB.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("driver", database.Driver).Msg("connected to the database")

	return database, nil
}

func newPostgres(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	pgxPoolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)

	// Add New Relic PostgreSQL instrumentation.
	if loggerService != nil && loggerService.GetApplication() != nil {
		pgxPoolConfig.ConnConfig.Tracer = nrpgx5.NewTracer()
	}

	// In local env, enable SQL query logging using pgx tracelog + zerolog.
	// This is very noisy, which is why it's only in local.
	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		localTracer := &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(loggerConfig.NewPgxLogger(globalLevel)),
			LogLevel: tracelog.LogLevel(loggerConfig.GetPgxTraceLogLevel(globalLevel)),
		}

		if pgxPoolConfig.ConnConfig.Tracer != nil {
			pgxPoolConfig.ConnConfig.Tracer = &multiTracer{
				tracers: []any{pgxPoolConfig.ConnConfig.Tracer, localTracer},
			}
		} else {
			pgxPoolConfig.ConnConfig.Tracer = localTracer
		}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	return &Database{
		DB:     stdlib.OpenDBFromPool(pool),
		Pool:   pool,
		Driver: config.DriverPostgres,
		log:    logger,
	}, nil
}

func newDuckDB(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	path := cfg.Database.DuckDBPath()

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb database: %w", err)
	}

	return &Database{
		DB:     db,
		Driver: config.DriverDuckDB,
		log:    logger,
	}, nil
}

// Ping verifies the backend is reachable.
func (db *Database) Ping(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}

// Close closes the *sql.DB handle and, for PostgreSQL, the underlying pool.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection pool")
	err := db.DB.Close()
	if db.Pool != nil {
		db.Pool.Close()
	}
	return err
}
