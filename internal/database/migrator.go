package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/rs/zerolog"

	"github.com/deppfellow/starwars-api/internal/config"
)

// Embed all SQL files under migrations/ at compile time.
// The binary carries its migrations, so nothing is read from disk at runtime.
//
//go:embed migrations/*.sql
var migrations embed.FS

// versionTable stores the applied migration version for both backends.
const versionTable = "schema_version"

// migrationSeparator splits a tern migration into its up and down halves.
const migrationSeparator = "---- create above / drop below ----"

// Migrate brings the schema of the configured backend up to date.
//
// PostgreSQL is migrated with jackc/tern over a single pgx connection.
// DuckDB replays the "create" half of the same files through database/sql.
func Migrate(ctx context.Context, logger *zerolog.Logger, cfg *config.Config, db *Database) error {
	if cfg.Database.Driver() == config.DriverPostgres {
		return migratePostgres(ctx, logger, cfg.Database.URL)
	}
	return migrateSQL(ctx, logger, db.DB)
}

func migratePostgres(ctx context.Context, logger *zerolog.Logger, dsn string) error {
	// Using a single connection avoids pool complexity for a one-time action.
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("constructing database migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("retrieving database migrations subtree: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("loading database migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	if err := m.Migrate(ctx); err != nil {
		return err
	}

	logMigration(logger, int(from), len(m.Migrations))
	return nil
}

// migrateSQL applies pending migrations on a plain database/sql handle.
// Each migration runs in its own transaction together with the version bump.
func migrateSQL(ctx context.Context, logger *zerolog.Logger, db *sql.DB) error {
	files, err := migrationFiles()
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS "+versionTable+" (version INTEGER NOT NULL)"); err != nil {
		return fmt.Errorf("creating %s table: %w", versionTable, err)
	}

	var from int
	row := db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM "+versionTable)
	if err := row.Scan(&from); err != nil {
		return fmt.Errorf("retrieving current database migration version: %w", err)
	}

	for i := from; i < len(files); i++ {
		body, err := migrations.ReadFile("migrations/" + files[i])
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", files[i], err)
		}
		up, _, _ := strings.Cut(string(body), migrationSeparator)

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, up); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("applying migration %s: %w", files[i], err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO "+versionTable+" (version) VALUES ($1)", i+1); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("recording migration %s: %w", files[i], err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %s: %w", files[i], err)
		}
	}

	logMigration(logger, from, len(files))
	return nil
}

// migrationFiles lists the embedded migration names in apply order.
func migrationFiles() ([]string, error) {
	entries, err := fs.ReadDir(migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("listing database migrations: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func logMigration(logger *zerolog.Logger, from, to int) {
	if from == to {
		logger.Info().Msgf("database schema up to date, version %d", to)
	} else {
		logger.Info().Msgf("migrated database schema, from %d to %d", from, to)
	}
}
