// Package testinfra provides shared fixtures for package tests.
//
// Tests run against a throwaway DuckDB file by default. Builds tagged
// "integration" can also start a PostgreSQL container, see containers.go.
package testinfra

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/starwars-api/internal/config"
	"github.com/deppfellow/starwars-api/internal/database"
	"github.com/deppfellow/starwars-api/internal/server"
)

// NewTestConfig returns the default config pointed at a DuckDB file inside
// the test's temp dir.
func NewTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Primary.Env = "test"
	cfg.Database.Path = filepath.Join(t.TempDir(), "starwars.duckdb")
	return cfg
}

// NewTestDatabase opens a migrated DuckDB database that is closed when the
// test ends.
func NewTestDatabase(t *testing.T) *database.Database {
	t.Helper()

	db, _ := newMigratedDatabase(t, NewTestConfig(t))
	return db
}

// NewTestServer builds a Server around a migrated DuckDB database, without
// Redis and with a no-op logger.
func NewTestServer(t *testing.T) *server.Server {
	t.Helper()

	db, cfg := newMigratedDatabase(t, NewTestConfig(t))
	logger := zerolog.Nop()
	return server.NewWithDatabase(cfg, &logger, db)
}

func newMigratedDatabase(t *testing.T, cfg *config.Config) (*database.Database, *config.Config) {
	t.Helper()

	logger := zerolog.Nop()

	db, err := database.New(cfg, &logger, nil)
	require.NoError(t, err, "open test database")
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, database.Migrate(context.Background(), &logger, cfg, db), "migrate test database")
	return db, cfg
}

// InsertUser stores an active user and returns its id.
func InsertUser(t *testing.T, db *sql.DB, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO "user" (email, password, is_active) VALUES ($1, $2, $3) RETURNING id`,
		email, "secret", true,
	).Scan(&id)
	require.NoError(t, err, "insert user %s", email)
	return id
}

// InsertPersonaje stores a character with only its name set and returns its id.
func InsertPersonaje(t *testing.T, db *sql.DB, nombre string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO personaje (nombre) VALUES ($1) RETURNING id`, nombre,
	).Scan(&id)
	require.NoError(t, err, "insert personaje %s", nombre)
	return id
}

// InsertPersonajeWithID stores a character under a fixed id.
func InsertPersonajeWithID(t *testing.T, db *sql.DB, id int64, nombre string) {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO personaje (id, nombre) VALUES ($1, $2)`, id, nombre,
	)
	require.NoError(t, err, "insert personaje %d", id)
}

// InsertPlaneta stores a planet with only its name set and returns its id.
func InsertPlaneta(t *testing.T, db *sql.DB, nombre string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO planeta (nombre) VALUES ($1) RETURNING id`, nombre,
	).Scan(&id)
	require.NoError(t, err, "insert planeta %s", nombre)
	return id
}
