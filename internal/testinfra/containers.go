//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/deppfellow/starwars-api/internal/config"
	"github.com/deppfellow/starwars-api/internal/database"
)

const (
	DefaultPostgresImage = "postgres:16-alpine"
	DefaultPostgresPort  = "5432"

	postgresUser     = "starwars"
	postgresPassword = "starwars"
	postgresDatabase = "starwars"
)

// SkipIfNoDocker skips the test if Docker is not available.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	if !IsDockerAvailable() {
		t.Skip("Skipping test: Docker not available")
	}
}

// IsDockerAvailable checks if Docker daemon is running and accessible.
func IsDockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "docker", "info")
	return cmd.Run() == nil
}

// CleanupContainer terminates container, logging instead of failing.
func CleanupContainer(t *testing.T, ctx context.Context, container testcontainers.Container) {
	t.Helper()

	if container != nil {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	}
}

// StartPostgres runs a disposable PostgreSQL container and returns its URL.
func StartPostgres(ctx context.Context, t *testing.T) string {
	t.Helper()
	SkipIfNoDocker(t)

	req := testcontainers.ContainerRequest{
		Image:        DefaultPostgresImage,
		ExposedPorts: []string{DefaultPostgresPort + "/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     postgresUser,
			"POSTGRES_PASSWORD": postgresPassword,
			"POSTGRES_DB":       postgresDatabase,
		},
		// Postgres restarts once after initdb, so the ready line shows up twice.
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(DefaultPostgresPort+"/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "create postgres container")
	t.Cleanup(func() {
		CleanupContainer(t, context.Background(), container)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err, "get container host")

	port, err := container.MappedPort(ctx, DefaultPostgresPort)
	require.NoError(t, err, "get mapped port")

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, host, port.Port(), postgresDatabase)
}

// NewPostgresDatabase opens and migrates (with tern) a PostgreSQL database
// running in a fresh container.
func NewPostgresDatabase(t *testing.T) *database.Database {
	t.Helper()

	ctx := context.Background()

	cfg := config.DefaultConfig()
	cfg.Primary.Env = "test"
	cfg.Database.URL = StartPostgres(ctx, t)

	db, _ := newMigratedDatabase(t, cfg)
	require.Equal(t, config.DriverPostgres, db.Driver)
	return db
}
