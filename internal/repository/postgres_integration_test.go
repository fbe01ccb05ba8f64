//go:build integration

package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/starwars-api/internal/errs"
	"github.com/deppfellow/starwars-api/internal/repository"
	"github.com/deppfellow/starwars-api/internal/seed"
	"github.com/deppfellow/starwars-api/internal/sqlerr"
	"github.com/deppfellow/starwars-api/internal/testinfra"
)

// TestPostgres_Favorites runs the favorites round trip against a real
// PostgreSQL server migrated with tern.
func TestPostgres_Favorites(t *testing.T) {
	ctx := context.Background()
	db := testinfra.NewPostgresDatabase(t)

	logger := zerolog.Nop()
	result, err := seed.Run(ctx, db.DB, &logger)
	require.NoError(t, err)
	assert.Equal(t, len(seed.Personajes()), result.Personajes)

	repos := repository.New(db.DB)

	user, err := repos.Users.First(ctx)
	require.NoError(t, err)
	luke, err := repos.Personajes.GetByNombre(ctx, "Luke Skywalker")
	require.NoError(t, err)

	created, err := repos.FavoritosPersonaje.Create(ctx, user.ID, luke.ID)
	require.NoError(t, err)
	assert.Equal(t, luke.Nombre, created.Personaje.Nombre)

	_, err = repos.FavoritosPersonaje.Create(ctx, user.ID, luke.ID)
	assert.True(t, sqlerr.IsUniqueViolation(err), "got %v", err)

	_, err = repos.FavoritosPersonaje.Create(ctx, user.ID, 999)
	assert.True(t, sqlerr.IsForeignKeyViolation(err), "got %v", err)

	// Ids past the int4 range are plain misses, not encode failures.
	_, err = repos.Personajes.GetByID(ctx, 3_000_000_000)
	assert.Equal(t, "PERSONAJE_NOT_FOUND", errCode(sqlerr.HandleError(err)))
	_, err = repos.Users.GetByID(ctx, 3_000_000_000)
	assert.Equal(t, "USER_NOT_FOUND", errCode(sqlerr.HandleError(err)))
	exists, err := repos.FavoritosPlaneta.Exists(ctx, user.ID, 3_000_000_000)
	require.NoError(t, err)
	assert.False(t, exists)

	deleted, err := repos.FavoritosPersonaje.Delete(ctx, user.ID, luke.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// A second seed run inserts nothing.
	result, err = seed.Run(ctx, db.DB, &logger)
	require.NoError(t, err)
	assert.Zero(t, result.Users+result.Personajes+result.Planetas)
}

func errCode(err error) string {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return ""
}
