package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/starwars-api/internal/model"
	"github.com/deppfellow/starwars-api/internal/repository"
	"github.com/deppfellow/starwars-api/internal/sqlerr"
	"github.com/deppfellow/starwars-api/internal/testinfra"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := testinfra.NewTestDatabase(t)
	repos := repository.New(db.DB)

	_, err := repos.Users.First(ctx)
	require.ErrorIs(t, err, sql.ErrNoRows)
	assert.Contains(t, err.Error(), "table:user:")

	users, err := repos.Users.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	luke := &model.User{Email: "luke@rebelalliance.org", Password: "x", IsActive: true}
	require.NoError(t, repos.Users.Create(ctx, luke))
	leia := &model.User{Email: "leia@rebelalliance.org", Password: "x", IsActive: true}
	require.NoError(t, repos.Users.Create(ctx, leia))
	assert.Greater(t, leia.ID, luke.ID)

	first, err := repos.Users.First(ctx)
	require.NoError(t, err)
	assert.Equal(t, luke.ID, first.ID)

	byEmail, err := repos.Users.GetByEmail(ctx, "leia@rebelalliance.org")
	require.NoError(t, err)
	assert.Equal(t, leia.ID, byEmail.ID)
	assert.True(t, byEmail.IsActive)

	_, err = repos.Users.GetByID(ctx, 999)
	require.ErrorIs(t, err, sql.ErrNoRows)

	dup := &model.User{Email: "luke@rebelalliance.org", Password: "x", IsActive: true}
	err = repos.Users.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, sqlerr.IsUniqueViolation(err), "got %v", err)
}

func TestReferenceRepositories(t *testing.T) {
	ctx := context.Background()
	db := testinfra.NewTestDatabase(t)
	repos := repository.New(db.DB)

	altura := int64(172)
	ojos := "blue"
	luke := &model.Personaje{Nombre: "Luke Skywalker", Altura: &altura, ColorOjos: &ojos}
	require.NoError(t, repos.Personajes.Create(ctx, luke))

	got, err := repos.Personajes.GetByID(ctx, luke.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luke Skywalker", got.Nombre)
	require.NotNil(t, got.Altura)
	assert.EqualValues(t, 172, *got.Altura)
	assert.Nil(t, got.Peso)

	byName, err := repos.Personajes.GetByNombre(ctx, "Luke Skywalker")
	require.NoError(t, err)
	assert.Equal(t, luke.ID, byName.ID)

	_, err = repos.Personajes.GetByID(ctx, 999)
	require.ErrorIs(t, err, sql.ErrNoRows)
	assert.Contains(t, err.Error(), "table:personaje:")

	tatooine := &model.Planeta{Nombre: "Tatooine"}
	require.NoError(t, repos.Planetas.Create(ctx, tatooine))
	hoth := &model.Planeta{Nombre: "Hoth"}
	require.NoError(t, repos.Planetas.Create(ctx, hoth))

	planetas, err := repos.Planetas.List(ctx)
	require.NoError(t, err)
	require.Len(t, planetas, 2)
	assert.Equal(t, "Tatooine", planetas[0].Nombre)
	assert.Nil(t, planetas[0].Clima)

	_, err = repos.Planetas.GetByID(ctx, 999)
	require.ErrorIs(t, err, sql.ErrNoRows)
	assert.Contains(t, err.Error(), "table:planeta:")
}

func TestFavoritoPersonajeRepository(t *testing.T) {
	ctx := context.Background()
	db := testinfra.NewTestDatabase(t)
	repos := repository.New(db.DB)

	userID := testinfra.InsertUser(t, db.DB, "luke@rebelalliance.org")
	otherID := testinfra.InsertUser(t, db.DB, "leia@rebelalliance.org")
	testinfra.InsertPersonajeWithID(t, db.DB, 7, "Luke Skywalker")

	exists, err := repos.FavoritosPersonaje.Exists(ctx, userID, 7)
	require.NoError(t, err)
	assert.False(t, exists)

	created, err := repos.FavoritosPersonaje.Create(ctx, userID, 7)
	require.NoError(t, err)
	assert.Equal(t, userID, created.UserID)
	assert.EqualValues(t, 7, created.PersonajeID)
	assert.Equal(t, "Luke Skywalker", created.Personaje.Nombre)

	exists, err = repos.FavoritosPersonaje.Exists(ctx, userID, 7)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repos.FavoritosPersonaje.Create(ctx, userID, 7)
	require.Error(t, err)
	assert.True(t, sqlerr.IsUniqueViolation(err), "got %v", err)

	_, err = repos.FavoritosPersonaje.Create(ctx, userID, 999)
	require.Error(t, err)
	assert.True(t, sqlerr.IsForeignKeyViolation(err), "got %v", err)

	_, err = repos.FavoritosPersonaje.Create(ctx, otherID, 7)
	require.NoError(t, err)

	all, err := repos.FavoritosPersonaje.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := repos.FavoritosPersonaje.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.ID, mine[0].ID)

	deleted, err := repos.FavoritosPersonaje.Delete(ctx, userID, 7)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repos.FavoritosPersonaje.Delete(ctx, userID, 7)
	require.NoError(t, err)
	assert.False(t, deleted)

	mine, err = repos.FavoritosPersonaje.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestFavoritoPlanetaRepository(t *testing.T) {
	ctx := context.Background()
	db := testinfra.NewTestDatabase(t)
	repos := repository.New(db.DB)

	userID := testinfra.InsertUser(t, db.DB, "luke@rebelalliance.org")
	planetaID := testinfra.InsertPlaneta(t, db.DB, "Tatooine")

	created, err := repos.FavoritosPlaneta.Create(ctx, userID, planetaID)
	require.NoError(t, err)
	assert.Equal(t, "Tatooine", created.Planeta.Nombre)

	got, err := repos.FavoritosPlaneta.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repos.FavoritosPlaneta.GetByID(ctx, 999)
	require.True(t, errors.Is(err, sql.ErrNoRows))

	deleted, err := repos.FavoritosPlaneta.Delete(ctx, userID, planetaID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestRepositoriesInTransaction(t *testing.T) {
	ctx := context.Background()
	db := testinfra.NewTestDatabase(t)

	tx, err := db.DB.BeginTx(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, repository.New(tx).Planetas.Create(ctx, &model.Planeta{Nombre: "Alderaan"}))
	require.NoError(t, tx.Rollback())

	planetas, err := repository.New(db.DB).Planetas.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, planetas)
}
