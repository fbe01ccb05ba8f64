package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/starwars-api/internal/errs"
	"github.com/deppfellow/starwars-api/internal/model"
	"github.com/deppfellow/starwars-api/internal/repository"
	"github.com/deppfellow/starwars-api/internal/server"
	"github.com/deppfellow/starwars-api/internal/testinfra"
)

func newTestServices(t *testing.T) (*server.Server, *Services) {
	t.Helper()

	s := testinfra.NewTestServer(t)
	services, err := NewService(s, repository.NewRepositories(s))
	require.NoError(t, err)
	return s, services
}

func requireHTTPError(t *testing.T, err error, status int, code string) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, code, httpErr.Code)
	return httpErr
}

func TestUserService_Resolve(t *testing.T) {
	ctx := context.Background()
	s, services := newTestServices(t)

	_, err := services.Users.Resolve(ctx, 0)
	httpErr := requireHTTPError(t, err, http.StatusNotFound, errs.CodeUserNotFound)
	assert.Equal(t, errs.MsgUserNotFound, httpErr.Message)

	first := testinfra.InsertUser(t, s.DB.DB, "luke@rebelalliance.org")
	second := testinfra.InsertUser(t, s.DB.DB, "leia@rebelalliance.org")

	user, err := services.Users.Resolve(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, first, user.ID)

	user, err = services.Users.Resolve(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "leia@rebelalliance.org", user.Email)

	_, err = services.Users.Resolve(ctx, 999)
	requireHTTPError(t, err, http.StatusNotFound, errs.CodeUserNotFound)
}

func TestFavoritoService_Personaje(t *testing.T) {
	ctx := context.Background()
	s, services := newTestServices(t)

	userID := testinfra.InsertUser(t, s.DB.DB, "luke@rebelalliance.org")
	testinfra.InsertPersonajeWithID(t, s.DB.DB, 7, "Luke Skywalker")

	created, err := services.Favoritos.AddPersonaje(ctx, 0, 7)
	require.NoError(t, err)
	assert.Equal(t, userID, created.UserID)
	assert.EqualValues(t, 7, created.PersonajeID)

	_, err = services.Favoritos.AddPersonaje(ctx, 0, 7)
	httpErr := requireHTTPError(t, err, http.StatusBadRequest, errs.CodeFavoritoAlreadyExists)
	assert.Equal(t, errs.MsgFavoriteExists, httpErr.Message)

	_, err = services.Favoritos.AddPersonaje(ctx, 0, 999)
	httpErr = requireHTTPError(t, err, http.StatusNotFound, errs.CodePersonajeNotFound)
	assert.Equal(t, "Personaje not found", httpErr.Message)

	listed, err := services.Favoritos.ListPersonajes(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	removed, err := services.Favoritos.RemovePersonaje(ctx, userID, 7)
	require.NoError(t, err)
	assert.Equal(t, &model.Mensaje{Mensaje: errs.MsgPersonajeFavoriteRemove}, removed)

	_, err = services.Favoritos.RemovePersonaje(ctx, userID, 7)
	httpErr = requireHTTPError(t, err, http.StatusNotFound, errs.CodeFavoritoNotFound)
	assert.Equal(t, errs.MsgFavoriteMissing, httpErr.Message)

	listed, err = services.Favoritos.ListPersonajes(ctx)
	require.NoError(t, err)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
}

func TestFavoritoService_Planeta(t *testing.T) {
	ctx := context.Background()
	s, services := newTestServices(t)

	testinfra.InsertUser(t, s.DB.DB, "luke@rebelalliance.org")
	leia := testinfra.InsertUser(t, s.DB.DB, "leia@rebelalliance.org")
	planetaID := testinfra.InsertPlaneta(t, s.DB.DB, "Alderaan")

	created, err := services.Favoritos.AddPlaneta(ctx, leia, planetaID)
	require.NoError(t, err)
	assert.Equal(t, leia, created.UserID)
	assert.Equal(t, "Alderaan", created.Planeta.Nombre)

	// The same planet is still free for the default caller.
	_, err = services.Favoritos.AddPlaneta(ctx, 0, planetaID)
	require.NoError(t, err)

	_, err = services.Favoritos.AddPlaneta(ctx, leia, 999)
	requireHTTPError(t, err, http.StatusNotFound, errs.CodePlanetaNotFound)

	_, err = services.Favoritos.AddPlaneta(ctx, 999, planetaID)
	requireHTTPError(t, err, http.StatusNotFound, errs.CodeUserNotFound)

	removed, err := services.Favoritos.RemovePlaneta(ctx, leia, planetaID)
	require.NoError(t, err)
	assert.Equal(t, errs.MsgPlanetaFavoriteRemove, removed.Mensaje)

	listed, err := services.Favoritos.ListPlanetas(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestUserService_Favorites(t *testing.T) {
	ctx := context.Background()
	s, services := newTestServices(t)

	userID := testinfra.InsertUser(t, s.DB.DB, "luke@rebelalliance.org")
	planetaID := testinfra.InsertPlaneta(t, s.DB.DB, "Tatooine")
	personajeID := testinfra.InsertPersonaje(t, s.DB.DB, "Han Solo")

	favorites, err := services.Users.Favorites(ctx, 0)
	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)

	// Planet first, so ordering cannot come from insertion order.
	_, err = services.Favoritos.AddPlaneta(ctx, userID, planetaID)
	require.NoError(t, err)
	_, err = services.Favoritos.AddPersonaje(ctx, userID, personajeID)
	require.NoError(t, err)

	favorites, err = services.Users.Favorites(ctx, userID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.IsType(t, model.FavoritoPersonaje{}, favorites[0])
	assert.IsType(t, model.FavoritoPlaneta{}, favorites[1])
}

func TestReferenceServices(t *testing.T) {
	ctx := context.Background()
	s, services := newTestServices(t)

	personajes, err := services.Personajes.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, personajes)
	assert.Empty(t, personajes)

	id := testinfra.InsertPersonaje(t, s.DB.DB, "Yoda")
	personaje, err := services.Personajes.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Yoda", personaje.Nombre)

	_, err = services.Personajes.Get(ctx, 999)
	requireHTTPError(t, err, http.StatusNotFound, errs.CodePersonajeNotFound)

	_, err = services.Planetas.Get(ctx, 999)
	requireHTTPError(t, err, http.StatusNotFound, errs.CodePlanetaNotFound)
}

func TestCached_WithoutRedis(t *testing.T) {
	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"Hoth"}, nil
	}

	var nilCache *referenceCache
	got, err := cached(context.Background(), nilCache, "planetas", load)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hoth"}, got)

	logger := zerolog.Nop()
	disabled := &referenceCache{ttl: time.Minute, logger: &logger}
	_, err = cached(context.Background(), disabled, "planetas", load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCached_UnreachableRedisFallsBack(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	logger := zerolog.Nop()
	c := &referenceCache{client: client, ttl: time.Minute, logger: &logger}

	got, err := cached(context.Background(), c, "personaje:1", func(context.Context) (*model.Personaje, error) {
		return &model.Personaje{ID: 1, Nombre: "Luke Skywalker"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Luke Skywalker", got.Nombre)

	loadErr := errors.New("boom")
	_, err = cached(context.Background(), c, "personaje:2", func(context.Context) (*model.Personaje, error) {
		return nil, loadErr
	})
	assert.ErrorIs(t, err, loadErr)
}

func TestAddFavorite_ForeignKeyViolationNamesMissingRow(t *testing.T) {
	ctx := context.Background()
	s, services := newTestServices(t)

	userID := testinfra.InsertUser(t, s.DB.DB, "luke@rebelalliance.org")
	testinfra.InsertPersonajeWithID(t, s.DB.DB, 7, "Luke Skywalker")
	store := services.Favoritos.repos.FavoritosPersonaje

	// The first lookup passes, as if the row was deleted right after it.
	staleLookup := func() func(context.Context, int64) error {
		calls := 0
		return func(ctx context.Context, id int64) error {
			calls++
			if calls == 1 {
				return nil
			}
			_, err := services.Favoritos.repos.Personajes.GetByID(ctx, id)
			return err
		}
	}

	_, err := addFavorite[model.FavoritoPersonaje](ctx, store, staleLookup(), userID, 999)
	requireHTTPError(t, err, http.StatusNotFound, errs.CodePersonajeNotFound)

	_, err = addFavorite[model.FavoritoPersonaje](ctx, store, staleLookup(), 999, 7)
	requireHTTPError(t, err, http.StatusNotFound, errs.CodeUserNotFound)
}
