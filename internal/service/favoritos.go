package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/starwars-api/internal/errs"
	"github.com/deppfellow/starwars-api/internal/model"
	"github.com/deppfellow/starwars-api/internal/repository"
	"github.com/deppfellow/starwars-api/internal/sqlerr"
)

// FavoritoService manages the two favorites join tables.
type FavoritoService struct {
	repos *repository.Repositories
	users *UserService
}

func NewFavoritoService(repos *repository.Repositories, users *UserService) *FavoritoService {
	return &FavoritoService{repos: repos, users: users}
}

// favoriteStore is the shape shared by both favorites repositories.
type favoriteStore[T any] interface {
	Exists(ctx context.Context, userID, itemID int64) (bool, error)
	Create(ctx context.Context, userID, itemID int64) (*T, error)
	Delete(ctx context.Context, userID, itemID int64) (bool, error)
}

// addFavorite checks for an existing pair, then that the item exists, then
// inserts. A unique violation from a concurrent insert is the same conflict.
// A foreign-key violation means the item or the user vanished in between;
// the item is looked up again to tell which.
func addFavorite[T any](ctx context.Context, store favoriteStore[T], lookup func(context.Context, int64) error, userID, itemID int64) (*T, error) {
	exists, err := store.Exists(ctx, userID, itemID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if exists {
		return nil, errs.NewConflictError()
	}

	if err := lookup(ctx, itemID); err != nil {
		return nil, sqlerr.HandleError(err)
	}

	created, err := store.Create(ctx, userID, itemID)
	if err != nil {
		if sqlerr.IsUniqueViolation(err) {
			return nil, errs.NewConflictError()
		}
		if sqlerr.IsForeignKeyViolation(err) {
			if lookupErr := lookup(ctx, itemID); lookupErr != nil {
				return nil, sqlerr.HandleError(lookupErr)
			}
			return nil, errs.NewUserNotFoundError()
		}
		return nil, sqlerr.HandleError(err)
	}
	return created, nil
}

// removeFavorite deletes the pair, answering 404 when it is not stored.
func removeFavorite[T any](ctx context.Context, store favoriteStore[T], userID, itemID int64, confirmation string) (*model.Mensaje, error) {
	exists, err := store.Exists(ctx, userID, itemID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if !exists {
		return nil, errs.NewFavoriteNotFoundError()
	}

	deleted, err := store.Delete(ctx, userID, itemID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	// Lost a race with a concurrent delete.
	if !deleted {
		return nil, errs.NewFavoriteNotFoundError()
	}
	return &model.Mensaje{Mensaje: confirmation}, nil
}

func (s *FavoritoService) ListPersonajes(ctx context.Context) ([]model.FavoritoPersonaje, error) {
	items, err := s.repos.FavoritosPersonaje.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return items, nil
}

func (s *FavoritoService) ListPlanetas(ctx context.Context) ([]model.FavoritoPlaneta, error) {
	items, err := s.repos.FavoritosPlaneta.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return items, nil
}

func (s *FavoritoService) AddPersonaje(ctx context.Context, callerID, personajeID int64) (*model.FavoritoPersonaje, error) {
	user, err := s.users.Resolve(ctx, callerID)
	if err != nil {
		return nil, err
	}

	lookup := func(ctx context.Context, id int64) error {
		_, err := s.repos.Personajes.GetByID(ctx, id)
		return err
	}
	created, err := addFavorite[model.FavoritoPersonaje](ctx, s.repos.FavoritosPersonaje, lookup, user.ID, personajeID)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Int64("user_id", user.ID).Int64("personaje_id", personajeID).Msg("favorite character added")
	return created, nil
}

func (s *FavoritoService) RemovePersonaje(ctx context.Context, callerID, personajeID int64) (*model.Mensaje, error) {
	user, err := s.users.Resolve(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return removeFavorite[model.FavoritoPersonaje](ctx, s.repos.FavoritosPersonaje, user.ID, personajeID, errs.MsgPersonajeFavoriteRemove)
}

func (s *FavoritoService) AddPlaneta(ctx context.Context, callerID, planetaID int64) (*model.FavoritoPlaneta, error) {
	user, err := s.users.Resolve(ctx, callerID)
	if err != nil {
		return nil, err
	}

	lookup := func(ctx context.Context, id int64) error {
		_, err := s.repos.Planetas.GetByID(ctx, id)
		return err
	}
	created, err := addFavorite[model.FavoritoPlaneta](ctx, s.repos.FavoritosPlaneta, lookup, user.ID, planetaID)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Int64("user_id", user.ID).Int64("planeta_id", planetaID).Msg("favorite planet added")
	return created, nil
}

func (s *FavoritoService) RemovePlaneta(ctx context.Context, callerID, planetaID int64) (*model.Mensaje, error) {
	user, err := s.users.Resolve(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return removeFavorite[model.FavoritoPlaneta](ctx, s.repos.FavoritosPlaneta, user.ID, planetaID, errs.MsgPlanetaFavoriteRemove)
}
