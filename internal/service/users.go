package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"

	"github.com/deppfellow/starwars-api/internal/errs"
	"github.com/deppfellow/starwars-api/internal/model"
	"github.com/deppfellow/starwars-api/internal/repository"
	"github.com/deppfellow/starwars-api/internal/sqlerr"
)

type UserService struct {
	repos *repository.Repositories
}

func NewUserService(repos *repository.Repositories) *UserService {
	return &UserService{repos: repos}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repos.Users.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return users, nil
}

// Resolve returns the user acting on a request.
//
// A positive callerID selects that user; zero falls back to the first user
// by id. Either way a missing user is a 404 USER_NOT_FOUND.
func (s *UserService) Resolve(ctx context.Context, callerID int64) (*model.User, error) {
	var (
		user *model.User
		err  error
	)
	if callerID > 0 {
		user, err = s.repos.Users.GetByID(ctx, callerID)
	} else {
		user, err = s.repos.Users.First(ctx)
	}

	if errors.Is(err, sql.ErrNoRows) {
		zerolog.Ctx(ctx).Warn().Int64("caller_id", callerID).Msg("no user to act as caller")
		return nil, errs.NewUserNotFoundError()
	}
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return user, nil
}

// Favorites returns the caller's favorite characters followed by their
// favorite planets.
func (s *UserService) Favorites(ctx context.Context, callerID int64) ([]any, error) {
	user, err := s.Resolve(ctx, callerID)
	if err != nil {
		return nil, err
	}

	personajes, err := s.repos.FavoritosPersonaje.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	planetas, err := s.repos.FavoritosPlaneta.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	favorites := make([]any, 0, len(personajes)+len(planetas))
	for _, f := range personajes {
		favorites = append(favorites, f)
	}
	for _, f := range planetas {
		favorites = append(favorites, f)
	}
	return favorites, nil
}
