package service

import (
	"github.com/deppfellow/starwars-api/internal/repository"
	"github.com/deppfellow/starwars-api/internal/server"
)

type Services struct {
	Users      *UserService
	Personajes *PersonajeService
	Planetas   *PlanetaService
	Favoritos  *FavoritoService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	cache := newReferenceCache(s)
	users := NewUserService(repos)

	return &Services{
		Users:      users,
		Personajes: NewPersonajeService(repos, cache),
		Planetas:   NewPlanetaService(repos, cache),
		Favoritos:  NewFavoritoService(repos, users),
	}, nil
}
