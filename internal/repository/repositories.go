package repository

import (
	"github.com/deppfellow/starwars-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users              *UserRepository
	Personajes         *PersonajeRepository
	Planetas           *PlanetaRepository
	FavoritosPersonaje *FavoritoPersonajeRepository
	FavoritosPlaneta   *FavoritoPlanetaRepository
}

// NewRepositories constructs the repository container on the server's
// shared database handle.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.DB)
}

// New constructs the repository container on any Querier, e.g. a
// transaction when several writes must commit together.
func New(db Querier) *Repositories {
	return &Repositories{
		Users:              NewUserRepository(db),
		Personajes:         NewPersonajeRepository(db),
		Planetas:           NewPlanetaRepository(db),
		FavoritosPersonaje: NewFavoritoPersonajeRepository(db),
		FavoritosPlaneta:   NewFavoritoPlanetaRepository(db),
	}
}
