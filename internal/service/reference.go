package service

import (
	"context"
	"strconv"

	"github.com/deppfellow/starwars-api/internal/model"
	"github.com/deppfellow/starwars-api/internal/repository"
	"github.com/deppfellow/starwars-api/internal/sqlerr"
)

// PersonajeService serves the read-only character catalogue.
type PersonajeService struct {
	repo  *repository.PersonajeRepository
	cache *referenceCache
}

func NewPersonajeService(repos *repository.Repositories, cache *referenceCache) *PersonajeService {
	return &PersonajeService{repo: repos.Personajes, cache: cache}
}

func (s *PersonajeService) List(ctx context.Context) ([]model.Personaje, error) {
	items, err := cached(ctx, s.cache, "personajes", s.repo.List)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return items, nil
}

func (s *PersonajeService) Get(ctx context.Context, id int64) (*model.Personaje, error) {
	item, err := cached(ctx, s.cache, "personaje:"+strconv.FormatInt(id, 10), func(ctx context.Context) (*model.Personaje, error) {
		return s.repo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return item, nil
}

// PlanetaService serves the read-only planet catalogue.
type PlanetaService struct {
	repo  *repository.PlanetaRepository
	cache *referenceCache
}

func NewPlanetaService(repos *repository.Repositories, cache *referenceCache) *PlanetaService {
	return &PlanetaService{repo: repos.Planetas, cache: cache}
}

func (s *PlanetaService) List(ctx context.Context) ([]model.Planeta, error) {
	items, err := cached(ctx, s.cache, "planetas", s.repo.List)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return items, nil
}

func (s *PlanetaService) Get(ctx context.Context, id int64) (*model.Planeta, error) {
	item, err := cached(ctx, s.cache, "planeta:"+strconv.FormatInt(id, 10), func(ctx context.Context) (*model.Planeta, error) {
		return s.repo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return item, nil
}
