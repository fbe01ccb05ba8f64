// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It parses requests, handles input validation using the
// validation package, and calls the appropriate service layer.
// It acts as the interface between the HTTP request and the core
// business logic.
package handler

import (
	"github.com/deppfellow/starwars-api/internal/server"
	"github.com/deppfellow/starwars-api/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
	Sitemap    *SitemapHandler
	Users      *UserHandler
	Personajes *PersonajeHandler
	Planetas   *PlanetaHandler
	Favoritos  *FavoritoHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
		Sitemap:    NewSitemapHandler(s),
		Users:      NewUserHandler(s, services.Users),
		Personajes: NewPersonajeHandler(s, services.Personajes),
		Planetas:   NewPlanetaHandler(s, services.Planetas),
		Favoritos:  NewFavoritoHandler(s, services.Favoritos),
	}
}
