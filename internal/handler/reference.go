package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/starwars-api/internal/model"
	"github.com/deppfellow/starwars-api/internal/server"
	"github.com/deppfellow/starwars-api/internal/service"
)

// PersonajeHandler serves the character catalogue.
type PersonajeHandler struct {
	Handler
	personajes *service.PersonajeService
}

func NewPersonajeHandler(s *server.Server, personajes *service.PersonajeService) *PersonajeHandler {
	return &PersonajeHandler{
		Handler:    NewHandler(s),
		personajes: personajes,
	}
}

func (h *PersonajeHandler) ListPersonajes(c echo.Context, _ *EmptyRequest) ([]model.Personaje, error) {
	return h.personajes.List(c.Request().Context())
}

func (h *PersonajeHandler) GetPersonaje(c echo.Context, req *IDRequest) (*model.Personaje, error) {
	return h.personajes.Get(c.Request().Context(), req.ID)
}

// PlanetaHandler serves the planet catalogue.
type PlanetaHandler struct {
	Handler
	planetas *service.PlanetaService
}

func NewPlanetaHandler(s *server.Server, planetas *service.PlanetaService) *PlanetaHandler {
	return &PlanetaHandler{
		Handler:  NewHandler(s),
		planetas: planetas,
	}
}

func (h *PlanetaHandler) ListPlanetas(c echo.Context, _ *EmptyRequest) ([]model.Planeta, error) {
	return h.planetas.List(c.Request().Context())
}

func (h *PlanetaHandler) GetPlaneta(c echo.Context, req *IDRequest) (*model.Planeta, error) {
	return h.planetas.Get(c.Request().Context(), req.ID)
}
