package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/starwars-api/internal/middleware"
	"github.com/deppfellow/starwars-api/internal/model"
	"github.com/deppfellow/starwars-api/internal/server"
	"github.com/deppfellow/starwars-api/internal/service"
)

// FavoritoHandler exposes the favorites join tables. Writes act on behalf
// of the caller resolved by middleware.CallerMiddleware.
type FavoritoHandler struct {
	Handler
	favoritos *service.FavoritoService
}

func NewFavoritoHandler(s *server.Server, favoritos *service.FavoritoService) *FavoritoHandler {
	return &FavoritoHandler{
		Handler:   NewHandler(s),
		favoritos: favoritos,
	}
}

// ListPersonajes returns every user's favorite characters.
func (h *FavoritoHandler) ListPersonajes(c echo.Context, _ *EmptyRequest) ([]model.FavoritoPersonaje, error) {
	return h.favoritos.ListPersonajes(c.Request().Context())
}

func (h *FavoritoHandler) AddPersonaje(c echo.Context, req *IDRequest) (*model.FavoritoPersonaje, error) {
	return h.favoritos.AddPersonaje(c.Request().Context(), middleware.GetCallerID(c), req.ID)
}

func (h *FavoritoHandler) RemovePersonaje(c echo.Context, req *IDRequest) (*model.Mensaje, error) {
	return h.favoritos.RemovePersonaje(c.Request().Context(), middleware.GetCallerID(c), req.ID)
}

// ListPlanetas returns every user's favorite planets.
func (h *FavoritoHandler) ListPlanetas(c echo.Context, _ *EmptyRequest) ([]model.FavoritoPlaneta, error) {
	return h.favoritos.ListPlanetas(c.Request().Context())
}

func (h *FavoritoHandler) AddPlaneta(c echo.Context, req *IDRequest) (*model.FavoritoPlaneta, error) {
	return h.favoritos.AddPlaneta(c.Request().Context(), middleware.GetCallerID(c), req.ID)
}

func (h *FavoritoHandler) RemovePlaneta(c echo.Context, req *IDRequest) (*model.Mensaje, error) {
	return h.favoritos.RemovePlaneta(c.Request().Context(), middleware.GetCallerID(c), req.ID)
}
