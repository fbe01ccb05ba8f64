package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/starwars-api/internal/handler"
)

func registerUserRoutes(r *echo.Echo, h *handler.Handlers) {
	users := h.Users

	r.GET("/users", handler.Handle(users.Handler, users.ListUsers, http.StatusOK, &handler.EmptyRequest{}))
	r.GET("/user/favoritos", handler.Handle(users.Handler, users.ListCallerFavorites, http.StatusOK, &handler.EmptyRequest{}))
}

func registerReferenceRoutes(r *echo.Echo, h *handler.Handlers) {
	personajes := h.Personajes
	planetas := h.Planetas

	r.GET("/personajes", handler.Handle(personajes.Handler, personajes.ListPersonajes, http.StatusOK, &handler.EmptyRequest{}))
	r.GET("/personaje/:id", handler.Handle(personajes.Handler, personajes.GetPersonaje, http.StatusOK, &handler.IDRequest{}))

	r.GET("/planetas", handler.Handle(planetas.Handler, planetas.ListPlanetas, http.StatusOK, &handler.EmptyRequest{}))
	r.GET("/planeta/:id", handler.Handle(planetas.Handler, planetas.GetPlaneta, http.StatusOK, &handler.IDRequest{}))
}

func registerFavoritoRoutes(r *echo.Echo, h *handler.Handlers) {
	favoritos := h.Favoritos
	g := r.Group("/favoritos")

	g.GET("/personajes", handler.Handle(favoritos.Handler, favoritos.ListPersonajes, http.StatusOK, &handler.EmptyRequest{}))
	g.POST("/personaje/:id", handler.Handle(favoritos.Handler, favoritos.AddPersonaje, http.StatusCreated, &handler.IDRequest{}))
	g.DELETE("/personaje/:id", handler.Handle(favoritos.Handler, favoritos.RemovePersonaje, http.StatusOK, &handler.IDRequest{}))

	g.GET("/planetas", handler.Handle(favoritos.Handler, favoritos.ListPlanetas, http.StatusOK, &handler.EmptyRequest{}))
	g.POST("/planeta/:id", handler.Handle(favoritos.Handler, favoritos.AddPlaneta, http.StatusCreated, &handler.IDRequest{}))
	g.DELETE("/planeta/:id", handler.Handle(favoritos.Handler, favoritos.RemovePlaneta, http.StatusOK, &handler.IDRequest{}))
}
