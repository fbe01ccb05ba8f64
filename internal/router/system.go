package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/starwars-api/internal/handler"
	"github.com/deppfellow/starwars-api/static"
)

// registerSystemRoutes registers endpoints that are not part of the domain:
// the route listing, health status, docs UI and its static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", handler.Handle(h.Sitemap.Handler, h.Sitemap.ListRoutes, http.StatusOK, &handler.EmptyRequest{}))

	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.Files)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
