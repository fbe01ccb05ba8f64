package handler

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/starwars-api/internal/server"
)

// Route is one entry of the route listing.
type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// Sitemap is the body of GET /.
type Sitemap struct {
	Routes []Route `json:"routes"`
}

// listedMethods excludes Echo's internal catch-all registrations.
var listedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

type SitemapHandler struct {
	Handler
}

func NewSitemapHandler(s *server.Server) *SitemapHandler {
	return &SitemapHandler{
		Handler: NewHandler(s),
	}
}

// ListRoutes describes every registered endpoint, sorted by path then method.
func (h *SitemapHandler) ListRoutes(c echo.Context, _ *EmptyRequest) (*Sitemap, error) {
	seen := make(map[Route]bool)
	routes := make([]Route, 0)

	for _, r := range c.Echo().Routes() {
		route := Route{Method: r.Method, Path: r.Path}
		if !listedMethods[route.Method] || seen[route] {
			continue
		}
		seen[route] = true
		routes = append(routes, route)
	}

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})

	return &Sitemap{Routes: routes}, nil
}
