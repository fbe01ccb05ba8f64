package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/starwars-api/internal/middleware"
	"github.com/deppfellow/starwars-api/internal/model"
	"github.com/deppfellow/starwars-api/internal/server"
	"github.com/deppfellow/starwars-api/internal/service"
)

type UserHandler struct {
	Handler
	users *service.UserService
}

func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) ListUsers(c echo.Context, _ *EmptyRequest) ([]model.User, error) {
	return h.users.List(c.Request().Context())
}

// ListCallerFavorites returns the caller's favorite characters followed by
// their favorite planets.
func (h *UserHandler) ListCallerFavorites(c echo.Context, _ *EmptyRequest) ([]any, error) {
	return h.users.Favorites(c.Request().Context(), middleware.GetCallerID(c))
}
