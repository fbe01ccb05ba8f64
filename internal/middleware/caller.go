package middleware

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/starwars-api/internal/errs"
	"github.com/deppfellow/starwars-api/internal/server"
)

// CallerHeader optionally names the user acting on a request.
const CallerHeader = "X-User-ID"

// CallerMiddleware resolves who is calling. There is no authentication:
// the header is trusted as-is, and without it services fall back to the
// first user.
type CallerMiddleware struct {
	server *server.Server
}

func NewCallerMiddleware(s *server.Server) *CallerMiddleware {
	return &CallerMiddleware{
		server: s,
	}
}

// IdentifyCaller stores the X-User-ID value under UserIDKey.
//
// A header that is not a positive integer is rejected with 400.
func (cm *CallerMiddleware) IdentifyCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := strings.TrimSpace(c.Request().Header.Get(CallerHeader))
		if raw == "" {
			return next(c)
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			cm.server.Logger.Warn().
				Str("function", "IdentifyCaller").
				Str("request_id", GetRequestID(c)).
				Str("header", raw).
				Msg("rejected malformed caller header")

			code := "INVALID_USER_ID"
			return errs.NewBadRequestError(CallerHeader+" must be a positive integer", true, &code, nil)
		}

		c.Set(UserIDKey, userID)
		return next(c)
	}
}

// GetCallerID returns the caller id set by IdentifyCaller, or 0 when the
// request did not name one.
func GetCallerID(c echo.Context) int64 {
	if userID, ok := c.Get(UserIDKey).(int64); ok {
		return userID
	}
	return 0
}
