package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foundly/lostfound-api/internal/api/middleware"
	"github.com/foundly/lostfound-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// missing identity means the middleware did not run on this route; reject
// with 401 before any service call.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || identity.ID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
	}
	return identity, nil
}
