package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/foundly/lostfound-api/internal/metrics"
	"github.com/foundly/lostfound-api/internal/core/domain"
	"github.com/foundly/lostfound-api/internal/core/ports"
)

// IdentityKey is the echo context key under which the resolved caller
// identity is stored.
const IdentityKey = "identity"

// Auth validates the bearer token, resolves its subject to a live user, and
// injects the reduced identity into the request context. Every request
// re-verifies and re-fetches; verified tokens are never cached.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			sub, _ := claims["sub"].(string)
			user, err := users.FindByID(c.Request().Context(), sub)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("unknown_subject").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "The user belonging to this token no longer exists")
			}

			c.Set(IdentityKey, domain.Identity{
				ID:          user.ID,
				Name:        user.Name,
				Email:       user.Email,
				Role:        user.Role,
				AvatarColor: user.AvatarColor,
			})

			return next(c)
		}
	}
}
