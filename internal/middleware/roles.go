package middleware

import (
	"net/http"

	"github.com/connectly-app/backend/internal/models"
	"github.com/connectly-app/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// RequireRole gates a route group on the caller's role. The role lives
// on the user record, not in the token, so a role change takes effect
// without re-issuing tokens. Must run after TokenAuthMiddleware.
func RequireRole(users repositories.UserRepository, roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*models.JwtCustomClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}

			user, err := users.GetUserByID(claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authenticated user not found")
			}

			if !allowed[user.Role] {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient role for this operation")
			}

			return next(c)
		}
	}
}
