package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/ataxihosur/dispatch/internal/pkg/jwt"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
	"github.com/ataxihosur/dispatch/internal/utils"
)

// ActorAuth validates the bearer token and exposes the acting user's id and
// role on the request context. Roles are checked, not issued, here.
func ActorAuth(config models.JWTConfig, allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			actorIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := (*claims)["role"].(string)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			actorID, err := uuid.Parse(fmt.Sprintf("%v", actorIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			if len(allowedRoles) > 0 {
				allowed := false
				for _, r := range allowedRoles {
					if strings.EqualFold(r, role) {
						allowed = true
						break
					}
				}
				if !allowed {
					return utils.ForbiddenResponse(c, "Insufficient role")
				}
			}

			c.Set("actor_id", actorID)
			c.Set("actor_role", role)

			return next(c)
		}
	}
}
