package middleware

import (
	"os"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ataxihosur/dispatch/internal/utils"
)

const (
	// APIKeyHeader is the header internal collaborators authenticate with
	APIKeyHeader = "X-API-Key"
)

// ServiceAPIKeys maps collaborator names to their API keys.
var ServiceAPIKeys = map[string]string{
	"admin-console": os.Getenv("ADMIN_CONSOLE_API_KEY"),
	"driver-client": os.Getenv("DRIVER_CLIENT_API_KEY"),
	"notifier":      os.Getenv("NOTIFIER_API_KEY"),
	"map-display":   os.Getenv("MAP_DISPLAY_API_KEY"),
}

// ValidateAPIKey validates the API key for internal service-to-service calls
func ValidateAPIKey(allowedServices ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			validKey := false
			for _, service := range allowedServices {
				if ServiceAPIKeys[service] != "" && strings.EqualFold(apiKey, ServiceAPIKeys[service]) {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
