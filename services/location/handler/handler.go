package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ataxihosur/dispatch/internal/pkg/middleware"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
	"github.com/ataxihosur/dispatch/services/location"
	httpHandler "github.com/ataxihosur/dispatch/services/location/handler/http"
)

// Handler combines all handlers for the location service
type Handler struct {
	locationHTTP *httpHandler.LocationHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(locationUC location.LocationUC, cfg *models.Config) *Handler {
	return &Handler{
		locationHTTP: httpHandler.NewLocationHandler(locationUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	drivers := e.Group("/v1/drivers", middleware.ActorAuth(h.cfg.JWT))
	drivers.POST("/:id/location", h.locationHTTP.ReportPosition)
	drivers.POST("/:id/location/once", h.locationHTTP.ReportPositionOnce)
	drivers.GET("/:id/location", h.locationHTTP.GetPosition)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal/v1/drivers")
	internal.POST("/:id/location", h.locationHTTP.ReportPosition,
		middleware.ValidateAPIKey("driver-client"))
	internal.GET("/:id/location", h.locationHTTP.GetPosition,
		middleware.ValidateAPIKey("driver-client", "map-display"))
}
