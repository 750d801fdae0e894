package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ataxihosur/dispatch/internal/pkg/middleware"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
	"github.com/ataxihosur/dispatch/services/availability"
	httpHandler "github.com/ataxihosur/dispatch/services/availability/handler/http"
)

// Handler combines all handlers for the availability service
type Handler struct {
	availabilityHTTP *httpHandler.AvailabilityHandler
	cfg              *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(availabilityUC availability.AvailabilityUC, cfg *models.Config) *Handler {
	return &Handler{
		availabilityHTTP: httpHandler.NewAvailabilityHandler(availabilityUC),
		cfg:              cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	drivers := e.Group("/v1/drivers", middleware.ActorAuth(h.cfg.JWT, "admin"))
	drivers.GET("/assignable", h.availabilityHTTP.ListAssignableDrivers)

	dispatch := e.Group("/v1/dispatch", middleware.ActorAuth(h.cfg.JWT, "admin"))
	dispatch.GET("/snapshot", h.availabilityHTTP.DispatchSnapshot)
}
