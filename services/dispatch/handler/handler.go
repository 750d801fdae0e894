package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ataxihosur/dispatch/internal/pkg/middleware"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
	"github.com/ataxihosur/dispatch/services/dispatch"
	httpHandler "github.com/ataxihosur/dispatch/services/dispatch/handler/http"
)

// Handler combines all handlers for the dispatch service
type Handler struct {
	dispatchHTTP *httpHandler.DispatchHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(dispatchUC dispatch.DispatchUC, cfg *models.Config) *Handler {
	return &Handler{
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Assignment is admin-only; the
// lifecycle steps are driven by the driver client or the admin console.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	admin := e.Group("/v1/trips", middleware.ActorAuth(h.cfg.JWT, "admin"))
	admin.POST("/:id/assign", h.dispatchHTTP.AssignDriver)

	trips := e.Group("/v1/trips", middleware.ActorAuth(h.cfg.JWT, "admin", "driver"))
	trips.POST("/:id/confirm", h.dispatchHTTP.ConfirmTrip)
	trips.POST("/:id/arrived", h.dispatchHTTP.MarkDriverArrived)
	trips.POST("/:id/start", h.dispatchHTTP.StartTrip)
	trips.POST("/:id/complete", h.dispatchHTTP.CompleteTrip)
	trips.POST("/:id/cancel", h.dispatchHTTP.CancelTrip)
}
