package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ataxihosur/dispatch/internal/pkg/middleware"
	"github.com/ataxihosur/dispatch/internal/pkg/models"
	"github.com/ataxihosur/dispatch/services/fare"
	httpHandler "github.com/ataxihosur/dispatch/services/fare/handler/http"
)

// Handler combines all handlers for the fare service
type Handler struct {
	fareHTTP *httpHandler.FareHandler
	cfg      *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(fareUC fare.FareUC, cfg *models.Config) *Handler {
	return &Handler{
		fareHTTP: httpHandler.NewFareHandler(fareUC),
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	fares := e.Group("/v1/fares", middleware.ActorAuth(h.cfg.JWT))
	fares.POST("/estimate", h.fareHTTP.EstimateFare)
}
