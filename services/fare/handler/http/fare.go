package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/ataxihosur/dispatch/internal/pkg/models"
	"github.com/ataxihosur/dispatch/internal/utils"
	"github.com/ataxihosur/dispatch/services/fare"
)

// FareHandler handles fare estimate requests
type FareHandler struct {
	fareUC fare.FareUC
}

// NewFareHandler creates a new fare HTTP handler
func NewFareHandler(fareUC fare.FareUC) *FareHandler {
	return &FareHandler{fareUC: fareUC}
}

// EstimateFare computes a fare quote for the requested trip parameters
func (h *FareHandler) EstimateFare(c echo.Context) error {
	var req models.FareRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	quote, err := h.fareUC.EstimateFare(c.Request().Context(), &req)
	if err != nil {
		return utils.EngineErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Fare estimated successfully", quote)
}
