package http

import (
	nethttp "net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ataxihosur/dispatch/internal/pkg/models"
	"github.com/ataxihosur/dispatch/internal/utils"
	"github.com/ataxihosur/dispatch/services/location"
)

// LocationHandler handles driver position reports and lookups
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// ReportPosition stores a single position report for a driver
func (h *LocationHandler) ReportPosition(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	var fix models.PositionFix
	if err := c.Bind(&fix); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.locationUC.ReportPosition(c.Request().Context(), driverID, &fix); err != nil {
		return utils.EngineErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Position reported successfully", nil)
}

// ReportPositionOnce stores an immediate position report stamped server-side,
// ignoring any client timestamp. Diagnostic path for clients whose clocks
// drift.
func (h *LocationHandler) ReportPositionOnce(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	var fix models.PositionFix
	if err := c.Bind(&fix); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	fix.Timestamp = time.Now()

	if err := h.locationUC.ReportPosition(c.Request().Context(), driverID, &fix); err != nil {
		return utils.EngineErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Position reported successfully", nil)
}

// GetPosition returns the driver's last-known position
func (h *LocationHandler) GetPosition(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	pos, err := h.locationUC.GetPosition(c.Request().Context(), driverID)
	if err != nil {
		return utils.EngineErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Position retrieved successfully", pos)
}
