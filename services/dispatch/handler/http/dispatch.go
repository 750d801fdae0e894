package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ataxihosur/dispatch/internal/utils"
	"github.com/ataxihosur/dispatch/services/dispatch"
)

// DispatchHandler handles assignment and trip lifecycle requests
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC}
}

// AssignRequest is the admin console's assignment payload
type AssignRequest struct {
	DriverID uuid.UUID `json:"driver_id"`
	Notes    string    `json:"notes,omitempty"`
}

// CompleteRequest carries the actuals the final fare is computed from
type CompleteRequest struct {
	ActualKm      float64 `json:"actual_km"`
	ActualMinutes int     `json:"actual_minutes"`
}

// CancelRequest records who cancelled and why
type CancelRequest struct {
	CancelledBy string `json:"cancelled_by"`
	Reason      string `json:"reason,omitempty"`
}

func tripIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// AssignDriver binds a driver to a trip
func (h *DispatchHandler) AssignDriver(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.DriverID == uuid.Nil {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	result, err := h.dispatchUC.AssignDriver(c.Request().Context(), tripID, req.DriverID, req.Notes)
	if err != nil {
		return utils.EngineErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Driver assigned successfully", result)
}

// ConfirmTrip records the driver's confirmation of a scheduled assignment
func (h *DispatchHandler) ConfirmTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.dispatchUC.ConfirmTrip(c.Request().Context(), tripID)
	if err != nil {
		return utils.EngineErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Trip confirmed successfully", trip)
}

// MarkDriverArrived records pickup-point arrival
func (h *DispatchHandler) MarkDriverArrived(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.dispatchUC.MarkDriverArrived(c.Request().Context(), tripID)
	if err != nil {
		return utils.EngineErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Arrival recorded successfully", trip)
}

// StartTrip begins the ride
func (h *DispatchHandler) StartTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.dispatchUC.StartTrip(c.Request().Context(), tripID)
	if err != nil {
		return utils.EngineErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Trip started successfully", trip)
}

// CompleteTrip finishes the ride with its actuals
func (h *DispatchHandler) CompleteTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req CompleteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.dispatchUC.CompleteTrip(c.Request().Context(), tripID, req.ActualKm, req.ActualMinutes)
	if err != nil {
		return utils.EngineErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Trip completed successfully", trip)
}

// CancelTrip cancels a trip
func (h *DispatchHandler) CancelTrip(c echo.Context) error {
	tripID, err := tripIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.dispatchUC.CancelTrip(c.Request().Context(), tripID, req.CancelledBy, req.Reason)
	if err != nil {
		return utils.EngineErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Trip cancelled successfully", trip)
}
