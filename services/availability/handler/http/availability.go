package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ataxihosur/dispatch/internal/pkg/models"
	"github.com/ataxihosur/dispatch/internal/utils"
	"github.com/ataxihosur/dispatch/services/availability"
)

// AvailabilityHandler handles assignable-pool and dashboard requests
type AvailabilityHandler struct {
	availabilityUC availability.AvailabilityUC
}

// NewAvailabilityHandler creates a new availability HTTP handler
func NewAvailabilityHandler(availabilityUC availability.AvailabilityUC) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityUC: availabilityUC}
}

// ListAssignableDrivers resolves the current assignable pool
func (h *AvailabilityHandler) ListAssignableDrivers(c echo.Context) error {
	query := &models.AssignableQuery{
		VehicleCategory: models.VehicleCategory(c.QueryParam("vehicle_category")),
	}

	latParam, lngParam := c.QueryParam("near_lat"), c.QueryParam("near_lng")
	if latParam != "" || lngParam != "" {
		lat, latErr := strconv.ParseFloat(latParam, 64)
		lng, lngErr := strconv.ParseFloat(lngParam, 64)
		if latErr != nil || lngErr != nil {
			return utils.BadRequestResponse(c, "near_lat and near_lng must both be valid coordinates")
		}
		query.Near = &models.Coord{Latitude: lat, Longitude: lng}
	}

	drivers, err := h.availabilityUC.ListAssignableDrivers(c.Request().Context(), query)
	if err != nil {
		return utils.EngineErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Assignable drivers retrieved successfully", drivers)
}

// DispatchSnapshot serves the dashboard's aggregate counts
func (h *AvailabilityHandler) DispatchSnapshot(c echo.Context) error {
	snapshot, err := h.availabilityUC.DispatchSnapshot(c.Request().Context())
	if err != nil {
		return utils.EngineErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Dispatch snapshot retrieved successfully", snapshot)
}
