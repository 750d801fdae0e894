package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ataxihosur/dispatch/internal/pkg/errs"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// EngineErrorResponse maps an engine error to its HTTP status by taxonomy
// kind, so callers see distinct messages for not-found, precondition and
// validation failures rather than a generic 500.
func EngineErrorResponse(c echo.Context, err error) error {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return ErrorResponseHandler(c, http.StatusNotFound, err.Error())
	case errs.KindPreconditionFailed:
		return ErrorResponseHandler(c, http.StatusConflict, err.Error())
	case errs.KindInvalidInput:
		return ErrorResponseHandler(c, http.StatusBadRequest, err.Error())
	case errs.KindConfigurationMissing:
		return ErrorResponseHandler(c, http.StatusUnprocessableEntity, err.Error())
	case errs.KindUpstreamTimeout:
		return ErrorResponseHandler(c, http.StatusGatewayTimeout, err.Error())
	case errs.KindLocationUnavailable:
		return ErrorResponseHandler(c, http.StatusServiceUnavailable, err.Error())
	default:
		return ErrorResponseHandler(c, http.StatusInternalServerError, err.Error())
	}
}
