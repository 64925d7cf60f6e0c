package response

import (
	"errors"
	"net/http"

	"cinebox/internal/shared/fault"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errs interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errs,
	})
}

// Success sends a successful response with data
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	RespondJSON(c, "success", statusCode, message, data, nil)
}

// Error sends an error response
func Error(c *gin.Context, statusCode int, message string, errs interface{}) {
	RespondJSON(c, "error", statusCode, message, nil, errs)
}

// FromError maps a service error to the appropriate HTTP response
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fault.ErrInvalidInput):
		Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, fault.ErrNotFound):
		Error(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, fault.ErrConstraintViolation):
		Error(c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, fault.ErrCollisionExhausted):
		Error(c, http.StatusServiceUnavailable, err.Error(), nil)
	case errors.Is(err, fault.ErrStorageUnavailable):
		Error(c, http.StatusServiceUnavailable, "storage unavailable", nil)
	default:
		Error(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
