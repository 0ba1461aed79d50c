// Package apierrors maps failures to the API's flat {code, message} error
// body with stable machine-readable codes.
package apierrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opencre/mockapi/internal/middleware"
)

// Stable error codes returned to clients.
const (
	CodeInvalidPagination  = "INVALID_PAGINATION"
	CodeNotFound           = "NOT_FOUND"
	CodeRegenerationFailed = "REGENERATION_FAILED"
	CodeInternal           = "INTERNAL_SERVER_ERROR"
)

// Response is the error body shared by every non-2xx response.
type Response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// InvalidPagination returns a 400 for invalid limit/offset parameters.
func InvalidPagination(c *gin.Context, message string) {
	if log := middleware.GetLogger(c); log != nil {
		log.Warn("Invalid pagination", map[string]interface{}{
			"message": message,
			"path":    c.Request.URL.Path,
			"query":   c.Request.URL.RawQuery,
		})
	}

	c.JSON(http.StatusBadRequest, Response{
		Code:    CodeInvalidPagination,
		Message: message,
	})
}

// NotFound returns a 404 for an unknown resource.
func NotFound(c *gin.Context, message string) {
	if log := middleware.GetLogger(c); log != nil {
		log.Warn("Resource not found", map[string]interface{}{
			"message": message,
			"path":    c.Request.URL.Path,
		})
	}

	c.JSON(http.StatusNotFound, Response{
		Code:    CodeNotFound,
		Message: message,
	})
}

// RegenerationFailed returns a 500 when the dataset could not be rebuilt.
// The underlying error is logged, never sent to the client.
func RegenerationFailed(c *gin.Context, message string, err error) {
	if log := middleware.GetLogger(c); log != nil {
		log.Error("Dataset regeneration failed", err, map[string]interface{}{
			"path": c.Request.URL.Path,
		})
	}

	c.JSON(http.StatusInternalServerError, Response{
		Code:    CodeRegenerationFailed,
		Message: message,
	})
}

// Internal returns a generic 500. The underlying error is logged with full
// context and never exposed to the client.
func Internal(c *gin.Context, message string, err error) {
	if log := middleware.GetLogger(c); log != nil {
		log.Error("Internal server error", err, map[string]interface{}{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	}

	c.JSON(http.StatusInternalServerError, Response{
		Code:    CodeInternal,
		Message: message,
	})
}
