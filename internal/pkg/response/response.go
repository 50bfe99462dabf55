// Package response writes the JSON error shapes of the public API.
// Success bodies are endpoint-specific structs owned by the domain
// packages; only the shared failure shapes live here.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"movers-service/internal/pkg/validate"
)

// errorBody is the failure envelope of the form endpoints.
type errorBody struct {
	Success bool                  `json:"success"`
	Error   string                `json:"error"`
	Details []validate.FieldError `json:"details,omitempty"`
}

// ValidationFailed rejects a request whose body failed schema validation.
// details must be non-empty so the client can render inline field errors.
func ValidationFailed(c *gin.Context, message string, details []validate.FieldError) {
	c.Abort()
	c.JSON(http.StatusBadRequest, errorBody{Success: false, Error: message, Details: details})
}

// Internal collapses any unexpected failure to a generic message.
// Never leak the underlying error to the caller.
func Internal(c *gin.Context) {
	c.Abort()
	c.JSON(http.StatusInternalServerError, errorBody{Success: false, Error: "Internal server error"})
}

// Unauthorized rejects a request without a valid admin token.
func Unauthorized(c *gin.Context, message string) {
	c.Abort()
	c.JSON(http.StatusUnauthorized, errorBody{Success: false, Error: message})
}

// NotFound reports a missing resource on the admin API.
func NotFound(c *gin.Context, message string) {
	c.Abort()
	c.JSON(http.StatusNotFound, errorBody{Success: false, Error: message})
}

// RateLimited rejects a request that exhausted the submission window.
func RateLimited(c *gin.Context) {
	c.Abort()
	c.JSON(http.StatusTooManyRequests, errorBody{Success: false, Error: "Too many requests, please try again later"})
}
