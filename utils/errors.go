// utils/errors.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError pairs an HTTP status with a client-safe message. Each error
// category maps 1:1 to a status code; unexpected store faults are reported
// as a generic 500 and never leak internals.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// ValidationError covers malformed or insufficient input.
func ValidationError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// ConflictError covers a duplicate phone or email at signup.
func ConflictError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NotFoundError covers an unknown customer identifier or a lookup miss.
func NotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

// AuthError covers a rejected admin PIN.
func AuthError(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}

// RespondWithError writes a JSON error body with the given status.
func RespondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// AbortWithError maps an *APIError to its status; anything else becomes a
// generic internal error.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		RespondWithError(c, apiErr.Status, apiErr.Message)
		return
	}
	RespondWithError(c, http.StatusInternalServerError, "Internal server error")
}
