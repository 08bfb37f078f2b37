package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the body of every failed response, wrapped as {"error": ...}.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
}

// NewAPIError creates a new APIError instance
func NewAPIError(statusCode int, code string, message string, details string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
		Details:    details,
	}
}

func (e *APIError) Error() string {
	return e.Message
}

// RespondWithError writes err and stops the handler chain.
func RespondWithError(c *gin.Context, err *APIError) {
	c.JSON(err.StatusCode, gin.H{"error": err})
	c.Abort()
}

const (
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeConflict            = "CONFLICT"
	ErrCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
)

// RespondValidationFailed covers bad ids, unparseable bodies and rejected field values.
func RespondValidationFailed(c *gin.Context, details string) {
	RespondWithError(c, NewAPIError(http.StatusBadRequest, ErrCodeValidationFailed, "Input validation failed", details))
}

// RespondNotFound returns a 404 with a resource specific message.
func RespondNotFound(c *gin.Context, message, details string) {
	RespondWithError(c, NewAPIError(http.StatusNotFound, ErrCodeNotFound, message, details))
}

// RespondConflict reports a unique value that is already taken.
func RespondConflict(c *gin.Context, message, details string) {
	RespondWithError(c, NewAPIError(http.StatusConflict, ErrCodeConflict, message, details))
}
