package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse represents a standard success JSON response.
type SuccessResponse struct {
	Status  string      `json:"status"`  // "success"
	Message string      `json:"message"` // Optional success message
	Data    interface{} `json:"data"`    // The actual data payload
}

// ErrorResponse represents a standard error JSON response.
type ErrorResponse struct {
	Status  string      `json:"status"`           // "error" or "fail"
	Message string      `json:"message"`          // Human-readable error message
	Code    string      `json:"code"`             // Stable machine-readable result code
	Errors  interface{} `json:"errors,omitempty"` // Field-level details for validation failures
}

// SendSuccess sends a standardized success response.
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	if message == "" {
		message = "Operation completed successfully"
	}
	c.JSON(statusCode, SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// SendError sends a standardized error response carrying a domain result code.
func SendError(c *gin.Context, statusCode int, code string, message string) {
	statusText := "error"
	if statusCode >= http.StatusInternalServerError {
		statusText = "fail" // Differentiate client errors from server failures
	}
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Status:  statusText,
		Message: message,
		Code:    code,
	})
}

// --- Specific helpers for the most common outcomes ---

// ValidationFailed sends a 400 with field-level detail from the binding layer.
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Status:  "error",
		Message: "Invalid request payload",
		Code:    CodeValidationError,
		Errors:  fields,
	})
}

// Unauthorized sends a 401 for a missing or unrecognized secret.
func Unauthorized(c *gin.Context) {
	SendError(c, http.StatusUnauthorized, CodeUnauthorized, "Invalid or missing pool secret")
}

// NotFound sends a 404 with the given code.
func NotFound(c *gin.Context, code string, resourceName string) {
	SendError(c, http.StatusNotFound, code, resourceName+" not found")
}

// Internal sends a generic 500; the underlying error is logged, never exposed.
func Internal(c *gin.Context) {
	SendError(c, http.StatusInternalServerError, CodeInternalError, "An unexpected error occurred")
}
