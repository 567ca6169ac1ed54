package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID.(string),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID.(string),
	})
}

// HandleServiceError maps the service error taxonomy to HTTP responses.
// Rate limiting is reported distinctly so the client can tell a transient
// overload apart from a broken generation.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, ErrRateLimited):
		RespondError(c, http.StatusTooManyRequests, "The AI service is momentarily overloaded, try again shortly")
	case errors.Is(err, ErrMalformedPlan):
		log.Printf("Malformed plan from AI service: %v", err)
		RespondError(c, http.StatusBadGateway, "The AI service returned an unusable plan")
	case errors.Is(err, ErrAIServiceUnavailable):
		log.Printf("AI service error: %v", err)
		RespondError(c, http.StatusBadGateway, "Could not reach the AI service")
	case errors.Is(err, ErrExportFailed):
		log.Printf("Export error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Could not produce the export")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
