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
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError translates the service error taxonomy into HTTP codes.
// Everything is terminal per request; nothing is retried here.
func HandleServiceError(c *gin.Context, err error) {
	var upstream *UpstreamError
	var malformed *MalformedOutputError
	var notApplicable *NotApplicableError

	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPetNotFound),
		errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrMemoryNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.As(err, &notApplicable):
		RespondError(c, http.StatusUnprocessableEntity, notApplicable.Message)
	case errors.Is(err, ErrAIServiceTimeout):
		RespondError(c, http.StatusGatewayTimeout, err.Error())
	case errors.As(err, &upstream):
		log.Printf("Upstream AI error: %v", err)
		RespondError(c, http.StatusBadGateway, upstream.Error())
	case errors.As(err, &malformed):
		log.Printf("Malformed AI output: %v", err)
		RespondError(c, http.StatusInternalServerError, malformed.Error())
	case errors.Is(err, ErrMissingAPIKey), errors.Is(err, ErrEmptyAIResponse):
		log.Printf("AI service error: %v", err)
		RespondError(c, http.StatusInternalServerError, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
