package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"trendlens/internal/search"
	"trendlens/pkg/billing"
)

// APIResponse is the envelope every endpoint answers with:
// {success, message?, data?, trace_id?}.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Success: false,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service-layer errors onto HTTP answers. Billing
// provider messages are forwarded verbatim so the operator sees what the
// provider said; everything unrecognized collapses to a 500.
func HandleServiceError(c *gin.Context, err error) {
	var validationErr *ValidationError
	var providerErr *billing.ProviderError

	switch {
	case errors.As(err, &validationErr):
		RespondError(c, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &providerErr):
		RespondError(c, http.StatusBadGateway, providerErr.Message)
	case errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrPostNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrPlanAlreadyExists),
		errors.Is(err, ErrSlugAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, search.ErrRateLimited):
		RespondError(c, http.StatusTooManyRequests, "Search is temporarily rate limited, try again shortly")
	case errors.Is(err, search.ErrServiceUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "Search is temporarily unavailable")
	case errors.Is(err, search.ErrTimeout):
		RespondError(c, http.StatusGatewayTimeout, "Search timed out, try again")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
