package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cloudbox/internal/domain"
)

// RespondError sends an error response with the given status code. Upstream
// failure detail never reaches the client; it is logged at the mapping site.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// MapDomainError translates domain errors to HTTP status codes and client-safe
// messages. Gateway failures are all 502: the client cannot fix them.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "Missing required parameters"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "No token provided"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "File not found"
	case errors.Is(err, domain.ErrObjectStoreFailed),
		errors.Is(err, domain.ErrMetadataPersistFailed),
		errors.Is(err, domain.ErrMetadataLookupFailed),
		errors.Is(err, domain.ErrIngestionFailed),
		errors.Is(err, domain.ErrPresignFailed):
		return http.StatusBadGateway, "Upstream storage failure"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] upstream error: %v", requestID, err)
	}
	RespondError(c, status, msg)
}
