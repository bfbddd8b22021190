package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/evovision/evoq-api/internal/api/shared/errors"
	"github.com/evovision/evoq-api/internal/domain"
	"github.com/evovision/evoq-api/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, apiErr *apierrors.APIError) {
	c.JSON(statusCode, errorResponse{Error: apiErr})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error.
// A structured APIError returned by a request validator is passed through as is.
func respondValidationError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		respondWithError(c, http.StatusBadRequest, apiErr)
		return
	}
	respondWithError(c, http.StatusBadRequest, apierrors.NewValidationError(err.Error()))
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, append(fields, zap.String("path", c.FullPath()))...)
	respondWithError(c, http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondRegistryError maps an error returned by a registry to its HTTP response
func respondRegistryError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		respondBadRequest(c, message, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondNotFound(c, message, err.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		respondWithError(c, http.StatusConflict, apierrors.NewConflictError(message, err.Error()))
	case errors.Is(err, domain.ErrStoreUnavailable):
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.FullPath()))
		respondWithError(c, http.StatusInternalServerError, apierrors.NewDatabaseError(message))
	default:
		respondInternalError(c, err, message)
	}
}
