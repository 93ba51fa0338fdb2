package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/revel-xyz/revel-gate/internal/api/shared/errors"
	"github.com/revel-xyz/revel-gate/internal/domain"
	"github.com/revel-xyz/revel-gate/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondInternalError responds with an internal server error and logs it
func respondInternalError(c *gin.Context, err error, message string) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("message", message), zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondDomainError maps domain sentinel errors to HTTP responses. Unmatched
// errors fall through to a 500.
func respondDomainError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrDropNotFound):
		respondNotFound(c, "Drop not found")
	case errors.Is(err, domain.ErrDropInactive):
		c.JSON(http.StatusConflict, apierrors.NewServiceError("Drop is not active"))
	case errors.Is(err, domain.ErrInvalidConfiguration):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrOracleUnavailable):
		// Balance unknown must never read as "locked"; tell the caller to retry
		logger.WarnCtx(c.Request.Context(), "balance oracle unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, apierrors.NewServiceError("Balance verification is temporarily unavailable"))
	case errors.Is(err, domain.ErrStorageUnavailable):
		logger.ErrorCtx(c.Request.Context(), err, zap.String("message", message))
		c.JSON(http.StatusInternalServerError, apierrors.NewDatabaseError(message))
	default:
		respondInternalError(c, err, message)
	}
}
