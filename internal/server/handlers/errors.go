package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/fittrack/internal/apperror"
	"github.com/mamadbah2/fittrack/internal/repository"
)

// respondBindingError answers 422 with per-field messages, or a generic detail
// when the payload could not be decoded at all.
func respondBindingError(c *gin.Context, logger *zap.Logger, err error) {
	logger.Warn("invalid request", zap.String("path", c.Request.URL.Path), zap.Error(err))

	if details := apperror.ValidationDetails(err); details != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": details})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "invalid request body"})
}

func respondServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var gateway *apperror.GatewayError
	switch {
	case errors.As(err, &gateway):
		c.JSON(http.StatusBadGateway, gin.H{"detail": gateway.Detail})
	case errors.Is(err, repository.ErrStoreNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "database not configured"})
	default:
		logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}
