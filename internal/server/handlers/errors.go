package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
	"github.com/yassirrachad97/DepotSmart/internal/service/auth"
	"github.com/yassirrachad97/DepotSmart/internal/service/inventory"
	"github.com/yassirrachad97/DepotSmart/internal/service/reporting"
	"github.com/yassirrachad97/DepotSmart/pkg/clients/catalogstore"
)

// statusFor maps service and store errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, inventory.ErrValidation),
		errors.Is(err, auth.ErrValidation),
		errors.Is(err, auth.ErrEmptySecretKey):
		return http.StatusBadRequest
	case errors.Is(err, inventory.ErrStockNotFound),
		errors.Is(err, catalogstore.ErrNotFound),
		errors.Is(err, reporting.ErrHistoryDisabled):
		return http.StatusNotFound
	case errors.Is(err, catalogstore.ErrTransport), errors.Is(err, models.ErrInvalidProduct):
		// the store answered badly or not at all
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, logger *zap.Logger, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, zap.Error(err))
	} else {
		logger.Warn(msg, zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
