package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
)

// StatisticsService computes dashboard statistics and serves stored history.
type StatisticsService interface {
	CalculateStatistics(ctx context.Context) models.Statistics
	History(ctx context.Context, limit int) ([]models.StatisticsSnapshot, error)
}

// StatisticsHandler serves the dashboard endpoints.
type StatisticsHandler struct {
	svc    StatisticsService
	logger *zap.Logger
}

func NewStatisticsHandler(svc StatisticsService, logger *zap.Logger) *StatisticsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatisticsHandler{svc: svc, logger: logger}
}

// Current always answers 200; a failed computation yields the zeroed record.
func (h *StatisticsHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.CalculateStatistics(c.Request.Context()))
}

func (h *StatisticsHandler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	snapshots, err := h.svc.History(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, "failed loading statistics history", err)
		return
	}

	c.JSON(http.StatusOK, snapshots)
}
