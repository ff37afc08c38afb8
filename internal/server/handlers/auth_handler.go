package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
)

// AuthService resolves warehouseman identities.
type AuthService interface {
	Login(ctx context.Context, secretKey string) (*models.Warehouseman, error)
	Warehouseman(ctx context.Context, id models.ID) (*models.Warehouseman, error)
}

type loginRequest struct {
	SecretKey string `json:"secretKey"`
}

// AuthHandler exposes secret-key login and profile lookups.
type AuthHandler struct {
	svc    AuthService
	logger *zap.Logger
}

func NewAuthHandler(svc AuthService, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{svc: svc, logger: logger}
}

// Login exchanges a secret key for the operator profile. The key itself is never echoed back.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	who, err := h.svc.Login(c.Request.Context(), req.SecretKey)
	if err != nil {
		respondError(c, h.logger, "login failed", err)
		return
	}
	if who == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret key"})
		return
	}

	c.JSON(http.StatusOK, who.Profile())
}

func (h *AuthHandler) Profile(c *gin.Context) {
	who, err := h.svc.Warehouseman(c.Request.Context(), models.ParseID(c.Param("id")))
	if err != nil {
		respondError(c, h.logger, "failed fetching warehouseman", err)
		return
	}
	if who == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "warehouseman not found"})
		return
	}

	c.JSON(http.StatusOK, who.Profile())
}
