package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
)

// ErrEmptySecretKey indicates a login attempt without a key.
var ErrEmptySecretKey = errors.New("secret key is required")

// ErrValidation indicates caller input was rejected before reaching the store.
var ErrValidation = errors.New("validation failed")

// IdentityStore resolves warehouseman records.
type IdentityStore interface {
	FindWarehousemanBySecretKey(ctx context.Context, secretKey string) (*models.Warehouseman, error)
	GetWarehouseman(ctx context.Context, id models.ID) (*models.Warehouseman, error)
}

// Service resolves operator identities.
type Service struct {
	store  IdentityStore
	logger *zap.Logger
}

// NewService constructs the identity service.
func NewService(store IdentityStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// Login returns the warehouseman owning secretKey, or nil when the key is unknown.
// The key is sent to the store exactly as given; a blank key is refused.
func (s *Service) Login(ctx context.Context, secretKey string) (*models.Warehouseman, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, ErrEmptySecretKey
	}

	user, err := s.store.FindWarehousemanBySecretKey(ctx, secretKey)
	if err != nil {
		return nil, fmt.Errorf("lookup secret key: %w", err)
	}
	if user == nil {
		s.logger.Info("login rejected: unknown secret key")
		return nil, nil
	}

	s.logger.Info("warehouseman logged in", zap.String("warehouseman_id", user.ID.String()))
	return user, nil
}

// Warehouseman fetches an identity by id.
func (s *Service) Warehouseman(ctx context.Context, id models.ID) (*models.Warehouseman, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("%w: warehouseman id is required", ErrValidation)
	}
	user, err := s.store.GetWarehouseman(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get warehouseman %s: %w", id, err)
	}
	return user, nil
}
