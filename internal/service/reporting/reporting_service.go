package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
)

// ErrHistoryDisabled is returned by History when no snapshot repository is wired.
var ErrHistoryDisabled = errors.New("statistics history is disabled")

const defaultHistoryLimit = 24

// ProductSource yields the full product snapshot statistics are computed from.
type ProductSource interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// SnapshotRepository persists statistics snapshots.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot models.StatisticsSnapshot) error
	ListSnapshots(ctx context.Context, limit int) ([]models.StatisticsSnapshot, error)
}

// SnapshotExporter pushes snapshots to an external sink such as a spreadsheet.
type SnapshotExporter interface {
	ExportSnapshot(ctx context.Context, snapshot models.StatisticsSnapshot) error
}

// Service exposes dashboard statistics.
type Service struct {
	source    ProductSource
	snapshots SnapshotRepository
	exporter  SnapshotExporter
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a new reporting service instance. snapshots and exporter
// may be nil when history or export are not configured.
func NewService(source ProductSource, snapshots SnapshotRepository, exporter SnapshotExporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		source:    source,
		snapshots: snapshots,
		exporter:  exporter,
		logger:    logger,
		now:       time.Now,
	}
}

// CalculateStatistics fetches a fresh snapshot and summarizes it. It never
// fails: when the store cannot be read a zeroed record is returned so the
// dashboard keeps rendering.
func (s *Service) CalculateStatistics(ctx context.Context) models.Statistics {
	stats, err := s.calculate(ctx)
	if err != nil {
		s.logger.Warn("statistics unavailable, serving zeroed record", zap.Error(err))
		return models.EmptyStatistics()
	}
	return stats
}

// RecordSnapshot computes statistics and stores them in the history and the
// export sink. Unlike CalculateStatistics it reports failures.
func (s *Service) RecordSnapshot(ctx context.Context) (models.StatisticsSnapshot, error) {
	stats, err := s.calculate(ctx)
	if err != nil {
		return models.StatisticsSnapshot{}, err
	}

	snapshot := models.StatisticsSnapshot{
		ID:         uuid.NewString(),
		TakenAt:    s.now().UTC(),
		Statistics: stats,
	}

	if s.snapshots != nil {
		if err := s.snapshots.SaveSnapshot(ctx, snapshot); err != nil {
			return models.StatisticsSnapshot{}, fmt.Errorf("save statistics snapshot: %w", err)
		}
	}

	if s.exporter != nil {
		if err := s.exporter.ExportSnapshot(ctx, snapshot); err != nil {
			return snapshot, fmt.Errorf("export statistics snapshot: %w", err)
		}
	}

	s.logger.Info("statistics snapshot recorded",
		zap.String("snapshot_id", snapshot.ID),
		zap.Int("total_products", stats.TotalProducts),
		zap.Int("out_of_stock", stats.OutOfStock),
		zap.Float64("total_stock_value", stats.TotalStockValue))

	return snapshot, nil
}

// History returns the most recent snapshots, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]models.StatisticsSnapshot, error) {
	if s.snapshots == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	snapshots, err := s.snapshots.ListSnapshots(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load statistics history: %w", err)
	}
	return snapshots, nil
}

func (s *Service) calculate(ctx context.Context) (models.Statistics, error) {
	if s.source == nil {
		return models.Statistics{}, errors.New("no product source configured")
	}

	products, err := s.source.ListProducts(ctx)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("load products: %w", err)
	}
	return CalculateStatistics(products), nil
}
