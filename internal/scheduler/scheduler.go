package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/yassirrachad97/DepotSmart/internal/config"
	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
)

const snapshotTimeout = 2 * time.Minute

// SnapshotRecorder takes one statistics snapshot.
type SnapshotRecorder interface {
	RecordSnapshot(ctx context.Context) (models.StatisticsSnapshot, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	recorder SnapshotRecorder
	schedule string
	logger   *zap.Logger
}

// NewScheduler creates a scheduler running in the configured timezone.
func NewScheduler(cfg config.ReportingConfig, recorder SnapshotRecorder, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	// standard 5-field cron expressions
	c := cron.New(cron.WithLocation(loc))

	return &Scheduler{
		cron:     c,
		recorder: recorder,
		schedule: cfg.CronSchedule,
		logger:   logger,
	}, nil
}

// Start registers the jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.recordSnapshot); err != nil {
		return fmt.Errorf("schedule statistics snapshot %q: %w", s.schedule, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) recordSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	snapshot, err := s.recorder.RecordSnapshot(ctx)
	if err != nil {
		s.logger.Error("failed to record statistics snapshot", zap.Error(err))
		return
	}

	s.logger.Info("statistics snapshot taken", zap.String("snapshot_id", snapshot.ID))
}
