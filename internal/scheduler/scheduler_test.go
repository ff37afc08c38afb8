package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/yassirrachad97/DepotSmart/internal/config"
	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
)

type countingRecorder struct {
	calls int
	err   error
}

func (c *countingRecorder) RecordSnapshot(context.Context) (models.StatisticsSnapshot, error) {
	c.calls++
	return models.StatisticsSnapshot{ID: "snap"}, c.err
}

func TestNewSchedulerRejectsUnknownTimezone(t *testing.T) {
	_, err := NewScheduler(config.ReportingConfig{CronSchedule: "@hourly", Timezone: "Mars/Olympus"}, &countingRecorder{}, nil)
	if err == nil {
		t.Fatalf("expected error for unknown timezone")
	}
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s, err := NewScheduler(config.ReportingConfig{CronSchedule: "every now and then", Timezone: "UTC"}, &countingRecorder{}, nil)
	if err != nil {
		t.Fatalf("NewScheduler error: %v", err)
	}
	if err := s.Start(); err == nil {
		t.Fatalf("expected error for invalid cron expression")
	}
}

func TestRecordSnapshotJobSwallowsErrors(t *testing.T) {
	rec := &countingRecorder{err: errors.New("store down")}
	s, err := NewScheduler(config.ReportingConfig{CronSchedule: "@hourly", Timezone: "UTC"}, rec, nil)
	if err != nil {
		t.Fatalf("NewScheduler error: %v", err)
	}

	s.recordSnapshot()
	if rec.calls != 1 {
		t.Fatalf("recorder called %d times", rec.calls)
	}
}

func TestStartStop(t *testing.T) {
	s, err := NewScheduler(config.ReportingConfig{CronSchedule: "0 * * * *", Timezone: "Africa/Casablanca"}, &countingRecorder{}, nil)
	if err != nil {
		t.Fatalf("NewScheduler error: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	s.Stop()
}
